package trigger

import (
	"context"
	"fmt"

	"github.com/rulego/crystalsql/expr"
	"github.com/rulego/crystalsql/logger"
	"github.com/rulego/crystalsql/naming"
	"github.com/rulego/crystalsql/report"
	"github.com/rulego/crystalsql/types"
)

// Kind classifies what a format trigger suppresses or formats.
type Kind string

const (
	// KindExplicitSuppress comes from an explicit suppress formula
	KindExplicitSuppress Kind = "suppress"
	// KindSuppressIfZero comes from the built-in suppress-if-zero flag
	KindSuppressIfZero Kind = "suppress_if_zero"
	// KindSuppressIfBlank comes from the built-in suppress-if-blank flag
	KindSuppressIfBlank Kind = "suppress_if_blank"
	// KindConditionalFormat controls conditional formatting
	KindConditionalFormat Kind = "conditional_format"
)

// FormatTrigger is a boolean-returning Oracle Reports program unit that
// controls element visibility. TRUE suppresses the element.
type FormatTrigger struct {
	// Name is the generated function name, unique within the run
	Name string
	// Body is the complete PL/SQL function
	Body string
	// Kind records where the condition came from
	Kind Kind
	// OriginalCondition is the source condition text, kept as metadata
	OriginalCondition string
	// Warnings accumulated during translation
	Warnings []types.Warning
}

// Mapper converts Crystal suppress conditions and built-in suppress flags
// into format triggers.
type Mapper struct {
	expr  *expr.Translator
	names *naming.State
	log   logger.Logger
}

// NewMapper builds a condition mapper sharing the run's expression
// translator and naming state.
func NewMapper(et *expr.Translator, names *naming.State, log logger.Logger) *Mapper {
	if log == nil {
		log = logger.NewDiscardLogger()
	}
	return &Mapper{expr: et, names: names, log: log.Named("trigger")}
}

// ConvertSuppressCondition translates an explicit suppress formula into a
// format trigger. A condition that cannot be translated yields a trigger
// returning FALSE (element stays visible) with the diagnostics attached, so
// a bad condition never breaks report rendering.
func (m *Mapper) ConvertSuppressCondition(condition, fieldName string) FormatTrigger {
	name := m.names.Next(naming.KindTrigger, "SUPPRESS_"+nameOr(fieldName, "FIELD"))
	sql, warnings := m.condition(condition)

	m.log.Debug("suppress condition for %s -> %s", fieldName, name)
	return FormatTrigger{
		Name:              name,
		Body:              buildTriggerBody(name, sql, ""),
		Kind:              KindExplicitSuppress,
		OriginalCondition: condition,
		Warnings:          warnings,
	}
}

// ConvertConditionalFormat translates a conditional-formatting condition.
// Oracle Reports format triggers only control visibility, so font and color
// changes are flagged for manual work.
func (m *Mapper) ConvertConditionalFormat(condition, fieldName string) FormatTrigger {
	name := m.names.Next(naming.KindTrigger, "FORMAT_"+nameOr(fieldName, "FIELD"))
	sql, warnings := m.condition(condition)
	warnings = append(warnings, types.Warnf(
		"Oracle Reports format triggers only control visibility, font and color changes need manual work", fieldName))

	return FormatTrigger{
		Name:              name,
		Body:              buildTriggerBody(name, sql, ""),
		Kind:              KindConditionalFormat,
		OriginalCondition: condition,
		Warnings:          warnings,
	}
}

// ConvertSuppressIfFlags synthesizes the boolean condition for the built-in
// suppress-if-zero and suppress-if-blank flags, combining both with OR when
// set together. Returns nil when neither flag is set.
func (m *Mapper) ConvertSuppressIfFlags(zero, blank bool, fieldName string) *FormatTrigger {
	if !zero && !blank {
		return nil
	}

	bind := m.expr.Resolver().Column(fieldName)

	var conditions []string
	kind := KindSuppressIfBlank
	if zero {
		conditions = append(conditions, fmt.Sprintf("%s = 0", bind))
		kind = KindSuppressIfZero
	}
	if blank {
		conditions = append(conditions, fmt.Sprintf("(%s IS NULL OR TRIM(TO_CHAR(%s)) = '')", bind, bind))
	}

	sql := conditions[0]
	if len(conditions) == 2 {
		sql = conditions[0] + " OR " + conditions[1]
	}

	name := m.names.Next(naming.KindTrigger, "SUPPRESS_COND_"+nameOr(fieldName, "FIELD"))
	return &FormatTrigger{
		Name:              name,
		Body:              buildTriggerBody(name, sql, ""),
		Kind:              kind,
		OriginalCondition: fmt.Sprintf("suppress_if_zero=%t, suppress_if_blank=%t", zero, blank),
	}
}

// ConvertReport walks a report's sections and fields and converts every
// visibility condition it finds, in document order. Cancelling the context
// stops the walk and returns the partial results.
func (m *Mapper) ConvertReport(ctx context.Context, rep *report.Report) []FormatTrigger {
	var out []FormatTrigger

	for _, sec := range rep.Sections {
		if ctx.Err() != nil {
			break
		}
		if sec.SuppressCondition != "" {
			out = append(out, m.ConvertSuppressCondition(sec.SuppressCondition, sec.Name))
		}
		for _, f := range sec.Fields {
			if ctx.Err() != nil {
				break
			}
			if f.SuppressCondition != "" {
				out = append(out, m.ConvertSuppressCondition(f.SuppressCondition, f.Name))
			}
			if ft := m.ConvertSuppressIfFlags(f.Format.SuppressIfZero, f.Format.SuppressIfBlank, f.Name); ft != nil {
				out = append(out, *ft)
			}
		}
	}

	m.log.Info("converted %d format triggers", len(out))
	return out
}

// condition translates a suppress condition to a boolean SQL expression.
// Empty and untranslatable conditions become FALSE.
func (m *Mapper) condition(text string) (string, []types.Warning) {
	res := m.expr.Translate(text)
	if !res.Succeeded || res.SQL == "" {
		return "FALSE", res.Warnings
	}
	return res.SQL, res.Warnings
}

// buildTriggerBody assembles the boolean program unit. The catch-all
// exception clause keeps a runtime error in the target environment from
// aborting report rendering.
func buildTriggerBody(name, condition, comment string) string {
	body := "function " + name + " return boolean is\nbegin\n"
	if comment != "" {
		body += "  -- " + comment + "\n"
	}
	body += "  return " + condition + ";\nexception\n  when others then\n    return FALSE;\nend;"
	return body
}

func nameOr(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}
