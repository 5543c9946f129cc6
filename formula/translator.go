package formula

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/rulego/crystalsql/expr"
	"github.com/rulego/crystalsql/logger"
	"github.com/rulego/crystalsql/naming"
	"github.com/rulego/crystalsql/report"
	"github.com/rulego/crystalsql/types"
)

// Translated is the result of translating one Crystal formula into an Oracle
// program unit.
type Translated struct {
	// SourceName is the Crystal formula name
	SourceName string
	// OracleName is the generated function name, unique within the run
	OracleName string
	// Body is the complete PL/SQL program unit, empty when skipped
	Body string
	// ReturnType is the Oracle scalar return type
	ReturnType string
	// Succeeded is false when translation failed and no unit was generated
	Succeeded bool
	// Placeholder marks a stub unit generated under the placeholder policy
	Placeholder bool
	// Warnings accumulated during translation
	Warnings []types.Warning
	// ReferencedColumns lists the bind identifiers the body references,
	// sorted and without the leading colon
	ReferencedColumns []string
}

// Translator turns Crystal formulas into named PL/SQL functions.
type Translator struct {
	expr   *expr.Translator
	names  *naming.State
	policy types.UnsupportedPolicy
	log    logger.Logger
}

// NewTranslator builds a formula translator sharing the run's expression
// translator and naming state.
func NewTranslator(et *expr.Translator, names *naming.State, policy types.UnsupportedPolicy, log logger.Logger) *Translator {
	if log == nil {
		log = logger.NewDiscardLogger()
	}
	return &Translator{expr: et, names: names, policy: policy, log: log.Named("formula")}
}

// Translate converts one formula. Failure is reported on the result, never
// as an error; the batch contract in TranslateBatch depends on that.
func (t *Translator) Translate(f report.Formula) Translated {
	name := t.names.Next(naming.KindFormula, f.Name)
	return t.translateNamed(f, name)
}

func (t *Translator) translateNamed(f report.Formula, oracleName string) Translated {
	t.log.Debug("translating formula %s -> %s", f.Name, oracleName)

	returnType := t.returnType(f)

	if strings.TrimSpace(f.Expression) == "" {
		return Translated{
			SourceName: f.Name,
			OracleName: oracleName,
			Body:       buildFunctionBody(oracleName, returnType, "NULL"),
			ReturnType: returnType,
			Succeeded:  true,
			Warnings:   []types.Warning{types.Warnf("empty formula converted to NULL", f.Name)},
		}
	}

	res := t.expr.Translate(f.Expression)
	if !res.Succeeded || strings.TrimSpace(res.SQL) == "" {
		// Empty output from non-empty input means every construct was
		// skipped; there is nothing to return from.
		return t.failed(f, oracleName, returnType, res.Warnings)
	}

	return Translated{
		SourceName:        f.Name,
		OracleName:        oracleName,
		Body:              buildFunctionBody(oracleName, returnType, res.SQL),
		ReturnType:        returnType,
		Succeeded:         true,
		Warnings:          res.Warnings,
		ReferencedColumns: referencedColumns(res.SQL),
	}
}

// failed applies the unsupported policy to a formula whose expression could
// not be translated.
func (t *Translator) failed(f report.Formula, oracleName, returnType string, warnings []types.Warning) Translated {
	t.log.Warn("formula %s failed: %s", f.Name, summarize(warnings))

	switch t.policy {
	case types.PolicyPlaceholder:
		return Translated{
			SourceName:  f.Name,
			OracleName:  oracleName,
			Body:        buildPlaceholderBody(oracleName, returnType, f.Expression, summarize(warnings)),
			ReturnType:  returnType,
			Succeeded:   true,
			Placeholder: true,
			Warnings:    append(warnings, types.Warnf("placeholder generated, manual conversion required", f.Name)),
		}
	default:
		return Translated{
			SourceName: f.Name,
			OracleName: oracleName,
			ReturnType: returnType,
			Succeeded:  false,
			Warnings:   warnings,
		}
	}
}

// TranslateBatch translates formulas independently; one formula's failure
// never aborts the batch. Names are reserved in input order before any work
// is dispatched, so results are deterministic even with parallel workers.
// Cancelling the context stops dispatching and returns the partial results.
func (t *Translator) TranslateBatch(ctx context.Context, formulas []report.Formula, workers int) []Translated {
	names := make([]string, len(formulas))
	for i, f := range formulas {
		names[i] = t.names.Next(naming.KindFormula, f.Name)
	}

	results := make([]Translated, len(formulas))

	if workers <= 1 {
		done := 0
		for i, f := range formulas {
			if ctx.Err() != nil {
				break
			}
			results[i] = t.translateNamed(f, names[i])
			done++
		}
		t.logSummary(results[:done])
		return results[:done]
	}

	var wg sync.WaitGroup
	jobs := make(chan int)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = t.translateNamed(formulas[i], names[i])
			}
		}()
	}

	dispatched := 0
	for i := range formulas {
		if ctx.Err() != nil {
			break
		}
		jobs <- i
		dispatched++
	}
	close(jobs)
	wg.Wait()

	t.logSummary(results[:dispatched])
	return results[:dispatched]
}

func (t *Translator) logSummary(results []Translated) {
	var ok, placeholders, failed int
	for _, r := range results {
		switch {
		case r.Placeholder:
			placeholders++
		case r.Succeeded:
			ok++
		default:
			failed++
		}
	}
	t.log.Info("formula translation: %d successful, %d placeholders, %d failed", ok, placeholders, failed)
}

// returnType picks the Oracle return type from the declared value type, or
// infers one from the expression when the declaration is missing.
func (t *Translator) returnType(f report.Formula) string {
	dt := f.ReturnType
	if dt == "" || dt == types.TypeUnknown {
		dt = inferDataType(f.Expression)
	}
	return dt.OracleType()
}

// buildFunctionBody assembles the complete PL/SQL program unit.
func buildFunctionBody(name, returnType, expression string) string {
	return fmt.Sprintf("function %s return %s is\nbegin\n  return (%s);\nend %s;", name, returnType, expression, name)
}

// buildPlaceholderBody assembles the stub unit emitted under the placeholder
// policy. The original Crystal text rides along in comments so a migration
// engineer can finish the conversion by hand.
func buildPlaceholderBody(name, returnType, original, reason string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "function %s return %s is\n", name, returnType)
	b.WriteString("  -- Manual conversion required\n")
	b.WriteString("  -- Original Crystal formula:\n")
	for _, line := range strings.Split(truncate(original, 500), "\n") {
		b.WriteString("  -- " + line + "\n")
	}
	if reason != "" {
		b.WriteString("  -- Reason: " + reason + "\n")
	}
	b.WriteString("begin\n  return NULL;\n")
	fmt.Fprintf(&b, "end %s;", name)
	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func summarize(warnings []types.Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	return warnings[len(warnings)-1].String()
}

// referencedColumns extracts the bind identifiers from translated SQL,
// skipping string literals. The result is sorted so repeated runs produce
// identical output.
func referencedColumns(sql string) []string {
	seen := map[string]bool{}
	i := 0
	for i < len(sql) {
		c := sql[i]
		if c == '\'' {
			j := i + 1
			for j < len(sql) && sql[j] != '\'' {
				j++
			}
			i = j + 1
			continue
		}
		if c == ':' && i+1 < len(sql) {
			start := i + 1
			j := start
			for j < len(sql) && (isIdentChar(sql[j])) {
				j++
			}
			if j > start {
				seen[sql[start:j]] = true
			}
			i = j
			continue
		}
		i++
	}

	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func isIdentChar(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_'
}
