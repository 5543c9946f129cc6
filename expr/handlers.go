package expr

import (
	"fmt"
	"strings"
)

// conditional converts IIF(cond, ifTrue, ifFalse) into a CASE expression.
// Branches are translated as full sub-expressions, so nested IIF calls
// produce properly nested CASE ... END markers at any depth.
func (r *run) conditional(name, argsText string) (string, error) {
	args, err := SplitArgs(argsText)
	if err != nil {
		return "", err
	}
	if len(args) != 3 {
		r.warn(fmt.Sprintf("function %s expects 3 arguments, got %d", name, len(args)), argsText)
	}

	translated, err := r.translateArgs(args)
	if err != nil {
		return "", err
	}
	for len(translated) < 3 {
		translated = append(translated, "NULL")
	}

	return "CASE WHEN " + translated[0] + " THEN " + translated[1] + " ELSE " + translated[2] + " END", nil
}

// switchCase converts Switch(c1, v1, c2, v2, ..., [default]) into a searched
// CASE expression. A trailing unpaired argument becomes the ELSE branch.
func (r *run) switchCase(name, argsText string) (string, error) {
	args, err := SplitArgs(argsText)
	if err != nil {
		return "", err
	}
	if len(args) < 2 {
		r.warn(fmt.Sprintf("function %s expects condition/value pairs, got %d arguments", name, len(args)), argsText)
		return "NULL", nil
	}

	translated, err := r.translateArgs(args)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("CASE")
	pairs := len(translated) / 2
	for p := 0; p < pairs; p++ {
		b.WriteString(" WHEN " + translated[2*p] + " THEN " + translated[2*p+1])
	}
	if len(translated)%2 == 1 {
		b.WriteString(" ELSE " + translated[len(translated)-1])
	}
	b.WriteString(" END")
	return b.String(), nil
}

// choose converts Choose(index, a, b, ...) into a simple CASE over the
// one-based index.
func (r *run) choose(name, argsText string) (string, error) {
	args, err := SplitArgs(argsText)
	if err != nil {
		return "", err
	}
	if len(args) < 2 {
		r.warn(fmt.Sprintf("function %s expects an index and at least one value, got %d arguments", name, len(args)), argsText)
		return "NULL", nil
	}

	translated, err := r.translateArgs(args)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("CASE " + translated[0])
	for i, v := range translated[1:] {
		b.WriteString(fmt.Sprintf(" WHEN %d THEN %s", i+1, v))
	}
	b.WriteString(" END")
	return b.String(), nil
}

// datePartIdioms maps Crystal interval codes to Oracle date-part extraction
// templates over the translated date expression.
var datePartIdioms = map[string]string{
	"yyyy":      "EXTRACT(YEAR FROM %s)",
	"year":      "EXTRACT(YEAR FROM %s)",
	"q":         "TO_CHAR(%s, 'Q')",
	"quarter":   "TO_CHAR(%s, 'Q')",
	"m":         "EXTRACT(MONTH FROM %s)",
	"month":     "EXTRACT(MONTH FROM %s)",
	"d":         "EXTRACT(DAY FROM %s)",
	"day":       "EXTRACT(DAY FROM %s)",
	"y":         "TO_CHAR(%s, 'DDD')",
	"dayofyear": "TO_CHAR(%s, 'DDD')",
	"w":         "TO_CHAR(%s, 'IW')",
	"week":      "TO_CHAR(%s, 'IW')",
	"ww":        "TO_CHAR(%s, 'IW')",
	"weekday":   "TO_CHAR(%s, 'D')",
	"h":         "EXTRACT(HOUR FROM CAST(%s AS TIMESTAMP))",
	"hour":      "EXTRACT(HOUR FROM CAST(%s AS TIMESTAMP))",
	"n":         "EXTRACT(MINUTE FROM CAST(%s AS TIMESTAMP))",
	"minute":    "EXTRACT(MINUTE FROM CAST(%s AS TIMESTAMP))",
	"s":         "EXTRACT(SECOND FROM CAST(%s AS TIMESTAMP))",
	"second":    "EXTRACT(SECOND FROM CAST(%s AS TIMESTAMP))",
}

// datePart converts DatePart(interval, date) to the Oracle idiom selected by
// the interval code. Unrecognized codes produce best-effort pass-through
// output plus a warning.
func (r *run) datePart(name, argsText string) (string, error) {
	args, err := SplitArgs(argsText)
	if err != nil {
		return "", err
	}
	if len(args) < 2 {
		r.warn(fmt.Sprintf("function %s expects an interval code and a date, got %d arguments", name, len(args)), argsText)
		translated, err := r.translateArgs(args)
		if err != nil {
			return "", err
		}
		return "DATEPART(" + strings.Join(translated, ", ") + ")", nil
	}
	if len(args) > 2 {
		// Crystal allows firstDayOfWeek/firstWeekOfYear tuning arguments
		r.warn(fmt.Sprintf("function %s extra arguments ignored", name), argsText)
	}

	interval := strings.ToLower(strings.Trim(strings.TrimSpace(args[0]), "'\""))
	dateExpr, err := r.text(args[1])
	if err != nil {
		return "", err
	}
	dateExpr = strings.TrimSpace(dateExpr)

	idiom, ok := datePartIdioms[interval]
	if !ok {
		r.warn("unknown DatePart interval code", interval)
		return fmt.Sprintf("DATEPART('%s', %s)", interval, dateExpr), nil
	}
	return fmt.Sprintf(idiom, dateExpr), nil
}

// runningTotal emits an analytic sum over the translated argument. The
// source formula carries no ordering, so the caller must supply one
// downstream; the warning is always attached.
func (r *run) runningTotal(name, argsText string) (string, error) {
	args, err := SplitArgs(argsText)
	if err != nil {
		return "", err
	}
	if len(args) != 1 {
		r.warn(fmt.Sprintf("function %s expects 1 argument, got %d", name, len(args)), argsText)
	}

	inner := "NULL"
	if len(args) > 0 {
		translated, err := r.text(args[0])
		if err != nil {
			return "", err
		}
		inner = strings.TrimSpace(translated)
	}

	r.warn("RunningTotal has no ordering information, replace ORDER BY ROWNUM with an explicit ordering", argsText)
	return "SUM(" + inner + ") OVER (ORDER BY ROWNUM)", nil
}
