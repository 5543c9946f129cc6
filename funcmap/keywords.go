package funcmap

import "strings"

// keywordFunctions are Crystal functions that appear as bare words without
// parentheses. They expand to fixed Oracle text when matched on a word
// boundary that is not followed by an opening parenthesis.
var keywordFunctions = map[string]string{
	"currentdate":     "TRUNC(SYSDATE)",
	"currentdatetime": "SYSTIMESTAMP",
	"currenttime":     "TO_CHAR(SYSDATE, 'HH24:MI:SS')",
	"now":             "SYSDATE",
	"today":           "TRUNC(SYSDATE)",
	"timer":           "(SYSDATE - TRUNC(SYSDATE)) * 86400",
	"printdate":       "SYSDATE",
	"printtime":       "SYSDATE",
	"recordnumber":    "ROWNUM",
	// Page-dependent values need Oracle Reports report-level variables
	// that only exist at generation time.
	"pagenumber":     "1",
	"totalpagecount": "1",
	"groupnumber":    "1",
}

// Keyword returns the Oracle expansion for a bare keyword function.
func Keyword(word string) (string, bool) {
	repl, ok := keywordFunctions[strings.ToLower(word)]
	return repl, ok
}

// evaluationDirectives are Crystal evaluation-time directives. They control
// when the engine evaluates a formula during report execution and have no
// Oracle equivalent, so the translator strips them and warns.
var evaluationDirectives = map[string]struct{}{
	"whileprintingrecords": {},
	"whilereadingrecords":  {},
	"beforereadingrecords": {},
	"evaluateafter":        {},
}

// IsEvaluationDirective reports whether a bare word is an evaluation-time
// directive, case-insensitively.
func IsEvaluationDirective(word string) bool {
	_, ok := evaluationDirectives[strings.ToLower(word)]
	return ok
}
