package funcmap

import (
	"fmt"
	"sort"
	"strings"
)

// HandlerID identifies a function whose translation needs dedicated logic
// instead of plain template substitution.
type HandlerID string

const (
	// HandlerNone means the entry translates through its template
	HandlerNone HandlerID = ""
	// HandlerConditional converts IIF calls into CASE WHEN expressions
	HandlerConditional HandlerID = "conditional"
	// HandlerSwitch converts Switch(c1,v1,c2,v2,...) into a searched CASE
	HandlerSwitch HandlerID = "switch"
	// HandlerChoose converts Choose(n,a,b,...) into a simple CASE over n
	HandlerChoose HandlerID = "choose"
	// HandlerDatePart maps DatePart interval codes to EXTRACT/TO_CHAR idioms
	HandlerDatePart HandlerID = "datepart"
	// HandlerRunningTotal emits an analytic SUM over the argument
	HandlerRunningTotal HandlerID = "runningtotal"
)

// Variadic marks an entry that accepts any number of arguments.
const Variadic = -1

// Entry describes how one Crystal function maps to Oracle SQL.
type Entry struct {
	// Name is the canonical lower-case function name
	Name string
	// Arity is the expected argument count, or Variadic
	Arity int
	// Template is the Oracle text with {0}..{n} argument placeholders
	Template string
	// Handler is set when template substitution is not enough
	Handler HandlerID
	// Category groups entries for listing (string, datetime, numeric, ...)
	Category string
}

// entries is populated during init and read-only afterwards, so lookups are
// safe for concurrent use without locking.
var entries = make(map[string]Entry)

// Register adds a mapping entry. Names are case-insensitive.
func Register(e Entry) error {
	name := strings.ToLower(e.Name)
	if name == "" {
		return fmt.Errorf("funcmap: entry with empty name")
	}
	if _, exists := entries[name]; exists {
		return fmt.Errorf("funcmap: function %s already registered", name)
	}
	e.Name = name
	entries[name] = e
	return nil
}

// mustRegister is the init-time registration helper; duplicate names are a
// programming error in the builtin tables.
func mustRegister(e Entry) {
	if err := Register(e); err != nil {
		panic(err)
	}
}

// Get looks up a function mapping by name, case-insensitively.
func Get(name string) (Entry, bool) {
	e, ok := entries[strings.ToLower(name)]
	return e, ok
}

// ListAll returns all registered entries sorted by name.
func ListAll() []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ListByCategory returns the entries of one category sorted by name.
func ListByCategory(category string) []Entry {
	var out []Entry
	for _, e := range entries {
		if e.Category == category {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
