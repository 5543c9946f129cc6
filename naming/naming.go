// Package naming issues deterministic, collision-free Oracle identifiers for
// generated program units. State is scoped to one translation run and never
// persisted, so two runs over the same input produce byte-identical names.
package naming

import (
	"fmt"
	"sync"

	"github.com/rulego/crystalsql/expr"
)

// Kind selects the prefix used for a generated identifier.
type Kind int

const (
	// KindFormula names generated formula functions (CF_ by default)
	KindFormula Kind = iota
	// KindTrigger names generated format-trigger functions (FT_ by default)
	KindTrigger
	// KindParameter names generated parameter binds (P_ by default)
	KindParameter
)

// maxIdentifierLen is the Oracle identifier length bound.
const maxIdentifierLen = 30

// State tracks the identifiers issued during one translation run. It is safe
// for concurrent use; for strict output ordering across parallel workers,
// reserve names up front with Next in input order before dispatching.
type State struct {
	mu       sync.Mutex
	prefixes map[Kind]string
	issued   map[string]bool
	counters map[string]int
}

// NewState creates naming state for one run with the given prefixes.
func NewState(formulaPrefix, triggerPrefix, parameterPrefix string) *State {
	return &State{
		prefixes: map[Kind]string{
			KindFormula:   formulaPrefix,
			KindTrigger:   triggerPrefix,
			KindParameter: parameterPrefix,
		},
		issued:   make(map[string]bool),
		counters: make(map[string]int),
	}
}

// Prefix returns the configured prefix for a kind.
func (s *State) Prefix(kind Kind) string {
	return s.prefixes[kind]
}

// Next returns a unique identifier for the given source name. The base form
// is the kind's prefix plus the normalized source name; when that has
// already been issued in this run a numeric disambiguator is appended. The
// result always fits the Oracle identifier bound.
func (s *State) Next(kind Kind, baseSourceName string) string {
	base := s.prefixes[kind] + expr.NormalizeIdentifier(baseSourceName)
	if len(base) > maxIdentifierLen {
		base = base[:maxIdentifierLen]
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.issued[base] {
		s.issued[base] = true
		s.counters[base] = 1
		return base
	}

	for {
		s.counters[base]++
		suffix := fmt.Sprintf("_%d", s.counters[base])
		candidate := base
		if len(candidate)+len(suffix) > maxIdentifierLen {
			candidate = candidate[:maxIdentifierLen-len(suffix)]
		}
		candidate += suffix
		if !s.issued[candidate] {
			s.issued[candidate] = true
			return candidate
		}
	}
}
