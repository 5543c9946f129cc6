package naming

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestState() *State {
	return NewState("CF_", "FT_", "P_")
}

// TestNext_Basic tests prefix selection and normalization.
func TestNext_Basic(t *testing.T) {
	s := newTestState()

	assert.Equal(t, "CF_TOTAL", s.Next(KindFormula, "Total"))
	assert.Equal(t, "FT_SUPPRESS_AMOUNT", s.Next(KindTrigger, "SUPPRESS_amount"))
	assert.Equal(t, "P_REGION", s.Next(KindParameter, "Region"))
	assert.Equal(t, "CF_FIRST_NAME", s.Next(KindFormula, "First Name"))
}

// TestNext_Collisions tests disambiguation of repeated base names.
func TestNext_Collisions(t *testing.T) {
	s := newTestState()

	assert.Equal(t, "CF_TOTAL", s.Next(KindFormula, "Total"))
	assert.Equal(t, "CF_TOTAL_2", s.Next(KindFormula, "total"))
	assert.Equal(t, "CF_TOTAL_3", s.Next(KindFormula, "TOTAL"))

	// Names that normalize differently do not collide
	assert.Equal(t, "CF_TOTAL_", s.Next(KindFormula, "Total!"))
}

// TestNext_KindsIndependent tests that the same base under different kinds
// yields distinct names without disambiguators.
func TestNext_KindsIndependent(t *testing.T) {
	s := newTestState()

	assert.Equal(t, "CF_X", s.Next(KindFormula, "X"))
	assert.Equal(t, "FT_X", s.Next(KindTrigger, "X"))
	assert.Equal(t, "P_X", s.Next(KindParameter, "X"))
}

// TestNext_LengthBound tests the Oracle identifier length cap.
func TestNext_LengthBound(t *testing.T) {
	s := newTestState()
	long := strings.Repeat("A", 40)

	first := s.Next(KindFormula, long)
	assert.Len(t, first, 30)
	assert.True(t, strings.HasPrefix(first, "CF_"))

	second := s.Next(KindFormula, long)
	assert.LessOrEqual(t, len(second), 30)
	assert.True(t, strings.HasSuffix(second, "_2"))
	assert.NotEqual(t, first, second)
}

// TestNext_Deterministic tests that two states issue identical sequences
// for identical input.
func TestNext_Deterministic(t *testing.T) {
	input := []string{"Total", "Total", "Net Amount", "total", "2nd"}

	a := newTestState()
	b := newTestState()
	for _, name := range input {
		assert.Equal(t, a.Next(KindFormula, name), b.Next(KindFormula, name))
	}
}

// TestNext_ConcurrentUnique tests that concurrent issuance never repeats a
// name.
func TestNext_ConcurrentUnique(t *testing.T) {
	s := newTestState()

	const workers = 8
	const perWorker = 50

	var mu sync.Mutex
	seen := make(map[string]bool)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				name := s.Next(KindFormula, "Shared")
				mu.Lock()
				assert.False(t, seen[name], "duplicate %s", name)
				seen[name] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Len(t, seen, workers*perWorker)
}

// TestPrefix tests prefix accessors.
func TestPrefix(t *testing.T) {
	s := NewState("FX_", "TG_", "BIND_")
	assert.Equal(t, "FX_", s.Prefix(KindFormula))
	assert.Equal(t, "TG_", s.Prefix(KindTrigger))
	assert.Equal(t, "BIND_", s.Prefix(KindParameter))
}
