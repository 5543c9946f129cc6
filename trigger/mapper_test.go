package trigger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rulego/crystalsql/expr"
	"github.com/rulego/crystalsql/logger"
	"github.com/rulego/crystalsql/naming"
	"github.com/rulego/crystalsql/report"
	"github.com/rulego/crystalsql/types"
)

func newTestMapper() *Mapper {
	et := expr.NewTranslator("CF_", "P_", types.PolicyPlaceholder)
	names := naming.NewState("CF_", "FT_", "P_")
	return NewMapper(et, names, logger.NewDiscardLogger())
}

// TestConvertSuppressCondition tests the full trigger body for an explicit
// suppress formula.
func TestConvertSuppressCondition(t *testing.T) {
	m := newTestMapper()

	ft := m.ConvertSuppressCondition("{amount} > 100", "amount")

	assert.Equal(t, "FT_SUPPRESS_AMOUNT", ft.Name)
	assert.Equal(t, KindExplicitSuppress, ft.Kind)
	assert.Equal(t, "{amount} > 100", ft.OriginalCondition)
	assert.Equal(t,
		"function FT_SUPPRESS_AMOUNT return boolean is\n"+
			"begin\n"+
			"  return :AMOUNT > 100;\n"+
			"exception\n"+
			"  when others then\n"+
			"    return FALSE;\n"+
			"end;",
		ft.Body)
	assert.Empty(t, ft.Warnings)
}

// TestConvertSuppressCondition_Fallbacks tests the FALSE fallback for empty
// and untranslatable conditions.
func TestConvertSuppressCondition_Fallbacks(t *testing.T) {
	m := newTestMapper()

	t.Run("empty condition stays visible", func(t *testing.T) {
		ft := m.ConvertSuppressCondition("", "f1")
		assert.Contains(t, ft.Body, "return FALSE;")
	})

	t.Run("malformed condition stays visible with diagnostics", func(t *testing.T) {
		ft := m.ConvertSuppressCondition("{oops", "f2")
		assert.Contains(t, ft.Body, "return FALSE;")
		assert.NotEmpty(t, ft.Warnings)
	})

	t.Run("missing field name falls back", func(t *testing.T) {
		ft := m.ConvertSuppressCondition("{A} = 1", "")
		assert.Equal(t, "FT_SUPPRESS_FIELD", ft.Name)
	})
}

// TestConvertSuppressIfFlags tests the synthesized built-in flag conditions.
func TestConvertSuppressIfFlags(t *testing.T) {
	t.Run("neither flag yields nothing", func(t *testing.T) {
		m := newTestMapper()
		assert.Nil(t, m.ConvertSuppressIfFlags(false, false, "Amount"))
	})

	t.Run("zero flag", func(t *testing.T) {
		m := newTestMapper()
		ft := m.ConvertSuppressIfFlags(true, false, "Amount")
		require.NotNil(t, ft)
		assert.Equal(t, KindSuppressIfZero, ft.Kind)
		assert.Contains(t, ft.Body, "return :AMOUNT = 0;")
	})

	t.Run("blank flag", func(t *testing.T) {
		m := newTestMapper()
		ft := m.ConvertSuppressIfFlags(false, true, "Amount")
		require.NotNil(t, ft)
		assert.Equal(t, KindSuppressIfBlank, ft.Kind)
		assert.Contains(t, ft.Body, "return (:AMOUNT IS NULL OR TRIM(TO_CHAR(:AMOUNT)) = '');")
	})

	t.Run("both flags combined with or", func(t *testing.T) {
		m := newTestMapper()
		ft := m.ConvertSuppressIfFlags(true, true, "Amount")
		require.NotNil(t, ft)
		assert.Equal(t, KindSuppressIfZero, ft.Kind)
		assert.Contains(t, ft.Body, "return :AMOUNT = 0 OR (:AMOUNT IS NULL OR TRIM(TO_CHAR(:AMOUNT)) = '');")
	})

	t.Run("trigger name carries the field", func(t *testing.T) {
		m := newTestMapper()
		ft := m.ConvertSuppressIfFlags(true, false, "Net Amount")
		require.NotNil(t, ft)
		assert.Equal(t, "FT_SUPPRESS_COND_NET_AMOUNT", ft.Name)
	})
}

// TestConvertConditionalFormat tests the manual-work warning on formatting
// conditions.
func TestConvertConditionalFormat(t *testing.T) {
	m := newTestMapper()

	ft := m.ConvertConditionalFormat("{Balance} < 0", "Balance")
	assert.Equal(t, "FT_FORMAT_BALANCE", ft.Name)
	assert.Equal(t, KindConditionalFormat, ft.Kind)
	assert.Contains(t, ft.Body, "return :BALANCE < 0;")
	require.NotEmpty(t, ft.Warnings)
	assert.Contains(t, ft.Warnings[len(ft.Warnings)-1].Message, "visibility")
}

// TestConvertReport tests the document-order walk over sections and fields.
func TestConvertReport(t *testing.T) {
	rep := &report.Report{
		Name: "orders",
		Sections: []report.Section{
			{
				Name:              "detail",
				SuppressCondition: "{Status} = 'closed'",
				Fields: []report.Field{
					{Name: "Amount", Format: report.FormatSpec{SuppressIfZero: true}},
					{Name: "Note", SuppressCondition: "IsNull({Note})"},
					{Name: "Plain"},
				},
			},
			{
				Name: "footer",
				Fields: []report.Field{
					{Name: "Total", Format: report.FormatSpec{SuppressIfBlank: true}},
				},
			},
		},
	}

	m := newTestMapper()
	out := m.ConvertReport(context.Background(), rep)

	require.Len(t, out, 4)
	assert.Equal(t, "FT_SUPPRESS_DETAIL", out[0].Name)
	assert.Equal(t, KindExplicitSuppress, out[0].Kind)
	assert.Equal(t, "FT_SUPPRESS_COND_AMOUNT", out[1].Name)
	assert.Equal(t, KindSuppressIfZero, out[1].Kind)
	assert.Equal(t, "FT_SUPPRESS_NOTE", out[2].Name)
	assert.Equal(t, "FT_SUPPRESS_COND_TOTAL", out[3].Name)
	assert.Equal(t, KindSuppressIfBlank, out[3].Kind)
}

// TestConvertReport_Cancelled tests that cancellation stops the walk.
func TestConvertReport_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := newTestMapper()
	out := m.ConvertReport(ctx, &report.Report{
		Sections: []report.Section{{SuppressCondition: "{A} = 1", Name: "s"}},
	})
	assert.Empty(t, out)
}
