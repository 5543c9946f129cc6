package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rulego/crystalsql/types"
)

// TestParse tests decoding a fully populated extractor document.
func TestParse(t *testing.T) {
	data := []byte(`{
		"name": "orders",
		"formulas": [
			{"name": "Total", "expression": "{Amount} * 1.2", "return_type": "Number"},
			{"name": "Label", "expression": "'x'"}
		],
		"parameters": [
			{"name": "Region", "data_type": "String", "default_value": "West", "allow_null": true}
		],
		"sections": [
			{
				"name": "detail",
				"section_type": "detail",
				"suppress_condition": "{Status} = 'closed'",
				"fields": [
					{
						"name": "Amount",
						"source": "Orders.Amount",
						"source_type": "database",
						"format": {"suppress_if_zero": true, "format_string": "#,##0.00"}
					}
				]
			}
		]
	}`)

	rep, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, "orders", rep.Name)

	require.Len(t, rep.Formulas, 2)
	assert.Equal(t, "Total", rep.Formulas[0].Name)
	assert.Equal(t, "{Amount} * 1.2", rep.Formulas[0].Expression)
	assert.Equal(t, types.TypeNumber, rep.Formulas[0].ReturnType)
	assert.Equal(t, types.TypeUnknown, rep.Formulas[1].ReturnType)

	require.Len(t, rep.Parameters, 1)
	assert.Equal(t, "Region", rep.Parameters[0].Name)
	assert.Equal(t, types.TypeString, rep.Parameters[0].DataType)
	assert.True(t, rep.Parameters[0].AllowNull)

	require.Len(t, rep.Sections, 1)
	sec := rep.Sections[0]
	assert.Equal(t, "{Status} = 'closed'", sec.SuppressCondition)
	require.Len(t, sec.Fields, 1)
	assert.Equal(t, "Orders.Amount", sec.Fields[0].Source)
	assert.True(t, sec.Fields[0].Format.SuppressIfZero)
	assert.Equal(t, "#,##0.00", sec.Fields[0].Format.FormatString)
}

// TestParse_LooseTyping tests coercion of the scalar shapes different
// extractor versions produce.
func TestParse_LooseTyping(t *testing.T) {
	data := []byte(`{
		"name": 42,
		"sections": [
			{
				"name": "s",
				"suppress": "true",
				"fields": [
					{"name": "F", "format": {"suppress_if_zero": 1, "suppress_if_blank": "false"}}
				]
			}
		]
	}`)

	rep, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, "42", rep.Name)
	require.Len(t, rep.Sections, 1)
	assert.True(t, rep.Sections[0].Suppress)
	require.Len(t, rep.Sections[0].Fields, 1)
	assert.True(t, rep.Sections[0].Fields[0].Format.SuppressIfZero)
	assert.False(t, rep.Sections[0].Fields[0].Format.SuppressIfBlank)
}

// TestParse_Invalid tests that broken JSON is rejected.
func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("{not json"))
	assert.Error(t, err)
}

// TestLoad tests file loading.
func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name": "r"}`), 0o644))

	rep, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "r", rep.Name)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

// TestSuppressedFields tests the document-order filter.
func TestSuppressedFields(t *testing.T) {
	rep := &Report{
		Sections: []Section{
			{Fields: []Field{
				{Name: "A", SuppressCondition: "{X} = 1"},
				{Name: "B"},
				{Name: "C", Format: FormatSpec{SuppressIfBlank: true}},
			}},
			{Fields: []Field{
				{Name: "D", Format: FormatSpec{SuppressIfZero: true}},
			}},
		},
	}

	fields := rep.SuppressedFields()
	require.Len(t, fields, 3)
	assert.Equal(t, "A", fields[0].Name)
	assert.Equal(t, "C", fields[1].Name)
	assert.Equal(t, "D", fields[2].Name)
}
