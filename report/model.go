package report

import "github.com/rulego/crystalsql/types"

// Formula is a named Crystal formula handed over by the extractor.
type Formula struct {
	// Name is the Crystal formula name, without the @ sigil
	Name string `json:"name"`
	// Expression is the raw formula body in Crystal syntax
	Expression string `json:"expression"`
	// ReturnType is the declared value type, TypeUnknown when absent
	ReturnType types.DataType `json:"return_type"`
}

// Parameter is a report parameter definition.
type Parameter struct {
	Name         string         `json:"name"`
	DataType     types.DataType `json:"data_type"`
	DefaultValue string         `json:"default_value,omitempty"`
	AllowNull    bool           `json:"allow_null"`
	PromptText   string         `json:"prompt_text,omitempty"`
}

// FormatSpec carries the built-in formatting flags of a field.
type FormatSpec struct {
	FormatString    string `json:"format_string,omitempty"`
	SuppressIfZero  bool   `json:"suppress_if_zero"`
	SuppressIfBlank bool   `json:"suppress_if_blank"`
}

// Field is a placed report field with its visibility conditions.
type Field struct {
	// Name is the field's design-time name
	Name string `json:"name"`
	// Source is the database column, formula or parameter the field shows
	Source string `json:"source"`
	// SourceType is one of database, formula, parameter, special
	SourceType string `json:"source_type"`
	// Format carries the built-in suppress flags
	Format FormatSpec `json:"format"`
	// SuppressCondition is an explicit Crystal suppress formula, if any
	SuppressCondition string `json:"suppress_condition,omitempty"`
}

// Section is a report band with its own suppression and fields.
type Section struct {
	Name              string  `json:"name"`
	SectionType       string  `json:"section_type"`
	Suppress          bool    `json:"suppress"`
	SuppressCondition string  `json:"suppress_condition,omitempty"`
	Fields            []Field `json:"fields"`
}

// Report is the already-parsed report structure this system consumes. The
// proprietary .rpt container is unpacked by an external tool; CrystalSQL
// only sees this model.
type Report struct {
	Name       string      `json:"name"`
	Formulas   []Formula   `json:"formulas"`
	Parameters []Parameter `json:"parameters"`
	Sections   []Section   `json:"sections"`
}

// SuppressedFields returns every field that carries an explicit suppress
// condition or a built-in suppress flag, in document order.
func (r *Report) SuppressedFields() []Field {
	var out []Field
	for _, sec := range r.Sections {
		for _, f := range sec.Fields {
			if f.SuppressCondition != "" || f.Format.SuppressIfZero || f.Format.SuppressIfBlank {
				out = append(out, f)
			}
		}
	}
	return out
}
