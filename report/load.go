package report

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cast"

	"github.com/rulego/crystalsql/types"
)

// Load reads and parses an extracted report from a JSON file.
func Load(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("report: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes extracted report JSON. Extractor output is loosely typed
// (flags arrive as booleans, numbers or strings depending on the tool
// version), so every scalar goes through tolerant coercion instead of strict
// field typing.
func Parse(data []byte) (*Report, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("report: decode: %w", err)
	}

	rep := &Report{Name: cast.ToString(raw["name"])}

	for _, item := range cast.ToSlice(raw["formulas"]) {
		m := cast.ToStringMap(item)
		rep.Formulas = append(rep.Formulas, Formula{
			Name:       cast.ToString(m["name"]),
			Expression: cast.ToString(m["expression"]),
			ReturnType: types.ParseDataType(cast.ToString(m["return_type"])),
		})
	}

	for _, item := range cast.ToSlice(raw["parameters"]) {
		m := cast.ToStringMap(item)
		rep.Parameters = append(rep.Parameters, Parameter{
			Name:         cast.ToString(m["name"]),
			DataType:     types.ParseDataType(cast.ToString(m["data_type"])),
			DefaultValue: cast.ToString(m["default_value"]),
			AllowNull:    cast.ToBool(m["allow_null"]),
			PromptText:   cast.ToString(m["prompt_text"]),
		})
	}

	for _, item := range cast.ToSlice(raw["sections"]) {
		m := cast.ToStringMap(item)
		sec := Section{
			Name:              cast.ToString(m["name"]),
			SectionType:       cast.ToString(m["section_type"]),
			Suppress:          cast.ToBool(m["suppress"]),
			SuppressCondition: cast.ToString(m["suppress_condition"]),
		}
		for _, fi := range cast.ToSlice(m["fields"]) {
			fm := cast.ToStringMap(fi)
			format := cast.ToStringMap(fm["format"])
			sec.Fields = append(sec.Fields, Field{
				Name:              cast.ToString(fm["name"]),
				Source:            cast.ToString(fm["source"]),
				SourceType:        cast.ToString(fm["source_type"]),
				SuppressCondition: cast.ToString(fm["suppress_condition"]),
				Format: FormatSpec{
					FormatString:    cast.ToString(format["format_string"]),
					SuppressIfZero:  cast.ToBool(format["suppress_if_zero"]),
					SuppressIfBlank: cast.ToBool(format["suppress_if_blank"]),
				},
			})
		}
		rep.Sections = append(rep.Sections, sec)
	}

	return rep, nil
}
