package forms

import (
	"fmt"
	"strings"

	"residence-intake/internal/model"
)

// FieldKind tells renderers which input to show. Validation only looks at
// presence, whatever the kind.
type FieldKind int

const (
	KindText FieldKind = iota
	KindEvidence
	KindList
)

// Field is a named form input with its display label.
type Field struct {
	Name  string
	Label string
	Kind  FieldKind
}

// Schema is the field requirement set of one step for one survey: fields that
// must be filled, groups of which at least one must be filled, and fields
// that may be left empty.
type Schema struct {
	Mandatory []Field
	OneOf     [][]Field
	Optional  []Field
}

// Declared returns every field the schema knows, mandatory first.
func (s Schema) Declared() []Field {
	fields := make([]Field, 0, len(s.Mandatory)+len(s.Optional)+2*len(s.OneOf))
	fields = append(fields, s.Mandatory...)
	for _, group := range s.OneOf {
		fields = append(fields, group...)
	}
	return append(fields, s.Optional...)
}

// Declares reports whether name is one of the schema's fields.
func (s Schema) Declares(name string) bool {
	for _, f := range s.Declared() {
		if f.Name == name {
			return true
		}
	}
	return false
}

// Missing returns the mandatory fields still empty, followed by every field
// of each one-of group where none is filled.
func (s Schema) Missing(values model.Values) []Field {
	var missing []Field
	for _, f := range s.Mandatory {
		if !values.Present(f.Name) {
			missing = append(missing, f)
		}
	}
	for _, group := range s.OneOf {
		if !anyPresent(group, values) {
			missing = append(missing, group...)
		}
	}
	return missing
}

// Satisfied reports whether nothing is missing.
func (s Schema) Satisfied(values model.Values) bool {
	for _, f := range s.Mandatory {
		if !values.Present(f.Name) {
			return false
		}
	}
	for _, group := range s.OneOf {
		if !anyPresent(group, values) {
			return false
		}
	}
	return true
}

// Keep drops every key the schema does not declare.
func (s Schema) Keep(values model.Values) model.Values {
	kept := make(model.Values, len(values))
	for _, f := range s.Declared() {
		if v, ok := values[f.Name]; ok {
			kept[f.Name] = v
		}
	}
	return kept
}

func (s Schema) missingMessages(values model.Values) []model.Message {
	var msgs []model.Message
	for _, f := range s.Mandatory {
		if !values.Present(f.Name) {
			msgs = append(msgs, model.Message{
				Level:   model.LevelCritical,
				Code:    model.CodeMissingField,
				Field:   f.Name,
				Message: fmt.Sprintf("%sは必須です", f.Label),
			})
		}
	}
	for _, group := range s.OneOf {
		if anyPresent(group, values) {
			continue
		}
		text := fmt.Sprintf("%sのいずれかは必須です", strings.Join(Labels(group), "または"))
		for _, f := range group {
			msgs = append(msgs, model.Message{
				Level:   model.LevelCritical,
				Code:    model.CodeMissingOneOf,
				Field:   f.Name,
				Message: text,
			})
		}
	}
	return msgs
}

func anyPresent(group []Field, values model.Values) bool {
	for _, f := range group {
		if values.Present(f.Name) {
			return true
		}
	}
	return false
}

// Labels returns the display labels of fields in order.
func Labels(fields []Field) []string {
	labels := make([]string, 0, len(fields))
	for _, f := range fields {
		labels = append(labels, f.Label)
	}
	return labels
}

// optional turns fields into an all-optional schema.
func optional(fields ...Field) Schema {
	return Schema{Optional: fields}
}
