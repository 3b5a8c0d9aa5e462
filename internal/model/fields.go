package model

import (
	"bytes"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
)

// Evidence is an uploaded document. The payload is opaque: nothing here looks
// at its size, MIME type or pixels.
type Evidence struct {
	Ref  string `json:"ref,omitempty"`
	Name string `json:"name,omitempty"`
	Data []byte `json:"data,omitempty"`
}

// FieldValue is one form field: free text, an evidence upload, or a list of
// nested records (family members).
type FieldValue struct {
	Text     string
	Evidence *Evidence
	List     []Values
}

// Text builds a text field value.
func Text(s string) FieldValue {
	return FieldValue{Text: s}
}

// File builds an evidence field value from a stored reference and payload.
func File(ref string, data []byte) FieldValue {
	return FieldValue{Evidence: &Evidence{Ref: ref, Data: data}}
}

// List builds a field value holding nested records.
func List(items ...Values) FieldValue {
	return FieldValue{List: items}
}

// Present reports whether the value counts as filled in: non-blank text, an
// evidence with a reference or payload, or a non-empty list.
func (v FieldValue) Present() bool {
	switch {
	case v.Evidence != nil:
		return v.Evidence.Ref != "" || len(v.Evidence.Data) > 0
	case v.List != nil:
		return len(v.List) > 0
	default:
		return strings.TrimSpace(v.Text) != ""
	}
}

// String renders the value for summaries and logs without leaking payloads.
func (v FieldValue) String() string {
	switch {
	case v.Evidence != nil:
		if v.Evidence.Name != "" {
			return v.Evidence.Name
		}
		return v.Evidence.Ref
	case v.List != nil:
		return fmt.Sprintf("%d entries", len(v.List))
	default:
		return v.Text
	}
}

func (v FieldValue) MarshalJSON() ([]byte, error) {
	switch {
	case v.Evidence != nil:
		return json.Marshal(v.Evidence)
	case v.List != nil:
		return json.Marshal(v.List)
	default:
		return json.Marshal(v.Text)
	}
}

func (v *FieldValue) UnmarshalJSON(data []byte) error {
	*v = FieldValue{}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	switch trimmed[0] {
	case '"':
		return json.Unmarshal(trimmed, &v.Text)
	case '{':
		v.Evidence = &Evidence{}
		return json.Unmarshal(trimmed, v.Evidence)
	case '[':
		v.List = []Values{}
		return json.Unmarshal(trimmed, &v.List)
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(trimmed, &b); err != nil {
			return err
		}
		if b {
			v.Text = "yes"
		} else {
			v.Text = "no"
		}
		return nil
	default:
		return fmt.Errorf("unsupported field value %s", trimmed)
	}
}

// Values is the partial record submitted for one step, keyed by field name.
type Values map[string]FieldValue

// Present reports whether the named field is filled in.
func (v Values) Present(name string) bool {
	fv, ok := v[name]
	return ok && fv.Present()
}

// Text returns the trimmed text of the named field.
func (v Values) Text(name string) string {
	return strings.TrimSpace(v[name].Text)
}
