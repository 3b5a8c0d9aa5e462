package model

// FormData accumulates each step's validated slice keyed by step id.
type FormData map[StepID]Values

// NewFormData returns an empty accumulator.
func NewFormData() FormData {
	return FormData{}
}

// Merge replaces the slice stored for step. Other steps are left untouched;
// there is no leaf-level merge with the previous slice.
func (f FormData) Merge(step StepID, values Values) {
	f[step] = values
}

// Step returns the slice stored for step, or nil.
func (f FormData) Step(step StepID) Values {
	return f[step]
}

// Clone copies the top level and each step slice. Evidence payloads and nested
// lists are shared.
func (f FormData) Clone() FormData {
	out := make(FormData, len(f))
	for id, values := range f {
		cp := make(Values, len(values))
		for k, v := range values {
			cp[k] = v
		}
		out[id] = cp
	}
	return out
}
