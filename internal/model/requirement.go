package model

// Category groups requirement items on the checklist.
type Category string

const (
	CategorySystem   Category = "system"
	CategoryDocument Category = "document"
)

// RequirementItem is a single checklist entry. Only Checked changes after
// the item is resolved.
type RequirementItem struct {
	ID          string   `json:"id"`
	Category    Category `json:"category"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Required    bool     `json:"required"`
	Checked     bool     `json:"checked"`
}

// RequirementList holds the environment prerequisites shared by every
// applicant followed by the case-specific documents.
type RequirementList struct {
	SystemRequirements   []RequirementItem `json:"system_requirements"`
	DocumentRequirements []RequirementItem `json:"document_requirements"`
}

// Items returns system items followed by document items.
func (l RequirementList) Items() []RequirementItem {
	items := make([]RequirementItem, 0, len(l.SystemRequirements)+len(l.DocumentRequirements))
	items = append(items, l.SystemRequirements...)
	return append(items, l.DocumentRequirements...)
}

// SetChecked toggles the checked flag of the item with the given id in place.
// It returns false when no item matches.
func (l *RequirementList) SetChecked(id string, checked bool) bool {
	found := false
	for i := range l.SystemRequirements {
		if l.SystemRequirements[i].ID == id {
			l.SystemRequirements[i].Checked = checked
			found = true
		}
	}
	for i := range l.DocumentRequirements {
		if l.DocumentRequirements[i].ID == id {
			l.DocumentRequirements[i].Checked = checked
			found = true
		}
	}
	return found
}
