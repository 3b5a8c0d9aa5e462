package requirements

import "residence-intake/internal/model"

// AllMet reports whether every required item, system or document, is
// checked. Optional items never block completion.
func AllMet(list model.RequirementList) bool {
	for _, item := range list.SystemRequirements {
		if item.Required && !item.Checked {
			return false
		}
	}
	for _, item := range list.DocumentRequirements {
		if item.Required && !item.Checked {
			return false
		}
	}
	return true
}
