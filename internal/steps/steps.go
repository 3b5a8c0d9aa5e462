// Package steps builds the ordered wizard sequence for a survey and resolves
// section names to positions in it.
package steps

import (
	"residence-intake/internal/forms"
	"residence-intake/internal/model"
)

// Step is one wizard entry together with the handler that validates it.
type Step struct {
	model.WizardStep
	Form forms.StepHandler `json:"-"`
}

var (
	head = []model.StepID{
		model.StepBasicInfo,
		model.StepPassportInfo,
		model.StepResidenceCard,
		model.StepCriminalHistory,
		model.StepFamilyMembers,
	}
	tail = []model.StepID{model.StepPhotoUpload}
)

// Build returns the fixed steps in order, the visa's conditional step after
// the family members step when the visa has one, and the photo step last. It
// is a pure function of the survey.
func Build(survey model.SurveyAnswers) []Step {
	out := make([]Step, 0, len(head)+len(tail)+1)
	for _, id := range head {
		out = append(out, fixed(id, survey))
	}
	if h, ok := forms.ConditionalFor(survey.VisaType); ok {
		out = append(out, Step{
			WizardStep: model.WizardStep{ID: h.ID(), Title: h.Title(), Required: true, Conditional: true},
			Form:       h,
		})
	}
	for _, id := range tail {
		out = append(out, fixed(id, survey))
	}
	return out
}

func fixed(id model.StepID, survey model.SurveyAnswers) Step {
	h, ok := forms.Get(id)
	if !ok {
		panic("steps: no handler registered for " + string(id))
	}
	required := true
	if id == model.StepResidenceCard {
		required = survey.IsRenewal()
	}
	return Step{
		WizardStep: model.WizardStep{ID: id, Title: h.Title(), Required: required},
		Form:       h,
	}
}

// WizardSteps strips the handlers for serialization.
func WizardSteps(list []Step) []model.WizardStep {
	out := make([]model.WizardStep, len(list))
	for i, s := range list {
		out[i] = s.WizardStep
	}
	return out
}

var aliases = map[string]model.StepID{
	"basic":       model.StepBasicInfo,
	"passport":    model.StepPassportInfo,
	"residence":   model.StepResidenceCard,
	"criminal":    model.StepCriminalHistory,
	"family":      model.StepFamilyMembers,
	"engineer":    model.StepEngineerInfo,
	"specific1":   model.StepSpecificSkill1,
	"specific2":   model.StepSpecificSkill2,
	"student":     model.StepStudentInfo,
	"family-stay": model.StepFamilyStay,
	"photo":       model.StepPhotoUpload,
}

// IndexOf resolves a section name or step id against list. A section whose
// step is not in list, such as another visa's conditional step, returns
// (-1, false).
func IndexOf(list []Step, section string) (int, bool) {
	id := model.StepID(section)
	if alias, ok := aliases[section]; ok {
		id = alias
	}
	for i, s := range list {
		if s.ID == id {
			return i, true
		}
	}
	return -1, false
}
