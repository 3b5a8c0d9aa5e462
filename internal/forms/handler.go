package forms

import "residence-intake/internal/model"

// StepHandler defines the contract for every wizard step. Validate reports
// what blocks the submission; Apply stores the accepted slice in the form.
type StepHandler interface {
	ID() model.StepID
	Title() string
	Schema(survey model.SurveyAnswers) Schema
	Validate(survey model.SurveyAnswers, values model.Values) []model.Message
	Apply(form model.FormData, survey model.SurveyAnswers, values model.Values) []model.Message
}

// AdvanceEnabled reports whether the step's values carry no critical finding.
// Conditional steps are gated by IsAdvanceEnabled.
func AdvanceEnabled(h StepHandler, survey model.SurveyAnswers, values model.Values) bool {
	if c, ok := h.(*ConditionalHandler); ok {
		return IsAdvanceEnabled(c.visa, survey.ProcedureType, values)
	}
	return !model.HasCritical(h.Validate(survey, values))
}

// MissingLabels returns the labels of the step's fields still empty.
// Conditional steps report through ValidateOnSubmit.
func MissingLabels(h StepHandler, survey model.SurveyAnswers, values model.Values) []string {
	if c, ok := h.(*ConditionalHandler); ok {
		return ValidateOnSubmit(c.visa, survey.ProcedureType, values)
	}
	return Labels(h.Schema(survey).Missing(values))
}
