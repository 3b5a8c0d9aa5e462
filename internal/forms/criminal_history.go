package forms

import "residence-intake/internal/model"

var criminalHistorySchema = Schema{
	Mandatory: []Field{fieldHasCriminal, fieldHasViolation, fieldHasDeportation},
	Optional:  []Field{fieldCriminalDetails, fieldViolationDetail, fieldDeportationInfo},
}

type CriminalHistoryHandler struct{}

func (h *CriminalHistoryHandler) ID() model.StepID { return model.StepCriminalHistory }

func (h *CriminalHistoryHandler) Title() string { return "犯罪歴" }

func (h *CriminalHistoryHandler) Schema(model.SurveyAnswers) Schema { return criminalHistorySchema }

func (h *CriminalHistoryHandler) Validate(survey model.SurveyAnswers, values model.Values) []model.Message {
	return criminalHistorySchema.missingMessages(values)
}

func (h *CriminalHistoryHandler) Apply(form model.FormData, survey model.SurveyAnswers, values model.Values) []model.Message {
	form.Merge(h.ID(), criminalHistorySchema.Keep(values))
	return nil
}
