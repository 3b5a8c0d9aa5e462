package forms

import "residence-intake/internal/model"

// ResidenceCardHandler is always part of the sequence. Its fields are only
// mandatory when renewing.
type ResidenceCardHandler struct{}

func (h *ResidenceCardHandler) ID() model.StepID { return model.StepResidenceCard }

func (h *ResidenceCardHandler) Title() string { return "在留カード情報" }

func (h *ResidenceCardHandler) Schema(survey model.SurveyAnswers) Schema {
	fields := []Field{fieldCardNumber, fieldCardExpiry, fieldCurrentVisa}
	if survey.IsRenewal() {
		return Schema{Mandatory: fields}
	}
	return optional(fields...)
}

func (h *ResidenceCardHandler) Validate(survey model.SurveyAnswers, values model.Values) []model.Message {
	msgs := h.Schema(survey).missingMessages(values)

	if values.Present(fieldCardNumber.Name) && !validResidenceCardNumber(values.Text(fieldCardNumber.Name)) {
		msgs = append(msgs, invalidFormat(fieldCardNumber, "在留カード番号は12桁の英数字で入力してください"))
	}

	return msgs
}

func (h *ResidenceCardHandler) Apply(form model.FormData, survey model.SurveyAnswers, values model.Values) []model.Message {
	form.Merge(h.ID(), h.Schema(survey).Keep(values))
	return nil
}
