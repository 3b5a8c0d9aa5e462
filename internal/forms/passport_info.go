package forms

import "residence-intake/internal/model"

var passportInfoSchema = Schema{
	Mandatory: []Field{fieldPassportNumber, fieldIssueDate, fieldPassportExpiry, fieldIssueCountry},
}

type PassportInfoHandler struct{}

func (h *PassportInfoHandler) ID() model.StepID { return model.StepPassportInfo }

func (h *PassportInfoHandler) Title() string { return "パスポート情報" }

func (h *PassportInfoHandler) Schema(model.SurveyAnswers) Schema { return passportInfoSchema }

func (h *PassportInfoHandler) Validate(survey model.SurveyAnswers, values model.Values) []model.Message {
	msgs := passportInfoSchema.missingMessages(values)

	if values.Present(fieldPassportNumber.Name) && !validPassportNumber(values.Text(fieldPassportNumber.Name)) {
		msgs = append(msgs, invalidFormat(fieldPassportNumber, "パスポート番号は6〜9桁の英数字で入力してください"))
	}

	return msgs
}

func (h *PassportInfoHandler) Apply(form model.FormData, survey model.SurveyAnswers, values model.Values) []model.Message {
	form.Merge(h.ID(), passportInfoSchema.Keep(values))
	return nil
}
