package forms

import "residence-intake/internal/model"

var basicInfoSchema = Schema{
	Mandatory: []Field{
		fieldLastNameEn, fieldFirstNameEn, fieldLastNameJa, fieldFirstNameJa,
		fieldNationality, fieldBirthDate,
		fieldPostalCode, fieldCountry, fieldPrefecture, fieldCity, fieldStreet,
		fieldPhone, fieldEmail,
	},
	Optional: []Field{fieldBuilding},
}

type BasicInfoHandler struct{}

func (h *BasicInfoHandler) ID() model.StepID { return model.StepBasicInfo }

func (h *BasicInfoHandler) Title() string { return "基本情報" }

func (h *BasicInfoHandler) Schema(model.SurveyAnswers) Schema { return basicInfoSchema }

func (h *BasicInfoHandler) Validate(survey model.SurveyAnswers, values model.Values) []model.Message {
	msgs := basicInfoSchema.missingMessages(values)

	if values.Present(fieldPhone.Name) && !validPhone(values.Text(fieldPhone.Name)) {
		msgs = append(msgs, invalidFormat(fieldPhone, "電話番号の形式が正しくありません"))
	}
	if values.Present(fieldEmail.Name) && !validEmail(values.Text(fieldEmail.Name)) {
		msgs = append(msgs, invalidFormat(fieldEmail, "メールアドレスの形式が正しくありません"))
	}

	return msgs
}

func (h *BasicInfoHandler) Apply(form model.FormData, survey model.SurveyAnswers, values model.Values) []model.Message {
	form.Merge(h.ID(), basicInfoSchema.Keep(values))
	return nil
}
