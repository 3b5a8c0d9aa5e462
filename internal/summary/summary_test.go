package summary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"residence-intake/internal/model"
	"residence-intake/internal/requirements"
)

var generatedAt = time.Date(2026, 4, 1, 9, 30, 0, 0, time.UTC)

func TestRenderApplicant(t *testing.T) {
	form := model.NewFormData()
	form.Merge(model.StepBasicInfo, model.Values{
		"lastNameEn":  model.Text("Nguyen"),
		"firstNameEn": model.Text("An"),
		"lastNameJa":  model.Text("グエン"),
		"nationality": model.Text("Vietnam"),
		"postalCode":  model.Text("160-0023"),
		"prefecture":  model.Text("東京都"),
		"city":        model.Text("新宿区"),
	})
	form.Merge(model.StepPassportInfo, model.Values{"passportNumber": model.Text("C1234567")})

	survey := model.SurveyAnswers{VisaType: model.VisaEngineer, ProcedureType: model.ProcedureChange}
	out, err := Render(survey, form, nil, generatedAt)
	require.NoError(t, err)

	assert.Contains(t, out, "氏名（英語）: Nguyen An\n")
	assert.Contains(t, out, "氏名（日本語）: \n")
	assert.Contains(t, out, "住所: 〒160-0023 東京都 新宿区\n")
	assert.Contains(t, out, "パスポート番号: C1234567\n")
	assert.Contains(t, out, "在留資格: engineer\n")
	assert.Contains(t, out, "手続き種類: change\n")
	assert.Contains(t, out, "生成日時: 2026/4/1 09:30:00")
	assert.NotContains(t, out, "続柄")
	assert.NotContains(t, out, "必要書類")
	assert.NotContains(t, out, "技人国情報")
}

func TestRenderConditionalAndChecklist(t *testing.T) {
	survey := model.SurveyAnswers{
		VisaType:       model.VisaFamily,
		ProcedureType:  model.ProcedureRenewal,
		FamilyRelation: model.RelationSpouse,
	}
	form := model.NewFormData()
	form.Merge(model.StepFamilyStay, model.Values{
		"relationshipCertificate": {Evidence: &model.Evidence{Ref: "upload-1", Name: "marriage.pdf"}},
		"dependentInfo":           model.Text("Nguyen Binh"),
	})

	reqs := requirements.Resolve(requirements.Default(), survey)
	require.True(t, reqs.SetChecked("income-certificate", true))

	out, err := Render(survey, form, &reqs, generatedAt)
	require.NoError(t, err)

	assert.Contains(t, out, "続柄: spouse\n")
	assert.Contains(t, out, "家族滞在情報:\n関係証明書: marriage.pdf\n扶養者情報: Nguyen Binh\n")
	assert.Contains(t, out, "必要書類:\n")
	assert.Contains(t, out, "[x] ")
	assert.Contains(t, out, "[ ] ")
}

func TestRenderEmptyForm(t *testing.T) {
	out, err := Render(model.SurveyAnswers{}, model.NewFormData(), nil, generatedAt)
	require.NoError(t, err)
	assert.Contains(t, out, "VISA申請書")
	assert.Contains(t, out, "住所: \n")
}
