package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"residence-intake/internal/model"
)

var renewal = model.SurveyAnswers{VisaType: model.VisaEngineer, ProcedureType: model.ProcedureRenewal}

func validBasicInfo() model.Values {
	return model.Values{
		"lastNameEn":  model.Text("Nguyen"),
		"firstNameEn": model.Text("An"),
		"lastNameJa":  model.Text("グエン"),
		"firstNameJa": model.Text("アン"),
		"nationality": model.Text("Vietnam"),
		"birthDate":   model.Text("1990-04-01"),
		"postalCode":  model.Text("160-0023"),
		"country":     model.Text("Japan"),
		"prefecture":  model.Text("東京都"),
		"city":        model.Text("新宿区"),
		"street":      model.Text("西新宿2-8-1"),
		"phone":       model.Text("+81 90-1234-5678"),
		"email":       model.Text("an@example.com"),
	}
}

func codes(msgs []model.Message) []string {
	out := make([]string, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, m.Code+":"+m.Field)
	}
	return out
}

func TestRegistryHasEveryStep(t *testing.T) {
	ids := []model.StepID{
		model.StepBasicInfo, model.StepPassportInfo, model.StepResidenceCard,
		model.StepCriminalHistory, model.StepFamilyMembers,
		model.StepEngineerInfo, model.StepSpecificSkill1, model.StepSpecificSkill2,
		model.StepStudentInfo, model.StepFamilyStay, model.StepPhotoUpload,
	}
	for _, id := range ids {
		h, ok := Get(id)
		require.True(t, ok, "step %s", id)
		assert.Equal(t, id, h.ID())
		assert.NotEmpty(t, h.Title())
	}
	_, ok := Get("payment")
	assert.False(t, ok)
}

func TestBasicInfo(t *testing.T) {
	h := &BasicInfoHandler{}

	assert.Empty(t, h.Validate(renewal, validBasicInfo()))

	values := validBasicInfo()
	values["email"] = model.Text("not-an-email")
	values["phone"] = model.Text("0312")
	assert.Equal(t, []string{"INVALID_FORMAT:phone", "INVALID_FORMAT:email"}, codes(h.Validate(renewal, values)))

	values = validBasicInfo()
	values["phone"] = model.Text("090-1234-abcd")
	assert.Equal(t, []string{"INVALID_FORMAT:phone"}, codes(h.Validate(renewal, values)))

	values = validBasicInfo()
	delete(values, "street")
	assert.Equal(t, []string{"MISSING_FIELD:street"}, codes(h.Validate(renewal, values)))
}

func TestPassportNumberFormat(t *testing.T) {
	h := &PassportInfoHandler{}
	values := model.Values{
		"passportNumber": model.Text("tk1234567"),
		"issueDate":      model.Text("2020-01-01"),
		"expiryDate":     model.Text("2030-01-01"),
		"issueCountry":   model.Text("Vietnam"),
	}
	assert.Empty(t, h.Validate(renewal, values))

	values["passportNumber"] = model.Text("AB12")
	assert.Equal(t, []string{"INVALID_FORMAT:passportNumber"}, codes(h.Validate(renewal, values)))

	values["passportNumber"] = model.Text("AB-12345")
	assert.Equal(t, []string{"INVALID_FORMAT:passportNumber"}, codes(h.Validate(renewal, values)))
}

func TestResidenceCardMandatoryOnlyForRenewal(t *testing.T) {
	h := &ResidenceCardHandler{}

	assert.Len(t, h.Validate(renewal, model.Values{}), 3)

	change := model.SurveyAnswers{VisaType: model.VisaEngineer, ProcedureType: model.ProcedureChange}
	assert.Empty(t, h.Validate(change, model.Values{}))

	bad := model.Values{"cardNumber": model.Text("AB1234")}
	assert.Equal(t, []string{"INVALID_FORMAT:cardNumber"}, codes(h.Validate(change, bad)))

	good := model.Values{"cardNumber": model.Text("AB12345678CD")}
	assert.Empty(t, h.Validate(change, good))
}

func TestCriminalHistory(t *testing.T) {
	h := &CriminalHistoryHandler{}
	values := model.Values{
		"hasCriminalHistory":    model.Text("no"),
		"hasViolationHistory":   model.Text("no"),
		"hasDeportationHistory": model.Text("no"),
	}
	assert.Empty(t, h.Validate(renewal, values))

	delete(values, "hasViolationHistory")
	assert.Equal(t, []string{"MISSING_FIELD:hasViolationHistory"}, codes(h.Validate(renewal, values)))
}

func TestFamilyMembers(t *testing.T) {
	h := &FamilyMembersHandler{}

	assert.Equal(t, []string{"MISSING_FIELD:hasFamily"}, codes(h.Validate(renewal, model.Values{})))
	assert.Empty(t, h.Validate(renewal, model.Values{"hasFamily": model.Text("no")}))

	emptyMember := model.Values{
		"hasFamily":     model.Text("yes"),
		"familyMembers": model.List(model.Values{"name": model.Text(" ")}),
	}
	assert.Equal(t, []string{"MISSING_FAMILY_MEMBER:familyMembers"}, codes(h.Validate(renewal, emptyMember)))

	withMember := model.Values{
		"hasFamily":     model.Text("yes"),
		"familyMembers": model.List(model.Values{"relationship": model.Text("spouse")}),
	}
	assert.Empty(t, h.Validate(renewal, withMember))
}

func TestFamilyMembersApplyClearsListWithoutFamily(t *testing.T) {
	h := &FamilyMembersHandler{}
	form := model.NewFormData()

	h.Apply(form, renewal, model.Values{
		"hasFamily":     model.Text("no"),
		"familyMembers": model.List(model.Values{"name": model.Text("Mai")}),
	})

	stored := form.Step(model.StepFamilyMembers)
	require.Contains(t, stored, "familyMembers")
	assert.NotNil(t, stored["familyMembers"].List)
	assert.Empty(t, stored["familyMembers"].List)
}

func TestPhotoUpload(t *testing.T) {
	h := &PhotoUploadHandler{}

	msgs := h.Validate(renewal, model.Values{})
	require.Len(t, msgs, 1)
	assert.Equal(t, model.CodeMissingOneOf, msgs[0].Code)

	assert.Empty(t, h.Validate(renewal, model.Values{"photoDataUrl": model.Text("data:image/jpeg;base64,AAAA")}))
	assert.Empty(t, h.Validate(renewal, model.Values{"photoFile": model.File("photo.jpg", nil)}))
}
