package steps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"residence-intake/internal/model"
)

func ids(list []Step) []model.StepID {
	out := make([]model.StepID, len(list))
	for i, s := range list {
		out[i] = s.ID
	}
	return out
}

func TestBuildEngineerRenewal(t *testing.T) {
	list := Build(model.SurveyAnswers{VisaType: model.VisaEngineer, ProcedureType: model.ProcedureRenewal})

	assert.Equal(t, []model.StepID{
		model.StepBasicInfo,
		model.StepPassportInfo,
		model.StepResidenceCard,
		model.StepCriminalHistory,
		model.StepFamilyMembers,
		model.StepEngineerInfo,
		model.StepPhotoUpload,
	}, ids(list))
	assert.True(t, list[2].Required)
	assert.True(t, list[5].Conditional)
	for _, s := range list {
		require.NotNil(t, s.Form, "step %s", s.ID)
		assert.Equal(t, s.ID, s.Form.ID())
	}
}

func TestBuildResidenceStepOptionalOutsideRenewal(t *testing.T) {
	list := Build(model.SurveyAnswers{VisaType: model.VisaStudent, ProcedureType: model.ProcedureChange})

	require.Len(t, list, 7)
	assert.Equal(t, model.StepResidenceCard, list[2].ID)
	assert.False(t, list[2].Required)
	assert.Equal(t, model.StepStudentInfo, list[5].ID)
}

func TestBuildUnknownVisaHasNoConditionalStep(t *testing.T) {
	list := Build(model.SurveyAnswers{VisaType: "tourist", ProcedureType: model.ProcedureRenewal})

	assert.Len(t, list, 6)
	assert.Equal(t, model.StepPhotoUpload, list[len(list)-1].ID)
}

func TestBuildIsDeterministic(t *testing.T) {
	survey := model.SurveyAnswers{VisaType: model.VisaFamily, ProcedureType: model.ProcedureRenewal, FamilyRelation: model.RelationSpouse}
	assert.Equal(t, WizardSteps(Build(survey)), WizardSteps(Build(survey)))
}

func TestIndexOf(t *testing.T) {
	list := Build(model.SurveyAnswers{VisaType: model.VisaSpecificSkill2, ProcedureType: model.ProcedureChange})

	tests := []struct {
		section string
		index   int
		ok      bool
	}{
		{"basic", 0, true},
		{"residence", 2, true},
		{"residence-card-info", 2, true},
		{"specific2", 5, true},
		{"photo", 6, true},
		{"engineer", -1, false},
		{"payment", -1, false},
	}
	for _, tt := range tests {
		t.Run(tt.section, func(t *testing.T) {
			index, ok := IndexOf(list, tt.section)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.index, index)
		})
	}
}

var conditionalIDs = map[model.VisaType]model.StepID{
	model.VisaEngineer:       model.StepEngineerInfo,
	model.VisaSpecificSkill1: model.StepSpecificSkill1,
	model.VisaSpecificSkill2: model.StepSpecificSkill2,
	model.VisaStudent:        model.StepStudentInfo,
	model.VisaFamily:         model.StepFamilyStay,
}

func assertSingleConditional(t *testing.T, list []Step, want model.StepID) {
	t.Helper()
	count := 0
	for _, s := range list {
		if s.Conditional {
			count++
		}
	}
	assert.Equal(t, 1, count)
	require.Len(t, list, 7)
	assert.Equal(t, want, list[5].ID)
	assert.True(t, list[5].Conditional)
	assert.Equal(t, model.StepPhotoUpload, list[6].ID)
}

func TestBuildEveryVisaAndProcedure(t *testing.T) {
	for _, visa := range model.VisaTypes {
		for _, proc := range []model.ProcedureType{model.ProcedureRenewal, model.ProcedureChange} {
			t.Run(string(visa)+"/"+string(proc), func(t *testing.T) {
				survey := model.SurveyAnswers{VisaType: visa, ProcedureType: proc}
				if visa == model.VisaFamily {
					survey.FamilyRelation = model.RelationSpouse
				}
				list := Build(survey)

				assertSingleConditional(t, list, conditionalIDs[visa])
				assert.Equal(t, model.StepResidenceCard, list[2].ID)
				assert.Equal(t, proc == model.ProcedureRenewal, list[2].Required)
			})
		}
	}
}

func TestBuildFamilyIgnoresRelation(t *testing.T) {
	relations := append([]model.FamilyRelation{""}, model.FamilyRelations...)
	for _, relation := range relations {
		t.Run("relation="+string(relation), func(t *testing.T) {
			list := Build(model.SurveyAnswers{
				VisaType:       model.VisaFamily,
				ProcedureType:  model.ProcedureRenewal,
				FamilyRelation: relation,
			})
			assertSingleConditional(t, list, model.StepFamilyStay)
			assert.True(t, list[2].Required)
		})
	}
}
