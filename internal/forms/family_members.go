package forms

import (
	"strings"

	"residence-intake/internal/model"
)

var familyMembersSchema = Schema{
	Mandatory: []Field{fieldHasFamily},
	Optional:  []Field{fieldFamilyMembers},
}

// memberKeys are the member fields of which at least one must be filled for
// the member to count.
var memberKeys = []string{"name", "relationship", "nationality"}

type FamilyMembersHandler struct{}

func (h *FamilyMembersHandler) ID() model.StepID { return model.StepFamilyMembers }

func (h *FamilyMembersHandler) Title() string { return "親族・同居者" }

func (h *FamilyMembersHandler) Schema(model.SurveyAnswers) Schema { return familyMembersSchema }

func (h *FamilyMembersHandler) Validate(survey model.SurveyAnswers, values model.Values) []model.Message {
	msgs := familyMembersSchema.missingMessages(values)

	if hasFamily(values) && !anyMember(values[fieldFamilyMembers.Name].List) {
		msgs = append(msgs, model.Message{
			Level:   model.LevelCritical,
			Code:    model.CodeMissingMember,
			Field:   fieldFamilyMembers.Name,
			Message: "親族・同居者を1名以上入力してください",
		})
	}

	return msgs
}

func (h *FamilyMembersHandler) Apply(form model.FormData, survey model.SurveyAnswers, values model.Values) []model.Message {
	kept := familyMembersSchema.Keep(values)
	if !hasFamily(values) {
		kept[fieldFamilyMembers.Name] = model.FieldValue{List: []model.Values{}}
	}
	form.Merge(h.ID(), kept)
	return nil
}

func hasFamily(values model.Values) bool {
	return strings.EqualFold(values.Text(fieldHasFamily.Name), "yes")
}

func anyMember(members []model.Values) bool {
	for _, m := range members {
		for _, key := range memberKeys {
			if m.Present(key) {
				return true
			}
		}
	}
	return false
}
