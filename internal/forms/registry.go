package forms

import "residence-intake/internal/model"

var registry = map[model.StepID]StepHandler{
	model.StepBasicInfo:       &BasicInfoHandler{},
	model.StepPassportInfo:    &PassportInfoHandler{},
	model.StepResidenceCard:   &ResidenceCardHandler{},
	model.StepCriminalHistory: &CriminalHistoryHandler{},
	model.StepFamilyMembers:   &FamilyMembersHandler{},
	model.StepPhotoUpload:     &PhotoUploadHandler{},
}

func init() {
	for _, h := range conditionalSteps {
		registry[h.ID()] = h
	}
}

func Get(id model.StepID) (StepHandler, bool) {
	h, ok := registry[id]
	return h, ok
}
