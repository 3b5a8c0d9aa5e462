package forms

import "residence-intake/internal/model"

var photoUploadSchema = Schema{
	OneOf: [][]Field{{fieldPhotoFile, fieldPhotoDataURL}},
}

type PhotoUploadHandler struct{}

func (h *PhotoUploadHandler) ID() model.StepID { return model.StepPhotoUpload }

func (h *PhotoUploadHandler) Title() string { return "証明写真" }

func (h *PhotoUploadHandler) Schema(model.SurveyAnswers) Schema { return photoUploadSchema }

func (h *PhotoUploadHandler) Validate(survey model.SurveyAnswers, values model.Values) []model.Message {
	if photoUploadSchema.Satisfied(values) {
		return nil
	}
	return []model.Message{{
		Level:   model.LevelCritical,
		Code:    model.CodeMissingOneOf,
		Field:   fieldPhotoFile.Name,
		Message: "証明写真をアップロードしてください",
	}}
}

func (h *PhotoUploadHandler) Apply(form model.FormData, survey model.SurveyAnswers, values model.Values) []model.Message {
	form.Merge(h.ID(), photoUploadSchema.Keep(values))
	return nil
}
