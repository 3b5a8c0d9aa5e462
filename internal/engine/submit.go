package engine

import (
	"residence-intake/internal/forms"
	"residence-intake/internal/jsonpatch"
	"residence-intake/internal/model"
)

// submitStep validates values against h and, when nothing critical is found,
// applies them to form and returns the resulting change record. On a critical
// finding form is left untouched and ok is false.
func submitStep(form model.FormData, survey model.SurveyAnswers, h forms.StepHandler, values model.Values) (msgs []model.Message, patch []jsonpatch.Operation, ok bool, err error) {
	msgs = h.Validate(survey, values)
	if model.HasCritical(msgs) {
		return msgs, nil, false, nil
	}

	before := form.Clone()
	applyMsgs := h.Apply(form, survey, values)
	msgs = append(msgs, applyMsgs...)
	if model.HasCritical(applyMsgs) {
		restore(form, before)
		return msgs, nil, false, nil
	}

	patch, err = jsonpatch.Between(before, form)
	if err != nil {
		return msgs, nil, true, err
	}
	return msgs, patch, true, nil
}

func restore(form, snapshot model.FormData) {
	for id := range form {
		delete(form, id)
	}
	for id, values := range snapshot {
		form[id] = values
	}
}

// stepNotFound explains why a submitted step id cannot be processed against
// the live sequence.
func stepNotFound(id model.StepID) model.Message {
	if _, known := forms.Get(id); known {
		return model.Message{
			Level:   model.LevelCritical,
			Code:    model.CodeStepNotInSequence,
			Message: "Step " + string(id) + " is not part of the sequence for these survey answers",
		}
	}
	return model.Message{
		Level:   model.LevelCritical,
		Code:    model.CodeUnknownStep,
		Message: "Unknown step: " + string(id),
	}
}
