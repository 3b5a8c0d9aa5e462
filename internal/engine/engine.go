package engine

import (
	"time"

	"github.com/google/uuid"

	dErrors "residence-intake/internal/domainerrors"
	"residence-intake/internal/model"
	"residence-intake/internal/steps"
)

// Process replays the submissions in order on top of the request's form data,
// the way a user would walk the wizard. It stops at the first submission that
// produces a critical message. The request is not modified.
func Process(req *model.ApplicationRequest, policy IntakePolicy) *model.ApplicationResponse {
	start := time.Now()

	form := model.NewFormData()
	if req.FormData != nil {
		form = req.FormData.Clone()
	}

	var allMessages []model.Message
	var processed []model.ProcessedSubmission
	outcome := model.OutcomeSuccess
	current := 0

	var list []steps.Step
	if err := policy.Validate(req.Survey); err != nil {
		allMessages = append(allMessages, model.Message{
			ID:      0,
			Level:   model.LevelCritical,
			Code:    surveyMessageCode(err),
			Message: err.Error(),
		})
		outcome = model.OutcomeFailure
	} else {
		list = steps.Build(req.Survey)
	}

	for _, sub := range req.Submissions {
		if outcome == model.OutcomeFailure {
			break
		}

		index, ok := steps.IndexOf(list, string(sub.StepID))
		if !ok {
			msg := stepNotFound(sub.StepID)
			msg.ID = len(allMessages)
			allMessages = append(allMessages, msg)
			processed = append(processed, model.ProcessedSubmission{
				Submission:     sub,
				MessageIndexes: []int{msg.ID},
			})
			outcome = model.OutcomeFailure
			break
		}

		msgs, patch, applied, err := submitStep(form, req.Survey, list[index].Form, sub.Values)
		if err != nil {
			msgs = append(msgs, model.Message{
				Level:   model.LevelWarning,
				Code:    "PATCH_UNAVAILABLE",
				Message: err.Error(),
			})
		}

		var msgIndexes []int
		for _, m := range msgs {
			m.ID = len(allMessages)
			allMessages = append(allMessages, m)
			msgIndexes = append(msgIndexes, m.ID)
		}

		processed = append(processed, model.ProcessedSubmission{
			Submission:     sub,
			MessageIndexes: msgIndexes,
			Patch:          patch,
		})

		if !applied {
			outcome = model.OutcomeFailure
			break
		}

		current = index + 1
	}

	resp := &model.ApplicationResponse{
		ApplicationID: uuid.New().String(),
		Outcome:       outcome,
		Messages:      allMessages,
		Submissions:   processed,
		FormData:      form,
		CurrentStep:   current,
		Completed:     len(list) > 0 && complete(list, form),
	}
	if current < len(list) {
		resp.NextStepID = list[current].ID
	}

	if resp.Messages == nil {
		resp.Messages = []model.Message{}
	}
	if resp.Submissions == nil {
		resp.Submissions = []model.ProcessedSubmission{}
	}

	elapsed := time.Since(start)
	now := time.Now().UTC()
	resp.StartedAt = now.Add(-elapsed).Format(time.RFC3339)
	resp.CompletedAt = now.Format(time.RFC3339)
	resp.DurationMs = elapsed.Milliseconds()

	return resp
}

// complete reports whether every required step has a stored slice.
func complete(list []steps.Step, form model.FormData) bool {
	for _, s := range list {
		if !s.Required {
			continue
		}
		if _, ok := form[s.ID]; !ok {
			return false
		}
	}
	return true
}

// surveyMessageCode keeps the gate's error code in the message taxonomy.
func surveyMessageCode(err error) string {
	switch dErrors.CodeOf(err) {
	case dErrors.CodeInvalidInput:
		return model.CodeInvalidInput
	case dErrors.CodeUnsupportedCombination:
		return model.CodeUnsupported
	default:
		return model.CodeInvalidSurvey
	}
}
