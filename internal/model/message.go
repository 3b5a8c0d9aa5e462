package model

// Message reports one validation finding for a step submission.
type Message struct {
	ID      int    `json:"id"`
	Level   string `json:"level"`
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

const (
	LevelCritical = "CRITICAL"
	LevelWarning  = "WARNING"
)

const (
	CodeMissingField      = "MISSING_FIELD"
	CodeMissingOneOf      = "MISSING_ONE_OF"
	CodeInvalidFormat     = "INVALID_FORMAT"
	CodeMissingMember     = "MISSING_FAMILY_MEMBER"
	CodeInvalidSurvey     = "INVALID_SURVEY"
	CodeInvalidInput      = "INVALID_INPUT"
	CodeUnsupported       = "UNSUPPORTED_COMBINATION"
	CodeUnknownStep       = "UNKNOWN_STEP"
	CodeStepNotInSequence = "STEP_NOT_IN_SEQUENCE"
)

// HasCritical reports whether any message blocks the submission.
func HasCritical(msgs []Message) bool {
	for _, m := range msgs {
		if m.Level == LevelCritical {
			return true
		}
	}
	return false
}
