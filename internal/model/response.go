package model

import "residence-intake/internal/jsonpatch"

type RequirementsResponse struct {
	Requirements   RequirementList `json:"requirements"`
	AllMet         bool            `json:"all_met"`
	CatalogCovered bool            `json:"catalog_covered"`
}

type CheckResponse struct {
	AllMet bool `json:"all_met"`
}

type StepsResponse struct {
	Steps []WizardStep `json:"steps"`
}

type ResolveStepResponse struct {
	Index  int    `json:"index"`
	StepID StepID `json:"step_id"`
}

// MissingField names a mandatory field still empty at submit time.
type MissingField struct {
	Field string `json:"field"`
	Label string `json:"label"`
}

type ValidateStepResponse struct {
	AdvanceEnabled bool           `json:"advance_enabled"`
	Missing        []MissingField `json:"missing"`
	Messages       []Message      `json:"messages"`
}

type ApplicationResponse struct {
	ApplicationID string                `json:"application_id"`
	Outcome       string                `json:"outcome"`
	StartedAt     string                `json:"started_at"`
	CompletedAt   string                `json:"completed_at"`
	DurationMs    int64                 `json:"duration_ms"`
	Messages      []Message             `json:"messages"`
	Submissions   []ProcessedSubmission `json:"submissions"`
	FormData      FormData              `json:"form_data"`
	CurrentStep   int                   `json:"current_step"`
	NextStepID    StepID                `json:"next_step_id,omitempty"`
	Completed     bool                  `json:"completed"`
}

type ProcessedSubmission struct {
	Submission     Submission            `json:"submission"`
	MessageIndexes []int                 `json:"message_indexes,omitempty"`
	Patch          []jsonpatch.Operation `json:"patch,omitempty"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)
