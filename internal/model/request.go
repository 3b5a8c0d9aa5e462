package model

// SurveyRequest carries the survey answers for stateless lookups.
type SurveyRequest struct {
	Survey SurveyAnswers `json:"survey"`
}

type CheckRequest struct {
	Requirements RequirementList `json:"requirements"`
}

type ResolveStepRequest struct {
	Survey  SurveyAnswers `json:"survey"`
	Section string        `json:"section"`
}

type ValidateStepRequest struct {
	Survey SurveyAnswers `json:"survey"`
	StepID StepID        `json:"step_id"`
	Values Values        `json:"values"`
}

// ApplicationRequest replays a sequence of step submissions on top of the
// form data the client already holds.
type ApplicationRequest struct {
	Survey      SurveyAnswers `json:"survey"`
	FormData    FormData      `json:"form_data,omitempty"`
	Submissions []Submission  `json:"submissions"`
}

// Submission is the value set a user submitted for one step.
type Submission struct {
	StepID StepID `json:"step_id"`
	Values Values `json:"values"`
}

type SummaryRequest struct {
	Survey       SurveyAnswers    `json:"survey"`
	FormData     FormData         `json:"form_data"`
	Requirements *RequirementList `json:"requirements,omitempty"`
}
