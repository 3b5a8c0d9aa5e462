package model

// SurveyAnswers are collected once at survey submission and drive both the
// requirement resolver and the step sequencer. An empty FamilyRelation means
// the relation was not given.
type SurveyAnswers struct {
	VisaType       VisaType       `json:"visa_type"`
	ProcedureType  ProcedureType  `json:"procedure_type"`
	FamilyRelation FamilyRelation `json:"family_relation,omitempty"`
	WorkStatus     string         `json:"work_status,omitempty"`
}

// IsComplete reports whether both mandatory answers are set.
func (s SurveyAnswers) IsComplete() bool {
	return s.VisaType != "" && s.ProcedureType != ""
}

// IsRenewal reports whether the residence card step is mandatory.
func (s SurveyAnswers) IsRenewal() bool {
	return s.ProcedureType == ProcedureRenewal
}
