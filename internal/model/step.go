package model

// StepID identifies a wizard step and doubles as its key in FormData.
type StepID string

const (
	StepBasicInfo       StepID = "basic-info"
	StepPassportInfo    StepID = "passport-info"
	StepResidenceCard   StepID = "residence-card-info"
	StepCriminalHistory StepID = "criminal-history"
	StepFamilyMembers   StepID = "family-members"
	StepEngineerInfo    StepID = "engineer-humanities"
	StepSpecificSkill1  StepID = "specific-skill-1"
	StepSpecificSkill2  StepID = "specific-skill-2"
	StepStudentInfo     StepID = "student"
	StepFamilyStay      StepID = "family-stay"
	StepPhotoUpload     StepID = "photo-upload"
)

// WizardStep is one entry of the ordered wizard sequence.
type WizardStep struct {
	ID          StepID `json:"id"`
	Title       string `json:"title"`
	Required    bool   `json:"required"`
	Conditional bool   `json:"conditional"`
}
