package engine

import (
	"fmt"

	dErrors "residence-intake/internal/domainerrors"
	"residence-intake/internal/forms"
	"residence-intake/internal/model"
)

// IntakePolicy is the survey gate. Answers that fail it never reach the
// resolver or the sequencer.
type IntakePolicy struct {
	// AllowAcquisition admits the acquisition procedure for visa types whose
	// conditional form defines an acquisition table.
	AllowAcquisition bool
}

// Validate checks that visa and procedure type are known values, that the
// family relation is given exactly when the visa type is family, and that an
// acquisition is admitted for the visa type.
func (p IntakePolicy) Validate(survey model.SurveyAnswers) error {
	if !survey.IsComplete() {
		return dErrors.New(dErrors.CodeInvalidSurvey, "visa type and procedure type are required")
	}
	if _, err := model.ParseVisaType(string(survey.VisaType)); err != nil {
		return err
	}
	if _, err := model.ParseProcedureType(string(survey.ProcedureType)); err != nil {
		return err
	}

	if survey.VisaType == model.VisaFamily {
		if survey.FamilyRelation == "" {
			return dErrors.New(dErrors.CodeInvalidSurvey, "family relation is required for the family visa type")
		}
		if _, err := model.ParseFamilyRelation(string(survey.FamilyRelation)); err != nil {
			return err
		}
	} else if survey.FamilyRelation != "" {
		return dErrors.New(dErrors.CodeInvalidSurvey,
			fmt.Sprintf("family relation is only accepted for the family visa type, got %q", survey.VisaType))
	}

	if survey.ProcedureType == model.ProcedureAcquisition {
		if !p.AllowAcquisition {
			return dErrors.New(dErrors.CodeUnsupportedCombination, "acquisition is not accepted")
		}
		if !forms.SupportsProcedure(survey.VisaType, survey.ProcedureType) {
			return dErrors.New(dErrors.CodeUnsupportedCombination,
				fmt.Sprintf("acquisition is not available for visa type %q", survey.VisaType))
		}
	}

	return nil
}
