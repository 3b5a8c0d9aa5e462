package forms

import (
	"regexp"
	"strings"

	"residence-intake/internal/model"
)

var (
	emailPattern        = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern        = regexp.MustCompile(`^[\d\-+()\s]+$`)
	passportPattern     = regexp.MustCompile(`^[A-Z0-9]{6,9}$`)
	residenceCardFormat = regexp.MustCompile(`^[A-Z0-9]{12}$`)
)

const minPhoneLength = 10

func validEmail(s string) bool {
	return emailPattern.MatchString(s)
}

func validPhone(s string) bool {
	return len(s) >= minPhoneLength && phonePattern.MatchString(s)
}

func validPassportNumber(s string) bool {
	return passportPattern.MatchString(strings.ToUpper(s))
}

func validResidenceCardNumber(s string) bool {
	return residenceCardFormat.MatchString(strings.ToUpper(s))
}

func invalidFormat(f Field, text string) model.Message {
	return model.Message{
		Level:   model.LevelCritical,
		Code:    model.CodeInvalidFormat,
		Field:   f.Name,
		Message: text,
	}
}
