// Package summary renders the plain-text application summary handed to the
// applicant at the end of the wizard.
package summary

import (
	_ "embed"
	"strings"
	"text/template"
	"time"

	dErrors "residence-intake/internal/domainerrors"
	"residence-intake/internal/forms"
	"residence-intake/internal/model"
)

//go:embed summary.tmpl
var summaryText string

var summaryTemplate = template.Must(template.New("summary").Parse(summaryText))

const generatedAtLayout = "2006/1/2 15:04:05"

type line struct {
	Label string
	Value string
}

type document struct {
	Name     string
	Required bool
	Checked  bool
}

type view struct {
	FullNameEn  string
	FullNameJa  string
	Nationality string
	BirthDate   string
	Address     string
	Phone       string
	Email       string

	PassportNumber string
	IssueCountry   string
	IssueDate      string
	ExpiryDate     string

	VisaType       string
	ProcedureType  string
	FamilyRelation string

	ConditionalTitle string
	Conditional      []line
	Documents        []document

	GeneratedAt string
}

// Render writes the summary of the survey and the collected form data. reqs
// may be nil, in which case the document checklist is omitted.
func Render(survey model.SurveyAnswers, form model.FormData, reqs *model.RequirementList, now time.Time) (string, error) {
	basic := form.Step(model.StepBasicInfo)
	passport := form.Step(model.StepPassportInfo)

	v := view{
		FullNameEn:  fullName(basic.Text("lastNameEn"), basic.Text("firstNameEn")),
		FullNameJa:  fullName(basic.Text("lastNameJa"), basic.Text("firstNameJa")),
		Nationality: basic.Text("nationality"),
		BirthDate:   basic.Text("birthDate"),
		Address:     address(basic),
		Phone:       basic.Text("phone"),
		Email:       basic.Text("email"),

		PassportNumber: passport.Text("passportNumber"),
		IssueCountry:   passport.Text("issueCountry"),
		IssueDate:      passport.Text("issueDate"),
		ExpiryDate:     passport.Text("expiryDate"),

		VisaType:       string(survey.VisaType),
		ProcedureType:  string(survey.ProcedureType),
		FamilyRelation: string(survey.FamilyRelation),

		GeneratedAt: now.Format(generatedAtLayout),
	}

	if h, ok := forms.ConditionalFor(survey.VisaType); ok {
		v.ConditionalTitle = h.Title()
		values := form.Step(h.ID())
		for _, f := range h.Schema(survey).Declared() {
			if values.Present(f.Name) {
				v.Conditional = append(v.Conditional, line{Label: f.Label, Value: values[f.Name].String()})
			}
		}
	}

	if reqs != nil {
		for _, item := range reqs.DocumentRequirements {
			v.Documents = append(v.Documents, document{Name: item.Name, Required: item.Required, Checked: item.Checked})
		}
	}

	var b strings.Builder
	if err := summaryTemplate.Execute(&b, v); err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "render application summary")
	}
	return b.String(), nil
}

// fullName is empty unless both parts are given.
func fullName(last, first string) string {
	if last == "" || first == "" {
		return ""
	}
	return last + " " + first
}

func address(basic model.Values) string {
	var parts []string
	if postal := basic.Text("postalCode"); postal != "" {
		parts = append(parts, "〒"+postal)
	}
	for _, key := range []string{"country", "prefecture", "city", "street", "building"} {
		if s := basic.Text(key); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}
