package forms

import "residence-intake/internal/model"

// SchemaFor returns the conditional form schema for a visa and procedure.
// Procedures without a table fall back to all declared fields optional.
func SchemaFor(visa model.VisaType, procedure model.ProcedureType) Schema {
	s, _ := conditionalSchema(visa, procedure)
	return s
}

// SupportsProcedure reports whether the visa's conditional form defines a
// mandatory table for the procedure.
func SupportsProcedure(visa model.VisaType, procedure model.ProcedureType) bool {
	_, ok := conditionalSchema(visa, procedure)
	return ok
}

// IsAdvanceEnabled reports whether every mandatory field of the conditional
// form is filled and each one-of group has a member filled.
func IsAdvanceEnabled(visa model.VisaType, procedure model.ProcedureType, values model.Values) bool {
	return SchemaFor(visa, procedure).Satisfied(values)
}

// ValidateOnSubmit returns the labels of the missing fields, empty when the
// form may be submitted.
func ValidateOnSubmit(visa model.VisaType, procedure model.ProcedureType, values model.Values) []string {
	return Labels(SchemaFor(visa, procedure).Missing(values))
}

func conditionalSchema(visa model.VisaType, procedure model.ProcedureType) (Schema, bool) {
	switch visa {
	case model.VisaEngineer:
		return engineerSchema(procedure)
	case model.VisaSpecificSkill1:
		return specificSkill1Schema(procedure)
	case model.VisaSpecificSkill2:
		return specificSkill2Schema(procedure)
	case model.VisaStudent:
		return studentSchema(procedure)
	case model.VisaFamily:
		return familyStaySchema(procedure)
	}
	return Schema{}, false
}

func engineerSchema(procedure model.ProcedureType) (Schema, bool) {
	switch procedure {
	case model.ProcedureRenewal:
		return Schema{Mandatory: []Field{fieldEmploymentCertificate, fieldSalarySlip, fieldTaxCertificate}}, true
	case model.ProcedureChange:
		return Schema{Mandatory: []Field{
			fieldEducationHistory, fieldWorkHistory, fieldGraduationCertificate,
			fieldEmploymentContract, fieldCompanyInfo,
		}}, true
	case model.ProcedureAcquisition:
		return Schema{Mandatory: []Field{fieldAcquisitionReason, fieldResidenceReason, fieldGuarantorInfo}}, true
	}
	return optional(
		fieldEmploymentCertificate, fieldSalarySlip, fieldTaxCertificate,
		fieldEducationHistory, fieldWorkHistory, fieldGraduationCertificate,
		fieldEmploymentContract, fieldCompanyInfo,
		fieldAcquisitionReason, fieldResidenceReason, fieldGuarantorInfo,
	), false
}

func specificSkill1Schema(procedure model.ProcedureType) (Schema, bool) {
	switch procedure {
	case model.ProcedureRenewal:
		return Schema{Mandatory: []Field{
			fieldEmploymentCertificate, fieldSalarySlip, fieldSupportReport, fieldTaxCertificate,
		}}, true
	case model.ProcedureChange:
		return Schema{Mandatory: []Field{fieldSkillEvaluationCert, fieldSupportPlan, fieldEmploymentContract}}, true
	}
	return optional(
		fieldEmploymentCertificate, fieldSalarySlip, fieldSupportReport, fieldTaxCertificate,
		fieldSkillEvaluationCert, fieldSupportPlan, fieldEmploymentContract,
	), false
}

func specificSkill2Schema(procedure model.ProcedureType) (Schema, bool) {
	experience := []Field{fieldWorkExperienceCertificate, fieldSkillTestCertificate}
	switch procedure {
	case model.ProcedureRenewal:
		return Schema{
			Mandatory: []Field{fieldEmploymentCertificate, fieldSalarySlip, fieldTaxCertificate},
			Optional:  experience,
		}, true
	case model.ProcedureChange:
		return Schema{
			Mandatory: []Field{fieldEmploymentContract, fieldOrganizationInfo},
			OneOf:     [][]Field{experience},
		}, true
	case model.ProcedureAcquisition:
		return Schema{
			Mandatory: []Field{fieldEmploymentContract, fieldOrganizationInfo, fieldGuarantorInfo},
			OneOf:     [][]Field{experience},
		}, true
	}
	return optional(
		fieldEmploymentCertificate, fieldSalarySlip, fieldTaxCertificate,
		fieldWorkExperienceCertificate, fieldSkillTestCertificate,
		fieldEmploymentContract, fieldOrganizationInfo, fieldGuarantorInfo,
	), false
}

func studentSchema(procedure model.ProcedureType) (Schema, bool) {
	extras := []Field{fieldAdmissionPermit, fieldTuitionPaymentOrBalance, fieldGuarantorInfo}
	switch procedure {
	case model.ProcedureRenewal:
		return Schema{
			Mandatory: []Field{
				fieldEnrollmentCertificate, fieldTranscript,
				fieldAttendanceCertificate, fieldTuitionPaymentCertificate,
			},
			Optional: extras,
		}, true
	case model.ProcedureChange:
		return Schema{
			Mandatory: []Field{fieldGraduationCertificate, fieldEmploymentContract, fieldCompanyInfo},
			Optional:  extras,
		}, true
	}
	return optional(append([]Field{
		fieldEnrollmentCertificate, fieldTranscript, fieldAttendanceCertificate,
		fieldTuitionPaymentCertificate, fieldGraduationCertificate,
		fieldEmploymentContract, fieldCompanyInfo,
	}, extras...)...), false
}

func familyStaySchema(procedure model.ProcedureType) (Schema, bool) {
	base := []Field{fieldRelationshipCertificate, fieldIncomeCertificate, fieldResidenceRecord}
	switch procedure {
	case model.ProcedureRenewal:
		return Schema{Mandatory: base, Optional: []Field{fieldDependentInfo}}, true
	case model.ProcedureChange:
		return Schema{
			Mandatory: append(append([]Field{}, base...), fieldCurrentVisaInfo),
			Optional:  []Field{fieldDependentInfo},
		}, true
	}
	return optional(append(append([]Field{}, base...), fieldCurrentVisaInfo, fieldDependentInfo)...), false
}

// ConditionalHandler is the visa specific step placed after the family
// members step.
type ConditionalHandler struct {
	visa  model.VisaType
	id    model.StepID
	title string
}

func (h *ConditionalHandler) ID() model.StepID { return h.id }

func (h *ConditionalHandler) Title() string { return h.title }

// Visa returns the visa type the step belongs to.
func (h *ConditionalHandler) Visa() model.VisaType { return h.visa }

func (h *ConditionalHandler) Schema(survey model.SurveyAnswers) Schema {
	return SchemaFor(h.visa, survey.ProcedureType)
}

func (h *ConditionalHandler) Validate(survey model.SurveyAnswers, values model.Values) []model.Message {
	return h.Schema(survey).missingMessages(values)
}

func (h *ConditionalHandler) Apply(form model.FormData, survey model.SurveyAnswers, values model.Values) []model.Message {
	form.Merge(h.id, h.Schema(survey).Keep(values))
	return nil
}

var conditionalSteps = map[model.VisaType]*ConditionalHandler{
	model.VisaEngineer:       {visa: model.VisaEngineer, id: model.StepEngineerInfo, title: "技人国情報"},
	model.VisaSpecificSkill1: {visa: model.VisaSpecificSkill1, id: model.StepSpecificSkill1, title: "特定技能1号情報"},
	model.VisaSpecificSkill2: {visa: model.VisaSpecificSkill2, id: model.StepSpecificSkill2, title: "特定技能2号情報"},
	model.VisaStudent:        {visa: model.VisaStudent, id: model.StepStudentInfo, title: "留学情報"},
	model.VisaFamily:         {visa: model.VisaFamily, id: model.StepFamilyStay, title: "家族滞在情報"},
}

// ConditionalFor returns the conditional step of a visa type.
func ConditionalFor(visa model.VisaType) (*ConditionalHandler, bool) {
	h, ok := conditionalSteps[visa]
	return h, ok
}
