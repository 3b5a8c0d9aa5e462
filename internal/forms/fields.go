package forms

// Conditional form fields.
var (
	fieldEmploymentCertificate     = Field{Name: "employmentCertificate", Label: "在職証明書", Kind: KindEvidence}
	fieldSalarySlip                = Field{Name: "salarySlip", Label: "給与明細", Kind: KindEvidence}
	fieldTaxCertificate            = Field{Name: "taxCertificate", Label: "納税証明書", Kind: KindEvidence}
	fieldEducationHistory          = Field{Name: "educationHistory", Label: "学歴", Kind: KindText}
	fieldWorkHistory               = Field{Name: "workHistory", Label: "職歴", Kind: KindText}
	fieldGraduationCertificate     = Field{Name: "graduationCertificate", Label: "卒業証明書", Kind: KindEvidence}
	fieldEmploymentContract        = Field{Name: "employmentContract", Label: "雇用契約書", Kind: KindEvidence}
	fieldCompanyInfo               = Field{Name: "companyInfo", Label: "勤務先情報", Kind: KindText}
	fieldAcquisitionReason         = Field{Name: "acquisitionReason", Label: "取得理由", Kind: KindText}
	fieldResidenceReason           = Field{Name: "residenceReason", Label: "在留理由", Kind: KindText}
	fieldGuarantorInfo             = Field{Name: "guarantorInfo", Label: "身元保証人情報", Kind: KindText}
	fieldSupportReport             = Field{Name: "supportReport", Label: "支援状況報告書", Kind: KindEvidence}
	fieldSkillEvaluationCert       = Field{Name: "skillTestCertificate", Label: "評価試験合格証", Kind: KindEvidence}
	fieldSupportPlan               = Field{Name: "supportPlan", Label: "支援計画書", Kind: KindEvidence}
	fieldWorkExperienceCertificate = Field{Name: "workExperienceCertificate", Label: "実務経験証明", Kind: KindEvidence}
	fieldSkillTestCertificate      = Field{Name: "skillTestCertificate", Label: "技能試験合格証", Kind: KindEvidence}
	fieldOrganizationInfo          = Field{Name: "organizationInfo", Label: "所属機関情報", Kind: KindText}
	fieldEnrollmentCertificate     = Field{Name: "enrollmentCertificate", Label: "在学証明書", Kind: KindEvidence}
	fieldTranscript                = Field{Name: "transcript", Label: "成績証明書", Kind: KindEvidence}
	fieldAttendanceCertificate     = Field{Name: "attendanceCertificate", Label: "出席証明書", Kind: KindEvidence}
	fieldTuitionPaymentCertificate = Field{Name: "tuitionPaymentCertificate", Label: "学費納入証明書", Kind: KindEvidence}
	fieldAdmissionPermit           = Field{Name: "admissionPermit", Label: "入学許可書", Kind: KindEvidence}
	fieldTuitionPaymentOrBalance   = Field{Name: "tuitionPaymentOrBalance", Label: "学費納入証明書または残高証明書", Kind: KindEvidence}
	fieldRelationshipCertificate   = Field{Name: "relationshipCertificate", Label: "関係証明書", Kind: KindEvidence}
	fieldIncomeCertificate         = Field{Name: "incomeCertificate", Label: "収入証明書", Kind: KindEvidence}
	fieldResidenceRecord           = Field{Name: "residenceRecord", Label: "住民票", Kind: KindEvidence}
	fieldCurrentVisaInfo           = Field{Name: "currentVisaInfo", Label: "現資格情報", Kind: KindText}
	fieldDependentInfo             = Field{Name: "dependentInfo", Label: "扶養者情報", Kind: KindText}
)

// Fixed step fields.
var (
	fieldLastNameEn  = Field{Name: "lastNameEn", Label: "英語姓"}
	fieldFirstNameEn = Field{Name: "firstNameEn", Label: "英語名"}
	fieldLastNameJa  = Field{Name: "lastNameJa", Label: "日本語姓"}
	fieldFirstNameJa = Field{Name: "firstNameJa", Label: "日本語名"}
	fieldNationality = Field{Name: "nationality", Label: "国籍"}
	fieldBirthDate   = Field{Name: "birthDate", Label: "生年月日"}
	fieldPostalCode  = Field{Name: "postalCode", Label: "郵便番号"}
	fieldCountry     = Field{Name: "country", Label: "国"}
	fieldPrefecture  = Field{Name: "prefecture", Label: "都道府県"}
	fieldCity        = Field{Name: "city", Label: "市区町村"}
	fieldStreet      = Field{Name: "street", Label: "番地"}
	fieldBuilding    = Field{Name: "building", Label: "建物名"}
	fieldPhone       = Field{Name: "phone", Label: "電話番号"}
	fieldEmail       = Field{Name: "email", Label: "メールアドレス"}

	fieldPassportNumber  = Field{Name: "passportNumber", Label: "パスポート番号"}
	fieldIssueDate       = Field{Name: "issueDate", Label: "発行日"}
	fieldPassportExpiry  = Field{Name: "expiryDate", Label: "有効期限"}
	fieldIssueCountry    = Field{Name: "issueCountry", Label: "発行国"}
	fieldCardNumber      = Field{Name: "cardNumber", Label: "在留カード番号"}
	fieldCardExpiry      = Field{Name: "expiryDate", Label: "在留期限"}
	fieldCurrentVisa     = Field{Name: "currentVisa", Label: "現在の在留資格"}
	fieldHasCriminal     = Field{Name: "hasCriminalHistory", Label: "犯罪歴の有無"}
	fieldCriminalDetails = Field{Name: "criminalDetails", Label: "犯罪歴の詳細"}
	fieldHasViolation    = Field{Name: "hasViolationHistory", Label: "入管法違反歴の有無"}
	fieldViolationDetail = Field{Name: "violationDetails", Label: "入管法違反歴の詳細"}
	fieldHasDeportation  = Field{Name: "hasDeportationHistory", Label: "退去強制歴の有無"}
	fieldDeportationInfo = Field{Name: "deportationDetails", Label: "退去強制歴の詳細"}
	fieldHasFamily       = Field{Name: "hasFamily", Label: "親族・同居者の有無"}
	fieldFamilyMembers   = Field{Name: "familyMembers", Label: "親族・同居者", Kind: KindList}
	fieldPhotoFile       = Field{Name: "photoFile", Label: "証明写真", Kind: KindEvidence}
	fieldPhotoDataURL    = Field{Name: "photoDataUrl", Label: "証明写真データ"}
)
