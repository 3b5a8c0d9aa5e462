package model

import (
	"fmt"

	dErrors "residence-intake/internal/domainerrors"
)

// VisaType is the residence-status category being applied for.
type VisaType string

const (
	VisaEngineer       VisaType = "engineer"
	VisaSpecificSkill1 VisaType = "specific-1"
	VisaSpecificSkill2 VisaType = "specific-2"
	VisaStudent        VisaType = "student"
	VisaFamily         VisaType = "family"
)

// VisaTypes lists every supported visa type in survey order.
var VisaTypes = []VisaType{VisaEngineer, VisaSpecificSkill1, VisaSpecificSkill2, VisaStudent, VisaFamily}

// ParseVisaType validates a visa type identifier coming from outside the process.
func ParseVisaType(s string) (VisaType, error) {
	for _, v := range VisaTypes {
		if string(v) == s {
			return v, nil
		}
	}
	return "", dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("unsupported visa type %q", s))
}

// ProcedureType is the kind of administrative action requested.
type ProcedureType string

const (
	ProcedureRenewal     ProcedureType = "renewal"
	ProcedureChange      ProcedureType = "change"
	ProcedureAcquisition ProcedureType = "acquisition"
)

var ProcedureTypes = []ProcedureType{ProcedureRenewal, ProcedureChange, ProcedureAcquisition}

// ParseProcedureType validates a procedure type identifier.
func ParseProcedureType(s string) (ProcedureType, error) {
	for _, p := range ProcedureTypes {
		if string(p) == s {
			return p, nil
		}
	}
	return "", dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("unsupported procedure type %q", s))
}

// FamilyRelation is only meaningful for the family visa type.
type FamilyRelation string

const (
	RelationSpouse FamilyRelation = "spouse"
	RelationChild  FamilyRelation = "child"
	RelationOther  FamilyRelation = "other"
)

var FamilyRelations = []FamilyRelation{RelationSpouse, RelationChild, RelationOther}

// ParseFamilyRelation validates a family relation identifier.
func ParseFamilyRelation(s string) (FamilyRelation, error) {
	for _, r := range FamilyRelations {
		if string(r) == s {
			return r, nil
		}
	}
	return "", dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("unsupported family relation %q", s))
}
