package requirements

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"

	"residence-intake/internal/metrics"
	"residence-intake/internal/model"
)

type ResolverSuite struct {
	suite.Suite
	catalog *Catalog
}

func TestResolverSuite(t *testing.T) {
	suite.Run(t, new(ResolverSuite))
}

func (s *ResolverSuite) SetupTest() {
	s.catalog = Default()
}

func documentIDs(list model.RequirementList) []string {
	ids := make([]string, 0, len(list.DocumentRequirements))
	for _, item := range list.DocumentRequirements {
		ids = append(ids, item.ID)
	}
	return ids
}

func (s *ResolverSuite) TestSystemRequirementsAreFixed() {
	engineer := Resolve(s.catalog, model.SurveyAnswers{VisaType: model.VisaEngineer, ProcedureType: model.ProcedureRenewal})
	student := Resolve(s.catalog, model.SurveyAnswers{VisaType: model.VisaStudent, ProcedureType: model.ProcedureChange})

	s.Require().Len(engineer.SystemRequirements, 6)
	s.Equal(engineer.SystemRequirements, student.SystemRequirements)
	s.Equal("mynumber-card", engineer.SystemRequirements[0].ID)
	s.Equal("valid-email", engineer.SystemRequirements[5].ID)
	for _, item := range engineer.SystemRequirements {
		s.Equal(model.CategorySystem, item.Category)
		s.True(item.Required)
		s.False(item.Checked)
	}
}

func (s *ResolverSuite) TestDeterministic() {
	for _, visa := range model.VisaTypes {
		for _, proc := range model.ProcedureTypes {
			survey := model.SurveyAnswers{VisaType: visa, ProcedureType: proc}
			if visa == model.VisaFamily {
				survey.FamilyRelation = model.RelationChild
			}
			first := Resolve(s.catalog, survey)
			second := Resolve(s.catalog, survey)
			s.Equal(first, second, "%s/%s", visa, proc)
			for _, item := range first.Items() {
				s.False(item.Checked)
			}
		}
	}
}

func (s *ResolverSuite) TestFamilySpouseRenewal() {
	list := Resolve(s.catalog, model.SurveyAnswers{
		VisaType:       model.VisaFamily,
		ProcedureType:  model.ProcedureRenewal,
		FamilyRelation: model.RelationSpouse,
	})

	s.Equal([]string{"relationship-certificate", "income-certificate", "residence-certificate"}, documentIDs(list))
	for _, item := range list.DocumentRequirements {
		s.True(item.Required)
		s.Equal(model.CategoryDocument, item.Category)
	}
	s.Equal("結婚証明書", list.DocumentRequirements[0].Description)
}

func (s *ResolverSuite) TestFamilyChildUsesRelationDescription() {
	list := Resolve(s.catalog, model.SurveyAnswers{
		VisaType:       model.VisaFamily,
		ProcedureType:  model.ProcedureRenewal,
		FamilyRelation: model.RelationChild,
	})
	s.Equal("親子関係証明書", list.DocumentRequirements[0].Description)
	s.Equal("扶養者の収入証明", list.DocumentRequirements[1].Description)
}

func (s *ResolverSuite) TestFamilyRelationAppliesToChange() {
	list := Resolve(s.catalog, model.SurveyAnswers{
		VisaType:       model.VisaFamily,
		ProcedureType:  model.ProcedureChange,
		FamilyRelation: model.RelationOther,
	})
	s.Equal([]string{"relationship-certificate", "income-certificate", "residence-certificate"}, documentIDs(list))
	s.Equal("親子関係証明書", list.DocumentRequirements[0].Description)
}

func (s *ResolverSuite) TestRelationshipCertificateDescriptionByRelation() {
	want := map[model.FamilyRelation]string{
		model.RelationSpouse: "結婚証明書",
		model.RelationChild:  "親子関係証明書",
		model.RelationOther:  "親子関係証明書",
	}
	for _, relation := range model.FamilyRelations {
		list := Resolve(s.catalog, model.SurveyAnswers{
			VisaType:       model.VisaFamily,
			ProcedureType:  model.ProcedureRenewal,
			FamilyRelation: relation,
		})
		s.Require().NotEmpty(list.DocumentRequirements, "relation %s", relation)
		s.Equal("relationship-certificate", list.DocumentRequirements[0].ID)
		s.Equal(want[relation], list.DocumentRequirements[0].Description, "relation %s", relation)
	}
}

func (s *ResolverSuite) TestEngineerChange() {
	list := Resolve(s.catalog, model.SurveyAnswers{VisaType: model.VisaEngineer, ProcedureType: model.ProcedureChange})
	s.Equal([]string{"education-certificate", "employment-contract", "company-info"}, documentIDs(list))
}

func (s *ResolverSuite) TestStudentRenewal() {
	list := Resolve(s.catalog, model.SurveyAnswers{VisaType: model.VisaStudent, ProcedureType: model.ProcedureRenewal})
	s.Equal([]string{
		"enrollment-certificate", "academic-transcript", "attendance-certificate", "tuition-payment-certificate",
	}, documentIDs(list))
}

func (s *ResolverSuite) TestUnknownCombinationYieldsNoDocuments() {
	survey := model.SurveyAnswers{VisaType: model.VisaSpecificSkill1, ProcedureType: model.ProcedureChange}

	list := Resolve(s.catalog, survey)
	s.Empty(list.DocumentRequirements)
	s.NotNil(list.DocumentRequirements)
	s.Len(list.SystemRequirements, 6)
	s.False(s.catalog.Covers(survey))
}

func (s *ResolverSuite) TestIncompleteSurveyIsSafe() {
	list := Resolve(s.catalog, model.SurveyAnswers{VisaType: model.VisaEngineer})
	s.Empty(list.DocumentRequirements)
	s.Len(list.SystemRequirements, 6)
}

func (s *ResolverSuite) TestResolverCountsUncovered() {
	m := metrics.New()
	r := NewResolver(s.catalog, WithMetrics(m))

	r.Resolve(model.SurveyAnswers{VisaType: model.VisaStudent, ProcedureType: model.ProcedureAcquisition})
	r.Resolve(model.SurveyAnswers{VisaType: model.VisaEngineer, ProcedureType: model.ProcedureRenewal})

	s.Equal(1.0, testutil.ToFloat64(m.UncoveredCombination.WithLabelValues("student", "acquisition")))
	s.Equal(0.0, testutil.ToFloat64(m.UncoveredCombination.WithLabelValues("engineer", "renewal")))
	s.Equal(1.0, testutil.ToFloat64(m.RequirementsResolved.WithLabelValues("engineer", "renewal")))
}

func (s *ResolverSuite) TestNewResolverRequiresCatalog() {
	s.Panics(func() { NewResolver(nil) })
}
