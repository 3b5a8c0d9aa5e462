package requirements

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	dErrors "residence-intake/internal/domainerrors"
	"residence-intake/internal/model"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// Entry is one catalog line: a document id and whether it blocks completion.
// Description, when set, overrides the document's default description.
type Entry struct {
	ID          string `yaml:"id"`
	Required    bool   `yaml:"required"`
	Description string `yaml:"description,omitempty"`
}

// Document is the display name and description looked up by document id.
type Document struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// SystemItem is an environment prerequisite shared by every applicant.
type SystemItem struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

// Catalog is the static rules table. It is read-only once parsed and safe
// to share between goroutines.
type Catalog struct {
	System    []SystemItem
	Documents map[string]Document
	Rules     map[model.VisaType]map[model.ProcedureType][]Entry
	Family    map[model.FamilyRelation][]Entry
}

type catalogDoc struct {
	System    []SystemItem                  `yaml:"system"`
	Documents map[string]Document           `yaml:"documents"`
	Rules     map[string]map[string][]Entry `yaml:"rules"`
	Family    map[string][]Entry            `yaml:"family"`
}

// Parse decodes a YAML catalog and checks that every referenced document id
// has a display entry and every key is a known enum value.
func Parse(data []byte) (*Catalog, error) {
	var doc catalogDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInvalidInput, "decode requirement catalog")
	}
	if len(doc.System) == 0 {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "requirement catalog has no system requirements")
	}

	c := &Catalog{
		System:    doc.System,
		Documents: doc.Documents,
		Rules:     make(map[model.VisaType]map[model.ProcedureType][]Entry, len(doc.Rules)),
		Family:    make(map[model.FamilyRelation][]Entry, len(doc.Family)),
	}
	if c.Documents == nil {
		c.Documents = map[string]Document{}
	}

	for rawVisa, procedures := range doc.Rules {
		visa, err := model.ParseVisaType(rawVisa)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInvalidInput, "requirement catalog rules: "+err.Error())
		}
		byProcedure := make(map[model.ProcedureType][]Entry, len(procedures))
		for rawProc, entries := range procedures {
			proc, err := model.ParseProcedureType(rawProc)
			if err != nil {
				return nil, dErrors.Wrap(err, dErrors.CodeInvalidInput, "requirement catalog rules: "+err.Error())
			}
			if err := c.checkEntries(entries); err != nil {
				return nil, err
			}
			byProcedure[proc] = entries
		}
		c.Rules[visa] = byProcedure
	}

	for rawRelation, entries := range doc.Family {
		relation, err := model.ParseFamilyRelation(rawRelation)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInvalidInput, "requirement catalog family: "+err.Error())
		}
		if err := c.checkEntries(entries); err != nil {
			return nil, err
		}
		c.Family[relation] = entries
	}

	return c, nil
}

func (c *Catalog) checkEntries(entries []Entry) error {
	for _, e := range entries {
		if _, ok := c.Documents[e.ID]; !ok {
			return dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("requirement catalog references unknown document %q", e.ID))
		}
	}
	return nil
}

// Default returns the catalog compiled into the binary.
func Default() *Catalog {
	c, err := Parse(embeddedCatalog)
	if err != nil {
		panic("requirements.Default: " + err.Error())
	}
	return c
}

// Lookup returns the ordered document entries for the survey answers. For the
// family visa type a given relation selects the relation table regardless of
// procedure type; a relation missing from the table falls back to renewal.
func (c *Catalog) Lookup(survey model.SurveyAnswers) []Entry {
	entries, _ := c.lookup(survey)
	return entries
}

// Covers reports whether the catalog defines a document table for the
// survey answers. Uncovered answers resolve to zero documents.
func (c *Catalog) Covers(survey model.SurveyAnswers) bool {
	_, ok := c.lookup(survey)
	return ok
}

func (c *Catalog) lookup(survey model.SurveyAnswers) ([]Entry, bool) {
	if survey.VisaType == model.VisaFamily && survey.FamilyRelation != "" {
		if entries, ok := c.Family[survey.FamilyRelation]; ok {
			return entries, true
		}
		entries, ok := c.Rules[model.VisaFamily][model.ProcedureRenewal]
		return entries, ok
	}
	entries, ok := c.Rules[survey.VisaType][survey.ProcedureType]
	return entries, ok
}
