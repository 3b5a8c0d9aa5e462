package requirements

import (
	"log/slog"

	"residence-intake/internal/logger"
	"residence-intake/internal/metrics"
	"residence-intake/internal/model"
)

// Resolve builds a fresh requirement list for the survey answers: the fixed
// system prerequisites followed by the catalog documents for the case. Every
// item starts unchecked. Answers without visa or procedure type, and
// combinations the catalog does not define, yield no documents.
func Resolve(c *Catalog, survey model.SurveyAnswers) model.RequirementList {
	list := model.RequirementList{
		SystemRequirements:   make([]model.RequirementItem, 0, len(c.System)),
		DocumentRequirements: []model.RequirementItem{},
	}

	for _, item := range c.System {
		list.SystemRequirements = append(list.SystemRequirements, model.RequirementItem{
			ID:          item.ID,
			Category:    model.CategorySystem,
			Name:        item.Name,
			Description: item.Description,
			Required:    true,
		})
	}

	if !survey.IsComplete() {
		return list
	}

	for _, entry := range c.Lookup(survey) {
		doc := c.Documents[entry.ID]
		description := doc.Description
		if entry.Description != "" {
			description = entry.Description
		}
		list.DocumentRequirements = append(list.DocumentRequirements, model.RequirementItem{
			ID:          entry.ID,
			Category:    model.CategoryDocument,
			Name:        doc.Name,
			Description: description,
			Required:    entry.Required,
		})
	}

	return list
}

// Resolver wraps Resolve with logging and metrics for callers that own them.
type Resolver struct {
	catalog *Catalog
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// Option configures the Resolver.
type Option func(*Resolver)

// WithMetrics sets the metrics collector for the resolver.
func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Resolver) {
		r.metrics = m
	}
}

// WithLogger sets the logger for the resolver.
func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) {
		r.logger = l
	}
}

// NewResolver panics on a nil catalog; it is wired once at startup.
func NewResolver(c *Catalog, opts ...Option) *Resolver {
	if c == nil {
		panic("requirements.NewResolver: catalog is required")
	}
	r := &Resolver{catalog: c, logger: logger.Discard()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Catalog returns the catalog the resolver reads from.
func (r *Resolver) Catalog() *Catalog {
	return r.catalog
}

// Resolve resolves the survey answers and records whether the catalog had an
// entry for them.
func (r *Resolver) Resolve(survey model.SurveyAnswers) model.RequirementList {
	list := Resolve(r.catalog, survey)

	visa, proc := string(survey.VisaType), string(survey.ProcedureType)
	if survey.IsComplete() && !r.catalog.Covers(survey) {
		r.logger.Warn("no catalog entry for survey answers; resolving without documents",
			"visa_type", visa,
			"procedure_type", proc,
			"family_relation", string(survey.FamilyRelation),
		)
		if r.metrics != nil {
			r.metrics.IncrementUncovered(visa, proc)
		}
	}
	if r.metrics != nil {
		r.metrics.IncrementResolved(visa, proc)
	}

	r.logger.Debug("requirements resolved",
		"visa_type", visa,
		"procedure_type", proc,
		"documents", len(list.DocumentRequirements),
	)
	return list
}
