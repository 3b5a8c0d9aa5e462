package engine

import (
	"fmt"
	"log/slog"

	dErrors "residence-intake/internal/domainerrors"
	"residence-intake/internal/forms"
	"residence-intake/internal/jsonpatch"
	"residence-intake/internal/logger"
	"residence-intake/internal/metrics"
	"residence-intake/internal/model"
	"residence-intake/internal/requirements"
	"residence-intake/internal/steps"
)

// State is everything one applicant session holds. It is owned by a single
// Wizard and is not safe for concurrent use.
type State struct {
	Survey       *model.SurveyAnswers   `json:"survey"`
	Requirements *model.RequirementList `json:"requirements"`
	FormData     model.FormData         `json:"form_data"`
	CurrentStep  int                    `json:"current_step"`
}

func NewState() *State {
	return &State{FormData: model.NewFormData()}
}

// Reset returns the state to its initial value in place.
func (s *State) Reset() {
	*s = *NewState()
}

// StepResult reports the outcome of a single step submission.
type StepResult struct {
	StepID    model.StepID          `json:"step_id"`
	Messages  []model.Message       `json:"messages"`
	Missing   []string              `json:"missing,omitempty"`
	Patch     []jsonpatch.Operation `json:"patch,omitempty"`
	Advanced  bool                  `json:"advanced"`
	Completed bool                  `json:"completed"`
}

// Wizard drives one State through the survey, the checklist and the steps.
type Wizard struct {
	state    *State
	resolver *requirements.Resolver
	policy   IntakePolicy
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// Option configures the Wizard.
type Option func(*Wizard)

// WithPolicy sets the survey gate.
func WithPolicy(p IntakePolicy) Option {
	return func(w *Wizard) {
		w.policy = p
	}
}

// WithMetrics sets the metrics collector for the wizard.
func WithMetrics(m *metrics.Metrics) Option {
	return func(w *Wizard) {
		w.metrics = m
	}
}

// WithLogger sets the logger for the wizard.
func WithLogger(l *slog.Logger) Option {
	return func(w *Wizard) {
		w.logger = l
	}
}

func New(state *State, resolver *requirements.Resolver, opts ...Option) *Wizard {
	if state == nil {
		panic("engine.New: state is required")
	}
	if resolver == nil {
		panic("engine.New: resolver is required")
	}
	w := &Wizard{
		state:    state,
		resolver: resolver,
		policy:   IntakePolicy{AllowAcquisition: true},
		logger:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *Wizard) State() *State {
	return w.state
}

// SubmitSurvey gates the answers, stores them, resolves a fresh checklist and
// moves back to the first step. Form data already entered is kept.
func (w *Wizard) SubmitSurvey(survey model.SurveyAnswers) (model.RequirementList, error) {
	if err := w.policy.Validate(survey); err != nil {
		return model.RequirementList{}, err
	}

	list := w.resolver.Resolve(survey)
	w.state.Survey = &survey
	w.state.Requirements = &list
	w.state.CurrentStep = 0

	w.logger.Info("survey submitted",
		"visa_type", string(survey.VisaType),
		"procedure_type", string(survey.ProcedureType),
		"documents", len(list.DocumentRequirements),
	)
	return list, nil
}

func (w *Wizard) Requirements() (model.RequirementList, error) {
	if w.state.Requirements == nil {
		return model.RequirementList{}, dErrors.New(dErrors.CodeNotFound, "no requirement list; submit the survey first")
	}
	return *w.state.Requirements, nil
}

// ToggleRequirement sets the checked flag of one checklist item.
func (w *Wizard) ToggleRequirement(id string, checked bool) error {
	if w.state.Requirements == nil {
		return dErrors.New(dErrors.CodeNotFound, "no requirement list; submit the survey first")
	}
	if !w.state.Requirements.SetChecked(id, checked) {
		return dErrors.New(dErrors.CodeNotFound, fmt.Sprintf("requirement %q not found", id))
	}
	return nil
}

// CanStartForms reports whether every required checklist item is checked.
func (w *Wizard) CanStartForms() bool {
	return w.state.Requirements != nil && requirements.AllMet(*w.state.Requirements)
}

// Steps rebuilds the sequence from the current answers on every call, so
// indexes taken from it always match the live shape.
func (w *Wizard) Steps() []steps.Step {
	if w.state.Survey == nil {
		return nil
	}
	return steps.Build(*w.state.Survey)
}

// Current returns the active step, or false once the last step is done.
func (w *Wizard) Current() (steps.Step, bool) {
	list := w.Steps()
	if w.state.CurrentStep < 0 || w.state.CurrentStep >= len(list) {
		return steps.Step{}, false
	}
	return list[w.state.CurrentStep], true
}

// AdvanceEnabled reports whether values would pass the active step.
func (w *Wizard) AdvanceEnabled(values model.Values) bool {
	step, ok := w.Current()
	if !ok {
		return false
	}
	return forms.AdvanceEnabled(step.Form, *w.state.Survey, values)
}

// Submit validates values against the active step. When nothing critical is
// found the slice replaces the step's key in FormData and the wizard moves to
// the next step; otherwise neither FormData nor the position changes.
func (w *Wizard) Submit(values model.Values) (*StepResult, error) {
	if w.state.Survey == nil {
		return nil, dErrors.New(dErrors.CodeInvalidSurvey, "submit the survey before the steps")
	}
	step, ok := w.Current()
	if !ok {
		return nil, dErrors.New(dErrors.CodeValidation, "all steps are already completed")
	}

	survey := *w.state.Survey
	msgs, patch, applied, err := submitStep(w.state.FormData, survey, step.Form, values)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "record form change")
	}
	for i := range msgs {
		msgs[i].ID = i
	}

	result := &StepResult{StepID: step.ID, Messages: msgs, Patch: patch}
	if !applied {
		result.Missing = forms.MissingLabels(step.Form, survey, values)
		w.countSubmission(step.ID, model.OutcomeFailure)
		w.logger.Info("step submission rejected",
			"step_id", string(step.ID),
			"missing", result.Missing,
		)
		return result, nil
	}

	w.state.CurrentStep++
	result.Advanced = true
	result.Completed = w.state.CurrentStep >= len(w.Steps())
	w.countSubmission(step.ID, model.OutcomeSuccess)
	return result, nil
}

// Back moves to the previous step without touching FormData.
func (w *Wizard) Back() {
	if w.state.CurrentStep > 0 {
		w.state.CurrentStep--
	}
}

// JumpTo moves to a section, resolved against the sequence built from the
// current answers at the moment of the jump.
func (w *Wizard) JumpTo(section string) (int, error) {
	index, ok := steps.IndexOf(w.Steps(), section)
	if !ok {
		return -1, dErrors.New(dErrors.CodeUnknownStep, fmt.Sprintf("section %q is not part of the current sequence", section))
	}
	w.state.CurrentStep = index
	return index, nil
}

// Reset clears survey, checklist, form data and position.
func (w *Wizard) Reset() {
	w.state.Reset()
}

func (w *Wizard) countSubmission(id model.StepID, outcome string) {
	if w.metrics != nil {
		w.metrics.IncrementSubmission(string(id), outcome)
	}
}
