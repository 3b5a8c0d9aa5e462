package handler

import (
	"fmt"

	"github.com/valyala/fasthttp"

	dErrors "residence-intake/internal/domainerrors"
	"residence-intake/internal/engine"
	"residence-intake/internal/forms"
	"residence-intake/internal/model"
	"residence-intake/internal/requirements"
	"residence-intake/internal/steps"
	"residence-intake/internal/summary"
)

func (h *Handler) handleRequirements(ctx *fasthttp.RequestCtx) {
	var req model.SurveyRequest
	if !decode(ctx, &req) {
		return
	}
	if err := h.policy.Validate(req.Survey); err != nil {
		h.writeDomainError(ctx, err)
		return
	}

	r := h.resolver()
	list := r.Resolve(req.Survey)
	writeJSON(ctx, fasthttp.StatusOK, model.RequirementsResponse{
		Requirements:   list,
		AllMet:         requirements.AllMet(list),
		CatalogCovered: r.Catalog().Covers(req.Survey),
	})
}

func (h *Handler) handleCheck(ctx *fasthttp.RequestCtx) {
	var req model.CheckRequest
	if !decode(ctx, &req) {
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, model.CheckResponse{AllMet: requirements.AllMet(req.Requirements)})
}

func (h *Handler) handleSteps(ctx *fasthttp.RequestCtx) {
	var req model.SurveyRequest
	if !decode(ctx, &req) {
		return
	}
	if err := h.policy.Validate(req.Survey); err != nil {
		h.writeDomainError(ctx, err)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, model.StepsResponse{Steps: steps.WizardSteps(steps.Build(req.Survey))})
}

func (h *Handler) handleResolveStep(ctx *fasthttp.RequestCtx) {
	var req model.ResolveStepRequest
	if !decode(ctx, &req) {
		return
	}
	if err := h.policy.Validate(req.Survey); err != nil {
		h.writeDomainError(ctx, err)
		return
	}

	list := steps.Build(req.Survey)
	index, ok := steps.IndexOf(list, req.Section)
	if !ok {
		h.writeDomainError(ctx, dErrors.New(dErrors.CodeUnknownStep,
			fmt.Sprintf("section %q is not part of the sequence for these survey answers", req.Section)))
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, model.ResolveStepResponse{Index: index, StepID: list[index].ID})
}

func (h *Handler) handleValidateStep(ctx *fasthttp.RequestCtx) {
	var req model.ValidateStepRequest
	if !decode(ctx, &req) {
		return
	}
	if err := h.policy.Validate(req.Survey); err != nil {
		h.writeDomainError(ctx, err)
		return
	}

	list := steps.Build(req.Survey)
	index, ok := steps.IndexOf(list, string(req.StepID))
	if !ok {
		h.writeDomainError(ctx, dErrors.New(dErrors.CodeUnknownStep,
			fmt.Sprintf("step %q is not part of the sequence for these survey answers", req.StepID)))
		return
	}
	form := list[index].Form

	msgs := form.Validate(req.Survey, req.Values)
	for i := range msgs {
		msgs[i].ID = i
	}
	if msgs == nil {
		msgs = []model.Message{}
	}
	missing := []model.MissingField{}
	for _, f := range form.Schema(req.Survey).Missing(req.Values) {
		missing = append(missing, model.MissingField{Field: f.Name, Label: f.Label})
	}

	writeJSON(ctx, fasthttp.StatusOK, model.ValidateStepResponse{
		AdvanceEnabled: forms.AdvanceEnabled(form, req.Survey, req.Values),
		Missing:        missing,
		Messages:       msgs,
	})
}

func (h *Handler) handleApplication(ctx *fasthttp.RequestCtx) {
	var req model.ApplicationRequest
	if !decode(ctx, &req) {
		return
	}
	if len(req.Submissions) == 0 {
		writeError(ctx, fasthttp.StatusBadRequest, string(dErrors.CodeInvalidInput), "At least one submission is required")
		return
	}

	resp := engine.Process(&req, h.policy)

	if h.metrics != nil {
		for i, sub := range resp.Submissions {
			outcome := model.OutcomeSuccess
			if resp.Outcome == model.OutcomeFailure && i == len(resp.Submissions)-1 {
				outcome = model.OutcomeFailure
			}
			h.metrics.IncrementSubmission(string(sub.Submission.StepID), outcome)
		}
	}
	h.logger.Info("application processed",
		"application_id", resp.ApplicationID,
		"visa_type", string(req.Survey.VisaType),
		"procedure_type", string(req.Survey.ProcedureType),
		"outcome", resp.Outcome,
		"submissions", len(resp.Submissions),
	)

	writeJSON(ctx, fasthttp.StatusOK, resp)
}

func (h *Handler) handleSummary(ctx *fasthttp.RequestCtx) {
	var req model.SummaryRequest
	if !decode(ctx, &req) {
		return
	}
	if err := h.policy.Validate(req.Survey); err != nil {
		h.writeDomainError(ctx, err)
		return
	}

	text, err := summary.Render(req.Survey, req.FormData, req.Requirements, h.now())
	if err != nil {
		h.writeDomainError(ctx, err)
		return
	}
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetContentType("text/plain; charset=utf-8")
	ctx.SetBodyString(text)
}
