package handler

import (
	"log/slog"
	"time"

	json "github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	dErrors "residence-intake/internal/domainerrors"
	"residence-intake/internal/engine"
	"residence-intake/internal/logger"
	"residence-intake/internal/metrics"
	"residence-intake/internal/model"
	"residence-intake/internal/requirements"
)

// CatalogSource provides the requirement catalog for each request.
type CatalogSource interface {
	Catalog() *requirements.Catalog
}

// Handler serves the intake API. It holds no applicant state: every request
// carries the answers and form data it needs.
type Handler struct {
	catalogs CatalogSource
	policy   engine.IntakePolicy
	metrics  *metrics.Metrics
	logger   *slog.Logger
	now      func() time.Time

	metricsHandler fasthttp.RequestHandler
}

// Option configures the Handler.
type Option func(*Handler)

// WithPolicy sets the survey gate.
func WithPolicy(p engine.IntakePolicy) Option {
	return func(h *Handler) {
		h.policy = p
	}
}

// WithMetrics sets the metrics collector and exposes it on /metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(h *Handler) {
		h.metrics = m
	}
}

// WithLogger sets the logger for the handler.
func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		h.logger = l
	}
}

// WithClock overrides the time source used for summaries.
func WithClock(now func() time.Time) Option {
	return func(h *Handler) {
		h.now = now
	}
}

func New(catalogs CatalogSource, opts ...Option) *Handler {
	if catalogs == nil {
		panic("handler.New: catalog source is required")
	}
	h := &Handler{
		catalogs: catalogs,
		policy:   engine.IntakePolicy{AllowAcquisition: true},
		logger:   logger.Discard(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.metrics != nil {
		h.metricsHandler = fasthttpadaptor.NewFastHTTPHandler(
			promhttp.HandlerFor(h.metrics.Registry, promhttp.HandlerOpts{}),
		)
	}
	return h
}

type route struct {
	method string
	handle func(*Handler, *fasthttp.RequestCtx)
}

var routes = map[string]route{
	"/v1/requirements":       {fasthttp.MethodPost, (*Handler).handleRequirements},
	"/v1/requirements/check": {fasthttp.MethodPost, (*Handler).handleCheck},
	"/v1/steps":              {fasthttp.MethodPost, (*Handler).handleSteps},
	"/v1/steps/resolve":      {fasthttp.MethodPost, (*Handler).handleResolveStep},
	"/v1/steps/validate":     {fasthttp.MethodPost, (*Handler).handleValidateStep},
	"/v1/applications":       {fasthttp.MethodPost, (*Handler).handleApplication},
	"/v1/summary":            {fasthttp.MethodPost, (*Handler).handleSummary},
	"/healthz":               {fasthttp.MethodGet, (*Handler).handleHealth},
	"/metrics":               {fasthttp.MethodGet, (*Handler).handleMetrics},
}

// Handle is the fasthttp entry point.
func (h *Handler) Handle(ctx *fasthttp.RequestCtx) {
	start := time.Now()
	path := string(ctx.Path())

	r, ok := routes[path]
	if !ok {
		writeError(ctx, fasthttp.StatusNotFound, string(dErrors.CodeNotFound), "No route for "+path)
		return
	}
	if h.metrics != nil {
		defer h.metrics.ObserveRequest(path, start)
	}
	if string(ctx.Method()) != r.method {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
		return
	}
	r.handle(h, ctx)
}

func (h *Handler) resolver() *requirements.Resolver {
	opts := []requirements.Option{requirements.WithLogger(h.logger)}
	if h.metrics != nil {
		opts = append(opts, requirements.WithMetrics(h.metrics))
	}
	return requirements.NewResolver(h.catalogs.Catalog(), opts...)
}

func (h *Handler) handleHealth(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) handleMetrics(ctx *fasthttp.RequestCtx) {
	if h.metricsHandler == nil {
		writeError(ctx, fasthttp.StatusNotFound, string(dErrors.CodeNotFound), "Metrics are disabled")
		return
	}
	h.metricsHandler(ctx)
}

func decode(ctx *fasthttp.RequestCtx, v any) bool {
	if err := json.Unmarshal(ctx.PostBody(), v); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, string(dErrors.CodeInvalidInput), "Invalid request body: "+err.Error())
		return false
	}
	return true
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, string(dErrors.CodeInternal), "Encode response: "+err.Error())
		return
	}
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, code, message string) {
	body, _ := json.Marshal(model.ErrorResponse{
		Status:  status,
		Code:    code,
		Message: message,
	})
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	ctx.SetBody(body)
}

// writeDomainError maps a coded error to its HTTP status.
func (h *Handler) writeDomainError(ctx *fasthttp.RequestCtx, err error) {
	code := dErrors.CodeOf(err)
	status := statusFor(code)
	if status >= fasthttp.StatusInternalServerError {
		h.logger.Error("request failed", "path", string(ctx.Path()), "error", err)
	}
	writeError(ctx, status, string(code), err.Error())
}

func statusFor(code dErrors.Code) int {
	switch code {
	case dErrors.CodeInvalidInput, dErrors.CodeInvalidSurvey:
		return fasthttp.StatusBadRequest
	case dErrors.CodeUnsupportedCombination, dErrors.CodeValidation:
		return fasthttp.StatusUnprocessableEntity
	case dErrors.CodeUnknownStep, dErrors.CodeNotFound:
		return fasthttp.StatusNotFound
	default:
		return fasthttp.StatusInternalServerError
	}
}
