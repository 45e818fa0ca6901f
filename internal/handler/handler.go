package handler

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
	"github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"career-engine/internal/engine"
	"career-engine/internal/model"
	"career-engine/internal/scenario"
)

const defaultSweepCruises = 6

// Handler serves the simulation API over fasthttp.
type Handler struct {
	runner          *engine.Runner
	results         *cache.Cache
	maxStudents     int
	maxSweepCruises int
	metrics         fasthttp.RequestHandler
	// ctx bounds every simulation; cancelled on shutdown.
	ctx context.Context
}

type Options struct {
	// CacheTTL is how long a simulation response is reused for an identical
	// resolved scenario. Zero disables caching.
	CacheTTL time.Duration
	// MaxStudents rejects larger batches. Zero means no limit.
	MaxStudents int
	// MaxSweepCruises rejects wider sweeps. Zero means no limit.
	MaxSweepCruises int
	// Context is cancelled when the server shuts down. Defaults to
	// context.Background().
	Context context.Context
}

func New(runner *engine.Runner, opts Options) *Handler {
	h := &Handler{
		runner:          runner,
		maxStudents:     opts.MaxStudents,
		maxSweepCruises: opts.MaxSweepCruises,
		metrics:         fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler()),
		ctx:             opts.Context,
	}
	if h.ctx == nil {
		h.ctx = context.Background()
	}
	if opts.CacheTTL > 0 {
		h.results = cache.New(opts.CacheTTL, 2*opts.CacheTTL)
	}
	return h
}

// Route dispatches on the request path.
func (h *Handler) Route(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/simulate":
		h.post(ctx, h.HandleSimulate)
	case "/trace":
		h.post(ctx, h.HandleTrace)
	case "/sweep":
		h.post(ctx, h.HandleSweep)
	case "/compare":
		h.post(ctx, h.HandleCompare)
	case "/presets":
		h.get(ctx, h.HandlePresets)
	case "/metrics":
		h.get(ctx, h.metrics)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}
}

func (h *Handler) post(ctx *fasthttp.RequestCtx, next fasthttp.RequestHandler) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	next(ctx)
}

func (h *Handler) get(ctx *fasthttp.RequestCtx, next fasthttp.RequestHandler) {
	if !ctx.IsGet() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	next(ctx)
}

// HandleSimulate runs a batch and answers with the calculation envelope.
// Responses are cached by resolved scenario: every trial seed is derived from
// the scenario, so an identical scenario always yields the same result.
func (h *Handler) HandleSimulate(ctx *fasthttp.RequestCtx) {
	var req model.SimulationRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	key := ""
	if cfg, err := scenario.Resolve(req.Preset, req.Scenario); err == nil {
		if !h.checkSize(ctx, &cfg) {
			return
		}
		key = cacheKey(&cfg, req.IncludeTrace)
	}

	if key != "" && h.results != nil {
		if cached, ok := h.results.Get(key); ok {
			resp := *cached.(*model.SimulationResponse)
			resp.CalculationMetadata.RequestID = req.RequestID
			ctx.Response.Header.Set("X-Cache", "HIT")
			writeJSON(ctx, fasthttp.StatusOK, &resp)
			return
		}
	}

	resp := h.runner.Process(h.ctx, &req)
	if key != "" && h.results != nil && resp.CalculationMetadata.CalculationOutcome == model.OutcomeSuccess {
		h.results.SetDefault(key, resp)
	}
	writeJSON(ctx, fasthttp.StatusOK, resp)
}

// HandleTrace returns one illustrative trial: trial 0 of the batch.
func (h *Handler) HandleTrace(ctx *fasthttp.RequestCtx) {
	cfg, ok := h.decodeScenario(ctx, ctx.PostBody())
	if !ok {
		return
	}
	trace, err := h.runner.Trace(h.ctx, &cfg)
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, trace)
}

// HandleSweep runs the scenario for 1..max_cruises cruises. max_cruises is a
// query argument.
func (h *Handler) HandleSweep(ctx *fasthttp.RequestCtx) {
	maxCruises := defaultSweepCruises
	if raw := ctx.QueryArgs().Peek("max_cruises"); len(raw) > 0 {
		n, err := strconv.Atoi(string(raw))
		if err != nil {
			writeError(ctx, fasthttp.StatusBadRequest, "Invalid max_cruises: "+string(raw))
			return
		}
		maxCruises = n
	}
	if h.maxSweepCruises > 0 && maxCruises > h.maxSweepCruises {
		writeError(ctx, fasthttp.StatusBadRequest, fmt.Sprintf("max_cruises %d exceeds the limit of %d", maxCruises, h.maxSweepCruises))
		return
	}

	cfg, ok := h.decodeScenario(ctx, ctx.PostBody())
	if !ok {
		return
	}
	res, err := h.runner.Sweep(h.ctx, &cfg, maxCruises)
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, res)
}

func (h *Handler) HandleCompare(ctx *fasthttp.RequestCtx) {
	var req model.ComparisonRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	base, ok := h.resolve(ctx, &req.Base)
	if !ok {
		return
	}
	variant, ok := h.resolve(ctx, &req.Variant)
	if !ok {
		return
	}

	res, err := h.runner.Compare(h.ctx, &base, &variant)
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, res)
}

type presetInfo struct {
	Key         string               `json:"key"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Scenario    model.ScenarioConfig `json:"scenario"`
}

func (h *Handler) HandlePresets(ctx *fasthttp.RequestCtx) {
	var out []presetInfo
	for _, name := range scenario.Names() {
		p, _ := scenario.Get(name)
		out = append(out, presetInfo{
			Key:         name,
			Name:        p.Name,
			Description: p.Description,
			Scenario:    p.Config(),
		})
	}
	writeJSON(ctx, fasthttp.StatusOK, out)
}

func (h *Handler) decodeScenario(ctx *fasthttp.RequestCtx, body []byte) (model.ScenarioConfig, bool) {
	var req model.SimulationRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return model.ScenarioConfig{}, false
	}
	return h.resolve(ctx, &req)
}

func (h *Handler) resolve(ctx *fasthttp.RequestCtx, req *model.SimulationRequest) (model.ScenarioConfig, bool) {
	cfg, err := scenario.Resolve(req.Preset, req.Scenario)
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return model.ScenarioConfig{}, false
	}
	if err := scenario.Validate(&cfg); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return model.ScenarioConfig{}, false
	}
	if !h.checkSize(ctx, &cfg) {
		return model.ScenarioConfig{}, false
	}
	return cfg, true
}

func (h *Handler) checkSize(ctx *fasthttp.RequestCtx, cfg *model.ScenarioConfig) bool {
	if h.maxStudents > 0 && cfg.NumStudents > h.maxStudents {
		writeError(ctx, fasthttp.StatusBadRequest, fmt.Sprintf("num_students %d exceeds the limit of %d", cfg.NumStudents, h.maxStudents))
		return false
	}
	return true
}

func cacheKey(cfg *model.ScenarioConfig, trace bool) string {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:]) + ":" + strconv.FormatBool(trace)
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v interface{}) {
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	if err := json.NewEncoder(ctx).Encode(v); err != nil {
		log.WithError(err).Error("failed to encode response")
	}
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, model.ErrorResponse{
		Status:  status,
		Message: message,
	})
}
