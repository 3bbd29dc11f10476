package handler

import (
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"

	"notice-precheck/internal/engine"
	"notice-precheck/internal/jsonpatch"
	"notice-precheck/internal/model"
)

// PrecheckMetadata wraps the pure result for the API. IDs and timings live
// here, outside the core, so Evaluate itself stays deterministic.
type PrecheckMetadata struct {
	PrecheckID  string `json:"precheck_id"`
	StartedAt   string `json:"started_at"`
	CompletedAt string `json:"completed_at"`
	DurationMs  int64  `json:"duration_ms"`
}

type EvaluateResponse struct {
	PrecheckMetadata PrecheckMetadata               `json:"precheck_metadata"`
	Result           *model.Section21PrecheckResult `json:"result"`

	// Answers is the RFC 6902 patch from a blank questionnaire to the
	// submitted facts; hosts store it as the wizard answer trail.
	Answers []map[string]interface{} `json:"answers"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// Router dispatches API requests. fasthttp has no mux; the path space is
// three routes, a switch is enough.
func Router(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/healthz":
		ctx.SetStatusCode(fasthttp.StatusOK)
		ctx.SetBodyString("ok")
	case "/api/precheck/evaluate":
		HandleEvaluate(ctx)
	case "/api/precheck/completeness":
		HandleCompleteness(ctx)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}
}

// HandleEvaluate runs the full pre-check over the posted fact object.
func HandleEvaluate(ctx *fasthttp.RequestCtx) {
	facts, ok := decodeFacts(ctx)
	if !ok {
		return
	}

	start := time.Now()
	result := engine.Evaluate(&facts)
	elapsed := time.Since(start)
	now := time.Now().UTC()

	writeJSON(ctx, fasthttp.StatusOK, EvaluateResponse{
		PrecheckMetadata: PrecheckMetadata{
			PrecheckID:  uuid.New().String(),
			StartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			CompletedAt: now.Format(time.RFC3339),
			DurationMs:  elapsed.Milliseconds(),
		},
		Result:  result,
		Answers: answersPatch(&facts),
	})
}

// HandleCompleteness reports the questions still unanswered, grouped by
// wizard section.
func HandleCompleteness(ctx *fasthttp.RequestCtx) {
	facts, ok := decodeFacts(ctx)
	if !ok {
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, engine.Completeness(&facts))
}

// decodeFacts reads the posted fact object over the blank-questionnaire
// defaults, so omitted fields keep their "unsure" initial state.
func decodeFacts(ctx *fasthttp.RequestCtx) (model.Section21PrecheckInput, bool) {
	facts := model.DefaultFacts()
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return facts, false
	}
	if err := json.Unmarshal(ctx.PostBody(), &facts); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return facts, false
	}
	return facts, true
}

func answersPatch(facts *model.Section21PrecheckInput) []map[string]interface{} {
	blank := toMap(model.DefaultFacts())
	submitted := toMap(*facts)
	patch := jsonpatch.Diff(blank, submitted, "")
	if patch == nil {
		patch = []map[string]interface{}{}
	}
	return patch
}

func toMap(facts model.Section21PrecheckInput) map[string]interface{} {
	b, _ := json.Marshal(facts)
	var m map[string]interface{}
	json.Unmarshal(b, &m)
	return m
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v interface{}) {
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	body, _ := json.Marshal(v)
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, ErrorResponse{Status: status, Message: message})
}
