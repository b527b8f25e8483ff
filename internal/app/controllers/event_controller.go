package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursecraft/internal/app/models"
	"github.com/yigit/coursecraft/internal/app/models/dto"
	"github.com/yigit/coursecraft/internal/middleware"
	"github.com/yigit/coursecraft/internal/pkg/apperrors"
	"github.com/yigit/coursecraft/internal/pkg/events"
	"github.com/yigit/coursecraft/internal/pkg/logger"
)

// RunLister reads recorded function runs
type RunLister interface {
	ListRecent(ctx context.Context, functionID string, limit int) ([]*models.EventRun, error)
}

// EventController serves the function registry over HTTP
type EventController struct {
	registry   *events.Registry
	runs       RunLister
	signingKey []byte
}

// NewEventController creates a new EventController. An empty signingKey
// accepts unsigned deliveries.
func NewEventController(registry *events.Registry, runs RunLister, signingKey string) *EventController {
	return &EventController{registry: registry, runs: runs, signingKey: []byte(signingKey)}
}

// ListFunctions godoc
// @Summary List registered functions
// @Description Introspection of every function and its trigger
// @Tags events
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.FunctionListResponse}
// @Router /inngest [get]
func (c *EventController) ListFunctions(ctx *gin.Context) {
	respond(ctx, http.StatusOK, c.functionList())
}

// SyncFunctions godoc
// @Summary Sync registered functions
// @Description Re-register the functions and return them with their count
// @Tags events
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.FunctionListResponse}
// @Router /inngest [put]
func (c *EventController) SyncFunctions(ctx *gin.Context) {
	list := c.functionList()
	logger.Info().Int("functionCount", list.FunctionCount).Str("clientIP", ctx.ClientIP()).Msg("Functions synced")
	respond(ctx, http.StatusOK, list)
}

// DeliverEvent godoc
// @Summary Deliver an event
// @Description Run every function subscribed to the event name, or only fnId when given
// @Tags events
// @Accept json
// @Produce json
// @Param X-Signature header string false "sha256=<hex hmac of the body>"
// @Param fnId query string false "Run only this function"
// @Param request body dto.EventRequest true "Event"
// @Success 200 {object} dto.APIResponse{data=dto.EventDeliveryResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /inngest [post]
func (c *EventController) DeliverEvent(ctx *gin.Context) {
	body, err := ctx.GetRawData()
	if err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	if err := events.VerifySignature(c.signingKey, body, ctx.GetHeader(events.SignatureHeader)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.EventRequest
	if err := json.Unmarshal(body, &req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError(fmt.Sprintf("Invalid event payload: %v", err)))
		return
	}

	evt := events.Event{Name: req.Name, Data: req.Data, ID: req.ID, TS: req.TS}

	var results []events.Result
	if fnID := ctx.Query("fnId"); fnID != "" {
		if evt.Name == "" {
			middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Event name is required"))
			return
		}
		result, err := c.registry.Invoke(ctx, fnID, evt)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		results = []events.Result{result}
	} else {
		results, err = c.registry.Dispatch(ctx, evt)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
	}

	resp := dto.EventDeliveryResponse{Event: evt.Name, Results: make([]dto.FunctionResult, 0, len(results))}
	for _, r := range results {
		resp.Results = append(resp.Results, dto.FunctionResult{
			FunctionID: r.FunctionID,
			RunID:      r.RunID,
			Status:     string(r.Status),
			Output:     r.Output,
			Error:      r.Error,
		})
	}
	respond(ctx, http.StatusOK, resp)
}

// ListRuns godoc
// @Summary List recent function runs
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param functionId query string false "Only runs of this function"
// @Param limit query int false "Maximum number of runs (default: 50, max: 200)"
// @Success 200 {object} dto.APIResponse{data=[]models.EventRun}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /events/runs [get]
func (c *EventController) ListRuns(ctx *gin.Context) {
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "50"))
	if err != nil || limit <= 0 || limit > 200 {
		limit = 50
	}

	runs, err := c.runs.ListRecent(ctx, ctx.Query("functionId"), limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, runs)
}

func (c *EventController) functionList() dto.FunctionListResponse {
	infos := c.registry.Functions()
	list := dto.FunctionListResponse{Functions: make([]dto.FunctionInfo, 0, len(infos)), FunctionCount: len(infos)}
	for _, info := range infos {
		fn := dto.FunctionInfo{ID: info.ID, Name: info.Name}
		for _, t := range info.Triggers {
			fn.Triggers = append(fn.Triggers, dto.FunctionTrigger{Event: t.Event, Cron: t.Cron})
		}
		list.Functions = append(list.Functions, fn)
	}
	return list
}
