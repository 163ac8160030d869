package generatedresumes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder-backend/internal/llm"
	"resume-builder-backend/internal/llm/validate"
	"resume-builder-backend/internal/shared/server/middleware"
	"resume-builder-backend/internal/shared/server/respond"
	"resume-builder-backend/internal/shared/telemetry"
	"resume-builder-backend/internal/types"
)

// Handler exposes the generate and history-view boundaries.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/generate", h.generate)
	rg.GET("/resumes/:id", h.getStoredForm)
	rg.POST("/resumes/:id/regenerate", h.regenerate)
}

type generateRequest struct {
	types.FormData
	Template string `json:"template"`
}

func (h *Handler) generate(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing identity", nil)
		return
	}

	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	generated, err := h.svc.Generate(c.Request.Context(), userID, req.FormData, req.Template)
	if err != nil {
		respondGenerateError(c, err)
		return
	}

	c.Set("resumeId", generated.Record.ID)
	respond.OK(c, gin.H{
		"resume":   generated.Result,
		"document": generated.Document,
	})
}

func (h *Handler) getStoredForm(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing identity", nil)
		return
	}

	record, err := h.svc.GetStoredForm(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondGenerateError(c, err)
		return
	}

	respond.OK(c, gin.H{
		"formData":     record.FormData,
		"templateUsed": record.TemplateUsed,
	})
}

func (h *Handler) regenerate(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing identity", nil)
		return
	}

	generated, err := h.svc.Regenerate(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		var stageErr *StageError
		if errors.As(err, &stageErr) {
			telemetry.Warn("regenerate.stage_failed", map[string]any{
				"stage":     stageErr.Stage,
				"resume_id": c.Param("id"),
				"err":       stageErr.Err.Error(),
			})
		}
		respondGenerateError(c, err)
		return
	}

	c.Set("resumeId", generated.Record.ID)
	respond.OK(c, gin.H{
		"resume":      generated.Result,
		"document":    generated.Document,
		"regenerated": true,
	})
}

func respondGenerateError(c *gin.Context, err error) {
	var schemaErr *validate.SchemaViolationError
	var gatewayErr *llm.GatewayError
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "Generated resume not found or access denied.", nil)
	case errors.Is(err, ErrIncompleteRecord):
		respond.Error(c, http.StatusNotFound, "incomplete_record", "Historical resume data not found for this entry. Cannot re-generate.", nil)
	case errors.Is(err, llm.ErrTimeout):
		respond.Error(c, http.StatusGatewayTimeout, "ai_timeout", "The AI service took too long to respond. Please try again.", nil)
	case errors.As(err, &gatewayErr):
		telemetry.Error("llm.gateway_error", map[string]any{"err": gatewayErr.Upstream})
		respond.Error(c, http.StatusBadGateway, "ai_gateway_error", "The AI service failed to process the request.", nil)
	case errors.As(err, &schemaErr):
		respond.Error(c, http.StatusBadGateway, "ai_schema_violation", "The AI response did not match the expected format.", gin.H{"path": schemaErr.Path})
	case errors.Is(err, validate.ErrMalformedResponse):
		respond.Error(c, http.StatusBadGateway, "ai_malformed_response", "The AI response could not be parsed.", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", "name, email, phone and role are required", nil)
	default:
		telemetry.Error("generate.failed", map[string]any{"err": err.Error()})
		respond.Error(c, http.StatusInternalServerError, "internal", "Failed to generate resume.", nil)
	}
}
