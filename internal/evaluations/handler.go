package evaluations

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder-backend/internal/extract"
	"resume-builder-backend/internal/llm"
	"resume-builder-backend/internal/llm/validate"
	"resume-builder-backend/internal/shared/server/middleware"
	"resume-builder-backend/internal/shared/server/respond"
	"resume-builder-backend/internal/shared/telemetry"
	"resume-builder-backend/internal/shared/util"
)

// Handler exposes the upload/evaluate boundary.
type Handler struct {
	svc            *Service
	maxUploadBytes int64
}

func NewHandler(svc *Service, maxUploadBytes int64) *Handler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = 5 << 20
	}
	return &Handler{svc: svc, maxUploadBytes: maxUploadBytes}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/upload", h.upload)
	rg.GET("/evaluations/:id", h.get)
}

func (h *Handler) upload(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing identity", nil)
		return
	}

	jobDescription := c.PostForm("jobDescription")
	if jobDescription == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "jobDescription is required", nil)
		return
	}

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume file is required", nil)
		return
	}
	if fileHeader.Size > h.maxUploadBytes {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume file exceeds size limit", nil)
		return
	}
	fileName, err := util.SanitizeFileName(fileHeader.Filename)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid file name", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "could not read resume file", nil)
		return
	}
	defer file.Close()
	data, err := io.ReadAll(io.LimitReader(file, h.maxUploadBytes+1))
	if err != nil || int64(len(data)) > h.maxUploadBytes {
		respond.Error(c, http.StatusBadRequest, "validation_error", "could not read resume file", nil)
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	result, eval, err := h.svc.Evaluate(c.Request.Context(), userID, fileName, contentType, data, jobDescription)
	if err != nil {
		respondPipelineError(c, err)
		return
	}

	c.Set("evaluationId", eval.ID)
	respond.OK(c, gin.H{"evaluation": result})
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing identity", nil)
		return
	}

	eval, err := h.svc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondPipelineError(c, err)
		return
	}

	respond.OK(c, gin.H{"evaluation": eval})
}

// respondPipelineError maps pipeline-stage failures to typed, user-displayable
// responses. Upstream detail stays in logs.
func respondPipelineError(c *gin.Context, err error) {
	var schemaErr *validate.SchemaViolationError
	var gatewayErr *llm.GatewayError
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "Evaluation not found or access denied.", nil)
	case errors.Is(err, extract.ErrUnsupportedFormat):
		respond.Error(c, http.StatusBadRequest, "unsupported_format", "Unsupported file type. Please upload a PDF or DOCX.", nil)
	case errors.Is(err, extract.ErrInsufficientContent):
		respond.Error(c, http.StatusBadRequest, "insufficient_content", "Could not extract sufficient text from the file.", nil)
	case errors.Is(err, extract.ErrExtractionFailed):
		respond.Error(c, http.StatusBadRequest, "extraction_failed", "The file appears to be corrupted or unreadable.", nil)
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
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request", nil)
	default:
		telemetry.Error("evaluate.failed", map[string]any{"err": err.Error()})
		respond.Error(c, http.StatusInternalServerError, "internal", "Failed to evaluate resume.", nil)
	}
}
