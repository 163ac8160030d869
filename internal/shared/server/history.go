package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder-backend/internal/evaluations"
	"resume-builder-backend/internal/generatedresumes"
	"resume-builder-backend/internal/shared/server/middleware"
	"resume-builder-backend/internal/shared/server/respond"
	"resume-builder-backend/internal/shared/telemetry"
)

// registerHistoryRoutes wires the unified history view: the caller's
// evaluations and generated resume records, each newest first. Generated
// resume rows carry stored inputs only; content is recomputed on demand via
// the regenerate endpoint.
func registerHistoryRoutes(rg *gin.RouterGroup, evalSvc *evaluations.Service, resumeSvc *generatedresumes.Service) {
	rg.GET("/history", func(c *gin.Context) {
		userID := middleware.UserIDFromContext(c)
		if userID == "" {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing identity", nil)
			return
		}

		ctx := c.Request.Context()
		evals, err := evalSvc.List(ctx, userID)
		if err != nil {
			telemetry.Error("history.evaluations.failed", map[string]any{"err": err.Error()})
			respond.Error(c, http.StatusInternalServerError, "internal", "Failed to load history.", nil)
			return
		}
		generated, err := resumeSvc.List(ctx, userID)
		if err != nil {
			telemetry.Error("history.generated.failed", map[string]any{"err": err.Error()})
			respond.Error(c, http.StatusInternalServerError, "internal", "Failed to load history.", nil)
			return
		}

		if evals == nil {
			evals = []evaluations.Evaluation{}
		}
		if generated == nil {
			generated = []generatedresumes.GeneratedResume{}
		}
		respond.OK(c, gin.H{
			"evaluations":      evals,
			"generatedResumes": generated,
		})
	})
}
