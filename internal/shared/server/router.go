package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	googleauth "resume-builder-backend/internal/auth"
	"resume-builder-backend/internal/evaluations"
	"resume-builder-backend/internal/generatedresumes"
	"resume-builder-backend/internal/llm"
	"resume-builder-backend/internal/llm/openai"
	"resume-builder-backend/internal/shared/config"
	"resume-builder-backend/internal/shared/server/middleware"
	"resume-builder-backend/internal/shared/server/respond"
	"resume-builder-backend/internal/shared/storage/db"
	"resume-builder-backend/internal/users"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Dependencies
	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
		} else {
			if err := db.RunMigrations(context.Background(), dbConn); err != nil {
				log.Printf("failed to run migrations, falling back to memory: %v", err)
				dbConn.Close()
				dbConn = nil
			}
		}
		sqlDB = dbConn
	}

	var userRepo users.Repo
	if sqlDB != nil {
		userRepo = &users.PGRepo{DB: sqlDB}
	} else {
		userRepo = users.NewMemoryRepo()
	}
	usersSvc := users.NewService(userRepo)

	var llmClient llm.Client
	if client, err := openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel, cfg.LLMTimeout); err != nil {
		log.Printf("llm client not configured: %v", err)
	} else {
		llmClient = client
	}

	var evalRepo evaluations.Repo
	if sqlDB != nil {
		evalRepo = &evaluations.PGRepo{DB: sqlDB}
	} else {
		evalRepo = evaluations.NewMemoryRepo()
	}
	evalSvc := &evaluations.Service{Repo: evalRepo, LLM: llmClient}
	evalHandler := evaluations.NewHandler(evalSvc, cfg.MaxUploadBytes)

	var resumeRepo generatedresumes.Repo
	if sqlDB != nil {
		resumeRepo = &generatedresumes.PGRepo{DB: sqlDB}
	} else {
		resumeRepo = generatedresumes.NewMemoryRepo()
	}
	resumeSvc := &generatedresumes.Service{Repo: resumeRepo, LLM: llmClient}
	resumeHandler := generatedresumes.NewHandler(resumeSvc)

	googleAuthSvc := googleauth.NewGoogleService(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL, cfg.UIRedirectURL, usersSvc)

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.Auth(func(ctx context.Context, identity middleware.Identity) error {
			return usersSvc.EnsureUser(ctx, identity.Subject, identity.Email, identity.Name)
		}),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	googleAuthSvc.RegisterRoutes(api)
	evalHandler.RegisterRoutes(api)
	resumeHandler.RegisterRoutes(api)
	registerHistoryRoutes(api, evalSvc, resumeSvc)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
