package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/moussa101/Skillora/internal/analyses"
	"github.com/moussa101/Skillora/internal/ats"
	"github.com/moussa101/Skillora/internal/embedding"
	"github.com/moussa101/Skillora/internal/language"
	"github.com/moussa101/Skillora/internal/match"
	"github.com/moussa101/Skillora/internal/shared/config"
	"github.com/moussa101/Skillora/internal/shared/server/middleware"
	"github.com/moussa101/Skillora/internal/shared/server/respond"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	// Dependencies. The embedder is built lazily on first use; without an
	// API key the match scorer falls back to its fixed semantic score.
	var embedder embedding.Embedder
	if cfg.OpenAIAPIKey != "" {
		embedder = embedding.NewLazy(func() (embedding.Embedder, error) {
			return embedding.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.EmbeddingModel)
		})
	}

	svc := analyses.NewService(
		&language.WhatlangDetector{},
		&match.Scorer{Embedder: embedder},
		ats.NewScorer(),
	)
	handler := analyses.NewHandler(svc)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"status": "healthy", "version": "1.1.0"})
	})
	handler.RegisterRoutes(api)

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
