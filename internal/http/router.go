package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/foodmap-backend/internal/http/handlers"
	httpMW "github.com/yungbote/foodmap-backend/internal/http/middleware"
	"github.com/yungbote/foodmap-backend/internal/observability"
	"github.com/yungbote/foodmap-backend/internal/platform/logger"
)

const (
	FoodResourcesPath      = "/food-resources"
	FoodResourcesAliasPath = "/api/FoodResources"
)

type RouterConfig struct {
	Log     *logger.Logger
	Metrics *observability.Metrics

	// ServiceName enables otelgin spans when set.
	ServiceName string
	CORSOrigins []string

	FoodResourceHandler *httpH.FoodResourceHandler
	HealthHandler       *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	// Metrics
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapF(cfg.Metrics.WriteHTTP))
	}

	// Food resources, plus the legacy alias
	if h := cfg.FoodResourceHandler; h != nil {
		for _, base := range []string{FoodResourcesPath, FoodResourcesAliasPath} {
			g := r.Group(base)
			g.GET("", h.List)
			g.GET("/:id", h.Get)
			g.POST("", h.Create)
			g.PUT("/:id", h.Update)
			g.DELETE("/:id", h.Delete)
		}
	}

	return r
}
