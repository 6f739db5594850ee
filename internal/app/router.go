package app

import (
	"github.com/yungbote/foodmap-backend/internal/http"
	"github.com/yungbote/foodmap-backend/internal/observability"
	"github.com/yungbote/foodmap-backend/internal/platform/logger"
)

func wireServer(log *logger.Logger, cfg Config, handlers Handlers, metrics *observability.Metrics) *http.Server {
	var otelService string
	if cfg.Otel.Enabled {
		otelService = cfg.Otel.ServiceName
	}
	return http.NewServer(http.RouterConfig{
		Log:                 log,
		Metrics:             metrics,
		ServiceName:         otelService,
		CORSOrigins:         cfg.CORSOrigins,
		FoodResourceHandler: handlers.FoodResource,
		HealthHandler:       handlers.Health,
	}, cfg.Addr())
}
