package app

import (
	httpH "github.com/yungbote/foodmap-backend/internal/http/handlers"
	"github.com/yungbote/foodmap-backend/internal/observability"
	"github.com/yungbote/foodmap-backend/internal/platform/logger"
)

type Handlers struct {
	Health       *httpH.HealthHandler
	FoodResource *httpH.FoodResourceHandler
}

func wireHandlers(log *logger.Logger, db httpH.Pinger, services Services, metrics *observability.Metrics) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:       httpH.NewHealthHandler(db, log),
		FoodResource: httpH.NewFoodResourceHandler(services.FoodResource, metrics, log),
	}
}
