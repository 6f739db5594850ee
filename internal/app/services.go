package app

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/foodmap-backend/internal/data/aggregates"
	domainagg "github.com/yungbote/foodmap-backend/internal/domain/aggregates"
	"github.com/yungbote/foodmap-backend/internal/observability"
	"github.com/yungbote/foodmap-backend/internal/platform/kafka"
	"github.com/yungbote/foodmap-backend/internal/platform/logger"
	"github.com/yungbote/foodmap-backend/internal/services"
)

type Services struct {
	FoodResourceAggregate domainagg.FoodResourceAggregate
	FoodResource          services.FoodResourceService
	Seeder                *services.Seeder

	// kafkaPublisher is nil when KAFKA_BROKERS is empty.
	kafkaPublisher *kafka.Publisher
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos, metrics *observability.Metrics) (Services, error) {
	log.Info("Wiring services...")

	publisher := services.NewNoopChangePublisher()
	var kp *kafka.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		var err error
		kp, err = kafka.NewPublisher(kafka.Config{Brokers: cfg.KafkaBrokers, Topic: cfg.KafkaTopic}, log)
		if err != nil {
			return Services{}, fmt.Errorf("init kafka publisher: %w", err)
		}
		publisher = services.NewBrokerChangePublisher(log, kp, metrics)
	} else {
		log.Info("KAFKA_BROKERS empty; change events disabled")
	}

	agg := aggregates.NewFoodResourceAggregate(aggregates.FoodResourceAggregateDeps{
		Base: aggregates.BaseDeps{
			DB:    db,
			Log:   log,
			Hooks: aggregates.NewObservabilityHooks(metrics),
		},
		FoodResources: reposet.FoodResource,
		Tags:          reposet.Tag,
		Days:          reposet.Day,
		ResourceTags:  reposet.ResourceTag,
		BusinessHours: reposet.BusinessHours,
	})

	foodResources := services.NewFoodResourceService(log, agg, publisher)
	return Services{
		FoodResourceAggregate: agg,
		FoodResource:          foodResources,
		Seeder:                services.NewSeeder(log, foodResources),
		kafkaPublisher:        kp,
	}, nil
}

func (s Services) Close() error {
	return s.kafkaPublisher.Close()
}
