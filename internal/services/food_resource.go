package services

import (
	"context"
	"time"

	domainagg "github.com/yungbote/foodmap-backend/internal/domain/aggregates"
	"github.com/yungbote/foodmap-backend/internal/domain/directory"
	"github.com/yungbote/foodmap-backend/internal/platform/logger"
)

const publishTimeout = 5 * time.Second

type FoodResourceService interface {
	List(ctx context.Context) ([]directory.FoodResourceView, error)
	Get(ctx context.Context, id uint) (directory.FoodResourceView, error)
	Create(ctx context.Context, in directory.FoodResourceInput) (directory.FoodResourceView, error)
	Update(ctx context.Context, id uint, in directory.FoodResourceInput) (directory.FoodResourceView, error)
	Delete(ctx context.Context, id uint) error
}

type foodResourceService struct {
	log       *logger.Logger
	agg       domainagg.FoodResourceAggregate
	publisher ChangePublisher
}

func NewFoodResourceService(baseLog *logger.Logger, agg domainagg.FoodResourceAggregate, publisher ChangePublisher) FoodResourceService {
	if publisher == nil {
		publisher = NewNoopChangePublisher()
	}
	return &foodResourceService{
		log:       baseLog.With("service", "FoodResourceService"),
		agg:       agg,
		publisher: publisher,
	}
}

func (s *foodResourceService) List(ctx context.Context) ([]directory.FoodResourceView, error) {
	return s.agg.ListAll(ctx)
}

func (s *foodResourceService) Get(ctx context.Context, id uint) (directory.FoodResourceView, error) {
	return s.agg.GetByID(ctx, id)
}

func (s *foodResourceService) Create(ctx context.Context, in directory.FoodResourceInput) (directory.FoodResourceView, error) {
	view, err := s.agg.Insert(ctx, in)
	if err != nil {
		return directory.FoodResourceView{}, err
	}
	s.log.Info("Food resource created", "food_resource_id", view.ID, "name", view.Name)
	s.publish(ctx, NewChangeEvent(ChangeCreated, view.ID, &view))
	return view, nil
}

func (s *foodResourceService) Update(ctx context.Context, id uint, in directory.FoodResourceInput) (directory.FoodResourceView, error) {
	view, err := s.agg.Update(ctx, id, in)
	if err != nil {
		return directory.FoodResourceView{}, err
	}
	s.log.Info("Food resource updated", "food_resource_id", id)
	s.publish(ctx, NewChangeEvent(ChangeUpdated, id, &view))
	return view, nil
}

func (s *foodResourceService) Delete(ctx context.Context, id uint) error {
	if err := s.agg.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("Food resource deleted", "food_resource_id", id)
	s.publish(ctx, NewChangeEvent(ChangeDeleted, id, nil))
	return nil
}

// publish runs after commit. The request context may already be cancelled by then, so the
// write gets its own deadline, and a failure is only logged.
func (s *foodResourceService) publish(ctx context.Context, evt ChangeEvent) {
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := s.publisher.Publish(pubCtx, evt); err != nil {
		s.log.Warn("Change event publish failed",
			"event_id", evt.EventID,
			"action", evt.Action,
			"food_resource_id", evt.ID,
			"error", err,
		)
	}
}
