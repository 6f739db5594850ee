package services

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/foodmap-backend/internal/domain/directory"
	"github.com/yungbote/foodmap-backend/internal/observability"
	"github.com/yungbote/foodmap-backend/internal/platform/logger"
)

type ChangeAction string

const (
	ChangeCreated ChangeAction = "created"
	ChangeUpdated ChangeAction = "updated"
	ChangeDeleted ChangeAction = "deleted"
)

// ChangeEvent is published after a food resource write commits. Resource is nil for deletes.
type ChangeEvent struct {
	ID         uint                        `json:"id"`
	EventID    string                      `json:"eventId"`
	Action     ChangeAction                `json:"action"`
	OccurredAt time.Time                   `json:"occurredAt"`
	Resource   *directory.FoodResourceView `json:"resource,omitempty"`
}

func NewChangeEvent(action ChangeAction, id uint, view *directory.FoodResourceView) ChangeEvent {
	return ChangeEvent{
		ID:         id,
		EventID:    uuid.NewString(),
		Action:     action,
		OccurredAt: time.Now().UTC(),
		Resource:   view,
	}
}

type ChangePublisher interface {
	Publish(ctx context.Context, evt ChangeEvent) error
}

// MessageWriter is satisfied by *kafka.Publisher.
type MessageWriter interface {
	Publish(ctx context.Context, key, value []byte, headers map[string]string) error
}

type noopChangePublisher struct{}

func NewNoopChangePublisher() ChangePublisher { return noopChangePublisher{} }

func (noopChangePublisher) Publish(context.Context, ChangeEvent) error { return nil }

type brokerChangePublisher struct {
	writer  MessageWriter
	metrics *observability.Metrics
	log     *logger.Logger
}

func NewBrokerChangePublisher(baseLog *logger.Logger, writer MessageWriter, metrics *observability.Metrics) ChangePublisher {
	if writer == nil {
		return NewNoopChangePublisher()
	}
	return &brokerChangePublisher{
		writer:  writer,
		metrics: metrics,
		log:     baseLog.With("publisher", "BrokerChangePublisher"),
	}
}

func (p *brokerChangePublisher) Publish(ctx context.Context, evt ChangeEvent) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		p.metrics.IncChangeEvent(string(evt.Action), "error")
		return err
	}
	key := []byte(strconv.FormatUint(uint64(evt.ID), 10))
	headers := map[string]string{
		"event_id": evt.EventID,
		"action":   string(evt.Action),
	}
	if err := p.writer.Publish(ctx, key, payload, headers); err != nil {
		p.metrics.IncChangeEvent(string(evt.Action), "error")
		return err
	}
	p.metrics.IncChangeEvent(string(evt.Action), "ok")
	p.log.Debug("Change event published", "event_id", evt.EventID, "action", evt.Action, "food_resource_id", evt.ID)
	return nil
}
