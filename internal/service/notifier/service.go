package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mike-pete/cms/internal/entities"
	"github.com/mike-pete/cms/internal/logger"

	"github.com/redis/go-redis/v9"
)

// Envelope is the wire format on the user channel. Payloads are validated
// before publish and should be validated again after receipt.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type validatable interface {
	Validate() error
}

type Service struct {
	client *redis.Client
	logger logger.AppLogger
}

var _ Notifier = (*Service)(nil)

func NewService(client *redis.Client, log logger.AppLogger) *Service {
	return &Service{
		client: client,
		logger: log.With(slog.String("service", "notifier")),
	}
}

func (s *Service) FileChunked(ctx context.Context, userID string, event *entities.FileChunkedEvent) error {
	return s.publish(ctx, userID, entities.EventFileChunked, event)
}

func (s *Service) ChunkProcessed(ctx context.Context, userID string, event *entities.ChunkProcessedEvent) error {
	return s.publish(ctx, userID, entities.EventChunkProcessed, event)
}

func (s *Service) publish(ctx context.Context, userID, eventName string, payload validatable) error {
	if err := payload.Validate(); err != nil {
		return fmt.Errorf("error validate %s payload: %w", eventName, err)
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("error marshal %s payload: %w", eventName, err)
	}
	body, err := json.Marshal(Envelope{Event: eventName, Data: data})
	if err != nil {
		return fmt.Errorf("error marshal %s envelope: %w", eventName, err)
	}
	if err = s.client.Publish(ctx, channelForUser(userID), body).Err(); err != nil {
		return fmt.Errorf("error publish %s event: %w", eventName, err)
	}
	return nil
}

// Subscribe opens a session-scoped subscription to the user's channel.
// Callers own the subscription and must Close it when the session ends.
func (s *Service) Subscribe(ctx context.Context, userID string) *Subscription {
	pubsub := s.client.Subscribe(ctx, channelForUser(userID))
	sub := &Subscription{
		pubsub: pubsub,
		events: make(chan *Envelope),
		logger: s.logger,
	}
	go sub.receiveLoop(ctx)
	return sub
}

type Subscription struct {
	pubsub *redis.PubSub
	events chan *Envelope
	logger logger.AppLogger
}

func (s *Subscription) Events() <-chan *Envelope {
	return s.events
}

func (s *Subscription) Close() error {
	return s.pubsub.Close()
}

func (s *Subscription) receiveLoop(ctx context.Context) {
	defer close(s.events)
	ch := s.pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var envelope Envelope
			if err := json.Unmarshal([]byte(msg.Payload), &envelope); err != nil {
				s.logger.Error("error unmarshal event envelope", err)
				continue
			}
			if err := validateEnvelope(&envelope); err != nil {
				s.logger.Error("error validate received event", err, slog.String("event", envelope.Event))
				continue
			}
			select {
			case <-ctx.Done():
				return
			case s.events <- &envelope:
			}
		}
	}
}

// validateEnvelope re-checks the payload on the receiving side to guard
// against transport corruption.
func validateEnvelope(envelope *Envelope) error {
	switch envelope.Event {
	case entities.EventFileChunked:
		var event entities.FileChunkedEvent
		if err := json.Unmarshal(envelope.Data, &event); err != nil {
			return fmt.Errorf("%w: %s", entities.ErrInvalidEventPayload, err)
		}
		return event.Validate()
	case entities.EventChunkProcessed:
		var event entities.ChunkProcessedEvent
		if err := json.Unmarshal(envelope.Data, &event); err != nil {
			return fmt.Errorf("%w: %s", entities.ErrInvalidEventPayload, err)
		}
		return event.Validate()
	default:
		return fmt.Errorf("%w: %s", entities.ErrUnknownEvent, envelope.Event)
	}
}

func channelForUser(userID string) string {
	return "user:" + userID
}
