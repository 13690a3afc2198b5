package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// EventType represents the type of event being broadcast
type EventType string

const (
	EventTypeGameStarted     EventType = "game.started"
	EventTypeLocationChanged EventType = "location.changed"
)

// Event represents a generic event structure
type Event struct {
	Type   EventType      `json:"type"`
	GameID string         `json:"game_id,omitempty"`
	Data   map[string]any `json:"data,omitempty"`
}

// Channel returns the pub/sub channel carrying a game's events.
func Channel(gameID uuid.UUID) string {
	return fmt.Sprintf("game-events:%s", gameID.String())
}

// Broadcaster publishes game events to Redis Pub/Sub.
type Broadcaster struct {
	redisClient *redis.Client
	logger      *slog.Logger
}

// NewBroadcaster creates a new event broadcaster
func NewBroadcaster(redisClient *redis.Client, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		redisClient: redisClient,
		logger:      logger,
	}
}

// PublishGameStarted publishes a game.started event
func (b *Broadcaster) PublishGameStarted(ctx context.Context, gameID uuid.UUID, scenario string) error {
	event := Event{
		Type:   EventTypeGameStarted,
		GameID: gameID.String(),
		Data: map[string]any{
			"scenario": scenario,
		},
	}
	return b.publishToGame(ctx, gameID, event)
}

// PublishLocationChanged publishes a location.changed event
func (b *Broadcaster) PublishLocationChanged(ctx context.Context, gameID uuid.UUID, locationID, areaID string) error {
	event := Event{
		Type:   EventTypeLocationChanged,
		GameID: gameID.String(),
		Data: map[string]any{
			"location": locationID,
			"area":     areaID,
		},
	}
	return b.publishToGame(ctx, gameID, event)
}

// publishToGame publishes an event to the game-specific channel
func (b *Broadcaster) publishToGame(ctx context.Context, gameID uuid.UUID, event Event) error {
	channel := Channel(gameID)

	data, err := json.Marshal(event)
	if err != nil {
		b.logger.Error("Failed to marshal event", "error", err, "event", event)
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := b.redisClient.Publish(ctx, channel, data).Err(); err != nil {
		b.logger.Error("Failed to publish event", "error", err, "channel", channel)
		return fmt.Errorf("failed to publish event: %w", err)
	}

	b.logger.Debug("Event published",
		"channel", channel,
		"event_type", event.Type,
	)

	return nil
}

// Listen delivers a game's events to fn until ctx is done. Messages that
// are not events are logged and skipped.
func (b *Broadcaster) Listen(ctx context.Context, gameID uuid.UUID, fn func(Event)) error {
	pubsub := b.redisClient.Subscribe(ctx, Channel(gameID))
	defer pubsub.Close()

	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe: %w", err)
	}

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			var event Event
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				b.logger.Warn("Skipping malformed event", "error", err, "channel", msg.Channel)
				continue
			}
			fn(event)
		}
	}
}
