package events

import (
	"context"
	"log/slog"
	"time"

	"github.com/jwebster45206/text-adventure/pkg/state"
)

// MovementPublisher broadcasts every move the player makes.
type MovementPublisher struct {
	broadcaster *Broadcaster
	model       *state.GameModel
	timeout     time.Duration
	logger      *slog.Logger
}

var _ state.MovementSubscriber = (*MovementPublisher)(nil)

func NewMovementPublisher(b *Broadcaster, model *state.GameModel, timeout time.Duration, logger *slog.Logger) *MovementPublisher {
	return &MovementPublisher{
		broadcaster: b,
		model:       model,
		timeout:     timeout,
		logger:      logger,
	}
}

// CurrentLocationChanged publishes the new location. Failures are logged
// and dropped so a broken connection never blocks play for long.
func (p *MovementPublisher) CurrentLocationChanged() {
	l := p.model.CurrentLocation()
	if l == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	if err := p.broadcaster.PublishLocationChanged(ctx, p.model.ID(), l.ID(), l.AreaID()); err != nil {
		p.logger.Warn("Movement event not published", "error", err, "location", l.ID())
	}
}
