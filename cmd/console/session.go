package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jwebster45206/text-adventure/internal/logger"
	"github.com/jwebster45206/text-adventure/internal/services/events"
	"github.com/jwebster45206/text-adventure/pkg/action"
	"github.com/jwebster45206/text-adventure/pkg/navigation"
	"github.com/jwebster45206/text-adventure/pkg/scenario"
	"github.com/jwebster45206/text-adventure/pkg/state"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// session is one running game and the observers attached to it.
type session struct {
	scenario *scenario.Scenario
	model    *state.GameModel
	monitor  *state.MovementMonitor
	pad      *navigation.Pad
}

// sessionStarter builds sessions from scenario files.
type sessionStarter struct {
	logger         *slog.Logger
	broadcaster    *events.Broadcaster // nil when broadcasting is off
	publishTimeout time.Duration
}

var discard = slog.New(slog.DiscardHandler)

func (s *sessionStarter) log() *slog.Logger {
	if s.logger == nil {
		return discard
	}
	return s.logger
}

func (s *sessionStarter) start(path string) (*session, error) {
	log := s.log()

	scen, err := scenario.Load(path)
	if err != nil {
		return nil, err
	}

	model, err := scen.NewGameModel(action.NewFactory(), log)
	if err != nil {
		return nil, err
	}
	log = logger.WithGameID(log, model.ID().String())

	monitor := state.NewMovementMonitor(model)
	model.SubscribeForEvents(monitor)

	if s.broadcaster != nil {
		model.SubscribeForEvents(events.NewMovementPublisher(s.broadcaster, model, s.publishTimeout, log))

		ctx, cancel := context.WithTimeout(context.Background(), s.publishTimeout)
		if err := s.broadcaster.PublishGameStarted(ctx, model.ID(), scen.Name); err != nil {
			logger.WithError(log, err).Warn("Game start not published")
		}
		cancel()
	}

	// Announce the opening location again so the observers see it.
	if err := model.SetCurrentLocation(scen.OpeningLocation); err != nil {
		return nil, fmt.Errorf("failed to enter opening location: %w", err)
	}

	pad := navigation.NewPad(model)
	pad.ShowExits(model.CurrentLocationExits())

	log.Info("Game started", "scenario", scen.Name, "file", scen.FileName)

	return &session{
		scenario: scen,
		model:    model,
		monitor:  monitor,
		pad:      pad,
	}, nil
}

// refresh puts the current location's exits on the pad.
func (s *session) refresh() {
	s.pad.ShowExits(s.model.CurrentLocationExits())
}

var titleCaser = cases.Title(language.English)

// displayName turns an id such as "cliff_top" into "Cliff Top".
func displayName(id string) string {
	if id == "" {
		return "Unknown"
	}
	return titleCaser.String(strings.ReplaceAll(id, "_", " "))
}
