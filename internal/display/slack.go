package display

import (
	"context"
	"log/slog"

	"github.com/nlopes/slack"

	"nstravel/internal/config"
	"nstravel/internal/domain"
)

// Slack keeps one message per board in a channel and edits it on every
// change.
type Slack struct {
	client  *slack.Client
	channel string
	display config.Display
	box     mailbox
	logger  *slog.Logger

	// ts identifies the posted message; owned by Run.
	ts string
}

func NewSlack(client *slack.Client, channel string, d config.Display, logger *slog.Logger) *Slack {
	return &Slack{
		client:  client,
		channel: channel,
		display: d,
		box:     newMailbox(),
		logger:  logger.With("component", "slack", "station", d.Station, "channel", channel),
	}
}

func (s *Slack) Publish(b *domain.Board) {
	s.box.put(b)
}

func (s *Slack) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case b := <-s.box.ch:
			if err := s.send(ctx, b); err != nil {
				s.logger.Error("failed to post board", "error", err)
			}
		}
	}
}

func (s *Slack) send(ctx context.Context, b *domain.Board) error {
	text := slack.MsgOptionText("```\n"+String(b, s.display)+"```", false)

	if s.ts == "" {
		_, ts, err := s.client.PostMessageContext(ctx, s.channel, text)
		if err != nil {
			return err
		}
		s.ts = ts
		s.logger.Debug("board posted", "ts", ts)
		return nil
	}

	_, _, _, err := s.client.UpdateMessageContext(ctx, s.channel, s.ts, text)
	return err
}
