package stream

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/juju/clock"
	"gorm.io/gorm"

	"apt-be-svc/pkg/logger"
)

// PGNotifier publishes changes with pg_notify so every instance sharing the
// database sees them. When the publish fails the local hub is still signalled.
type PGNotifier struct {
	db       *gorm.DB
	channel  string
	fallback Notifier
	logger   *logger.Logger
}

// NewPGNotifier creates a notifier publishing on channel.
func NewPGNotifier(db *gorm.DB, channel string, fallback Notifier, logger *logger.Logger) *PGNotifier {
	return &PGNotifier{db: db, channel: channel, fallback: fallback, logger: logger}
}

// Notify implements Notifier.
func (n *PGNotifier) Notify(ctx context.Context, change Change) {
	payload, err := json.Marshal(change)
	if err == nil {
		err = n.db.WithContext(ctx).Exec("SELECT pg_notify(?, ?)", n.channel, string(payload)).Error
	}
	if err != nil {
		n.logger.WithError(err).WithFields(map[string]interface{}{
			"channel":    n.channel,
			"collection": change.Collection,
		}).Warn("Failed to publish change, signalling local watchers only")
		if n.fallback != nil {
			n.fallback.Notify(ctx, change)
		}
	}
}

// PGListener LISTENs on the change channel and republishes into a hub.
type PGListener struct {
	url     string
	channel string
	hub     *Hub
	clock   clock.Clock
	logger  *logger.Logger
	backoff time.Duration
}

// NewPGListener creates a listener. url is a pgx connection string.
func NewPGListener(url, channel string, hub *Hub, clk clock.Clock, logger *logger.Logger) *PGListener {
	return &PGListener{
		url:     url,
		channel: channel,
		hub:     hub,
		clock:   clk,
		logger:  logger,
		backoff: 2 * time.Second,
	}
}

// Run listens until ctx is done, reconnecting after failures.
func (l *PGListener) Run(ctx context.Context) {
	for {
		err := l.listen(ctx)
		if ctx.Err() != nil {
			l.logger.Info("Change listener stopped")
			return
		}
		l.logger.WithError(err).WithField("retry_in", l.backoff.String()).Warn("Change listener disconnected")

		select {
		case <-ctx.Done():
			return
		case <-l.clock.After(l.backoff):
		}
	}
}

func (l *PGListener) listen(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, l.url)
	if err != nil {
		return err
	}
	defer conn.Close(context.Background())

	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{l.channel}.Sanitize()); err != nil {
		return err
	}
	l.logger.WithField("channel", l.channel).Info("Listening for store changes")

	// Writes may have happened while we were disconnected.
	l.hub.NotifyAll(ctx)

	for {
		n, err := conn.WaitForNotification(ctx)
		if err != nil {
			return err
		}
		var change Change
		if err := json.Unmarshal([]byte(n.Payload), &change); err != nil {
			l.logger.WithError(err).WithField("payload", n.Payload).Warn("Ignoring malformed change payload")
			continue
		}
		l.hub.Notify(ctx, change)
	}
}
