package infra

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/dmirchev92/server-maystorfix-sub007/models"
)

// LogNotificationSink is the default sink: it writes the notification to the
// log. Deployments plug a real push channel behind the same interface.
type LogNotificationSink struct {
	logger *slog.Logger
}

func NewLogNotificationSink(logger *slog.Logger) *LogNotificationSink {
	return &LogNotificationSink{logger: logger}
}

func (s *LogNotificationSink) Push(ctx context.Context, userId string,
	notificationType models.NotificationType, title, body string, data json.RawMessage,
) error {
	s.logger.InfoContext(ctx, "notification",
		"user_id", userId,
		"type", notificationType,
		"title", title,
		"body", body,
		"data", string(data))
	return nil
}
