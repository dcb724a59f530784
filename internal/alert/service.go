// Package alert notifies the on-call channel when the safety gate forces an
// emergency escalation, so overrides get human review.
package alert

import (
	"context"
	"fmt"
	"strings"
	"time"
)

type TelegramClient interface {
	SendMessage(chatID int64, text string) error
}

type Service struct {
	tgClient     TelegramClient
	onCallChatID int64
}

func NewService(tg TelegramClient, onCallChatID int64) *Service {
	return &Service{
		tgClient:     tg,
		onCallChatID: onCallChatID,
	}
}

// EscalationForced sends a short alert naming the matched keyword and the
// raw symptoms. Failures are returned for logging only; alerting never
// affects the user-facing response.
func (s *Service) EscalationForced(ctx context.Context, keyword string, symptoms []string) error {
	_ = ctx // telegram client carries its own HTTP timeout

	text := fmt.Sprintf(
		"SAFETY OVERRIDE at %s\nKeyword: %q\nReported symptoms: %s",
		time.Now().Format("2006-01-02 15:04:05"),
		keyword,
		strings.Join(symptoms, ", "),
	)
	return s.tgClient.SendMessage(s.onCallChatID, text)
}
