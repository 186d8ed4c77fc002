package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ReminderPayload carries everything a delivery channel needs to describe a
// due dose.
type ReminderPayload struct {
	MedicationID  uint   `json:"medicationId"`
	UserID        uint   `json:"userId"`
	Name          string `json:"name"`
	Dosage        string `json:"dosage"`
	Slot          string `json:"slot"`
	ScheduledTime string `json:"scheduledTime"`
	Instruction   string `json:"instruction"`
	Kind          string `json:"kind"`
}

// Notifier delivers a reminder. Implementations must honor the context
// deadline; the scan loop treats a timeout as a per-item failure.
type Notifier interface {
	Send(ctx context.Context, payload ReminderPayload) error
}

type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (notifier *LogNotifier) Send(_ context.Context, payload ReminderPayload) error {
	log.Printf("reminder: user %d, take %s (%s) at %s [%s]", payload.UserID, payload.Name, payload.Dosage, payload.ScheduledTime, payload.Slot)
	return nil
}

type TelegramNotifier struct {
	botToken string
	chatID   string
	client   *http.Client
}

func NewTelegramNotifier(botToken string, chatID string) *TelegramNotifier {
	return &TelegramNotifier{
		botToken: botToken,
		chatID:   chatID,
		client: &http.Client{
			Timeout: 8 * time.Second,
		},
	}
}

func (notifier *TelegramNotifier) Send(ctx context.Context, payload ReminderPayload) error {
	message := fmt.Sprintf("MedMinder: time for %s (%s), %s dose at %s.",
		payload.Name,
		payload.Dosage,
		payload.Slot,
		payload.ScheduledTime,
	)
	if strings.TrimSpace(payload.Instruction) != "" {
		message += " " + strings.TrimSpace(payload.Instruction)
	}

	values := url.Values{}
	values.Set("chat_id", notifier.chatID)
	values.Set("text", message)

	endpoint := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", notifier.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(values.Encode()))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := notifier.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("telegram status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}
