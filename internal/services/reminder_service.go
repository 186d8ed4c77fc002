package services

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/antonkovh/medminder/internal/models"
)

const (
	defaultScanInterval = time.Minute
	defaultSendTimeout  = 10 * time.Second

	// dueToleranceMinutes widens the due check around the scheduled minute
	// because tick granularity cannot guarantee exact alignment.
	dueToleranceMinutes = 1
)

type ReminderMedicationSource interface {
	ListActiveReminderEnabled(date string) ([]models.Medication, error)
}

type ScanLedger interface {
	FindEntry(medicationID uint, date string, slot string) (models.DoseLog, bool, error)
	UpsertEntry(medicationID uint, date string, slot string, patch DoseLogPatch) (models.DoseLog, error)
}

// ReminderService drives the recurring reminder scan. It is constructed with
// its collaborators so tests can tick it manually with a fixed clock and a
// recording notifier.
type ReminderService struct {
	medications ReminderMedicationSource
	ledger      ScanLedger
	notifier    Notifier
	clock       Clock
	interval    time.Duration
	sendTimeout time.Duration
}

func NewReminderService(medications ReminderMedicationSource, ledger ScanLedger, notifier Notifier, clock Clock, interval time.Duration) *ReminderService {
	if interval <= 0 {
		interval = defaultScanInterval
	}
	return &ReminderService{
		medications: medications,
		ledger:      ledger,
		notifier:    notifier,
		clock:       clock,
		interval:    interval,
		sendTimeout: defaultSendTimeout,
	}
}

// Start launches the scan goroutine. Cancelling the context stops scheduling
// new ticks; an in-flight tick finishes on its own.
func (service *ReminderService) Start(ctx context.Context) {
	ticker := time.NewTicker(service.interval)
	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				service.CheckAndSendReminders(ctx)
			}
		}
	}()
}

// CheckAndSendReminders runs one scan tick. It is safe to call re-entrantly
// and from the manual trigger endpoint: the ledger's reminder-sent flag keeps
// every (medication, slot, day) at one notification at most. Per-item
// failures are logged and skipped so one bad medication cannot starve the
// rest of the tick.
func (service *ReminderService) CheckAndSendReminders(ctx context.Context) {
	today := service.clock.Today()
	currentMinute := service.clock.NowMinuteOfDay()

	medications, err := service.medications.ListActiveReminderEnabled(today)
	if err != nil {
		log.Printf("reminders: list medications failed: %v", err)
		return
	}

	for _, medication := range medications {
		service.scanMedication(ctx, medication, today, currentMinute)
	}
}

// scanMedication evaluates every configured slot of one medication. Cadence
// is evaluated daily regardless of the stored frequency value; weekly and
// monthly medications are persisted but not gated differently.
func (service *ReminderService) scanMedication(ctx context.Context, medication models.Medication, today string, currentMinute int) {
	for slot, scheduled := range medication.Times {
		if strings.TrimSpace(scheduled) == "" {
			continue
		}

		scheduledMinute, ok := MinuteOfDay(scheduled)
		if !ok {
			log.Printf("reminders: medication %d slot %q has malformed time %q", medication.ID, slot, scheduled)
			continue
		}
		if !withinDueWindow(currentMinute, scheduledMinute) {
			continue
		}

		entry, found, err := service.ledger.FindEntry(medication.ID, today, slot)
		if err != nil {
			log.Printf("reminders: load ledger entry failed for medication %d slot %q: %v", medication.ID, slot, err)
			continue
		}
		if found && (entry.Taken || entry.ReminderSent) {
			continue
		}

		service.sendAndRecord(ctx, medication, today, slot, scheduled)
	}
}

func (service *ReminderService) sendAndRecord(ctx context.Context, medication models.Medication, today string, slot string, scheduled string) {
	payload := ReminderPayload{
		MedicationID:  medication.ID,
		UserID:        medication.UserID,
		Name:          medication.Name,
		Dosage:        medication.Dosage,
		Slot:          slot,
		ScheduledTime: scheduled,
		Instruction:   medication.Instruction,
		Kind:          medication.Kind,
	}

	sendCtx, cancel := context.WithTimeout(ctx, service.sendTimeout)
	err := service.notifier.Send(sendCtx, payload)
	cancel()
	if err != nil {
		// Policy: a failed delivery still marks the slot as sent, so the
		// scan does not retry for the rest of the day.
		log.Printf("reminders: send failed for medication %d slot %q: %v", medication.ID, slot, err)
	}

	sent := true
	if _, err := service.ledger.UpsertEntry(medication.ID, today, slot, DoseLogPatch{ReminderSent: &sent}); err != nil {
		log.Printf("reminders: mark reminder sent failed for medication %d slot %q: %v", medication.ID, slot, err)
	}
}

func withinDueWindow(currentMinute int, scheduledMinute int) bool {
	delta := currentMinute - scheduledMinute
	if delta < 0 {
		delta = -delta
	}
	return delta <= dueToleranceMinutes
}
