package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/antonkovh/medminder/internal/db"
	"github.com/antonkovh/medminder/internal/services"
	"github.com/gofiber/fiber/v2"
)

type testClock struct {
	today  string
	minute int
	now    time.Time
}

func (clock *testClock) Now() time.Time      { return clock.now }
func (clock *testClock) Today() string       { return clock.today }
func (clock *testClock) NowMinuteOfDay() int { return clock.minute }

type capturingNotifier struct {
	mu   sync.Mutex
	sent []services.ReminderPayload
}

func (notifier *capturingNotifier) Send(_ context.Context, payload services.ReminderPayload) error {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	notifier.sent = append(notifier.sent, payload)
	return nil
}

func (notifier *capturingNotifier) sentCount() int {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	return len(notifier.sent)
}

func newTestApp(t *testing.T) (*fiber.App, *capturingNotifier, *testClock) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "medminder-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	repos := db.NewRepositories(database)
	clock := &testClock{
		today:  "2024-03-02",
		minute: 480,
		now:    time.Date(2024, 3, 2, 8, 0, 0, 0, time.UTC),
	}
	notifier := &capturingNotifier{}

	ledger := services.NewLedgerService(repos.Medications, repos.DoseLogs, clock)
	medications := services.NewMedicationService(repos.Medications, ledger)
	schedule := services.NewScheduleService(repos.Medications, repos.DoseLogs, clock)
	adherence := services.NewAdherenceService(repos.Medications, repos.DoseLogs)
	healthLogs := services.NewHealthLogService(repos.HealthLogs)
	care := services.NewCareService(repos.Users, repos.CareLinks)
	auth := services.NewAuthService(repos.Users)
	reminders := services.NewReminderService(repos.Medications, ledger, notifier, clock, time.Minute)

	handler := NewHandler(auth, medications, schedule, adherence, healthLogs, care, reminders, "test-secret-key")

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, notifier, clock
}

func doJSON(t *testing.T, app *fiber.App, method string, path string, token string, payload any, expectedStatus int) []byte {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload for %s %s: %v", method, path, err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	}
	if token != "" {
		request.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("%s %s read body failed: %v", method, path, err)
	}
	if response.StatusCode != expectedStatus {
		t.Fatalf("%s %s expected status %d, got %d: %s", method, path, expectedStatus, response.StatusCode, raw)
	}
	return raw
}

func registerTestUser(t *testing.T, app *fiber.App, email string, role string) string {
	t.Helper()

	raw := doJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"email":    email,
		"password": "StrongPass1",
		"name":     "Test User",
		"role":     role,
	}, http.StatusCreated)

	parsed := struct {
		Token string `json:"token"`
	}{}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		t.Fatalf("parse register response: %v", err)
	}
	if parsed.Token == "" {
		t.Fatal("expected a token from registration")
	}
	return parsed.Token
}

func createTestMedication(t *testing.T, app *fiber.App, token string, times map[string]string) uint {
	t.Helper()

	raw := doJSON(t, app, http.MethodPost, "/api/medications", token, map[string]any{
		"name":            "Metformin",
		"dosage":          "500mg",
		"kind":            "tablet",
		"frequency":       "daily",
		"times":           times,
		"startDate":       "2024-01-01",
		"endDate":         "2024-12-31",
		"reminderEnabled": true,
	}, http.StatusCreated)

	parsed := struct {
		ID uint `json:"id"`
	}{}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		t.Fatalf("parse medication response: %v", err)
	}
	if parsed.ID == 0 {
		t.Fatal("expected a medication id")
	}
	return parsed.ID
}
