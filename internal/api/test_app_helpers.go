package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/embersapp/embers/internal/db"
	"github.com/embersapp/embers/internal/events"
	"github.com/embersapp/embers/internal/models"
	"github.com/embersapp/embers/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	app, database, _ := newTestAppWithHub(t)
	return app, database
}

func newTestAppWithHub(t *testing.T) (*fiber.App, *gorm.DB, *events.Hub) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "embers-test.db")
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

	hub := events.NewHub()
	t.Cleanup(hub.Close)

	handler, err := NewHandler(database, "test-secret-key", time.UTC, hub, false)
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database, hub
}

func createTestUser(t *testing.T, database *gorm.DB, email string, password string) models.User {
	t.Helper()

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	user := models.User{
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: string(passwordHash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func jsonRequest(t *testing.T, app *fiber.App, method string, path string, authCookie string, payload any) *http.Response {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	} else {
		body = bytes.NewReader(nil)
	}

	request := httptest.NewRequest(method, path, body)
	request.Header.Set("Content-Type", "application/json")
	if authCookie != "" {
		request.Header.Set("Cookie", authCookie)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func loginAndExtractAuthCookie(t *testing.T, app *fiber.App, email string, password string) string {
	t.Helper()

	response := jsonRequest(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    email,
		"password": password,
	})
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected login status 200, got %d", response.StatusCode)
	}

	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName && cookie.Value != "" {
			return cookie.Name + "=" + cookie.Value
		}
	}

	t.Fatal("auth cookie is missing in login response")
	return ""
}

func decodeJSONBody(t *testing.T, response *http.Response, target any) {
	t.Helper()
	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

func readAPIError(t *testing.T, response *http.Response) string {
	t.Helper()
	payload := map[string]string{}
	decodeJSONBody(t, response, &payload)
	return payload["error"]
}

func jsonRequestWithBearer(t *testing.T, app *fiber.App, method string, path string, token string) *http.Response {
	t.Helper()

	request := httptest.NewRequest(method, path, nil)
	request.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func seedHabit(t *testing.T, database *gorm.DB, userID uint, title string) models.Habit {
	t.Helper()

	now := time.Now().UTC()
	habit := models.Habit{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     title,
		Frequency: models.FrequencyDaily,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := database.Create(&habit).Error; err != nil {
		t.Fatalf("seed habit: %v", err)
	}
	return habit
}

func seedCompletionLog(t *testing.T, database *gorm.DB, userID uint, habit models.Habit, completedAt time.Time) models.CompletionLog {
	t.Helper()

	entry := models.CompletionLog{
		ID:          uuid.NewString(),
		UserID:      userID,
		HabitID:     habit.ID,
		HabitTitle:  habit.Title,
		CompletedAt: completedAt,
		Day:         services.DayKey(completedAt, time.UTC),
		CreatedAt:   completedAt,
	}
	if err := database.Create(&entry).Error; err != nil {
		t.Fatalf("seed completion log: %v", err)
	}
	return entry
}
