package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tbowo/careline/internal/db"
	"github.com/tbowo/careline/internal/i18n"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "careline-test.db")
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

	manager, err := i18n.NewManager(i18n.LangZH, filepath.Join("..", "i18n", "locales"))
	if err != nil {
		t.Fatalf("load locales: %v", err)
	}

	handler := NewHandler(database, "test-secret-key", time.UTC, manager)
	app := fiber.New()
	RegisterRoutes(app, handler)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method string, path string, token string, payload any) *http.Response {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	} else {
		body = bytes.NewReader(nil)
	}

	request := httptest.NewRequest(method, path, body)
	request.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func decodeJSON(t *testing.T, response *http.Response, out any) {
	t.Helper()

	defer response.Body.Close()
	if err := json.NewDecoder(response.Body).Decode(out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func expectStatus(t *testing.T, response *http.Response, want int) {
	t.Helper()

	if response.StatusCode != want {
		t.Fatalf("expected status %d, got %d", want, response.StatusCode)
	}
}

func itoa(value uint) string {
	return strconv.FormatUint(uint64(value), 10)
}

func registerTestUser(t *testing.T, app *fiber.App, phone string) string {
	t.Helper()

	response := doJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"phone":    phone,
		"password": "StrongPass1",
	})
	expectStatus(t, response, http.StatusOK)

	token := struct {
		AccessToken string `json:"access_token"`
	}{}
	decodeJSON(t, response, &token)
	if token.AccessToken == "" {
		t.Fatalf("expected non-empty access token")
	}
	return token.AccessToken
}

func createTestFamily(t *testing.T, app *fiber.App, token string, role string) string {
	t.Helper()

	response := doJSON(t, app, http.MethodPost, "/api/family/create", token, map[string]any{
		"name": "测试家庭",
		"role": role,
	})
	expectStatus(t, response, http.StatusOK)

	family := struct {
		InviteCode string `json:"invite_code"`
	}{}
	decodeJSON(t, response, &family)
	if family.InviteCode == "" {
		t.Fatalf("expected invite code")
	}
	return family.InviteCode
}
