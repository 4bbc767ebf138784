package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/catalystlab/catalyst-backend/internal/database"
	"github.com/catalystlab/catalyst-backend/internal/resolve"
	"github.com/catalystlab/catalyst-backend/internal/seed"
	"github.com/catalystlab/catalyst-backend/internal/services"
)

// newTestApp wires the handlers onto a bare app with a stubbed JWT token in
// locals, the same shape jwtware stores after verification.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := seed.Run(db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	trainingService := services.NewTrainingService(db)
	responseService := services.NewResponseService(db)
	progressService := services.NewProgressService(db)
	processService := services.NewProcessService(db)

	index, err := trainingService.LoadIndex()
	if err != nil {
		t.Fatalf("LoadIndex: %v", err)
	}
	formService := services.NewFormService(resolve.NewEngine(responseService, index), index)

	userID := uuid.New()
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user", &jwt.Token{Claims: jwt.MapClaims{"sub": userID.String()}})
		return c.Next()
	})

	trainingHandler := NewTrainingHandler(trainingService)
	progressHandler := NewProgressHandler(progressService)
	responseHandler := NewResponseHandler(responseService)
	processHandler := NewProcessHandler(processService, responseService, formService)

	app.Get("/training/days", trainingHandler.ListDays)
	app.Get("/progress", progressHandler.List)
	app.Get("/responses", responseHandler.List)
	app.Post("/responses/batch", responseHandler.UpsertBatch)
	app.Post("/processes", processHandler.Create)
	app.Put("/processes/:id", processHandler.Update)
	app.Delete("/processes/:id", processHandler.Delete)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any) map[string]any {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req, err := http.NewRequest(method, target, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		t.Fatalf("%s %s: status %d", method, target, resp.StatusCode)
	}

	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return out
}

func TestListEnvelopes(t *testing.T) {
	app := newTestApp(t)

	if out := doJSON(t, app, "GET", "/training/days", nil); out["days"] == nil {
		t.Fatalf("GET /training/days = %v, want days key", out)
	}
	if out := doJSON(t, app, "GET", "/progress", nil); out["progress"] == nil {
		t.Fatalf("GET /progress = %v, want progress key", out)
	}
	if out := doJSON(t, app, "GET", "/responses", nil); out["responses"] == nil {
		t.Fatalf("GET /responses = %v, want responses key", out)
	}
}

func TestBatchEnvelopeHasCount(t *testing.T) {
	app := newTestApp(t)

	out := doJSON(t, app, "POST", "/responses/batch", map[string]any{
		"responses": []map[string]any{
			{"day_id": 1, "step_id": 1, "field_name": "problem_1", "field_value": "x"},
			{"day_id": 1, "step_id": 1, "field_name": "problem_2", "field_value": ""},
		},
	})
	if out["results"] == nil {
		t.Fatalf("batch = %v, want results key", out)
	}
	if count, ok := out["count"].(float64); !ok || count != 2 {
		t.Fatalf("count = %v, want 2", out["count"])
	}
}

func TestProcessEnvelopes(t *testing.T) {
	app := newTestApp(t)

	created := doJSON(t, app, "POST", "/processes", map[string]any{"title": "p"})
	if created["success"] != true {
		t.Fatalf("create = %v, want success true", created)
	}
	processID, ok := created["processId"].(string)
	if !ok || processID == "" {
		t.Fatalf("create = %v, want processId", created)
	}
	if _, err := uuid.Parse(processID); err != nil {
		t.Fatalf("processId %q is not a uuid", processID)
	}

	updated := doJSON(t, app, "PUT", "/processes/"+processID, map[string]any{"title": "renamed"})
	if updated["success"] != true {
		t.Fatalf("update = %v, want success true", updated)
	}

	deleted := doJSON(t, app, "DELETE", "/processes/"+processID, nil)
	if deleted["success"] != true {
		t.Fatalf("delete = %v, want success true", deleted)
	}
}
