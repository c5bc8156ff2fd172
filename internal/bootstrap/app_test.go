package bootstrap

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/BoraOzcoban/sukoc/internal/sessions"
	"github.com/BoraOzcoban/sukoc/internal/shared/config"
)

func testConfig() config.Config {
	return config.Config{
		Port:            "8080",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		Env:             "dev",
		RateLimitRate:   1000,
		RateLimitBurst:  1000,
	}
}

func TestBuildFallsBackToMemoryWithoutDatabase(t *testing.T) {
	app, err := Build(testConfig())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if app.DB != nil {
		t.Fatalf("expected nil DB without DATABASE_URL")
	}
	if _, ok := app.SessionsRepo.(*sessions.MemoryRepo); !ok {
		t.Fatalf("expected memory repo, got %T", app.SessionsRepo)
	}
	if app.Router == nil {
		t.Fatalf("expected router to be wired")
	}
}

func TestBuildRequiresDatabaseInProduction(t *testing.T) {
	cfg := testConfig()
	cfg.Env = "production"
	if _, err := Build(cfg); err == nil {
		t.Fatalf("expected error for production without DATABASE_URL")
	}
}

func TestQuestionnaireFlowEndToEnd(t *testing.T) {
	app, err := Build(testConfig())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	do := func(method, path, body string) *httptest.ResponseRecorder {
		t.Helper()
		var req *http.Request
		if body != "" {
			req = httptest.NewRequest(method, path, strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
		} else {
			req = httptest.NewRequest(method, path, nil)
		}
		w := httptest.NewRecorder()
		app.Router.ServeHTTP(w, req)
		return w
	}

	if w := do(http.MethodGet, "/api/v1/health", ""); w.Code != http.StatusOK {
		t.Fatalf("health status = %d", w.Code)
	}

	w := do(http.MethodPost, "/api/v1/answers", `{"userId":"user-1","answers":[
		{"questionId":"weekly_shower_total_minutes","value":70,"category":"hygiene"},
		{"questionId":"weekly_red_meat_kg","value":"1_2","category":"lifestyle"}
	]}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("save answers status = %d: %s", w.Code, w.Body.String())
	}
	var session sessions.QuizSession
	if err := json.Unmarshal(w.Body.Bytes(), &session); err != nil {
		t.Fatalf("unmarshal session: %v", err)
	}

	if w := do(http.MethodPut, "/api/v1/answers/"+session.ID+"/complete", ""); w.Code != http.StatusOK {
		t.Fatalf("complete status = %d: %s", w.Code, w.Body.String())
	}

	w = do(http.MethodPost, "/api/v1/analysis", `{"householdSize":3,"answers":[
		{"questionId":"weekly_shower_total_minutes","value":70,"category":"hygiene"}
	]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("analysis status = %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "currentDailyUsage") {
		t.Fatalf("analysis body missing usage: %s", w.Body.String())
	}

	w = do(http.MethodGet, "/api/v1/analytics", "")
	if w.Code != http.StatusOK {
		t.Fatalf("analytics status = %d: %s", w.Code, w.Body.String())
	}
	var report struct {
		TotalUsers int `json:"totalUsers"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &report); err != nil {
		t.Fatalf("unmarshal report: %v", err)
	}
	if report.TotalUsers != 1 {
		t.Fatalf("totalUsers = %d, want 1", report.TotalUsers)
	}
}
