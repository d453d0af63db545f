package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"tasktrack/internal/middleware"
	"tasktrack/internal/model"
	"tasktrack/internal/task"
	taskHTTP "tasktrack/internal/task/delivery/http"
	"tasktrack/pkg/dateutil"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type mockScope struct{}

func (m *mockScope) Issue(userID int64) (string, error) { return "token", nil }
func (m *mockScope) Verify(token string) (int64, error) { return 1, nil }

type mockUseCase struct {
	listFunc  func(sc model.Scope, input task.ListInput) (task.ListOutput, error)
	startFunc func(sc model.Scope, id string) (task.TimerOutput, error)
}

func (m *mockUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (task.CreateOutput, error) {
	return task.CreateOutput{}, nil
}

func (m *mockUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	if m.listFunc != nil {
		return m.listFunc(sc, input)
	}
	return task.ListOutput{}, nil
}

func (m *mockUseCase) Detail(ctx context.Context, sc model.Scope, id string) (task.DetailOutput, error) {
	return task.DetailOutput{}, nil
}

func (m *mockUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (task.UpdateOutput, error) {
	return task.UpdateOutput{}, nil
}

func (m *mockUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	return nil
}

func (m *mockUseCase) StartWork(ctx context.Context, sc model.Scope, id string) (task.TimerOutput, error) {
	if m.startFunc != nil {
		return m.startFunc(sc, id)
	}
	return task.TimerOutput{}, nil
}

func (m *mockUseCase) StopWork(ctx context.Context, sc model.Scope, input task.StopInput) (task.TimerOutput, error) {
	return task.TimerOutput{}, nil
}

func (m *mockUseCase) Elapsed(ctx context.Context, sc model.Scope, id string) (task.ElapsedOutput, error) {
	return task.ElapsedOutput{}, nil
}

func newRouter(t *testing.T, uc task.UseCase) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cal, err := dateutil.NewCalendar("")
	if err != nil {
		t.Fatalf("calendar: %v", err)
	}

	r := gin.New()
	mw := middleware.New(&mockLogger{}, &mockScope{}, 0)
	taskHTTP.RegisterRoutes(r.Group("/api/v1"), taskHTTP.New(&mockLogger{}, uc, cal), mw)
	return r
}

func TestListEndpoint(t *testing.T) {
	t.Run("Returns Envelope With Tasks", func(t *testing.T) {
		due := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
		uc := &mockUseCase{listFunc: func(sc model.Scope, input task.ListInput) (task.ListOutput, error) {
			if sc.UserID != 1 {
				t.Errorf("expected scope user 1, got %d", sc.UserID)
			}
			if input.Status != "active" || input.Category != "Work" {
				t.Errorf("unexpected filters: %+v", input)
			}
			tasks := []task.Task{{
				ID:           "t1",
				CategoryID:   1,
				CategoryName: "Work",
				Title:        "Write report",
				Status:       task.StatusActive,
				DueDate:      &due,
			}}
			return task.ListOutput{Tasks: tasks, Total: 1}, nil
		}}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks?status=active&category=Work", nil)
		req.Header.Set("Authorization", "Bearer token")
		newRouter(t, uc).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var body struct {
			ErrorCode int `json:"error_code"`
			Data      struct {
				Tasks []struct {
					ID      string  `json:"id"`
					DueDate *string `json:"due_date"`
				} `json:"tasks"`
				Total int `json:"total"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.ErrorCode != 0 || body.Data.Total != 1 || len(body.Data.Tasks) != 1 {
			t.Errorf("unexpected body: %s", w.Body.String())
		}
		if body.Data.Tasks[0].DueDate == nil || *body.Data.Tasks[0].DueDate != "2026-03-05" {
			t.Errorf("expected date-only due date, got %v", body.Data.Tasks[0].DueDate)
		}
	})

	t.Run("Missing Token Rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil)
		newRouter(t, &mockUseCase{}).ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})
}

func TestStartEndpoint(t *testing.T) {
	t.Run("Conflict When Already Working", func(t *testing.T) {
		uc := &mockUseCase{startFunc: func(sc model.Scope, id string) (task.TimerOutput, error) {
			return task.TimerOutput{}, task.ErrAlreadyWorking
		}}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks/t1/start", nil)
		req.Header.Set("Authorization", "Bearer token")
		newRouter(t, uc).ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Errorf("expected 409, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("Unknown Task Is 404", func(t *testing.T) {
		uc := &mockUseCase{startFunc: func(sc model.Scope, id string) (task.TimerOutput, error) {
			return task.TimerOutput{}, task.ErrTaskNotFound
		}}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks/missing/start", nil)
		req.Header.Set("Authorization", "Bearer token")
		newRouter(t, uc).ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestCreateEndpoint(t *testing.T) {
	t.Run("Invalid Due Date Rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		body := strings.NewReader(`{"title":"x","category":"Work","due_date":"03/05/2026"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", body)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer token")
		newRouter(t, &mockUseCase{}).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})
}
