package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"bookmark-manager/internal/bookmark"
	"bookmark-manager/internal/sync"
	"bookmark-manager/pkg/log"
)

type mockUseCase struct {
	push sync.PushOutput
	pull sync.PullOutput
	err  error
}

func (m *mockUseCase) Push(ctx context.Context) (sync.PushOutput, error) { return m.push, m.err }
func (m *mockUseCase) Pull(ctx context.Context) (sync.PullOutput, error) { return m.pull, m.err }
func (m *mockUseCase) Enabled() bool                                     { return m.err == nil }

func setupRouter(uc sync.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(log.NewNop(), uc))
	return r
}

func TestSyncHandlers(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		uc         *mockUseCase
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "push ok",
			path:       "/api/v1/sync/push",
			uc:         &mockUseCase{push: sync.PushOutput{UserID: "u1", Bookmarks: 3}},
			wantStatus: http.StatusOK,
		},
		{
			name:       "pull ok",
			path:       "/api/v1/sync/pull",
			uc:         &mockUseCase{pull: sync.PullOutput{Result: bookmark.ImportResult{BookmarksCreated: 2}}},
			wantStatus: http.StatusOK,
		},
		{
			name:       "disabled",
			path:       "/api/v1/sync/push",
			uc:         &mockUseCase{err: sync.ErrSyncDisabled},
			wantStatus: http.StatusServiceUnavailable,
			wantMsg:    "sync disabled",
		},
		{
			name:       "unauthorized",
			path:       "/api/v1/sync/push",
			uc:         &mockUseCase{err: fmt.Errorf("%w: status 401", sync.ErrRemoteUnauthorized)},
			wantStatus: http.StatusBadGateway,
			wantMsg:    sync.ErrRemoteUnauthorized.Error(),
		},
		{
			name:       "no snapshot",
			path:       "/api/v1/sync/pull",
			uc:         &mockUseCase{err: sync.ErrNoSnapshot},
			wantStatus: http.StatusNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			setupRouter(tt.uc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, tt.path, nil))
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", w.Code, tt.wantStatus, w.Body.String())
			}
			var env struct {
				Message string          `json:"message"`
				Data    json.RawMessage `json:"data"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
				t.Fatal(err)
			}
			if tt.wantMsg != "" && env.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", env.Message, tt.wantMsg)
			}
		})
	}
}
