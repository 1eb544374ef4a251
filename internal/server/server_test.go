package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	storagemocks "github.com/storepulse/storepulse/internal/mocks/storage"
)

func getHealth(t *testing.T, s *Server) (int, map[string]string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp := httptest.NewRecorder()
	s.Engine.ServeHTTP(resp, req)

	var body map[string]string
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	return resp.Code, body
}

func TestHealth_OK(t *testing.T) {
	store := storagemocks.NewRecordStore(t)
	store.EXPECT().Ping(mock.Anything).Return(nil).Once()

	code, body := getHealth(t, New("127.0.0.1:0", store, "release"))
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "healthy", body["status"])
	require.Equal(t, gin.ReleaseMode, gin.Mode())
}

func TestHealth_DatabaseUnreachable(t *testing.T) {
	store := storagemocks.NewRecordStore(t)
	store.EXPECT().Ping(mock.Anything).Return(errors.New("connection refused")).Once()

	code, body := getHealth(t, New("127.0.0.1:0", store, "release"))
	require.Equal(t, http.StatusServiceUnavailable, code)
	require.Equal(t, "unhealthy", body["status"])
	require.Equal(t, "database unreachable", body["error"])
}

func TestHealth_NoChecker(t *testing.T) {
	code, _ := getHealth(t, New("127.0.0.1:0", nil, "debug"))
	require.Equal(t, http.StatusOK, code)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	s := New("127.0.0.1:0", nil, "release")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	cancel()
	require.NoError(t, <-done)
}
