package shared

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/movie-api/internal/platform/logger"
)

func TestRespondWithJSON(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/movies", nil)

	RespondWithJSON(rr, req, http.StatusCreated, map[string]int{"ok": 1})

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"ok":1}`, rr.Body.String())
}

func TestRespondWithErrorAndLog(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{"server_error", http.StatusInternalServerError, "ERROR"},
		{"rate_limited", http.StatusTooManyRequests, "WARN"},
		{"client_error", http.StatusBadRequest, "DEBUG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
			ctx, traceID := SetTraceID(logger.WithLogger(context.Background(), log))
			req := httptest.NewRequest(http.MethodPost, "/create", nil).WithContext(ctx)
			rr := httptest.NewRecorder()

			RespondWithErrorAndLog(rr, req, tt.status, "algo salió mal",
				errors.New("query failed: postgres://admin:s3cret@db:5432/movies"))

			assert.Equal(t, tt.status, rr.Code)
			assert.JSONEq(t, `{"message":"algo salió mal"}`, rr.Body.String())

			var entry map[string]any
			require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, traceID, entry["trace_id"])
			assert.Equal(t, float64(tt.status), entry["status_code"])
			assert.NotContains(t, entry["error"], "s3cret")
		})
	}
}

func TestRespondWithErrorAndLog_NilError(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	req := httptest.NewRequest(http.MethodGet, "/nope", nil).WithContext(logger.WithLogger(context.Background(), log))
	rr := httptest.NewRecorder()

	RespondWithErrorAndLog(rr, req, http.StatusNotFound, "Ruta no encontrada", nil)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.NotContains(t, buf.String(), `"error"`)
}
