package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/movie-api/internal/api/shared"
)

// CreateTestServer creates a httptest server with the given handler.
// Automatically registers cleanup via t.Cleanup() so callers don't need to manually close the server.
func CreateTestServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

// NewJSONRequest builds a request with a JSON content type. A string body is
// sent verbatim, nil sends no body, and anything else is marshalled.
func NewJSONRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var reader io.Reader = http.NoBody
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err, "Failed to marshal request body")
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// ServeJSON runs a JSON request against handler and returns the recorder.
func ServeJSON(t *testing.T, handler http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, NewJSONRequest(t, method, target, body))
	return rr
}

// ExecuteJSONRequest sends a JSON request to server and returns the status
// code with the decoded response body.
func ExecuteJSONRequest(t *testing.T, server *httptest.Server, method, path string, body any) (int, map[string]any) {
	t.Helper()

	req := NewJSONRequest(t, method, server.URL+path, body)
	req.RequestURI = ""
	resp, err := server.Client().Do(req)
	require.NoError(t, err, "Failed to execute request")
	defer func() {
		if err := resp.Body.Close(); err != nil {
			t.Logf("Warning: failed to close response body: %v", err)
		}
	}()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Failed to read response body")
	return resp.StatusCode, DecodeJSON(t, raw)
}

// DecodeJSON unmarshals a JSON object.
func DecodeJSON(t *testing.T, raw []byte) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out), "Failed to unmarshal response: %s", string(raw))
	return out
}

// AssertErrorResponse checks a response written by the error handler.
func AssertErrorResponse(t *testing.T, rr *httptest.ResponseRecorder, expectedStatus int, expectedMessage string) {
	t.Helper()

	assert.Equal(t, expectedStatus, rr.Code, "Unexpected status code")

	var errResp shared.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp), "Failed to unmarshal error response: %s", rr.Body.String())
	assert.Equal(t, expectedMessage, errResp.Message)
}
