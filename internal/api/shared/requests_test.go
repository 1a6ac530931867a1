package shared

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonRequest(body, contentType string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/create", bytes.NewBufferString(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req
}

func TestDecodeBody(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		contentType string
		want        map[string]any
		wantErr     error
	}{
		{
			name:        "object",
			body:        `{"titulo":"Dune","año":2021.0}`,
			contentType: "application/json",
			want:        map[string]any{"titulo": "Dune", "año": json.Number("2021.0")},
		},
		{
			name:        "json_with_charset",
			body:        `{"a":1}`,
			contentType: "application/json; charset=utf-8",
			want:        map[string]any{"a": json.Number("1")},
		},
		{
			name:        "plus_json_suffix",
			body:        `{"a":true}`,
			contentType: "application/merge-patch+json",
			want:        map[string]any{"a": true},
		},
		{
			name:        "empty_body",
			body:        "",
			contentType: "application/json",
			want:        map[string]any{},
		},
		{
			name:        "not_json_content_type",
			body:        `{"a":1}`,
			contentType: "application/x-www-form-urlencoded",
			want:        map[string]any{},
		},
		{
			name: "missing_content_type",
			body: `{"a":1}`,
			want: map[string]any{},
		},
		{
			name:        "malformed",
			body:        `{"a":`,
			contentType: "application/json",
			wantErr:     ErrMalformedJSON,
		},
		{
			name:        "trailing_data",
			body:        `{"a":1} trailing garbage`,
			contentType: "application/json",
			wantErr:     ErrMalformedJSON,
		},
		{
			name:        "second_object",
			body:        `{"a":1}{"b":2}`,
			contentType: "application/json",
			wantErr:     ErrMalformedJSON,
		},
		{
			name:        "trailing_whitespace",
			body:        "{\"a\":1}\n\t ",
			contentType: "application/json",
			want:        map[string]any{"a": json.Number("1")},
		},
		{
			name:        "array",
			body:        `[1,2]`,
			contentType: "application/json",
			wantErr:     ErrMalformedJSON,
		},
		{
			name:        "too_large",
			body:        `{"a":"` + strings.Repeat("x", MaxBodyBytes) + `"}`,
			contentType: "application/json",
			wantErr:     ErrBodyTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeBody(httptest.NewRecorder(), jsonRequest(tt.body, tt.contentType))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsJSONContentType(t *testing.T) {
	assert.True(t, IsJSONContentType("application/json"))
	assert.True(t, IsJSONContentType("Application/JSON; charset=UTF-8"))
	assert.True(t, IsJSONContentType("application/vnd.api+json"))
	assert.False(t, IsJSONContentType(""))
	assert.False(t, IsJSONContentType("text/plain"))
	assert.False(t, IsJSONContentType(";;;"))
}
