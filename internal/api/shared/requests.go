package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
)

// MaxBodyBytes caps the size of a request body.
const MaxBodyBytes = 1 << 20

var (
	// ErrMalformedJSON is returned for bodies that are not a JSON object.
	ErrMalformedJSON = errors.New("malformed JSON body")

	// ErrBodyTooLarge is returned for bodies over MaxBodyBytes.
	ErrBodyTooLarge = errors.New("request body too large")
)

// DecodeBody decodes a JSON object body into a generic map, keeping numbers
// as json.Number so their original text survives.
//
// Bodies without a JSON content type, and empty bodies, decode to an empty
// map rather than an error; field validation reports what is missing.
func DecodeBody(w http.ResponseWriter, r *http.Request) (map[string]any, error) {
	body := map[string]any{}
	if r.Body == nil || r.Body == http.NoBody || !IsJSONContentType(r.Header.Get("Content-Type")) {
		return body, nil
	}

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return body, nil
		case errors.As(err, &tooLarge):
			return nil, ErrBodyTooLarge
		default:
			return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
		}
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after top-level value", ErrMalformedJSON)
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: top-level value must be an object", ErrMalformedJSON)
	}
	return obj, nil
}

// IsJSONContentType reports whether a Content-Type header names JSON,
// including +json suffixed types.
func IsJSONContentType(header string) bool {
	if header == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(header)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}
