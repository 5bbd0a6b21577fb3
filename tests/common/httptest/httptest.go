//go:build unit || e2e

package httptest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// PerformRequest sends a request through the router. Strings and byte slices are sent verbatim so tests
// can post malformed JSON; any other body is JSON-encoded. A non-empty token becomes a Bearer header.
func PerformRequest(t *testing.T, router *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, requestBody(t, body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func requestBody(t *testing.T, body any) io.Reader {
	t.Helper()

	switch b := body.(type) {
	case nil:
		return http.NoBody
	case string:
		return bytes.NewBufferString(b)
	case []byte:
		return bytes.NewBuffer(b)
	}

	raw, err := json.Marshal(body)
	require.NoError(t, err, "failed to encode request body")
	return bytes.NewBuffer(raw)
}

// DecodeResponseBody fails the test when the body is not JSON matching target.
func DecodeResponseBody(t *testing.T, body *bytes.Buffer, target any) error {
	t.Helper()

	dec := json.NewDecoder(body)
	dec.UseNumber()
	err := dec.Decode(target)
	require.NoError(t, err, "failed to decode response body: %s", body.String())
	return err
}
