//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type errorEnvelope struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail json.RawMessage `json:"detail"`
}

// AssertSuccessResponse checks the status and, for 2xx, decodes the body into target when it is non-nil.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, target any) {
	t.Helper()

	if !assert.Equal(t, wantStatus, w.Code, "unexpected status, body: %s", w.Body.String()) {
		return
	}
	if target == nil || wantStatus < 200 || wantStatus >= 300 {
		return
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "body is not the expected JSON: %s", w.Body.String())
}

// AssertErrorResponse checks the status and that the envelope message contains wantMsg.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, wantMsg string) {
	t.Helper()

	assert.Equal(t, wantStatus, w.Code, "unexpected status, body: %s", w.Body.String())

	env, ok := decodeEnvelope(t, w)
	if ok && wantMsg != "" {
		assert.Contains(t, env.Error.Message, wantMsg)
	}
}

// AssertErrorDetail decodes the "detail" member of an error response into target.
func AssertErrorDetail(t *testing.T, w *httptest.ResponseRecorder, target any) {
	t.Helper()

	env, ok := decodeEnvelope(t, w)
	if !ok || !assert.NotEmpty(t, env.Detail, "error response has no detail") {
		return
	}
	assert.NoError(t, json.Unmarshal(env.Detail, target))
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) (errorEnvelope, bool) {
	t.Helper()

	var env errorEnvelope
	err := json.Unmarshal(w.Body.Bytes(), &env)
	return env, assert.NoError(t, err, "error body is not the JSON envelope: %s", w.Body.String())
}
