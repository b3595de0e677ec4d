package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"community-seva/internal/platform/sentinel"
)

func TestWriteError(t *testing.T) {
	t.Run("internal error omits description", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, errors.New("pdf renderer exploded"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		var body ErrorResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, "internal_error", body.Error)
		assert.Empty(t, body.Description)
	})

	t.Run("validation error carries fields", func(t *testing.T) {
		verr := &sentinel.ValidationError{}
		verr.Add("age", "Age is required")
		verr.Add("age", "ignored")

		w := httptest.NewRecorder()
		WriteError(w, fmt.Errorf("screen donor: %w", verr))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		var body ErrorResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, map[string]string{"age": "Age is required"}, body.Fields)
	})

	t.Run("wrapped sentinels map to statuses", func(t *testing.T) {
		cases := []struct {
			err    error
			status int
		}{
			{err: fmt.Errorf("bank b9: %w", sentinel.ErrNotFound), status: http.StatusNotFound},
			{err: fmt.Errorf("report.gif: %w", sentinel.ErrUnsupported), status: http.StatusUnsupportedMediaType},
			{err: fmt.Errorf("analysis: %w", sentinel.ErrUnavailable), status: http.StatusServiceUnavailable},
			{err: fmt.Errorf("inventory: %w", sentinel.ErrValidation), status: http.StatusUnprocessableEntity},
		}
		for _, tc := range cases {
			w := httptest.NewRecorder()
			WriteError(w, tc.err)
			assert.Equal(t, tc.status, w.Code, tc.err.Error())
		}
	})
}

func TestDecodeJSON_RejectsUnknownFields(t *testing.T) {
	var dst struct {
		Age string `json:"age"`
	}
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"age":"30","extra":1}`))

	err := DecodeJSON(httptest.NewRecorder(), r, &dst)
	assert.Error(t, err)
}

func TestValidationError_ErrOrNil(t *testing.T) {
	var verr sentinel.ValidationError
	assert.NoError(t, verr.ErrOrNil())

	verr.Add("bp", "BP is required")
	assert.ErrorIs(t, verr.ErrOrNil(), sentinel.ErrValidation)
}
