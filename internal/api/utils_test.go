package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-bookmark-api/internal/types"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestWriteError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage any
		wantError   any
	}{
		{
			name:        "validation error lists every message",
			err:         types.NewValidationError("email must be an email", "password should not be empty"),
			wantStatus:  http.StatusBadRequest,
			wantMessage: []any{"email must be an email", "password should not be empty"},
			wantError:   "Bad Request",
		},
		{
			name:        "bad request keeps a single message",
			err:         &types.BadRequestError{Message: NumericIDMessage},
			wantStatus:  http.StatusBadRequest,
			wantMessage: NumericIDMessage,
			wantError:   "Bad Request",
		},
		{
			name:        "duplicate email",
			err:         fmt.Errorf("signup: %w", types.ErrDuplicateEmail),
			wantStatus:  http.StatusForbidden,
			wantMessage: "Email already exists",
			wantError:   "Forbidden",
		},
		{
			name:        "invalid credentials",
			err:         types.ErrInvalidCredentials,
			wantStatus:  http.StatusForbidden,
			wantMessage: "Email or password is incorrect",
			wantError:   "Forbidden",
		},
		{
			name:        "expired token is a plain 401",
			err:         types.ErrExpiredToken,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Unauthorized",
			wantError:   nil,
		},
		{
			name:        "named resource not found",
			err:         fmt.Errorf("get: %w", &types.NotFoundError{Resource: "Bookmark", ID: 7}),
			wantStatus:  http.StatusNotFound,
			wantMessage: "Bookmark with ID 7 not found",
			wantError:   "Not Found",
		},
		{
			name:        "unknown error hides details",
			err:         errors.New("connection reset by peer"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Internal server error",
			wantError:   "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)

			WriteError(rec, req, logger, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			body := decodeBody(t, rec)
			assert.Equal(t, float64(tt.wantStatus), body["statusCode"])
			assert.Equal(t, tt.wantMessage, body["message"])
			assert.Equal(t, tt.wantError, body["error"])
			assert.NotContains(t, rec.Body.String(), "connection reset")
		})
	}
}

func TestDecodeJSONBody(t *testing.T) {
	type payload struct {
		Email string  `json:"email"`
		Name  *string `json:"firstName"`
	}

	t.Run("decodes and ignores unknown keys", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"a@x.com","role":"admin"}`))

		var dst payload
		require.NoError(t, DecodeJSONBody(rec, req, &dst))
		assert.Equal(t, "a@x.com", dst.Email)
		assert.Nil(t, dst.Name)
	})

	t.Run("empty body leaves the zero value", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", http.NoBody)

		var dst payload
		require.NoError(t, DecodeJSONBody(rec, req, &dst))
		assert.Equal(t, payload{}, dst)
	})

	t.Run("wrong type names the field", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"firstName":42}`))

		var dst payload
		err := DecodeJSONBody(rec, req, &dst)
		var vErr *types.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, []string{"firstName must be a string"}, vErr.Messages)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":`))

		var dst payload
		err := DecodeJSONBody(rec, req, &dst)
		var vErr *types.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Len(t, vErr.Messages, 1)
	})

	t.Run("trailing data is rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"a@x.com"}{}`))

		var dst payload
		err := DecodeJSONBody(rec, req, &dst)
		var vErr *types.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, []string{"body must only contain a single JSON value"}, vErr.Messages)
	})
}

func TestParseID(t *testing.T) {
	route := func(id string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/bookmarks/"+id, nil)
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	id, err := ParseID(route("42"), "id")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = ParseID(route("abc"), "id")
	var brErr *types.BadRequestError
	require.ErrorAs(t, err, &brErr)
	assert.Equal(t, NumericIDMessage, brErr.Message)
}
