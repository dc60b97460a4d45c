package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/FACorreiaa/go-bookmark-api/internal/types"
)

const (
	InternalServerErrorMessage = "Internal server error"
	UnauthorizedMessage        = "Unauthorized"
	DuplicateEmailMessage      = "Email already exists"
	InvalidCredentialsMessage  = "Email or password is incorrect"
	NumericIDMessage           = "Validation failed (numeric string is expected)"
)

const maxBodyBytes = 1_048_576

// ErrorResponse writes the standard JSON error body.
// message is either a string or a []string of validation messages.
func ErrorResponse(w http.ResponseWriter, r *http.Request, status int, message any) {
	body := types.ErrorBody{
		StatusCode: status,
		Message:    message,
	}
	// 401 bodies carry only statusCode and message.
	if status != http.StatusUnauthorized {
		body.Error = http.StatusText(status)
	}
	WriteJSONResponse(w, r, status, body)
}

// Unauthorized writes the single 401 body used for every authentication failure.
func Unauthorized(w http.ResponseWriter, r *http.Request) {
	ErrorResponse(w, r, http.StatusUnauthorized, UnauthorizedMessage)
}

// WriteError translates err into its HTTP outcome. Errors outside the known
// taxonomy are logged and answered with a generic 500.
func WriteError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	var validationErr *types.ValidationError
	var badRequestErr *types.BadRequestError
	var notFoundErr *types.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		ErrorResponse(w, r, http.StatusBadRequest, validationErr.Messages)
	case errors.As(err, &badRequestErr):
		ErrorResponse(w, r, http.StatusBadRequest, badRequestErr.Message)
	case errors.Is(err, types.ErrDuplicateEmail):
		ErrorResponse(w, r, http.StatusForbidden, DuplicateEmailMessage)
	case errors.Is(err, types.ErrInvalidCredentials):
		ErrorResponse(w, r, http.StatusForbidden, InvalidCredentialsMessage)
	case errors.Is(err, types.ErrUnauthenticated),
		errors.Is(err, types.ErrInvalidToken),
		errors.Is(err, types.ErrExpiredToken):
		Unauthorized(w, r)
	case errors.As(err, &notFoundErr):
		ErrorResponse(w, r, http.StatusNotFound, notFoundErr.Error())
	case errors.Is(err, types.ErrNotFound):
		ErrorResponse(w, r, http.StatusNotFound, "Not found")
	default:
		logger.ErrorContext(r.Context(), InternalServerErrorMessage,
			slog.Any("error", err),
			slog.String("path", r.URL.Path),
			slog.String("req_id", middleware.GetReqID(r.Context())),
		)
		ErrorResponse(w, r, http.StatusInternalServerError, InternalServerErrorMessage)
	}
}

// WriteJSONResponse encodes the data to JSON and writes the response header and body.
func WriteJSONResponse(w http.ResponseWriter, r *http.Request, status int, data any) {
	if status == http.StatusNoContent {
		w.WriteHeader(status)
		return
	}

	js, err := json.Marshal(data)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to marshal JSON response",
			slog.Any("error", err),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err = w.Write(js); err != nil {
		// Status already sent, nothing left to tell the client.
		slog.ErrorContext(r.Context(), "Failed to write response body",
			slog.Any("error", err),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
	}
}

// DecodeJSONBody reads and decodes a JSON request body safely.
// Client mistakes come back as *types.ValidationError. Unknown keys are ignored
// and an empty body decodes to the zero value so field validation reports what is missing.
func DecodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)

	err := dec.Decode(dst)
	if err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		var invalidUnmarshalError *json.InvalidUnmarshalError
		var maxBytesError *http.MaxBytesError

		switch {
		case errors.Is(err, io.EOF):
			return nil

		case errors.As(err, &syntaxError):
			return types.NewValidationError(fmt.Sprintf("body contains badly-formed JSON (at character %d)", syntaxError.Offset))

		case errors.Is(err, io.ErrUnexpectedEOF):
			return types.NewValidationError("body contains badly-formed JSON")

		case errors.As(err, &unmarshalTypeError):
			if unmarshalTypeError.Field != "" {
				return types.NewValidationError(fmt.Sprintf("%s must be a %s", unmarshalTypeError.Field, jsonTypeName(unmarshalTypeError)))
			}
			return types.NewValidationError(fmt.Sprintf("body contains incorrect JSON type (at character %d)", unmarshalTypeError.Offset))

		case errors.As(err, &maxBytesError):
			return types.NewValidationError(fmt.Sprintf("body must not be larger than %d bytes", maxBytesError.Limit))

		case errors.As(err, &invalidUnmarshalError):
			panic(fmt.Errorf("developer error: invalid argument passed to json.Unmarshal: %w", err))

		default:
			return fmt.Errorf("error decoding JSON body: %w", err)
		}
	}

	err = dec.Decode(&struct{}{})
	if !errors.Is(err, io.EOF) {
		return types.NewValidationError("body must only contain a single JSON value")
	}

	return nil
}

func jsonTypeName(e *json.UnmarshalTypeError) string {
	t := e.Type
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return "object"
	}
}

// ParseID reads a numeric URL parameter.
func ParseID(r *http.Request, key string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, key), 10, 64)
	if err != nil {
		return 0, &types.BadRequestError{Message: NumericIDMessage}
	}
	return id, nil
}
