package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/portfolio/backend/internal/repository"
	"github.com/portfolio/backend/internal/validation"
)

const (
	// maxBodyBytes caps every request body.
	maxBodyBytes = 1 << 20
	// maxDetailRunes caps storage error messages echoed to clients.
	maxDetailRunes = 200
)

// errorResponse is the body of every non-2xx response.
type errorResponse struct {
	Detail any `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, detail any) {
	writeJSON(w, status, errorResponse{Detail: detail})
}

// decodeJSON reads a single JSON value from the body into dst. On failure it
// writes the error response and returns false: 400 for unreadable JSON,
// 413 for oversized bodies, 422 for values of the wrong type.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))

	err := dec.Decode(dst)
	if err == nil {
		// Exactly one value per body.
		if extra := dec.Decode(&json.RawMessage{}); !errors.Is(extra, io.EOF) {
			err = errors.New("unexpected data after JSON value")
		}
	}
	if err == nil {
		return true
	}

	var (
		maxErr  *http.MaxBytesError
		typeErr *json.UnmarshalTypeError
	)
	switch {
	case errors.As(err, &maxErr):
		writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("request body exceeds %d bytes", maxErr.Limit))
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		writeError(w, http.StatusUnprocessableEntity, validation.Errors{{
			Field:   field,
			Rule:    "type",
			Message: "must be " + jsonKind(typeErr.Type.Kind().String()),
		}})
	case errors.Is(err, io.EOF):
		writeError(w, http.StatusBadRequest, "request body is empty")
	default:
		writeError(w, http.StatusBadRequest, "invalid JSON: "+truncate(err.Error(), maxDetailRunes))
	}
	return false
}

// jsonKind names a Go kind the way a JSON client thinks of it.
func jsonKind(kind string) string {
	switch kind {
	case "string":
		return "a string"
	case "map", "struct":
		return "an object"
	case "slice", "array":
		return "an array"
	case "bool":
		return "a boolean"
	case "int", "int8", "int16", "int32", "int64",
		"uint", "uint8", "uint16", "uint32", "uint64",
		"float32", "float64":
		return "a number"
	default:
		return "a valid value"
	}
}

// writeValidationError answers 422 for constraint failures. Errors that are
// not field-level are reported as 500.
func writeValidationError(w http.ResponseWriter, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		writeError(w, http.StatusUnprocessableEntity, verrs)
		return
	}
	slog.Error("validation failed unexpectedly", "error", err)
	writeError(w, http.StatusInternalServerError, "validation failed")
}

// writeStorageError answers 500 for a failed store call. An unavailable
// store gets a fixed message; other errors are echoed, truncated.
func writeStorageError(w http.ResponseWriter, r *http.Request, op string, err error) {
	if errors.Is(err, repository.ErrStorageUnavailable) {
		slog.WarnContext(r.Context(), "store unavailable", "op", op, "error", err)
		writeError(w, http.StatusInternalServerError, repository.ErrStorageUnavailable.Error())
		return
	}
	slog.ErrorContext(r.Context(), "store operation failed", "op", op, "error", err)
	writeError(w, http.StatusInternalServerError, truncate(err.Error(), maxDetailRunes))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
