package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/usecase/reconcile"
	"github.com/fhuszti/portfolio-ms-go/internal/validation"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func WriteError(w http.ResponseWriter, status int, msg string, err error) {
	ctx := context.Background()
	if err != nil {
		logger.Errorf(ctx, "❌  %s: %v", msg, err)
	} else {
		logger.Error(ctx, "❌  "+msg)
	}
	w.Header().Set("Cache-Control", "no-store, max-age=0, must-revalidate")
	RespondJSON(w, status, ErrorResponse{Error: msg})
}

// WriteUsecaseError maps an error returned by a use case onto a status code.
// fallback is the message used for unexpected failures.
func WriteUsecaseError(w http.ResponseWriter, err error, fallback string) {
	var vErr *reconcile.ValidationError
	var sErr *reconcile.StorageError
	var pErr *reconcile.PersistenceError

	switch {
	case errors.As(err, &vErr):
		WriteError(w, http.StatusBadRequest, vErr.Error(), nil)
	case errors.Is(err, port.ErrNotFound):
		WriteError(w, http.StatusNotFound, "resource not found", err)
	case errors.Is(err, port.ErrDuplicate):
		WriteError(w, http.StatusConflict, "resource already exists", err)
	case errors.Is(err, port.ErrUnknownReference):
		WriteError(w, http.StatusUnprocessableEntity, "unknown related identifier", err)
	case errors.As(err, &sErr):
		WriteError(w, http.StatusInternalServerError, "could not store file", err)
	case errors.As(err, &pErr):
		WriteError(w, http.StatusInternalServerError, "could not save changes", err)
	default:
		WriteError(w, http.StatusInternalServerError, fallback, err)
	}
}

// validate runs struct validation and writes the {field: tag} map on failure.
func validate(w http.ResponseWriter, req any) bool {
	errs := validation.ValidateStruct(req)
	if errs == nil {
		return true
	}
	errsJSON, err := validation.ErrorsToJson(errs)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "failed to encode validation errors", err)
		return false
	}
	logger.Warnf(context.Background(), "❌  Validation failed: %s", errsJSON)
	w.Header().Set("Cache-Control", "no-store, max-age=0, must-revalidate")
	RespondRawJSON(w, http.StatusBadRequest, []byte(errsJSON))
	return false
}

func RespondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Errorf(context.Background(), "❌  Failed to encode JSON response: %v", err)
	}
}

func RespondRawJSON(w http.ResponseWriter, status int, raw []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(raw); err != nil {
		logger.Errorf(context.Background(), "❌  Failed to write JSON payload: %v", err)
	}
}
