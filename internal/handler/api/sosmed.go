package api

import (
	"encoding/json"
	"net/http"

	"github.com/fhuszti/portfolio-ms-go/internal/api_context"
	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
)

type SosmedRequest struct {
	Name string `json:"name" validate:"required,max=120"`
	URL  string `json:"url" validate:"required,url,max=512"`
}

func (req SosmedRequest) input() port.SosmedInput {
	return port.SosmedInput{Name: req.Name, URL: req.URL}
}

func CreateSosmedHandler(svc port.SosmedManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SosmedRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request payload", err)
			return
		}
		if !validate(w, req) {
			return
		}

		sm, err := svc.CreateSosmed(r.Context(), req.input())
		if err != nil {
			WriteUsecaseError(w, err, "could not create sosmed")
			return
		}
		RespondJSON(w, http.StatusCreated, sm)
		logger.Infof(r.Context(), "✅  Created sosmed #%s", sm.ID)
	}
}

func UpdateSosmedHandler(svc port.SosmedManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}
		var req SosmedRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request payload", err)
			return
		}
		if !validate(w, req) {
			return
		}

		sm, err := svc.UpdateSosmed(r.Context(), id, req.input())
		if err != nil {
			WriteUsecaseError(w, err, "could not update sosmed")
			return
		}
		RespondJSON(w, http.StatusOK, sm)
	}
}

func DeleteSosmedHandler(svc port.SosmedManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}
		if err := svc.DeleteSosmed(r.Context(), id); err != nil {
			WriteUsecaseError(w, err, "could not delete sosmed")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func ListSosmedHandler(svc port.SosmedManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.ListSosmed(r.Context())
		if err != nil {
			WriteUsecaseError(w, err, "could not list sosmed")
			return
		}
		RespondJSON(w, http.StatusOK, list)
	}
}
