package api

import (
	"encoding/json"
	"net/http"

	"github.com/fhuszti/portfolio-ms-go/internal/api_context"
	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
)

type SkillRequest struct {
	Name string `json:"name" validate:"required,max=120"`
	Icon string `json:"icon" validate:"omitempty,max=255"`
}

func (req SkillRequest) input() port.SkillInput {
	return port.SkillInput{Name: req.Name, Icon: req.Icon}
}

func CreateSkillHandler(svc port.SkillManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SkillRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request payload", err)
			return
		}
		if !validate(w, req) {
			return
		}

		sk, err := svc.CreateSkill(r.Context(), req.input())
		if err != nil {
			WriteUsecaseError(w, err, "could not create skill")
			return
		}
		RespondJSON(w, http.StatusCreated, sk)
		logger.Infof(r.Context(), "✅  Created skill #%s", sk.ID)
	}
}

func UpdateSkillHandler(svc port.SkillManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}
		var req SkillRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request payload", err)
			return
		}
		if !validate(w, req) {
			return
		}

		sk, err := svc.UpdateSkill(r.Context(), id, req.input())
		if err != nil {
			WriteUsecaseError(w, err, "could not update skill")
			return
		}
		RespondJSON(w, http.StatusOK, sk)
	}
}

func DeleteSkillHandler(svc port.SkillManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}
		if err := svc.DeleteSkill(r.Context(), id); err != nil {
			WriteUsecaseError(w, err, "could not delete skill")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func ListSkillsHandler(svc port.SkillManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.ListSkills(r.Context())
		if err != nil {
			WriteUsecaseError(w, err, "could not list skills")
			return
		}
		RespondJSON(w, http.StatusOK, list)
	}
}
