package api

import (
	"encoding/json"
	"net/http"

	"github.com/fhuszti/portfolio-ms-go/internal/api_context"
	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
)

// WorkExperienceRequest also accepts the lowercase employmenttype and
// locationtype keys older clients send. Skills may come as skillId or skills.
type WorkExperienceRequest struct {
	Position       string   `json:"position" validate:"required,max=200"`
	EmploymentType string   `json:"employmentType" validate:"required,max=60"`
	Company        string   `json:"company" validate:"required,max=200"`
	Location       string   `json:"location" validate:"max=200"`
	LocationType   string   `json:"locationType" validate:"max=60"`
	Description    []string `json:"description" validate:"dive,required"`
	StartDate      Date     `json:"startDate" validate:"required"`
	EndDate        *Date    `json:"endDate"`
	SkillID        *IDList  `json:"skillId"`
	Skills         *IDList  `json:"skills"`

	LegacyEmploymentType string `json:"employmenttype" validate:"-"`
	LegacyLocationType   string `json:"locationtype" validate:"-"`
}

func decodeWorkExperience(r *http.Request) (WorkExperienceRequest, error) {
	var req WorkExperienceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req, err
	}
	if req.EmploymentType == "" {
		req.EmploymentType = req.LegacyEmploymentType
	}
	if req.LocationType == "" {
		req.LocationType = req.LegacyLocationType
	}
	if req.Description == nil {
		req.Description = []string{}
	}
	return req, nil
}

func (req WorkExperienceRequest) input() port.WorkExperienceInput {
	in := port.WorkExperienceInput{
		Position:       req.Position,
		EmploymentType: req.EmploymentType,
		Company:        req.Company,
		Location:       req.Location,
		LocationType:   req.LocationType,
		Description:    req.Description,
		StartDate:      req.StartDate.Time,
		SkillIDs:       firstIDs(req.SkillID, req.Skills),
	}
	if req.EndDate != nil && !req.EndDate.IsZero() {
		end := req.EndDate.Time
		in.EndDate = &end
	}
	return in
}

func CreateWorkExperienceHandler(svc port.WorkExperienceManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := decodeWorkExperience(r)
		if err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request payload", err)
			return
		}
		if !validate(w, req) {
			return
		}

		we, err := svc.CreateWorkExperience(r.Context(), req.input())
		if err != nil {
			WriteUsecaseError(w, err, "could not create work experience")
			return
		}
		RespondJSON(w, http.StatusCreated, we)
		logger.Infof(r.Context(), "✅  Created work experience #%s", we.ID)
	}
}

func UpdateWorkExperienceHandler(svc port.WorkExperienceManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}
		req, err := decodeWorkExperience(r)
		if err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request payload", err)
			return
		}
		if !validate(w, req) {
			return
		}

		we, err := svc.UpdateWorkExperience(r.Context(), id, req.input())
		if err != nil {
			WriteUsecaseError(w, err, "could not update work experience")
			return
		}
		RespondJSON(w, http.StatusOK, we)
	}
}

func DeleteWorkExperienceHandler(svc port.WorkExperienceManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}
		if err := svc.DeleteWorkExperience(r.Context(), id); err != nil {
			WriteUsecaseError(w, err, "could not delete work experience")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func ListWorkExperiencesHandler(svc port.WorkExperienceManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.ListWorkExperiences(r.Context())
		if err != nil {
			WriteUsecaseError(w, err, "could not list work experiences")
			return
		}
		RespondJSON(w, http.StatusOK, list)
	}
}
