package api

import (
	"net/http"

	"github.com/fhuszti/portfolio-ms-go/internal/api_context"
	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
)

type AboutRequest struct {
	Name              string   `json:"name" validate:"required,max=200"`
	JobTitle          string   `json:"jobTitle" validate:"required,max=200"`
	Introduction      string   `json:"introduction" validate:"required"`
	SkillIDs          []string `json:"skillId"`
	SosmedIDs         []string `json:"sosmed"`
	ProjectIDs        []string `json:"projects"`
	WorkExperienceIDs []string `json:"workExperiences"`
}

// readAboutFields accepts the relation lists under both the plural and the
// "<name>Id" field names.
func readAboutFields(f *form) (AboutRequest, error) {
	req := AboutRequest{
		Name:         f.str("name"),
		JobTitle:     f.str("jobTitle"),
		Introduction: f.str("introduction"),
	}
	var err error
	if req.SkillIDs, err = f.firstList("skillId", "skills"); err != nil {
		return req, err
	}
	if req.SosmedIDs, err = f.firstList("sosmed", "sosmedId"); err != nil {
		return req, err
	}
	if req.ProjectIDs, err = f.firstList("projects", "projectId"); err != nil {
		return req, err
	}
	if req.WorkExperienceIDs, err = f.firstList("workExperiences", "workExperienceId"); err != nil {
		return req, err
	}
	return req, nil
}

func (req AboutRequest) input() port.AboutInput {
	return port.AboutInput{
		Name:              req.Name,
		JobTitle:          req.JobTitle,
		Introduction:      req.Introduction,
		SkillIDs:          req.SkillIDs,
		SosmedIDs:         req.SosmedIDs,
		ProjectIDs:        req.ProjectIDs,
		WorkExperienceIDs: req.WorkExperienceIDs,
	}
}

func CreateAboutHandler(svc port.AboutManager, maxBody int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := parseForm(w, r, maxBody)
		if err != nil {
			writeFormError(w, err)
			return
		}
		defer f.Close()

		req, err := readAboutFields(f)
		if err != nil {
			WriteError(w, http.StatusBadRequest, err.Error(), nil)
			return
		}
		if !validate(w, req) {
			return
		}

		in := port.CreateAboutInput{AboutInput: req.input()}
		if in.Profile, err = f.upload("profile"); err != nil {
			WriteError(w, http.StatusBadRequest, "could not read profile picture", err)
			return
		}

		a, err := svc.CreateAbout(r.Context(), in)
		if err != nil {
			WriteUsecaseError(w, err, "could not create about")
			return
		}
		RespondJSON(w, http.StatusCreated, a)
		logger.Infof(r.Context(), "✅  Created about #%s", a.ID)
	}
}

func UpdateAboutHandler(svc port.AboutManager, maxBody int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}
		f, err := parseForm(w, r, maxBody)
		if err != nil {
			writeFormError(w, err)
			return
		}
		defer f.Close()

		req, err := readAboutFields(f)
		if err != nil {
			WriteError(w, http.StatusBadRequest, err.Error(), nil)
			return
		}
		if !validate(w, req) {
			return
		}

		in := port.UpdateAboutInput{ID: id, AboutInput: req.input(), ProfileDeleted: f.boolean("profileDeleted")}
		if in.Profile, err = f.upload("profile"); err != nil {
			WriteError(w, http.StatusBadRequest, "could not read profile picture", err)
			return
		}

		a, err := svc.UpdateAbout(r.Context(), in)
		if err != nil {
			WriteUsecaseError(w, err, "could not update about")
			return
		}
		RespondJSON(w, http.StatusOK, a)
		logger.Infof(r.Context(), "✅  Updated about #%s", a.ID)
	}
}

func DeleteAboutHandler(svc port.AboutManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}
		if err := svc.DeleteAbout(r.Context(), id); err != nil {
			WriteUsecaseError(w, err, "could not delete about")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func ListAboutsHandler(svc port.AboutManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.ListAbouts(r.Context())
		if err != nil {
			WriteUsecaseError(w, err, "could not list about profiles")
			return
		}
		RespondJSON(w, http.StatusOK, list)
	}
}
