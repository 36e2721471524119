package api

import (
	"net/http"

	"github.com/fhuszti/portfolio-ms-go/internal/api_context"
	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/go-chi/chi/v5"
)

type ProjectRequest struct {
	Title          string   `json:"title" validate:"required,max=200"`
	Slug           string   `json:"slug" validate:"required,slug,max=200"`
	Tagline        string   `json:"tagline" validate:"max=300"`
	Description    string   `json:"description" validate:"required"`
	Category       string   `json:"category" validate:"max=100"`
	Features       []string `json:"features" validate:"dive,required"`
	Libraries      []string `json:"libraries" validate:"dive,required"`
	Background     string   `json:"background"`
	Solution       string   `json:"solution"`
	Challenge      string   `json:"challenge"`
	BusinessImpact *string  `json:"businessImpact"`
	GithubURL      string   `json:"githubUrl" validate:"omitempty,url,max=512"`
	LiveURL        string   `json:"liveUrl" validate:"omitempty,url,max=512"`
	SkillIDs       []string `json:"skillId"`
}

func readProjectFields(f *form) (ProjectRequest, error) {
	req := ProjectRequest{
		Title:          f.str("title"),
		Slug:           f.str("slug"),
		Tagline:        f.str("tagline"),
		Description:    f.str("description"),
		Category:       f.str("category"),
		Background:     f.str("background"),
		Solution:       f.str("solution"),
		Challenge:      f.str("challenge"),
		BusinessImpact: f.optStr("businessImpact"),
		GithubURL:      f.str("githubUrl"),
		LiveURL:        f.str("liveUrl"),
	}
	var err error
	if req.Features, err = f.list("features"); err != nil {
		return req, err
	}
	if req.Libraries, err = f.list("libraries"); err != nil {
		return req, err
	}
	if req.SkillIDs, err = f.firstList("skillId", "skills"); err != nil {
		return req, err
	}
	if req.Features == nil {
		req.Features = []string{}
	}
	if req.Libraries == nil {
		req.Libraries = []string{}
	}
	return req, nil
}

func (req ProjectRequest) input() port.ProjectInput {
	return port.ProjectInput{
		Title:          req.Title,
		Slug:           req.Slug,
		Tagline:        req.Tagline,
		Description:    req.Description,
		Category:       req.Category,
		Features:       req.Features,
		Libraries:      req.Libraries,
		Background:     req.Background,
		Solution:       req.Solution,
		Challenge:      req.Challenge,
		BusinessImpact: req.BusinessImpact,
		GithubURL:      req.GithubURL,
		LiveURL:        req.LiveURL,
		SkillIDs:       req.SkillIDs,
	}
}

// CreateProjectHandler expects a multipart form with a thumbnail file and
// one or more gallery files.
func CreateProjectHandler(svc port.ProjectCreator, maxBody int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := parseForm(w, r, maxBody)
		if err != nil {
			writeFormError(w, err)
			return
		}
		defer f.Close()

		req, err := readProjectFields(f)
		if err != nil {
			WriteError(w, http.StatusBadRequest, err.Error(), nil)
			return
		}
		if !validate(w, req) {
			return
		}

		in := port.CreateProjectInput{ProjectInput: req.input()}
		if in.Thumbnail, err = f.upload("thumbnail"); err != nil {
			WriteError(w, http.StatusBadRequest, "could not read thumbnail", err)
			return
		}
		if in.Gallery, err = f.uploads("gallery"); err != nil {
			WriteError(w, http.StatusBadRequest, "could not read gallery", err)
			return
		}

		p, err := svc.CreateProject(r.Context(), in)
		if err != nil {
			WriteUsecaseError(w, err, "could not create project")
			return
		}
		RespondJSON(w, http.StatusCreated, p)
		logger.Infof(r.Context(), "✅  Created project #%s", p.ID)
	}
}

// UpdateProjectHandler reads the media change from the form: a thumbnail
// file or thumbnailDeleted=true, gallery files, and the kept (oldGallery or
// keptGallery) and deletedGallery JSON path lists.
func UpdateProjectHandler(svc port.ProjectUpdater, maxBody int64) http.HandlerFunc {
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

		req, err := readProjectFields(f)
		if err != nil {
			WriteError(w, http.StatusBadRequest, err.Error(), nil)
			return
		}
		if !validate(w, req) {
			return
		}

		in := port.UpdateProjectInput{ID: id, ProjectInput: req.input()}
		if in.Media, err = readChangeSet(f); err != nil {
			WriteError(w, http.StatusBadRequest, err.Error(), err)
			return
		}

		p, err := svc.UpdateProject(r.Context(), in)
		if err != nil {
			WriteUsecaseError(w, err, "could not update project")
			return
		}
		RespondJSON(w, http.StatusOK, p)
		logger.Infof(r.Context(), "✅  Updated project #%s", p.ID)
	}
}

func readChangeSet(f *form) (port.ChangeSet, error) {
	var cs port.ChangeSet
	var err error
	if cs.NewThumbnail, err = f.upload("thumbnail"); err != nil {
		return cs, err
	}
	cs.ThumbnailDeleted = f.boolean("thumbnailDeleted")
	if cs.NewGallery, err = f.uploads("gallery"); err != nil {
		return cs, err
	}
	if cs.KeptGallery, err = f.firstList("keptGallery", "oldGallery"); err != nil {
		return cs, err
	}
	if cs.DeletedGallery, err = f.list("deletedGallery"); err != nil {
		return cs, err
	}
	return cs, nil
}

func DeleteProjectHandler(svc port.ProjectDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}
		if err := svc.DeleteProject(r.Context(), id); err != nil {
			WriteUsecaseError(w, err, "could not delete project")
			return
		}
		w.WriteHeader(http.StatusNoContent)
		logger.Infof(r.Context(), "✅  Deleted project #%s", id)
	}
}

func GetProjectHandler(svc port.ProjectGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}
		p, err := svc.GetProject(r.Context(), id)
		if err != nil {
			WriteUsecaseError(w, err, "could not get project")
			return
		}
		RespondJSON(w, http.StatusOK, p)
	}
}

func GetProjectBySlugHandler(svc port.ProjectGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			WriteError(w, http.StatusBadRequest, "slug is required", nil)
			return
		}
		p, err := svc.GetProjectBySlug(r.Context(), slug)
		if err != nil {
			WriteUsecaseError(w, err, "could not get project")
			return
		}
		RespondJSON(w, http.StatusOK, p)
	}
}

func ListProjectsHandler(svc port.ProjectGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.ListProjects(r.Context())
		if err != nil {
			WriteUsecaseError(w, err, "could not list projects")
			return
		}
		RespondJSON(w, http.StatusOK, list)
	}
}
