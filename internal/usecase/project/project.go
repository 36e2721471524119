package project

import (
	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/usecase/reconcile"
)

// NewReconciler returns the media reconciler for projects: thumbnails and
// gallery images live in their own folders.
func NewReconciler(files port.FileStore, tasks port.TaskDispatcher) *reconcile.Reconciler {
	return reconcile.NewReconciler("project", files, tasks, reconcile.Folders{
		Thumbnail: reconcile.FolderThumbnails,
		Gallery:   reconcile.FolderGallery,
	})
}

func relationsOf(in port.ProjectInput) (model.RelationSet, error) {
	return reconcile.BuildRelationSet(reconcile.RelationField{
		Relation: model.RelationSkills,
		Field:    "skillId",
		IDs:      in.SkillIDs,
	})
}

func apply(p *model.Project, in port.ProjectInput) {
	p.Title = in.Title
	p.Slug = in.Slug
	p.Tagline = in.Tagline
	p.Description = in.Description
	p.Category = in.Category
	p.Features = model.StringList(in.Features).Clone()
	p.Libraries = model.StringList(in.Libraries).Clone()
	p.Background = in.Background
	p.Solution = in.Solution
	p.Challenge = in.Challenge
	p.BusinessImpact = in.BusinessImpact
	p.GithubURL = in.GithubURL
	p.LiveURL = in.LiveURL
}
