package model

import "github.com/fhuszti/portfolio-ms-go/internal/uuid"

// MediaSet is the image state of an entity: one optional thumbnail and an
// ordered gallery.
type MediaSet struct {
	Thumbnail string     `json:"thumbnail"`
	Gallery   StringList `json:"gallery"`
}

// Paths lists every stored path referenced by the set, thumbnail first.
func (m MediaSet) Paths() []string {
	out := make([]string, 0, len(m.Gallery)+1)
	if m.Thumbnail != "" {
		out = append(out, m.Thumbnail)
	}
	return append(out, m.Gallery...)
}

func (m MediaSet) IsEmpty() bool {
	return m.Thumbnail == "" && len(m.Gallery) == 0
}

// Relation names a many-to-many link between an owner entity and another entity.
type Relation string

const (
	RelationSkills          Relation = "skills"
	RelationSosmed          Relation = "sosmed"
	RelationProjects        Relation = "projects"
	RelationWorkExperiences Relation = "workExperiences"
)

// RelationSet maps a relation to the full set of linked identifiers.
// Writing it replaces the stored links; it is never applied as a diff.
type RelationSet map[Relation][]uuid.UUID
