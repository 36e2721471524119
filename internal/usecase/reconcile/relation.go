package reconcile

import (
	"strings"

	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
)

// NormaliseIDs turns a submitted identifier list into a set, keeping the
// first occurrence order. nil stays nil (relation not submitted); an empty
// list yields an empty, non-nil set.
func NormaliseIDs(field string, raw []string) ([]uuid.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	seen := make(map[uuid.UUID]struct{}, len(raw))
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(strings.TrimSpace(s))
		if err != nil || id.IsNil() {
			return nil, &ValidationError{Field: field, Msg: MsgMalformedIDs}
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, nil
}

// RelationField pairs a relation with the form field it was submitted under.
type RelationField struct {
	Relation model.Relation
	Field    string
	IDs      []string
}

// BuildRelationSet normalises every submitted relation. Relations whose
// list is nil are left out so the stored links stay untouched.
func BuildRelationSet(fields ...RelationField) (model.RelationSet, error) {
	set := make(model.RelationSet, len(fields))
	for _, f := range fields {
		ids, err := NormaliseIDs(f.Field, f.IDs)
		if err != nil {
			return nil, err
		}
		if ids == nil {
			continue
		}
		set[f.Relation] = ids
	}
	return set, nil
}
