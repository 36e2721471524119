package model

import (
	"time"

	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
)

type Project struct {
	ID             uuid.UUID  `json:"id" db:"id"`
	Title          string     `json:"title" db:"title"`
	Slug           string     `json:"slug" db:"slug"`
	Tagline        string     `json:"tagline" db:"tagline"`
	Description    string     `json:"description" db:"description"`
	Category       string     `json:"category" db:"category"`
	Features       StringList `json:"features" db:"features"`
	Libraries      StringList `json:"libraries" db:"libraries"`
	Background     string     `json:"background" db:"background"`
	Solution       string     `json:"solution" db:"solution"`
	Challenge      string     `json:"challenge" db:"challenge"`
	BusinessImpact *string    `json:"businessImpact" db:"business_impact"`
	GithubURL      string     `json:"githubUrl" db:"github_url"`
	LiveURL        string     `json:"liveUrl" db:"live_url"`
	Thumbnail      string     `json:"thumbnail" db:"thumbnail"`
	Gallery        StringList `json:"gallery" db:"gallery"`
	CreatedAt      time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time  `json:"updatedAt" db:"updated_at"`

	Skills []Skill `json:"skills" db:"-"`
}

func (p *Project) Media() MediaSet {
	return MediaSet{Thumbnail: p.Thumbnail, Gallery: p.Gallery.Clone()}
}

func (p *Project) SetMedia(m MediaSet) {
	p.Thumbnail = m.Thumbnail
	p.Gallery = m.Gallery
	if p.Gallery == nil {
		p.Gallery = StringList{}
	}
}
