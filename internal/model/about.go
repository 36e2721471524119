package model

import (
	"time"

	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
)

// About is the profile shown on the landing page. Its profile picture is the
// thumbnail of its MediaSet; it has no gallery.
type About struct {
	ID             uuid.UUID `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	JobTitle       string    `json:"jobTitle" db:"job_title"`
	Introduction   string    `json:"introduction" db:"introduction"`
	ProfilePicture string    `json:"profilePicture" db:"profile_picture"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`

	Skills          []Skill          `json:"skills" db:"-"`
	Sosmed          []Sosmed         `json:"sosmed" db:"-"`
	Projects        []Project        `json:"projects" db:"-"`
	WorkExperiences []WorkExperience `json:"workExperiences" db:"-"`
}

func (a *About) Media() MediaSet {
	return MediaSet{Thumbnail: a.ProfilePicture, Gallery: StringList{}}
}

func (a *About) SetMedia(m MediaSet) {
	a.ProfilePicture = m.Thumbnail
}
