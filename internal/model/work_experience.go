package model

import (
	"time"

	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
)

type WorkExperience struct {
	ID             uuid.UUID  `json:"id" db:"id"`
	Position       string     `json:"position" db:"position"`
	EmploymentType string     `json:"employmentType" db:"employment_type"`
	Company        string     `json:"company" db:"company"`
	Location       string     `json:"location" db:"location"`
	LocationType   string     `json:"locationType" db:"location_type"`
	Description    StringList `json:"description" db:"description"`
	StartDate      time.Time  `json:"startDate" db:"start_date"`
	EndDate        *time.Time `json:"endDate" db:"end_date"`
	CreatedAt      time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time  `json:"updatedAt" db:"updated_at"`

	Skills []Skill `json:"skills" db:"-"`
}
