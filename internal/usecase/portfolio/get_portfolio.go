package portfolio

import (
	"context"
	"time"

	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
)

type getPortfolioSrv struct {
	abouts   port.AboutRepository
	projects port.ProjectRepository
	now      func() time.Time
}

// NewPortfolioGetter constructs a port.PortfolioGetter.
func NewPortfolioGetter(abouts port.AboutRepository, projects port.ProjectRepository) port.PortfolioGetter {
	return &getPortfolioSrv{abouts: abouts, projects: projects, now: time.Now}
}

// GetPortfolio loads every about profile with its relations and every
// project, newest first.
func (s *getPortfolioSrv) GetPortfolio(ctx context.Context) (*port.PortfolioOutput, error) {
	abouts, err := s.abouts.List(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, err
	}
	if abouts == nil {
		abouts = []model.About{}
	}
	if projects == nil {
		projects = []model.Project{}
	}
	return &port.PortfolioOutput{
		GeneratedAt: s.now().UTC(),
		About:       abouts,
		Projects:    projects,
	}, nil
}
