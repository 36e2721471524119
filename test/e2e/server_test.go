package e2e

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fhuszti/portfolio-ms-go/internal/cache"
	"github.com/fhuszti/portfolio-ms-go/internal/filestore"
	"github.com/fhuszti/portfolio-ms-go/internal/handler/api"
	cMiddleware "github.com/fhuszti/portfolio-ms-go/internal/middleware"
	"github.com/fhuszti/portfolio-ms-go/internal/renderer"
	"github.com/fhuszti/portfolio-ms-go/internal/repository/mariadb"
	"github.com/fhuszti/portfolio-ms-go/internal/task"
	catalogSvc "github.com/fhuszti/portfolio-ms-go/internal/usecase/catalog"
	portfolioSvc "github.com/fhuszti/portfolio-ms-go/internal/usecase/portfolio"
	projectSvc "github.com/fhuszti/portfolio-ms-go/internal/usecase/project"
	"github.com/fhuszti/portfolio-ms-go/internal/usecase/reconcile"
	"github.com/fhuszti/portfolio-ms-go/test/testutil"
	"github.com/go-chi/chi/v5"
)

const maxBody = 20 << 20

// newServer wires the skill, project, portfolio and media routes against a
// fresh database and bucket.
func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	ctx := context.Background()

	testDB, err := testutil.SetupTestDB(true)
	if err != nil {
		t.Fatalf("setup DB: %v", err)
	}
	t.Cleanup(func() { _ = testDB.Cleanup() })

	strg, err := testutil.NewTestBucket(ctx, minioEndpoint)
	if err != nil {
		t.Fatalf("setup bucket: %v", err)
	}

	ca := cache.NewCache(redisAddr, "")
	if err := ca.DeletePortfolio(ctx); err != nil {
		t.Fatalf("reset cache: %v", err)
	}
	files := filestore.New(strg, nil, 10<<20)
	media := projectSvc.NewReconciler(files, task.NewNoopDispatcher())
	projectRepo := mariadb.NewProjectRepository(testDB.DB)
	aboutRepo := mariadb.NewAboutRepository(testDB.DB)
	skills := catalogSvc.NewSkillManager(mariadb.NewSkillRepository(testDB.DB), ca)
	getter := projectSvc.NewProjectGetter(projectRepo)

	r := chi.NewRouter()
	r.NotFound(api.NotFoundHandler())
	withID := cMiddleware.WithEntityID()

	r.Post("/skills", api.CreateSkillHandler(skills))
	r.Post("/projects", api.CreateProjectHandler(projectSvc.NewProjectCreator(projectRepo, media, ca), maxBody))
	r.With(withID).Put("/projects/{id}", api.UpdateProjectHandler(projectSvc.NewProjectUpdater(projectRepo, media, ca), maxBody))
	r.With(withID).Delete("/projects/{id}", api.DeleteProjectHandler(projectSvc.NewProjectDeleter(projectRepo, media, ca)))
	r.Get("/projects/slug/{slug}", api.GetProjectBySlugHandler(getter))
	r.Get("/portfolio", api.GetPortfolioHandler(renderer.NewHTTPRenderer(ca, time.Minute), portfolioSvc.NewPortfolioGetter(aboutRepo, projectRepo)))
	r.Get("/media/"+reconcile.FolderGallery+"/*", api.ServeMediaHandler(strg, reconcile.FolderGallery))
	r.Get("/media/"+reconcile.FolderThumbnails+"/*", api.ServeMediaHandler(strg, reconcile.FolderThumbnails))

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}
