package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/fhuszti/portfolio-ms-go/internal/mock"
	"github.com/fhuszti/portfolio-ms-go/internal/task"
)

func TestPurgeFileHandler(t *testing.T) {
	tests := []struct {
		name    string
		svcErr  error
		wantErr bool
	}{
		{name: "success"},
		{name: "service error", svcErr: errors.New("boom"), wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mock.MockFilePurger{Err: tc.svcErr}
			err := PurgeFileHandler(context.Background(), task.PurgeFilePayload{Path: "/gallery/a.webp"}, svc)

			if (err != nil) != tc.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tc.wantErr)
			}
			if !svc.Called || svc.Path != "/gallery/a.webp" {
				t.Errorf("svc called=%v path=%q", svc.Called, svc.Path)
			}
		})
	}
}

type sweeper struct {
	n   int
	err error
}

func (s sweeper) SweepOrphans(ctx context.Context) (int, error) { return s.n, s.err }

func TestSweepOrphansHandler(t *testing.T) {
	if err := SweepOrphansHandler(context.Background(), sweeper{n: 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := SweepOrphansHandler(context.Background(), sweeper{err: errors.New("x")}); err == nil {
		t.Fatal("expected error")
	}
}
