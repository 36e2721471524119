package testutil

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/fhuszti/portfolio-ms-go/internal/storage"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

const (
	minioUser     = "minioadmin"
	minioPassword = "minioadmin"
)

type MinIOContainerInfo struct {
	Endpoint string
	Cleanup  func()
}

func StartMinIOContainer() (*MinIOContainerInfo, error) {
	const (
		image        = "minio/minio"
		tag          = "latest"
		internalPort = "9000/tcp"
	)

	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, fmt.Errorf("could not connect to docker: %w", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: image,
		Tag:        tag,
		Env: []string{
			fmt.Sprintf("MINIO_ROOT_USER=%s", minioUser),
			fmt.Sprintf("MINIO_ROOT_PASSWORD=%s", minioPassword),
		},
		Cmd: []string{"server", "/data"},
	}, func(hostConfig *docker.HostConfig) {
		hostConfig.AutoRemove = true
		hostConfig.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return nil, fmt.Errorf("could not start minio container: %w", err)
	}

	var endpoint string
	if err := pool.Retry(func() error {
		endpoint = fmt.Sprintf("localhost:%s", resource.GetPort(internalPort))
		client, err := minio.New(endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(minioUser, minioPassword, ""),
			Secure: false,
		})
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_, err = client.ListBuckets(ctx)
		return err
	}); err != nil {
		_ = pool.Purge(resource)
		return nil, fmt.Errorf("minio did not become ready: %w", err)
	}

	return &MinIOContainerInfo{
		Endpoint: endpoint,
		Cleanup: func() {
			if err := pool.Purge(resource); err != nil {
				log.Printf("could not purge minio container: %s", err)
			}
		},
	}, nil
}

// NewTestBucket returns a storage backed by a freshly created bucket.
func NewTestBucket(ctx context.Context, endpoint string) (*storage.MinioStorage, error) {
	bucket := fmt.Sprintf("portfolio-%d", time.Now().UnixNano())
	strg, err := storage.NewMinioStorage(endpoint, minioUser, minioPassword, false, bucket)
	if err != nil {
		return nil, fmt.Errorf("could not create minio client: %w", err)
	}
	if err := strg.Init(ctx); err != nil {
		return nil, fmt.Errorf("could not create bucket %q: %w", bucket, err)
	}
	return strg, nil
}
