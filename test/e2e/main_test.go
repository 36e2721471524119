package e2e

import (
	"fmt"
	"os"
	"testing"

	"github.com/fhuszti/portfolio-ms-go/test/testutil"
)

var (
	minioEndpoint string
	redisAddr     string
)

func TestMain(m *testing.M) {
	code := func() int {
		if os.Getenv("TEST_DB_DSN") == "" {
			ci, err := testutil.StartMariaDBContainer()
			if err != nil {
				fmt.Fprintf(os.Stderr, "failed to start MariaDB: %v\n", err)
				return 1
			}
			defer ci.Cleanup()
			if err := os.Setenv("TEST_DB_DSN", ci.DSN); err != nil {
				fmt.Fprintf(os.Stderr, "failed to set TEST_DB_DSN: %v\n", err)
				return 1
			}
		}

		minioEndpoint = os.Getenv("TEST_MINIO_ENDPOINT")
		if minioEndpoint == "" {
			mi, err := testutil.StartMinIOContainer()
			if err != nil {
				fmt.Fprintf(os.Stderr, "failed to start MinIO: %v\n", err)
				return 1
			}
			defer mi.Cleanup()
			minioEndpoint = mi.Endpoint
		}

		redisAddr = os.Getenv("TEST_REDIS_ADDR")
		if redisAddr == "" {
			ri, err := testutil.StartRedisContainer()
			if err != nil {
				fmt.Fprintf(os.Stderr, "failed to start Redis: %v\n", err)
				return 1
			}
			defer ri.Cleanup()
			redisAddr = ri.Addr
		}

		return m.Run()
	}()
	os.Exit(code)
}
