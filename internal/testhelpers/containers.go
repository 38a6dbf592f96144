package testhelpers

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/localnerve/propertyhub/internal/config"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/network"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Default images, overridable with POSTGRES_IMAGE, REDIS_IMAGE and MARIADB_IMAGE
const (
	DefaultPostgresImage = "postgres:17-alpine"
	DefaultRedisImage    = "redis:7-alpine"
	DefaultMariaDBImage  = "mariadb:11"
)

// DevContainers is a postgres and redis pair on a private network
type DevContainers struct {
	Network  *testcontainers.DockerNetwork
	Postgres testcontainers.Container
	Redis    testcontainers.Container

	DBHost   string
	DBPort   string
	RedisURL string
}

// Terminate stops every started container and removes the network.
// t may be nil when running outside a test.
func (dc *DevContainers) Terminate(t *testing.T) {
	ctx := context.Background()
	if dc.Redis != nil {
		if err := dc.Redis.Terminate(ctx); err != nil {
			logMessage(t, "Failed to terminate Redis: %v", err)
		}
	}
	if dc.Postgres != nil {
		if err := dc.Postgres.Terminate(ctx); err != nil {
			logMessage(t, "Failed to terminate Postgres: %v", err)
		}
	}
	if dc.Network != nil {
		if err := dc.Network.Remove(ctx); err != nil {
			logMessage(t, "Failed to remove network: %v", err)
		}
	}
}

// Config returns a configuration pointing at the containers, in JWT auth mode
func (dc *DevContainers) Config() *config.Config {
	return &config.Config{
		Port:              "3000",
		Environment:       "test",
		LogLevel:          "error",
		SiteBaseURL:       "http://localhost:3000",
		DBType:            "postgres",
		DBHost:            dc.DBHost,
		DBPort:            dc.DBPort,
		DBDatabase:        "propertyhub",
		DBUser:            "propertyhub",
		DBPassword:        "propertyhub",
		DBConnectionLimit: 5,
		AuthMode:          config.AuthModeJWT,
		JWTSecret:         TestJWTSecret,
		JWTTTLHours:       1,
		StaffRoles:        []string{"admin"},
		RedisURL:          dc.RedisURL,
		SettingsCacheTTL:  time.Minute,
		StatewideToken:    "haryana",
	}
}

// StartDevContainers starts postgres and, when withRedis is set, redis.
// It returns an error rather than failing so callers can skip without Docker.
func StartDevContainers(ctx context.Context, t *testing.T, withRedis bool) (*DevContainers, error) {
	dc := &DevContainers{}

	nw, err := network.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("create network: %w", err)
	}
	dc.Network = nw

	pgPort, err := nat.NewPort("tcp", "5432")
	if err != nil {
		dc.Terminate(t)
		return nil, err
	}
	pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        envOr("POSTGRES_IMAGE", DefaultPostgresImage),
			ExposedPorts: []string{string(pgPort)},
			Env: map[string]string{
				"POSTGRES_DB":       "propertyhub",
				"POSTGRES_USER":     "propertyhub",
				"POSTGRES_PASSWORD": "propertyhub",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(90 * time.Second),
			Networks:       []string{nw.Name},
			NetworkAliases: map[string][]string{nw.Name: {"postgres"}},
		},
		Started: true,
	})
	if err != nil {
		dc.Terminate(t)
		return nil, fmt.Errorf("start postgres: %w", err)
	}
	dc.Postgres = pg

	host, err := pg.Host(ctx)
	if err != nil {
		dc.Terminate(t)
		return nil, err
	}
	mapped, err := pg.MappedPort(ctx, pgPort)
	if err != nil {
		dc.Terminate(t)
		return nil, err
	}
	dc.DBHost, dc.DBPort = host, mapped.Port()
	logMessage(t, "DB_HOST=%s DB_PORT=%s", dc.DBHost, dc.DBPort)

	if !withRedis {
		return dc, nil
	}

	redisPort, err := nat.NewPort("tcp", "6379")
	if err != nil {
		dc.Terminate(t)
		return nil, err
	}
	rc, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:          envOr("REDIS_IMAGE", DefaultRedisImage),
			ExposedPorts:   []string{string(redisPort)},
			WaitingFor:     wait.ForListeningPort(redisPort).WithStartupTimeout(60 * time.Second),
			Networks:       []string{nw.Name},
			NetworkAliases: map[string][]string{nw.Name: {"redis"}},
		},
		Started: true,
	})
	if err != nil {
		dc.Terminate(t)
		return nil, fmt.Errorf("start redis: %w", err)
	}
	dc.Redis = rc

	redisHost, err := rc.Host(ctx)
	if err != nil {
		dc.Terminate(t)
		return nil, err
	}
	redisMapped, err := rc.MappedPort(ctx, redisPort)
	if err != nil {
		dc.Terminate(t)
		return nil, err
	}
	dc.RedisURL = fmt.Sprintf("redis://%s:%s/0", redisHost, redisMapped.Port())
	logMessage(t, "REDIS_URL=%s", dc.RedisURL)

	return dc, nil
}

// RequireDevContainers starts the containers or skips the test.
// Skipped under -short and when Docker is unavailable.
func RequireDevContainers(t *testing.T, withRedis bool) *DevContainers {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	dc, err := StartDevContainers(context.Background(), t, withRedis)
	if err != nil {
		t.Skipf("Containers unavailable: %v", err)
	}
	t.Cleanup(func() { dc.Terminate(t) })
	return dc
}

// RequireMariaDB starts a MariaDB container and returns a configuration for it,
// or skips the test like RequireDevContainers
func RequireMariaDB(t *testing.T) *config.Config {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	port, err := nat.NewPort("tcp", "3306")
	if err != nil {
		t.Fatalf("Invalid port: %v", err)
	}

	mdb, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        envOr("MARIADB_IMAGE", DefaultMariaDBImage),
			ExposedPorts: []string{string(port)},
			Env: map[string]string{
				"MARIADB_ROOT_PASSWORD": "rootpass",
				"MARIADB_DATABASE":      "propertyhub",
				"MARIADB_USER":          "propertyhub",
				"MARIADB_PASSWORD":      "propertyhub",
			},
			// The init server logs readiness once before the real server starts
			WaitingFor: wait.ForLog("ready for connections").
				WithOccurrence(2).
				WithStartupTimeout(120 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Skipf("MariaDB unavailable: %v", err)
	}
	t.Cleanup(func() {
		if err := mdb.Terminate(context.Background()); err != nil {
			logMessage(t, "Failed to terminate MariaDB: %v", err)
		}
	})

	host, err := mdb.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get MariaDB host: %v", err)
	}
	mapped, err := mdb.MappedPort(ctx, port)
	if err != nil {
		t.Fatalf("Failed to get MariaDB port: %v", err)
	}

	dc := &DevContainers{DBHost: host, DBPort: mapped.Port()}
	cfg := dc.Config()
	cfg.DBType = "mariadb"
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func logMessage(t *testing.T, format string, args ...any) {
	if t != nil {
		t.Logf(format, args...)
	} else {
		fmt.Printf(format+"\n", args...)
	}
}
