// Package testutil starts throwaway dependencies for integration tests.
package testutil

import (
	"net"
	"testing"
	"time"

	"airline-backoffice/migrations"
	"airline-backoffice/pkg/database"
	"airline-backoffice/pkg/utils"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"go.uber.org/zap"
)

const (
	postgresImage = "postgres"
	postgresTag   = "16-alpine"
	containerTTL  = 300
)

// PostgresStart runs a migrated Postgres container for the duration of t.
// The test is skipped under -short or when no docker daemon is reachable.
func PostgresStart(t *testing.T) database.PgxIface {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("Could not construct docker pool: %s", err)
	}
	if err := pool.Client.Ping(); err != nil {
		t.Skipf("Could not connect to docker: %s", err)
	}
	pool.MaxWait = 60 * time.Second

	config := utils.DatabaseConfig{
		Name:     "airline_test",
		User:     "airline",
		Password: "secret",
		SSLMode:  "disable",
		MaxConns: 10,
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: postgresImage,
		Tag:        postgresTag,
		Env: []string{
			"POSTGRES_DB=" + config.Name,
			"POSTGRES_USER=" + config.User,
			"POSTGRES_PASSWORD=" + config.Password,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("Could not start resource: %s", err)
	}
	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("Could not purge resource: %s", err)
		}
	})
	_ = resource.Expire(containerTTL)

	config.Host, config.Port, err = net.SplitHostPort(resource.GetHostPort("5432/tcp"))
	if err != nil {
		t.Fatalf("Could not parse postgres address: %s", err)
	}

	var db database.PgxIface
	err = pool.Retry(func() error {
		db, err = database.InitDB(config)
		return err
	})
	if err != nil {
		t.Fatalf("Could not connect to postgres: %s", err)
	}
	t.Cleanup(db.Close)

	if err := database.Migrate(migrations.FS, config.DSN(), database.MigrateUp, zap.NewNop()); err != nil {
		t.Fatalf("Could not migrate database: %s", err)
	}

	return db
}
