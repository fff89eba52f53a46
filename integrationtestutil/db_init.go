// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package integrationtestutil

import (
	"context"
	"log"
	"log/slog"
	"testing"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/database"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/shared"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

const (
	dbName     = "wbi"
	dbUser     = "user"
	dbPassword = "password"
)

// InitDatabaseContainer starts a postgres container, runs the embedded migrations
// and returns the gorm db, the underlying pool and a terminate function.
// The test is skipped if no container runtime is available.
func InitDatabaseContainer(t *testing.T) (shared.DB, *pgxpool.Pool, func()) {
	t.Helper()
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()

	postgresC, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		postgres.BasicWaitStrategies(),
	)

	terminate := func() {
		if err := testcontainers.TerminateContainer(postgresC); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}
	if err != nil {
		slog.Info("failed to start postgres container", "error", err)
		t.Fatal(err)
	}

	host, _ := postgresC.Host(ctx)
	port, _ := postgresC.MappedPort(ctx, "5432")

	pool, err := database.NewPgxConnPool(database.PoolConfig{
		User:         dbUser,
		Password:     dbPassword,
		Host:         host,
		Port:         port.Port(),
		DBName:       dbName,
		MaxOpenConns: 10,
		MinConns:     1,
	})
	if err != nil {
		terminate()
		t.Fatal(err)
	}

	db, err := database.NewGormDB(pool)
	if err != nil {
		terminate()
		t.Fatal(err)
	}

	if err := database.RunMigrationsWithDB(db); err != nil {
		terminate()
		t.Fatal(err)
	}

	return db, pool, func() {
		pool.Close()
		terminate()
	}
}
