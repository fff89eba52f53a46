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

package router

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/cmd/wbi/api"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/config"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/database"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/shared"
)

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Broker   string `json:"broker"`
}

type InfoResponse struct {
	Version   string `json:"version,omitempty"`
	Commit    string `json:"commit,omitempty"`
	Branch    string `json:"branch,omitempty"`
	BuildDate string `json:"buildDate,omitempty"`

	Environment string `json:"environment"`
	Uptime      string `json:"uptime"`
	GoVersion   string `json:"goVersion"`
	Goroutines  int    `json:"goroutines"`
	HeapAlloc   uint64 `json:"heapAlloc"`

	Database DatabaseInfo `json:"database"`
}

type MigrationInfo struct {
	Version uint    `json:"version"`
	Dirty   bool    `json:"dirty"`
	Error   *string `json:"error,omitempty"`
}

// DatabaseInfo never contains credentials.
type DatabaseInfo struct {
	Status    string         `json:"status"`
	Name      string         `json:"name"`
	Migration *MigrationInfo `json:"migration,omitempty"`

	MaxConns      int32 `json:"maxConns"`
	TotalConns    int32 `json:"totalConns"`
	IdleConns     int32 `json:"idleConns"`
	AcquiredConns int32 `json:"acquiredConns"`
}

type healthChecker interface {
	IsHealthy() bool
}

func status(ok bool) string {
	if ok {
		return "healthy"
	}
	return "unhealthy"
}

func pingDB(ctx context.Context, db shared.DB) bool {
	sqlDB, err := db.DB()
	if err != nil {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return sqlDB.PingContext(ctx) == nil
}

// healthHandler answers 503 when the database or the policy broker is gone.
func healthHandler(db shared.DB, broker shared.PubSubBroker) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		dbOK := pingDB(ctx.Request().Context(), db)
		brokerOK := true
		if hc, ok := broker.(healthChecker); ok {
			brokerOK = hc.IsHealthy()
		}

		code := http.StatusOK
		if !dbOK || !brokerOK {
			code = http.StatusServiceUnavailable
		}
		return ctx.JSON(code, HealthResponse{
			Status:   status(dbOK && brokerOK),
			Database: status(dbOK),
			Broker:   status(brokerOK),
		})
	}
}

func infoHandler(db shared.DB, pool *pgxpool.Pool, cfg config.Config) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		var mem runtime.MemStats
		runtime.ReadMemStats(&mem)

		resp := InfoResponse{
			Version:     config.Version,
			Commit:      config.Commit,
			Branch:      config.Branch,
			BuildDate:   config.BuildDate,
			Environment: cfg.Environment,
			Uptime:      time.Since(api.StartedAt).Truncate(time.Second).String(),
			GoVersion:   runtime.Version(),
			Goroutines:  runtime.NumGoroutine(),
			HeapAlloc:   mem.HeapAlloc,
			Database: DatabaseInfo{
				Name:     cfg.Postgres.DBName,
				MaxConns: database.NewPoolConfig(cfg.Postgres).MaxOpenConns,
			},
		}

		dbOK := pingDB(ctx.Request().Context(), db)
		resp.Database.Status = status(dbOK)
		if !dbOK {
			return ctx.JSON(http.StatusOK, resp)
		}

		if pool != nil {
			stats := pool.Stat()
			resp.Database.TotalConns = stats.TotalConns()
			resp.Database.IdleConns = stats.IdleConns()
			resp.Database.AcquiredConns = stats.AcquiredConns()
		}

		migration := &MigrationInfo{}
		if version, dirty, err := database.GetMigrationVersionWithDB(db); err != nil {
			msg := err.Error()
			migration.Error = &msg
		} else {
			migration.Version = version
			migration.Dirty = dirty
		}
		resp.Database.Migration = migration

		return ctx.JSON(http.StatusOK, resp)
	}
}
