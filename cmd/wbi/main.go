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

package main

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/accesscontrol"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/cmd/wbi/api"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/config"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/controllers"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/database"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/database/repositories"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/monitoring"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/router"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/services"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/shared"
)

func main() {
	shared.LoadConfig() // nolint: errcheck
	cfg := config.MustLoad()
	shared.InitLogger(cfg.LogLevel)

	if cfg.ErrorTrackingDSN != "" {
		initSentry(cfg)

		// Catch panics
		defer func() {
			if err := recover(); err != nil {
				sentry.CurrentHub().Recover(err)
				// Wait for events to be send to server
				sentry.Flush(time.Second * 5)
			}
		}()
	}

	shutdownTracing, err := monitoring.InitTracing(context.Background(), cfg.OTel, cfg.Environment)
	if err != nil {
		slog.Error("could not initialize tracing", "err", err)
		panic(err)
	}

	pool, err := database.NewPgxConnPool(database.NewPoolConfig(cfg.Postgres))
	if err != nil {
		slog.Error(err.Error())
		panic(errors.New("Failed to setup database connection"))
	}

	db, err := database.NewGormDB(pool)
	if err != nil {
		slog.Error(err.Error())
		panic(errors.New("Failed to setup database connection"))
	}

	if !cfg.DisableAutomigrate {
		slog.Info("running database migrations...")
		if err := database.RunMigrationsWithDB(db); err != nil {
			slog.Error("failed to run database migrations", "error", err)
			panic(errors.New("Failed to run database migrations"))
		}
	} else {
		slog.Info("automatic migrations disabled via DISABLE_AUTOMIGRATE=true")
	}

	fx.New(
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.SlogLogger{Logger: slog.Default()}
		}),
		fx.Supply(cfg),
		fx.Supply(db),
		fx.Supply(pool),
		fx.Provide(database.BrokerFactory),
		api.Module,
		repositories.Module,
		controllers.ControllerModule,
		services.ServiceModule,
		router.RouterModule,
		accesscontrol.AccessControlModule,

		fx.Invoke(func(lc fx.Lifecycle, pool *pgxpool.Pool) {
			lc.Append(fx.Hook{
				OnStop: func(ctx context.Context) error {
					pool.Close()
					return shutdownTracing(ctx)
				},
			})
		}),

		// we need to invoke all routers to register their routes
		fx.Invoke(func(APIV1Router router.APIV1Router) {}),
		fx.Invoke(func(SessionRouter router.SessionRouter) {}),
		fx.Invoke(func(BusinessRouter router.BusinessRouter) {}),
		fx.Invoke(func(ForecastRouter router.ForecastRouter) {}),
	).Run()
}

func initSentry(cfg config.Config) {
	err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.ErrorTrackingDSN,
		Environment: cfg.Environment,
		Release:     config.Version,

		// In debug mode, the debug information is printed to stdout to help you
		// understand what Sentry is doing.
		Debug: cfg.Environment == "dev",

		AttachStacktrace: true,

		// By default, no such data is sent.
		SendDefaultPII: false,
	})
	if err != nil {
		slog.Error("Failed to init sentry", "err", err)
	}
}
