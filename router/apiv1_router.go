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
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/cmd/wbi/api"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/config"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/controllers"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/middlewares"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/shared"
)

type APIV1Router struct {
	*echo.Group
}

func NewAPIV1Router(srv api.Server,
	db shared.DB,
	pool *pgxpool.Pool,
	broker shared.PubSubBroker,
	cfg config.Config,
	oryAdmin shared.AdminClient,
	adminController *controllers.AdminController,
) APIV1Router {
	apiV1Router := srv.Echo.Group("/api/v1")

	apiV1Router.GET("/health/", healthHandler(db, broker))
	apiV1Router.GET("/info/", infoHandler(db, pool, cfg))

	/**
	Admin router
	Only reachable with the X-Admin-Token header.
	*/
	adminRouter := apiV1Router.Group("/admin",
		middlewares.SessionMiddleware(oryAdmin, cfg.AdminToken),
		middlewares.AdminRequired(),
	)
	adminRouter.POST("/migrations/backfill-profiles/", adminController.BackfillProfiles)
	adminRouter.POST("/migrations/backfill-slugs/", adminController.BackfillSlugs)
	middlewares.AddProfileEndpoints(adminRouter.Group("/debug/pprof"))

	return APIV1Router{
		Group: apiV1Router,
	}
}
