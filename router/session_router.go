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
	"github.com/labstack/echo/v4"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/config"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/controllers"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/middlewares"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/shared"
)

type SessionRouter struct {
	*echo.Group
}

func whoami(ctx echo.Context) error {
	return ctx.JSON(200, map[string]string{
		"userID": shared.GetSession(ctx).GetUserID(),
	})
}

func NewSessionRouter(
	apiV1Router APIV1Router,
	cfg config.Config,
	adminClient shared.AdminClient,
	memberController *controllers.MemberController,
	activeBusinessController *controllers.ActiveBusinessController,
	notificationController *controllers.NotificationController,
) SessionRouter {
	sessionRouter := apiV1Router.Group.Group("",
		middlewares.SessionMiddleware(adminClient, cfg.AdminToken),
		middlewares.SessionRequired(),
	)

	sessionRouter.GET("/whoami/", whoami)
	sessionRouter.POST("/accept-invitation/", memberController.AcceptInvitation)

	sessionRouter.GET("/active-business/", activeBusinessController.Get)
	sessionRouter.PUT("/active-business/", activeBusinessController.Set)

	notificationRouter := sessionRouter.Group("/notifications")
	notificationRouter.GET("/", notificationController.List)
	notificationRouter.POST("/read-all/", notificationController.MarkAllRead)
	notificationRouter.POST("/:notificationID/read/", notificationController.MarkRead)
	notificationRouter.DELETE("/:notificationID/", notificationController.Delete)

	return SessionRouter{Group: sessionRouter}
}
