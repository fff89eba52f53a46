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

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/controllers"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/middlewares"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/shared"
)

type ForecastRouter struct {
	*echo.Group
}

func NewForecastRouter(
	businessGroup BusinessRouter,
	forecastController *controllers.ForecastController,
	scenarioController *controllers.ScenarioController,
	decisionController *controllers.DecisionController,
	forecastRepository shared.ForecastRepository,
) ForecastRouter {
	forecastsRouter := businessGroup.Group.Group("/forecasts", middlewares.BusinessAccessControl(shared.ObjectForecast, shared.ActionRead))
	forecastsRouter.GET("/", forecastController.List)
	forecastsRouter.POST("/", forecastController.Create, middlewares.BusinessAccessControl(shared.ObjectForecast, shared.ActionCreate))

	/**
	Forecast scoped router
	*/
	forecastRouter := forecastsRouter.Group("/:forecastID", middlewares.ForecastMiddleware(forecastRepository))
	forecastRouter.GET("/", forecastController.Read)
	forecastRouter.GET("/summary/", forecastController.Summary)
	forecastRouter.GET("/export/", forecastController.Export)
	forecastRouter.GET("/audit-logs/", forecastController.AuditLogs)
	forecastRouter.GET("/lines/", forecastController.ListLines)
	forecastRouter.GET("/scenarios/", scenarioController.List)
	forecastRouter.GET("/decisions/", decisionController.List)

	forecastUpdateAccessControlRequired := forecastRouter.Group("", middlewares.BusinessAccessControl(shared.ObjectForecast, shared.ActionUpdate))
	forecastUpdateAccessControlRequired.PATCH("/", forecastController.Update)
	forecastUpdateAccessControlRequired.POST("/import/", forecastController.Import)

	forecastUpdateAccessControlRequired.POST("/lines/", forecastController.CreateLine)
	forecastUpdateAccessControlRequired.PATCH("/lines/:lineID/", forecastController.UpdateLine)
	forecastUpdateAccessControlRequired.DELETE("/lines/:lineID/", forecastController.DeleteLine)

	forecastUpdateAccessControlRequired.POST("/scenarios/", scenarioController.Create)
	forecastUpdateAccessControlRequired.PATCH("/scenarios/:scenarioID/", scenarioController.Update)
	forecastUpdateAccessControlRequired.DELETE("/scenarios/:scenarioID/", scenarioController.Delete)
	forecastUpdateAccessControlRequired.POST("/scenarios/:scenarioID/apply/", scenarioController.Apply)
	forecastUpdateAccessControlRequired.POST("/apply-scenario/", scenarioController.ApplyChanges)

	forecastUpdateAccessControlRequired.POST("/decisions/", decisionController.Create)
	forecastUpdateAccessControlRequired.PATCH("/decisions/:decisionID/", decisionController.Update)
	forecastUpdateAccessControlRequired.PUT("/decisions/:decisionID/status/", decisionController.Transition)
	forecastUpdateAccessControlRequired.DELETE("/decisions/:decisionID/", decisionController.Delete)

	forecastRouter.DELETE("/", forecastController.Delete, middlewares.BusinessAccessControl(shared.ObjectForecast, shared.ActionDelete))

	return ForecastRouter{Group: forecastRouter}
}
