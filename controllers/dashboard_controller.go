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

package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/dtos"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/shared"
)

type DashboardController struct {
	dashboardService shared.DashboardService
}

func NewDashboardController(dashboardService shared.DashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

func (c *DashboardController) Read(ctx shared.Context) error {
	dashboard, err := c.dashboardService.Dashboard(shared.GetBusiness(ctx).ID, currentUserID(ctx))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not build dashboard").WithInternal(err)
	}
	return ctx.JSON(http.StatusOK, dashboard)
}

type AdminController struct {
	backfillService shared.BackfillService
}

func NewAdminController(backfillService shared.BackfillService) *AdminController {
	return &AdminController{
		backfillService: backfillService,
	}
}

func (c *AdminController) BackfillProfiles(ctx shared.Context) error {
	updated, err := c.backfillService.BackfillProfiles()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not backfill profiles").WithInternal(err)
	}
	return ctx.JSON(http.StatusOK, dtos.BackfillResultDTO{Updated: updated})
}

func (c *AdminController) BackfillSlugs(ctx shared.Context) error {
	updated, err := c.backfillService.BackfillSlugs()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not backfill slugs").WithInternal(err)
	}
	return ctx.JSON(http.StatusOK, dtos.BackfillResultDTO{Updated: updated})
}
