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

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/dtos"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/shared"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/transformer"
)

type ActiveBusinessController struct {
	activeBusinessService shared.ActiveBusinessService
}

func NewActiveBusinessController(activeBusinessService shared.ActiveBusinessService) *ActiveBusinessController {
	return &ActiveBusinessController{activeBusinessService: activeBusinessService}
}

func (c *ActiveBusinessController) Get(ctx shared.Context) error {
	var requested *uuid.UUID
	if raw := ctx.QueryParam("business"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid business id").WithInternal(err)
		}
		requested = &id
	}

	business, role, err := c.activeBusinessService.Resolve(ctx.Request().Context(), currentUserID(ctx), requested)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, dtos.ActiveBusinessDTO{
		Business: transformer.BusinessDTOFromModel(business),
		Role:     string(role),
	})
}

func (c *ActiveBusinessController) Set(ctx shared.Context) error {
	var req dtos.ActiveBusinessRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	business, role, err := c.activeBusinessService.SetActive(ctx.Request().Context(), currentUserID(ctx), req.BusinessID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, dtos.ActiveBusinessDTO{
		Business: transformer.BusinessDTOFromModel(business),
		Role:     string(role),
	})
}
