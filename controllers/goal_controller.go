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

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/database/models"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/dtos"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/shared"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/transformer"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/utils"
)

type GoalController struct {
	goalRepository shared.GoalRepository
}

func NewGoalController(goalRepository shared.GoalRepository) *GoalController {
	return &GoalController{
		goalRepository: goalRepository,
	}
}

func (c *GoalController) readGoal(ctx shared.Context) (models.Goal, error) {
	goalID, err := uuidParam(ctx, "goalID")
	if err != nil {
		return models.Goal{}, err
	}
	goal, err := c.goalRepository.Read(goalID)
	if err != nil || goal.BusinessID != shared.GetBusiness(ctx).ID {
		return models.Goal{}, echo.NewHTTPError(http.StatusNotFound, "could not find goal")
	}
	return goal, nil
}

func (c *GoalController) List(ctx shared.Context) error {
	goals, err := c.goalRepository.ListByBusinessID(shared.GetBusiness(ctx).ID, ctx.QueryParam("status"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not list goals").WithInternal(err)
	}
	return ctx.JSON(http.StatusOK, utils.Map(goals, transformer.GoalDTOFromModel))
}

func (c *GoalController) Create(ctx shared.Context) error {
	var req dtos.GoalCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	goal := transformer.GoalCreateRequestToModel(req, shared.GetBusiness(ctx).ID, currentUserID(ctx))
	if goal.Title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}
	if goal.TargetValue.IsNegative() {
		return echo.NewHTTPError(http.StatusBadRequest, "target value must not be negative")
	}
	if err := c.goalRepository.Create(nil, &goal); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not create goal").WithInternal(err)
	}
	return ctx.JSON(http.StatusCreated, transformer.GoalDTOFromModel(goal))
}

func (c *GoalController) Read(ctx shared.Context) error {
	goal, err := c.readGoal(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, transformer.GoalDTOFromModel(goal))
}

func (c *GoalController) Update(ctx shared.Context) error {
	goal, err := c.readGoal(ctx)
	if err != nil {
		return err
	}

	var req dtos.GoalPatchRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	if transformer.ApplyGoalPatchRequestToModel(req, &goal) {
		if goal.Title == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "title is required")
		}
		if goal.TargetValue.IsNegative() {
			return echo.NewHTTPError(http.StatusBadRequest, "target value must not be negative")
		}
		if err := c.goalRepository.Save(nil, &goal); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "could not update goal").WithInternal(err)
		}
	}
	return ctx.JSON(http.StatusOK, transformer.GoalDTOFromModel(goal))
}

func (c *GoalController) Delete(ctx shared.Context) error {
	goal, err := c.readGoal(ctx)
	if err != nil {
		return err
	}
	if err := c.goalRepository.Delete(nil, goal.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not delete goal").WithInternal(err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
