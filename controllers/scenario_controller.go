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

type ScenarioController struct {
	forecastScenarioRepository shared.ForecastScenarioRepository
	scenarioService            shared.ScenarioService
}

func NewScenarioController(forecastScenarioRepository shared.ForecastScenarioRepository, scenarioService shared.ScenarioService) *ScenarioController {
	return &ScenarioController{
		forecastScenarioRepository: forecastScenarioRepository,
		scenarioService:            scenarioService,
	}
}

func (c *ScenarioController) readScenario(ctx shared.Context) (models.ForecastScenario, error) {
	scenarioID, err := uuidParam(ctx, "scenarioID")
	if err != nil {
		return models.ForecastScenario{}, err
	}
	scenario, err := c.forecastScenarioRepository.Read(scenarioID)
	if err != nil || scenario.ForecastID != shared.GetForecast(ctx).ID {
		return models.ForecastScenario{}, echo.NewHTTPError(http.StatusNotFound, "could not find scenario")
	}
	return scenario, nil
}

func (c *ScenarioController) List(ctx shared.Context) error {
	scenarios, err := c.forecastScenarioRepository.ListByForecastID(shared.GetForecast(ctx).ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not list scenarios").WithInternal(err)
	}
	return ctx.JSON(http.StatusOK, utils.Map(scenarios, transformer.ScenarioDTOFromModel))
}

func (c *ScenarioController) Create(ctx shared.Context) error {
	var req dtos.ScenarioCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	userID := currentUserID(ctx)
	forecast := shared.GetForecast(ctx)
	scenario := transformer.ScenarioCreateRequestToModel(req, forecast, userID)
	if err := c.scenarioService.Create(userID, forecast, &scenario); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not create scenario").WithInternal(err)
	}
	return ctx.JSON(http.StatusCreated, transformer.ScenarioDTOFromModel(scenario))
}

func (c *ScenarioController) Update(ctx shared.Context) error {
	before, err := c.readScenario(ctx)
	if err != nil {
		return err
	}

	var req dtos.ScenarioPatchRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	scenario := before
	if transformer.ApplyScenarioPatchRequestToModel(req, &scenario) {
		if scenario.Name == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "name is required")
		}
		if err := c.scenarioService.Update(currentUserID(ctx), shared.GetForecast(ctx), before, &scenario); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "could not update scenario").WithInternal(err)
		}
	}
	return ctx.JSON(http.StatusOK, transformer.ScenarioDTOFromModel(scenario))
}

func (c *ScenarioController) Delete(ctx shared.Context) error {
	scenario, err := c.readScenario(ctx)
	if err != nil {
		return err
	}
	if err := c.scenarioService.Delete(currentUserID(ctx), shared.GetForecast(ctx), scenario); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not delete scenario").WithInternal(err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (c *ScenarioController) Apply(ctx shared.Context) error {
	scenario, err := c.readScenario(ctx)
	if err != nil {
		return err
	}

	lines, err := c.scenarioService.ApplyScenario(currentUserID(ctx), shared.GetForecast(ctx), &scenario)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not apply scenario").WithInternal(err)
	}

	dto := transformer.ScenarioDTOFromModel(scenario)
	return ctx.JSON(http.StatusOK, dtos.ApplyScenarioResponse{
		Scenario: &dto,
		Lines:    utils.Map(lines, transformer.PLLineDTOFromModel),
	})
}

// ApplyChanges applies percentages sent with the request without storing a scenario.
func (c *ScenarioController) ApplyChanges(ctx shared.Context) error {
	var req dtos.ScenarioChanges
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	lines, err := c.scenarioService.ApplyChanges(currentUserID(ctx), shared.GetForecast(ctx), req)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not apply changes").WithInternal(err)
	}
	return ctx.JSON(http.StatusOK, dtos.ApplyScenarioResponse{
		Lines: utils.Map(lines, transformer.PLLineDTOFromModel),
	})
}

type DecisionController struct {
	forecastDecisionRepository shared.ForecastDecisionRepository
	decisionService            shared.DecisionService
}

func NewDecisionController(forecastDecisionRepository shared.ForecastDecisionRepository, decisionService shared.DecisionService) *DecisionController {
	return &DecisionController{
		forecastDecisionRepository: forecastDecisionRepository,
		decisionService:            decisionService,
	}
}

func (c *DecisionController) readDecision(ctx shared.Context) (models.ForecastDecision, error) {
	decisionID, err := uuidParam(ctx, "decisionID")
	if err != nil {
		return models.ForecastDecision{}, err
	}
	decision, err := c.forecastDecisionRepository.Read(decisionID)
	if err != nil || decision.ForecastID != shared.GetForecast(ctx).ID {
		return models.ForecastDecision{}, echo.NewHTTPError(http.StatusNotFound, "could not find decision")
	}
	return decision, nil
}

func (c *DecisionController) List(ctx shared.Context) error {
	decisions, err := c.forecastDecisionRepository.ListByForecastID(shared.GetForecast(ctx).ID, ctx.QueryParam("status"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not list decisions").WithInternal(err)
	}
	return ctx.JSON(http.StatusOK, decisions)
}

func (c *DecisionController) Create(ctx shared.Context) error {
	var req dtos.DecisionCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	userID := currentUserID(ctx)
	forecast := shared.GetForecast(ctx)
	decision := transformer.DecisionCreateRequestToModel(req, forecast, userID)
	if err := c.decisionService.Create(userID, forecast, &decision); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not create decision").WithInternal(err)
	}
	return ctx.JSON(http.StatusCreated, decision)
}

func (c *DecisionController) Update(ctx shared.Context) error {
	before, err := c.readDecision(ctx)
	if err != nil {
		return err
	}

	var req dtos.DecisionPatchRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	decision := before
	if transformer.ApplyDecisionPatchRequestToModel(req, &decision) {
		if decision.Title == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "title is required")
		}
		if err := c.decisionService.Update(currentUserID(ctx), shared.GetForecast(ctx), before, &decision); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "could not update decision").WithInternal(err)
		}
	}
	return ctx.JSON(http.StatusOK, decision)
}

func (c *DecisionController) Transition(ctx shared.Context) error {
	decision, err := c.readDecision(ctx)
	if err != nil {
		return err
	}

	var req dtos.DecisionStatusRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	if err := c.decisionService.Transition(currentUserID(ctx), shared.GetForecast(ctx), &decision, models.DecisionStatus(req.Status)); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, decision)
}

func (c *DecisionController) Delete(ctx shared.Context) error {
	decision, err := c.readDecision(ctx)
	if err != nil {
		return err
	}
	if err := c.decisionService.Delete(currentUserID(ctx), shared.GetForecast(ctx), decision); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not delete decision").WithInternal(err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
