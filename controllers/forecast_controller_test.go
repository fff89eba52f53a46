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
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/database/models"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/dtos"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/mocks"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/shared"
)

const importCSV = "name,category,2024-07\nSales,Revenue,\"$1,000\"\n"

func readerContains(expected string) any {
	return mock.MatchedBy(func(r io.Reader) bool {
		b, err := io.ReadAll(r)
		return err == nil && string(b) == expected
	})
}

func TestForecastImport(t *testing.T) {
	result := dtos.ImportResultDTO{Created: 1, Months: []string{"2024-07"}, Warnings: []string{}}

	t.Run("reads a raw csv body and passes replace", func(t *testing.T) {
		forecastService := mocks.NewForecastService(t)
		forecastService.On("ImportCSV", "user-1", testForecast, readerContains(importCSV), true).Return(result, nil)

		ctx, rec := newBusinessContext(http.MethodPost, "/?replace=true", strings.NewReader(importCSV), "user-1", shared.RoleCoach)
		ctx.Request().Header.Set(echo.HeaderContentType, "text/csv")
		shared.SetForecast(ctx, testForecast)

		c := NewForecastController(nil, nil, nil, forecastService)
		require.NoError(t, c.Import(ctx))
		assert.Equal(t, http.StatusOK, rec.Code)

		var got dtos.ImportResultDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, 1, got.Created)
		assert.Equal(t, []string{"2024-07"}, got.Months)
	})

	t.Run("reads the file field of a multipart upload", func(t *testing.T) {
		var body bytes.Buffer
		w := multipart.NewWriter(&body)
		part, err := w.CreateFormFile("file", "forecast.csv")
		require.NoError(t, err)
		_, err = part.Write([]byte(importCSV))
		require.NoError(t, err)
		require.NoError(t, w.Close())

		forecastService := mocks.NewForecastService(t)
		forecastService.On("ImportCSV", "user-1", testForecast, readerContains(importCSV), false).Return(result, nil)

		ctx, rec := newBusinessContext(http.MethodPost, "/", &body, "user-1", shared.RoleCoach)
		ctx.Request().Header.Set(echo.HeaderContentType, w.FormDataContentType())
		shared.SetForecast(ctx, testForecast)

		c := NewForecastController(nil, nil, nil, forecastService)
		require.NoError(t, c.Import(ctx))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejects a multipart upload without file", func(t *testing.T) {
		var body bytes.Buffer
		w := multipart.NewWriter(&body)
		require.NoError(t, w.WriteField("replace", "true"))
		require.NoError(t, w.Close())

		ctx, _ := newBusinessContext(http.MethodPost, "/", &body, "user-1", shared.RoleCoach)
		ctx.Request().Header.Set(echo.HeaderContentType, w.FormDataContentType())
		shared.SetForecast(ctx, testForecast)

		c := NewForecastController(nil, nil, nil, mocks.NewForecastService(t))
		assertHTTPError(t, c.Import(ctx), http.StatusBadRequest)
	})
}

func TestForecastExport(t *testing.T) {
	forecastService := mocks.NewForecastService(t)
	forecastService.On("ExportCSV", testForecast, mock.Anything).Return(func(_ models.Forecast, w io.Writer) error {
		_, err := io.WriteString(w, "name,category,2024-07\n")
		return err
	})

	ctx, rec := newBusinessContext(http.MethodGet, "/", nil, "user-1", shared.RoleMember)
	shared.SetForecast(ctx, testForecast)

	c := NewForecastController(nil, nil, nil, forecastService)
	require.NoError(t, c.Export(ctx))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="q1-plan-fy2025.csv"`, rec.Header().Get(echo.HeaderContentDisposition))
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "name,category,2024-07\n", rec.Body.String())
}

func TestForecastLines(t *testing.T) {
	lineID := uuid.New()

	t.Run("a line of another forecast is not found", func(t *testing.T) {
		plLineRepository := mocks.NewPLLineRepository(t)
		plLineRepository.On("Read", lineID).Return(models.PLLine{Model: models.Model{ID: lineID}, ForecastID: uuid.New()}, nil)

		ctx, _ := newBusinessContext(http.MethodDelete, "/", nil, "user-1", shared.RoleCoach)
		shared.SetForecast(ctx, testForecast)
		setParam(ctx, "lineID", lineID.String())

		c := NewForecastController(nil, plLineRepository, nil, mocks.NewForecastService(t))
		assertHTTPError(t, c.DeleteLine(ctx), http.StatusNotFound)
	})

	t.Run("deletes a line of the forecast", func(t *testing.T) {
		line := models.PLLine{Model: models.Model{ID: lineID}, ForecastID: testForecast.ID, Name: "Sales", Category: models.CategoryRevenue}

		plLineRepository := mocks.NewPLLineRepository(t)
		plLineRepository.On("Read", lineID).Return(line, nil)
		forecastService := mocks.NewForecastService(t)
		forecastService.On("DeleteLine", "user-1", testForecast, line).Return(nil)

		ctx, rec := newBusinessContext(http.MethodDelete, "/", nil, "user-1", shared.RoleCoach)
		shared.SetForecast(ctx, testForecast)
		setParam(ctx, "lineID", lineID.String())

		c := NewForecastController(nil, plLineRepository, nil, forecastService)
		require.NoError(t, c.DeleteLine(ctx))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("rejects an unknown category", func(t *testing.T) {
		ctx, _ := newBusinessContext(http.MethodPost, "/", strings.NewReader(`{"name":"Sales","category":"Depreciation"}`), "user-1", shared.RoleCoach)
		ctx.Request().Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		shared.SetForecast(ctx, testForecast)

		c := NewForecastController(nil, nil, nil, mocks.NewForecastService(t))
		assertHTTPError(t, c.CreateLine(ctx), http.StatusBadRequest)
	})
}

func TestScenarioApply(t *testing.T) {
	scenarioID := uuid.New()

	t.Run("a scenario of another forecast is not found", func(t *testing.T) {
		forecastScenarioRepository := mocks.NewForecastScenarioRepository(t)
		forecastScenarioRepository.On("Read", scenarioID).Return(models.ForecastScenario{Model: models.Model{ID: scenarioID}, ForecastID: uuid.New()}, nil)

		ctx, _ := newBusinessContext(http.MethodPost, "/", nil, "user-1", shared.RoleCoach)
		shared.SetForecast(ctx, testForecast)
		setParam(ctx, "scenarioID", scenarioID.String())

		c := NewScenarioController(forecastScenarioRepository, mocks.NewScenarioService(t))
		assertHTTPError(t, c.Apply(ctx), http.StatusNotFound)
	})

	t.Run("returns the scenario and the updated lines", func(t *testing.T) {
		scenario := models.ForecastScenario{Model: models.Model{ID: scenarioID}, ForecastID: testForecast.ID, Name: "Growth"}
		lines := []models.PLLine{{Model: models.Model{ID: uuid.New()}, ForecastID: testForecast.ID, Name: "Sales", Category: models.CategoryRevenue}}

		forecastScenarioRepository := mocks.NewForecastScenarioRepository(t)
		forecastScenarioRepository.On("Read", scenarioID).Return(scenario, nil)
		scenarioService := mocks.NewScenarioService(t)
		scenarioService.On("ApplyScenario", "user-1", testForecast, mock.AnythingOfType("*models.ForecastScenario")).Return(lines, nil)

		ctx, rec := newBusinessContext(http.MethodPost, "/", nil, "user-1", shared.RoleCoach)
		shared.SetForecast(ctx, testForecast)
		setParam(ctx, "scenarioID", scenarioID.String())

		c := NewScenarioController(forecastScenarioRepository, scenarioService)
		require.NoError(t, c.Apply(ctx))
		assert.Equal(t, http.StatusOK, rec.Code)

		var got dtos.ApplyScenarioResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.NotNil(t, got.Scenario)
		assert.Equal(t, "Growth", got.Scenario.Name)
		require.Len(t, got.Lines, 1)
		assert.Equal(t, "Sales", got.Lines[0].Name)
	})
}

func TestDecisionTransition(t *testing.T) {
	decisionID := uuid.New()
	decision := models.ForecastDecision{Model: models.Model{ID: decisionID}, ForecastID: testForecast.ID, Title: "Hire", Status: models.DecisionStatusProposed}

	t.Run("rejects unknown target states", func(t *testing.T) {
		forecastDecisionRepository := mocks.NewForecastDecisionRepository(t)
		forecastDecisionRepository.On("Read", decisionID).Return(decision, nil)

		ctx, _ := newBusinessContext(http.MethodPut, "/", strings.NewReader(`{"status":"proposed"}`), "user-1", shared.RoleCoach)
		ctx.Request().Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		shared.SetForecast(ctx, testForecast)
		setParam(ctx, "decisionID", decisionID.String())

		c := NewDecisionController(forecastDecisionRepository, mocks.NewDecisionService(t))
		assertHTTPError(t, c.Transition(ctx), http.StatusBadRequest)
	})

	t.Run("passes the conflict of the service through", func(t *testing.T) {
		forecastDecisionRepository := mocks.NewForecastDecisionRepository(t)
		forecastDecisionRepository.On("Read", decisionID).Return(decision, nil)
		decisionService := mocks.NewDecisionService(t)
		decisionService.On("Transition", "user-1", testForecast, mock.Anything, models.DecisionStatusImplemented).
			Return(echo.NewHTTPError(http.StatusConflict, "a proposed decision cannot become implemented"))

		ctx, _ := newBusinessContext(http.MethodPut, "/", strings.NewReader(`{"status":"implemented"}`), "user-1", shared.RoleCoach)
		ctx.Request().Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		shared.SetForecast(ctx, testForecast)
		setParam(ctx, "decisionID", decisionID.String())

		c := NewDecisionController(forecastDecisionRepository, decisionService)
		assertHTTPError(t, c.Transition(ctx), http.StatusConflict)
	})
}
