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

package services

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/database/models"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/dtos"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/mocks"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/shared"
)

func runTransaction(f func(tx shared.DB) error) error {
	return f(nil)
}

func TestApplyScenario(t *testing.T) {
	forecast := models.Forecast{Model: models.Model{ID: uuid.New()}, BusinessID: uuid.New()}
	sales := plLine("Sales", models.CategoryRevenue, models.MonthlyValues{"2025-01": dec("1000")})
	rent := plLine("Rent", models.CategoryOperatingExpenses, models.MonthlyValues{"2025-01": dec("500")})

	t.Run("should update the lines, audit and mark the scenario applied", func(t *testing.T) {
		scenarioRepository := mocks.NewForecastScenarioRepository(t)
		plLineRepository := mocks.NewPLLineRepository(t)
		auditLogger := mocks.NewAuditLogger(t)

		scenario := models.ForecastScenario{Model: models.Model{ID: uuid.New()}, RevenueChange: dec("20")}

		scenarioRepository.On("Transaction", mock.Anything).Return(runTransaction)
		plLineRepository.On("ListByForecastID", mock.Anything, forecast.ID).Return([]models.PLLine{sales, rent}, nil)
		plLineRepository.On("SaveBatch", mock.Anything, mock.MatchedBy(func(lines []models.PLLine) bool {
			return len(lines) == 1 && lines[0].ID == sales.ID && dec("1200").Equal(lines[0].Values()["2025-01"])
		})).Return(nil)
		auditLogger.On("Log", mock.Anything, mock.MatchedBy(func(entry models.ForecastAuditLog) bool {
			return entry.Action == models.AuditActionApply &&
				entry.EntityType == EntityScenario &&
				*entry.EntityID == scenario.ID &&
				entry.Changes["changedLines"] == 1
		})).Return(nil)
		scenarioRepository.On("Save", mock.Anything, &scenario).Return(nil)

		s := NewScenarioService(scenarioRepository, plLineRepository, auditLogger)
		lines, err := s.ApplyScenario("user", forecast, &scenario)
		assert.Nil(t, err)
		assert.Len(t, lines, 2)
		assert.True(t, dec("1200").Equal(lines[0].Values()["2025-01"]))
		assert.True(t, dec("500").Equal(lines[1].Values()["2025-01"]))
		assert.NotNil(t, scenario.AppliedAt)
		assert.Equal(t, "user", *scenario.AppliedBy)
	})

	t.Run("should fail as a whole if the audit log cannot be written", func(t *testing.T) {
		scenarioRepository := mocks.NewForecastScenarioRepository(t)
		plLineRepository := mocks.NewPLLineRepository(t)
		auditLogger := mocks.NewAuditLogger(t)

		scenarioRepository.On("Transaction", mock.Anything).Return(runTransaction)
		plLineRepository.On("ListByForecastID", mock.Anything, forecast.ID).Return([]models.PLLine{sales, rent}, nil)
		plLineRepository.On("SaveBatch", mock.Anything, mock.Anything).Return(nil)
		auditLogger.On("Log", mock.Anything, mock.Anything).Return(fmt.Errorf("connection lost"))

		s := NewScenarioService(scenarioRepository, plLineRepository, auditLogger)
		_, err := s.ApplyChanges("user", forecast, dtos.ScenarioChanges{OperatingExpensesChange: dec("-10")})
		assert.EqualError(t, err, "connection lost")
	})

	t.Run("should not write lines without any change", func(t *testing.T) {
		scenarioRepository := mocks.NewForecastScenarioRepository(t)
		plLineRepository := mocks.NewPLLineRepository(t)
		auditLogger := mocks.NewAuditLogger(t)

		scenarioRepository.On("Transaction", mock.Anything).Return(runTransaction)
		plLineRepository.On("ListByForecastID", mock.Anything, forecast.ID).Return([]models.PLLine{sales, rent}, nil)
		auditLogger.On("Log", mock.Anything, mock.MatchedBy(func(entry models.ForecastAuditLog) bool {
			return entry.EntityType == EntityForecast
		})).Return(nil)

		s := NewScenarioService(scenarioRepository, plLineRepository, auditLogger)
		lines, err := s.ApplyChanges("user", forecast, dtos.ScenarioChanges{})
		assert.Nil(t, err)
		assert.Equal(t, []models.PLLine{sales, rent}, lines)
		plLineRepository.AssertNotCalled(t, "SaveBatch", mock.Anything, mock.Anything)
	})
}
