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
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/database/models"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/mocks"
)

func linesByName(lines []models.PLLine) map[string]models.PLLine {
	res := make(map[string]models.PLLine, len(lines))
	for _, line := range lines {
		res[line.Name] = line
	}
	return res
}

func TestImportCSV(t *testing.T) {
	forecast := models.Forecast{Model: models.Model{ID: uuid.New()}, BusinessID: uuid.New(), FiscalYear: 2025, StartMonth: 1}

	t.Run("should merge the file into the existing lines by name", func(t *testing.T) {
		forecastRepository := mocks.NewForecastRepository(t)
		plLineRepository := mocks.NewPLLineRepository(t)
		auditLogger := mocks.NewAuditLogger(t)

		sales := plLine("Sales", models.CategoryRevenue, models.MonthlyValues{"2025-01": dec("100"), "2025-02": dec("50")})
		sales.ForecastID = forecast.ID

		var upserted []models.PLLine
		forecastRepository.On("Transaction", mock.Anything).Return(runTransaction)
		plLineRepository.On("ListByForecastID", mock.Anything, forecast.ID).Return([]models.PLLine{sales}, nil)
		plLineRepository.On("UpsertByName", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			upserted = args.Get(1).([]models.PLLine)
		}).Return(nil)
		auditLogger.On("Log", mock.Anything, mock.MatchedBy(func(entry models.ForecastAuditLog) bool {
			return entry.Action == models.AuditActionImport &&
				entry.EntityType == EntityForecast &&
				entry.UserID == "user" &&
				entry.Changes["created"] == 1 &&
				entry.Changes["updated"] == 1 &&
				entry.Changes["replace"] == false
		})).Return(nil)

		s := NewForecastService(forecastRepository, plLineRepository, auditLogger)
		csv := "name,category,2025-01,2025-03\nSales,Revenue,120,130\nRent,Opex,500,\n"
		result, err := s.ImportCSV("user", forecast, strings.NewReader(csv), false)
		assert.Nil(t, err)
		assert.Equal(t, 1, result.Created)
		assert.Equal(t, 1, result.Updated)
		assert.Equal(t, 0, result.Deleted)
		assert.Equal(t, []string{"2025-01", "2025-03"}, result.Months)
		assert.Empty(t, result.Warnings)

		byName := linesByName(upserted)
		assert.Len(t, byName, 2)

		updated := byName["Sales"]
		assert.Equal(t, sales.ID, updated.ID)
		assert.True(t, dec("120").Equal(updated.Values()["2025-01"]))
		assert.True(t, dec("50").Equal(updated.Values()["2025-02"]), "months missing in the file keep their value")
		assert.True(t, dec("130").Equal(updated.Values()["2025-03"]))

		created := byName["Rent"]
		assert.NotEqual(t, uuid.Nil, created.ID)
		assert.Equal(t, forecast.ID, created.ForecastID)
		assert.Equal(t, models.CategoryOperatingExpenses, created.Category)
		assert.Equal(t, 2, created.SortOrder)
		assert.Len(t, created.Values(), 1)
	})

	t.Run("should delete all existing lines first when replacing", func(t *testing.T) {
		forecastRepository := mocks.NewForecastRepository(t)
		plLineRepository := mocks.NewPLLineRepository(t)
		auditLogger := mocks.NewAuditLogger(t)

		sales := plLine("Sales", models.CategoryRevenue, models.MonthlyValues{"2025-02": dec("50")})
		rent := plLine("Rent", models.CategoryOperatingExpenses, models.MonthlyValues{"2025-01": dec("10")})

		var upserted []models.PLLine
		forecastRepository.On("Transaction", mock.Anything).Return(runTransaction)
		plLineRepository.On("ListByForecastID", mock.Anything, forecast.ID).Return([]models.PLLine{sales, rent}, nil)
		plLineRepository.On("DeleteByForecastID", mock.Anything, forecast.ID).Return(nil)
		plLineRepository.On("UpsertByName", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			upserted = args.Get(1).([]models.PLLine)
		}).Return(nil)
		auditLogger.On("Log", mock.Anything, mock.MatchedBy(func(entry models.ForecastAuditLog) bool {
			return entry.Changes["deleted"] == 2 && entry.Changes["replace"] == true
		})).Return(nil)

		s := NewForecastService(forecastRepository, plLineRepository, auditLogger)
		result, err := s.ImportCSV("user", forecast, strings.NewReader("name,category,2025-01\nSales,Revenue,120\n"), true)
		assert.Nil(t, err)
		assert.Equal(t, 2, result.Deleted)
		assert.Equal(t, 1, result.Created)
		assert.Equal(t, 0, result.Updated)

		assert.Len(t, upserted, 1)
		assert.NotEqual(t, sales.ID, upserted[0].ID)
		assert.Equal(t, 0, upserted[0].SortOrder)
		assert.Equal(t, models.MonthlyValues{"2025-01": dec("120")}, upserted[0].Values())
	})

	t.Run("should drop columns outside of the forecast months with a warning", func(t *testing.T) {
		forecastRepository := mocks.NewForecastRepository(t)
		plLineRepository := mocks.NewPLLineRepository(t)
		auditLogger := mocks.NewAuditLogger(t)

		var upserted []models.PLLine
		forecastRepository.On("Transaction", mock.Anything).Return(runTransaction)
		plLineRepository.On("ListByForecastID", mock.Anything, forecast.ID).Return(nil, nil)
		plLineRepository.On("UpsertByName", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			upserted = args.Get(1).([]models.PLLine)
		}).Return(nil)
		auditLogger.On("Log", mock.Anything, mock.Anything).Return(nil)

		s := NewForecastService(forecastRepository, plLineRepository, auditLogger)
		result, err := s.ImportCSV("user", forecast, strings.NewReader("name,category,2025-01,2026-01\nSales,Revenue,100,200\n"), false)
		assert.Nil(t, err)
		assert.Equal(t, []string{"2025-01"}, result.Months)
		assert.Len(t, result.Warnings, 1)
		assert.Contains(t, result.Warnings[0], "2026-01")

		assert.Len(t, upserted, 1)
		assert.Equal(t, models.MonthlyValues{"2025-01": dec("100")}, upserted[0].Values())
	})

	t.Run("should reject a file without any month of the forecast", func(t *testing.T) {
		s := NewForecastService(mocks.NewForecastRepository(t), mocks.NewPLLineRepository(t), mocks.NewAuditLogger(t))
		_, err := s.ImportCSV("user", forecast, strings.NewReader("name,category,2024-12\nSales,Revenue,100\n"), false)
		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
	})

	t.Run("should reject a malformed file", func(t *testing.T) {
		s := NewForecastService(mocks.NewForecastRepository(t), mocks.NewPLLineRepository(t), mocks.NewAuditLogger(t))
		_, err := s.ImportCSV("user", forecast, strings.NewReader("name,category,2025-01\nSales,Unknown,100\n"), false)
		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
	})
}

func TestDeleteForecast(t *testing.T) {
	forecast := models.Forecast{Model: models.Model{ID: uuid.New()}, BusinessID: uuid.New(), Name: "Plan"}

	t.Run("should write an audit entry before deleting", func(t *testing.T) {
		forecastRepository := mocks.NewForecastRepository(t)
		auditLogger := mocks.NewAuditLogger(t)

		forecastRepository.On("Transaction", mock.Anything).Return(runTransaction)
		auditLogger.On("Log", mock.Anything, mock.MatchedBy(func(entry models.ForecastAuditLog) bool {
			return entry.Action == models.AuditActionDelete &&
				entry.EntityType == EntityForecast &&
				entry.BusinessID == forecast.BusinessID &&
				*entry.EntityID == forecast.ID &&
				entry.Changes["old"] != nil
		})).Return(nil)
		forecastRepository.On("Delete", mock.Anything, forecast.ID).Return(nil)

		s := NewForecastService(forecastRepository, mocks.NewPLLineRepository(t), auditLogger)
		assert.Nil(t, s.Delete("user", forecast))
	})

	t.Run("should keep the forecast if the audit entry cannot be written", func(t *testing.T) {
		forecastRepository := mocks.NewForecastRepository(t)
		auditLogger := mocks.NewAuditLogger(t)

		forecastRepository.On("Transaction", mock.Anything).Return(runTransaction)
		auditLogger.On("Log", mock.Anything, mock.Anything).Return(fmt.Errorf("connection lost"))

		s := NewForecastService(forecastRepository, mocks.NewPLLineRepository(t), auditLogger)
		assert.EqualError(t, s.Delete("user", forecast), "connection lost")
		forecastRepository.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
