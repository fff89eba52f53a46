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

package transformer

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/database/models"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/dtos"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/utils"
)

func TestBusinessCreateRequestToModel(t *testing.T) {
	t.Run("should apply the defaults and generate a slug", func(t *testing.T) {
		business := BusinessCreateRequestToModel(dtos.BusinessCreateRequest{Name: " Smith & Sons Plumbing "})

		assert.Equal(t, "Smith & Sons Plumbing", business.Name)
		assert.Equal(t, "smith-and-sons-plumbing", business.Slug)
		assert.Equal(t, "AUD", business.Currency)
		assert.Equal(t, 7, business.FiscalYearStartMonth)
	})

	t.Run("should keep explicit values", func(t *testing.T) {
		business := BusinessCreateRequestToModel(dtos.BusinessCreateRequest{Name: "Acme", Currency: "nzd", FiscalYearStartMonth: 4})
		assert.Equal(t, "NZD", business.Currency)
		assert.Equal(t, 4, business.FiscalYearStartMonth)
	})
}

func TestApplyBusinessPatchRequestToModel(t *testing.T) {
	business := models.Business{Name: "Acme", Slug: "acme"}

	assert.False(t, ApplyBusinessPatchRequestToModel(dtos.BusinessPatchRequest{}, &business))

	updated := ApplyBusinessPatchRequestToModel(dtos.BusinessPatchRequest{Name: utils.Ptr("Acme Holdings")}, &business)
	assert.True(t, updated)
	assert.Equal(t, "Acme Holdings", business.Name)
	assert.Equal(t, "acme", business.Slug)
}

func TestForecastCreateRequestToModel(t *testing.T) {
	business := models.Business{Model: models.Model{ID: uuid.New()}, FiscalYearStartMonth: 4}

	forecast := ForecastCreateRequestToModel(dtos.ForecastCreateRequest{Name: "FY26", FiscalYear: 2026}, business, "user-1")
	assert.Equal(t, 4, forecast.StartMonth)
	assert.Equal(t, business.ID, forecast.BusinessID)
	assert.Equal(t, "user-1", forecast.CreatedBy)

	forecast = ForecastCreateRequestToModel(dtos.ForecastCreateRequest{Name: "FY26", FiscalYear: 2026, StartMonth: 1}, business, "user-1")
	assert.Equal(t, 1, forecast.StartMonth)
}

func TestApplyPLLinePatchRequestToModel(t *testing.T) {
	line := models.PLLine{
		Name:     "Sales",
		Category: models.CategoryRevenue,
		MonthlyValues: datatypes.NewJSONType(models.MonthlyValues{
			"2025-07": decimal.NewFromInt(100),
			"2025-08": decimal.NewFromInt(200),
		}),
	}

	updated := ApplyPLLinePatchRequestToModel(dtos.PLLinePatchRequest{
		MonthlyValues: map[string]decimal.Decimal{"2025-08": decimal.NewFromInt(250)},
	}, &line)

	assert.True(t, updated)
	values := line.Values()
	assert.True(t, decimal.NewFromInt(100).Equal(values["2025-07"]))
	assert.True(t, decimal.NewFromInt(250).Equal(values["2025-08"]))
}

func TestGoalDTOFromModel(t *testing.T) {
	goal := models.Goal{TargetValue: decimal.NewFromInt(1000), CurrentValue: decimal.NewFromInt(250), Status: models.GoalStatusActive}
	dto := GoalDTOFromModel(goal)
	assert.True(t, decimal.NewFromInt(25).Equal(dto.Progress))
	assert.Equal(t, "active", dto.Status)
}

func TestGoalCreateRequestDefaultsOwnerToCaller(t *testing.T) {
	goal := GoalCreateRequestToModel(dtos.GoalCreateRequest{Title: "Hire"}, uuid.New(), "user-1")
	assert.Equal(t, "user-1", goal.OwnerID)
	assert.Equal(t, models.GoalStatusActive, goal.Status)
}
