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
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/database/models"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/dtos"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/utils"
)

func ForecastCreateRequestToModel(c dtos.ForecastCreateRequest, business models.Business, userID string) models.Forecast {
	startMonth := c.StartMonth
	if startMonth == 0 {
		startMonth = business.FiscalYearStartMonth
	}
	if startMonth == 0 {
		startMonth = DefaultFiscalYearStartMonth
	}
	return models.Forecast{
		BusinessID: business.ID,
		Name:       strings.TrimSpace(c.Name),
		FiscalYear: c.FiscalYear,
		StartMonth: startMonth,
		IsActive:   c.IsActive,
		CreatedBy:  userID,
	}
}

func ApplyForecastPatchRequestToModel(p dtos.ForecastPatchRequest, forecast *models.Forecast) bool {
	updated := false
	if p.Name != nil {
		updated = true
		forecast.Name = strings.TrimSpace(*p.Name)
	}
	if p.FiscalYear != nil {
		updated = true
		forecast.FiscalYear = *p.FiscalYear
	}
	if p.StartMonth != nil {
		updated = true
		forecast.StartMonth = *p.StartMonth
	}
	if p.IsActive != nil {
		updated = true
		forecast.IsActive = *p.IsActive
	}
	return updated
}

func ForecastDTOFromModel(forecast models.Forecast) dtos.ForecastDTO {
	return dtos.ForecastDTO{
		ID:         forecast.ID,
		BusinessID: forecast.BusinessID,
		CreatedAt:  forecast.CreatedAt,
		UpdatedAt:  forecast.UpdatedAt,
		Name:       forecast.Name,
		FiscalYear: forecast.FiscalYear,
		StartMonth: forecast.StartMonth,
		IsActive:   forecast.IsActive,
		CreatedBy:  forecast.CreatedBy,
		Months:     forecast.Months(),
		Lines:      utils.Map(forecast.Lines, PLLineDTOFromModel),
	}
}

func PLLineCreateRequestToModel(c dtos.PLLineCreateRequest, forecastID uuid.UUID) models.PLLine {
	values := models.MonthlyValues{}
	for k, v := range c.MonthlyValues {
		values[k] = v
	}
	return models.PLLine{
		ForecastID:    forecastID,
		Name:          strings.TrimSpace(c.Name),
		Category:      models.PLCategory(c.Category),
		SortOrder:     c.SortOrder,
		MonthlyValues: datatypes.NewJSONType(values),
		Notes:         c.Notes,
	}
}

// ApplyPLLinePatchRequestToModel merges monthly values into the existing ones.
func ApplyPLLinePatchRequestToModel(p dtos.PLLinePatchRequest, line *models.PLLine) bool {
	updated := false
	if p.Name != nil {
		updated = true
		line.Name = strings.TrimSpace(*p.Name)
	}
	if p.Category != nil {
		updated = true
		line.Category = models.PLCategory(*p.Category)
	}
	if p.SortOrder != nil {
		updated = true
		line.SortOrder = *p.SortOrder
	}
	if p.Notes != nil {
		updated = true
		line.Notes = *p.Notes
	}
	if len(p.MonthlyValues) > 0 {
		updated = true
		values := models.MonthlyValues{}
		for k, v := range line.Values() {
			values[k] = v
		}
		for k, v := range p.MonthlyValues {
			values[k] = v
		}
		line.MonthlyValues = datatypes.NewJSONType(values)
	}
	return updated
}

func PLLineDTOFromModel(line models.PLLine) dtos.PLLineDTO {
	return dtos.PLLineDTO{
		ID:            line.ID,
		Name:          line.Name,
		Category:      string(line.Category),
		SortOrder:     line.SortOrder,
		MonthlyValues: line.Values(),
		Total:         line.Total(),
		Notes:         line.Notes,
	}
}

func ScenarioCreateRequestToModel(c dtos.ScenarioCreateRequest, forecast models.Forecast, userID string) models.ForecastScenario {
	return models.ForecastScenario{
		ForecastID:              forecast.ID,
		Name:                    strings.TrimSpace(c.Name),
		Description:             c.Description,
		RevenueChange:           c.RevenueChange,
		CostOfSalesChange:       c.CostOfSalesChange,
		OperatingExpensesChange: c.OperatingExpensesChange,
		CreatedBy:               userID,
	}
}

func ApplyScenarioPatchRequestToModel(p dtos.ScenarioPatchRequest, scenario *models.ForecastScenario) bool {
	updated := false
	if p.Name != nil {
		updated = true
		scenario.Name = strings.TrimSpace(*p.Name)
	}
	if p.Description != nil {
		updated = true
		scenario.Description = *p.Description
	}
	if p.RevenueChange != nil {
		updated = true
		scenario.RevenueChange = *p.RevenueChange
	}
	if p.CostOfSalesChange != nil {
		updated = true
		scenario.CostOfSalesChange = *p.CostOfSalesChange
	}
	if p.OperatingExpensesChange != nil {
		updated = true
		scenario.OperatingExpensesChange = *p.OperatingExpensesChange
	}
	return updated
}

func ScenarioChangesFromModel(scenario models.ForecastScenario) dtos.ScenarioChanges {
	return dtos.ScenarioChanges{
		RevenueChange:           scenario.RevenueChange,
		CostOfSalesChange:       scenario.CostOfSalesChange,
		OperatingExpensesChange: scenario.OperatingExpensesChange,
	}
}

func ScenarioDTOFromModel(scenario models.ForecastScenario) dtos.ScenarioDTO {
	return dtos.ScenarioDTO{
		ID:              scenario.ID,
		Name:            scenario.Name,
		Description:     scenario.Description,
		AppliedAt:       scenario.AppliedAt,
		AppliedBy:       scenario.AppliedBy,
		ScenarioChanges: ScenarioChangesFromModel(scenario),
	}
}

func DecisionCreateRequestToModel(c dtos.DecisionCreateRequest, forecast models.Forecast, userID string) models.ForecastDecision {
	return models.ForecastDecision{
		ForecastID:   forecast.ID,
		Title:        strings.TrimSpace(c.Title),
		Description:  c.Description,
		Rationale:    c.Rationale,
		Status:       models.DecisionStatusProposed,
		ImpactAmount: c.ImpactAmount,
		CreatedBy:    userID,
	}
}

func ApplyDecisionPatchRequestToModel(p dtos.DecisionPatchRequest, decision *models.ForecastDecision) bool {
	updated := false
	if p.Title != nil {
		updated = true
		decision.Title = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		updated = true
		decision.Description = *p.Description
	}
	if p.Rationale != nil {
		updated = true
		decision.Rationale = *p.Rationale
	}
	if p.ImpactAmount.Valid {
		updated = true
		decision.ImpactAmount = p.ImpactAmount
	}
	return updated
}

// AddTotals sums two totals field by field.
func AddTotals(a, b dtos.SummaryTotalsDTO) dtos.SummaryTotalsDTO {
	return dtos.SummaryTotalsDTO{
		Revenue:           a.Revenue.Add(b.Revenue),
		CostOfSales:       a.CostOfSales.Add(b.CostOfSales),
		GrossProfit:       a.GrossProfit.Add(b.GrossProfit),
		OperatingExpenses: a.OperatingExpenses.Add(b.OperatingExpenses),
		OtherIncome:       a.OtherIncome.Add(b.OtherIncome),
		OtherExpenses:     a.OtherExpenses.Add(b.OtherExpenses),
		NetProfit:         a.NetProfit.Add(b.NetProfit),
	}
}
