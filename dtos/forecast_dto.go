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

package dtos

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ForecastCreateRequest struct {
	Name       string `json:"name" validate:"required"`
	FiscalYear int    `json:"fiscalYear" validate:"required,min=1900,max=2200"`
	StartMonth int    `json:"startMonth" validate:"omitempty,min=1,max=12"`
	IsActive   bool   `json:"isActive"`
}

type ForecastPatchRequest struct {
	Name       *string `json:"name"`
	FiscalYear *int    `json:"fiscalYear" validate:"omitempty,min=1900,max=2200"`
	StartMonth *int    `json:"startMonth" validate:"omitempty,min=1,max=12"`
	IsActive   *bool   `json:"isActive"`
}

type PLLineCreateRequest struct {
	Name          string                     `json:"name" validate:"required"`
	Category      string                     `json:"category" validate:"required,oneof='Revenue' 'Cost of Sales' 'Operating Expenses' 'Other Income' 'Other Expenses'"`
	SortOrder     int                        `json:"sortOrder"`
	MonthlyValues map[string]decimal.Decimal `json:"monthlyValues"`
	Notes         string                     `json:"notes"`
}

type PLLinePatchRequest struct {
	Name          *string                    `json:"name"`
	Category      *string                    `json:"category" validate:"omitempty,oneof='Revenue' 'Cost of Sales' 'Operating Expenses' 'Other Income' 'Other Expenses'"`
	SortOrder     *int                       `json:"sortOrder"`
	MonthlyValues map[string]decimal.Decimal `json:"monthlyValues"`
	Notes         *string                    `json:"notes"`
}

// ScenarioChanges holds percentage deltas per category, e.g. 10 means +10%.
type ScenarioChanges struct {
	RevenueChange           decimal.Decimal `json:"revenueChange"`
	CostOfSalesChange       decimal.Decimal `json:"costOfSalesChange"`
	OperatingExpensesChange decimal.Decimal `json:"operatingExpensesChange"`
}

type ScenarioCreateRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	ScenarioChanges
}

type ScenarioPatchRequest struct {
	Name                    *string          `json:"name"`
	Description             *string          `json:"description"`
	RevenueChange           *decimal.Decimal `json:"revenueChange"`
	CostOfSalesChange       *decimal.Decimal `json:"costOfSalesChange"`
	OperatingExpensesChange *decimal.Decimal `json:"operatingExpensesChange"`
}

type SummaryTotalsDTO struct {
	Revenue           decimal.Decimal `json:"revenue"`
	CostOfSales       decimal.Decimal `json:"costOfSales"`
	GrossProfit       decimal.Decimal `json:"grossProfit"`
	OperatingExpenses decimal.Decimal `json:"operatingExpenses"`
	OtherIncome       decimal.Decimal `json:"otherIncome"`
	OtherExpenses     decimal.Decimal `json:"otherExpenses"`
	NetProfit         decimal.Decimal `json:"netProfit"`
}

type MonthSummaryDTO struct {
	Month string `json:"month"`
	SummaryTotalsDTO
}

type ForecastSummaryDTO struct {
	ForecastID uuid.UUID         `json:"forecastId"`
	Months     []MonthSummaryDTO `json:"months"`
	Total      SummaryTotalsDTO  `json:"total"`
}

type ImportResultDTO struct {
	Created  int      `json:"created"`
	Updated  int      `json:"updated"`
	Deleted  int      `json:"deleted"`
	Months   []string `json:"months"`
	Warnings []string `json:"warnings"`
}

type ApplyScenarioResponse struct {
	Scenario *ScenarioDTO `json:"scenario,omitempty"`
	Lines    []PLLineDTO  `json:"lines"`
}

type ScenarioDTO struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	AppliedAt   *time.Time `json:"appliedAt"`
	AppliedBy   *string    `json:"appliedBy"`
	ScenarioChanges
}

type PLLineDTO struct {
	ID            uuid.UUID                  `json:"id"`
	Name          string                     `json:"name"`
	Category      string                     `json:"category"`
	SortOrder     int                        `json:"sortOrder"`
	MonthlyValues map[string]decimal.Decimal `json:"monthlyValues"`
	Total         decimal.Decimal            `json:"total"`
	Notes         string                     `json:"notes"`
}

type ForecastDTO struct {
	ID         uuid.UUID   `json:"id"`
	BusinessID uuid.UUID   `json:"businessId"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
	Name       string      `json:"name"`
	FiscalYear int         `json:"fiscalYear"`
	StartMonth int         `json:"startMonth"`
	IsActive   bool        `json:"isActive"`
	CreatedBy  string      `json:"createdBy"`
	Months     []string    `json:"months"`
	Lines      []PLLineDTO `json:"lines,omitempty"`
}

type DecisionCreateRequest struct {
	Title        string              `json:"title" validate:"required"`
	Description  string              `json:"description"`
	Rationale    string              `json:"rationale"`
	ImpactAmount decimal.NullDecimal `json:"impactAmount"`
}

type DecisionPatchRequest struct {
	Title        *string             `json:"title"`
	Description  *string             `json:"description"`
	Rationale    *string             `json:"rationale"`
	ImpactAmount decimal.NullDecimal `json:"impactAmount"`
}

type DecisionStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected implemented"`
}
