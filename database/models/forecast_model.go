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

package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	databasetypes "github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/database/types"
)

type PLCategory string

const (
	CategoryRevenue           PLCategory = "Revenue"
	CategoryCostOfSales       PLCategory = "Cost of Sales"
	CategoryOperatingExpenses PLCategory = "Operating Expenses"
	CategoryOtherIncome       PLCategory = "Other Income"
	CategoryOtherExpenses     PLCategory = "Other Expenses"
)

// MonthlyValues maps a month key (YYYY-MM) to the amount of that month.
type MonthlyValues map[string]decimal.Decimal

func MonthKey(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}

type Forecast struct {
	Model
	BusinessID uuid.UUID `json:"businessId" gorm:"type:uuid;not null;index"`
	Business   Business  `json:"-" gorm:"foreignKey:BusinessID;constraint:OnDelete:CASCADE;"`
	Name       string    `json:"name" gorm:"type:text;not null"`
	FiscalYear int       `json:"fiscalYear" gorm:"not null"`
	StartMonth int       `json:"startMonth" gorm:"not null;default:7"`
	IsActive   bool      `json:"isActive" gorm:"default:false"`
	CreatedBy  string    `json:"createdBy" gorm:"type:text"`

	Lines []PLLine `json:"lines,omitempty" gorm:"foreignKey:ForecastID;constraint:OnDelete:CASCADE;"`
}

func (m Forecast) TableName() string {
	return "forecasts"
}

// Months returns the twelve month keys covered by the forecast.
// A fiscal year not starting in january begins in the previous calendar year,
// e.g. FY2025 starting in july covers 2024-07 until 2025-06.
func (m Forecast) Months() []string {
	startMonth := m.StartMonth
	if startMonth < 1 || startMonth > 12 {
		startMonth = 1
	}
	year := m.FiscalYear
	if startMonth != 1 {
		year--
	}
	start := time.Date(year, time.Month(startMonth), 1, 0, 0, 0, 0, time.UTC)
	months := make([]string, 0, 12)
	for i := range 12 {
		t := start.AddDate(0, i, 0)
		months = append(months, MonthKey(t.Year(), t.Month()))
	}
	return months
}

type PLLine struct {
	Model
	ForecastID    uuid.UUID                         `json:"forecastId" gorm:"type:uuid;not null;uniqueIndex:idx_pl_line_forecast_name"`
	Name          string                            `json:"name" gorm:"type:text;not null;uniqueIndex:idx_pl_line_forecast_name"`
	Category      PLCategory                        `json:"category" gorm:"type:text;not null"`
	SortOrder     int                               `json:"sortOrder" gorm:"default:0"`
	MonthlyValues datatypes.JSONType[MonthlyValues] `json:"monthlyValues" gorm:"type:jsonb"`
	Notes         string                            `json:"notes" gorm:"type:text"`
}

func (m PLLine) TableName() string {
	return "pl_lines"
}

func (m PLLine) Values() MonthlyValues {
	v := m.MonthlyValues.Data()
	if v == nil {
		return MonthlyValues{}
	}
	return v
}

func (m PLLine) Total() decimal.Decimal {
	total := decimal.Zero
	for _, v := range m.Values() {
		total = total.Add(v)
	}
	return total
}

type ForecastScenario struct {
	Model
	ForecastID              uuid.UUID       `json:"forecastId" gorm:"type:uuid;not null;index"`
	Forecast                Forecast        `json:"-" gorm:"foreignKey:ForecastID;constraint:OnDelete:CASCADE;"`
	Name                    string          `json:"name" gorm:"type:text;not null"`
	Description             string          `json:"description" gorm:"type:text"`
	RevenueChange           decimal.Decimal `json:"revenueChange" gorm:"type:numeric;default:0"`
	CostOfSalesChange       decimal.Decimal `json:"costOfSalesChange" gorm:"type:numeric;default:0"`
	OperatingExpensesChange decimal.Decimal `json:"operatingExpensesChange" gorm:"type:numeric;default:0"`
	AppliedAt               *time.Time      `json:"appliedAt"`
	AppliedBy               *string         `json:"appliedBy" gorm:"type:text"`
	CreatedBy               string          `json:"createdBy" gorm:"type:text"`
}

func (m ForecastScenario) TableName() string {
	return "forecast_scenarios"
}

type AuditAction string

const (
	AuditActionCreate AuditAction = "create"
	AuditActionUpdate AuditAction = "update"
	AuditActionDelete AuditAction = "delete"
	AuditActionImport AuditAction = "import"
	AuditActionApply  AuditAction = "apply_scenario"
	AuditActionStatus AuditAction = "status_change"
)

type ForecastAuditLog struct {
	ID         uuid.UUID           `json:"id" gorm:"primarykey;type:uuid;default:gen_random_uuid()"`
	CreatedAt  time.Time           `json:"createdAt" gorm:"index"`
	// zero once the forecast is deleted, the entry stays with the business
	ForecastID uuid.UUID           `json:"forecastId" gorm:"type:uuid;index"`
	BusinessID uuid.UUID           `json:"businessId" gorm:"type:uuid;not null;index"`
	UserID     string              `json:"userId" gorm:"type:text;not null"`
	Action     AuditAction         `json:"action" gorm:"type:text;not null"`
	EntityType string              `json:"entityType" gorm:"type:text;not null"`
	EntityID   *uuid.UUID          `json:"entityId" gorm:"type:uuid"`
	Changes    databasetypes.JSONB `json:"changes" gorm:"type:jsonb"`
}

func (m ForecastAuditLog) TableName() string {
	return "forecast_audit_logs"
}

type DecisionStatus string

const (
	DecisionStatusProposed    DecisionStatus = "proposed"
	DecisionStatusApproved    DecisionStatus = "approved"
	DecisionStatusRejected    DecisionStatus = "rejected"
	DecisionStatusImplemented DecisionStatus = "implemented"
)

// CanTransitionTo reports whether a decision in status s may move to next.
func (s DecisionStatus) CanTransitionTo(next DecisionStatus) bool {
	switch s {
	case DecisionStatusProposed:
		return next == DecisionStatusApproved || next == DecisionStatusRejected
	case DecisionStatusApproved:
		return next == DecisionStatusImplemented
	}
	return false
}

type ForecastDecision struct {
	Model
	ForecastID   uuid.UUID           `json:"forecastId" gorm:"type:uuid;not null;index"`
	Forecast     Forecast            `json:"-" gorm:"foreignKey:ForecastID;constraint:OnDelete:CASCADE;"`
	Title        string              `json:"title" gorm:"type:text;not null"`
	Description  string              `json:"description" gorm:"type:text"`
	Rationale    string              `json:"rationale" gorm:"type:text"`
	Status       DecisionStatus      `json:"status" gorm:"type:text;not null;default:'proposed'"`
	ImpactAmount decimal.NullDecimal `json:"impactAmount" gorm:"type:numeric"`
	DecidedBy    *string             `json:"decidedBy" gorm:"type:text"`
	DecidedAt    *time.Time          `json:"decidedAt"`
	CreatedBy    string              `json:"createdBy" gorm:"type:text"`
}

func (m ForecastDecision) TableName() string {
	return "forecast_decisions"
}
