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
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestForecastMonths(t *testing.T) {
	t.Run("fiscal year starting in july should begin in the previous calendar year", func(t *testing.T) {
		f := Forecast{FiscalYear: 2025, StartMonth: 7}
		months := f.Months()
		assert.Len(t, months, 12)
		assert.Equal(t, "2024-07", months[0])
		assert.Equal(t, "2025-06", months[11])
	})

	t.Run("calendar fiscal year", func(t *testing.T) {
		f := Forecast{FiscalYear: 2025, StartMonth: 1}
		months := f.Months()
		assert.Equal(t, "2025-01", months[0])
		assert.Equal(t, "2025-12", months[11])
	})

	t.Run("invalid start month falls back to january", func(t *testing.T) {
		f := Forecast{FiscalYear: 2025, StartMonth: 13}
		assert.Equal(t, "2025-01", f.Months()[0])
	})
}

func TestPLLineTotal(t *testing.T) {
	line := PLLine{MonthlyValues: datatypes.NewJSONType(MonthlyValues{
		"2025-01": decimal.RequireFromString("100.50"),
		"2025-02": decimal.RequireFromString("99.50"),
	})}
	assert.True(t, decimal.NewFromInt(200).Equal(line.Total()))

	assert.True(t, PLLine{}.Total().IsZero())
}

func TestGoalProgress(t *testing.T) {
	t.Run("zero target", func(t *testing.T) {
		assert.True(t, Goal{CurrentValue: decimal.NewFromInt(10)}.Progress().IsZero())
	})
	t.Run("half way", func(t *testing.T) {
		g := Goal{TargetValue: decimal.NewFromInt(200), CurrentValue: decimal.NewFromInt(100)}
		assert.True(t, decimal.NewFromInt(50).Equal(g.Progress()))
	})
	t.Run("capped at 100", func(t *testing.T) {
		g := Goal{TargetValue: decimal.NewFromInt(10), CurrentValue: decimal.NewFromInt(25)}
		assert.True(t, decimal.NewFromInt(100).Equal(g.Progress()))
	})
}

func TestDecisionStatusTransitions(t *testing.T) {
	assert.True(t, DecisionStatusProposed.CanTransitionTo(DecisionStatusApproved))
	assert.True(t, DecisionStatusProposed.CanTransitionTo(DecisionStatusRejected))
	assert.True(t, DecisionStatusApproved.CanTransitionTo(DecisionStatusImplemented))
	assert.False(t, DecisionStatusRejected.CanTransitionTo(DecisionStatusApproved))
	assert.False(t, DecisionStatusProposed.CanTransitionTo(DecisionStatusImplemented))
}
