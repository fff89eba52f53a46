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
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/database/models"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/dtos"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func plLine(name string, category models.PLCategory, values models.MonthlyValues) models.PLLine {
	return models.PLLine{
		Model:         models.Model{ID: uuid.New()},
		Name:          name,
		Category:      category,
		MonthlyValues: datatypes.NewJSONType(values),
	}
}

func TestSummarize(t *testing.T) {
	lines := []models.PLLine{
		plLine("Sales", models.CategoryRevenue, models.MonthlyValues{"2025-01": dec("1000"), "2025-02": dec("2000"), "2030-01": dec("99999")}),
		plLine("Materials", models.CategoryCostOfSales, models.MonthlyValues{"2025-01": dec("400")}),
		plLine("Rent", models.CategoryOperatingExpenses, models.MonthlyValues{"2025-01": dec("100"), "2025-02": dec("100")}),
		plLine("Interest", models.CategoryOtherIncome, models.MonthlyValues{"2025-02": dec("10")}),
		plLine("Fees", models.CategoryOtherExpenses, models.MonthlyValues{"2025-02": dec("5")}),
	}

	summary := summarize(uuid.Nil, []string{"2025-01", "2025-02"}, lines)

	assert.Len(t, summary.Months, 2)
	jan := summary.Months[0]
	assert.Equal(t, "2025-01", jan.Month)
	assert.True(t, dec("600").Equal(jan.GrossProfit))
	assert.True(t, dec("500").Equal(jan.NetProfit))

	feb := summary.Months[1]
	assert.True(t, dec("2000").Equal(feb.GrossProfit))
	assert.True(t, dec("1905").Equal(feb.NetProfit))

	assert.True(t, dec("3000").Equal(summary.Total.Revenue), "values outside of the forecast months are ignored")
	assert.True(t, dec("2405").Equal(summary.Total.NetProfit))
}

func TestApplyScenarioChanges(t *testing.T) {
	revenue := plLine("Sales", models.CategoryRevenue, models.MonthlyValues{"2025-01": dec("1000"), "2025-02": dec("250.50")})
	cos := plLine("Materials", models.CategoryCostOfSales, models.MonthlyValues{"2025-01": dec("400")})
	opex := plLine("Rent", models.CategoryOperatingExpenses, models.MonthlyValues{"2025-01": dec("100")})
	other := plLine("Interest", models.CategoryOtherIncome, models.MonthlyValues{"2025-01": dec("10")})
	lines := []models.PLLine{revenue, cos, opex, other}

	t.Run("should multiply every month by 1+p/100 of its category", func(t *testing.T) {
		changed := applyScenarioChanges(lines, dtos.ScenarioChanges{
			RevenueChange:           dec("10"),
			CostOfSalesChange:       dec("-25"),
			OperatingExpensesChange: dec("3.5"),
		})

		assert.Len(t, changed, 3)
		byName := map[string]models.PLLine{}
		for _, l := range changed {
			byName[l.Name] = l
		}
		assert.True(t, dec("1100").Equal(byName["Sales"].Values()["2025-01"]))
		assert.True(t, dec("275.55").Equal(byName["Sales"].Values()["2025-02"]))
		assert.True(t, dec("300").Equal(byName["Materials"].Values()["2025-01"]))
		assert.True(t, dec("103.5").Equal(byName["Rent"].Values()["2025-01"]))
		_, ok := byName["Interest"]
		assert.False(t, ok, "other income is never touched")
	})

	t.Run("should not compound or modify the input", func(t *testing.T) {
		applyScenarioChanges(lines, dtos.ScenarioChanges{RevenueChange: dec("10")})
		changed := applyScenarioChanges(lines, dtos.ScenarioChanges{RevenueChange: dec("10")})
		assert.True(t, dec("1100").Equal(changed[0].Values()["2025-01"]))
		assert.True(t, dec("1000").Equal(revenue.Values()["2025-01"]))
	})

	t.Run("zero change is the identity", func(t *testing.T) {
		changed := applyScenarioChanges(lines, dtos.ScenarioChanges{})
		assert.Empty(t, changed)
		merged := mergeLines(lines, changed)
		assert.Equal(t, lines, merged)
	})

	t.Run("merge keeps the order of all lines", func(t *testing.T) {
		changed := applyScenarioChanges(lines, dtos.ScenarioChanges{OperatingExpensesChange: dec("100")})
		merged := mergeLines(lines, changed)
		assert.Equal(t, []string{"Sales", "Materials", "Rent", "Interest"}, []string{merged[0].Name, merged[1].Name, merged[2].Name, merged[3].Name})
		assert.True(t, dec("200").Equal(merged[2].Values()["2025-01"]))
	})
}

func TestParseAmount(t *testing.T) {
	for _, tc := range []struct {
		in       string
		expected string
		ok       bool
	}{
		{"1234", "1234", true},
		{"$1,234.50", "1234.5", true},
		{"A$ 99", "99", true},
		{"AUD 1,000", "1000", true},
		{"€12", "12", true},
		{"(250)", "-250", true},
		{"-12.3", "-12.3", true},
		{"1 000", "1000", true},
		{"", "0", false},
		{"  ", "0", false},
		{"-", "0", false},
	} {
		t.Run(tc.in, func(t *testing.T) {
			v, ok, err := parseAmount(tc.in)
			assert.Nil(t, err)
			assert.Equal(t, tc.ok, ok)
			assert.True(t, dec(tc.expected).Equal(v), "got %s", v)
		})
	}

	t.Run("garbage", func(t *testing.T) {
		_, _, err := parseAmount("twelve")
		assert.Error(t, err)
	})
}

func TestNormalizeCategory(t *testing.T) {
	c, ok := normalizeCategory("  COST   of Sales ")
	assert.True(t, ok)
	assert.Equal(t, models.CategoryCostOfSales, c)

	c, ok = normalizeCategory("OpEx")
	assert.True(t, ok)
	assert.Equal(t, models.CategoryOperatingExpenses, c)

	_, ok = normalizeCategory("Depreciation")
	assert.False(t, ok)
}

func TestParseForecastCSV(t *testing.T) {
	t.Run("should parse currency formatted values", func(t *testing.T) {
		csv := "name,category,2024-07,Aug 2024\n" +
			"Consulting,Revenue,\"$12,000.00\",\"$13,500\"\n" +
			"Contractors,cogs,\"(1,000)\",\n" +
			",,,\n"

		parsed, err := parseForecastCSV(strings.NewReader(csv))
		assert.Nil(t, err)
		assert.Equal(t, []string{"2024-07", "2024-08"}, parsed.Months)
		assert.Len(t, parsed.Lines, 2)

		assert.Equal(t, "Consulting", parsed.Lines[0].Name)
		assert.True(t, dec("12000").Equal(parsed.Lines[0].Values["2024-07"]))
		assert.True(t, dec("13500").Equal(parsed.Lines[0].Values["2024-08"]))

		assert.Equal(t, models.CategoryCostOfSales, parsed.Lines[1].Category)
		assert.True(t, dec("-1000").Equal(parsed.Lines[1].Values["2024-07"]))
		_, ok := parsed.Lines[1].Values["2024-08"]
		assert.False(t, ok, "empty cells are not imported")
	})

	t.Run("should reject unknown categories", func(t *testing.T) {
		_, err := parseForecastCSV(strings.NewReader("name,category,2024-07\nCar,Depreciation,10\n"))
		assert.ErrorContains(t, err, `row 2: unknown category "Depreciation"`)
	})

	t.Run("should reject invalid headers", func(t *testing.T) {
		_, err := parseForecastCSV(strings.NewReader("title,category,2024-07\n"))
		assert.Error(t, err)

		_, err = parseForecastCSV(strings.NewReader("name,category,someday\n"))
		assert.ErrorContains(t, err, "invalid month column")
	})

	t.Run("should reject empty files", func(t *testing.T) {
		_, err := parseForecastCSV(strings.NewReader(""))
		assert.ErrorIs(t, err, errEmptyCSV)
	})

	t.Run("should merge duplicate lines with a warning", func(t *testing.T) {
		parsed, err := parseForecastCSV(strings.NewReader("\ufeffname,category,2024-07,2024-08\nSales,Revenue,1,\nSales,Revenue,,2\n"))
		assert.Nil(t, err)
		assert.Len(t, parsed.Lines, 1)
		assert.Len(t, parsed.Warnings, 1)
		assert.True(t, dec("1").Equal(parsed.Lines[0].Values["2024-07"]))
		assert.True(t, dec("2").Equal(parsed.Lines[0].Values["2024-08"]))
	})
}

func TestWriteForecastCSV(t *testing.T) {
	var buf bytes.Buffer
	err := writeForecastCSV(&buf, []string{"2024-07", "2024-08"}, []models.PLLine{
		plLine("Sales", models.CategoryRevenue, models.MonthlyValues{"2024-07": dec("1000.5")}),
	})
	assert.Nil(t, err)
	assert.Equal(t, "name,category,2024-07,2024-08\nSales,Revenue,1000.50,\n", buf.String())

	parsed, err := parseForecastCSV(&buf)
	assert.Nil(t, err)
	assert.True(t, dec("1000.5").Equal(parsed.Lines[0].Values["2024-07"]))
}
