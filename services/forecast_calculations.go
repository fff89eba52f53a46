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
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/datatypes"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/database/models"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/dtos"
)

var (
	hundred = decimal.NewFromInt(100)
	one     = decimal.NewFromInt(1)
)

func addToTotals(totals *dtos.SummaryTotalsDTO, category models.PLCategory, value decimal.Decimal) {
	switch category {
	case models.CategoryRevenue:
		totals.Revenue = totals.Revenue.Add(value)
	case models.CategoryCostOfSales:
		totals.CostOfSales = totals.CostOfSales.Add(value)
	case models.CategoryOperatingExpenses:
		totals.OperatingExpenses = totals.OperatingExpenses.Add(value)
	case models.CategoryOtherIncome:
		totals.OtherIncome = totals.OtherIncome.Add(value)
	case models.CategoryOtherExpenses:
		totals.OtherExpenses = totals.OtherExpenses.Add(value)
	}
}

func finishTotals(totals *dtos.SummaryTotalsDTO) {
	totals.GrossProfit = totals.Revenue.Sub(totals.CostOfSales)
	totals.NetProfit = totals.GrossProfit.
		Sub(totals.OperatingExpenses).
		Add(totals.OtherIncome).
		Sub(totals.OtherExpenses)
}

func zeroTotals() dtos.SummaryTotalsDTO {
	return dtos.SummaryTotalsDTO{
		Revenue:           decimal.Zero,
		CostOfSales:       decimal.Zero,
		GrossProfit:       decimal.Zero,
		OperatingExpenses: decimal.Zero,
		OtherIncome:       decimal.Zero,
		OtherExpenses:     decimal.Zero,
		NetProfit:         decimal.Zero,
	}
}

// summarize only looks at the given months, values stored for other months are ignored.
func summarize(forecastID uuid.UUID, months []string, lines []models.PLLine) dtos.ForecastSummaryDTO {
	summary := dtos.ForecastSummaryDTO{
		ForecastID: forecastID,
		Months:     make([]dtos.MonthSummaryDTO, 0, len(months)),
		Total:      zeroTotals(),
	}

	for _, month := range months {
		totals := zeroTotals()
		for _, line := range lines {
			if v, ok := line.Values()[month]; ok {
				addToTotals(&totals, line.Category, v)
				addToTotals(&summary.Total, line.Category, v)
			}
		}
		finishTotals(&totals)
		summary.Months = append(summary.Months, dtos.MonthSummaryDTO{Month: month, SummaryTotalsDTO: totals})
	}
	finishTotals(&summary.Total)
	return summary
}

func percentageFor(category models.PLCategory, changes dtos.ScenarioChanges) (decimal.Decimal, bool) {
	switch category {
	case models.CategoryRevenue:
		return changes.RevenueChange, true
	case models.CategoryCostOfSales:
		return changes.CostOfSalesChange, true
	case models.CategoryOperatingExpenses:
		return changes.OperatingExpensesChange, true
	}
	return decimal.Zero, false
}

// applyScenarioChanges multiplies every monthly value by 1+p/100 where p is the
// change of the category of the line. It returns the lines which changed.
func applyScenarioChanges(lines []models.PLLine, changes dtos.ScenarioChanges) []models.PLLine {
	changed := make([]models.PLLine, 0, len(lines))
	for _, line := range lines {
		p, ok := percentageFor(line.Category, changes)
		if !ok || p.IsZero() {
			continue
		}
		factor := one.Add(p.Div(hundred))

		values := make(models.MonthlyValues, len(line.Values()))
		for month, v := range line.Values() {
			values[month] = v.Mul(factor)
		}
		line.MonthlyValues = datatypes.NewJSONType(values)
		changed = append(changed, line)
	}
	return changed
}

// mergeLines replaces the lines in all with the same id as a line in changed.
func mergeLines(all []models.PLLine, changed []models.PLLine) []models.PLLine {
	byID := make(map[uuid.UUID]models.PLLine, len(changed))
	for _, line := range changed {
		byID[line.ID] = line
	}
	res := make([]models.PLLine, len(all))
	for i, line := range all {
		if c, ok := byID[line.ID]; ok {
			line = c
		}
		res[i] = line
	}
	return res
}

var categoryAliases = map[string]models.PLCategory{
	"revenue":             models.CategoryRevenue,
	"income":              models.CategoryRevenue,
	"sales":               models.CategoryRevenue,
	"cost of sales":       models.CategoryCostOfSales,
	"cost of goods sold":  models.CategoryCostOfSales,
	"cogs":                models.CategoryCostOfSales,
	"direct costs":        models.CategoryCostOfSales,
	"operating expenses":  models.CategoryOperatingExpenses,
	"operating expense":   models.CategoryOperatingExpenses,
	"opex":                models.CategoryOperatingExpenses,
	"expenses":            models.CategoryOperatingExpenses,
	"overheads":           models.CategoryOperatingExpenses,
	"other income":        models.CategoryOtherIncome,
	"other expenses":      models.CategoryOtherExpenses,
	"other expense":       models.CategoryOtherExpenses,
	"non-operating costs": models.CategoryOtherExpenses,
}

var lower = cases.Lower(language.Und)

func normalizeCategory(s string) (models.PLCategory, bool) {
	key := strings.Join(strings.Fields(lower.String(s)), " ")
	category, ok := categoryAliases[key]
	return category, ok
}

var amountCleaner = strings.NewReplacer(
	"A$", "", "NZ$", "", "US$", "",
	"AUD", "", "NZD", "", "USD", "", "EUR", "", "GBP", "",
	"$", "", "€", "", "£", "", "¥", "",
	",", "", " ", "", "\u00a0", "", "'", "",
)

// parseAmount understands values like "$1,234.50", "AUD 99", "(250)" or "-12".
// The second return value is false for empty cells.
func parseAmount(raw string) (decimal.Decimal, bool, error) {
	s := strings.TrimSpace(raw)
	if s == "" || s == "-" {
		return decimal.Zero, false, nil
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}

	s = amountCleaner.Replace(strings.ToUpper(s))
	if strings.HasPrefix(s, "-") && negative {
		return decimal.Zero, false, fmt.Errorf("invalid amount %q", raw)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("invalid amount %q", raw)
	}
	if negative {
		d = d.Neg()
	}
	return d, true, nil
}

var monthLayouts = []string{"2006-01", "2006/01", "Jan 2006", "January 2006", "Jan-06", "Jan-2006", "01/2006"}

func parseMonthHeader(h string) (string, error) {
	h = strings.TrimSpace(h)
	for _, layout := range monthLayouts {
		if t, err := time.Parse(layout, h); err == nil {
			return models.MonthKey(t.Year(), t.Month()), nil
		}
	}
	return "", fmt.Errorf("invalid month column %q, expected YYYY-MM", h)
}

type importedLine struct {
	Name     string
	Category models.PLCategory
	Values   models.MonthlyValues
}

type importedCSV struct {
	Lines    []importedLine
	Months   []string
	Warnings []string
}

var errEmptyCSV = errors.New("the file is empty")

// parseForecastCSV reads name,category,<month>,<month>,... rows.
func parseForecastCSV(r io.Reader) (importedCSV, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return importedCSV{}, errEmptyCSV
		}
		return importedCSV{}, fmt.Errorf("could not read header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	if len(header) < 3 || lower.String(strings.TrimSpace(header[0])) != "name" || lower.String(strings.TrimSpace(header[1])) != "category" {
		return importedCSV{}, errors.New("the header has to start with name,category followed by at least one month")
	}

	res := importedCSV{Months: make([]string, 0, len(header)-2)}
	for _, h := range header[2:] {
		month, err := parseMonthHeader(h)
		if err != nil {
			return importedCSV{}, err
		}
		res.Months = append(res.Months, month)
	}

	indexByName := make(map[string]int)
	for row := 2; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return importedCSV{}, fmt.Errorf("row %d: %w", row, err)
		}
		if isBlank(record) {
			continue
		}

		name := strings.TrimSpace(record[0])
		if name == "" {
			return importedCSV{}, fmt.Errorf("row %d: name is required", row)
		}
		if len(record) < 2 {
			return importedCSV{}, fmt.Errorf("row %d: category is required", row)
		}
		category, ok := normalizeCategory(record[1])
		if !ok {
			return importedCSV{}, fmt.Errorf("row %d: unknown category %q", row, record[1])
		}
		if len(record) > len(header) {
			res.Warnings = append(res.Warnings, fmt.Sprintf("row %d: ignoring %d extra columns", row, len(record)-len(header)))
		}

		values := make(models.MonthlyValues, len(res.Months))
		for i, month := range res.Months {
			if i+2 >= len(record) {
				break
			}
			amount, ok, err := parseAmount(record[i+2])
			if err != nil {
				return importedCSV{}, fmt.Errorf("row %d, column %s: %w", row, month, err)
			}
			if ok {
				values[month] = amount
			}
		}

		if idx, ok := indexByName[name]; ok {
			res.Warnings = append(res.Warnings, fmt.Sprintf("row %d: line %q appears more than once, values were merged", row, name))
			maps.Copy(res.Lines[idx].Values, values)
			res.Lines[idx].Category = category
			continue
		}
		indexByName[name] = len(res.Lines)
		res.Lines = append(res.Lines, importedLine{Name: name, Category: category, Values: values})
	}

	if len(res.Lines) == 0 {
		return importedCSV{}, errors.New("the file does not contain any line")
	}
	return res, nil
}

// restrictToMonths drops the columns outside of the given months with a warning.
func (c *importedCSV) restrictToMonths(months []string) {
	kept := make([]string, 0, len(c.Months))
	for _, month := range c.Months {
		if slices.Contains(months, month) {
			kept = append(kept, month)
			continue
		}
		c.Warnings = append(c.Warnings, fmt.Sprintf("ignoring column %s, the forecast covers %s until %s", month, months[0], months[len(months)-1]))
		for _, line := range c.Lines {
			delete(line.Values, month)
		}
	}
	c.Months = kept
}

func isBlank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func writeForecastCSV(w io.Writer, months []string, lines []models.PLLine) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(append([]string{"name", "category"}, months...)); err != nil {
		return err
	}
	for _, line := range lines {
		record := make([]string, 0, len(months)+2)
		record = append(record, line.Name, string(line.Category))
		values := line.Values()
		for _, month := range months {
			if v, ok := values[month]; ok {
				record = append(record, v.StringFixed(2))
			} else {
				record = append(record, "")
			}
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
