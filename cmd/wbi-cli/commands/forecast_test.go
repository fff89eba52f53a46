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

package commands

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/database/models"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/dtos"
)

func testSummary() (models.Forecast, dtos.ForecastSummaryDTO) {
	march := dtos.SummaryTotalsDTO{
		Revenue:           decimal.NewFromInt(1000),
		CostOfSales:       decimal.NewFromInt(400),
		GrossProfit:       decimal.NewFromInt(600),
		OperatingExpenses: decimal.NewFromInt(250),
		OtherIncome:       decimal.Zero,
		OtherExpenses:     decimal.Zero,
		NetProfit:         decimal.NewFromInt(350),
	}
	return models.Forecast{Name: "Q1 Plan", FiscalYear: 2025}, dtos.ForecastSummaryDTO{
		Months: []dtos.MonthSummaryDTO{{Month: "2025-03", SummaryTotalsDTO: march}},
		Total:  march,
	}
}

func TestWriteSummary(t *testing.T) {
	forecast, summary := testSummary()

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeSummary(&buf, "table", forecast, summary))
		assert.Contains(t, strings.ToLower(buf.String()), "q1 plan (fy 2025)")
		assert.Contains(t, buf.String(), "2025-03")
		assert.Contains(t, buf.String(), "1000.00")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeSummary(&buf, "json", forecast, summary))

		var doc summaryDocument
		require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
		assert.Equal(t, 2025, doc.FiscalYear)
		require.Len(t, doc.Months, 1)
		assert.Equal(t, "350.00", doc.Months[0].NetProfit)
		assert.Equal(t, "total", doc.Total.Month)
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeSummary(&buf, "yaml", forecast, summary))

		var doc summaryDocument
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
		assert.Equal(t, "Q1 Plan", doc.Forecast)
		assert.Equal(t, "600.00", doc.Total.GrossProfit)
	})

	t.Run("unknown format", func(t *testing.T) {
		var buf bytes.Buffer
		assert.Error(t, writeSummary(&buf, "xml", forecast, summary))
	})
}
