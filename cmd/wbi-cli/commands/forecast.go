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
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/database/models"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/database/repositories"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/dtos"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/services"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/shared"
)

func NewForecastCommand() *cobra.Command {
	forecast := cobra.Command{
		Use:   "forecast",
		Short: "Imports and inspects forecasts",
	}

	forecast.AddCommand(newForecastImportCommand())
	forecast.AddCommand(newForecastSummaryCommand())
	return &forecast
}

func forecastServiceFor(db shared.DB) (*services.ForecastService, shared.ForecastRepository) {
	forecastRepository := repositories.NewForecastRepository(db)
	return services.NewForecastService(
		forecastRepository,
		repositories.NewPLLineRepository(db),
		services.NewAuditService(repositories.NewForecastAuditLogRepository(db)),
	), forecastRepository
}

func readForecast(forecastRepository shared.ForecastRepository, rawID string) (models.Forecast, error) {
	forecastID, err := uuid.Parse(rawID)
	if err != nil {
		return models.Forecast{}, fmt.Errorf("invalid forecast id %q: %w", rawID, err)
	}
	forecast, err := forecastRepository.Read(forecastID)
	if err != nil {
		return models.Forecast{}, fmt.Errorf("could not find forecast %s: %w", forecastID, err)
	}
	return forecast, nil
}

func newForecastImportCommand() *cobra.Command {
	var replace bool
	var userID string

	importCmd := cobra.Command{
		Use:   "import <forecastID> <file>",
		Short: "Imports a csv file into the forecast, use - to read from stdin",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := connect()
			if err != nil {
				return err
			}
			forecastService, forecastRepository := forecastServiceFor(db)
			forecast, err := readForecast(forecastRepository, args[0])
			if err != nil {
				return err
			}

			var r io.Reader = cmd.InOrStdin()
			if args[1] != "-" {
				f, err := os.Open(args[1])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}

			result, err := forecastService.ImportCSV(userID, forecast, r, replace)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "created %d, updated %d, deleted %d lines for %s\n", result.Created, result.Updated, result.Deleted, strings.Join(result.Months, ", "))
			for _, warning := range result.Warnings {
				fmt.Fprintln(out, text.FgYellow.Sprint("warning: "+warning))
			}
			return nil
		},
	}
	importCmd.Flags().BoolVar(&replace, "replace", false, "delete all existing lines before importing")
	importCmd.Flags().StringVar(&userID, "user", "wbi-cli", "user id written to the audit log")
	return &importCmd
}

func totalsRow(label string, t dtos.SummaryTotalsDTO) table.Row {
	return table.Row{
		label,
		t.Revenue.StringFixed(2),
		t.CostOfSales.StringFixed(2),
		t.GrossProfit.StringFixed(2),
		t.OperatingExpenses.StringFixed(2),
		t.OtherIncome.StringFixed(2),
		t.OtherExpenses.StringFixed(2),
		t.NetProfit.StringFixed(2),
	}
}

func renderSummary(w io.Writer, forecast models.Forecast, summary dtos.ForecastSummaryDTO) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetTitle(fmt.Sprintf("%s (FY %d)", forecast.Name, forecast.FiscalYear))
	tw.AppendHeader(table.Row{"Month", "Revenue", "Cost of Sales", "Gross Profit", "OpEx", "Other Income", "Other Expenses", "Net Profit"})
	for _, month := range summary.Months {
		tw.AppendRow(totalsRow(month.Month, month.SummaryTotalsDTO))
	}
	tw.AppendFooter(totalsRow("Total", summary.Total))

	alignRight := make([]table.ColumnConfig, 0, 7)
	for i := 2; i <= 8; i++ {
		alignRight = append(alignRight, table.ColumnConfig{Number: i, Align: text.AlignRight, AlignFooter: text.AlignRight})
	}
	tw.SetColumnConfigs(alignRight)
	tw.Render()
}

type summaryRow struct {
	Month             string `json:"month" yaml:"month"`
	Revenue           string `json:"revenue" yaml:"revenue"`
	CostOfSales       string `json:"costOfSales" yaml:"costOfSales"`
	GrossProfit       string `json:"grossProfit" yaml:"grossProfit"`
	OperatingExpenses string `json:"operatingExpenses" yaml:"operatingExpenses"`
	OtherIncome       string `json:"otherIncome" yaml:"otherIncome"`
	OtherExpenses     string `json:"otherExpenses" yaml:"otherExpenses"`
	NetProfit         string `json:"netProfit" yaml:"netProfit"`
}

type summaryDocument struct {
	Forecast   string       `json:"forecast" yaml:"forecast"`
	FiscalYear int          `json:"fiscalYear" yaml:"fiscalYear"`
	Months     []summaryRow `json:"months" yaml:"months"`
	Total      summaryRow   `json:"total" yaml:"total"`
}

func toSummaryRow(label string, t dtos.SummaryTotalsDTO) summaryRow {
	return summaryRow{
		Month:             label,
		Revenue:           t.Revenue.StringFixed(2),
		CostOfSales:       t.CostOfSales.StringFixed(2),
		GrossProfit:       t.GrossProfit.StringFixed(2),
		OperatingExpenses: t.OperatingExpenses.StringFixed(2),
		OtherIncome:       t.OtherIncome.StringFixed(2),
		OtherExpenses:     t.OtherExpenses.StringFixed(2),
		NetProfit:         t.NetProfit.StringFixed(2),
	}
}

func summaryDocumentFor(forecast models.Forecast, summary dtos.ForecastSummaryDTO) summaryDocument {
	doc := summaryDocument{
		Forecast:   forecast.Name,
		FiscalYear: forecast.FiscalYear,
		Months:     make([]summaryRow, 0, len(summary.Months)),
		Total:      toSummaryRow("total", summary.Total),
	}
	for _, month := range summary.Months {
		doc.Months = append(doc.Months, toSummaryRow(month.Month, month.SummaryTotalsDTO))
	}
	return doc
}

func writeSummary(w io.Writer, output string, forecast models.Forecast, summary dtos.ForecastSummaryDTO) error {
	switch output {
	case "table":
		renderSummary(w, forecast, summary)
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(summaryDocumentFor(forecast, summary))
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(summaryDocumentFor(forecast, summary))
	}
	return fmt.Errorf("unknown output format %q, use table, json or yaml", output)
}

func newForecastSummaryCommand() *cobra.Command {
	var output string

	summaryCmd := cobra.Command{
		Use:   "summary <forecastID>",
		Short: "Prints the monthly profit and loss summary of a forecast",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := connect()
			if err != nil {
				return err
			}
			forecastService, forecastRepository := forecastServiceFor(db)
			forecast, err := readForecast(forecastRepository, args[0])
			if err != nil {
				return err
			}

			summary, err := forecastService.Summary(forecast)
			if err != nil {
				return err
			}
			return writeSummary(cmd.OutOrStdout(), output, forecast, summary)
		},
	}
	summaryCmd.Flags().StringVarP(&output, "output", "o", "table", "table, json or yaml")
	return &summaryCmd
}
