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
	"io"
	"maps"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/datatypes"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/database/models"
	databasetypes "github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/database/types"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/dtos"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/shared"
)

type ForecastService struct {
	forecastRepository shared.ForecastRepository
	plLineRepository   shared.PLLineRepository
	auditLogger        shared.AuditLogger
}

func NewForecastService(forecastRepository shared.ForecastRepository, plLineRepository shared.PLLineRepository, auditLogger shared.AuditLogger) *ForecastService {
	return &ForecastService{
		forecastRepository: forecastRepository,
		plLineRepository:   plLineRepository,
		auditLogger:        auditLogger,
	}
}

// Create stores the forecast. An active forecast deactivates all other forecasts of the business.
func (s *ForecastService) Create(userID string, forecast *models.Forecast) error {
	forecast.CreatedBy = userID
	return s.forecastRepository.Transaction(func(tx shared.DB) error {
		if err := s.forecastRepository.Create(tx, forecast); err != nil {
			return err
		}
		if forecast.IsActive {
			if err := s.forecastRepository.DeactivateOthers(tx, forecast.BusinessID, forecast.ID); err != nil {
				return err
			}
		}
		return s.auditLogger.Log(tx, auditEntry(*forecast, userID, models.AuditActionCreate, EntityForecast, forecast.ID, databasetypes.ChangeSet(nil, forecast)))
	})
}

func (s *ForecastService) Update(userID string, before models.Forecast, forecast *models.Forecast) error {
	return s.forecastRepository.Transaction(func(tx shared.DB) error {
		if err := s.forecastRepository.Save(tx, forecast); err != nil {
			return err
		}
		if forecast.IsActive && !before.IsActive {
			if err := s.forecastRepository.DeactivateOthers(tx, forecast.BusinessID, forecast.ID); err != nil {
				return err
			}
		}
		return s.auditLogger.Log(tx, auditEntry(*forecast, userID, models.AuditActionUpdate, EntityForecast, forecast.ID, databasetypes.ChangeSet(before, forecast)))
	})
}

// Delete removes the forecast including its lines, scenarios and decisions.
// Its audit trail, including the entry for the deletion, stays with the business.
func (s *ForecastService) Delete(userID string, forecast models.Forecast) error {
	return s.forecastRepository.Transaction(func(tx shared.DB) error {
		if err := s.auditLogger.Log(tx, auditEntry(forecast, userID, models.AuditActionDelete, EntityForecast, forecast.ID, databasetypes.ChangeSet(forecast, nil))); err != nil {
			return err
		}
		return s.forecastRepository.Delete(tx, forecast.ID)
	})
}

func (s *ForecastService) CreateLine(userID string, forecast models.Forecast, line *models.PLLine) error {
	line.ForecastID = forecast.ID
	return s.forecastRepository.Transaction(func(tx shared.DB) error {
		if err := s.plLineRepository.Create(tx, line); err != nil {
			return err
		}
		return s.auditLogger.Log(tx, auditEntry(forecast, userID, models.AuditActionCreate, EntityLine, line.ID, databasetypes.ChangeSet(nil, line)))
	})
}

func (s *ForecastService) UpdateLine(userID string, forecast models.Forecast, before models.PLLine, line *models.PLLine) error {
	return s.forecastRepository.Transaction(func(tx shared.DB) error {
		if err := s.plLineRepository.Save(tx, line); err != nil {
			return err
		}
		return s.auditLogger.Log(tx, auditEntry(forecast, userID, models.AuditActionUpdate, EntityLine, line.ID, databasetypes.ChangeSet(before, line)))
	})
}

func (s *ForecastService) DeleteLine(userID string, forecast models.Forecast, line models.PLLine) error {
	return s.forecastRepository.Transaction(func(tx shared.DB) error {
		if err := s.plLineRepository.Delete(tx, line.ID); err != nil {
			return err
		}
		return s.auditLogger.Log(tx, auditEntry(forecast, userID, models.AuditActionDelete, EntityLine, line.ID, databasetypes.ChangeSet(line, nil)))
	})
}

func (s *ForecastService) Summary(forecast models.Forecast) (dtos.ForecastSummaryDTO, error) {
	lines, err := s.plLineRepository.ListByForecastID(nil, forecast.ID)
	if err != nil {
		return dtos.ForecastSummaryDTO{}, err
	}
	return summarize(forecast.ID, forecast.Months(), lines), nil
}

// ImportCSV upserts the lines of the file by name. Months missing in the file keep their stored values.
// Columns outside of the forecast's months are dropped with a warning.
// With replace all existing lines are deleted first.
func (s *ForecastService) ImportCSV(userID string, forecast models.Forecast, r io.Reader, replace bool) (dtos.ImportResultDTO, error) {
	parsed, err := parseForecastCSV(r)
	if err != nil {
		return dtos.ImportResultDTO{}, echo.NewHTTPError(http.StatusBadRequest, err.Error()).WithInternal(err)
	}
	parsed.restrictToMonths(forecast.Months())
	if len(parsed.Months) == 0 {
		return dtos.ImportResultDTO{}, echo.NewHTTPError(http.StatusBadRequest, "none of the month columns is part of the forecast")
	}

	result := dtos.ImportResultDTO{
		Months:   parsed.Months,
		Warnings: parsed.Warnings,
	}
	if result.Warnings == nil {
		result.Warnings = []string{}
	}

	err = s.forecastRepository.Transaction(func(tx shared.DB) error {
		existing, err := s.plLineRepository.ListByForecastID(tx, forecast.ID)
		if err != nil {
			return err
		}
		if replace && len(existing) > 0 {
			if err := s.plLineRepository.DeleteByForecastID(tx, forecast.ID); err != nil {
				return err
			}
			result.Deleted = len(existing)
			existing = nil
		}

		byName := make(map[string]models.PLLine, len(existing))
		for _, line := range existing {
			byName[line.Name] = line
		}

		lines := make([]models.PLLine, 0, len(parsed.Lines))
		for i, imported := range parsed.Lines {
			values := make(models.MonthlyValues)
			line, ok := byName[imported.Name]
			if ok {
				maps.Copy(values, line.Values())
				result.Updated++
			} else {
				line = models.PLLine{
					Model:      models.Model{ID: uuid.New()},
					ForecastID: forecast.ID,
					Name:       imported.Name,
					SortOrder:  len(existing) + i,
				}
				result.Created++
			}
			maps.Copy(values, imported.Values)
			line.Category = imported.Category
			line.MonthlyValues = datatypes.NewJSONType(values)
			lines = append(lines, line)
		}

		if err := s.plLineRepository.UpsertByName(tx, lines); err != nil {
			return err
		}

		return s.auditLogger.Log(tx, auditEntry(forecast, userID, models.AuditActionImport, EntityForecast, forecast.ID, databasetypes.JSONB{
			"created": result.Created,
			"updated": result.Updated,
			"deleted": result.Deleted,
			"replace": replace,
			"months":  result.Months,
		}))
	})
	if err != nil {
		return dtos.ImportResultDTO{}, echo.NewHTTPError(http.StatusInternalServerError, "could not import forecast").WithInternal(err)
	}
	return result, nil
}

func (s *ForecastService) ExportCSV(forecast models.Forecast, w io.Writer) error {
	lines, err := s.plLineRepository.ListByForecastID(nil, forecast.ID)
	if err != nil {
		return err
	}
	return writeForecastCSV(w, forecast.Months(), lines)
}
