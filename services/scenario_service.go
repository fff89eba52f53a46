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
	"time"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/database/models"
	databasetypes "github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/database/types"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/dtos"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/shared"
)

type ScenarioService struct {
	forecastScenarioRepository shared.ForecastScenarioRepository
	plLineRepository           shared.PLLineRepository
	auditLogger                shared.AuditLogger
}

func NewScenarioService(forecastScenarioRepository shared.ForecastScenarioRepository, plLineRepository shared.PLLineRepository, auditLogger shared.AuditLogger) *ScenarioService {
	return &ScenarioService{
		forecastScenarioRepository: forecastScenarioRepository,
		plLineRepository:           plLineRepository,
		auditLogger:                auditLogger,
	}
}

func (s *ScenarioService) Create(userID string, forecast models.Forecast, scenario *models.ForecastScenario) error {
	scenario.ForecastID = forecast.ID
	scenario.CreatedBy = userID
	return s.forecastScenarioRepository.Transaction(func(tx shared.DB) error {
		if err := s.forecastScenarioRepository.Create(tx, scenario); err != nil {
			return err
		}
		return s.auditLogger.Log(tx, auditEntry(forecast, userID, models.AuditActionCreate, EntityScenario, scenario.ID, databasetypes.ChangeSet(nil, scenario)))
	})
}

func (s *ScenarioService) Update(userID string, forecast models.Forecast, before models.ForecastScenario, scenario *models.ForecastScenario) error {
	return s.forecastScenarioRepository.Transaction(func(tx shared.DB) error {
		if err := s.forecastScenarioRepository.Save(tx, scenario); err != nil {
			return err
		}
		return s.auditLogger.Log(tx, auditEntry(forecast, userID, models.AuditActionUpdate, EntityScenario, scenario.ID, databasetypes.ChangeSet(before, scenario)))
	})
}

func (s *ScenarioService) Delete(userID string, forecast models.Forecast, scenario models.ForecastScenario) error {
	return s.forecastScenarioRepository.Transaction(func(tx shared.DB) error {
		if err := s.forecastScenarioRepository.Delete(tx, scenario.ID); err != nil {
			return err
		}
		return s.auditLogger.Log(tx, auditEntry(forecast, userID, models.AuditActionDelete, EntityScenario, scenario.ID, databasetypes.ChangeSet(scenario, nil)))
	})
}

// apply rewrites the affected lines inside tx and returns all lines of the forecast.
func (s *ScenarioService) apply(tx shared.DB, userID string, forecast models.Forecast, changes dtos.ScenarioChanges, scenario *models.ForecastScenario) ([]models.PLLine, error) {
	lines, err := s.plLineRepository.ListByForecastID(tx, forecast.ID)
	if err != nil {
		return nil, err
	}

	changed := applyScenarioChanges(lines, changes)
	if len(changed) > 0 {
		if err := s.plLineRepository.SaveBatch(tx, changed); err != nil {
			return nil, err
		}
	}

	entry := auditEntry(forecast, userID, models.AuditActionApply, EntityForecast, forecast.ID, databasetypes.JSONB{
		"revenueChange":           changes.RevenueChange.String(),
		"costOfSalesChange":       changes.CostOfSalesChange.String(),
		"operatingExpensesChange": changes.OperatingExpensesChange.String(),
		"changedLines":            len(changed),
	})
	if scenario != nil {
		entry.EntityType = EntityScenario
		entry.EntityID = &scenario.ID
	}
	if err := s.auditLogger.Log(tx, entry); err != nil {
		return nil, err
	}
	return mergeLines(lines, changed), nil
}

// ApplyChanges applies ad hoc percentages which are not stored as scenario.
func (s *ScenarioService) ApplyChanges(userID string, forecast models.Forecast, changes dtos.ScenarioChanges) ([]models.PLLine, error) {
	var lines []models.PLLine
	err := s.forecastScenarioRepository.Transaction(func(tx shared.DB) error {
		var err error
		lines, err = s.apply(tx, userID, forecast, changes, nil)
		return err
	})
	return lines, err
}

// ApplyScenario applies the scenario and marks it applied in the same transaction.
func (s *ScenarioService) ApplyScenario(userID string, forecast models.Forecast, scenario *models.ForecastScenario) ([]models.PLLine, error) {
	changes := dtos.ScenarioChanges{
		RevenueChange:           scenario.RevenueChange,
		CostOfSalesChange:       scenario.CostOfSalesChange,
		OperatingExpensesChange: scenario.OperatingExpensesChange,
	}

	var lines []models.PLLine
	err := s.forecastScenarioRepository.Transaction(func(tx shared.DB) error {
		var err error
		lines, err = s.apply(tx, userID, forecast, changes, scenario)
		if err != nil {
			return err
		}
		now := time.Now()
		scenario.AppliedAt = &now
		scenario.AppliedBy = &userID
		return s.forecastScenarioRepository.Save(tx, scenario)
	})
	return lines, err
}
