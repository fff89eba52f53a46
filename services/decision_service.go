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
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/database/models"
	databasetypes "github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/database/types"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/shared"
)

type DecisionService struct {
	forecastDecisionRepository shared.ForecastDecisionRepository
	auditLogger                shared.AuditLogger
}

func NewDecisionService(forecastDecisionRepository shared.ForecastDecisionRepository, auditLogger shared.AuditLogger) *DecisionService {
	return &DecisionService{
		forecastDecisionRepository: forecastDecisionRepository,
		auditLogger:                auditLogger,
	}
}

func (s *DecisionService) Create(userID string, forecast models.Forecast, decision *models.ForecastDecision) error {
	decision.ForecastID = forecast.ID
	decision.CreatedBy = userID
	decision.Status = models.DecisionStatusProposed
	return s.forecastDecisionRepository.Transaction(func(tx shared.DB) error {
		if err := s.forecastDecisionRepository.Create(tx, decision); err != nil {
			return err
		}
		return s.auditLogger.Log(tx, auditEntry(forecast, userID, models.AuditActionCreate, EntityDecision, decision.ID, databasetypes.ChangeSet(nil, decision)))
	})
}

func (s *DecisionService) Update(userID string, forecast models.Forecast, before models.ForecastDecision, decision *models.ForecastDecision) error {
	return s.forecastDecisionRepository.Transaction(func(tx shared.DB) error {
		if err := s.forecastDecisionRepository.Save(tx, decision); err != nil {
			return err
		}
		return s.auditLogger.Log(tx, auditEntry(forecast, userID, models.AuditActionUpdate, EntityDecision, decision.ID, databasetypes.ChangeSet(before, decision)))
	})
}

// Transition moves the decision along proposed -> approved|rejected, approved -> implemented.
func (s *DecisionService) Transition(userID string, forecast models.Forecast, decision *models.ForecastDecision, status models.DecisionStatus) error {
	from := decision.Status
	if !from.CanTransitionTo(status) {
		return echo.NewHTTPError(http.StatusConflict, fmt.Sprintf("a %s decision cannot become %s", from, status))
	}

	decision.Status = status
	if status == models.DecisionStatusApproved || status == models.DecisionStatusRejected {
		now := time.Now()
		decision.DecidedAt = &now
		decision.DecidedBy = &userID
	}

	return s.forecastDecisionRepository.Transaction(func(tx shared.DB) error {
		if err := s.forecastDecisionRepository.Save(tx, decision); err != nil {
			return err
		}
		return s.auditLogger.Log(tx, auditEntry(forecast, userID, models.AuditActionStatus, EntityDecision, decision.ID, databasetypes.JSONB{
			"from": string(from),
			"to":   string(status),
		}))
	})
}

func (s *DecisionService) Delete(userID string, forecast models.Forecast, decision models.ForecastDecision) error {
	return s.forecastDecisionRepository.Transaction(func(tx shared.DB) error {
		if err := s.forecastDecisionRepository.Delete(tx, decision.ID); err != nil {
			return err
		}
		return s.auditLogger.Log(tx, auditEntry(forecast, userID, models.AuditActionDelete, EntityDecision, decision.ID, databasetypes.ChangeSet(decision, nil)))
	})
}
