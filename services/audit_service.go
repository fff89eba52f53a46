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
	"github.com/google/uuid"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/database/models"
	databasetypes "github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/database/types"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/shared"
)

const (
	EntityForecast = "forecast"
	EntityLine     = "line"
	EntityScenario = "scenario"
	EntityDecision = "decision"
)

type AuditService struct {
	forecastAuditLogRepository shared.ForecastAuditLogRepository
}

func NewAuditService(forecastAuditLogRepository shared.ForecastAuditLogRepository) *AuditService {
	return &AuditService{forecastAuditLogRepository: forecastAuditLogRepository}
}

// Log has to be called with the transaction of the mutation so both succeed or fail together.
func (s *AuditService) Log(tx shared.DB, entry models.ForecastAuditLog) error {
	return s.forecastAuditLogRepository.Create(tx, &entry)
}

func auditEntry(forecast models.Forecast, userID string, action models.AuditAction, entityType string, entityID uuid.UUID, changes databasetypes.JSONB) models.ForecastAuditLog {
	return models.ForecastAuditLog{
		ForecastID: forecast.ID,
		BusinessID: forecast.BusinessID,
		UserID:     userID,
		Action:     action,
		EntityType: entityType,
		EntityID:   &entityID,
		Changes:    changes,
	}
}
