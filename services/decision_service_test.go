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
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/database/models"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/mocks"
)

func TestDecisionTransition(t *testing.T) {
	forecast := models.Forecast{Model: models.Model{ID: uuid.New()}, BusinessID: uuid.New()}

	t.Run("should approve a proposed decision", func(t *testing.T) {
		decisionRepository := mocks.NewForecastDecisionRepository(t)
		auditLogger := mocks.NewAuditLogger(t)
		decisionRepository.On("Transaction", mock.Anything).Return(runTransaction)
		decisionRepository.On("Save", mock.Anything, mock.Anything).Return(nil)
		auditLogger.On("Log", mock.Anything, mock.MatchedBy(func(entry models.ForecastAuditLog) bool {
			return entry.Action == models.AuditActionStatus &&
				entry.Changes["from"] == "proposed" &&
				entry.Changes["to"] == "approved"
		})).Return(nil)

		decision := models.ForecastDecision{Model: models.Model{ID: uuid.New()}, Status: models.DecisionStatusProposed}
		s := NewDecisionService(decisionRepository, auditLogger)
		assert.Nil(t, s.Transition("coach", forecast, &decision, models.DecisionStatusApproved))
		assert.Equal(t, models.DecisionStatusApproved, decision.Status)
		assert.Equal(t, "coach", *decision.DecidedBy)
		assert.NotNil(t, decision.DecidedAt)
	})

	for _, tc := range []struct {
		from models.DecisionStatus
		to   models.DecisionStatus
	}{
		{models.DecisionStatusProposed, models.DecisionStatusImplemented},
		{models.DecisionStatusRejected, models.DecisionStatusApproved},
		{models.DecisionStatusImplemented, models.DecisionStatusProposed},
	} {
		t.Run("should not move from "+string(tc.from)+" to "+string(tc.to), func(t *testing.T) {
			s := NewDecisionService(mocks.NewForecastDecisionRepository(t), mocks.NewAuditLogger(t))
			decision := models.ForecastDecision{Status: tc.from}
			err := s.Transition("coach", forecast, &decision, tc.to)
			assert.Equal(t, http.StatusConflict, statusOf(t, err))
			assert.Equal(t, tc.from, decision.Status)
		})
	}

	t.Run("should always create proposed decisions", func(t *testing.T) {
		decisionRepository := mocks.NewForecastDecisionRepository(t)
		auditLogger := mocks.NewAuditLogger(t)
		decisionRepository.On("Transaction", mock.Anything).Return(runTransaction)
		decisionRepository.On("Create", mock.Anything, mock.Anything).Return(nil)
		auditLogger.On("Log", mock.Anything, mock.Anything).Return(nil)

		decision := models.ForecastDecision{Title: "hire", Status: models.DecisionStatusImplemented}
		s := NewDecisionService(decisionRepository, auditLogger)
		assert.Nil(t, s.Create("coach", forecast, &decision))
		assert.Equal(t, models.DecisionStatusProposed, decision.Status)
		assert.Equal(t, forecast.ID, decision.ForecastID)
	})
}
