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

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/database"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/database/models"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/dtos"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/shared"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/transformer"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/utils"
)

const upcomingSessionsLimit = 5

type DashboardService struct {
	coachingSessionRepository shared.CoachingSessionRepository
	sessionActionRepository   shared.SessionActionRepository
	chatMessageRepository     shared.ChatMessageRepository
	goalRepository            shared.GoalRepository
	forecastRepository        shared.ForecastRepository
}

func NewDashboardService(coachingSessionRepository shared.CoachingSessionRepository, sessionActionRepository shared.SessionActionRepository, chatMessageRepository shared.ChatMessageRepository, goalRepository shared.GoalRepository, forecastRepository shared.ForecastRepository) *DashboardService {
	return &DashboardService{
		coachingSessionRepository: coachingSessionRepository,
		sessionActionRepository:   sessionActionRepository,
		chatMessageRepository:     chatMessageRepository,
		goalRepository:            goalRepository,
		forecastRepository:        forecastRepository,
	}
}

// Dashboard loads all widgets concurrently.
func (s *DashboardService) Dashboard(businessID uuid.UUID, userID string) (dtos.DashboardDTO, error) {
	now := time.Now()
	res := dtos.DashboardDTO{BusinessID: businessID}

	var g errgroup.Group
	g.Go(func() error {
		sessions, err := s.coachingSessionRepository.ListUpcoming(businessID, now, upcomingSessionsLimit)
		if err != nil {
			return err
		}
		res.UpcomingSessions = utils.Map(sessions, func(session models.CoachingSession) dtos.UpcomingSessionDTO {
			return dtos.UpcomingSessionDTO{
				ID:          session.ID,
				Title:       session.Title,
				ScheduledAt: session.ScheduledAt,
				CoachID:     session.CoachID,
			}
		})
		return nil
	})
	g.Go(func() error {
		actions, err := s.sessionActionRepository.ListOpenByBusinessID(businessID)
		if err != nil {
			return err
		}
		res.OpenActions = utils.Map(actions, func(action models.SessionAction) dtos.OpenActionDTO {
			return dtos.OpenActionDTO{
				ID:         action.ID,
				SessionID:  action.SessionID,
				Title:      action.Title,
				AssigneeID: action.AssigneeID,
				DueDate:    action.DueDate,
				Overdue:    action.DueDate != nil && action.DueDate.Before(now),
			}
		})
		return nil
	})
	g.Go(func() error {
		unread, err := s.chatMessageRepository.CountUnread(businessID, userID)
		res.UnreadMessages = unread
		return err
	})
	g.Go(func() error {
		goals, err := s.goalRepository.ListByBusinessID(businessID, string(models.GoalStatusActive))
		if err != nil {
			return err
		}
		res.Goals = utils.Map(goals, transformer.GoalDTOFromModel)
		return nil
	})
	g.Go(func() error {
		forecast, err := s.forecastRepository.FindActiveByBusinessID(businessID)
		if err != nil {
			if database.IsNotFound(err) {
				return nil
			}
			return err
		}
		summary := summarize(forecast.ID, forecast.Months(), forecast.Lines)
		res.ActiveForecast = &dtos.ActiveForecastDTO{
			ID:         forecast.ID,
			Name:       forecast.Name,
			FiscalYear: forecast.FiscalYear,
			Totals:     summary.Total,
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return dtos.DashboardDTO{}, err
	}
	return res, nil
}
