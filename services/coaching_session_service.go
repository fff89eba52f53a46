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
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/shared"
)

type CoachingSessionService struct {
	coachingSessionRepository shared.CoachingSessionRepository
	sessionActionRepository   shared.SessionActionRepository
	notificationService       shared.NotificationService
}

func NewCoachingSessionService(coachingSessionRepository shared.CoachingSessionRepository, sessionActionRepository shared.SessionActionRepository, notificationService shared.NotificationService) *CoachingSessionService {
	return &CoachingSessionService{
		coachingSessionRepository: coachingSessionRepository,
		sessionActionRepository:   sessionActionRepository,
		notificationService:       notificationService,
	}
}

func (s *CoachingSessionService) Create(userID string, session *models.CoachingSession) error {
	if session.CoachID == "" {
		session.CoachID = userID
	}
	if session.DurationMinutes == 0 {
		session.DurationMinutes = 60
	}
	session.Status = models.SessionStatusScheduled

	return s.coachingSessionRepository.Transaction(func(tx shared.DB) error {
		if err := s.coachingSessionRepository.Create(tx, session); err != nil {
			return err
		}
		return s.notificationService.NotifyBusinessMembers(tx, session.BusinessID, userID, models.Notification{
			Type:  models.NotificationTypeSession,
			Title: "New coaching session scheduled",
			Body:  fmt.Sprintf("%s on %s", session.Title, session.ScheduledAt.UTC().Format(time.RFC1123)),
		})
	})
}

func ensureScheduled(session *models.CoachingSession) error {
	if session.Status != models.SessionStatusScheduled {
		return echo.NewHTTPError(http.StatusConflict, fmt.Sprintf("the session is already %s", session.Status))
	}
	return nil
}

func (s *CoachingSessionService) Complete(session *models.CoachingSession, notes *string) error {
	if err := ensureScheduled(session); err != nil {
		return err
	}
	now := time.Now()
	session.Status = models.SessionStatusCompleted
	session.CompletedAt = &now
	if notes != nil {
		session.Notes = *notes
	}
	return s.coachingSessionRepository.Save(nil, session)
}

func (s *CoachingSessionService) Cancel(session *models.CoachingSession) error {
	if err := ensureScheduled(session); err != nil {
		return err
	}
	session.Status = models.SessionStatusCancelled
	return s.coachingSessionRepository.Save(nil, session)
}

// CreateAction notifies the assignee unless the assignee created the action.
func (s *CoachingSessionService) CreateAction(userID string, action *models.SessionAction) error {
	action.Status = models.ActionStatusOpen
	return s.sessionActionRepository.Transaction(func(tx shared.DB) error {
		if err := s.sessionActionRepository.Create(tx, action); err != nil {
			return err
		}
		if action.AssigneeID == nil || *action.AssigneeID == "" || *action.AssigneeID == userID {
			return nil
		}
		return s.notificationService.Notify(tx, []string{*action.AssigneeID}, models.Notification{
			BusinessID: &action.BusinessID,
			Type:       models.NotificationTypeAction,
			Title:      "A new action was assigned to you",
			Body:       action.Title,
		})
	})
}

func (s *CoachingSessionService) SetActionStatus(action *models.SessionAction, status models.ActionStatus) error {
	switch status {
	case models.ActionStatusDone:
		if action.Status != models.ActionStatusDone {
			now := time.Now()
			action.CompletedAt = &now
		}
	case models.ActionStatusOpen:
		action.CompletedAt = nil
	default:
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid action status %q", status))
	}
	action.Status = status
	return s.sessionActionRepository.Save(nil, action)
}
