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

package transformer

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/database/models"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/dtos"
)

func SessionCreateRequestToModel(c dtos.SessionCreateRequest, businessID uuid.UUID, coachID string) models.CoachingSession {
	duration := c.DurationMinutes
	if duration == 0 {
		duration = 60
	}
	var scheduledAt time.Time
	if c.ScheduledAt != nil {
		scheduledAt = c.ScheduledAt.UTC()
	}
	return models.CoachingSession{
		BusinessID:      businessID,
		CoachID:         coachID,
		Title:           strings.TrimSpace(c.Title),
		Agenda:          c.Agenda,
		ScheduledAt:     scheduledAt,
		DurationMinutes: duration,
		Status:          models.SessionStatusScheduled,
	}
}

func ApplySessionPatchRequestToModel(p dtos.SessionPatchRequest, session *models.CoachingSession) bool {
	updated := false
	if p.Title != nil {
		updated = true
		session.Title = strings.TrimSpace(*p.Title)
	}
	if p.Agenda != nil {
		updated = true
		session.Agenda = *p.Agenda
	}
	if p.Notes != nil {
		updated = true
		session.Notes = *p.Notes
	}
	if p.ScheduledAt != nil {
		updated = true
		session.ScheduledAt = p.ScheduledAt.UTC()
	}
	if p.DurationMinutes != nil {
		updated = true
		session.DurationMinutes = *p.DurationMinutes
	}
	return updated
}

func ActionCreateRequestToModel(c dtos.ActionCreateRequest, businessID uuid.UUID, sessionID *uuid.UUID) models.SessionAction {
	return models.SessionAction{
		BusinessID:  businessID,
		SessionID:   sessionID,
		Title:       strings.TrimSpace(c.Title),
		Description: c.Description,
		AssigneeID:  c.AssigneeID,
		DueDate:     c.DueDate,
		Status:      models.ActionStatusOpen,
	}
}

// ApplyActionPatchRequestToModel does not touch the status, status changes run through the service.
func ApplyActionPatchRequestToModel(p dtos.ActionPatchRequest, action *models.SessionAction) bool {
	updated := false
	if p.Title != nil {
		updated = true
		action.Title = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		updated = true
		action.Description = *p.Description
	}
	if p.AssigneeID != nil {
		updated = true
		action.AssigneeID = p.AssigneeID
	}
	if p.DueDate != nil {
		updated = true
		action.DueDate = p.DueDate
	}
	return updated
}

func QuestionCreateRequestToModel(c dtos.QuestionCreateRequest, businessID uuid.UUID) models.Question {
	kind := models.QuestionKind(c.Kind)
	if kind == "" {
		kind = models.QuestionKindText
	}
	return models.Question{
		BusinessID: businessID,
		Prompt:     strings.TrimSpace(c.Prompt),
		Category:   c.Category,
		Kind:       kind,
		SortOrder:  c.SortOrder,
	}
}

func ApplyQuestionPatchRequestToModel(p dtos.QuestionPatchRequest, question *models.Question) bool {
	updated := false
	if p.Prompt != nil {
		updated = true
		question.Prompt = strings.TrimSpace(*p.Prompt)
	}
	if p.Category != nil {
		updated = true
		question.Category = *p.Category
	}
	if p.Kind != nil {
		updated = true
		question.Kind = models.QuestionKind(*p.Kind)
	}
	if p.SortOrder != nil {
		updated = true
		question.SortOrder = *p.SortOrder
	}
	if p.Archived != nil {
		updated = true
		question.Archived = *p.Archived
	}
	return updated
}

func GoalCreateRequestToModel(c dtos.GoalCreateRequest, businessID uuid.UUID, userID string) models.Goal {
	owner := c.OwnerID
	if owner == "" {
		owner = userID
	}
	return models.Goal{
		BusinessID:   businessID,
		Title:        strings.TrimSpace(c.Title),
		Description:  c.Description,
		Category:     c.Category,
		TargetValue:  c.TargetValue,
		CurrentValue: c.CurrentValue,
		Unit:         c.Unit,
		DueDate:      c.DueDate,
		Status:       models.GoalStatusActive,
		OwnerID:      owner,
	}
}

func ApplyGoalPatchRequestToModel(p dtos.GoalPatchRequest, goal *models.Goal) bool {
	updated := false
	if p.Title != nil {
		updated = true
		goal.Title = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		updated = true
		goal.Description = *p.Description
	}
	if p.Category != nil {
		updated = true
		goal.Category = *p.Category
	}
	if p.TargetValue != nil {
		updated = true
		goal.TargetValue = *p.TargetValue
	}
	if p.CurrentValue != nil {
		updated = true
		goal.CurrentValue = *p.CurrentValue
	}
	if p.Unit != nil {
		updated = true
		goal.Unit = *p.Unit
	}
	if p.DueDate != nil {
		updated = true
		goal.DueDate = p.DueDate
	}
	if p.Status != nil {
		updated = true
		goal.Status = models.GoalStatus(*p.Status)
	}
	if p.OwnerID != nil {
		updated = true
		goal.OwnerID = *p.OwnerID
	}
	return updated
}

func GoalDTOFromModel(goal models.Goal) dtos.GoalDTO {
	return dtos.GoalDTO{
		ID:           goal.ID,
		BusinessID:   goal.BusinessID,
		CreatedAt:    goal.CreatedAt,
		UpdatedAt:    goal.UpdatedAt,
		Title:        goal.Title,
		Description:  goal.Description,
		Category:     goal.Category,
		TargetValue:  goal.TargetValue,
		CurrentValue: goal.CurrentValue,
		Unit:         goal.Unit,
		DueDate:      goal.DueDate,
		Status:       string(goal.Status),
		OwnerID:      goal.OwnerID,
		Progress:     goal.Progress(),
	}
}
