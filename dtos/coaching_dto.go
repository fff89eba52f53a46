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

package dtos

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SessionCreateRequest struct {
	Title           string     `json:"title" validate:"required"`
	Agenda          string     `json:"agenda"`
	ScheduledAt     *time.Time `json:"scheduledAt" validate:"required"`
	DurationMinutes int        `json:"durationMinutes" validate:"omitempty,min=1,max=1440"`
}

type SessionPatchRequest struct {
	Title           *string    `json:"title"`
	Agenda          *string    `json:"agenda"`
	Notes           *string    `json:"notes"`
	ScheduledAt     *time.Time `json:"scheduledAt"`
	DurationMinutes *int       `json:"durationMinutes" validate:"omitempty,min=1,max=1440"`
}

type SessionCompleteRequest struct {
	Notes *string `json:"notes"`
}

type ActionCreateRequest struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	AssigneeID  *string    `json:"assigneeId"`
	DueDate     *time.Time `json:"dueDate"`
}

type ActionPatchRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	AssigneeID  *string    `json:"assigneeId"`
	DueDate     *time.Time `json:"dueDate"`
	Status      *string    `json:"status" validate:"omitempty,oneof=open done"`
}

type QuestionCreateRequest struct {
	Prompt    string `json:"prompt" validate:"required"`
	Category  string `json:"category"`
	Kind      string `json:"kind" validate:"omitempty,oneof=text scale"`
	SortOrder int    `json:"sortOrder"`
}

type QuestionPatchRequest struct {
	Prompt    *string `json:"prompt" validate:"omitempty,min=1"`
	Category  *string `json:"category"`
	Kind      *string `json:"kind" validate:"omitempty,oneof=text scale"`
	SortOrder *int    `json:"sortOrder"`
	Archived  *bool   `json:"archived"`
}

type AssessmentCreateRequest struct {
	Title string `json:"title" validate:"required"`
}

type AnswerRequest struct {
	QuestionID uuid.UUID `json:"questionId" validate:"required"`
	Value      string    `json:"value"`
	ScaleValue *int      `json:"scaleValue" validate:"omitempty,min=1,max=10"`
}

type AnswersRequest struct {
	Answers []AnswerRequest `json:"answers" validate:"required,min=1,dive"`
}

type ReviewRequest struct {
	Notes string `json:"notes"`
}

type GoalCreateRequest struct {
	Title        string          `json:"title" validate:"required"`
	Description  string          `json:"description"`
	Category     string          `json:"category"`
	TargetValue  decimal.Decimal `json:"targetValue"`
	CurrentValue decimal.Decimal `json:"currentValue"`
	Unit         string          `json:"unit"`
	DueDate      *time.Time      `json:"dueDate"`
	OwnerID      string          `json:"ownerId"`
}

type GoalPatchRequest struct {
	Title        *string          `json:"title"`
	Description  *string          `json:"description"`
	Category     *string          `json:"category"`
	TargetValue  *decimal.Decimal `json:"targetValue"`
	CurrentValue *decimal.Decimal `json:"currentValue"`
	Unit         *string          `json:"unit"`
	DueDate      *time.Time       `json:"dueDate"`
	Status       *string          `json:"status" validate:"omitempty,oneof=active achieved abandoned"`
	OwnerID      *string          `json:"ownerId"`
}

type GoalDTO struct {
	ID           uuid.UUID       `json:"id"`
	BusinessID   uuid.UUID       `json:"businessId"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Category     string          `json:"category"`
	TargetValue  decimal.Decimal `json:"targetValue"`
	CurrentValue decimal.Decimal `json:"currentValue"`
	Unit         string          `json:"unit"`
	DueDate      *time.Time      `json:"dueDate"`
	Status       string          `json:"status"`
	OwnerID      string          `json:"ownerId"`
	Progress     decimal.Decimal `json:"progress"`
}

type UpcomingSessionDTO struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	ScheduledAt time.Time `json:"scheduledAt"`
	CoachID     string    `json:"coachId"`
}

type OpenActionDTO struct {
	ID         uuid.UUID  `json:"id"`
	SessionID  *uuid.UUID `json:"sessionId"`
	Title      string     `json:"title"`
	AssigneeID *string    `json:"assigneeId"`
	DueDate    *time.Time `json:"dueDate"`
	Overdue    bool       `json:"overdue"`
}

type ActiveForecastDTO struct {
	ID         uuid.UUID        `json:"id"`
	Name       string           `json:"name"`
	FiscalYear int              `json:"fiscalYear"`
	Totals     SummaryTotalsDTO `json:"totals"`
}

type DashboardDTO struct {
	BusinessID       uuid.UUID            `json:"businessId"`
	UpcomingSessions []UpcomingSessionDTO `json:"upcomingSessions"`
	OpenActions      []OpenActionDTO      `json:"openActions"`
	UnreadMessages   int64                `json:"unreadMessages"`
	Goals            []GoalDTO            `json:"goals"`
	ActiveForecast   *ActiveForecastDTO   `json:"activeForecast"`
}

type BackfillResultDTO struct {
	Updated int `json:"updated"`
}
