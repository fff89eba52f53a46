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

package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SessionStatus string

const (
	SessionStatusScheduled SessionStatus = "scheduled"
	SessionStatusCompleted SessionStatus = "completed"
	SessionStatusCancelled SessionStatus = "cancelled"
)

type CoachingSession struct {
	Model
	BusinessID      uuid.UUID     `json:"businessId" gorm:"type:uuid;not null;index"`
	Business        Business      `json:"-" gorm:"foreignKey:BusinessID;constraint:OnDelete:CASCADE;"`
	CoachID         string        `json:"coachId" gorm:"type:text;not null"`
	Title           string        `json:"title" gorm:"type:text;not null"`
	Agenda          string        `json:"agenda" gorm:"type:text"`
	Notes           string        `json:"notes" gorm:"type:text"`
	ScheduledAt     time.Time     `json:"scheduledAt" gorm:"not null;index"`
	DurationMinutes int           `json:"durationMinutes" gorm:"default:60"`
	Status          SessionStatus `json:"status" gorm:"type:text;not null;default:'scheduled'"`
	CompletedAt     *time.Time    `json:"completedAt"`

	Actions []SessionAction `json:"actions,omitempty" gorm:"foreignKey:SessionID;constraint:OnDelete:SET NULL;"`
}

func (m CoachingSession) TableName() string {
	return "coaching_sessions"
}

type ActionStatus string

const (
	ActionStatusOpen ActionStatus = "open"
	ActionStatusDone ActionStatus = "done"
)

type SessionAction struct {
	Model
	BusinessID  uuid.UUID    `json:"businessId" gorm:"type:uuid;not null;index"`
	SessionID   *uuid.UUID   `json:"sessionId" gorm:"type:uuid;index"`
	Title       string       `json:"title" gorm:"type:text;not null"`
	Description string       `json:"description" gorm:"type:text"`
	AssigneeID  *string      `json:"assigneeId" gorm:"type:text"`
	DueDate     *time.Time   `json:"dueDate"`
	Status      ActionStatus `json:"status" gorm:"type:text;not null;default:'open'"`
	CompletedAt *time.Time   `json:"completedAt"`
}

func (m SessionAction) TableName() string {
	return "session_actions"
}

type QuestionKind string

const (
	QuestionKindText  QuestionKind = "text"
	QuestionKindScale QuestionKind = "scale"
)

type Question struct {
	Model
	BusinessID uuid.UUID    `json:"businessId" gorm:"type:uuid;not null;index"`
	Business   Business     `json:"-" gorm:"foreignKey:BusinessID;constraint:OnDelete:CASCADE;"`
	Prompt     string       `json:"prompt" gorm:"type:text;not null"`
	Category   string       `json:"category" gorm:"type:text"`
	Kind       QuestionKind `json:"kind" gorm:"type:text;not null;default:'text'"`
	SortOrder  int          `json:"sortOrder" gorm:"default:0"`
	Archived   bool         `json:"archived" gorm:"default:false"`
}

func (m Question) TableName() string {
	return "questions"
}

type AssessmentStatus string

const (
	AssessmentStatusDraft     AssessmentStatus = "draft"
	AssessmentStatusSubmitted AssessmentStatus = "submitted"
	AssessmentStatusReviewed  AssessmentStatus = "reviewed"
)

type Assessment struct {
	Model
	BusinessID  uuid.UUID           `json:"businessId" gorm:"type:uuid;not null;index"`
	Business    Business            `json:"-" gorm:"foreignKey:BusinessID;constraint:OnDelete:CASCADE;"`
	Title       string              `json:"title" gorm:"type:text;not null"`
	Status      AssessmentStatus    `json:"status" gorm:"type:text;not null;default:'draft'"`
	CreatedBy   string              `json:"createdBy" gorm:"type:text"`
	SubmittedAt *time.Time          `json:"submittedAt"`
	SubmittedBy *string             `json:"submittedBy" gorm:"type:text"`
	ReviewedAt  *time.Time          `json:"reviewedAt"`
	ReviewedBy  *string             `json:"reviewedBy" gorm:"type:text"`
	ReviewNotes string              `json:"reviewNotes" gorm:"type:text"`
	Score       decimal.NullDecimal `json:"score" gorm:"type:numeric"`

	Answers []AssessmentAnswer `json:"answers,omitempty" gorm:"foreignKey:AssessmentID;constraint:OnDelete:CASCADE;"`
}

func (m Assessment) TableName() string {
	return "assessments"
}

type AssessmentAnswer struct {
	Model
	AssessmentID uuid.UUID `json:"assessmentId" gorm:"type:uuid;not null;uniqueIndex:idx_answer_assessment_question"`
	QuestionID   uuid.UUID `json:"questionId" gorm:"type:uuid;not null;uniqueIndex:idx_answer_assessment_question"`
	Question     Question  `json:"question" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE;"`
	Value        string    `json:"value" gorm:"type:text"`
	ScaleValue   *int      `json:"scaleValue"`
}

func (m AssessmentAnswer) TableName() string {
	return "assessment_answers"
}

type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusAchieved  GoalStatus = "achieved"
	GoalStatusAbandoned GoalStatus = "abandoned"
)

type Goal struct {
	Model
	BusinessID   uuid.UUID       `json:"businessId" gorm:"type:uuid;not null;index"`
	Business     Business        `json:"-" gorm:"foreignKey:BusinessID;constraint:OnDelete:CASCADE;"`
	Title        string          `json:"title" gorm:"type:text;not null"`
	Description  string          `json:"description" gorm:"type:text"`
	Category     string          `json:"category" gorm:"type:text"`
	TargetValue  decimal.Decimal `json:"targetValue" gorm:"type:numeric;default:0"`
	CurrentValue decimal.Decimal `json:"currentValue" gorm:"type:numeric;default:0"`
	Unit         string          `json:"unit" gorm:"type:text"`
	DueDate      *time.Time      `json:"dueDate"`
	Status       GoalStatus      `json:"status" gorm:"type:text;not null;default:'active'"`
	OwnerID      string          `json:"ownerId" gorm:"type:text"`
}

func (m Goal) TableName() string {
	return "goals"
}

var hundred = decimal.NewFromInt(100)

// Progress is current/target in percent, capped at 100.
func (m Goal) Progress() decimal.Decimal {
	if m.TargetValue.IsZero() {
		return decimal.Zero
	}
	progress := m.CurrentValue.Div(m.TargetValue).Mul(hundred)
	if progress.GreaterThan(hundred) {
		return hundred
	}
	if progress.IsNegative() {
		return decimal.Zero
	}
	return progress
}
