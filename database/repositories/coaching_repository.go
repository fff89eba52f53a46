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

package repositories

import (
	"time"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/database/models"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type coachingSessionRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.CoachingSession, *gorm.DB]
}

func NewCoachingSessionRepository(db *gorm.DB) *coachingSessionRepository {
	return &coachingSessionRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.CoachingSession](db),
	}
}

func (g *coachingSessionRepository) ListByBusinessID(businessID uuid.UUID, status string) ([]models.CoachingSession, error) {
	var ts []models.CoachingSession
	q := g.db.Where("business_id = ?", businessID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Order("scheduled_at DESC").Find(&ts).Error
	return ts, err
}

func (g *coachingSessionRepository) ListUpcoming(businessID uuid.UUID, from time.Time, limit int) ([]models.CoachingSession, error) {
	var ts []models.CoachingSession
	err := g.db.Where("business_id = ? AND status = ? AND scheduled_at >= ?", businessID, models.SessionStatusScheduled, from).
		Order("scheduled_at ASC").
		Limit(limit).
		Find(&ts).Error
	return ts, err
}

func (g *coachingSessionRepository) ReadWithActions(id uuid.UUID) (models.CoachingSession, error) {
	var t models.CoachingSession
	err := g.db.Preload("Actions", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC")
	}).Where("id = ?", id).First(&t).Error
	return t, err
}

type sessionActionRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.SessionAction, *gorm.DB]
}

func NewSessionActionRepository(db *gorm.DB) *sessionActionRepository {
	return &sessionActionRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.SessionAction](db),
	}
}

func (g *sessionActionRepository) ListBySessionID(sessionID uuid.UUID) ([]models.SessionAction, error) {
	var ts []models.SessionAction
	err := g.db.Where("session_id = ?", sessionID).Order("created_at ASC").Find(&ts).Error
	return ts, err
}

// ListOpenByBusinessID orders by due date, actions without a due date come last.
func (g *sessionActionRepository) ListOpenByBusinessID(businessID uuid.UUID) ([]models.SessionAction, error) {
	var ts []models.SessionAction
	err := g.db.Where("business_id = ? AND status = ?", businessID, models.ActionStatusOpen).
		Order("due_date ASC NULLS LAST, created_at ASC").
		Find(&ts).Error
	return ts, err
}

type questionRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.Question, *gorm.DB]
}

func NewQuestionRepository(db *gorm.DB) *questionRepository {
	return &questionRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Question](db),
	}
}

func (g *questionRepository) ListByBusinessID(businessID uuid.UUID, includeArchived bool) ([]models.Question, error) {
	var ts []models.Question
	q := g.db.Where("business_id = ?", businessID)
	if !includeArchived {
		q = q.Where("archived = false")
	}
	err := q.Order("sort_order ASC, created_at ASC").Find(&ts).Error
	return ts, err
}

type assessmentRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.Assessment, *gorm.DB]
}

func NewAssessmentRepository(db *gorm.DB) *assessmentRepository {
	return &assessmentRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Assessment](db),
	}
}

func (g *assessmentRepository) ReadWithAnswers(id uuid.UUID) (models.Assessment, error) {
	var t models.Assessment
	err := g.db.Preload("Answers").Preload("Answers.Question").Where("id = ?", id).First(&t).Error
	return t, err
}

func (g *assessmentRepository) ListByBusinessID(businessID uuid.UUID) ([]models.Assessment, error) {
	var ts []models.Assessment
	err := g.db.Where("business_id = ?", businessID).Order("created_at DESC").Find(&ts).Error
	return ts, err
}

// SaveAnswers overwrites the answer of a question if the assessment already has one.
func (g *assessmentRepository) SaveAnswers(tx *gorm.DB, answers []models.AssessmentAnswer) error {
	if len(answers) == 0 {
		return nil
	}
	return g.GetDB(tx).Omit(clause.Associations).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "assessment_id"}, {Name: "question_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "scale_value", "updated_at"}),
	}).Create(&answers).Error
}

type goalRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.Goal, *gorm.DB]
}

func NewGoalRepository(db *gorm.DB) *goalRepository {
	return &goalRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Goal](db),
	}
}

func (g *goalRepository) ListByBusinessID(businessID uuid.UUID, status string) ([]models.Goal, error) {
	var ts []models.Goal
	q := g.db.Where("business_id = ?", businessID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Order("due_date ASC NULLS LAST, created_at ASC").Find(&ts).Error
	return ts, err
}
