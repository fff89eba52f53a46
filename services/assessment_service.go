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

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/database/models"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/dtos"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/shared"
)

const (
	minScale = 1
	maxScale = 10
)

type AssessmentService struct {
	assessmentRepository shared.AssessmentRepository
	questionRepository   shared.QuestionRepository
}

func NewAssessmentService(assessmentRepository shared.AssessmentRepository, questionRepository shared.QuestionRepository) *AssessmentService {
	return &AssessmentService{
		assessmentRepository: assessmentRepository,
		questionRepository:   questionRepository,
	}
}

// scoreAnswers is the average of all scale answers rounded to two places.
// It is null if there is no scale answer.
func scoreAnswers(answers []models.AssessmentAnswer) decimal.NullDecimal {
	sum := decimal.Zero
	count := int64(0)
	for _, answer := range answers {
		if answer.ScaleValue == nil {
			continue
		}
		sum = sum.Add(decimal.NewFromInt(int64(*answer.ScaleValue)))
		count++
	}
	if count == 0 {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(sum.Div(decimal.NewFromInt(count)).Round(2))
}

func (s *AssessmentService) Create(userID string, businessID uuid.UUID, title string) (models.Assessment, error) {
	assessment := models.Assessment{
		BusinessID: businessID,
		Title:      title,
		Status:     models.AssessmentStatusDraft,
		CreatedBy:  userID,
	}
	if err := s.assessmentRepository.Create(nil, &assessment); err != nil {
		return models.Assessment{}, echo.NewHTTPError(http.StatusInternalServerError, "could not create assessment").WithInternal(err)
	}
	return assessment, nil
}

func ensureDraft(assessment models.Assessment) error {
	if assessment.Status != models.AssessmentStatusDraft {
		return echo.NewHTTPError(http.StatusConflict, fmt.Sprintf("the assessment is already %s", assessment.Status))
	}
	return nil
}

// Answer stores or overwrites answers. Only drafts can be answered.
func (s *AssessmentService) Answer(assessment models.Assessment, answers []dtos.AnswerRequest) (models.Assessment, error) {
	if err := ensureDraft(assessment); err != nil {
		return models.Assessment{}, err
	}

	questionIDs := make([]uuid.UUID, 0, len(answers))
	for _, answer := range answers {
		questionIDs = append(questionIDs, answer.QuestionID)
	}
	questions, err := s.questionRepository.List(questionIDs)
	if err != nil {
		return models.Assessment{}, echo.NewHTTPError(http.StatusInternalServerError, "could not read questions").WithInternal(err)
	}
	byID := make(map[uuid.UUID]models.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	rows := make([]models.AssessmentAnswer, 0, len(answers))
	for _, answer := range answers {
		question, ok := byID[answer.QuestionID]
		if !ok || question.BusinessID != assessment.BusinessID {
			return models.Assessment{}, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("unknown question %s", answer.QuestionID))
		}
		if question.Archived {
			return models.Assessment{}, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("question %s is archived", answer.QuestionID))
		}

		row := models.AssessmentAnswer{
			Model:        models.Model{ID: uuid.New()},
			AssessmentID: assessment.ID,
			QuestionID:   question.ID,
			Value:        answer.Value,
		}
		if question.Kind == models.QuestionKindScale {
			if answer.ScaleValue == nil || *answer.ScaleValue < minScale || *answer.ScaleValue > maxScale {
				return models.Assessment{}, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("question %s needs a scale value between %d and %d", question.ID, minScale, maxScale))
			}
			row.ScaleValue = answer.ScaleValue
		}
		rows = append(rows, row)
	}

	if err := s.assessmentRepository.SaveAnswers(nil, rows); err != nil {
		return models.Assessment{}, echo.NewHTTPError(http.StatusInternalServerError, "could not save answers").WithInternal(err)
	}
	return s.assessmentRepository.ReadWithAnswers(assessment.ID)
}

// Submit freezes the answers and computes the score.
func (s *AssessmentService) Submit(userID string, assessment *models.Assessment) error {
	if err := ensureDraft(*assessment); err != nil {
		return err
	}
	if len(assessment.Answers) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "the assessment has no answers")
	}

	now := time.Now()
	assessment.Status = models.AssessmentStatusSubmitted
	assessment.SubmittedAt = &now
	assessment.SubmittedBy = &userID
	assessment.Score = scoreAnswers(assessment.Answers)
	return s.assessmentRepository.Save(nil, assessment)
}

func (s *AssessmentService) Review(userID string, assessment *models.Assessment, notes string) error {
	if assessment.Status != models.AssessmentStatusSubmitted {
		return echo.NewHTTPError(http.StatusConflict, "only submitted assessments can be reviewed")
	}
	now := time.Now()
	assessment.Status = models.AssessmentStatusReviewed
	assessment.ReviewedAt = &now
	assessment.ReviewedBy = &userID
	assessment.ReviewNotes = notes
	return s.assessmentRepository.Save(nil, assessment)
}
