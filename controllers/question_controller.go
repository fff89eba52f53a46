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

package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/database/models"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/dtos"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/shared"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/transformer"
)

type QuestionController struct {
	questionRepository shared.QuestionRepository
}

func NewQuestionController(questionRepository shared.QuestionRepository) *QuestionController {
	return &QuestionController{
		questionRepository: questionRepository,
	}
}

func (c *QuestionController) readQuestion(ctx shared.Context) (models.Question, error) {
	questionID, err := uuidParam(ctx, "questionID")
	if err != nil {
		return models.Question{}, err
	}
	question, err := c.questionRepository.Read(questionID)
	if err != nil || question.BusinessID != shared.GetBusiness(ctx).ID {
		return models.Question{}, echo.NewHTTPError(http.StatusNotFound, "could not find question")
	}
	return question, nil
}

func (c *QuestionController) List(ctx shared.Context) error {
	includeArchived, _ := strconv.ParseBool(ctx.QueryParam("archived"))
	questions, err := c.questionRepository.ListByBusinessID(shared.GetBusiness(ctx).ID, includeArchived)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not list questions").WithInternal(err)
	}
	return ctx.JSON(http.StatusOK, questions)
}

func (c *QuestionController) Create(ctx shared.Context) error {
	var req dtos.QuestionCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	question := transformer.QuestionCreateRequestToModel(req, shared.GetBusiness(ctx).ID)
	if question.Prompt == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "prompt is required")
	}
	if err := c.questionRepository.Create(nil, &question); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not create question").WithInternal(err)
	}
	return ctx.JSON(http.StatusCreated, question)
}

func (c *QuestionController) Update(ctx shared.Context) error {
	question, err := c.readQuestion(ctx)
	if err != nil {
		return err
	}

	var req dtos.QuestionPatchRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	if transformer.ApplyQuestionPatchRequestToModel(req, &question) {
		if question.Prompt == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "prompt is required")
		}
		if err := c.questionRepository.Save(nil, &question); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "could not update question").WithInternal(err)
		}
	}
	return ctx.JSON(http.StatusOK, question)
}

func (c *QuestionController) Delete(ctx shared.Context) error {
	question, err := c.readQuestion(ctx)
	if err != nil {
		return err
	}
	if err := c.questionRepository.Delete(nil, question.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not delete question").WithInternal(err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

type AssessmentController struct {
	assessmentRepository shared.AssessmentRepository
	assessmentService    shared.AssessmentService
}

func NewAssessmentController(assessmentRepository shared.AssessmentRepository, assessmentService shared.AssessmentService) *AssessmentController {
	return &AssessmentController{
		assessmentRepository: assessmentRepository,
		assessmentService:    assessmentService,
	}
}

func (c *AssessmentController) readAssessment(ctx shared.Context) (models.Assessment, error) {
	assessmentID, err := uuidParam(ctx, "assessmentID")
	if err != nil {
		return models.Assessment{}, err
	}
	assessment, err := c.assessmentRepository.ReadWithAnswers(assessmentID)
	if err != nil || assessment.BusinessID != shared.GetBusiness(ctx).ID {
		return models.Assessment{}, echo.NewHTTPError(http.StatusNotFound, "could not find assessment")
	}
	return assessment, nil
}

func (c *AssessmentController) List(ctx shared.Context) error {
	assessments, err := c.assessmentRepository.ListByBusinessID(shared.GetBusiness(ctx).ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not list assessments").WithInternal(err)
	}
	return ctx.JSON(http.StatusOK, assessments)
}

func (c *AssessmentController) Create(ctx shared.Context) error {
	var req dtos.AssessmentCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	assessment, err := c.assessmentService.Create(currentUserID(ctx), shared.GetBusiness(ctx).ID, req.Title)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, assessment)
}

func (c *AssessmentController) Read(ctx shared.Context) error {
	assessment, err := c.readAssessment(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, assessment)
}

func (c *AssessmentController) Answer(ctx shared.Context) error {
	assessment, err := c.readAssessment(ctx)
	if err != nil {
		return err
	}

	var req dtos.AnswersRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	assessment, err = c.assessmentService.Answer(assessment, req.Answers)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, assessment)
}

func (c *AssessmentController) Submit(ctx shared.Context) error {
	assessment, err := c.readAssessment(ctx)
	if err != nil {
		return err
	}
	if err := c.assessmentService.Submit(currentUserID(ctx), &assessment); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, assessment)
}

// Review is restricted to coaches, members may update assessments but not review them.
func (c *AssessmentController) Review(ctx shared.Context) error {
	if role := shared.GetRole(ctx); role != shared.RoleOwner && role != shared.RoleCoach {
		return echo.NewHTTPError(http.StatusForbidden, "only coaches can review assessments")
	}

	assessment, err := c.readAssessment(ctx)
	if err != nil {
		return err
	}

	var req dtos.ReviewRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	if err := c.assessmentService.Review(currentUserID(ctx), &assessment, req.Notes); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, assessment)
}

func (c *AssessmentController) Delete(ctx shared.Context) error {
	assessment, err := c.readAssessment(ctx)
	if err != nil {
		return err
	}
	if err := c.assessmentRepository.Delete(nil, assessment.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not delete assessment").WithInternal(err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
