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

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/database/models"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/dtos"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/shared"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/transformer"
)

type CoachingController struct {
	coachingSessionRepository shared.CoachingSessionRepository
	sessionActionRepository   shared.SessionActionRepository
	coachingSessionService    shared.CoachingSessionService
}

func NewCoachingController(coachingSessionRepository shared.CoachingSessionRepository, sessionActionRepository shared.SessionActionRepository, coachingSessionService shared.CoachingSessionService) *CoachingController {
	return &CoachingController{
		coachingSessionRepository: coachingSessionRepository,
		sessionActionRepository:   sessionActionRepository,
		coachingSessionService:    coachingSessionService,
	}
}

func (c *CoachingController) readSession(ctx shared.Context) (models.CoachingSession, error) {
	sessionID, err := uuidParam(ctx, "sessionID")
	if err != nil {
		return models.CoachingSession{}, err
	}
	session, err := c.coachingSessionRepository.ReadWithActions(sessionID)
	if err != nil || session.BusinessID != shared.GetBusiness(ctx).ID {
		return models.CoachingSession{}, echo.NewHTTPError(http.StatusNotFound, "could not find session")
	}
	return session, nil
}

func (c *CoachingController) readAction(ctx shared.Context) (models.SessionAction, error) {
	actionID, err := uuidParam(ctx, "actionID")
	if err != nil {
		return models.SessionAction{}, err
	}
	action, err := c.sessionActionRepository.Read(actionID)
	if err != nil || action.BusinessID != shared.GetBusiness(ctx).ID {
		return models.SessionAction{}, echo.NewHTTPError(http.StatusNotFound, "could not find action")
	}
	return action, nil
}

func (c *CoachingController) ListSessions(ctx shared.Context) error {
	status := ctx.QueryParam("status")
	switch models.SessionStatus(status) {
	case "", models.SessionStatusScheduled, models.SessionStatusCompleted, models.SessionStatusCancelled:
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "invalid status filter")
	}

	sessions, err := c.coachingSessionRepository.ListByBusinessID(shared.GetBusiness(ctx).ID, status)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not list sessions").WithInternal(err)
	}
	return ctx.JSON(http.StatusOK, sessions)
}

func (c *CoachingController) CreateSession(ctx shared.Context) error {
	var req dtos.SessionCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	userID := currentUserID(ctx)
	session := transformer.SessionCreateRequestToModel(req, shared.GetBusiness(ctx).ID, userID)
	if session.Title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}
	if err := c.coachingSessionService.Create(userID, &session); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not create session").WithInternal(err)
	}
	return ctx.JSON(http.StatusCreated, session)
}

func (c *CoachingController) ReadSession(ctx shared.Context) error {
	session, err := c.readSession(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, session)
}

func (c *CoachingController) UpdateSession(ctx shared.Context) error {
	session, err := c.readSession(ctx)
	if err != nil {
		return err
	}

	var req dtos.SessionPatchRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	if transformer.ApplySessionPatchRequestToModel(req, &session) {
		if session.Title == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "title is required")
		}
		session.Actions = nil
		if err := c.coachingSessionRepository.Save(nil, &session); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "could not update session").WithInternal(err)
		}
	}
	return ctx.JSON(http.StatusOK, session)
}

func (c *CoachingController) DeleteSession(ctx shared.Context) error {
	session, err := c.readSession(ctx)
	if err != nil {
		return err
	}
	if err := c.coachingSessionRepository.Delete(nil, session.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not delete session").WithInternal(err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (c *CoachingController) CompleteSession(ctx shared.Context) error {
	session, err := c.readSession(ctx)
	if err != nil {
		return err
	}

	var req dtos.SessionCompleteRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	session.Actions = nil
	if err := c.coachingSessionService.Complete(&session, req.Notes); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, session)
}

func (c *CoachingController) CancelSession(ctx shared.Context) error {
	session, err := c.readSession(ctx)
	if err != nil {
		return err
	}

	session.Actions = nil
	if err := c.coachingSessionService.Cancel(&session); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, session)
}

func (c *CoachingController) ListSessionActions(ctx shared.Context) error {
	session, err := c.readSession(ctx)
	if err != nil {
		return err
	}
	actions, err := c.sessionActionRepository.ListBySessionID(session.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not list actions").WithInternal(err)
	}
	return ctx.JSON(http.StatusOK, actions)
}

func (c *CoachingController) createAction(ctx shared.Context, sessionID *uuid.UUID) error {
	var req dtos.ActionCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	action := transformer.ActionCreateRequestToModel(req, shared.GetBusiness(ctx).ID, sessionID)
	if action.Title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}
	if err := c.coachingSessionService.CreateAction(currentUserID(ctx), &action); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not create action").WithInternal(err)
	}
	return ctx.JSON(http.StatusCreated, action)
}

func (c *CoachingController) CreateSessionAction(ctx shared.Context) error {
	session, err := c.readSession(ctx)
	if err != nil {
		return err
	}
	return c.createAction(ctx, &session.ID)
}

// CreateAction creates an action which does not belong to a session.
func (c *CoachingController) CreateAction(ctx shared.Context) error {
	return c.createAction(ctx, nil)
}

func (c *CoachingController) ListOpenActions(ctx shared.Context) error {
	actions, err := c.sessionActionRepository.ListOpenByBusinessID(shared.GetBusiness(ctx).ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not list actions").WithInternal(err)
	}
	return ctx.JSON(http.StatusOK, actions)
}

func (c *CoachingController) UpdateAction(ctx shared.Context) error {
	action, err := c.readAction(ctx)
	if err != nil {
		return err
	}

	var req dtos.ActionPatchRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	if transformer.ApplyActionPatchRequestToModel(req, &action) {
		if action.Title == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "title is required")
		}
		if err := c.sessionActionRepository.Save(nil, &action); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "could not update action").WithInternal(err)
		}
	}
	if req.Status != nil {
		if err := c.coachingSessionService.SetActionStatus(&action, models.ActionStatus(*req.Status)); err != nil {
			return err
		}
	}
	return ctx.JSON(http.StatusOK, action)
}

type actionStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=open done"`
}

// SetActionStatus is open to the assignee of the action as well, everything
// else about an action is managed by coaches.
func (c *CoachingController) SetActionStatus(ctx shared.Context) error {
	action, err := c.readAction(ctx)
	if err != nil {
		return err
	}

	userID := currentUserID(ctx)
	role := shared.GetRole(ctx)
	isAssignee := action.AssigneeID != nil && *action.AssigneeID == userID
	if role != shared.RoleOwner && role != shared.RoleCoach && !isAssignee {
		return echo.NewHTTPError(http.StatusForbidden, "only coaches and the assignee can change the status of an action")
	}

	var req actionStatusRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	if err := c.coachingSessionService.SetActionStatus(&action, models.ActionStatus(req.Status)); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, action)
}

func (c *CoachingController) DeleteAction(ctx shared.Context) error {
	action, err := c.readAction(ctx)
	if err != nil {
		return err
	}
	if err := c.sessionActionRepository.Delete(nil, action.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not delete action").WithInternal(err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
