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
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/database/models"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/dtos"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/mocks"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/shared"
)

func TestMessageList(t *testing.T) {
	t.Run("rejects a malformed since", func(t *testing.T) {
		ctx, _ := newBusinessContext(http.MethodGet, "/?since=yesterday", nil, "user-1", shared.RoleMember)
		c := NewMessageController(mocks.NewChatMessageRepository(t), mocks.NewMessageService(t))
		assertHTTPError(t, c.List(ctx), http.StatusBadRequest)
	})

	t.Run("clamps the limit and passes since", func(t *testing.T) {
		since := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

		chatMessageRepository := mocks.NewChatMessageRepository(t)
		chatMessageRepository.On("ListByBusinessID", testBusiness.ID, mock.MatchedBy(func(s *time.Time) bool {
			return s != nil && s.Equal(since)
		}), shared.LimitOffset{Limit: 200, Offset: 10}).Return([]models.ChatMessage{}, nil)

		ctx, rec := newBusinessContext(http.MethodGet, "/?since=2025-03-01T12:00:00Z&limit=1000&offset=10", nil, "user-1", shared.RoleMember)
		c := NewMessageController(chatMessageRepository, mocks.NewMessageService(t))
		require.NoError(t, c.List(ctx))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestMessageMarkRead(t *testing.T) {
	messageID := uuid.New()

	chatMessageRepository := mocks.NewChatMessageRepository(t)
	chatMessageRepository.On("Read", messageID).Return(models.ChatMessage{Model: models.Model{ID: messageID}, BusinessID: uuid.New()}, nil)

	ctx, _ := newBusinessContext(http.MethodPost, "/", nil, "user-1", shared.RoleMember)
	setParam(ctx, "messageID", messageID.String())

	c := NewMessageController(chatMessageRepository, mocks.NewMessageService(t))
	assertHTTPError(t, c.MarkRead(ctx), http.StatusNotFound)
}

func TestNotifications(t *testing.T) {
	notificationID := uuid.New()

	t.Run("notifications of other users are not found", func(t *testing.T) {
		notificationRepository := mocks.NewNotificationRepository(t)
		notificationRepository.On("ReadForUser", "user-1", notificationID).Return(models.Notification{}, errors.New("record not found"))

		ctx, _ := newBusinessContext(http.MethodPost, "/", nil, "user-1", shared.RoleMember)
		setParam(ctx, "notificationID", notificationID.String())

		c := NewNotificationController(notificationRepository)
		assertHTTPError(t, c.MarkRead(ctx), http.StatusNotFound)
		assertHTTPError(t, c.Delete(ctx), http.StatusNotFound)
	})

	t.Run("marks an own notification as read", func(t *testing.T) {
		notificationRepository := mocks.NewNotificationRepository(t)
		notificationRepository.On("ReadForUser", "user-1", notificationID).Return(models.Notification{Model: models.Model{ID: notificationID}, UserID: "user-1"}, nil)
		notificationRepository.On("MarkRead", mock.Anything, "user-1", notificationID).Return(nil)

		ctx, rec := newBusinessContext(http.MethodPost, "/", nil, "user-1", shared.RoleMember)
		setParam(ctx, "notificationID", notificationID.String())

		c := NewNotificationController(notificationRepository)
		require.NoError(t, c.MarkRead(ctx))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("lists unread notifications with the default page", func(t *testing.T) {
		notificationRepository := mocks.NewNotificationRepository(t)
		notificationRepository.On("ListByUserID", "user-1", true, shared.LimitOffset{Limit: 50, Offset: 0}).
			Return([]models.Notification{{Model: models.Model{ID: notificationID}, UserID: "user-1", Title: "New message"}}, int64(3), nil)

		ctx, rec := newBusinessContext(http.MethodGet, "/?unread=true", nil, "user-1", shared.RoleMember)

		c := NewNotificationController(notificationRepository)
		require.NoError(t, c.List(ctx))

		var got dtos.ListDTO[models.Notification]
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, int64(3), got.Total)
		assert.Equal(t, 50, got.Limit)
		require.Len(t, got.Data, 1)
		assert.Equal(t, "New message", got.Data[0].Title)
	})

	t.Run("mark all read reports the number of rows", func(t *testing.T) {
		notificationRepository := mocks.NewNotificationRepository(t)
		notificationRepository.On("MarkAllRead", mock.Anything, "user-1").Return(int64(4), nil)

		ctx, rec := newBusinessContext(http.MethodPost, "/", nil, "user-1", shared.RoleMember)

		c := NewNotificationController(notificationRepository)
		require.NoError(t, c.MarkAllRead(ctx))
		assert.JSONEq(t, `{"updated":4}`, rec.Body.String())
	})
}

func TestDocumentVisibility(t *testing.T) {
	own := models.Document{Name: "own.pdf", UploadedBy: "user-1"}
	sharedDoc := models.Document{Name: "shared.pdf", UploadedBy: "coach-1", Shared: true}
	private := models.Document{Name: "private.pdf", UploadedBy: "coach-1"}

	assert.True(t, visibleTo(own, "user-1", shared.RoleMember))
	assert.True(t, visibleTo(sharedDoc, "user-1", shared.RoleMember))
	assert.False(t, visibleTo(private, "user-1", shared.RoleMember))
	assert.True(t, visibleTo(private, "coach-2", shared.RoleCoach))
	assert.True(t, visibleTo(private, "owner-1", shared.RoleOwner))

	t.Run("list filters by folder and visibility", func(t *testing.T) {
		documentRepository := mocks.NewDocumentRepository(t)
		documentRepository.On("ListByBusinessID", testBusiness.ID, mock.MatchedBy(func(f *string) bool {
			return f != nil && *f == "finance"
		})).Return([]models.Document{own, sharedDoc, private}, nil)

		ctx, rec := newBusinessContext(http.MethodGet, "/?folder=finance", nil, "user-1", shared.RoleMember)

		c := NewDocumentController(documentRepository, mocks.NewDocumentService(t))
		require.NoError(t, c.List(ctx))

		var got []models.Document
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		names := make([]string, 0, len(got))
		for _, d := range got {
			names = append(names, d.Name)
		}
		assert.Equal(t, []string{"own.pdf", "shared.pdf"}, names)
	})
}

func TestAssessmentReview(t *testing.T) {
	t.Run("members cannot review", func(t *testing.T) {
		ctx, _ := newBusinessContext(http.MethodPost, "/", strings.NewReader(`{"notes":"good"}`), "user-1", shared.RoleMember)
		ctx.Request().Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		setParam(ctx, "assessmentID", uuid.NewString())

		c := NewAssessmentController(mocks.NewAssessmentRepository(t), mocks.NewAssessmentService(t))
		assertHTTPError(t, c.Review(ctx), http.StatusForbidden)
	})

	t.Run("coaches review submitted assessments", func(t *testing.T) {
		assessmentID := uuid.New()
		assessment := models.Assessment{Model: models.Model{ID: assessmentID}, BusinessID: testBusiness.ID, Status: models.AssessmentStatusSubmitted}

		assessmentRepository := mocks.NewAssessmentRepository(t)
		assessmentRepository.On("ReadWithAnswers", assessmentID).Return(assessment, nil)
		assessmentService := mocks.NewAssessmentService(t)
		assessmentService.On("Review", "coach-1", mock.AnythingOfType("*models.Assessment"), "good").Return(nil)

		ctx, rec := newBusinessContext(http.MethodPost, "/", strings.NewReader(`{"notes":"good"}`), "coach-1", shared.RoleCoach)
		ctx.Request().Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		setParam(ctx, "assessmentID", assessmentID.String())

		c := NewAssessmentController(assessmentRepository, assessmentService)
		require.NoError(t, c.Review(ctx))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestSetActionStatus(t *testing.T) {
	actionID := uuid.New()
	assignee := "user-2"
	action := models.SessionAction{Model: models.Model{ID: actionID}, BusinessID: testBusiness.ID, Title: "Send invoice", AssigneeID: &assignee, Status: models.ActionStatusOpen}

	t.Run("other members are forbidden", func(t *testing.T) {
		sessionActionRepository := mocks.NewSessionActionRepository(t)
		sessionActionRepository.On("Read", actionID).Return(action, nil)

		ctx, _ := newBusinessContext(http.MethodPut, "/", strings.NewReader(`{"status":"done"}`), "user-1", shared.RoleMember)
		ctx.Request().Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		setParam(ctx, "actionID", actionID.String())

		c := NewCoachingController(nil, sessionActionRepository, mocks.NewCoachingSessionService(t))
		assertHTTPError(t, c.SetActionStatus(ctx), http.StatusForbidden)
	})

	t.Run("the assignee completes the action", func(t *testing.T) {
		sessionActionRepository := mocks.NewSessionActionRepository(t)
		sessionActionRepository.On("Read", actionID).Return(action, nil)
		coachingSessionService := mocks.NewCoachingSessionService(t)
		coachingSessionService.On("SetActionStatus", mock.AnythingOfType("*models.SessionAction"), models.ActionStatusDone).Return(nil)

		ctx, rec := newBusinessContext(http.MethodPut, "/", strings.NewReader(`{"status":"done"}`), assignee, shared.RoleMember)
		ctx.Request().Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		setParam(ctx, "actionID", actionID.String())

		c := NewCoachingController(nil, sessionActionRepository, coachingSessionService)
		require.NoError(t, c.SetActionStatus(ctx))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
