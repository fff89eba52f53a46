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
)

type NotificationController struct {
	notificationRepository shared.NotificationRepository
}

func NewNotificationController(notificationRepository shared.NotificationRepository) *NotificationController {
	return &NotificationController{
		notificationRepository: notificationRepository,
	}
}

// readOwn returns 404 for notifications of other users.
func (c *NotificationController) readOwn(ctx shared.Context) (models.Notification, error) {
	id, err := uuidParam(ctx, "notificationID")
	if err != nil {
		return models.Notification{}, err
	}
	notification, err := c.notificationRepository.ReadForUser(currentUserID(ctx), id)
	if err != nil {
		return models.Notification{}, echo.NewHTTPError(http.StatusNotFound, "could not find notification").WithInternal(err)
	}
	return notification, nil
}

func (c *NotificationController) List(ctx shared.Context) error {
	unreadOnly, _ := strconv.ParseBool(ctx.QueryParam("unread"))
	page := shared.GetLimitOffset(ctx, 50, 200)

	notifications, total, err := c.notificationRepository.ListByUserID(currentUserID(ctx), unreadOnly, page)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not list notifications").WithInternal(err)
	}
	return ctx.JSON(http.StatusOK, dtos.ListDTO[models.Notification]{
		Data:   notifications,
		Total:  total,
		Limit:  page.Limit,
		Offset: page.Offset,
	})
}

func (c *NotificationController) MarkRead(ctx shared.Context) error {
	notification, err := c.readOwn(ctx)
	if err != nil {
		return err
	}
	if err := c.notificationRepository.MarkRead(nil, notification.UserID, notification.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not mark notification as read").WithInternal(err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (c *NotificationController) MarkAllRead(ctx shared.Context) error {
	updated, err := c.notificationRepository.MarkAllRead(nil, currentUserID(ctx))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not mark notifications as read").WithInternal(err)
	}
	return ctx.JSON(http.StatusOK, dtos.ReadAllResponse{Updated: updated})
}

func (c *NotificationController) Delete(ctx shared.Context) error {
	notification, err := c.readOwn(ctx)
	if err != nil {
		return err
	}
	if err := c.notificationRepository.Delete(nil, notification.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not delete notification").WithInternal(err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
