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
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/dtos"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/shared"
)

type MessageController struct {
	chatMessageRepository shared.ChatMessageRepository
	messageService        shared.MessageService
}

func NewMessageController(chatMessageRepository shared.ChatMessageRepository, messageService shared.MessageService) *MessageController {
	return &MessageController{
		chatMessageRepository: chatMessageRepository,
		messageService:        messageService,
	}
}

func (c *MessageController) List(ctx shared.Context) error {
	var since *time.Time
	if s := ctx.QueryParam("since"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "since must be an RFC3339 timestamp").WithInternal(err)
		}
		since = &t
	}

	page := shared.GetLimitOffset(ctx, 50, 200)
	messages, err := c.chatMessageRepository.ListByBusinessID(shared.GetBusiness(ctx).ID, since, page)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not list messages").WithInternal(err)
	}
	return ctx.JSON(http.StatusOK, messages)
}

func (c *MessageController) Send(ctx shared.Context) error {
	var req dtos.MessageCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	message, err := c.messageService.Send(shared.GetBusiness(ctx).ID, currentUserID(ctx), req.Body)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, message)
}

func (c *MessageController) MarkRead(ctx shared.Context) error {
	messageID, err := uuidParam(ctx, "messageID")
	if err != nil {
		return err
	}

	message, err := c.chatMessageRepository.Read(messageID)
	if err != nil || message.BusinessID != shared.GetBusiness(ctx).ID {
		return echo.NewHTTPError(http.StatusNotFound, "could not find message")
	}

	if err := c.chatMessageRepository.MarkRead(nil, message.ID, currentUserID(ctx)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not mark message as read").WithInternal(err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
