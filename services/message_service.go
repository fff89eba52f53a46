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
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/database/models"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/shared"
)

const (
	maxMessageLength    = 5000
	notificationExcerpt = 140
)

type MessageService struct {
	chatMessageRepository shared.ChatMessageRepository
	notificationService   shared.NotificationService
}

func NewMessageService(chatMessageRepository shared.ChatMessageRepository, notificationService shared.NotificationService) *MessageService {
	return &MessageService{
		chatMessageRepository: chatMessageRepository,
		notificationService:   notificationService,
	}
}

func excerpt(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "..."
}

// Send stores the message and notifies every other member of the business.
func (s *MessageService) Send(businessID uuid.UUID, senderID string, body string) (models.ChatMessage, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return models.ChatMessage{}, echo.NewHTTPError(http.StatusBadRequest, "message body is required")
	}
	if utf8.RuneCountInString(body) > maxMessageLength {
		return models.ChatMessage{}, echo.NewHTTPError(http.StatusBadRequest, "message body is too long")
	}

	message := models.ChatMessage{
		BusinessID: businessID,
		SenderID:   senderID,
		Body:       body,
	}
	err := s.chatMessageRepository.Transaction(func(tx shared.DB) error {
		if err := s.chatMessageRepository.Create(tx, &message); err != nil {
			return err
		}
		return s.notificationService.NotifyBusinessMembers(tx, businessID, senderID, models.Notification{
			Type:  models.NotificationTypeMessage,
			Title: "New message",
			Body:  excerpt(body, notificationExcerpt),
		})
	})
	if err != nil {
		return models.ChatMessage{}, echo.NewHTTPError(http.StatusInternalServerError, "could not send message").WithInternal(err)
	}
	return message, nil
}
