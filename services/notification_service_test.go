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
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/database/models"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/mocks"
)

func TestNotifyBusinessMembers(t *testing.T) {
	businessID := uuid.New()

	notificationRepository := mocks.NewNotificationRepository(t)
	rbacProvider := mocks.NewRBACProvider(t)
	rbac := mocks.NewAccessControl(t)

	rbacProvider.On("GetDomainRBAC", businessID.String()).Return(rbac)
	rbac.On("GetAllMembers").Return([]string{"sender", "a", "b", "a"}, nil)
	notificationRepository.On("SaveBatchBestEffort", mock.Anything, mock.MatchedBy(func(notifications []models.Notification) bool {
		if len(notifications) != 2 || notifications[0].ID == notifications[1].ID {
			return false
		}
		for _, n := range notifications {
			if n.UserID == "sender" || *n.BusinessID != businessID || n.Title != "New message" {
				return false
			}
		}
		return notifications[0].UserID == "a" && notifications[1].UserID == "b"
	})).Return(nil)

	s := NewNotificationService(notificationRepository, rbacProvider)
	err := s.NotifyBusinessMembers(nil, businessID, "sender", models.Notification{Type: models.NotificationTypeMessage, Title: "New message"})
	assert.Nil(t, err)
}

func TestNotifyWithoutRecipients(t *testing.T) {
	s := NewNotificationService(mocks.NewNotificationRepository(t), mocks.NewRBACProvider(t))
	assert.Nil(t, s.Notify(nil, nil, models.Notification{}))
}
