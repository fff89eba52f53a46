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
	"github.com/google/uuid"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/database/models"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/shared"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/utils"
)

type NotificationService struct {
	notificationRepository shared.NotificationRepository
	rbacProvider           shared.RBACProvider
}

func NewNotificationService(notificationRepository shared.NotificationRepository, rbacProvider shared.RBACProvider) *NotificationService {
	return &NotificationService{
		notificationRepository: notificationRepository,
		rbacProvider:           rbacProvider,
	}
}

// Notify creates one copy of the notification per user.
func (s *NotificationService) Notify(tx shared.DB, userIDs []string, notification models.Notification) error {
	userIDs = utils.UniqBy(userIDs, func(id string) string { return id })
	if len(userIDs) == 0 {
		return nil
	}

	notifications := make([]models.Notification, 0, len(userIDs))
	for _, userID := range userIDs {
		n := notification
		n.ID = uuid.New()
		n.UserID = userID
		n.ReadAt = nil
		notifications = append(notifications, n)
	}
	return s.notificationRepository.SaveBatchBestEffort(tx, notifications)
}

func (s *NotificationService) NotifyBusinessMembers(tx shared.DB, businessID uuid.UUID, exceptUserID string, notification models.Notification) error {
	members, err := s.rbacProvider.GetDomainRBAC(businessID.String()).GetAllMembers()
	if err != nil {
		return err
	}

	recipients := utils.Filter(members, func(member string) bool {
		return member != exceptUserID
	})
	notification.BusinessID = &businessID
	return s.Notify(tx, recipients, notification)
}
