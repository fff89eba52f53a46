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
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/shared"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type chatMessageRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.ChatMessage, *gorm.DB]
}

func NewChatMessageRepository(db *gorm.DB) *chatMessageRepository {
	return &chatMessageRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.ChatMessage](db),
	}
}

// ListByBusinessID returns the newest messages first.
func (g *chatMessageRepository) ListByBusinessID(businessID uuid.UUID, since *time.Time, page shared.LimitOffset) ([]models.ChatMessage, error) {
	var ts []models.ChatMessage
	q := g.db.Where("business_id = ?", businessID)
	if since != nil {
		q = q.Where("created_at > ?", *since)
	}
	err := page.ApplyOnDB(q).Order("created_at DESC").Find(&ts).Error
	return ts, err
}

func (g *chatMessageRepository) MarkRead(tx *gorm.DB, messageID uuid.UUID, userID string) error {
	return g.GetDB(tx).Omit(clause.Associations).Clauses(clause.OnConflict{DoNothing: true}).Create(&models.ChatMessageRead{
		MessageID: messageID,
		UserID:    userID,
		ReadAt:    time.Now(),
	}).Error
}

// CountUnread counts the messages of other members the user has not read yet.
func (g *chatMessageRepository) CountUnread(businessID uuid.UUID, userID string) (int64, error) {
	var count int64
	err := g.db.Model(&models.ChatMessage{}).
		Where("business_id = ? AND sender_id <> ?", businessID, userID).
		Where("NOT EXISTS (SELECT 1 FROM chat_message_reads r WHERE r.message_id = chat_messages.id AND r.user_id = ?)", userID).
		Count(&count).Error
	return count, err
}

type notificationRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Notification]
}

func NewNotificationRepository(db *gorm.DB) *notificationRepository {
	return &notificationRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Notification](db),
	}
}

func (g *notificationRepository) ListByUserID(userID string, unreadOnly bool, page shared.LimitOffset) ([]models.Notification, int64, error) {
	var ts []models.Notification
	var total int64

	q := g.db.Model(&models.Notification{}).Where("user_id = ?", userID)
	if unreadOnly {
		q = q.Where("read_at IS NULL")
	}
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := page.ApplyOnDB(q).Order("created_at DESC").Find(&ts).Error
	return ts, total, err
}

func (g *notificationRepository) ReadForUser(userID string, id uuid.UUID) (models.Notification, error) {
	var t models.Notification
	err := g.db.Where("id = ? AND user_id = ?", id, userID).First(&t).Error
	return t, err
}

func (g *notificationRepository) MarkRead(tx *gorm.DB, userID string, id uuid.UUID) error {
	res := g.GetDB(tx).Model(&models.Notification{}).
		Where("id = ? AND user_id = ? AND read_at IS NULL", id, userID).
		Update("read_at", time.Now())
	return res.Error
}

func (g *notificationRepository) MarkAllRead(tx *gorm.DB, userID string) (int64, error) {
	res := g.GetDB(tx).Model(&models.Notification{}).
		Where("user_id = ? AND read_at IS NULL", userID).
		Update("read_at", time.Now())
	return res.RowsAffected, res.Error
}

type documentRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.Document, *gorm.DB]
}

func NewDocumentRepository(db *gorm.DB) *documentRepository {
	return &documentRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Document](db),
	}
}

func (g *documentRepository) ListByBusinessID(businessID uuid.UUID, folder *string) ([]models.Document, error) {
	var ts []models.Document
	q := g.db.Where("business_id = ?", businessID)
	if folder != nil {
		q = q.Where("folder = ?", *folder)
	}
	err := q.Order("folder ASC, name ASC").Find(&ts).Error
	return ts, err
}
