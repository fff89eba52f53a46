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

package models

import (
	"time"

	"github.com/google/uuid"
)

type ChatMessage struct {
	Model
	BusinessID uuid.UUID `json:"businessId" gorm:"type:uuid;not null;index:idx_chat_business_created"`
	Business   Business  `json:"-" gorm:"foreignKey:BusinessID;constraint:OnDelete:CASCADE;"`
	SenderID   string    `json:"senderId" gorm:"type:text;not null"`
	Body       string    `json:"body" gorm:"type:text;not null"`
}

func (m ChatMessage) TableName() string {
	return "chat_messages"
}

type ChatMessageRead struct {
	MessageID uuid.UUID   `json:"messageId" gorm:"primarykey;type:uuid"`
	Message   ChatMessage `json:"-" gorm:"foreignKey:MessageID;constraint:OnDelete:CASCADE;"`
	UserID    string      `json:"userId" gorm:"primarykey;type:text"`
	ReadAt    time.Time   `json:"readAt"`
}

func (m ChatMessageRead) TableName() string {
	return "chat_message_reads"
}

type NotificationType string

const (
	NotificationTypeMessage  NotificationType = "message"
	NotificationTypeDocument NotificationType = "document"
	NotificationTypeSession  NotificationType = "session"
	NotificationTypeAction   NotificationType = "action"
	NotificationTypeInvite   NotificationType = "invitation"
)

type Notification struct {
	Model
	UserID     string           `json:"userId" gorm:"type:text;not null;index"`
	BusinessID *uuid.UUID       `json:"businessId" gorm:"type:uuid"`
	Type       NotificationType `json:"type" gorm:"type:text;not null"`
	Title      string           `json:"title" gorm:"type:text;not null"`
	Body       string           `json:"body" gorm:"type:text"`
	Link       *string          `json:"link" gorm:"type:text"`
	ReadAt     *time.Time       `json:"readAt"`
}

func (m Notification) TableName() string {
	return "notifications"
}

type Document struct {
	Model
	BusinessID  uuid.UUID `json:"businessId" gorm:"type:uuid;not null;index"`
	Business    Business  `json:"-" gorm:"foreignKey:BusinessID;constraint:OnDelete:CASCADE;"`
	Name        string    `json:"name" gorm:"type:text;not null"`
	Folder      string    `json:"folder" gorm:"type:text;default:''"`
	ContentType string    `json:"contentType" gorm:"type:text"`
	Size        int64     `json:"size"`
	Checksum    string    `json:"checksum" gorm:"type:text"`
	StoragePath string    `json:"-" gorm:"type:text;not null"`
	UploadedBy  string    `json:"uploadedBy" gorm:"type:text"`
	Shared      bool      `json:"shared" gorm:"default:false"`
}

func (m Document) TableName() string {
	return "documents"
}
