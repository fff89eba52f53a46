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
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/config"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/database/models"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/dtos"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/shared"
)

var errFileTooLarge = errors.New("file too large")

// limitedReader fails once more than limit bytes were read.
type limitedReader struct {
	r     io.Reader
	limit int64
	read  int64
}

func (l *limitedReader) Read(p []byte) (int, error) {
	n, err := l.r.Read(p)
	l.read += int64(n)
	if l.read > l.limit {
		return n, errFileTooLarge
	}
	return n, err
}

type DocumentService struct {
	documentRepository  shared.DocumentRepository
	documentStorage     shared.DocumentStorage
	notificationService shared.NotificationService
	maxSize             int64
}

func NewDocumentService(documentRepository shared.DocumentRepository, documentStorage shared.DocumentStorage, notificationService shared.NotificationService, cfg config.Config) *DocumentService {
	return &DocumentService{
		documentRepository:  documentRepository,
		documentStorage:     documentStorage,
		notificationService: notificationService,
		maxSize:             cfg.Documents.MaxSize,
	}
}

func (s *DocumentService) notifyShared(tx shared.DB, userID string, document models.Document) error {
	return s.notificationService.NotifyBusinessMembers(tx, document.BusinessID, userID, models.Notification{
		Type:  models.NotificationTypeDocument,
		Title: "A document was shared with you",
		Body:  document.Name,
	})
}

func (s *DocumentService) Upload(userID string, businessID uuid.UUID, upload shared.DocumentUpload) (models.Document, error) {
	name := strings.TrimSpace(upload.Name)
	if name == "" {
		return models.Document{}, echo.NewHTTPError(http.StatusBadRequest, "file name is required")
	}

	content := upload.Content
	if s.maxSize > 0 {
		content = &limitedReader{r: upload.Content, limit: s.maxSize}
	}

	stored, err := s.documentStorage.Save(businessID, name, content)
	if err != nil {
		if errors.Is(err, errFileTooLarge) {
			return models.Document{}, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("file exceeds the maximum size of %d bytes", s.maxSize))
		}
		return models.Document{}, echo.NewHTTPError(http.StatusInternalServerError, "could not store file").WithInternal(err)
	}

	document := models.Document{
		BusinessID:  businessID,
		Name:        name,
		Folder:      strings.Trim(upload.Folder, "/ "),
		ContentType: upload.ContentType,
		Size:        stored.Size,
		Checksum:    stored.Checksum,
		StoragePath: stored.Path,
		UploadedBy:  userID,
		Shared:      upload.Shared,
	}

	err = s.documentRepository.Transaction(func(tx shared.DB) error {
		if err := s.documentRepository.Create(tx, &document); err != nil {
			return err
		}
		if document.Shared {
			return s.notifyShared(tx, userID, document)
		}
		return nil
	})
	if err != nil {
		if delErr := s.documentStorage.Delete(stored.Path); delErr != nil {
			slog.Error("could not remove orphaned file", "path", stored.Path, "err", delErr)
		}
		return models.Document{}, echo.NewHTTPError(http.StatusInternalServerError, "could not save document").WithInternal(err)
	}
	return document, nil
}

func (s *DocumentService) Open(document models.Document) (io.ReadCloser, error) {
	return s.documentStorage.Open(document.StoragePath)
}

// Update notifies the members when a document becomes shared.
func (s *DocumentService) Update(userID string, document *models.Document, patch dtos.DocumentPatchRequest) error {
	wasShared := document.Shared
	if patch.Name != nil {
		document.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Folder != nil {
		document.Folder = strings.Trim(*patch.Folder, "/ ")
	}
	if patch.Shared != nil {
		document.Shared = *patch.Shared
	}
	if document.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "file name is required")
	}

	return s.documentRepository.Transaction(func(tx shared.DB) error {
		if err := s.documentRepository.Save(tx, document); err != nil {
			return err
		}
		if document.Shared && !wasShared {
			return s.notifyShared(tx, userID, *document)
		}
		return nil
	})
}

func (s *DocumentService) Delete(document models.Document) error {
	if err := s.documentRepository.Delete(nil, document.ID); err != nil {
		return err
	}
	if err := s.documentStorage.Delete(document.StoragePath); err != nil {
		slog.Warn("could not remove file of deleted document", "path", document.StoragePath, "err", err)
	}
	return nil
}
