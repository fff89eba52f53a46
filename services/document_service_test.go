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
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/config"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/database/models"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/dtos"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/mocks"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/shared"
)

func newTestStorage(t *testing.T) *LocalDocumentStorage {
	cfg := config.Config{}
	cfg.Documents.StorageDir = t.TempDir()
	storage, err := NewLocalDocumentStorage(cfg)
	assert.Nil(t, err)
	return storage
}

func TestLocalDocumentStorage(t *testing.T) {
	businessID := uuid.New()

	t.Run("should store, open and delete files", func(t *testing.T) {
		storage := newTestStorage(t)

		stored, err := storage.Save(businessID, "Report.PDF", strings.NewReader("hello"))
		assert.Nil(t, err)
		assert.Equal(t, int64(5), stored.Size)
		assert.Equal(t, "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824", stored.Checksum)
		assert.True(t, strings.HasPrefix(stored.Path, businessID.String()+string(os.PathSeparator)))
		assert.Equal(t, ".pdf", filepath.Ext(stored.Path))

		f, err := storage.Open(stored.Path)
		assert.Nil(t, err)
		content, _ := io.ReadAll(f)
		f.Close()
		assert.Equal(t, "hello", string(content))

		assert.Nil(t, storage.Delete(stored.Path))
		// deleting twice is fine
		assert.Nil(t, storage.Delete(stored.Path))
	})

	t.Run("should stay inside the storage directory", func(t *testing.T) {
		storage := newTestStorage(t)
		full, err := storage.resolve("../../etc/passwd")
		assert.Nil(t, err)
		assert.True(t, strings.HasPrefix(full, storage.dir))

		_, err = storage.resolve("/")
		assert.ErrorIs(t, err, errInvalidStoragePath)
	})

	t.Run("should remove every file of a business", func(t *testing.T) {
		storage := newTestStorage(t)
		stored, err := storage.Save(businessID, "a.txt", strings.NewReader("a"))
		assert.Nil(t, err)

		assert.Nil(t, storage.RemoveAll(businessID))
		_, err = storage.Open(stored.Path)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestDocumentUpload(t *testing.T) {
	businessID := uuid.New()

	t.Run("should reject files above the size limit and leave nothing behind", func(t *testing.T) {
		storage := newTestStorage(t)
		cfg := config.Config{}
		cfg.Documents.MaxSize = 4

		s := NewDocumentService(mocks.NewDocumentRepository(t), storage, mocks.NewNotificationService(t), cfg)
		_, err := s.Upload("user", businessID, shared.DocumentUpload{Name: "big.txt", Content: strings.NewReader("too large")})
		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))

		entries, _ := os.ReadDir(filepath.Join(storage.dir, businessID.String()))
		assert.Empty(t, entries)
	})

	t.Run("should notify the members about shared documents", func(t *testing.T) {
		documentRepository := mocks.NewDocumentRepository(t)
		notificationService := mocks.NewNotificationService(t)

		documentRepository.On("Transaction", mock.Anything).Return(runTransaction)
		documentRepository.On("Create", mock.Anything, mock.Anything).Return(nil)
		notificationService.On("NotifyBusinessMembers", mock.Anything, businessID, "user", mock.MatchedBy(func(n models.Notification) bool {
			return n.Type == models.NotificationTypeDocument && n.Body == "plan.xlsx"
		})).Return(nil)

		cfg := config.Config{}
		cfg.Documents.MaxSize = 1024
		s := NewDocumentService(documentRepository, newTestStorage(t), notificationService, cfg)
		document, err := s.Upload("user", businessID, shared.DocumentUpload{
			Name:    " plan.xlsx ",
			Folder:  "/finance/",
			Shared:  true,
			Content: strings.NewReader("data"),
		})
		assert.Nil(t, err)
		assert.Equal(t, "plan.xlsx", document.Name)
		assert.Equal(t, "finance", document.Folder)
		assert.Equal(t, int64(4), document.Size)
	})

	t.Run("should remove the stored file if the row cannot be written", func(t *testing.T) {
		storage := newTestStorage(t)
		documentRepository := mocks.NewDocumentRepository(t)
		documentRepository.On("Transaction", mock.Anything).Return(fmt.Errorf("db down"))

		s := NewDocumentService(documentRepository, storage, mocks.NewNotificationService(t), config.Config{})
		_, err := s.Upload("user", businessID, shared.DocumentUpload{Name: "a.txt", Content: strings.NewReader("a")})
		assert.Equal(t, http.StatusInternalServerError, statusOf(t, err))

		entries, _ := os.ReadDir(filepath.Join(storage.dir, businessID.String()))
		assert.Empty(t, entries)
	})
}

func TestDocumentUpdate(t *testing.T) {
	yes := true

	t.Run("should only notify when a document becomes shared", func(t *testing.T) {
		documentRepository := mocks.NewDocumentRepository(t)
		notificationService := mocks.NewNotificationService(t)
		documentRepository.On("Transaction", mock.Anything).Return(runTransaction)
		documentRepository.On("Save", mock.Anything, mock.Anything).Return(nil)
		notificationService.On("NotifyBusinessMembers", mock.Anything, mock.Anything, "user", mock.Anything).Return(nil).Once()

		s := NewDocumentService(documentRepository, mocks.NewDocumentStorage(t), notificationService, config.Config{})
		document := models.Document{Name: "plan.xlsx"}
		assert.Nil(t, s.Update("user", &document, dtos.DocumentPatchRequest{Shared: &yes}))
		assert.Nil(t, s.Update("user", &document, dtos.DocumentPatchRequest{Shared: &yes}))
	})
}
