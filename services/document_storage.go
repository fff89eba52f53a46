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
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/config"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/shared"
)

var errInvalidStoragePath = errors.New("invalid storage path")

// LocalDocumentStorage keeps the files below <dir>/<businessID>/.
// Stored paths are relative to dir.
type LocalDocumentStorage struct {
	dir string
}

func NewLocalDocumentStorage(cfg config.Config) (*LocalDocumentStorage, error) {
	dir, err := filepath.Abs(cfg.Documents.StorageDir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("could not create document storage directory: %w", err)
	}
	return &LocalDocumentStorage{dir: dir}, nil
}

func (s *LocalDocumentStorage) resolve(path string) (string, error) {
	full := filepath.Join(s.dir, filepath.Clean("/"+path))
	if !strings.HasPrefix(full, s.dir+string(os.PathSeparator)) {
		return "", errInvalidStoragePath
	}
	return full, nil
}

func (s *LocalDocumentStorage) Save(businessID uuid.UUID, name string, r io.Reader) (shared.StoredFile, error) {
	rel := filepath.Join(businessID.String(), uuid.NewString()+strings.ToLower(filepath.Ext(filepath.Base(name))))
	full, err := s.resolve(rel)
	if err != nil {
		return shared.StoredFile{}, err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o750); err != nil {
		return shared.StoredFile{}, err
	}

	f, err := os.OpenFile(full, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o640)
	if err != nil {
		return shared.StoredFile{}, err
	}

	hash := sha256.New()
	size, err := io.Copy(io.MultiWriter(f, hash), r)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(full)
		return shared.StoredFile{}, err
	}

	return shared.StoredFile{
		Path:     rel,
		Size:     size,
		Checksum: hex.EncodeToString(hash.Sum(nil)),
	}, nil
}

func (s *LocalDocumentStorage) Open(path string) (io.ReadCloser, error) {
	full, err := s.resolve(path)
	if err != nil {
		return nil, err
	}
	return os.Open(full)
}

func (s *LocalDocumentStorage) Delete(path string) error {
	full, err := s.resolve(path)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (s *LocalDocumentStorage) RemoveAll(businessID uuid.UUID) error {
	full, err := s.resolve(businessID.String())
	if err != nil {
		return err
	}
	return os.RemoveAll(full)
}
