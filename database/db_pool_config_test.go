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

package database

import (
	"testing"
	"time"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/config"
	"github.com/stretchr/testify/assert"
)

func TestNewPoolConfig(t *testing.T) {
	t.Run("should use the configured values", func(t *testing.T) {
		pc := NewPoolConfig(config.PostgresConfig{
			Host:            "db",
			MaxOpenConns:    50,
			MinConns:        10,
			ConnMaxLifetime: time.Hour,
			ConnMaxIdleTime: time.Minute,
		})
		assert.Equal(t, "db", pc.Host)
		assert.Equal(t, int32(50), pc.MaxOpenConns)
		assert.Equal(t, int32(10), pc.MinConns)
		assert.Equal(t, time.Hour, pc.ConnMaxLifetime)
		assert.Equal(t, time.Minute, pc.ConnMaxIdleTime)
	})

	t.Run("should fall back to defaults for invalid limits", func(t *testing.T) {
		pc := NewPoolConfig(config.PostgresConfig{MaxOpenConns: -1, MinConns: 100})
		assert.Equal(t, int32(25), pc.MaxOpenConns)
		assert.Equal(t, int32(5), pc.MinConns)
		assert.Equal(t, 4*time.Hour, pc.ConnMaxLifetime)
	})
}

func TestGetDSN(t *testing.T) {
	assert.Equal(t, "postgres://u:p@h:5432/d?sslmode=disable", getDSN("h", "u", "p", "d", "5432"))
}
