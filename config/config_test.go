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

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("should fall back to the defaults", func(t *testing.T) {
		cfg, err := Load()
		assert.Nil(t, err)
		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, int32(25), cfg.Postgres.MaxOpenConns)
		assert.Equal(t, 15*time.Minute, cfg.ActiveBusinessCache.TTL)
		assert.Equal(t, int64(25<<20), cfg.Documents.MaxSize)
	})

	t.Run("should read values from the environment", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("POSTGRES_HOST", "db.internal")
		t.Setenv("DB_CONN_MAX_LIFETIME", "5m")
		t.Setenv("RATE_LIMIT_BURST", "3")
		t.Setenv("ADMIN_TOKEN", "secret")

		cfg, err := Load()
		assert.Nil(t, err)
		assert.Equal(t, 9090, cfg.Port)
		assert.Equal(t, "db.internal", cfg.Postgres.Host)
		assert.Equal(t, 5*time.Minute, cfg.Postgres.ConnMaxLifetime)
		assert.Equal(t, 3, cfg.RateLimit.Burst)
		assert.Equal(t, "secret", cfg.AdminToken)
	})

	t.Run("should split comma separated origins", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")
		cfg, err := Load()
		assert.Nil(t, err)
		assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSAllowedOrigins)
	})

	t.Run("should use the frontend url as origin when none is configured", func(t *testing.T) {
		t.Setenv("FRONTEND_URL", "https://app.example.com")
		cfg, err := Load()
		assert.Nil(t, err)
		assert.Equal(t, []string{"https://app.example.com"}, cfg.CORSAllowedOrigins)
	})

	t.Run("should reject an invalid port", func(t *testing.T) {
		t.Setenv("PORT", "0")
		_, err := Load()
		assert.NotNil(t, err)
	})
}
