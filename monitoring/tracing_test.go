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

package monitoring

import (
	"context"
	"testing"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/config"
	"github.com/stretchr/testify/assert"
)

func TestInitTracing(t *testing.T) {
	t.Run("should return a no-op shutdown if no exporter is configured", func(t *testing.T) {
		shutdown, err := InitTracing(context.Background(), config.OTelConfig{}, "dev")
		assert.Nil(t, err)
		assert.Nil(t, shutdown(context.Background()))
	})

	t.Run("should reject an unknown exporter", func(t *testing.T) {
		_, err := InitTracing(context.Background(), config.OTelConfig{Exporter: "zipkin"}, "dev")
		assert.NotNil(t, err)
	})

	t.Run("should install the stdout exporter", func(t *testing.T) {
		shutdown, err := InitTracing(context.Background(), config.OTelConfig{Exporter: ExporterStdout, ServiceName: "wbi"}, "dev")
		assert.Nil(t, err)
		assert.Nil(t, shutdown(context.Background()))
	})
}
