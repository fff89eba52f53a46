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

package shared

import (
	"testing"

	"github.com/ory/client-go"
	"github.com/stretchr/testify/assert"
)

func TestIdentityNameAndEmail(t *testing.T) {
	t.Run("plain string name", func(t *testing.T) {
		name, email := IdentityNameAndEmail(client.Identity{Traits: map[string]any{
			"name":  "Jane Doe",
			"email": "jane@example.com",
		}})
		assert.Equal(t, "Jane Doe", name)
		assert.Equal(t, "jane@example.com", email)
	})

	t.Run("first and last name", func(t *testing.T) {
		name, _ := IdentityNameAndEmail(client.Identity{Traits: map[string]any{
			"name": map[string]any{"first": "Jane", "last": "Doe"},
		}})
		assert.Equal(t, "Jane Doe", name)
	})

	t.Run("no traits", func(t *testing.T) {
		name, email := IdentityNameAndEmail(client.Identity{})
		assert.Empty(t, name)
		assert.Empty(t, email)
	})
}
