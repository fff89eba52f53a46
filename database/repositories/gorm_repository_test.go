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
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsIgnorableUpsertError(t *testing.T) {
	t.Run("foreign_key_violation", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23503"}
		err := fmt.Errorf("%w", pgErr)
		assert.True(t, isIgnorableUpsertError(pgErr))
		assert.True(t, isIgnorableUpsertError(err))
	})

	t.Run("unique violation", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23505"}
		assert.True(t, isIgnorableUpsertError(pgErr))
	})
	t.Run("other error", func(t *testing.T) {
		assert.False(t, isIgnorableUpsertError(errors.New("some other error")))
		assert.False(t, isIgnorableUpsertError(errors.New("extended protocol limited to 65535 parameters")))
	})
}
