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

package utils

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrGroup(t *testing.T) {
	t.Run("should collect all results", func(t *testing.T) {
		g := ErrGroup[int](2)
		for i := range 5 {
			g.Go(func() (int, error) {
				return i * 2, nil
			})
		}
		res, err := g.WaitAndCollect()
		assert.Nil(t, err)
		slices.Sort(res)
		assert.Equal(t, []int{0, 2, 4, 6, 8}, res)
	})

	t.Run("should return the first error", func(t *testing.T) {
		g := ErrGroup[int](2)
		g.Go(func() (int, error) {
			return 1, nil
		})
		g.Go(func() (int, error) {
			return 0, fmt.Errorf("boom")
		})
		res, err := g.WaitAndCollect()
		assert.Nil(t, res)
		assert.EqualError(t, err, "boom")
	})
}

func TestSortedKeys(t *testing.T) {
	keys := SortedKeys(map[string]int{"2025-03": 1, "2025-01": 2, "2025-02": 3})
	assert.Equal(t, []string{"2025-01", "2025-02", "2025-03"}, keys)
}

func TestUniqBy(t *testing.T) {
	res := UniqBy([]string{"a", "b", "a", "c", "b"}, func(s string) string { return s })
	assert.Equal(t, []string{"a", "b", "c"}, res)
}
