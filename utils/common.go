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
	"slices"
	"strings"
)

func Ptr[T any](t T) *T {
	return &t
}

func Contains[T comparable](s []T, e T) bool {
	return slices.Contains(s, e)
}

// ContainsAll reports whether every element of needles is part of haystack.
func ContainsAll[T comparable](haystack []T, needles []T) bool {
	for _, n := range needles {
		if !slices.Contains(haystack, n) {
			return false
		}
	}
	return true
}

// TrimAndLower is used whenever user input is compared against fixed identifiers.
func TrimAndLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
