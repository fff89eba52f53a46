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

package dtos

type MessageCreateRequest struct {
	Body string `json:"body" validate:"required,max=5000"`
}

type DocumentPatchRequest struct {
	Name   *string `json:"name" validate:"omitempty,min=1"`
	Folder *string `json:"folder"`
	Shared *bool   `json:"shared"`
}

// ListDTO is returned by endpoints using limit/offset pagination.
type ListDTO[T any] struct {
	Data   []T   `json:"data"`
	Total  int64 `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}

type ReadAllResponse struct {
	Updated int64 `json:"updated"`
}
