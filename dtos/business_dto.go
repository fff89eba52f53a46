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

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AcceptInvitationRequest struct {
	Code string `json:"code" validate:"required"`
}

type InviteRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"omitempty,oneof=coach member"`
}

type ChangeRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=owner coach member"`
}

type BusinessCreateRequest struct {
	Name                 string  `json:"name" validate:"required"`
	Description          string  `json:"description"`
	Industry             *string `json:"industry"`
	Country              *string `json:"country"`
	Currency             string  `json:"currency" validate:"omitempty,len=3"`
	FiscalYearStartMonth int     `json:"fiscalYearStartMonth" validate:"omitempty,min=1,max=12"`
	// the creator coaches the business instead of owning it
	AsCoach bool `json:"asCoach"`
}

type BusinessPatchRequest struct {
	Name                 *string `json:"name"`
	Description          *string `json:"description"`
	Industry             *string `json:"industry"`
	Country              *string `json:"country"`
	Currency             *string `json:"currency" validate:"omitempty,len=3"`
	FiscalYearStartMonth *int    `json:"fiscalYearStartMonth" validate:"omitempty,min=1,max=12"`
}

type BusinessProfileRequest struct {
	LegalName         *string             `json:"legalName"`
	TaxID             *string             `json:"taxId"`
	Website           *string             `json:"website" validate:"omitempty,url"`
	ContactEmail      *string             `json:"contactEmail" validate:"omitempty,email"`
	ContactPhone      *string             `json:"contactPhone"`
	NumberOfEmployees *int                `json:"numberOfEmployees" validate:"omitempty,min=0"`
	FoundedYear       *int                `json:"foundedYear" validate:"omitempty,min=1800,max=2200"`
	AnnualRevenue     decimal.NullDecimal `json:"annualRevenue"`
	Mission           string              `json:"mission"`
	Vision            string              `json:"vision"`
	CoreValues        []string            `json:"coreValues"`
}

type BusinessDTO struct {
	ID                   uuid.UUID `json:"id"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
	Name                 string    `json:"name"`
	Slug                 string    `json:"slug"`
	Description          string    `json:"description"`
	Industry             *string   `json:"industry"`
	Country              *string   `json:"country"`
	Currency             string    `json:"currency"`
	FiscalYearStartMonth int       `json:"fiscalYearStartMonth"`
}

type BusinessDetailsDTO struct {
	BusinessDTO
	Role    string      `json:"role"`
	Members []MemberDTO `json:"members"`
}

type MemberDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type ActiveBusinessRequest struct {
	BusinessID uuid.UUID `json:"businessId" validate:"required"`
}

type ActiveBusinessDTO struct {
	Business BusinessDTO `json:"business"`
	Role     string      `json:"role"`
}
