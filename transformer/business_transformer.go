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

package transformer

import (
	"strings"

	"github.com/gosimple/slug"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/database/models"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/dtos"
)

const (
	DefaultCurrency             = "AUD"
	DefaultFiscalYearStartMonth = 7
)

func BusinessCreateRequestToModel(c dtos.BusinessCreateRequest) models.Business {
	currency := strings.ToUpper(c.Currency)
	if currency == "" {
		currency = DefaultCurrency
	}
	fiscalYearStartMonth := c.FiscalYearStartMonth
	if fiscalYearStartMonth == 0 {
		fiscalYearStartMonth = DefaultFiscalYearStartMonth
	}

	return models.Business{
		Name:                 strings.TrimSpace(c.Name),
		Slug:                 slug.Make(c.Name),
		Description:          c.Description,
		Industry:             c.Industry,
		Country:              c.Country,
		Currency:             currency,
		FiscalYearStartMonth: fiscalYearStartMonth,
	}
}

// ApplyBusinessPatchRequestToModel keeps the slug stable, renaming a business does not break links.
func ApplyBusinessPatchRequestToModel(p dtos.BusinessPatchRequest, business *models.Business) bool {
	updated := false

	if p.Name != nil {
		updated = true
		business.Name = strings.TrimSpace(*p.Name)
	}

	if p.Description != nil {
		updated = true
		business.Description = *p.Description
	}

	if p.Industry != nil {
		updated = true
		business.Industry = p.Industry
	}

	if p.Country != nil {
		updated = true
		business.Country = p.Country
	}

	if p.Currency != nil {
		updated = true
		business.Currency = strings.ToUpper(*p.Currency)
	}

	if p.FiscalYearStartMonth != nil {
		updated = true
		business.FiscalYearStartMonth = *p.FiscalYearStartMonth
	}

	return updated
}

func BusinessDTOFromModel(business models.Business) dtos.BusinessDTO {
	return dtos.BusinessDTO{
		ID:                   business.ID,
		CreatedAt:            business.CreatedAt,
		UpdatedAt:            business.UpdatedAt,
		Name:                 business.Name,
		Slug:                 business.Slug,
		Description:          business.Description,
		Industry:             business.Industry,
		Country:              business.Country,
		Currency:             business.Currency,
		FiscalYearStartMonth: business.FiscalYearStartMonth,
	}
}

func ApplyBusinessProfileRequestToModel(p dtos.BusinessProfileRequest, profile *models.BusinessProfile) {
	profile.LegalName = p.LegalName
	profile.TaxID = p.TaxID
	profile.Website = p.Website
	profile.ContactEmail = p.ContactEmail
	profile.ContactPhone = p.ContactPhone
	profile.NumberOfEmployees = p.NumberOfEmployees
	profile.FoundedYear = p.FoundedYear
	profile.AnnualRevenue = p.AnnualRevenue
	profile.Mission = p.Mission
	profile.Vision = p.Vision
	if p.CoreValues == nil {
		p.CoreValues = []string{}
	}
	profile.CoreValues = p.CoreValues
}
