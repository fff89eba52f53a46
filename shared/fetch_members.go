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
	"maps"

	"github.com/ory/client-go"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/dtos"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/utils"
)

// FetchMembersOfBusiness retrieves all members of the business in the context including their roles
func FetchMembersOfBusiness(ctx Context) ([]dtos.MemberDTO, error) {
	accessControl := GetRBAC(ctx)

	members, err := accessControl.GetAllMembers()
	if err != nil {
		return nil, err
	}

	users := make([]dtos.MemberDTO, 0, len(members))
	if len(members) == 0 {
		return users, nil
	}

	authAdminClient := GetAuthAdminClient(ctx)
	identities, err := authAdminClient.ListUsers(ctx.Request().Context(), members)
	if err != nil {
		return nil, err
	}

	// get the roles for the members
	errGroup := utils.ErrGroup[map[string]Role](10)
	for _, member := range identities {
		errGroup.Go(func() (map[string]Role, error) {
			role, err := accessControl.GetDomainRole(member.Id)
			if err != nil {
				return map[string]Role{member.Id: RoleUnknown}, nil
			}
			return map[string]Role{member.Id: role}, nil
		})
	}

	roles, err := errGroup.WaitAndCollect()
	if err != nil {
		return nil, err
	}

	roleMap := utils.Reduce(roles, func(acc map[string]Role, r map[string]Role) map[string]Role {
		maps.Copy(acc, r)
		return acc
	}, make(map[string]Role))

	for _, member := range identities {
		name, email := IdentityNameAndEmail(member)
		users = append(users, dtos.MemberDTO{
			ID:    member.Id,
			Name:  name,
			Email: email,
			Role:  string(roleMap[member.Id]),
		})
	}

	return users, nil
}

// IdentityNameAndEmail reads the traits of a kratos identity.
// The name trait might either be an object with first and last or a plain string.
func IdentityNameAndEmail(identity client.Identity) (string, string) {
	traits, ok := identity.Traits.(map[string]any)
	if !ok {
		return "", ""
	}

	email, _ := traits["email"].(string)

	switch name := traits["name"].(type) {
	case string:
		return name, email
	case map[string]any:
		nameStr := ""
		if first, ok := name["first"].(string); ok {
			nameStr += first
		}
		if last, ok := name["last"].(string); ok {
			if nameStr != "" {
				nameStr += " "
			}
			nameStr += last
		}
		return nameStr, email
	}
	return "", email
}
