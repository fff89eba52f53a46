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

package accesscontrol

import (
	"testing"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/shared"
	"github.com/casbin/casbin/v2"
	"github.com/stretchr/testify/assert"
)

func newInMemoryProvider(t *testing.T) casbinRBACProvider {
	t.Helper()
	m, err := loadModel("")
	assert.Nil(t, err)
	e, err := casbin.NewSyncedEnforcer(m)
	assert.Nil(t, err)
	return casbinRBACProvider{enforcer: e}
}

func TestCasbinRBAC(t *testing.T) {
	t.Run("should grant the owner every permission of coach and member", func(t *testing.T) {
		provider := newInMemoryProvider(t)
		rbac := provider.GetDomainRBAC("business-1")
		assert.Nil(t, shared.BootstrapBusiness(rbac, "owner-user", shared.RoleOwner))

		for _, check := range []struct {
			obj shared.Object
			act shared.Action
		}{
			{shared.ObjectBusiness, shared.ActionDelete},
			{shared.ObjectBusiness, shared.ActionUpdate},
			{shared.ObjectForecast, shared.ActionCreate},
			{shared.ObjectMessage, shared.ActionCreate},
		} {
			allowed, err := rbac.IsAllowed("owner-user", check.obj, check.act)
			assert.Nil(t, err)
			assert.True(t, allowed, "%s %s", check.obj, check.act)
		}

		role, err := rbac.GetDomainRole("owner-user")
		assert.Nil(t, err)
		assert.Equal(t, shared.RoleOwner, role)
	})

	t.Run("should not allow a member to update the business", func(t *testing.T) {
		provider := newInMemoryProvider(t)
		rbac := provider.GetDomainRBAC("business-1")
		assert.Nil(t, shared.BootstrapBusiness(rbac, "owner-user", shared.RoleOwner))
		assert.Nil(t, rbac.GrantRole("member-user", shared.RoleMember))

		allowed, err := rbac.IsAllowed("member-user", shared.ObjectBusiness, shared.ActionUpdate)
		assert.Nil(t, err)
		assert.False(t, allowed)

		allowed, err = rbac.IsAllowed("member-user", shared.ObjectForecast, shared.ActionRead)
		assert.Nil(t, err)
		assert.True(t, allowed)
	})

	t.Run("should keep exactly one domain role per user", func(t *testing.T) {
		provider := newInMemoryProvider(t)
		rbac := provider.GetDomainRBAC("business-1")
		assert.Nil(t, shared.BootstrapBusiness(rbac, "owner-user", shared.RoleOwner))

		assert.Nil(t, rbac.GrantRole("someone", shared.RoleCoach))
		assert.Nil(t, rbac.GrantRole("someone", shared.RoleMember))

		role, err := rbac.GetDomainRole("someone")
		assert.Nil(t, err)
		assert.Equal(t, shared.RoleMember, role)

		coaches, err := rbac.GetUsersWithRole(shared.RoleCoach)
		assert.Nil(t, err)
		assert.NotContains(t, coaches, "someone")
	})

	t.Run("should scope roles to the domain", func(t *testing.T) {
		provider := newInMemoryProvider(t)
		first := provider.GetDomainRBAC("business-1")
		second := provider.GetDomainRBAC("business-2")
		assert.Nil(t, shared.BootstrapBusiness(first, "alice", shared.RoleOwner))
		assert.Nil(t, shared.BootstrapBusiness(second, "bob", shared.RoleOwner))

		hasAccess, err := second.HasAccess("alice")
		assert.Nil(t, err)
		assert.False(t, hasAccess)

		allowed, err := second.IsAllowed("alice", shared.ObjectBusiness, shared.ActionRead)
		assert.Nil(t, err)
		assert.False(t, allowed)

		domains, err := provider.DomainsOfUser("alice")
		assert.Nil(t, err)
		assert.Equal(t, []string{"business-1"}, domains)
	})

	t.Run("should list all members and revoke them", func(t *testing.T) {
		provider := newInMemoryProvider(t)
		rbac := provider.GetDomainRBAC("business-1")
		assert.Nil(t, shared.BootstrapBusiness(rbac, "alice", shared.RoleOwner))
		assert.Nil(t, rbac.GrantRole("bob", shared.RoleCoach))

		members, err := rbac.GetAllMembers()
		assert.Nil(t, err)
		assert.ElementsMatch(t, []string{"alice", "bob"}, members)

		assert.Nil(t, rbac.RevokeAllRoles("bob"))
		hasAccess, err := rbac.HasAccess("bob")
		assert.Nil(t, err)
		assert.False(t, hasAccess)
	})

	t.Run("should remove the whole domain", func(t *testing.T) {
		provider := newInMemoryProvider(t)
		rbac := provider.GetDomainRBAC("business-1")
		assert.Nil(t, shared.BootstrapBusiness(rbac, "alice", shared.RoleOwner))

		assert.Nil(t, rbac.RemoveDomain())

		domains, err := provider.DomainsOfUser("alice")
		assert.Nil(t, err)
		assert.Empty(t, domains)
	})
}

func TestGetMostPowerfulRole(t *testing.T) {
	role, err := getMostPowerfulRole([]shared.Role{shared.RoleMember, shared.RoleCoach})
	assert.Nil(t, err)
	assert.Equal(t, shared.RoleCoach, role)

	_, err = getMostPowerfulRole(nil)
	assert.NotNil(t, err)
}
