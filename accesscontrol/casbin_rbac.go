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
	"fmt"
	"log/slog"
	"strings"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/shared"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/utils"
	"gorm.io/gorm"
)

// rbacModel is used unless RBAC_CONFIG_PATH points to a model file.
const rbacModel = `
[request_definition]
r = sub, dom, obj, act

[policy_definition]
p = sub, dom, obj, act

[role_definition]
g = _, _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub, r.dom) && r.dom == p.dom && r.obj == p.obj && r.act == p.act
`

const (
	userPrefix   = "user::"
	rolePrefix   = "role::"
	domainPrefix = "domain::"
	objPrefix    = "obj::"
	actPrefix    = "act::"
)

var _ shared.AccessControl = &casbinRBAC{}
var casbinEnforcer *casbin.SyncedEnforcer

// casbinRBAC is scoped to a single domain. Every business is its own domain.
type casbinRBAC struct {
	domain   string
	enforcer *casbin.SyncedEnforcer
}

type casbinRBACProvider struct {
	enforcer *casbin.SyncedEnforcer
}

func (c casbinRBACProvider) GetDomainRBAC(domain string) shared.AccessControl {
	return &casbinRBAC{
		domain:   domain,
		enforcer: c.enforcer,
	}
}

func (c *casbinRBAC) dom() string {
	return domainPrefix + c.domain
}

func trimUsers(subjects []string) []string {
	return utils.Map(utils.Filter(subjects, func(u string) bool {
		return strings.HasPrefix(u, userPrefix)
	}), func(u string) string {
		return strings.TrimPrefix(u, userPrefix)
	})
}

func (c *casbinRBAC) GetAllMembers() ([]string, error) {
	users, err := c.enforcer.GetAllUsersByDomain(c.dom())
	if err != nil {
		return nil, err
	}
	return utils.UniqBy(trimUsers(users), func(u string) string { return u }), nil
}

func (c *casbinRBAC) GetUsersWithRole(role shared.Role) ([]string, error) {
	return trimUsers(c.enforcer.GetUsersForRoleInDomain(rolePrefix+string(role), c.dom())), nil
}

func (c *casbinRBAC) HasAccess(user string) (bool, error) {
	roles := c.enforcer.GetRolesForUserInDomain(userPrefix+user, c.dom())
	return len(roles) > 0, nil
}

func (c *casbinRBAC) GetAllRoles(user string) []string {
	roles, err := c.enforcer.GetImplicitRolesForUser(userPrefix+user, c.dom())
	if err != nil {
		slog.Error("GetAllRoles failed", "err", err)
		return []string{}
	}
	return roles
}

func (c *casbinRBAC) GetDomainRole(user string) (shared.Role, error) {
	dbRoles := c.GetAllRoles(user)
	roles := utils.Map(utils.Filter(dbRoles, func(r string) bool {
		return strings.HasPrefix(r, rolePrefix)
	}), func(r string) shared.Role {
		return shared.Role(strings.TrimPrefix(r, rolePrefix))
	})

	role, err := getMostPowerfulRole(roles)
	if err != nil {
		slog.Warn("GetDomainRole: no domain role found for user", "user", user, "dbRoles", dbRoles, "domain", c.domain)
	}
	return role, err
}

func getMostPowerfulRole(roles []shared.Role) (shared.Role, error) {
	for _, role := range shared.AllRoles {
		if utils.Contains(roles, role) {
			return role, nil
		}
	}
	return "", fmt.Errorf("no domain role found for user. Roles from user: %v", roles)
}

// GrantRole makes role the only domain role of the user.
func (c *casbinRBAC) GrantRole(user string, role shared.Role) error {
	for _, r := range shared.AllRoles {
		if r == role {
			continue
		}
		if _, err := c.enforcer.DeleteRoleForUserInDomain(userPrefix+user, rolePrefix+string(r), c.dom()); err != nil {
			return err
		}
	}
	_, err := c.enforcer.AddRoleForUserInDomain(userPrefix+user, rolePrefix+string(role), c.dom())
	return err
}

func (c *casbinRBAC) InheritRole(roleWhichGetsPermissions, roleWhichProvidesPermissions shared.Role) error {
	_, err := c.enforcer.AddRoleForUserInDomain(rolePrefix+string(roleWhichGetsPermissions), rolePrefix+string(roleWhichProvidesPermissions), c.dom())
	return err
}

func (c *casbinRBAC) RevokeRole(user string, role shared.Role) error {
	_, err := c.enforcer.DeleteRoleForUserInDomain(userPrefix+user, rolePrefix+string(role), c.dom())
	return err
}

func (c *casbinRBAC) RevokeAllRoles(user string) error {
	_, err := c.enforcer.DeleteRolesForUserInDomain(userPrefix+user, c.dom())
	return err
}

func (c *casbinRBAC) AllowRole(role shared.Role, object shared.Object, action []shared.Action) error {
	policies := make([][]string, len(action))
	for i, ac := range action {
		policies[i] = []string{rolePrefix + string(role), c.dom(), objPrefix + string(object), actPrefix + string(ac)}
	}

	_, err := c.enforcer.AddPolicies(policies)
	return err
}

func (c *casbinRBAC) IsAllowed(user string, object shared.Object, action shared.Action) (bool, error) {
	permissions, err := c.enforcer.GetImplicitPermissionsForUser(userPrefix+user, c.dom())
	if err != nil {
		return false, err
	}

	for _, p := range permissions {
		if p[2] == objPrefix+string(object) && p[3] == actPrefix+string(action) {
			return true, nil
		}
	}
	return false, nil
}

// RemoveDomain drops every role assignment and policy of the domain.
func (c *casbinRBAC) RemoveDomain() error {
	if _, err := c.enforcer.RemoveFilteredGroupingPolicy(2, c.dom()); err != nil {
		return err
	}
	_, err := c.enforcer.RemoveFilteredPolicy(1, c.dom())
	return err
}

func (c casbinRBACProvider) DomainsOfUser(user string) ([]string, error) {
	domains, err := c.enforcer.GetDomainsForUser(userPrefix + user)
	if err != nil {
		return nil, err
	}
	res := make([]string, 0, len(domains))
	for _, d := range domains {
		res = append(res, strings.TrimPrefix(d, domainPrefix))
	}
	return utils.UniqBy(res, func(d string) string { return d }), nil
}

// the provider can be used to create domain specific RBAC instances
func NewCasbinRBACProvider(db *gorm.DB, broker shared.PubSubBroker, modelPath string) (casbinRBACProvider, error) {
	enforcer, err := buildEnforcer(db, broker, modelPath)
	if err != nil {
		return casbinRBACProvider{}, err
	}
	return casbinRBACProvider{
		enforcer: enforcer,
	}, nil
}

func loadModel(path string) (model.Model, error) {
	if path != "" {
		return model.NewModelFromFile(path)
	}
	return model.NewModelFromString(rbacModel)
}

func buildEnforcer(db *gorm.DB, broker shared.PubSubBroker, modelPath string) (*casbin.SyncedEnforcer, error) {
	if casbinEnforcer != nil {
		return casbinEnforcer, nil
	}
	a, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, err
	}

	m, err := loadModel(modelPath)
	if err != nil {
		return nil, fmt.Errorf("could not load rbac model: %w", err)
	}

	e, err := casbin.NewSyncedEnforcer(m, a)
	if err != nil {
		return nil, err
	}

	e.EnableLog(false)
	// every policy change is published, other instances reload their policy
	watcher, err := newCasbinPubSubWatcher(broker)
	if err != nil {
		return nil, err
	}
	if err = e.SetWatcher(watcher); err != nil {
		return nil, fmt.Errorf("could not set watcher: %w", err)
	}
	err = watcher.SetUpdateCallback(func(string) {
		if err := e.LoadPolicy(); err != nil {
			slog.Error("error while loading policy after update", "err", err)
		} else {
			slog.Debug("policy successfully reloaded after update")
		}
	})
	if err != nil {
		return nil, fmt.Errorf("could not set update callback: %w", err)
	}

	if err = e.LoadPolicy(); err != nil {
		slog.Error("LoadPolicy failed", "err", err)
	}

	casbinEnforcer = e

	return e, nil
}
