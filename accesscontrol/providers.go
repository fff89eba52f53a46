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
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/config"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/shared"
	"go.uber.org/fx"
)

func newRBACProvider(db shared.DB, broker shared.PubSubBroker, cfg config.Config) (shared.RBACProvider, error) {
	return NewCasbinRBACProvider(db, broker, cfg.RBACConfigPath)
}

var AccessControlModule = fx.Options(
	fx.Provide(newRBACProvider),
)
