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

import "github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/shared"

type session struct {
	userID string
	admin  bool
}

func (s session) GetUserID() string {
	return s.userID
}

func NewSession(userID string) shared.AuthSession {
	return session{userID: userID}
}

// NoSession is set for unauthenticated requests.
var NoSession shared.AuthSession = session{}

// AdminSession is set for requests carrying a valid admin token.
var AdminSession shared.AuthSession = session{userID: "admin", admin: true}

func IsAuthenticated(s shared.AuthSession) bool {
	return s != nil && s.GetUserID() != ""
}
