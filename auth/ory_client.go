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

package auth

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/shared"
	"github.com/ory/client-go"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func GetOryAPIClient(url string) *client.APIClient {
	cfg := client.NewConfiguration()
	cfg.Servers = client.ServerConfigurations{
		{URL: url},
	}
	cfg.HTTPClient = &http.Client{
		Timeout:   10 * time.Second,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	return client.NewAPIClient(cfg)
}

var _ shared.AdminClient = adminClientImplementation{}

// adminClientImplementation resolves sessions through the public api and
// identities through the admin api of kratos.
type adminClientImplementation struct {
	publicClient *client.APIClient
	adminClient  *client.APIClient
}

func NewAdminClient(publicClient, adminClient *client.APIClient) adminClientImplementation {
	return adminClientImplementation{
		publicClient: publicClient,
		adminClient:  adminClient,
	}
}

func (a adminClientImplementation) GetIdentityFromCookie(ctx context.Context, cookie string) (client.Identity, error) {
	session, _, err := a.publicClient.FrontendAPI.ToSession(ctx).Cookie(cookie).Execute()
	if err != nil {
		return client.Identity{}, fmt.Errorf("could not get identity from cookie: %w", err)
	}
	if session.Identity == nil {
		return client.Identity{}, fmt.Errorf("identity not found in session")
	}
	return *session.Identity, nil
}

// kratos caps the page size at 1000
const listIdentitiesPageSize = 500

func (a adminClientImplementation) ListUsers(ctx context.Context, ids []string) ([]client.Identity, error) {
	res := make([]client.Identity, 0, len(ids))
	for start := 0; start < len(ids); start += listIdentitiesPageSize {
		end := min(start+listIdentitiesPageSize, len(ids))
		identities, _, err := a.adminClient.IdentityAPI.ListIdentities(ctx).
			Ids(ids[start:end]).
			PageSize(listIdentitiesPageSize).
			Execute()
		if err != nil {
			return nil, fmt.Errorf("could not list identities: %w", err)
		}
		res = append(res, identities...)
	}
	return res, nil
}

func (a adminClientImplementation) GetIdentity(ctx context.Context, userID string) (client.Identity, error) {
	identity, _, err := a.adminClient.IdentityAPI.GetIdentity(ctx, userID).Execute()
	if err != nil {
		return client.Identity{}, err
	}
	return *identity, nil
}
