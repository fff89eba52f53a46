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

package commands

import (
	"github.com/spf13/cobra"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/config"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/database"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/shared"
)

var rootCmd = &cobra.Command{
	Use:   "wbi-cli",
	Short: "Management cli",
	Long:  `The wbi cli runs maintenance tasks directly against the database of a wbi instance.`,
}

func GetRootCmd() *cobra.Command {
	return rootCmd
}

// connect opens a small pool, the cli never runs concurrent work.
func connect() (config.Config, shared.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}

	poolConfig := database.NewPoolConfig(cfg.Postgres)
	poolConfig.MaxOpenConns = 2
	poolConfig.MinConns = 0

	pool, err := database.NewPgxConnPool(poolConfig)
	if err != nil {
		return config.Config{}, nil, err
	}
	db, err := database.NewGormDB(pool)
	if err != nil {
		pool.Close()
		return config.Config{}, nil, err
	}
	return cfg, db, nil
}
