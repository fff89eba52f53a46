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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/database/repositories"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/services"
)

func NewBackfillCommand() *cobra.Command {
	backfill := cobra.Command{
		Use:   "backfill",
		Short: "Repairs rows created before profiles and slugs existed",
	}

	backfill.AddCommand(newBackfillSubcommand("profiles", "Creates an empty profile for every business without one", func(s *services.BackfillService) (int, error) {
		return s.BackfillProfiles()
	}))
	backfill.AddCommand(newBackfillSubcommand("slugs", "Derives a slug for every business without one", func(s *services.BackfillService) (int, error) {
		return s.BackfillSlugs()
	}))
	return &backfill
}

func newBackfillSubcommand(use, short string, run func(s *services.BackfillService) (int, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := connect()
			if err != nil {
				return err
			}
			backfillService := services.NewBackfillService(
				repositories.NewBusinessRepository(db),
				repositories.NewBusinessProfileRepository(db),
			)
			updated, err := run(backfillService)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "updated %d businesses\n", updated)
			return nil
		},
	}
}
