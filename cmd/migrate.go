package main

import (
	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-HolidayService/internal/infra/storage/migrations"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Применить непримененные SQL-миграции схемы (goose)",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer a.close()

			if err := migrations.Apply(cmd.Context(), a.db.Unwrap(), a.log); err != nil {
				a.log.Error("Migrations failed: %v", err)
				return err
			}

			a.log.Info("Migrations applied")
			return nil
		},
	}
}
