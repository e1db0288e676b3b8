package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"kuai-backend/pkg/container"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending SQL migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := container.OpenDatabase(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			applied, err := db.Migrate(cmd.Context())
			if err != nil {
				return err
			}
			if len(applied) == 0 {
				fmt.Println("Database is up to date.")
				return nil
			}
			for _, v := range applied {
				fmt.Printf("applied %s\n", v)
			}
			return nil
		},
	}
}
