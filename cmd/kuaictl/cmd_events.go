package main

import (
	"fmt"

	"github.com/spf13/cobra"

	eventsRepo "kuai-backend/internal/domains/events/repository"
	eventsService "kuai-backend/internal/domains/events/service"
	"kuai-backend/internal/infrastructure/search"
	"kuai-backend/pkg/clock"
	"kuai-backend/pkg/container"
)

func reconcileEventsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile-events",
		Short: "Mark past upcoming events as completed",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := container.OpenDatabase(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			svc := eventsService.NewEventsService(eventsRepo.NewPostgresRepository(db.Pool), clock.New(cfg.Location()), search.NopIndexer{})
			n, err := svc.ReconcileStatuses(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("%d event(s) marked completed\n", n)
			return nil
		},
	}
}
