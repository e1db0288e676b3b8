package main

import (
	"fmt"

	"github.com/spf13/cobra"

	eventsRepo "kuai-backend/internal/domains/events/repository"
	eventsService "kuai-backend/internal/domains/events/service"
	indabaxRepo "kuai-backend/internal/domains/indabax/repository"
	indabaxService "kuai-backend/internal/domains/indabax/service"
	newsRepo "kuai-backend/internal/domains/news/repository"
	newsService "kuai-backend/internal/domains/news/service"
	projectsRepo "kuai-backend/internal/domains/projects/repository"
	projectsService "kuai-backend/internal/domains/projects/service"
	searchService "kuai-backend/internal/domains/sitesearch/service"
	"kuai-backend/internal/infrastructure/search"
	"kuai-backend/pkg/cache"
	"kuai-backend/pkg/clock"
	"kuai-backend/pkg/container"
)

// reindexCmd dựng index từ database để kiểm tra mọi document index được.
// Index nằm trong process của API nên API tự rebuild lúc start.
func reindexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Build the search index from the database and report the document count",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := container.OpenDatabase(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			idx, err := search.NewIndex()
			if err != nil {
				return err
			}
			defer idx.Close()

			clk := clock.New(cfg.Location())
			nop := search.NopIndexer{}
			svc := searchService.NewSearchService(idx,
				newsService.NewNewsService(newsRepo.NewPostgresRepository(db.Pool), clk, nop),
				eventsService.NewEventsService(eventsRepo.NewPostgresRepository(db.Pool), clk, nop),
				projectsService.NewProjectsService(projectsRepo.NewPostgresRepository(db.Pool), nop),
				indabaxService.NewIndabaxService(indabaxRepo.NewPostgresRepository(db.Pool, cache.NewMemoryCache(), cfg.Redis.TTL), clk, nop),
			)

			n, err := svc.Rebuild(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("indexed %d document(s)\n", n)
			return nil
		},
	}
}
