package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"kuai-backend/internal/domains/admin"
	adminRepo "kuai-backend/internal/domains/admin/repository"
	adminService "kuai-backend/internal/domains/admin/service"
	"kuai-backend/internal/infrastructure/database"
	"kuai-backend/pkg/cache"
	"kuai-backend/pkg/container"
	"kuai-backend/pkg/jwt"
)

func newAdminService(cmd *cobra.Command) (admin.Service, *database.PostgresDB, error) {
	db, err := container.OpenDatabase(cmd.Context(), cfg)
	if err != nil {
		return nil, nil, err
	}
	tokens := jwt.NewManager(cfg.JWT.Secret, time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute)
	svc := adminService.NewAdminService(adminRepo.NewPostgresRepository(db.Pool), tokens, cache.NewMemoryCache())
	return svc, db, nil
}

func createAdminCmd() *cobra.Command {
	var email, name string

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an admin account (password from KUAI_ADMIN_PASSWORD)",
		RunE: func(cmd *cobra.Command, args []string) error {
			password := os.Getenv("KUAI_ADMIN_PASSWORD")
			if password == "" {
				return errors.New("KUAI_ADMIN_PASSWORD must be set")
			}

			svc, db, err := newAdminService(cmd)
			if err != nil {
				return err
			}
			defer db.Close()

			a, err := svc.Create(cmd.Context(), admin.CreateRequest{Email: email, FullName: name, Password: password})
			if err != nil {
				return err
			}
			fmt.Printf("created admin %s (%s)\n", a.Email, a.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "admin email")
	cmd.Flags().StringVar(&name, "name", "", "full name")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func tokenCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an access token for an existing admin",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, db, err := newAdminService(cmd)
			if err != nil {
				return err
			}
			defer db.Close()

			out, err := svc.IssueToken(cmd.Context(), email)
			if err != nil {
				return err
			}
			fmt.Println(out.AccessToken)
			fmt.Fprintf(os.Stderr, "expires at %s\n", out.ExpiresAt.Format(time.RFC3339))
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "admin email")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}
