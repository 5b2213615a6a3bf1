// tfar_admin is the provisioning CLI: it bootstraps admin accounts, tenants
// and memberships directly against the database, bypassing the HTTP surface.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/tfarhq/tfar_backend/internal/adapters/database/pgsql"
	"github.com/tfarhq/tfar_backend/internal/core/domain"
	"github.com/tfarhq/tfar_backend/internal/utils"
	"github.com/tfarhq/tfar_backend/pkg/config"
	"github.com/tfarhq/tfar_backend/pkg/database"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tfar_admin",
		Short: "Provisioning tool for the TFAR backend",
		Long: `tfar_admin manages users, tenants and memberships directly against
the configured database. It is intended for operators, not end users.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newProvisionAdminCommand())
	rootCmd.AddCommand(newCreateTenantCommand())
	rootCmd.AddCommand(newAddMemberCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// connect loads configuration and opens a connection pool.
func connect(ctx context.Context) (*pgxpool.Pool, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return pool, nil
}

func newProvisionAdminCommand() *cobra.Command {
	var username, password, name string

	cmd := &cobra.Command{
		Use:   "provision-admin",
		Short: "Create an administrator account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			pool, err := connect(ctx)
			if err != nil {
				return err
			}
			defer database.ClosePgxPool(pool)

			hash, err := utils.HashPassword(password)
			if err != nil {
				return fmt.Errorf("hash password: %w", err)
			}

			now := time.Now().UTC()
			user := domain.User{
				UserID:       uuid.NewString(),
				Username:     username,
				PasswordHash: hash,
				Name:         name,
				IsAdmin:      true,
				AuditFields: domain.AuditFields{
					CreatedAt: now,
					CreatedBy: "tfar_admin",
				},
			}

			if err := pgsql.NewUserRepository(pool).SaveUser(ctx, user); err != nil {
				return fmt.Errorf("save user: %w", err)
			}

			fmt.Printf("Admin user created: %s (%s)\n", user.Username, user.UserID)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Login name for the admin account (required)")
	cmd.Flags().StringVar(&password, "password", "", "Password for the admin account (required)")
	cmd.Flags().StringVar(&name, "name", "", "Display name for the admin account")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newCreateTenantCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "create-tenant",
		Short: "Create a tenant (client organization)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			pool, err := connect(ctx)
			if err != nil {
				return err
			}
			defer database.ClosePgxPool(pool)

			tenant := domain.Tenant{
				TenantID: uuid.NewString(),
				Name:     name,
				AuditFields: domain.AuditFields{
					CreatedAt: time.Now().UTC(),
					CreatedBy: "tfar_admin",
				},
			}

			if err := pgsql.NewTenantRepository(pool).SaveTenant(ctx, tenant); err != nil {
				return fmt.Errorf("save tenant: %w", err)
			}

			fmt.Printf("Tenant created: %s (%s)\n", tenant.Name, tenant.TenantID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Unique tenant name (required)")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newAddMemberCommand() *cobra.Command {
	var username, tenantID, role string

	cmd := &cobra.Command{
		Use:   "add-member",
		Short: "Grant a user access to a tenant",
		RunE: func(cmd *cobra.Command, _ []string) error {
			memberRole := domain.MembershipRole(role)
			if memberRole != domain.RolePreparer && memberRole != domain.RoleReviewer {
				return fmt.Errorf("invalid role %q: must be %q or %q", role, domain.RolePreparer, domain.RoleReviewer)
			}

			ctx := cmd.Context()
			pool, err := connect(ctx)
			if err != nil {
				return err
			}
			defer database.ClosePgxPool(pool)

			user, err := pgsql.NewUserRepository(pool).FindUserByUsername(ctx, username)
			if err != nil {
				return fmt.Errorf("find user %q: %w", username, err)
			}

			membership := domain.Membership{
				UserID:   user.UserID,
				TenantID: tenantID,
				Role:     memberRole,
				JoinedAt: time.Now().UTC(),
			}

			if err := pgsql.NewTenantRepository(pool).AddMembership(ctx, membership); err != nil {
				return fmt.Errorf("add membership: %w", err)
			}

			fmt.Printf("Membership granted: %s -> %s as %s\n", username, tenantID, role)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username to grant access to (required)")
	cmd.Flags().StringVar(&tenantID, "tenant-id", "", "Target tenant id (required)")
	cmd.Flags().StringVar(&role, "role", string(domain.RolePreparer), "Membership role: preparer or reviewer")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("tenant-id")
	return cmd
}
