package main

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/agenda-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/agenda-scheduler/internal/db"
	"github.com/BruksfildServices01/agenda-scheduler/internal/domain/identity"
	"github.com/BruksfildServices01/agenda-scheduler/internal/httperr"
	infraRepo "github.com/BruksfildServices01/agenda-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/agenda-scheduler/internal/models"
)

func newMigrateCmd() *cobra.Command {
	var (
		adminEmail    string
		adminPassword string
		adminName     string
	)

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Cria as tabelas e a constraint de sobreposição; opcionalmente cria um admin",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := setup()
			if err != nil {
				return err
			}

			if cfg.StorageDriver != config.StorageDriverPostgres {
				return errors.New("migrate requires STORAGE_DRIVER=postgres")
			}

			if err := migrateIfGorm(cfg); err != nil {
				return err
			}

			if adminEmail == "" {
				return nil
			}
			if adminPassword == "" {
				return errors.New("--seed-admin-password is required with --seed-admin-email")
			}

			return seedAdmin(cmd.Context(), cfg, adminName, adminEmail, adminPassword)
		},
	}

	cmd.Flags().StringVar(&adminEmail, "seed-admin-email", "", "e-mail do admin a criar")
	cmd.Flags().StringVar(&adminPassword, "seed-admin-password", "", "senha do admin a criar")
	cmd.Flags().StringVar(&adminName, "seed-admin-name", "Administrador", "nome do admin")
	return cmd
}

func migrateIfGorm(cfg *config.Config) error {
	if cfg.StorageDriver != config.StorageDriverPostgres {
		return nil
	}

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	if err := dbpkg.Migrate(db); err != nil {
		return err
	}

	log.Info().Msg("migrations applied")
	return nil
}

// seedAdmin é o único caminho para criar um usuário ADMIN. Repetir com o
// mesmo e-mail não falha.
func seedAdmin(ctx context.Context, cfg *config.Config, name, email, password string) error {
	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := infraRepo.NewUserGormRepository(db)
	err = users.CreateUser(ctx, &models.User{
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: string(hashed),
		Role:         string(identity.RoleAdmin),
	})
	if httperr.IsBusiness(err, "email_already_registered") {
		log.Warn().Str("email", email).Msg("admin already exists")
		return nil
	}
	if err != nil {
		return err
	}

	log.Info().Str("email", email).Msg("admin created")
	return nil
}
