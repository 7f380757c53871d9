// Command seeduser provisions a ledger user directly in PostgreSQL.
//
//	go run ./cmd/seeduser -email caixa@posto.com -password secret123 -name Maria -role cashier
//	go run ./cmd/seeduser -email posto@posto.com -password secret123 -name Posto -role establishment \
//	    -establishment 0b8f3c4e-6f0e-4c1b-9d7a-1a2b3c4d5e01
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"voucher-ledger/internal/handler/middleware"
	"voucher-ledger/internal/infra/db"
	sqlc "voucher-ledger/internal/infra/sqlc/generated"
	"voucher-ledger/internal/infra/uow"
	"voucher-ledger/internal/pkg/clock"
	"voucher-ledger/internal/pkg/config"
	"voucher-ledger/internal/pkg/errs"
	"voucher-ledger/internal/usecase/commands"

	"github.com/google/uuid"
)

func main() {
	var (
		email         = flag.String("email", "", "login email (required)")
		password      = flag.String("password", "", "plain password, at least 8 characters (required)")
		name          = flag.String("name", "", "display name (required)")
		role          = flag.String("role", "cashier", "admin, cashier or establishment")
		establishment = flag.String("establishment", "", "establishment id, required for the establishment role")
	)
	flag.Parse()

	if err := run(*email, *password, *name, *role, *establishment); err != nil {
		fmt.Fprintln(os.Stderr, "seeduser:", err)
		os.Exit(1)
	}
}

func run(email, password, name, role, establishment string) error {
	if email == "" || password == "" || name == "" {
		flag.Usage()
		return errs.New("email, password and name are required")
	}

	var estID *uuid.UUID
	if establishment != "" {
		id, err := uuid.Parse(establishment)
		if err != nil {
			return errs.Wrap(err, "invalid -establishment")
		}
		estID = &id
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if cfg.Ledger.Storage != config.StoragePostgres {
		return errs.Newf("seeduser needs LEDGER_STORAGE=%s, use LEDGER_BOOTSTRAP_ADMIN_* for memory storage", config.StoragePostgres)
	}
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer cleanup()

	users := commands.NewUserCommands(uow.NewPostgresUoW(pool, sqlc.New(), logger), clock.NewRealClock(), logger)
	id, err := users.Provision(ctx, commands.ProvisionUserInput{
		Email:           email,
		Password:        password,
		Name:            name,
		Role:            role,
		EstablishmentID: estID,
	})
	if err != nil {
		return err
	}

	logger.Info("User provisioned", slog.String("user_id", id.String()), slog.String("role", role))
	return nil
}
