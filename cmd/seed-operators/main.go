// Command seed-operators provisions operator accounts. There is no
// self-registration endpoint: accounts are created out-of-band with this
// tool by whoever administers the line.
//
//	seed-operators -db smartfix.db -name alice -password 's3cret' -role operator
package main

import (
	"context"
	"errors"
	"flag"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/gln-plastics/smartfix-api/internal/core/domain"
	"github.com/gln-plastics/smartfix-api/internal/infrastructure/db/sqlite"
	"github.com/gln-plastics/smartfix-api/pkg/logger"
)

func main() {
	var (
		dbPath   = flag.String("db", "smartfix.db", "path to the SQLite database file")
		name     = flag.String("name", "", "operator login name")
		password = flag.String("password", "", "operator password")
		role     = flag.String("role", domain.RoleOperator, "operator role (operator or admin)")
	)
	flag.Parse()

	log := logger.Init(logger.Options{Pretty: true})

	if *name == "" || *password == "" {
		log.Fatal().Msg("-name and -password are required")
	}
	if *role != domain.RoleOperator && *role != domain.RoleAdmin {
		log.Fatal().Str("role", *role).Msg("role must be operator or admin")
	}

	db, err := sqlite.Open(*dbPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *dbPath).Msg("failed to open database")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash password")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	repo := sqlite.NewAuthRepository(db)
	created, err := repo.Create(ctx, &domain.Operator{
		Name:         *name,
		PasswordHash: string(hash),
		Role:         *role,
	})
	if err != nil {
		if errors.Is(err, domain.ErrOperatorExists) {
			log.Fatal().Str("name", *name).Msg("operator already exists")
		}
		log.Fatal().Err(err).Msg("failed to create operator")
	}

	log.Info().Str("id", created.ID).Str("name", created.Name).Str("role", created.Role).
		Msg("operator created")
}
