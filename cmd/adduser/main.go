// cmd/adduser/main.go
// Creates or updates an API user.
//
// Usage:
//
//	go run ./cmd/adduser -username trainer -password testing
package main

import (
	"context"
	"flag"
	"fmt"

	"go.uber.org/zap"

	"github.com/padraicbc/umaplan/config"
	bundb "github.com/padraicbc/umaplan/db"
	"github.com/padraicbc/umaplan/handlers"
	applog "github.com/padraicbc/umaplan/logger"
	"github.com/padraicbc/umaplan/models"
)

func main() {
	username := flag.String("username", "", "username (required)")
	password := flag.String("password", "", "plain-text password (required)")
	flag.Parse()

	cfg := config.Load()
	logger, err := applog.New(cfg.Debug, "adduser")
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	hash, err := handlers.HashPasswordForUser(*username, *password)
	if err != nil {
		logger.Fatal("invalid user", zap.Error(err))
	}

	db := bundb.Setup(cfg)
	defer db.Close()

	ctx := context.Background()
	if err := bundb.CreateTables(ctx, db); err != nil {
		logger.Fatal("create tables failed", zap.Error(err))
	}

	user := &models.User{
		Username: *username,
		Password: hash,
	}

	_, err = db.NewInsert().Model(user).
		On("CONFLICT (username) DO UPDATE SET password = EXCLUDED.password").
		Exec(ctx)
	if err != nil {
		logger.Fatal("insert user failed", zap.Error(err))
	}

	fmt.Printf("user %q saved\n", *username)
}
