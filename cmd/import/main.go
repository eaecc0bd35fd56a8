// cmd/import/main.go
// Loads the race and character JSON files, links every character objective
// to its race and writes the catalog to PostgreSQL.
//
// Usage:
//
//	go run ./cmd/import -races data/races.json -characters data/characters.json
//	go run ./cmd/import -dry-run
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/padraicbc/umaplan/catalog"
	"github.com/padraicbc/umaplan/config"
	bundb "github.com/padraicbc/umaplan/db"
	"github.com/padraicbc/umaplan/linker"
	applog "github.com/padraicbc/umaplan/logger"
)

func main() {
	pcfg, err := config.LoadPlanner()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	racesFile := flag.String("races", pcfg.RacesFile, "races JSON file")
	charactersFile := flag.String("characters", pcfg.CharactersFile, "characters JSON file")
	dryRun := flag.Bool("dry-run", false, "link and report without writing to the database")
	flag.Parse()

	logger, err := applog.New(pcfg.Debug, "import")
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	cat, err := catalog.LoadFiles(*racesFile, *charactersFile)
	if err != nil {
		logger.Fatal("load catalog failed", zap.Error(err))
	}
	logger.Info("catalog loaded",
		zap.Int("races", len(cat.Races)),
		zap.Int("characters", len(cat.Characters)),
	)

	chars, rep := linker.New(cat.Races).Link(cat.Characters)
	cat.Characters = chars
	logger.Info("objectives linked", zap.Int("linked", rep.Linked), zap.Int("unlinked", len(rep.Unlinked)))
	for _, u := range rep.Unlinked {
		logger.Warn("objective has no race", zap.String("character", u.Character), zap.String("objective", u.Objective))
	}

	if *dryRun {
		return
	}

	ctx := context.Background()
	cfg := config.Load()
	db := bundb.Setup(cfg)
	defer db.Close()

	if err := bundb.CreateTables(ctx, db); err != nil {
		logger.Fatal("create tables failed", zap.Error(err))
	}

	races, characters, err := bundb.NewStore(db).SaveCatalog(ctx, cat)
	if err != nil {
		logger.Fatal("save catalog failed", zap.Error(err))
	}
	logger.Info("catalog saved", zap.Int("races", races), zap.Int("characters", characters))
}
