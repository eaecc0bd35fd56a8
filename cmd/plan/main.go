// cmd/plan/main.go
// Builds a race schedule from the JSON catalog files without a database.
//
// Usage:
//
//	go run ./cmd/plan -character "Special Week" -bonus 10,20,15 -pref Medium
//	go run ./cmd/plan -bonus 10 -bonus 5 -json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/padraicbc/umaplan/catalog"
	"github.com/padraicbc/umaplan/config"
	"github.com/padraicbc/umaplan/linker"
	applog "github.com/padraicbc/umaplan/logger"
	"github.com/padraicbc/umaplan/schedule"
)

// bonusList collects -bonus values, each of which may hold a comma list.
type bonusList []string

func (b *bonusList) String() string { return strings.Join(*b, ",") }

func (b *bonusList) Set(v string) error {
	for _, part := range strings.Split(v, ",") {
		*b = append(*b, strings.TrimSpace(part))
	}
	return nil
}

func main() {
	pcfg, err := config.LoadPlanner()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var bonuses bonusList
	character := flag.String("character", "", "character ID or exact name")
	pref := flag.String("pref", "", "distance preference: Short, Mile, Medium, Long or Any")
	racesFile := flag.String("races", pcfg.RacesFile, "races JSON file")
	charactersFile := flag.String("characters", pcfg.CharactersFile, "characters JSON file")
	target := flag.Int("target", pcfg.TargetFans, "fans needed before the URA Finale")
	minRating := flag.String("min-rating", pcfg.MinRating, "worst aptitude letter allowed")
	link := flag.Bool("link", true, "link objectives to races before planning")
	asJSON := flag.Bool("json", false, "print the result as JSON")
	flag.Var(&bonuses, "bonus", "support card fan bonus percent; repeat or comma separate")
	flag.Parse()

	logger, err := applog.New(pcfg.Debug, "plan")
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	planner, err := schedule.New(schedule.Config{
		TargetFans: *target,
		MinRating:  schedule.ParseRating(*minRating),
	})
	if err != nil {
		logger.Fatal("invalid planner settings", zap.Error(err))
	}

	cat, err := catalog.LoadFiles(*racesFile, *charactersFile)
	if err != nil {
		logger.Fatal("load catalog failed", zap.Error(err))
	}
	if *link {
		var rep linker.Report
		cat.Characters, rep = linker.New(cat.Races).Link(cat.Characters)
		logger.Debug("objectives linked", zap.Int("linked", rep.Linked), zap.Int("unlinked", len(rep.Unlinked)))
	}

	var ch *schedule.Character
	if *character != "" {
		var ok bool
		ch, ok = cat.Character(*character)
		if !ok {
			logger.Fatal("unknown character", zap.String("character", *character))
		}
	}

	p := strings.TrimSpace(*pref)
	switch {
	case strings.EqualFold(p, "Any"):
		p = ""
	case p == "" && ch != nil:
		p = ch.PreferredDistance
	}

	res := planner.Build(schedule.Input{
		Bonuses:            bonuses,
		DistancePreference: p,
		Races:              cat.Races,
		Character:          ch,
	})

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			logger.Fatal("encode result failed", zap.Error(err))
		}
		return
	}

	printTable(res)
}

func printTable(res schedule.Result) {
	fmt.Println(res.Summary())
	fmt.Printf("Multiplier %.2f, objectives %d fans, %d races\n\n", res.Multiplier, res.ObjectiveFans, len(res.Schedule))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "YEAR\tTURN\tRACE\tGRADE\tDISTANCE\tSURFACE\tFANS\tOBJECTIVE")
	for _, e := range res.Schedule {
		objective := ""
		if e.IsObjective {
			objective = e.ObjectiveText
		}
		fmt.Fprintf(w, "%s\t%s %s\t%s\t%s\t%s\t%s\t%d\t%s\n",
			schedule.YearName(e.Year), e.Week, e.Month, e.Name, e.Grade, e.Distance, e.Surface, e.FansWithBonus, objective)
	}
	_ = w.Flush()
}
