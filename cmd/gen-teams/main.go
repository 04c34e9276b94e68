// Command gen-teams writes a synthetic submissions export for rehearsing a
// judging run. The same seed always produces the same export.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/jamhacks/jamsched/internal/config"
	"github.com/jamhacks/jamsched/internal/testdata"
	"github.com/jamhacks/jamsched/pkg/logger"
)

func main() {
	teams := flag.Int("teams", 40, "number of teams to generate")
	seed := flag.Uint64("seed", 42, "deterministic generation seed")
	output := flag.String("output", "teams.csv", "output CSV path")
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	ctx := context.Background()
	log := logger.Get()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Error(ctx, "failed to load config", logger.Error(err))
		os.Exit(1)
	}

	gen := testdata.New(
		testdata.WithSeed(*seed),
		testdata.WithTeamCount(*teams),
		testdata.WithTracks(cfg.GeneralTracks),
		testdata.WithMLHCategories(cfg.MLHCategories),
		testdata.WithSponsorCategories(cfg.SponsorCategories),
		testdata.WithHeader([]string{
			cfg.IDColumn, cfg.NameColumn, cfg.ContactColumn,
			cfg.MembersColumn, cfg.TrackColumn, cfg.BountiesColumn,
		}),
	)
	if err := gen.WriteCSV(*output); err != nil {
		log.Error(ctx, "failed to write export", logger.Error(err))
		os.Exit(1)
	}
	log.Info(ctx, "export written", logger.String("path", *output), logger.Int("teams", *teams))
}
