package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jamhacks/jamsched/internal/app"
	"github.com/jamhacks/jamsched/internal/config"
	"github.com/jamhacks/jamsched/internal/render"
	"github.com/jamhacks/jamsched/pkg/logger"
)

var scheduleOpts struct {
	input     string
	output    string
	start     string
	targetEnd string
	buffer    int
	rooms     int
	visualize bool
	xlsx      bool
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Generate judging schedules from a submissions export",
	RunE:  runSchedule,
}

func init() {
	f := scheduleCmd.Flags()
	f.StringVarP(&scheduleOpts.input, "input", "i", "", "input CSV file with team data (required)")
	f.StringVarP(&scheduleOpts.output, "output", "o", "schedules", "output directory for schedules")
	f.StringVarP(&scheduleOpts.start, "start", "s", "", "start time (format: YYYY-MM-DD HH:MM)")
	f.StringVar(&scheduleOpts.targetEnd, "target-end", "", "preferred end time (format: YYYY-MM-DD HH:MM)")
	f.IntVarP(&scheduleOpts.buffer, "buffer", "b", -1, "buffer time between a team's slots in minutes")
	f.IntVarP(&scheduleOpts.rooms, "rooms", "r", -1, "number of general judging rooms")
	f.BoolVar(&scheduleOpts.visualize, "visualize", false, "render per-bucket timeline PNGs")
	f.BoolVar(&scheduleOpts.xlsx, "xlsx", false, "export a single XLSX workbook")
	_ = scheduleCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(scheduleCmd)
}

func runSchedule(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	if scheduleOpts.start != "" {
		cfg.StartTime = scheduleOpts.start
	}
	if scheduleOpts.targetEnd != "" {
		cfg.TargetEndTime = scheduleOpts.targetEnd
	}
	if scheduleOpts.buffer >= 0 {
		cfg.BufferMinutes = scheduleOpts.buffer
	}
	if scheduleOpts.rooms >= 0 {
		cfg.GeneralRooms = scheduleOpts.rooms
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.Get()
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel))
		_ = logger.SetLevelString("info")
	}

	fmt.Fprintln(cmd.OutOrStdout(), render.Banner())

	svc := app.New(cfg,
		app.WithLogger(log),
		app.WithVisualization(scheduleOpts.visualize),
		app.WithWorkbook(scheduleOpts.xlsx),
	)
	board, summary, err := svc.Run(ctx, scheduleOpts.input, scheduleOpts.output)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, render.Board(board.Buckets()))
	fmt.Fprintln(out, render.SummaryPanel(render.Summary{
		Start:         summary.Start,
		End:           summary.End,
		TargetEnd:     summary.TargetEnd,
		Overrun:       summary.Overrun,
		TeamsLoaded:   summary.TeamsLoaded,
		RowsSkipped:   summary.RowsSkipped,
		TeamsRouted:   summary.TeamsRouted,
		TeamsUnrouted: summary.TeamsUnrouted,
		Slots:         summary.Slots,
		Dropped:       summary.Dropped,
		Unmatched:     summary.Unmatched,
	}))
	fmt.Fprintf(out, "Saved %d files to %s\n", len(summary.Files), scheduleOpts.output)
	return nil
}
