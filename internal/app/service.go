// Package app wires one full scheduling run: load, route, allocate, write.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/jamhacks/jamsched/internal/adapters/charting"
	"github.com/jamhacks/jamsched/internal/adapters/csvio"
	"github.com/jamhacks/jamsched/internal/adapters/xlsx"
	"github.com/jamhacks/jamsched/internal/config"
	"github.com/jamhacks/jamsched/internal/domain/allocate"
	"github.com/jamhacks/jamsched/internal/domain/model"
	"github.com/jamhacks/jamsched/internal/domain/normalize"
	"github.com/jamhacks/jamsched/internal/domain/route"
	"github.com/jamhacks/jamsched/internal/schedule"
	"github.com/jamhacks/jamsched/pkg/logger"
	"github.com/jamhacks/jamsched/pkg/metrics"
)

// MetricsFileName is the run metrics snapshot written into the output dir.
const MetricsFileName = "run_metrics.txt"

// Service runs the scheduling pipeline. Everything is synchronous and
// single-threaded: one pass normalizes, one routes, one allocates, one
// writes.
type Service struct {
	cfg       *config.Config
	log       logger.Logger
	metrics   *metrics.Manager
	visualize bool
	workbook  bool
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithMetrics sets a custom metrics manager.
func WithMetrics(m *metrics.Manager) Option {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithVisualization enables per-bucket timeline PNGs.
func WithVisualization(enabled bool) Option {
	return func(s *Service) {
		s.visualize = enabled
	}
}

// WithWorkbook enables the XLSX workbook export.
func WithWorkbook(enabled bool) Option {
	return func(s *Service) {
		s.workbook = enabled
	}
}

// New constructs a Service for one configuration.
func New(cfg *config.Config, opts ...Option) *Service {
	s := &Service{
		cfg:     cfg,
		metrics: metrics.NewManager(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Summary is the outcome of one run.
type Summary struct {
	RunID         string
	Start         time.Time
	End           time.Time
	TargetEnd     time.Time
	Overrun       time.Duration
	TeamsLoaded   int
	RowsSkipped   int
	TeamsRouted   int
	TeamsUnrouted int
	Slots         int
	Dropped       int
	Unmatched     int
	Files         []string
}

// Run executes one full pass over the export at inputPath and writes every
// output into outDir. The returned board carries the allocated schedule for
// rendering.
func (s *Service) Run(ctx context.Context, inputPath, outDir string) (*schedule.Board, *Summary, error) {
	if s.log == nil {
		s.log = logger.Get()
	}
	runID := uuid.New().String()
	log := s.log
	log.Info(ctx, "starting scheduling run", logger.String("run_id", runID), logger.String("input", inputPath))

	rows, malformed, err := csvio.ReadRows(ctx, inputPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load submissions: %w", err)
	}
	s.metrics.AddRowsRead(len(rows) + malformed)
	if malformed > 0 {
		log.Warn(ctx, "skipped rows with broken quoting", logger.Int("rows", malformed))
		for i := 0; i < malformed; i++ {
			s.metrics.RecordRowSkipped()
		}
	}

	teams, skipped := s.normalizeRows(ctx, rows)
	skipped += malformed
	if len(teams) == 0 {
		return nil, nil, ErrNoTeams
	}
	log.Info(ctx, "teams loaded", logger.Int("teams", len(teams)), logger.Int("skipped", skipped))

	router := s.buildRouter(ctx)
	routed, unrouted := 0, 0
	for _, team := range teams {
		if router.Route(team) > 0 {
			routed++
			s.metrics.RecordTeamRouted()
			continue
		}
		unrouted++
		s.metrics.RecordTeamUnrouted()
		log.Warn(ctx, "team matched no configured category",
			logger.String("team_id", team.ID), logger.String("team", team.Name))
	}
	s.metrics.AddUnmatchedCategories(router.Unmatched())

	alloc := allocate.New(s.cfg.Start(),
		allocate.WithBuffer(s.cfg.Buffer()),
		allocate.WithTargetEnd(s.cfg.TargetEnd()),
	)
	res := alloc.Run(ctx, router.Queues())
	for _, name := range res.DroppedBuckets {
		log.Warn(ctx, "bucket has no usable duration; teams dropped from it",
			logger.String("bucket", name))
	}
	if res.Overrun > 0 {
		log.Warn(ctx, "schedule runs past the target end time",
			logger.String("target", s.cfg.TargetEnd().Format(csvio.TimeFormat)),
			logger.String("end", res.LatestEnd.Format(csvio.TimeFormat)),
			logger.Int("overrun_minutes", int(res.Overrun.Minutes())))
	}
	s.metrics.AddSlots(res.SlotCount)
	s.metrics.AddDroppedTeams(res.Dropped)
	s.metrics.SetOverrun(res.Overrun)
	s.metrics.SetScheduleEnd(res.LatestEnd)

	board := schedule.NewBoard(res.Schedules)

	files, err := s.writeOutputs(ctx, board, outDir)
	if err != nil {
		return nil, nil, err
	}

	summary := &Summary{
		RunID:         runID,
		Start:         s.cfg.Start(),
		End:           res.LatestEnd,
		TargetEnd:     s.cfg.TargetEnd(),
		Overrun:       res.Overrun,
		TeamsLoaded:   len(teams),
		RowsSkipped:   skipped,
		TeamsRouted:   routed,
		TeamsUnrouted: unrouted,
		Slots:         res.SlotCount,
		Dropped:       res.Dropped,
		Unmatched:     router.Unmatched(),
		Files:         files,
	}
	log.Info(ctx, "scheduling run finished",
		logger.String("run_id", runID),
		logger.Int("slots", summary.Slots),
		logger.Int("files", len(files)))
	return board, summary, nil
}

// normalizeRows parses raw rows, skipping and counting the invalid ones.
func (s *Service) normalizeRows(ctx context.Context, rows []csvio.Row) ([]model.TeamRecord, int) {
	nz := normalize.New(
		normalize.WithColumns(normalize.Columns{
			ID:       s.cfg.IDColumn,
			Name:     s.cfg.NameColumn,
			Contact:  s.cfg.ContactColumn,
			Members:  s.cfg.MembersColumn,
			Track:    s.cfg.TrackColumn,
			Bounties: s.cfg.BountiesColumn,
		}),
		normalize.WithCategoryDelimiter(s.cfg.CategoryDelimiter),
		normalize.WithMemberDelimiter(s.cfg.MemberDelimiter),
	)

	var teams []model.TeamRecord
	skipped := 0
	for _, row := range rows {
		team, err := nz.Record(row.Fields, row.Line)
		if err != nil {
			skipped++
			s.metrics.RecordRowSkipped()
			s.log.Warn(ctx, "skipping row", logger.Error(err))
			continue
		}
		teams = append(teams, team)
		s.metrics.RecordTeamLoaded()
	}
	return teams, skipped
}

// buildRouter turns static configuration into the bucket set.
func (s *Service) buildRouter(ctx context.Context) *route.Router {
	duration := s.cfg.SlotDuration()
	offset := s.cfg.CategoryStartOffset()

	rooms := make([]model.Bucket, 0, s.cfg.GeneralRooms)
	for i := 1; i <= s.cfg.GeneralRooms; i++ {
		name := fmt.Sprintf("Room %d", i)
		rooms = append(rooms, model.Bucket{
			Name:     name,
			Kind:     model.GeneralBucket,
			Room:     name,
			Duration: duration,
		})
	}
	if len(rooms) == 0 && len(s.cfg.GeneralTracks) > 0 {
		s.log.Warn(ctx, "no general rooms configured; track submissions will not be scheduled")
	}

	sponsors := make([]model.Bucket, 0, len(s.cfg.SponsorCategories))
	for _, name := range s.cfg.SponsorCategories {
		sponsors = append(sponsors, model.Bucket{
			Name:        name,
			Kind:        model.SponsorBucket,
			Room:        name + " Judging",
			Duration:    duration,
			StartOffset: offset,
		})
	}

	return route.New(
		route.WithGeneralRooms(rooms),
		route.WithGeneralTracks(s.cfg.GeneralTracks),
		route.WithMLHBucket(model.Bucket{
			Name:        "MLH",
			Kind:        model.MLHBucket,
			Room:        "MLH Judging",
			Duration:    duration,
			StartOffset: offset,
		}),
		route.WithMLHCategories(s.cfg.MLHCategories),
		route.WithSponsorBuckets(sponsors),
	)
}

// writeOutputs emits every configured artifact and returns the file paths.
func (s *Service) writeOutputs(ctx context.Context, board *schedule.Board, outDir string) ([]string, error) {
	var files []string

	bucketFiles, err := csvio.WriteBucketSchedules(outDir, board.Buckets())
	if err != nil {
		return nil, fmt.Errorf("write bucket schedules: %w", err)
	}
	files = append(files, bucketFiles...)

	masterFile, err := csvio.WriteMaster(outDir, board.Master())
	if err != nil {
		return nil, fmt.Errorf("write master schedule: %w", err)
	}
	files = append(files, masterFile)

	teamFile, err := csvio.WriteTeamView(outDir, board.TeamView())
	if err != nil {
		return nil, fmt.Errorf("write team schedule: %w", err)
	}
	files = append(files, teamFile)

	if s.workbook {
		wb, err := xlsx.WriteWorkbook(outDir, board.Buckets(), board.Master())
		if err != nil {
			return nil, fmt.Errorf("write workbook: %w", err)
		}
		files = append(files, wb)
	}

	if s.visualize {
		charts, err := charting.WriteBucketTimelines(outDir, board.Buckets(), s.cfg.Start())
		if err != nil {
			return nil, fmt.Errorf("write timelines: %w", err)
		}
		files = append(files, charts...)
	}

	metricsPath := filepath.Join(outDir, MetricsFileName)
	mf, err := os.Create(metricsPath)
	if err != nil {
		return nil, fmt.Errorf("create metrics snapshot: %w", err)
	}
	if err := s.metrics.Snapshot(mf); err != nil {
		mf.Close()
		return nil, fmt.Errorf("write metrics snapshot: %w", err)
	}
	if err := mf.Close(); err != nil {
		return nil, fmt.Errorf("close metrics snapshot: %w", err)
	}
	files = append(files, metricsPath)

	s.log.Debug(ctx, "outputs written", logger.Int("files", len(files)))
	return files, nil
}
