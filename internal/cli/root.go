// Package cli реализует schedulectl: предпросмотр недели, месяца и списка
// занятий из базы, JSON файла или демо данных.
package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Freeeeeet/tutorcenter/internal/app"
	"github.com/Freeeeeet/tutorcenter/internal/model"
	"github.com/Freeeeeet/tutorcenter/internal/repository"
	"github.com/Freeeeeet/tutorcenter/internal/schedule"
	"github.com/Freeeeeet/tutorcenter/internal/service"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// options общие флаги всех команд
type options struct {
	jsonPath string
	dbDSN    string
	tz       string
	date     string
	mode     string
	hours    string
	tab      string
	query    string
	verbose  bool

	now func() time.Time
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCmd собирает дерево команд schedulectl
func NewRootCmd() *cobra.Command {
	opts := &options{now: time.Now}

	root := &cobra.Command{
		Use:   "schedulectl",
		Short: "Tutoring center schedule preview",
		Long: `schedulectl - render the tutoring center schedule without the bot

Sessions come from Postgres (--db), a JSON file with classes (--json)
or built-in demo data when neither is given.`,
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.jsonPath, "json", "", "JSON file with an array of classes")
	flags.StringVar(&opts.dbDSN, "db", "", "Postgres DSN (defaults to DB_DSN when --json is not set)")
	flags.StringVar(&opts.tz, "tz", "UTC", "Display timezone")
	flags.StringVar(&opts.date, "date", "", "Any date inside the wanted week or month, YYYY-MM-DD (default today)")
	flags.StringVar(&opts.mode, "mode", "all", "Hours: all, morning, afternoon, evening")
	flags.StringVar(&opts.hours, "hours", "", "Explicit hour range, e.g. 7-10 or 22-26")
	flags.StringVar(&opts.tab, "tab", "all", "Tab: all, upcoming, recent, morning, afternoon, evening")
	flags.StringVar(&opts.query, "query", "", "Search in title, subject, description and teachers")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log to stderr")

	root.AddCommand(newWeekCmd(opts), newMonthCmd(opts), newListCmd(opts))
	return root
}

// env окружение одной команды
type env struct {
	schedules *service.ScheduleService
	state     schedule.ViewState
	now       time.Time
	logger    *zap.Logger
	close     func()
}

func (o *options) setup(ctx context.Context) (*env, error) {
	loc, err := time.LoadLocation(o.tz)
	if err != nil {
		return nil, fmt.Errorf("invalid --tz %q: %w", o.tz, err)
	}

	logger := zap.NewNop()
	if o.verbose {
		logger = app.NewLogger("development")
	}

	now := o.now().In(loc)
	anchor := now
	if o.date != "" {
		anchor, err = time.ParseInLocation("2006-01-02", o.date, loc)
		if err != nil {
			return nil, fmt.Errorf("invalid --date %q: %w", o.date, err)
		}
	}

	source, attendance, closeFn, err := o.source(ctx, logger)
	if err != nil {
		return nil, err
	}

	engine := schedule.NewEngine(schedule.EngineConfig{Location: loc}, logger)
	schedules := service.NewScheduleService(source, attendance, engine, service.ScheduleOptions{}, logger)

	st := schedules.NewViewState(anchor)
	st.Mode = schedule.ParseFilterMode(o.mode)
	st.Category = schedule.ParseCategory(o.tab)
	st.Query = o.query
	if o.hours != "" {
		r, err := parseHourRange(o.hours)
		if err != nil {
			closeFn()
			return nil, err
		}
		st.Range = r
	}

	return &env{
		schedules: schedules,
		state:     st,
		now:       now,
		logger:    logger,
		close:     closeFn,
	}, nil
}

// source выбирает откуда читать классы
func (o *options) source(ctx context.Context, logger *zap.Logger) (service.ClassSource, service.AttendanceLookup, func(), error) {
	if o.jsonPath != "" {
		repo, err := repository.LoadClassFixture(o.jsonPath)
		if err != nil {
			return nil, nil, nil, err
		}
		return repo, nil, func() {}, nil
	}

	dsn := o.dbDSN
	if dsn == "" {
		dsn = os.Getenv("DB_DSN")
	}
	if dsn == "" {
		logger.Info("No --db or --json given, using demo data")
		return repository.NewMemoryClassRepository(demoClasses(o.now())), nil, func() {}, nil
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, nil, fmt.Errorf("ping database: %w", err)
	}

	return repository.NewClassRepository(pool), repository.NewAttendanceRepository(pool), pool.Close, nil
}

// admin - CLI смотрит расписание целиком
var admin = model.Viewer{Person: model.Person{FirstName: "schedulectl", Role: model.RoleAdmin}}

// parseHourRange разбирает "7-10" в HourRange; конец может быть > 24
func parseHourRange(s string) (*schedule.HourRange, error) {
	from, to, ok := strings.Cut(s, "-")
	if !ok {
		return nil, fmt.Errorf("invalid --hours %q: want FROM-TO", s)
	}
	earliest, err := strconv.Atoi(strings.TrimSpace(from))
	if err != nil {
		return nil, fmt.Errorf("invalid --hours %q: %w", s, err)
	}
	latest, err := strconv.Atoi(strings.TrimSpace(to))
	if err != nil {
		return nil, fmt.Errorf("invalid --hours %q: %w", s, err)
	}
	if earliest < 0 || earliest > 23 || latest <= earliest || latest-earliest > 24 {
		return nil, fmt.Errorf("invalid --hours %q: out of range", s)
	}
	return &schedule.HourRange{Earliest: earliest, Latest: latest}, nil
}
