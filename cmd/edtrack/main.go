// Package main implements the edtrack command line client for the
// training-management backend. It wires configuration, logging, the
// REST client, the query cache, and the resource services, then runs
// one subcommand against the live API.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/edtrack/edtrack-go/internal/auth"
	"github.com/edtrack/edtrack-go/internal/config"
	"github.com/edtrack/edtrack-go/internal/domain"
	"github.com/edtrack/edtrack-go/internal/platform/logger"
	"github.com/edtrack/edtrack-go/internal/query"
	"github.com/edtrack/edtrack-go/internal/restclient"
	"github.com/edtrack/edtrack-go/internal/service"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("edtrack: %v", err)
	}
}

// app bundles the wired components a subcommand needs.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	store   *query.Store
	courses *service.CourseService
	lessons *service.LessonService
}

func run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: edtrack <command> [args]\ncommands: courses list | lessons list <course-id>")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := initializeApp(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer a.store.Wait()

	switch args[0] {
	case "courses":
		if len(args) < 2 || args[1] != "list" {
			return fmt.Errorf("usage: edtrack courses list")
		}
		return listCourses(ctx, a)
	case "lessons":
		if len(args) < 3 || args[1] != "list" {
			return fmt.Errorf("usage: edtrack lessons list <course-id>")
		}
		return listLessons(ctx, a, args[2])
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

// initializeApp loads configuration and wires the component graph.
func initializeApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.API)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.DebugContext(ctx, "configuration loaded",
		slog.String("base_url", cfg.API.BaseURL),
		slog.Bool("token_present", cfg.Auth.Token != ""))

	opts := []restclient.Option{}
	if cfg.Auth.Token != "" {
		opts = append(opts, restclient.WithTokenSource(auth.Static(cfg.Auth.Token)))
	}
	client, err := restclient.New(cfg.API, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create REST client: %w", err)
	}

	store := query.NewStore(cfg.Cache, appLogger)

	courses, err := service.NewCourseService(client, appLogger)
	if err != nil {
		return nil, err
	}
	lessons, err := service.NewLessonService(client, appLogger)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:     cfg,
		logger:  appLogger,
		store:   store,
		courses: courses,
		lessons: lessons,
	}, nil
}

func listCourses(ctx context.Context, a *app) error {
	page, err := query.Fetch(ctx, a.store, service.CoursesKey(),
		func(ctx context.Context) (domain.Page[domain.Course], error) {
			return a.courses.List(ctx, domain.CourseFilter{}, 1, 50)
		})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tSTATUS\tLESSONS")
	for _, c := range page.Items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", c.ID, c.Title, c.Status, c.LessonCount)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("%d of %d courses\n", len(page.Items), page.TotalCount)
	return nil
}

func listLessons(ctx context.Context, a *app, courseID string) error {
	lessons, err := query.Fetch(ctx, a.store, service.LessonsKey(courseID),
		func(ctx context.Context) ([]domain.Lesson, error) {
			return a.lessons.ListByCourse(ctx, courseID)
		})
	if err != nil {
		return err
	}

	if len(lessons) == 0 {
		fmt.Println("no lessons")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "POS\tID\tTITLE")
	for _, l := range lessons {
		fmt.Fprintf(w, "%d\t%d\t%s\n", l.Position, l.ID, l.Title)
	}
	return w.Flush()
}
