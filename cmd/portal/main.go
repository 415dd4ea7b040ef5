// Command portal is a thin terminal front end over the client SDK,
// wired the same way a UI embedding the usecases would be.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"

	"go-jobportal-client/config"
	"go-jobportal-client/internal/domain"
	"go-jobportal-client/internal/repository/localstore"
	"go-jobportal-client/internal/repository/rest"
	"go-jobportal-client/internal/usecase"
	"go-jobportal-client/pkg/logger"
	"go-jobportal-client/pkg/validation"
)

func main() {
	var (
		role      = flag.String("role", "", "job role query")
		location  = flag.String("location", "", "location query")
		jobTypes  = flag.String("types", "", "comma-separated job types (Full-time, Part-time, Internship)")
		workModes = flag.String("modes", "", "comma-separated work modes (Remote, Hybrid, On-site)")
		saved     = flag.Bool("saved", false, "list bookmarked jobs instead of browsing")
		notify    = flag.Bool("notifications", false, "show the signed-in user's notification feed")
		page      = flag.Int("page", 1, "notification feed page")
	)
	flag.Parse()

	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting portal client", "api", cfg.APIBaseURL)

	// 3. Setup Mirror Store
	db, err := localstore.Open(cfg.MirrorPath)
	if err != nil {
		logger.Log.Error("Failed to open mirror store", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	mirror := localstore.NewMirrorStore(db)

	// 4. Setup Backend Client and Repositories
	client := rest.NewClient(cfg.APIBaseURL, cfg.RequestTimeout)
	sessions := usecase.NewSessions(mirror, client)
	jobRepo := rest.NewJobRepository(client)
	notificationRepo := rest.NewNotificationRepository(client)

	// 5. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)
	jobUC := usecase.NewJobUsecase(jobRepo, validate)
	savedUC := usecase.NewSavedJobsUsecase(mirror, jobRepo, sessions, cfg.MirrorMaxAge)
	notificationUC := usecase.NewNotificationUsecase(notificationRepo, sessions, cfg.PageSize)

	ctx := context.Background()

	criteria := domain.JobCriteria{
		Role:             *role,
		Location:         *location,
		MatchDescription: true,
	}
	if *jobTypes != "" {
		criteria.JobTypes = splitTrim(*jobTypes)
	}
	if *workModes != "" {
		criteria.WorkModes = splitTrim(*workModes)
	}

	switch {
	case *notify:
		showNotifications(ctx, notificationUC, sessions, *page)
	case *saved:
		showSavedJobs(ctx, savedUC, criteria)
	default:
		browseJobs(ctx, jobUC, savedUC, criteria)
	}
}

func splitTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func browseJobs(ctx context.Context, jobUC domain.JobUsecase, savedUC domain.SavedJobsUsecase, criteria domain.JobCriteria) {
	jobs, err := jobUC.BrowseJobs(ctx, criteria)
	if err != nil {
		logger.Log.Error("Failed to fetch jobs", "error", err)
		os.Exit(1)
	}

	savedIDs := savedUC.SavedIDs()
	for _, job := range jobs {
		marker := " "
		if savedIDs[job.ID] {
			marker = "*"
		}
		fmt.Printf("%s %-30s %-20s %s\n", marker, job.Role, job.CompanyName, job.Location)
	}
	fmt.Printf("%d jobs\n", len(jobs))
}

func showSavedJobs(ctx context.Context, savedUC domain.SavedJobsUsecase, criteria domain.JobCriteria) {
	if err := savedUC.Refresh(ctx); err != nil {
		logger.Log.Warn("Could not refresh saved jobs", "error", err)
	}
	jobs, err := savedUC.SavedJobs(criteria)
	if err != nil {
		logger.Log.Error("Failed to read saved jobs", "error", err)
		os.Exit(1)
	}
	for _, job := range jobs {
		fmt.Printf("%-30s %-20s %s (saved %s)\n", job.Role, job.CompanyName, job.Location, job.SavedAt.Format("2006-01-02"))
	}
	fmt.Printf("%d saved jobs\n", len(jobs))
}

func showNotifications(ctx context.Context, notificationUC domain.NotificationUsecase, sessions *usecase.Sessions, page int) {
	sess := sessions.Current()
	if !sess.SignedIn() {
		log.Fatal("Sign in before reading notifications")
	}
	feed, err := notificationUC.UserFeed(ctx, sess.Email, page)
	if err != nil {
		logger.Log.Error("Failed to fetch notifications", "error", err)
		os.Exit(1)
	}
	for _, n := range feed.Items {
		fmt.Printf("[%s] %s - %s\n", n.Timestamp, n.Title, n.Message)
	}
	fmt.Printf("Page %d of %d (%d notifications)\n", feed.Page, feed.TotalPages, feed.Total)
}
