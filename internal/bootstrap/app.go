package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"jobboard-backend/internal/applicants"
	"jobboard-backend/internal/applications"
	"jobboard-backend/internal/applyflow"
	googleauth "jobboard-backend/internal/auth"
	"jobboard-backend/internal/employers"
	"jobboard-backend/internal/graph"
	"jobboard-backend/internal/jobs"
	"jobboard-backend/internal/notify"
	"jobboard-backend/internal/resumes"
	"jobboard-backend/internal/shared/config"
	"jobboard-backend/internal/shared/server"
	"jobboard-backend/internal/shared/storage/db"
	"jobboard-backend/internal/shared/storage/object"
	localstore "jobboard-backend/internal/shared/storage/object/local"
)

// App holds shared dependencies.
type App struct {
	Config           config.Config
	Router           *gin.Engine
	DB               *sql.DB
	Store            object.ObjectStore
	ApplicantsRepo   applicants.Repo
	EmployersRepo    employers.Repo
	JobsRepo         jobs.Repo
	ApplicationsRepo applications.Repo
	ApplicantsSvc    *applicants.Service
	EmployersSvc     *employers.Service
	JobsSvc          *jobs.Service
	ApplySvc         *applyflow.Service
	ResumesSvc       *resumes.Service
	Mailer           notify.Mailer
	Dispatcher       *notify.Dispatcher
	GraphHandler     *graph.Handler
	ApplyHandler     *applyflow.Handler
	ResumeHandler    *resumes.Handler
	GoogleAuth       *googleauth.GoogleService
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  localstore.New(cfg.LocalStoreDir),
	}

	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Dispatcher.Start()

	app.Router = server.NewRouter(server.RouterDeps{
		Config:        app.Config,
		GraphHandler:  app.GraphHandler,
		ApplyHandler:  app.ApplyHandler,
		ResumeHandler: app.ResumeHandler,
		GoogleAuth:    app.GoogleAuth,
	})

	return app, nil
}

// Shutdown stops the notification dispatcher and closes the database pool.
func (a *App) Shutdown(ctx context.Context) error {
	var firstErr error
	if a.Dispatcher != nil {
		if err := a.Dispatcher.Stop(ctx); err != nil {
			firstErr = err
		}
	}
	if a.DB != nil {
		if err := a.DB.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return sqlDB, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func buildServices(app *App) error {
	if app.DB != nil {
		app.ApplicantsRepo = &applicants.PGRepo{DB: app.DB}
		app.EmployersRepo = &employers.PGRepo{DB: app.DB}
		app.JobsRepo = &jobs.PGRepo{DB: app.DB}
		app.ApplicationsRepo = &applications.PGRepo{DB: app.DB}
	} else {
		app.ApplicantsRepo = applicants.NewMemoryRepo()
		app.EmployersRepo = employers.NewMemoryRepo()
		app.JobsRepo = jobs.NewMemoryRepo()
		app.ApplicationsRepo = applications.NewMemoryRepo()
	}

	app.ApplicantsSvc = applicants.NewService(app.ApplicantsRepo)
	app.EmployersSvc = employers.NewService(app.EmployersRepo)
	app.JobsSvc = jobs.NewService(app.JobsRepo, app.EmployersRepo)

	app.Mailer = buildMailer(app.Config)
	app.Dispatcher = notify.NewDispatcher(app.Mailer, app.Config.NotifyWorkers, app.Config.NotifyQueueSize)

	app.ApplySvc = &applyflow.Service{
		Applicants:   app.ApplicantsRepo,
		Jobs:         app.JobsRepo,
		Employers:    app.EmployersRepo,
		Applications: app.ApplicationsRepo,
		Notifier:     app.Dispatcher,
	}

	app.ResumesSvc = &resumes.Service{
		Store:      app.Store,
		Applicants: app.ApplicantsSvc,
	}

	graphHandler, err := graph.NewHandler(&graph.Resolver{
		Applicants:   app.ApplicantsSvc,
		Employers:    app.EmployersSvc,
		Jobs:         app.JobsSvc,
		Applications: app.ApplicationsRepo,
	})
	if err != nil {
		return fmt.Errorf("build graphql schema: %w", err)
	}

	app.GraphHandler = graphHandler
	app.ApplyHandler = applyflow.NewHandler(app.ApplySvc)
	app.ResumeHandler = resumes.NewHandler(app.ResumesSvc)
	app.GoogleAuth = googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
		app.ApplicantsSvc,
	)

	return nil
}

func buildMailer(cfg config.Config) notify.Mailer {
	if strings.TrimSpace(cfg.SMTPHost) == "" {
		log.Printf("bootstrap: SMTP_HOST empty; logging notifications instead of sending")
		return notify.NewLogMailer()
	}
	return notify.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.MailFrom)
}
