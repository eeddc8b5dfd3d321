package cli

import (
	"context"
	"github.com/asaskevich/EventBus"
	"github.com/gin-gonic/gin"
	"github.com/maxaizer/careerboost/internal/api"
	"github.com/maxaizer/careerboost/internal/auth"
	"github.com/maxaizer/careerboost/internal/clients/gemini"
	"github.com/maxaizer/careerboost/internal/config"
	"github.com/maxaizer/careerboost/internal/matching"
	"github.com/maxaizer/careerboost/internal/metrics"
	"github.com/maxaizer/careerboost/internal/repositories"
	"github.com/maxaizer/careerboost/internal/services"
	"github.com/maxaizer/careerboost/internal/skills"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"net/http"
	"os/signal"
	"syscall"
	"time"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return serve(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, dbContext, cleanup, err := bootstrap()
	if err != nil {
		return err
	}
	defer cleanup()

	metrics.Register()
	bus := EventBus.New()

	observer, err := services.NewLifecycleObserver(bus)
	if err != nil {
		return errors.Wrap(err, "subscribe lifecycle observer")
	}
	defer observer.Stop()

	svc, closeServices, err := buildServices(ctx, cfg, dbContext, bus)
	if err != nil {
		return err
	}
	defer closeServices()

	if cfg.Policy.NotificationRetentionDays > 0 {
		cleaner, err := services.NewNotificationsCleaner(
			repositories.NewNotificationsRepository(dbContext.DB), cfg.Policy.NotificationRetentionDays)
		if err != nil {
			return errors.Wrap(err, "create notifications cleaner")
		}
		defer cleaner.Stop()
	}

	gin.SetMode(gin.ReleaseMode)
	server := api.NewServer(cfg.HTTP, api.NewRouter(cfg.HTTP, svc))

	serverErr := make(chan error, 1)
	go func() {
		log.Infof("%s listening on %s", app, cfg.HTTP.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err = <-serverErr:
		return errors.Wrap(err, "http server")
	case <-ctx.Done():
	}

	log.Info("Shutting down services...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = server.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutdown http server")
	}
	log.Info("Services stopped.")
	return nil
}

func buildServices(ctx context.Context, cfg *config.Config, dbContext *repositories.DbContext,
	bus EventBus.Bus) (api.Services, func(), error) {

	db := dbContext.DB
	jobs := repositories.NewJobsRepository(db)
	notifications := services.NewNotifications(repositories.NewNotificationsRepository(db), bus,
		cfg.Policy.NotificationsListLimit)

	closeFn := func() {}
	bio := services.NewBioService(nil, nil, cfg.AI.QuotaCooldown)
	if cfg.AI.Enabled() {
		client, err := gemini.NewClient(ctx, cfg.AI.APIKey)
		if err != nil {
			return api.Services{}, nil, errors.Wrap(err, "create gemini client")
		}
		client.SetMinuteRateLimit(cfg.AI.MaxRequestsPerMinute)
		client.SetDayRateLimit(cfg.AI.MaxRequestsPerDay)
		client.PrepareModels(cfg.AI.Models)

		bio = services.NewBioService(client, cfg.AI.Models, cfg.AI.QuotaCooldown)
		closeFn = func() { _ = client.Close() }
	} else {
		log.Warn("ai api key is not set, bios will be generated from the local template")
	}

	svc := api.Services{
		Accounts: services.NewAccounts(repositories.NewUsersRepository(db),
			auth.NewGuard(cfg.Auth.JwtSecret, cfg.Auth.TokenTTL)),
		Applications: services.NewApplications(jobs, repositories.NewApplicationsRepository(db),
			notifications, bus),
		Notifications: notifications,
		Jobs:          services.NewJobs(jobs, skills.NewNormalizer(cfg.Policy.MaxJobSkills)),
		Profiles: services.NewProfiles(repositories.NewProfilesRepository(db),
			skills.NewNormalizer(cfg.Policy.MaxProfileSkills)),
		CompanyProfiles: services.NewCompanyProfiles(repositories.NewCompanyProfilesRepository(db)),
		Skills:          services.NewSkillCatalog(repositories.NewSkillsRepository(db)),
		Bio:             bio,
		Matching:        matching.NewEngine(cfg.Policy.RecommendedSkills),
	}
	return svc, closeFn, nil
}
