package cli

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"heritage-quiz-service/internal/app"
	"heritage-quiz-service/internal/config"
	"heritage-quiz-service/internal/infra/memory"
	pgstore "heritage-quiz-service/internal/infra/postgres"
	redisstore "heritage-quiz-service/internal/infra/redis"
	transport "heritage-quiz-service/internal/transport/http"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the quiz server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

type services struct {
	quiz    *app.QuizService
	contact *app.ContactService
	close   func()
}

// buildServices wires the stores selected by cfg: Postgres when a URL is set,
// Redis caching when an address is set, process memory otherwise.
func buildServices(ctx context.Context, cfg config.Config) (*services, error) {
	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}
	idleTTL := config.TTLDuration(cfg.Quiz.SessionIdleTTL, defaultSessionIdleTTL)

	var pool *pgxpool.Pool
	if cfg.Postgres.URL != "" {
		var err error
		pool, err = pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return nil, err
		}
	}

	var loader memory.BankLoader = memory.NewStaticBankLoader(memory.HeritageBank())
	var results app.ResultRepository = memory.NewResultStore()
	var contacts app.ContactRepository = memory.NewContactStore()
	if pool != nil {
		loader = pgstore.NewBankLoader(pool)
		results = pgstore.NewResultStore(pool)
		contacts = pgstore.NewContactStore(pool)
	}

	bankTTL := config.TTLDuration(cfg.Quiz.TTL, 10*time.Minute)
	var banks app.QuestionBankRepository
	var sessions app.SessionRepository
	if redisClient != nil {
		banks = redisstore.NewBankRepository(redisClient, loader, bankTTL)
		sessions = redisstore.NewSessionStore(redisClient, sessionMarkerTTL(idleTTL))
		results = redisstore.NewResultCache(redisClient, results, cfg.Quiz.ResultCacheSize)
	} else {
		banks = memory.NewBankRepository(loader, bankTTL)
		sessions = memory.NewSessionStore()
	}

	quiz := app.NewQuizService(sessions, banks, results,
		app.WithSessionOptions(app.WithTimer(cfg.Quiz.QuestionSeconds, cfg.Quiz.ExtraTimeSeconds)),
	)
	return &services{
		quiz:    quiz,
		contact: app.NewContactService(contacts),
		close: func() {
			if pool != nil {
				pool.Close()
			}
			if redisClient != nil {
				_ = redisClient.Close()
			}
		},
	}, nil
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	svc, err := buildServices(ctx, cfg)
	if err != nil {
		return err
	}
	defer svc.close()

	handler := transport.NewRouter(transport.Options{
		Quiz:          svc.quiz,
		Contact:       svc.contact,
		CORSOrigin:    cfg.Server.CORSOrigin,
		StaticDir:     cfg.Server.StaticDir,
		ContactPerMin: cfg.Contact.RatePerMinute,
	})

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	janitorCtx, stopJanitor := context.WithCancel(context.Background())
	defer stopJanitor()
	go expireIdleSessions(janitorCtx, svc.quiz, config.TTLDuration(cfg.Quiz.SessionIdleTTL, defaultSessionIdleTTL))

	go func() {
		log.Printf("starting quiz service on :%s", finalPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("shutting down server...")
	case <-ctx.Done():
		log.Println("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

const defaultSessionIdleTTL = 30 * time.Minute

// sessionMarkerTTL keeps a Redis liveness marker alive for as long as the
// janitor can keep the session: idle time plus one sweep interval.
func sessionMarkerTTL(idle time.Duration) time.Duration {
	if idle <= 0 {
		return 0
	}
	return idle + idle/2
}

// expireIdleSessions drops abandoned sessions until ctx is canceled.
func expireIdleSessions(ctx context.Context, quiz *app.QuizService, maxIdle time.Duration) {
	if maxIdle <= 0 {
		return
	}
	ticker := time.NewTicker(maxIdle / 2)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			quiz.ExpireIdle(ctx, maxIdle)
		case <-ctx.Done():
			return
		}
	}
}
