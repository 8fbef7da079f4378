package cli

import (
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"example.com/workouts/internal/api"
	"example.com/workouts/internal/auth"
	"example.com/workouts/internal/config"
	"example.com/workouts/internal/domain"
	"example.com/workouts/internal/observability"
	"example.com/workouts/internal/publisher"
	httptransport "example.com/workouts/internal/transport/http"
)

func newServeCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the summary API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			formula, err := walkingFormula(cfg)
			if err != nil {
				return err
			}
			logger := newLogger(cmd, cfg)

			var pub domain.SummaryPublisher = publisher.Noop{}
			if cfg.PublishingEnabled() {
				producer := publisher.NewKafkaProducer(cfg.KafkaBrokers, cfg.KafkaBatchSize)
				defer producer.Close()
				pub = publisher.NewEventPublisher(producer, cfg.SummaryTopic,
					publisher.WithTimeout(cfg.PublishTimeout),
					publisher.WithLogger(logger),
				)
				logger.Info("publishing summaries", "topic", cfg.SummaryTopic, "brokers", cfg.KafkaBrokers)
			}

			service := domain.NewService(formula,
				domain.WithPublisher(pub),
				domain.WithRecorder(observability.Recorder{}),
				domain.WithLogger(logger),
			)
			router := api.NewRouter(api.NewHandler(service), api.RouterConfig{
				Auth:           auth.Config{Secret: cfg.JWTSecret, Issuer: cfg.JWTIssuer},
				AllowedOrigins: cfg.CORSAllowedOrigins,
				Logger:         logger,
			})

			server := httptransport.NewServer(httptransport.ServerConfig{
				Address:      cfg.HTTPAddress,
				ReadTimeout:  5 * time.Second,
				WriteTimeout: 10 * time.Second,
				IdleTimeout:  60 * time.Second,
			}, router)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return httptransport.Serve(ctx, server, cfg.ShutdownTimeout, logger)
		},
	}

	cmd.Flags().StringVar(&cfg.HTTPAddress, "addr", cfg.HTTPAddress, "listen address")
	return cmd
}

