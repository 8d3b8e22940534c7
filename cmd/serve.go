package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/skill-matcher/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the matcher over HTTP",
	Run: func(_ *cobra.Command, _ []string) {
		serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("listen", "l", "", "listen address (default from config, :8080)")
	viper.BindPFlag("server.listen", serveCmd.Flags().Lookup("listen"))
}

func serve() {
	logger := newLogger()

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, builder, err := newService(ctx, config, true, logger)
	if err != nil {
		logger.Warn("serving without the ai provider, analyze requests will fail",
			zap.Error(err),
			zap.String("hint", "set GEMINI_API_KEY or ai.gemini.api-key-file"),
		)
		if svc, builder, err = newService(ctx, config, false, logger); err != nil {
			logger.Fatal("preparing the service", zap.Error(err))
		}
	}

	handler := server.NewHandler(svc, builder.Normalizer(), config.Server.RequestTimeout, buildVersion(), logger)
	router := server.SetupRouter(config.Server, handler, logger)

	logger.Info("starting the skill-matcher server", zap.String("version", buildVersion()))

	if err := server.Run(ctx, config.Server, router, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
