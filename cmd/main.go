package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Tomas-vilte/DoraPulse/internal/config"
	"github.com/Tomas-vilte/DoraPulse/internal/i18n"
	infraai "github.com/Tomas-vilte/DoraPulse/internal/infrastructure/ai"
	"github.com/Tomas-vilte/DoraPulse/internal/infrastructure/vcs/github"
	"github.com/Tomas-vilte/DoraPulse/internal/logger"
	"github.com/Tomas-vilte/DoraPulse/internal/server"
	"github.com/Tomas-vilte/DoraPulse/internal/services/ai"
	"github.com/Tomas-vilte/DoraPulse/internal/services/contributors"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:  "dorapulse",
		Usage: "Backend de analytics DORA con resumenes por IA",
		Commands: []*cli.Command{
			serveCommand(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Levanta el servidor HTTP",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "port", Usage: "puerto de escucha (pisa PORT)"},
			&cli.BoolFlag{Name: "debug", Usage: "logs de debug con source"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "equivalente a --debug"},
			&cli.BoolFlag{Name: "pretty", Usage: "logs con colores para desarrollo"},
			&cli.StringFlag{Name: "env-file", Value: ".env", Usage: "archivo .env a cargar"},
			&cli.StringFlag{Name: "teams-file", Usage: "archivo TOML de equipos (pisa TEAMS_FILE)"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			// .env ausente no es un error: en produccion las variables
			// vienen del entorno.
			_ = godotenv.Load(cmd.String("env-file"))

			logger.Initialize(cmd.Bool("debug") || cmd.Bool("verbose"), cmd.Bool("pretty"))

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if port := cmd.Int("port"); port != 0 {
				cfg.Port = int(port)
			}
			if teamsFile := cmd.String("teams-file"); teamsFile != "" {
				cfg.TeamsFile = teamsFile
			}

			return runServer(ctx, cfg)
		},
	}
}

func runServer(ctx context.Context, cfg *config.Config) error {
	trans, err := i18n.NewTranslations(cfg.Language)
	if err != nil {
		return fmt.Errorf("error al cargar las traducciones: %w", err)
	}

	teams, err := config.LoadTeams(cfg.TeamsFile)
	if err != nil {
		return err
	}

	resolver := ai.NewCredentialResolver(cfg)
	factory := infraai.NewFactory(cfg.CompletionTimeout, cfg.RequestsPerMinute)
	defer func() {
		if err := factory.Close(); err != nil {
			logger.Error(ctx, "error al cerrar los proveedores de IA", err)
		}
	}()
	gateway := ai.NewGateway(resolver, factory)

	ghClient := github.NewClient(cfg.GitHubToken)
	aggregator := contributors.NewAggregator(ghClient)
	teamRegistry := contributors.NewTeamRegistry(teams)

	srv := server.New(gateway, resolver, aggregator, teamRegistry, trans)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      srv.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2 * time.Minute,
	}

	logger.Info(ctx, "servidor iniciado", "addr", httpServer.Addr, "teams", len(teams))
	if !cfg.HasGitHubConfig() {
		logger.Warn(ctx, "GITHUB_TOKEN no configurado, se usara la API publica con limites bajos")
	}

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-stop:
	case <-ctx.Done():
	}

	logger.Info(ctx, "apagando el servidor")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
