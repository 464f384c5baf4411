package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/imkonsowa/restaurants-challenges/challenge"
	"github.com/imkonsowa/restaurants-challenges/config"
	"github.com/imkonsowa/restaurants-challenges/events"
	"github.com/imkonsowa/restaurants-challenges/generator"
	"github.com/imkonsowa/restaurants-challenges/logging"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

type Agent struct {
	config   *config.Config
	handler  *Handler
	logger   *zerolog.Logger
	upgrader websocket.Upgrader
}

func NewAgent(cfg *config.Config, handler *Handler, logger *zerolog.Logger) *Agent {
	return &Agent{
		config:   cfg,
		handler:  handler,
		logger:   logger,
		upgrader: websocket.Upgrader{},
	}
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found")
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml"
	}

	if err := run(configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to run the agent")
	}
}

func run(configPath string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Pretty)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gen, err := generator.New(ctx, cfg.LLM)
	if err != nil {
		return fmt.Errorf("failed to create generator: %w", err)
	}

	publisher, err := events.NewPublisher(cfg.Nats)
	if err != nil {
		return fmt.Errorf("failed to create event publisher: %w", err)
	}
	defer publisher.Close()

	service := challenge.NewService(gen, publisher, challenge.Options{
		Model:          cfg.LLM.Model,
		Fallback:       cfg.Challenge.Fallback,
		AnnotateErrors: cfg.Challenge.AnnotateErrors,
	}, &logger)

	agent := NewAgent(cfg, NewHandler(service, &logger), &logger)

	if err := agent.Run(ctx); err != nil {
		return err
	}

	logger.Info().Msg("Shutting down")
	return nil
}

func (a *Agent) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:    a.config.Server.Address(),
		Handler: a.Router(),
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info().Str("address", server.Addr).Msg("Starting challenge agent")

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func (a *Agent) Router() *gin.Engine {
	r := gin.Default()

	if a.config.Server.IndexFile != "" {
		r.StaticFile("/", a.config.Server.IndexFile)
	}

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, HealthResponse{Status: "ok"})
	})

	r.GET("/themes", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, challenge.Themes)
	})

	r.POST("/challenges/:theme", func(ctx *gin.Context) {
		var form ChallengeForm
		// an empty json body binds as an empty form so the builder reports the missing input
		if err := ctx.ShouldBind(&form); err != nil && !errors.Is(err, io.EOF) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result, err := a.handler.GenerateChallenge(ctx.Request.Context(), form.ToModel(ctx.Param("theme")))
		if err != nil {
			ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}

		ctx.JSON(http.StatusOK, result)
	})

	r.GET("/challenges/:theme/stream", func(ctx *gin.Context) {
		var form ChallengeForm
		if err := ctx.ShouldBindQuery(&form); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		streamCtx, cancel := context.WithCancel(ctx.Request.Context())
		defer cancel()

		resultChan, err := a.handler.StreamChallenge(streamCtx, form.ToModel(ctx.Param("theme")))
		if err != nil {
			ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}

		c, err := a.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
		if err != nil {
			a.logger.Error().Err(err).Msg("Failed to upgrade connection")
			return
		}
		defer c.Close()

		for result := range resultChan {
			if result.Err != nil {
				a.logger.Error().Err(result.Err).Msg("Challenge stream failed")
				_ = c.WriteJSON(WebSocketsMessage{Type: MessageTypeError, Data: result.Err.Error()})
				return
			}

			if err := c.WriteJSON(result.Msg); err != nil {
				a.logger.Error().Err(err).Msg("Failed to write to ws connection")
				return
			}
		}
	})

	return r
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, challenge.ErrUnknownTheme):
		return http.StatusNotFound
	case errors.Is(err, challenge.ErrInputMissing):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
