package commands

import (
	"fmt"

	"github.com/imkonsowa/restaurants-challenges/challenge"
	"github.com/imkonsowa/restaurants-challenges/events"
	"github.com/imkonsowa/restaurants-challenges/logging"
	"github.com/imkonsowa/restaurants-challenges/models"
	"github.com/spf13/cobra"
)

func generateCmd(deps Deps, configPath *string) *cobra.Command {
	var req request

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a challenge and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := deps.LoadConfig(*configPath)
			if err != nil {
				return err
			}

			logger := logging.New(cfg.Log.Level, cfg.Log.Pretty)

			gen, err := deps.NewGenerator(cmd.Context(), cfg.LLM)
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

			result, err := service.Generate(cmd.Context(), models.NewChallengeRequest(req.theme, req.category, req.text))
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), result.Output)
			return nil
		},
	}
	req.bind(cmd)

	return cmd
}
