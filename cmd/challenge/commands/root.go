package commands

import (
	"context"

	"github.com/imkonsowa/restaurants-challenges/config"
	"github.com/imkonsowa/restaurants-challenges/generator"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Deps are the collaborators generate needs. Tests replace them.
type Deps struct {
	LoadConfig   func(path string) (*config.Config, error)
	NewGenerator func(ctx context.Context, cfg config.LLM) (generator.Generator, error)
}

func DefaultDeps() Deps {
	return Deps{
		LoadConfig: config.LoadConfig,
		NewGenerator: func(ctx context.Context, cfg config.LLM) (generator.Generator, error) {
			gen, err := generator.New(ctx, cfg)
			if err != nil {
				return nil, err
			}

			return gen, nil
		},
	}
}

type request struct {
	theme    string
	category string
	text     string
}

func (r *request) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&r.theme, "theme", "t", "", "challenge theme id (see themes)")
	cmd.Flags().StringVarP(&r.category, "category", "c", "", "challenge category")
	cmd.Flags().StringVar(&r.text, "text", "", "free-text description of the challenge")
	_ = cmd.MarkFlagRequired("theme")
}

func NewRootCmd(deps Deps) *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          "challenge",
		Short:        "Generate gamified restaurant management challenges",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "./config/config.yaml", "path to the config file")

	root.AddCommand(themesCmd(), promptCmd(), generateCmd(deps, &configPath))
	return root
}

func Execute() error {
	_ = godotenv.Load()

	return NewRootCmd(DefaultDeps()).Execute()
}
