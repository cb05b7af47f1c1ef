package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/samber/do"
	"github.com/spf13/cobra"

	"imagebatch/internal/config"
	"imagebatch/internal/inject"
	"imagebatch/internal/log"
	"imagebatch/internal/run"
)

func main() {
	os.Exit(realMain())
}

func realMain() int {
	ctx := log.NewContext(context.Background(), log.New(os.Stderr))
	if err := newCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if errors.Is(err, config.ErrInvalidArgument) {
			return 2
		}
		return 1
	}
	return 0
}

func newCommand() *cobra.Command {
	var params config.Params

	cmd := &cobra.Command{
		Use:           "imagebatch",
		Short:         "Generate batches of images via the OpenAI Images API",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			settings, err := config.LoadSettings()
			if err != nil {
				return err
			}
			if err := params.Validate(); err != nil {
				return err
			}

			cfg := &config.Config{Settings: settings, Params: params}
			if cfg.OutDir == "" {
				cfg.OutDir = config.DefaultOutDir()
			}

			injector := inject.Setup(ctx, cfg)
			defer func() { _ = injector.Shutdown() }()

			runner, err := do.Invoke[*run.Runner](injector)
			if err != nil {
				return err
			}
			return runner.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&params.Prompt, "prompt", "", "single prompt; random prompts are assembled when omitted")
	cmd.Flags().IntVar(&params.Count, "count", 8, "how many images to generate (1-50)")
	cmd.Flags().StringVar(&params.Model, "model", "gpt-image-1-mini", "image model id")
	cmd.Flags().StringVar(&params.Size, "size", "1024x1024", "image size, e.g. 1024x1024 or 1536x1024")
	cmd.Flags().StringVar(&params.Quality, "quality", "high", "image quality (low, medium, high, auto)")
	cmd.Flags().StringVar(&params.OutDir, "out-dir", "", "output directory (default ./tmp/imagebatch-<timestamp>)")
	cmd.Flags().StringVar(&params.S3Bucket, "s3-bucket", "", "mirror run artifacts to this S3 bucket")
	cmd.Flags().StringVar(&params.Distribution, "cloudfront-distribution", "", "invalidate mirrored paths in this CloudFront distribution")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", config.ErrInvalidArgument, err)
	})

	return cmd
}
