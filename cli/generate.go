package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/watzon/penscape/theme"
)

type generateOptions struct {
	save bool
}

func newGenerateCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a theme from text, a URL, an image or the image of the day",
	}
	cmd.PersistentFlags().BoolVar(&opts.save, "save", true, "Save the generated theme to the library")

	cmd.AddCommand(&cobra.Command{
		Use:   "text <words...>",
		Short: "Generate a theme from a topic or title",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, rootFlags, opts, func(a *app) (theme.Theme, error) {
				return a.studio.GenerateFromText(strings.Join(args, " "))
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "url <url>",
		Short: "Generate a theme that mimics a site",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, rootFlags, opts, func(a *app) (theme.Theme, error) {
				return a.studio.GenerateFromURL(args[0])
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "image <file>",
		Short: "Generate a theme from the colors of an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, rootFlags, opts, func(a *app) (theme.Theme, error) {
				f, err := os.Open(args[0])
				if err != nil {
					return theme.Theme{}, fmt.Errorf("failed to open image: %w", err)
				}
				defer f.Close()
				t, _ := a.studio.GenerateFromImage(f)
				return t, nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "bing",
		Short: "Generate a theme from Bing's image of the day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, rootFlags, opts, func(a *app) (theme.Theme, error) {
				ctx := cmd.Context()
				if ctx == nil {
					ctx = context.Background()
				}
				t, _, err := a.studio.GenerateFromBing(ctx)
				return t, err
			})
		},
	})

	return cmd
}

func runGenerate(cmd *cobra.Command, rootFlags *rootFlags, opts *generateOptions, generate func(*app) (theme.Theme, error)) error {
	a, err := rootFlags.open()
	if err != nil {
		return err
	}

	t, err := generate(a)
	if err != nil {
		return err
	}
	if opts.save {
		if err := a.studio.Save(t); err != nil {
			return err
		}
	}
	return printTheme(cmd, rootFlags, t)
}
