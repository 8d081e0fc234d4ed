package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

type renderOptions struct {
	themeID string
	output  string
}

func newRenderCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render markdown to inline-styled HTML",
		Long:  "Render a markdown file, or standard input when no file or \"-\" is given, with a theme from the library.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, rootFlags, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.themeID, "theme", "t", "", "Theme id (default penscape)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write HTML to this file instead of stdout")

	return cmd
}

func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return data, nil
}

func runRender(cmd *cobra.Command, rootFlags *rootFlags, opts *renderOptions, args []string) error {
	src, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	a, err := rootFlags.open()
	if err != nil {
		return err
	}

	out, err := a.studio.Render(string(src), opts.themeID)
	if err != nil {
		return fmt.Errorf("failed to render: %w", err)
	}

	if opts.output != "" {
		if err := os.WriteFile(opts.output, []byte(out), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", opts.output, err)
		}
		return nil
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}
