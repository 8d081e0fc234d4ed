package cli

import (
	"fmt"
	stdimage "image"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/watzon/penscape/studio"
	"github.com/watzon/penscape/studio/config"
	"github.com/watzon/penscape/studio/image"
)

type swatchOptions struct {
	source string
	output string
}

func newSwatchCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &swatchOptions{}

	cmd := &cobra.Command{
		Use:   "swatch <theme-id>",
		Short: "Draw a theme's colors to a PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSwatch(cmd, rootFlags, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.source, "image", "", "Show this image above the colors")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "swatch.png", "Output file, JPEG when it ends in .jpg or .jpeg")

	return cmd
}

func loadImage(cfg *config.Config, path string) (stdimage.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.NewHandler(cfg).Read(f)
	if err != nil {
		return nil, err
	}
	return img, nil
}

func runSwatch(cmd *cobra.Command, rootFlags *rootFlags, opts *swatchOptions, id string) error {
	a, err := rootFlags.open()
	if err != nil {
		return err
	}
	t, err := a.studio.Theme(id)
	if err != nil {
		return err
	}

	var source stdimage.Image
	if opts.source != "" {
		if source, err = loadImage(a.config, opts.source); err != nil {
			return err
		}
	}

	format := studio.FormatPNG
	switch strings.ToLower(filepath.Ext(opts.output)) {
	case ".jpg", ".jpeg":
		format = studio.FormatJPEG
	}

	data, err := a.studio.Swatch(t, source, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.output, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", opts.output)
	return nil
}
