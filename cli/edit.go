package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/watzon/penscape/studio"
	"github.com/watzon/penscape/theme"
)

type editOptions struct {
	font        string
	heading     string
	texture     string
	brand       string
	background  string
	strong      string
	colorPreset string
	reset       bool
}

func newEditCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &editOptions{}

	cmd := &cobra.Command{
		Use:   "edit <theme-id>",
		Short: "Change a theme's font, heading style, texture or colors",
		Long: "Recompile a theme with edited parameters. Unset flags keep the current value. " +
			"Editing a preset saves a new custom theme.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, rootFlags, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.font, "font", "", "Font: sans, serif, mono or round")
	cmd.Flags().StringVar(&opts.heading, "heading", "", "Heading style: capsule, marker, gradient, bracket, underline, left-border or clean")
	cmd.Flags().StringVar(&opts.texture, "texture", "", "Texture: none, rice_paper, magazine, grid_dotted, lines or canvas")
	cmd.Flags().StringVar(&opts.brand, "brand", "", "Brand color")
	cmd.Flags().StringVar(&opts.background, "background", "", "Background color")
	cmd.Flags().StringVar(&opts.strong, "strong", "", "Strong text color")
	cmd.Flags().StringVar(&opts.colorPreset, "colors", "", "Apply a color preset: Morandi, Reader, Dark, Mint, Peach or Business")
	cmd.Flags().BoolVar(&opts.reset, "reset-colors", false, "Restore the theme's saved colors")

	return cmd
}

// validate rejects ids the compiler would otherwise quietly replace with a default.
func (o *editOptions) validate() error {
	if o.font != "" && !slices.Contains(theme.Fonts, theme.Font(o.font)) {
		return fmt.Errorf("unknown font %q", o.font)
	}
	if o.heading != "" && !slices.Contains(theme.HeadingStyles, theme.HeadingStyle(o.heading)) {
		return fmt.Errorf("unknown heading style %q", o.heading)
	}
	if o.texture != "" && !slices.Contains(theme.Textures, theme.Texture(o.texture)) {
		return fmt.Errorf("unknown texture %q", o.texture)
	}
	return nil
}

func runEdit(cmd *cobra.Command, rootFlags *rootFlags, opts *editOptions, id string) error {
	if err := opts.validate(); err != nil {
		return err
	}

	a, err := rootFlags.open()
	if err != nil {
		return err
	}

	t, err := a.studio.Edit(id, studio.Edit{
		Params: theme.Metadata{
			Font:            theme.Font(opts.font),
			HeadingStyle:    theme.HeadingStyle(opts.heading),
			Texture:         theme.Texture(opts.texture),
			BrandColor:      opts.brand,
			BackgroundColor: opts.background,
			StrongColor:     opts.strong,
		},
		ColorPreset: opts.colorPreset,
		ResetColors: opts.reset,
	})
	if err != nil {
		return err
	}
	return printTheme(cmd, rootFlags, t)
}
