package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/watzon/penscape/magic"
	"github.com/watzon/penscape/studio/library"
	"github.com/watzon/penscape/theme"
)

func newThemesCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "themes",
		Short: "Manage the theme library",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List themes, pinned first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := rootFlags.open()
			if err != nil {
				return err
			}
			return printThemeList(cmd, rootFlags, a.studio.Themes())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show <theme-id>",
		Short: "Show one theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := rootFlags.open()
			if err != nil {
				return err
			}
			t, err := a.studio.Theme(args[0])
			if err != nil {
				return err
			}
			return printTheme(cmd, rootFlags, t)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "pin <theme-id>",
		Short: "Pin or unpin a theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := rootFlags.open()
			if err != nil {
				return err
			}
			t, err := a.studio.TogglePin(args[0])
			if err != nil {
				return err
			}
			state := "Unpinned"
			if t.Pinned {
				state = "Pinned"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", state, t.ID)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <theme-id>",
		Short: "Delete a theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := rootFlags.open()
			if err != nil {
				return err
			}
			if err := a.studio.Delete(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	})

	cmd.AddCommand(newImportCmd(rootFlags))
	cmd.AddCommand(newExportCmd(rootFlags))

	return cmd
}

type importOptions struct {
	base string
	name string
}

func newImportCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &importOptions{}

	cmd := &cobra.Command{
		Use:   "import <file.css>",
		Short: "Create a theme from a CSS stylesheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			a, err := rootFlags.open()
			if err != nil {
				return err
			}
			base, err := a.studio.Theme(opts.base)
			if err != nil {
				return err
			}

			t, err := theme.ImportStylesheet(base, string(src))
			if err != nil {
				return err
			}
			t.ID = magic.PrefixCustom + strconv.FormatInt(time.Now().UnixMilli(), 10)
			t.Name = opts.name
			if t.Name == "" {
				t.Name = filepath.Base(args[0])
			}
			t.Description = "Imported from " + filepath.Base(args[0])
			t.Preset = false
			t.Pinned = false

			if err := a.studio.Save(t); err != nil {
				return err
			}
			return printTheme(cmd, rootFlags, t)
		},
	}

	cmd.Flags().StringVar(&opts.base, "base", theme.PresetMinimal, "Theme supplying styles the stylesheet leaves out")
	cmd.Flags().StringVar(&opts.name, "name", "", "Name of the new theme")

	return cmd
}

type exportOptions struct {
	dir string
}

func newExportCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export <theme-id>",
		Short: "Write a theme as a CSS stylesheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := rootFlags.open()
			if err != nil {
				return err
			}
			t, err := a.studio.Theme(args[0])
			if err != nil {
				return err
			}

			if opts.dir == "" {
				_, err := fmt.Fprint(cmd.OutOrStdout(), t.Stylesheet())
				return err
			}
			if err := os.MkdirAll(opts.dir, 0o755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
			path := filepath.Join(opts.dir, library.ExportName(t))
			if err := os.WriteFile(path, []byte(t.Stylesheet()), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.dir, "dir", "d", "", "Write <theme-name>.css into this directory instead of stdout")

	return cmd
}
