package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/watzon/penscape/color"
	"github.com/watzon/penscape/studio"
	"github.com/watzon/penscape/theme"
)

// swatchLine renders the three theme colors as terminal color blocks.
func swatchLine(meta theme.Metadata) string {
	var b strings.Builder
	for _, c := range []string{meta.BackgroundColor, meta.BrandColor, meta.StrongColor} {
		hex := c
		if parsed, ok := color.Parse(c); ok {
			hex = parsed.Hex()
		}
		b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("    "))
	}
	return b.String()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printTheme writes a short description of t, or t itself as JSON.
func printTheme(cmd *cobra.Command, flags *rootFlags, t theme.Theme) error {
	if flags.jsonOutput {
		return writeJSON(cmd.OutOrStdout(), t)
	}

	meta := studio.Params(t)
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "ID\t%s\n", t.ID)
	fmt.Fprintf(w, "Name\t%s\n", t.Name)
	if t.Description != "" {
		fmt.Fprintf(w, "Description\t%s\n", t.Description)
	}
	fmt.Fprintf(w, "Font\t%s\n", meta.Font.Label())
	fmt.Fprintf(w, "Heading\t%s\n", meta.HeadingStyle.Label())
	fmt.Fprintf(w, "Texture\t%s\n", meta.Texture.Label())
	fmt.Fprintf(w, "Colors\t%s  %s / %s / %s\n", swatchLine(meta), meta.BackgroundColor, meta.BrandColor, meta.StrongColor)
	return w.Flush()
}

func printThemeList(cmd *cobra.Command, flags *rootFlags, themes []theme.Theme) error {
	if flags.jsonOutput {
		return writeJSON(cmd.OutOrStdout(), themes)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPINNED\tPRESET\tCOLORS")
	for _, t := range themes {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			t.ID,
			t.Name,
			yesNo(t.Pinned),
			yesNo(t.Preset),
			swatchLine(studio.Params(t)),
		)
	}
	return w.Flush()
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "-"
}
