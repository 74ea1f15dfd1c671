package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/phanxgames/nebula"
)

// layoutEntry is the JSON form of one positioned word.
type layoutEntry struct {
	Index    int        `json:"index"`
	Word     string     `json:"word"`
	Weight   float64    `json:"weight"`
	Hue      int        `json:"hue"`
	Color    string     `json:"color"`
	Size     float64    `json:"size"`
	Position [3]float64 `json:"position"`
}

// layoutDoc is the JSON document printed by layout --json.
type layoutDoc struct {
	URL   string        `json:"url,omitempty"`
	Title string        `json:"title,omitempty"`
	Words []layoutEntry `json:"words"`
}

func newLayoutCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "layout [words.json]",
		Short: "Print the sphere layout of a word list",
		Long:  `Compute positions, hues and sizes for an analysis file ("-" or no file for stdin) and print them as a table or JSON.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) > 0 {
				path = args[0]
			}
			analysis, err := readWords(cmd.InOrStdin(), path)
			if err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())
			positioned := nebula.Layout(analysis.Words)
			logger.Debug("layout computed", "words", len(positioned))

			if asJSON {
				return writeLayoutJSON(cmd.OutOrStdout(), analysis, positioned)
			}
			writeLayoutTable(cmd.OutOrStdout(), analysis, positioned)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}

func writeLayoutJSON(w io.Writer, a nebula.Analysis, positioned []nebula.PositionedWord) error {
	doc := layoutDoc{URL: a.URL, Title: a.Title, Words: make([]layoutEntry, len(positioned))}
	for i, pw := range positioned {
		doc.Words[i] = layoutEntry{
			Index:    pw.Index,
			Word:     pw.Word,
			Weight:   pw.Weight,
			Hue:      pw.Hue,
			Color:    pw.Color.Hex(),
			Size:     pw.Size,
			Position: [3]float64{pw.Position.X, pw.Position.Y, pw.Position.Z},
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}
	return nil
}

func writeLayoutTable(w io.Writer, a nebula.Analysis, positioned []nebula.PositionedWord) {
	if a.Title != "" {
		fmt.Fprintln(w, StyleTitle.Render(a.Title))
	}
	if a.URL != "" {
		fmt.Fprintln(w, StyleLink.Render(a.URL))
	}
	if len(positioned) == 0 {
		fmt.Fprintln(w, StyleDim.Render(nebula.PlaceholderText))
		return
	}

	rows := make([][]string, len(positioned))
	for i, pw := range positioned {
		rows[i] = []string{
			strconv.Itoa(pw.Index),
			StyleValue.Render(pw.Word),
			formatFloat(pw.Weight, 3),
			hueSwatch(pw.Color.Hex(), pw.Hue),
			formatFloat(pw.Size, 3),
			formatFloat(pw.Position.X, 2),
			formatFloat(pw.Position.Y, 2),
			formatFloat(pw.Position.Z, 2),
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers("#", "Word", "Weight", "Hue", "Size", "X", "Y", "Z").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader.Padding(0, 1)
			}
			return styleCell
		})
	fmt.Fprintln(w, t.Render())
}

func formatFloat(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}
