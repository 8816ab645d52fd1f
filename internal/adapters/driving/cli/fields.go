package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/shawnhcorey/Field-Sort/internal/core/domain"
)

var fieldsJSON bool

var fieldsCmd = &cobra.Command{
	Use:   "fields MARKED [PLAIN]",
	Short: "Show the fields found in a selection",
	Long: `Splits a selection into lines and fields the way a sort would, without
sorting. Useful for checking which field numbers to pass to --key.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runFields,
}

func init() {
	fieldsCmd.Flags().BoolVar(&fieldsJSON, "json", false, "output the fields as JSON")
	rootCmd.AddCommand(fieldsCmd)
}

// fieldsLine is the JSON form of one extracted line.
type fieldsLine struct {
	Marked string   `json:"marked"`
	Plain  string   `json:"plain"`
	Fields []string `json:"fields"`
}

type fieldsOutput struct {
	Count      int          `json:"count"`
	Mismatched bool         `json:"mismatched"`
	Lines      []fieldsLine `json:"lines"`
}

func runFields(cmd *cobra.Command, args []string) error {
	if sortService == nil {
		return errors.New("sort service not configured")
	}

	marked := args[0]
	plain := domain.StripFieldMarkers(marked)
	if len(args) > 1 {
		plain = args[1]
	}

	extraction := sortService.Extract(marked, plain)

	if fieldsJSON {
		return outputFieldsJSON(cmd, extraction)
	}
	return outputFieldsTable(cmd, extraction)
}

func outputFieldsJSON(cmd *cobra.Command, extraction *domain.Extraction) error {
	out := fieldsOutput{
		Count:      extraction.Count,
		Mismatched: extraction.Mismatched(),
		Lines:      make([]fieldsLine, len(extraction.Lines)),
	}
	for i, line := range extraction.Lines {
		fields := line.Fields
		if fields == nil {
			fields = []string{}
		}
		out.Lines[i] = fieldsLine{Marked: line.Marked, Plain: line.Plain, Fields: fields}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal fields: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputFieldsTable(cmd *cobra.Command, extraction *domain.Extraction) error {
	if extraction.Count == 0 {
		cmd.Println("No fields found.")
	} else {
		cmd.Printf("Number of fields: %d\n", extraction.Count)
	}
	if extraction.Mismatched() {
		cmd.Printf("Warning: %d marked lines but %d plain lines\n",
			extraction.MarkedLines, extraction.PlainLines)
	}
	if len(extraction.Lines) == 0 {
		return nil
	}

	headers := []string{"#", "Line"}
	for i := 1; i <= extraction.Count; i++ {
		headers = append(headers, "Field "+strconv.Itoa(i))
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)
	for i, line := range extraction.Lines {
		row := []string{strconv.Itoa(i + 1), line.Plain}
		for f := 1; f <= extraction.Count; f++ {
			value, _ := line.Field(f)
			row = append(row, value)
		}
		t.Row(row...)
	}

	cmd.Println(t.Render())
	return nil
}
