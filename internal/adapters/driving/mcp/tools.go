package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/shawnhcorey/Field-Sort/internal/core/domain"
)

// SortInput is the input schema for the sort_lines tool.
type SortInput struct {
	Marked string   `json:"marked" jsonschema:"the lines to sort, with fields marked as __value__"`
	Plain  string   `json:"plain,omitempty" jsonschema:"the same lines without markup; derived from marked when omitted"`
	Keys   []string `json:"keys" jsonschema:"sort keys as FIELD[:TYPE[:ORDER[:LOCALE]]] in precedence order; an empty list keeps the input order"`
	Strict bool     `json:"strict,omitempty" jsonschema:"fail when marked and plain have different line counts"`
}

// SortOutput is the output schema for the sort_lines tool.
type SortOutput struct {
	Output     string   `json:"output"`
	Status     string   `json:"status"`
	Keys       []string `json:"keys"`
	FieldCount int      `json:"field_count"`
	LineCount  int      `json:"line_count"`
	Mismatched bool     `json:"mismatched"`
}

// ExtractInput is the input schema for the extract_fields tool.
type ExtractInput struct {
	Marked string `json:"marked" jsonschema:"the lines to split, with fields marked as __value__"`
	Plain  string `json:"plain,omitempty" jsonschema:"the same lines without markup; derived from marked when omitted"`
}

// ExtractOutput is the output schema for the extract_fields tool.
type ExtractOutput struct {
	Count      int          `json:"count"`
	Mismatched bool         `json:"mismatched"`
	Lines      []LineOutput `json:"lines"`
}

// LineOutput is one extracted line.
type LineOutput struct {
	Marked string   `json:"marked"`
	Plain  string   `json:"plain"`
	Fields []string `json:"fields"`
}

// ParseKeysInput is the input schema for the parse_keys tool.
type ParseKeysInput struct {
	Keys []string `json:"keys" jsonschema:"sort keys to check"`
}

// ParseKeysOutput is the output schema for the parse_keys tool.
type ParseKeysOutput struct {
	Keys []string `json:"keys"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "sort_lines",
		Description: "Sort lines by the values of their __field__ markers",
	}, s.handleSort)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "extract_fields",
		Description: "Split lines into their __field__ values without sorting",
	}, s.handleExtract)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "parse_keys",
		Description: "Check sort keys and return them in canonical FIELD:TYPE:ORDER:LOCALE form",
	}, s.handleParseKeys)
}

// handleSort handles the sort_lines tool invocation.
func (s *Server) handleSort(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SortInput,
) (*mcp.CallToolResult, SortOutput, error) {
	keys, err := domain.ParseSortKeys(input.Keys)
	if err != nil {
		return nil, SortOutput{}, err
	}

	result, err := s.ports.Sorter.Sort(ctx, domain.SortRequest{
		Marked: input.Marked,
		Plain:  plainFor(input.Marked, input.Plain),
		Keys:   keys,
		Strict: input.Strict,
	})
	if err != nil {
		return nil, SortOutput{}, fmt.Errorf("sort failed: %w", err)
	}

	return nil, SortOutput{
		Output:     result.Output,
		Status:     result.Status.String(),
		Keys:       keySpecs(result.Keys),
		FieldCount: result.FieldCount,
		LineCount:  result.LineCount,
		Mismatched: result.Mismatched,
	}, nil
}

// handleExtract handles the extract_fields tool invocation.
func (s *Server) handleExtract(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ExtractInput,
) (*mcp.CallToolResult, ExtractOutput, error) {
	extraction := s.ports.Sorter.Extract(input.Marked, plainFor(input.Marked, input.Plain))

	output := ExtractOutput{
		Count:      extraction.Count,
		Mismatched: extraction.Mismatched(),
		Lines:      make([]LineOutput, len(extraction.Lines)),
	}
	for i, line := range extraction.Lines {
		fields := line.Fields
		if fields == nil {
			fields = []string{}
		}
		output.Lines[i] = LineOutput{
			Marked: line.Marked,
			Plain:  line.Plain,
			Fields: fields,
		}
	}

	return nil, output, nil
}

// handleParseKeys handles the parse_keys tool invocation.
func (s *Server) handleParseKeys(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ParseKeysInput,
) (*mcp.CallToolResult, ParseKeysOutput, error) {
	keys, err := domain.ParseSortKeys(input.Keys)
	if err != nil {
		return nil, ParseKeysOutput{}, err
	}
	return nil, ParseKeysOutput{Keys: keySpecs(keys)}, nil
}

func plainFor(marked, plain string) string {
	if plain == "" {
		return domain.StripFieldMarkers(marked)
	}
	return plain
}

func keySpecs(keys []domain.SortKey) []string {
	specs := make([]string, len(keys))
	for i, k := range keys {
		specs[i] = k.String()
	}
	return specs
}
