package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/figmap-dev/figmap/pkg/classify"
	"github.com/figmap-dev/figmap/pkg/design"
	"github.com/figmap-dev/figmap/pkg/report"
	"github.com/figmap-dev/figmap/pkg/slotmap"
)

// defaultSourceLabel names inline documents in classify reports.
const defaultSourceLabel = "inline"

// handleClassify processes figmap_classify tool calls.
func handleClassify(
	_ context.Context,
	_ *mcpsdk.CallToolRequest,
	input ClassifyInput,
) (*mcpsdk.CallToolResult, ToolOutput, error) {
	err := validateTreeInput(input.Tree, input.Floor)
	if err != nil {
		return errorResult(err)
	}

	root, err := design.DecodeBytes([]byte(input.Tree))
	if err != nil {
		return errorResult(fmt.Errorf("decode tree: %w", err))
	}

	registry := slotmap.NewRegistry()

	mapper := slotmap.NewMapper(registry)
	if input.Threshold > 0 {
		mapper = slotmap.NewMapperWithThreshold(registry, input.Threshold)
	}

	source := input.Source
	if source == "" {
		source = defaultSourceLabel
	}

	analyzer := report.NewAnalyzer(classify.NewClassifier(), mapper, input.Floor)

	rep, err := analyzer.Analyze(source, root)
	if err != nil {
		return errorResult(fmt.Errorf("analyze tree: %w", err))
	}

	return jsonResult(rep)
}
