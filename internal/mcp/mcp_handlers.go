package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/huangsam/typomatch/core"
	"github.com/huangsam/typomatch/internal/contract"
	"github.com/huangsam/typomatch/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	engine  *core.Engine
}

// typologyArg resolves a typology argument case-insensitively against the registry.
func (h *toolHandler) typologyArg(request mcp.CallToolRequest) schema.TypologyName {
	return schema.ParseTypologyName(request.GetString("typology", ""), h.engine.Typologies())
}

// jsonResult marshals v into a text tool result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleCalculateRelationship(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := h.typologyArg(request)
	typeA := request.GetString("type_a", "")
	typeB := request.GetString("type_b", "")

	rel, err := h.engine.Calculate(typeA, typeB, name)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("calculation failed: %v", err)), nil
	}
	return jsonResult(rel)
}

func (h *toolHandler) handleListTypes(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	names := h.engine.Typologies()
	if strings.TrimSpace(request.GetString("typology", "")) != "" {
		names = []schema.TypologyName{h.typologyArg(request)}
	}

	listings := make([]schema.TypeListing, 0, len(names))
	for _, name := range names {
		types, ok := h.engine.TypesByTypology(name)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("%v: %s", schema.ErrUnknownTypology, name)), nil
		}
		listings = append(listings, schema.TypeListing{Typology: name, Types: types})
	}
	return jsonResult(listings)
}

func (h *toolHandler) handleWeightedCompatibility(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	known := h.engine.Typologies()
	typesA, err := schema.ParseTypeAssignments(request.GetString("types_a", ""), known)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid types_a: %v", err)), nil
	}
	typesB, err := schema.ParseTypeAssignments(request.GetString("types_b", ""), known)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid types_b: %v", err)), nil
	}

	result, err := h.engine.WeightedCompatibility(typesA, typesB, h.baseCfg.CustomWeights)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("compatibility failed: %v", err)), nil
	}
	return jsonResult(result)
}

func (h *toolHandler) handleRelationshipMatrix(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	m, err := h.engine.Matrix(ctx, h.typologyArg(request))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("matrix failed: %v", err)), nil
	}
	return jsonResult(m)
}
