// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/typomatch/core"
	"github.com/huangsam/typomatch/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the typomatch MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, engine *core.Engine, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"Typomatch Relationship Server",
		version,
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		engine:  engine,
	}

	// --- 1. Tool: calculate_relationship ---
	s.AddTool(mcp.NewTool("calculate_relationship",
		mcp.WithDescription("Classify the relationship between two personality types under one typology and return its comfort score."),
		mcp.WithString("typology", mcp.Description("Typology name (Temporistics, Psychosophia, Amatoric, Socionics, IQ, Temperament)."), mcp.Required()),
		mcp.WithString("type_a", mcp.Description("First type, e.g. 'Past, Current, Future, Eternity' or 'ILE'."), mcp.Required()),
		mcp.WithString("type_b", mcp.Description("Second type."), mcp.Required()),
	), h.handleCalculateRelationship)

	// --- 2. Tool: list_types ---
	s.AddTool(mcp.NewTool("list_types",
		mcp.WithDescription("List the canonical types of a typology, or of every registered typology."),
		mcp.WithString("typology", mcp.Description("Typology name. Omit to list every typology.")),
	), h.handleListTypes)

	// --- 3. Tool: weighted_compatibility ---
	s.AddTool(mcp.NewTool("weighted_compatibility",
		mcp.WithDescription("Blend per-typology comfort scores of two people into one weighted compatibility score."),
		mcp.WithString("types_a", mcp.Description("Types of the first person as 'Typology=Type;Typology=Type'."), mcp.Required()),
		mcp.WithString("types_b", mcp.Description("Types of the second person in the same form."), mcp.Required()),
	), h.handleWeightedCompatibility)

	// --- 4. Tool: relationship_matrix ---
	s.AddTool(mcp.NewTool("relationship_matrix",
		mcp.WithDescription("Classify every ordered pair of types of one typology."),
		mcp.WithString("typology", mcp.Description("Typology name."), mcp.Required()),
	), h.handleRelationshipMatrix)

	return s
}

// StartMCPServer serves the tools over stdio until the client disconnects.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, engine *core.Engine, version string) error {
	s := NewMCPServer(baseCfg, engine, version)
	return server.ServeStdio(s)
}
