package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/uidump/uidump/internal/inspect"
	"gopkg.in/yaml.v3"
)

// mcpServer wraps the MCP server with the parsed tree cache.
type mcpServer struct {
	cache *mcpTreeCache
	mcp   *mcpserver.MCPServer
}

// MCPConfig holds MCP server configuration.
type MCPConfig struct {
	Transport string
	Port      int
	CacheTTL  time.Duration
}

// newMCPServer creates and configures an MCP server with all uidump tools.
func newMCPServer(cfg MCPConfig) (*mcpServer, error) {
	s := &mcpServer{
		cache: newMCPTreeCache(cfg.CacheTTL),
	}

	s.mcp = mcpserver.NewMCPServer(
		"uidump",
		"1.0.0",
	)

	s.registerTools()
	return s, nil
}

// serve starts the MCP server with the configured transport.
func (s *mcpServer) serve(cfg MCPConfig) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *mcpServer) registerTools() {
	// dump
	s.mcp.AddTool(
		mcp.NewTool("dump",
			mcp.WithDescription("Render a control tree file as indented text with per-control properties"),
			mcp.WithString("path", mcp.Description("Path to the YAML or JSON tree file")),
			mcp.WithNumber("indent", mcp.Description("Spaces per indent level (default 2)")),
			mcp.WithNumber("max-depth", mcp.Description("Max recursion depth (default 10)")),
			mcp.WithBoolean("no-props", mcp.Description("Hide control properties")),
		),
		s.handleDump,
	)

	// export
	s.mcp.AddTool(
		mcp.NewTool("export",
			mcp.WithDescription("Export a control tree file as an ordered mapping with type, properties, and children keys"),
			mcp.WithString("path", mcp.Description("Path to the YAML or JSON tree file")),
			mcp.WithString("format", mcp.Description("Output format: json or yaml (default json)")),
			mcp.WithNumber("indent", mcp.Description("JSON indent width, -1 for compact (default 2)")),
			mcp.WithNumber("max-depth", mcp.Description("Max recursion depth (default 10)")),
		),
		s.handleExport,
	)

	// list
	s.mcp.AddTool(
		mcp.NewTool("list",
			mcp.WithDescription("List the controls of a tree file as a flat list with tree paths"),
			mcp.WithString("path", mcp.Description("Path to the YAML or JSON tree file")),
			mcp.WithString("type", mcp.Description("Comma-separated control types to include")),
			mcp.WithString("text", mcp.Description("Only include controls matching this text")),
			mcp.WithNumber("max-depth", mcp.Description("Max recursion depth (default 10)")),
		),
		s.handleList,
	)

	// diff
	s.mcp.AddTool(
		mcp.NewTool("diff",
			mcp.WithDescription("Compare two control tree files and report added, removed, and changed controls"),
			mcp.WithString("before", mcp.Description("Path to the earlier tree file")),
			mcp.WithString("after", mcp.Description("Path to the later tree file")),
			mcp.WithNumber("max-depth", mcp.Description("Max recursion depth (default 10)")),
		),
		s.handleDiff,
	)
}

func (s *mcpServer) handleDump(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	path := stringParam(params, "path", "")
	if path == "" {
		return mcp.NewToolResultError("path is required"), nil
	}

	root, err := s.cache.load(path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	res := inspect.Walk(root, inspect.Options{MaxDepth: inspect.Depth(intParam(params, "max-depth", inspect.DefaultMaxDepth))})
	text := inspect.Render(res, intParam(params, "indent", 2), !boolParam(params, "no-props", false))
	return mcp.NewToolResultText(text), nil
}

func (s *mcpServer) handleExport(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	path := stringParam(params, "path", "")
	if path == "" {
		return mcp.NewToolResultError("path is required"), nil
	}

	root, err := s.cache.load(path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	res := inspect.Walk(root, inspect.Options{MaxDepth: inspect.Depth(intParam(params, "max-depth", inspect.DefaultMaxDepth))})
	m := inspect.Mapping(res)

	var text string
	switch format := stringParam(params, "format", "json"); format {
	case "json":
		text, err = inspect.MappingJSON(m, intParam(params, "indent", 2))
	case "yaml":
		text, err = inspect.MappingYAML(m)
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unsupported format: %s (use json or yaml)", format)), nil
	}
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(text), nil
}

func (s *mcpServer) handleList(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	path := stringParam(params, "path", "")
	if path == "" {
		return mcp.NewToolResultError("path is required"), nil
	}

	root, err := s.cache.load(path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	res := inspect.Walk(root, inspect.Options{MaxDepth: inspect.Depth(intParam(params, "max-depth", inspect.DefaultMaxDepth))})
	controls := inspect.Flatten(res)
	if types := stringParam(params, "type", ""); types != "" {
		controls = inspect.FilterByType(controls, strings.Split(types, ","))
	}
	controls = inspect.FilterByText(controls, stringParam(params, "text", ""))

	b, err := yaml.Marshal(controls)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

func (s *mcpServer) handleDiff(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	before := stringParam(params, "before", "")
	after := stringParam(params, "after", "")
	if before == "" || after == "" {
		return mcp.NewToolResultError("before and after are required"), nil
	}

	prevRoot, err := s.cache.load(before)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	currRoot, err := s.cache.load(after)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	opts := inspect.Options{MaxDepth: inspect.Depth(intParam(params, "max-depth", inspect.DefaultMaxDepth))}
	diff := inspect.DiffTrees(
		inspect.Flatten(inspect.Walk(prevRoot, opts)),
		inspect.Flatten(inspect.Walk(currRoot, opts)),
	)

	b, err := yaml.Marshal(diff)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
