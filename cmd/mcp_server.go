package cmd

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"gopkg.in/yaml.v3"

	"github.com/ktalbot/winq/internal/model"
	"github.com/ktalbot/winq/internal/platform"
	"github.com/ktalbot/winq/internal/snapshot"
)

// mcpServer wraps the MCP server with the snapshot builder and cache.
type mcpServer struct {
	builder   *snapshot.Builder
	cache     *mcpSnapshotCache
	builderMu sync.Mutex
	mcp       *mcpserver.MCPServer
}

// MCPConfig holds MCP server configuration.
type MCPConfig struct {
	Transport string
	Port      int
	CacheTTL  time.Duration
}

// newMCPServer creates and configures an MCP server with all winq tools.
func newMCPServer(cfg MCPConfig) (*mcpServer, error) {
	source, err := platform.NewSource()
	if err != nil {
		return nil, err
	}

	s := &mcpServer{
		builder: snapshot.NewBuilder(source),
		cache:   newMCPSnapshotCache(cfg.CacheTTL),
	}

	s.mcp = mcpserver.NewMCPServer(
		"winq",
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
	// list_windows
	s.mcp.AddTool(
		mcp.NewTool("list_windows",
			mcp.WithDescription("Capture a snapshot of the visible top-level windows and return the records matching the filter, sort, and selection arguments. Stages always run in that order."),
			mcp.WithNumber("pid", mcp.Description("Filter by owning process ID (exact)")),
			mcp.WithString("title", mcp.Description("Filter by title substring (case-insensitive)")),
			mcp.WithString("class", mcp.Description("Filter by class name substring")),
			mcp.WithString("process", mcp.Description("Filter by process name substring")),
			mcp.WithString("path", mcp.Description("Filter by process path substring")),
			mcp.WithNumber("sort-pid", mcp.Description("Sort by PID: 1 ascending, -1 descending")),
			mcp.WithNumber("sort-title", mcp.Description("Sort by title: 1 ascending, -1 descending")),
			mcp.WithString("sort-pos", mcp.Description("Sort by position: x1, y-1, or x1|y1")),
			mcp.WithString("select", mcp.Description("Select snapshot indices: all, '1,2,3', or '1-3'")),
		),
		s.handleListWindows,
	)

	// find_window
	s.mcp.AddTool(
		mcp.NewTool("find_window",
			mcp.WithDescription("Find windows whose title contains the given text"),
			mcp.WithString("title", mcp.Description("Title substring (case-insensitive)"), mcp.Required()),
		),
		s.handleFindWindow,
	)

	// get_window
	s.mcp.AddTool(
		mcp.NewTool("get_window",
			mcp.WithDescription("Return a single window by its snapshot index"),
			mcp.WithNumber("index", mcp.Description("1-based snapshot index"), mcp.Required()),
			mcp.WithBoolean("check", mcp.Description("Verify the window still exists")),
		),
		s.handleGetWindow,
	)
}

// currentSnapshot returns a fresh or cached snapshot, serializing builder use.
func (s *mcpServer) currentSnapshot() (*snapshot.Snapshot, error) {
	s.builderMu.Lock()
	defer s.builderMu.Unlock()
	return s.cache.snapshot(s.builder)
}

func (s *mcpServer) handleListWindows(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snap, err := s.currentSnapshot()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	criteria := model.FilterCriteria{
		PID:             uint32(req.GetInt("pid", 0)),
		TitleContains:   req.GetString("title", ""),
		ClassContains:   req.GetString("class", ""),
		ProcessContains: req.GetString("process", ""),
		PathContains:    req.GetString("path", ""),
	}

	var sortCriteria model.SortCriteria
	if sortCriteria.PID, err = model.ParseSortOrder(req.GetInt("sort-pid", 0)); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if sortCriteria.Title, err = model.ParseSortOrder(req.GetInt("sort-title", 0)); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if sortCriteria.Position, err = model.ParsePositionSort(req.GetString("sort-pos", "")); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var selection *model.Selection
	if selectStr := req.GetString("select", ""); selectStr != "" {
		sel, err := model.ParseSelection(selectStr)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		selection = &sel
	}

	return yamlToolResult(snap.Query(criteria, sortCriteria, selection))
}

func (s *mcpServer) handleFindWindow(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := req.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	snap, err := s.currentSnapshot()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return yamlToolResult(snap.Filter(model.FilterCriteria{TitleContains: title}))
}

func (s *mcpServer) handleGetWindow(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	index, err := req.RequireInt("index")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	snap, err := s.currentSnapshot()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	w, ok := snap.ByIndex(index)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("no window with index %d (snapshot has %d windows)", index, snap.Len())), nil
	}

	if req.GetBool("check", false) {
		s.builderMu.Lock()
		present := s.builder.StillPresent(w)
		s.builderMu.Unlock()
		if !present {
			return mcp.NewToolResultError(fmt.Sprintf("window 0x%x is no longer present", w.Handle)), nil
		}
	}

	return yamlToolResult(w)
}

// yamlToolResult marshals v to YAML for the tool response text.
func yamlToolResult(v interface{}) (*mcp.CallToolResult, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
