package cmd

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"gopkg.in/yaml.v3"

	"github.com/keepactive/keepactive/internal/engine"
	"github.com/keepactive/keepactive/internal/model"
	"github.com/keepactive/keepactive/internal/platform"
)

// mcpServer wraps the MCP server with the platform provider and a shared
// engine controller.
type mcpServer struct {
	provider   *platform.Provider
	ctrl       *engine.Controller
	locator    *engine.Locator
	providerMu sync.Mutex
	mcp        *mcpserver.MCPServer
}

// MCPConfig holds MCP server configuration.
type MCPConfig struct {
	Transport string
	Port      int
	Interval  time.Duration
}

// ControlResult is the payload returned by engine-control tools.
type ControlResult struct {
	OK          bool     `yaml:"ok"`
	Action      string   `yaml:"action"`
	Running     bool     `yaml:"running"`
	Windows     []string `yaml:"windows,omitempty"`
	Executables []string `yaml:"executables,omitempty"`
	Error       string   `yaml:"error,omitempty"`
}

// newMCPServer creates and configures an MCP server with all keepactive tools.
func newMCPServer(cfg MCPConfig) (*mcpServer, error) {
	provider, err := platform.NewProvider()
	if err != nil {
		return nil, err
	}

	locator := engine.NewLocator(provider.Reader, logger)
	runner := &engine.GoroutineRunner{
		Interval:  cfg.Interval,
		Locator:   locator,
		Activator: provider.Activator,
		Log:       logger,
	}

	s := &mcpServer{
		provider: provider,
		ctrl:     engine.NewController(runner, logger),
		locator:  locator,
	}

	s.mcp = mcpserver.NewMCPServer(
		"keepactive",
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

// close tears down the controller so no worker outlives the server.
func (s *mcpServer) close() {
	s.ctrl.Close()
}

func (s *mcpServer) registerTools() {
	// list
	s.mcp.AddTool(
		mcp.NewTool("list",
			mcp.WithDescription("List visible top-level windows with title, PID, and executable name"),
			mcp.WithNumber("pid", mcp.Description("Filter windows by process ID")),
			mcp.WithBoolean("processes", mcp.Description("List running processes instead of windows")),
		),
		s.handleList,
	)

	// start
	s.mcp.AddTool(
		mcp.NewTool("start",
			mcp.WithDescription("Start the keep-alive loop for the given targets. Executable names take priority over window titles; titles are the fallback. Idempotent while running."),
			mcp.WithArray("windows", mcp.Description("Window titles to target (exact match)")),
			mcp.WithArray("executables", mcp.Description("Executable names to target (e.g. notepad.exe)")),
		),
		s.handleStart,
	)

	// stop
	s.mcp.AddTool(
		mcp.NewTool("stop",
			mcp.WithDescription("Stop the keep-alive loop. No-op when nothing is running."),
		),
		s.handleStop,
	)

	// status
	s.mcp.AddTool(
		mcp.NewTool("status",
			mcp.WithDescription("Report whether the keep-alive loop is currently running"),
		),
		s.handleStatus,
	)

	// activate
	s.mcp.AddTool(
		mcp.NewTool("activate",
			mcp.WithDescription("Resolve the targets once and send a single activation signal, without starting a loop"),
			mcp.WithArray("windows", mcp.Description("Window titles to target (exact match)")),
			mcp.WithArray("executables", mcp.Description("Executable names to target")),
		),
		s.handleActivate,
	)
}

// resultToText serializes a ControlResult to YAML for the MCP response.
func resultToText(result ControlResult) string {
	b, err := yaml.Marshal(result)
	if err != nil {
		return fmt.Sprintf("ok: %v\naction: %s\nerror: %s", result.OK, result.Action, result.Error)
	}
	return string(b)
}

func (s *mcpServer) handleList(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	if BoolParam(params, "processes", false) {
		procs, err := s.provider.Reader.ListProcesses()
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		b, _ := yaml.Marshal(procs)
		return mcp.NewToolResultText(string(b)), nil
	}

	var pid uint32
	if v, ok := params["pid"].(float64); ok {
		pid = uint32(v)
	}
	windows, err := s.provider.Reader.ListWindows(platform.ListOptions{
		PID:        pid,
		IncludeExe: true,
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if windows == nil {
		windows = []model.Window{}
	}
	b, _ := yaml.Marshal(windows)
	return mcp.NewToolResultText(string(b)), nil
}

func (s *mcpServer) handleStart(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	spec := engine.NewTargetSpec(
		StringListParam(params, "windows"),
		StringListParam(params, "executables"),
	)

	result := ControlResult{
		Action:      "start",
		Windows:     spec.WindowTitles,
		Executables: spec.ProcessNames,
	}
	if err := s.ctrl.Start(spec); err != nil {
		result.Error = err.Error()
		return mcp.NewToolResultError(resultToText(result)), nil
	}
	result.OK = true
	result.Running = true
	return mcp.NewToolResultText(resultToText(result)), nil
}

func (s *mcpServer) handleStop(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result := ControlResult{Action: "stop"}
	if err := s.ctrl.Stop(); err != nil {
		result.Error = err.Error()
		return mcp.NewToolResultError(resultToText(result)), nil
	}
	result.OK = true
	return mcp.NewToolResultText(resultToText(result)), nil
}

func (s *mcpServer) handleStatus(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result := ControlResult{
		OK:      true,
		Action:  "status",
		Running: s.ctrl.IsRunning(),
	}
	return mcp.NewToolResultText(resultToText(result)), nil
}

func (s *mcpServer) handleActivate(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	spec := engine.NewTargetSpec(
		StringListParam(params, "windows"),
		StringListParam(params, "executables"),
	)

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	result := ControlResult{
		Action:      "activate",
		Windows:     spec.WindowTitles,
		Executables: spec.ProcessNames,
	}
	win, ok := s.locator.Locate(spec)
	if !ok {
		result.Error = "no target window found"
		return mcp.NewToolResultError(resultToText(result)), nil
	}
	if err := s.provider.Activator.Activate(win); err != nil {
		result.Error = err.Error()
		return mcp.NewToolResultError(resultToText(result)), nil
	}
	result.OK = true
	return mcp.NewToolResultText(resultToText(result)), nil
}
