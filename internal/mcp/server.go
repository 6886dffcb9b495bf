// Package mcp exposes the time tracking services as Model Context Protocol
// tools over stdio.
package mcp

import (
	"context"
	"io"
	stdlog "log"

	"github.com/mark3labs/mcp-go/server"
	log "github.com/sirupsen/logrus"

	"github.com/xolan/timesheet/internal/service"
)

// ServerName is the name announced to MCP clients
const ServerName = "timesheet"

// New creates the MCP server with all tools registered
func New(services *service.Services, version string) *server.MCPServer {
	s := server.NewMCPServer(
		ServerName,
		version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(instructions),
	)

	t := &Tools{services: services}
	s.AddTool(logTimeTool(), t.LogTime)
	s.AddTool(checkHoursTool(), t.CheckHours)
	s.AddTool(weeklyReportTool(), t.WeeklyReport)
	s.AddTool(statusTool(), t.Status)

	log.Debugf("registered %d MCP tools", 4)
	return s
}

// Serve runs s on in/out until ctx is cancelled or the input is closed.
// Nothing but protocol messages may be written to out.
func Serve(ctx context.Context, s *server.MCPServer, in io.Reader, out io.Writer) error {
	stdio := server.NewStdioServer(s)
	errWriter := log.StandardLogger().WriterLevel(log.ErrorLevel)
	defer func() { _ = errWriter.Close() }()
	stdio.SetErrorLogger(stdlog.New(errWriter, "", 0))

	log.Infof("MCP server %s listening on stdio", ServerName)
	err := stdio.Listen(ctx, in, out)
	if err != nil && ctx.Err() == nil {
		return err
	}
	log.Info("MCP server stopped")
	return nil
}

const instructions = `Tracks working hours in weekly markdown files.

Use log_time right after finishing a piece of work ("2h on security review").
Use status for a quick look at the current week against commitments,
check_hours for today or the week with breakdowns, and weekly_report for a
formatted report of the current, last or a specific ISO week.

In multi-company setups pass the company name or abbreviation, or put it in
the task ("hm 2h review" or "2h review for hm").`
