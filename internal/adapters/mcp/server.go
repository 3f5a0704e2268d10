package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/espalier"
	"github.com/aretw0/espalier/internal/presentation/graph"
	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/formschema"
	"github.com/aretw0/espalier/pkg/report"
	"github.com/aretw0/espalier/pkg/workflow"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Server exposes the review pipeline as MCP tools, so an assistant can
// inspect a design document mid-conversation and relay the findings.
type Server struct {
	reviewer  *espalier.Reviewer
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(reviewer *espalier.Reviewer) *Server {
	s := &Server{
		reviewer:  reviewer,
		mcpServer: server.NewMCPServer("espalier-mcp", espalier.Version),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	// TOOL: review_design
	s.mcpServer.AddTool(mcp.NewTool("review_design",
		mcp.WithDescription("Run the full design review (workflow validation + gap analysis) and return a chat-ready report."),
		mcp.WithString("design", mcp.Required(), mcp.Description("JSON design document (workflow, forms, steps)")),
		mcp.WithString("service_type", mcp.Description("Service type for extended analysis rules (optional)")),
	), s.handleReviewDesign)

	// TOOL: validate_workflow
	s.mcpServer.AddTool(mcp.NewTool("validate_workflow",
		mcp.WithDescription("Validate workflow structure only. Returns the issue list as JSON."),
		mcp.WithString("design", mcp.Required(), mcp.Description("JSON design document")),
	), s.handleValidateWorkflow)

	// TOOL: compile_forms
	s.mcpServer.AddTool(mcp.NewTool("compile_forms",
		mcp.WithDescription("Compile every form into JSON Schema, UI Schema and visibility rules."),
		mcp.WithString("design", mcp.Required(), mcp.Description("JSON design document")),
	), s.handleCompileForms)

	// TOOL: workflow_graph
	s.mcpServer.AddTool(mcp.NewTool("workflow_graph",
		mcp.WithDescription("Render the workflow as a Mermaid diagram, with validator findings highlighted."),
		mcp.WithString("design", mcp.Required(), mcp.Description("JSON design document")),
	), s.handleWorkflowGraph)
}

func (s *Server) handleReviewDesign(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	design, err := decodeDesign(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	reviewer := s.reviewer
	if serviceType := request.GetString("service_type", ""); serviceType != "" {
		reviewer = espalier.New(espalier.WithServiceType(serviceType))
	}

	result := reviewer.Review(design)
	text := report.Chat(result.Report, report.ChatOptions{})
	return mcp.NewToolResultText(text), nil
}

func (s *Server) handleValidateWorkflow(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	design, err := decodeDesign(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	issues := workflow.Validate(design.Workflow)
	jsonBytes, _ := json.Marshal(map[string]any{
		"issues":    issues,
		"hasErrors": workflow.HasErrors(issues),
	})
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func (s *Server) handleCompileForms(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	design, err := decodeDesign(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	artifacts := formschema.CompileAll(design.Forms)
	jsonBytes, _ := json.Marshal(artifacts)
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func (s *Server) handleWorkflowGraph(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	design, err := decodeDesign(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	issues := workflow.Validate(design.Workflow)
	mermaid := graph.GenerateMermaid(design.Workflow, graph.OverlayFromIssues(issues))
	return mcp.NewToolResultText(mermaid), nil
}

func decodeDesign(request mcp.CallToolRequest) (domain.Design, error) {
	raw := request.GetString("design", "")
	if raw == "" {
		return domain.Design{}, fmt.Errorf("missing required argument: design")
	}

	var design domain.Design
	if err := json.Unmarshal([]byte(raw), &design); err != nil {
		return domain.Design{}, fmt.Errorf("invalid design JSON: %w", err)
	}
	return design, nil
}
