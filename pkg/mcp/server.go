package mcp

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"numinterp/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

type InterpretServer struct {
	interpretService *service.InterpretService
	logger           *zap.Logger
	handler          *mcp.StreamableHTTPHandler
}

type InterpretParams struct {
	Input     string `json:"input" jsonschema:"digit groups as spoken, separated by spaces, e.g. 210 123 45 67"`
	ValidOnly bool   `json:"valid_only,omitempty" jsonschema:"return only readings that look like phone numbers"`
}

func NewInterpretServer(interpretService *service.InterpretService, version string, logger *zap.Logger) *InterpretServer {
	server := &InterpretServer{
		interpretService: interpretService,
		logger:           logger,
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    "NumberInterpretation",
		Version: version,
	}, nil)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "interpretNumber",
		Description: "List every literal digit string a spoken number phrase could stand for (for example 'four eighty seven' transcribed as '487') and flag which readings are valid phone numbers",
	}, server.handleInterpret)

	server.handler = mcp.NewStreamableHTTPHandler(func(req *http.Request) *mcp.Server {
		return mcpServer
	}, nil)

	return server
}

// SetupHTTPRoutes mounts the streamable HTTP transport under path.
func (s *InterpretServer) SetupHTTPRoutes(router *gin.Engine, path string) {
	if path == "" {
		path = "/mcp"
	}
	router.Any(path, gin.WrapH(s.handler))
}

func (s *InterpretServer) handleInterpret(ctx context.Context, req *mcp.CallToolRequest, args InterpretParams) (*mcp.CallToolResult, any, error) {
	callID := uuid.NewString()
	s.logger.Info("Handling interpretNumber request",
		zap.String("call_id", callID),
		zap.String("input", args.Input),
		zap.Bool("valid_only", args.ValidOnly))

	result, err := s.interpretService.Interpret(ctx, args.Input)
	if err != nil {
		s.logger.Error("Failed to interpret input", zap.String("call_id", callID), zap.Error(err))
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf("Failed to interpret input: %v", err)}},
			IsError: true,
		}, nil, nil
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: FormatResult(result, args.ValidOnly)}},
	}, nil, nil
}

// FormatResult renders a result as one line per reading.
func FormatResult(result *service.InterpretResult, validOnly bool) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Input: %s\n", result.Input)
	fmt.Fprintf(&sb, "Readings: %d, valid phone numbers: %d\n", len(result.Interpretations), result.ValidCount)

	n := 0
	for _, in := range result.Interpretations {
		if validOnly && !in.Valid {
			continue
		}
		n++
		if in.Valid {
			fmt.Fprintf(&sb, "%d. %s [phone number: VALID %s]\n", n, in.Digits, in.E164)
		} else {
			fmt.Fprintf(&sb, "%d. %s [phone number: INVALID]\n", n, in.Digits)
		}
	}
	return sb.String()
}
