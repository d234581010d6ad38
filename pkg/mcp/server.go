package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/entrhq/obsidian-mcp/pkg/tools"
)

// Logger is the minimal logging interface the server needs.
type Logger interface {
	Debugf(format string, v ...interface{})
	Infof(format string, v ...interface{})
	Errorf(format string, v ...interface{})
}

// Server dispatches JSON-RPC requests onto a registered tool set. It is
// transport-agnostic; stdio and HTTP transports both feed Handle.
type Server struct {
	mu     sync.RWMutex
	tools  map[string]tools.Tool
	order  []string
	logger Logger
}

// NewServer creates a server with no tools registered.
func NewServer(logger Logger) *Server {
	return &Server{
		tools:  make(map[string]tools.Tool),
		logger: logger,
	}
}

// Register adds tools to the server's catalog. Registering a name twice
// replaces the earlier tool.
func (s *Server) Register(toolset ...tools.Tool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, tool := range toolset {
		name := tool.Name()
		if _, exists := s.tools[name]; !exists {
			s.order = append(s.order, name)
		}
		s.tools[name] = tool
	}
}

// Handle processes one request and returns the response, or nil for
// notifications.
func (s *Server) Handle(ctx context.Context, req *Request) *Response {
	if req.Method == "" || req.JSONRPC != "2.0" {
		return errorResponse(req.ID, codeInvalidRequest, "invalid request")
	}

	var (
		result any
		err    *ResponseError
	)
	switch req.Method {
	case "initialize":
		result = s.handleInitialize()
	case "ping":
		result = map[string]any{}
	case "tools/list":
		result = s.handleToolsList()
	case "tools/call":
		result, err = s.handleToolsCall(ctx, req.Params)
	default:
		err = &ResponseError{Code: codeMethodNotFound, Message: fmt.Sprintf("method not found: %s", req.Method)}
	}

	// Notifications get no response regardless of outcome.
	if len(req.ID) == 0 {
		return nil
	}
	if err != nil {
		return &Response{JSONRPC: "2.0", ID: req.ID, Error: err}
	}
	return &Response{JSONRPC: "2.0", ID: req.ID, Result: result}
}

func (s *Server) handleInitialize() any {
	return map[string]any{
		"protocolVersion": protocolVersion,
		"capabilities": map[string]any{
			"tools": map[string]any{},
		},
		"serverInfo": map[string]any{
			"name":    serverName,
			"version": serverVersion,
		},
		"instructions": "Use these tools to interact with your Obsidian vault. " +
			"The vault is the root directory of your Obsidian notes.",
	}
}

func (s *Server) handleToolsList() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	descriptors := make([]ToolDescriptor, 0, len(s.order))
	for _, name := range s.order {
		tool := s.tools[name]
		descriptors = append(descriptors, ToolDescriptor{
			Name:        tool.Name(),
			Description: tool.Description(),
			InputSchema: tool.Schema(),
		})
	}
	return map[string]any{"tools": descriptors}
}

func (s *Server) handleToolsCall(ctx context.Context, params json.RawMessage) (any, *ResponseError) {
	var call CallToolParams
	if err := json.Unmarshal(params, &call); err != nil {
		return nil, &ResponseError{Code: codeInvalidParams, Message: fmt.Sprintf("invalid params: %v", err)}
	}
	if call.Name == "" {
		return nil, &ResponseError{Code: codeInvalidParams, Message: "tool name is required"}
	}

	s.mu.RLock()
	tool, exists := s.tools[call.Name]
	s.mu.RUnlock()
	if !exists {
		return nil, &ResponseError{Code: codeInvalidParams, Message: fmt.Sprintf("unknown tool: %s", call.Name)}
	}

	if s.logger != nil {
		s.logger.Debugf("calling tool %s", call.Name)
	}

	result, meta, err := tool.Execute(ctx, call.Arguments)
	if err != nil {
		if s.logger != nil {
			s.logger.Errorf("tool %s failed: %v", call.Name, err)
		}
		return newTextResult(err.Error(), true, nil), nil
	}
	return newTextResult(result, false, meta), nil
}

func errorResponse(id json.RawMessage, code int, message string) *Response {
	return &Response{
		JSONRPC: "2.0",
		ID:      id,
		Error:   &ResponseError{Code: code, Message: message},
	}
}
