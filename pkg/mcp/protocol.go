// Package mcp implements the JSON-RPC tool-server framing the agent talks
// to: tool discovery and invocation over a stdio pipe or a local HTTP
// endpoint.
package mcp

import "encoding/json"

const (
	protocolVersion = "2024-11-05"
	serverName      = "obsidian-mcp"
	serverVersion   = "0.1.0"
)

// Request is an incoming JSON-RPC 2.0 request. A request without an ID is
// a notification and receives no response.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// Response is an outgoing JSON-RPC 2.0 response.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Result  any             `json:"result,omitempty"`
	Error   *ResponseError  `json:"error,omitempty"`
}

// ResponseError is a JSON-RPC error object. It is reserved for
// infrastructure failures (unknown method, unknown tool, malformed params);
// tool execution failures are reported in-band via CallToolResult.IsError.
type ResponseError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// JSON-RPC error codes.
const (
	codeParseError     = -32700
	codeInvalidRequest = -32600
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
	codeInternalError  = -32603
)

// ToolDescriptor is one entry in the tools/list result.
type ToolDescriptor struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

// CallToolParams are the params of a tools/call request.
type CallToolParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
}

// TextContent is a text block inside a tool result.
type TextContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// CallToolResult is the result of a tools/call request. IsError marks a
// tool execution failure whose message is carried in Content.
type CallToolResult struct {
	Content []TextContent  `json:"content"`
	IsError bool           `json:"isError,omitempty"`
	Meta    map[string]any `json:"_meta,omitempty"`
}

func newTextResult(text string, isError bool, meta map[string]any) *CallToolResult {
	return &CallToolResult{
		Content: []TextContent{{Type: "text", Text: text}},
		IsError: isError,
		Meta:    meta,
	}
}
