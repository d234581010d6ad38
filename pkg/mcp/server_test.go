package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entrhq/obsidian-mcp/pkg/tools"
)

// echoTool returns its arguments verbatim, or fails when told to.
type echoTool struct {
	name string
}

func (t *echoTool) Name() string        { return t.name }
func (t *echoTool) Description() string { return "echoes its arguments" }
func (t *echoTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(map[string]interface{}{
		"text": map[string]interface{}{"type": "string"},
		"fail": map[string]interface{}{"type": "boolean"},
	}, nil)
}

func (t *echoTool) Execute(ctx context.Context, args json.RawMessage) (string, map[string]interface{}, error) {
	var input struct {
		Text string `json:"text"`
		Fail bool   `json:"fail"`
	}
	if err := tools.DecodeArgs(args, &input); err != nil {
		return "", nil, err
	}
	if input.Fail {
		return "", nil, fmt.Errorf("echo failed as requested")
	}
	return input.Text, map[string]interface{}{"length": len(input.Text)}, nil
}

func newTestServer() *Server {
	server := NewServer(nil)
	server.Register(&echoTool{name: "echo"}, &echoTool{name: "echo_two"})
	return server
}

func request(t *testing.T, method string, params any) *Request {
	t.Helper()
	req := &Request{JSONRPC: "2.0", ID: json.RawMessage(`1`), Method: method}
	if params != nil {
		data, err := json.Marshal(params)
		require.NoError(t, err)
		req.Params = data
	}
	return req
}

func TestInitialize(t *testing.T) {
	server := newTestServer()
	resp := server.Handle(context.Background(), request(t, "initialize", nil))

	require.NotNil(t, resp)
	require.Nil(t, resp.Error)
	result := resp.Result.(map[string]any)
	assert.Equal(t, protocolVersion, result["protocolVersion"])
	info := result["serverInfo"].(map[string]any)
	assert.Equal(t, serverName, info["name"])
}

func TestToolsList(t *testing.T) {
	server := newTestServer()
	resp := server.Handle(context.Background(), request(t, "tools/list", nil))

	require.NotNil(t, resp)
	require.Nil(t, resp.Error)
	result := resp.Result.(map[string]any)
	descriptors := result["tools"].([]ToolDescriptor)
	require.Len(t, descriptors, 2)
	// Registration order is preserved.
	assert.Equal(t, "echo", descriptors[0].Name)
	assert.Equal(t, "echo_two", descriptors[1].Name)
	assert.Equal(t, "object", descriptors[0].InputSchema["type"])
}

func TestToolsCall(t *testing.T) {
	server := newTestServer()
	resp := server.Handle(context.Background(), request(t, "tools/call", CallToolParams{
		Name:      "echo",
		Arguments: json.RawMessage(`{"text": "hello"}`),
	}))

	require.NotNil(t, resp)
	require.Nil(t, resp.Error)
	result := resp.Result.(*CallToolResult)
	require.Len(t, result.Content, 1)
	assert.Equal(t, "hello", result.Content[0].Text)
	assert.False(t, result.IsError)
	assert.Equal(t, 5, result.Meta["length"])
}

func TestToolsCallExecutionFailure(t *testing.T) {
	// Execution failures come back as results with isError, not JSON-RPC
	// errors.
	server := newTestServer()
	resp := server.Handle(context.Background(), request(t, "tools/call", CallToolParams{
		Name:      "echo",
		Arguments: json.RawMessage(`{"fail": true}`),
	}))

	require.NotNil(t, resp)
	require.Nil(t, resp.Error)
	result := resp.Result.(*CallToolResult)
	assert.True(t, result.IsError)
	assert.Contains(t, result.Content[0].Text, "echo failed")
}

func TestToolsCallUnknownTool(t *testing.T) {
	server := newTestServer()
	resp := server.Handle(context.Background(), request(t, "tools/call", CallToolParams{
		Name: "nope",
	}))

	require.NotNil(t, resp)
	require.NotNil(t, resp.Error)
	assert.Equal(t, codeInvalidParams, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "nope")
}

func TestMethodNotFound(t *testing.T) {
	server := newTestServer()
	resp := server.Handle(context.Background(), request(t, "resources/list", nil))

	require.NotNil(t, resp)
	require.NotNil(t, resp.Error)
	assert.Equal(t, codeMethodNotFound, resp.Error.Code)
}

func TestNotificationGetsNoResponse(t *testing.T) {
	server := newTestServer()
	resp := server.Handle(context.Background(), &Request{
		JSONRPC: "2.0",
		Method:  "notifications/initialized",
	})
	assert.Nil(t, resp)
}

func TestServeStdio(t *testing.T) {
	server := newTestServer()

	input := strings.Join([]string{
		`{"jsonrpc": "2.0", "id": 1, "method": "initialize"}`,
		`{"jsonrpc": "2.0", "method": "notifications/initialized"}`,
		`{"jsonrpc": "2.0", "id": 2, "method": "tools/call", "params": {"name": "echo", "arguments": {"text": "hi"}}}`,
		`not json`,
	}, "\n") + "\n"

	var out bytes.Buffer
	err := server.ServeStdio(context.Background(), strings.NewReader(input), &out)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	// initialize response, tools/call response, parse error. The
	// notification produces nothing.
	require.Len(t, lines, 3)

	var first Response
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, json.RawMessage(`1`), first.ID)

	var second struct {
		ID     json.RawMessage `json:"id"`
		Result CallToolResult  `json:"result"`
	}
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, "hi", second.Result.Content[0].Text)

	var third Response
	require.NoError(t, json.Unmarshal([]byte(lines[2]), &third))
	require.NotNil(t, third.Error)
	assert.Equal(t, codeParseError, third.Error.Code)
}
