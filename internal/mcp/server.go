// Package mcp provides the stdio MCP server exposing the preset store as tools,
// so agents and editor integrations can manage ramp presets without a host UI.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/go-ports/rampage/internal/buildinfo"
	"github.com/go-ports/rampage/internal/preset"
	"github.com/go-ports/rampage/internal/ramp"
)

var validKinds = []string{string(ramp.Color), string(ramp.Float)}

const rampDescription = `Host-native ramp value, stored verbatim. Usually {"basis": [...], "keys": [...], "values": [...]} ` +
	`with one entry per control point; values are numbers for float ramps and [r, g, b] triples for color ramps.`

// NewServer creates and registers all preset tools on a new MCP server.
// It is separate from Serve so that tests can obtain a configured server
// without committing to the stdio transport.
func NewServer(store *preset.Store) *mcpserver.MCPServer {
	s := mcpserver.NewMCPServer("rampage", buildinfo.Version)
	registerTools(s, store)
	return s
}

// Serve runs the stdio MCP server until stdin closes.
func Serve(_ context.Context, store *preset.Store) error {
	return mcpserver.ServeStdio(NewServer(store))
}

func kindParam() mcp.ToolOption {
	return mcp.WithString("kind",
		mcp.Description("Ramp kind: color or float."),
		mcp.Required(),
		mcp.Enum(validKinds...),
	)
}

func nameParam(desc string) mcp.ToolOption {
	return mcp.WithString("name", mcp.Description(desc), mcp.Required())
}

func rampParam() mcp.ToolOption {
	return mcp.WithObject("ramp", mcp.Description(rampDescription), mcp.Required())
}

// registerTools wires the preset tools into the server.
func registerTools(s *mcpserver.MCPServer, store *preset.Store) {
	s.AddTool(mcp.NewTool("preset_list",
		mcp.WithDescription("List saved ramp presets of one kind in menu order."),
		kindParam(),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleList(ctx, store, req)
	})

	s.AddTool(mcp.NewTool("preset_get",
		mcp.WithDescription("Return the ramp value saved under a preset name."),
		kindParam(),
		nameParam("Preset name (case-sensitive)."),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGet(ctx, store, req)
	})

	s.AddTool(mcp.NewTool("preset_add",
		mcp.WithDescription("Save a new ramp preset. Fails if the name is already used for this kind."),
		kindParam(),
		nameParam("Name for the new preset."),
		rampParam(),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleAdd(ctx, store, req)
	})

	s.AddTool(mcp.NewTool("preset_replace",
		mcp.WithDescription("Overwrite the ramp of an existing preset, keeping its name and position."),
		kindParam(),
		nameParam("Name of the preset to overwrite."),
		rampParam(),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleReplace(ctx, store, req)
	})

	s.AddTool(mcp.NewTool("preset_remove",
		mcp.WithDescription("Delete a preset."),
		kindParam(),
		nameParam("Name of the preset to delete."),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleRemove(ctx, store, req)
	})

	s.AddTool(mcp.NewTool("preset_rename",
		mcp.WithDescription("Rename a preset in place."),
		kindParam(),
		nameParam("Current preset name."),
		mcp.WithString("new_name", mcp.Description("New preset name."), mcp.Required()),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleRename(ctx, store, req)
	})
}

// ---------------------------------------------------------------------------
// Tool handlers
// ---------------------------------------------------------------------------

func handleList(_ context.Context, store *preset.Store, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	kind, err := ramp.ParseKind(req.GetString("kind", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	names, err := store.List(kind)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(map[string]any{
		"kind":    kind,
		"total":   len(names),
		"presets": names,
	})
}

func handleGet(_ context.Context, store *preset.Store, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	kind, err := ramp.ParseKind(req.GetString("kind", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	name := req.GetString("name", "")
	r, err := store.Get(kind, name)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(preset.Preset{Name: name, Ramp: r})
}

func handleAdd(_ context.Context, store *preset.Store, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	kind, name, r, err := presetArgs(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := store.Add(kind, name, r); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return actionResult("added", kind, name)
}

func handleReplace(_ context.Context, store *preset.Store, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	kind, name, r, err := presetArgs(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := store.Replace(kind, name, r); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return actionResult("replaced", kind, name)
}

func handleRemove(_ context.Context, store *preset.Store, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	kind, err := ramp.ParseKind(req.GetString("kind", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	name := req.GetString("name", "")
	if err := store.Remove(kind, name); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return actionResult("removed", kind, name)
}

func handleRename(_ context.Context, store *preset.Store, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	kind, err := ramp.ParseKind(req.GetString("kind", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	newName := req.GetString("new_name", "")
	if err := store.Rename(kind, req.GetString("name", ""), newName); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return actionResult("renamed", kind, newName)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// presetArgs extracts kind, name and ramp arguments.
func presetArgs(req mcp.CallToolRequest) (ramp.Kind, string, ramp.Ramp, error) {
	kind, err := ramp.ParseKind(req.GetString("kind", ""))
	if err != nil {
		return "", "", ramp.Ramp{}, err
	}
	r, err := rampArg(req.GetArguments()["ramp"])
	if err != nil {
		return "", "", ramp.Ramp{}, err
	}
	return kind, req.GetString("name", ""), r, nil
}

// rampArg converts a tool argument into a Ramp. A string argument is parsed
// as JSON text so clients that stringify objects still work.
func rampArg(v any) (ramp.Ramp, error) {
	if v == nil {
		return ramp.Ramp{}, errors.New("ramp is required")
	}
	if s, ok := v.(string); ok {
		r, err := ramp.FromJSON([]byte(s))
		if err != nil {
			return ramp.Ramp{}, fmt.Errorf("ramp: %w", err)
		}
		return r, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return ramp.Ramp{}, fmt.Errorf("ramp: %w", err)
	}
	return ramp.FromJSON(b)
}

func actionResult(action string, kind ramp.Kind, name string) (*mcp.CallToolResult, error) {
	return jsonResult(map[string]any{
		"action": action,
		"kind":   kind,
		"name":   name,
	})
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
