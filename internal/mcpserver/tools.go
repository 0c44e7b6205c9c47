package mcpserver

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/njchilds90/gopoly"
)

// ExpressionInput carries a single expression.
type ExpressionInput struct {
	Expr   string `json:"expr" jsonschema:"expression such as 2x²+3xy-1 or (x+1)/(x-1)"`
	Locale string `json:"locale,omitempty" jsonschema:"BCP 47 locale for rendered numbers"`
}

// BinaryInput carries the two operands of an arithmetic tool.
type BinaryInput struct {
	A      string `json:"a" jsonschema:"left operand"`
	B      string `json:"b" jsonschema:"right operand"`
	Locale string `json:"locale,omitempty" jsonschema:"BCP 47 locale for rendered numbers"`
}

type PowerInput struct {
	Expr   string `json:"expr" jsonschema:"base expression"`
	N      uint   `json:"n" jsonschema:"non-negative integer exponent"`
	Locale string `json:"locale,omitempty" jsonschema:"BCP 47 locale for rendered numbers"`
}

type ReduceInput struct {
	Expr    string `json:"expr" jsonschema:"polynomial dividend"`
	Divisor string `json:"divisor" jsonschema:"polynomial divisor"`
	Locale  string `json:"locale,omitempty" jsonschema:"BCP 47 locale for rendered numbers"`
}

type DerivativeInput struct {
	Expr   string `json:"expr" jsonschema:"expression to differentiate"`
	Var    string `json:"var" jsonschema:"single-letter indeterminate"`
	Locale string `json:"locale,omitempty" jsonschema:"BCP 47 locale for rendered numbers"`
}

type SubstituteInput struct {
	Expr   string `json:"expr" jsonschema:"expression to substitute into"`
	Var    string `json:"var" jsonschema:"single-letter indeterminate to replace"`
	Value  string `json:"value" jsonschema:"replacement expression, may mention var itself"`
	Locale string `json:"locale,omitempty" jsonschema:"BCP 47 locale for rendered numbers"`
}

type EvaluateInput struct {
	Expr     string             `json:"expr" jsonschema:"expression to evaluate"`
	Bindings map[string]float64 `json:"bindings" jsonschema:"value for every indeterminate of expr"`
}

// ToolOutput is the structured result of every tool.
type ToolOutput struct {
	Result any    `json:"result,omitempty" jsonschema:"JSON form of the result"`
	Text   string `json:"text" jsonschema:"rendered result"`
	LaTeX  string `json:"latex,omitempty" jsonschema:"LaTeX form of the result"`
}

func registerTools(server *mcp.Server, locale string) error {
	for _, spec := range gopoly.Tools() {
		tool := &mcp.Tool{Name: spec.Name, Description: spec.Description}
		switch spec.Name {
		case "simplify", "variables":
			mcp.AddTool(server, tool, handler(spec.Name, locale, func(in ExpressionInput) map[string]any {
				return withLocale(map[string]any{"expr": in.Expr}, in.Locale)
			}))
		case "add", "subtract", "multiply", "divide":
			mcp.AddTool(server, tool, handler(spec.Name, locale, func(in BinaryInput) map[string]any {
				return withLocale(map[string]any{"a": in.A, "b": in.B}, in.Locale)
			}))
		case "power":
			mcp.AddTool(server, tool, handler(spec.Name, locale, func(in PowerInput) map[string]any {
				return withLocale(map[string]any{"expr": in.Expr, "n": float64(in.N)}, in.Locale)
			}))
		case "reduce", "mod":
			mcp.AddTool(server, tool, handler(spec.Name, locale, func(in ReduceInput) map[string]any {
				return withLocale(map[string]any{"expr": in.Expr, "divisor": in.Divisor}, in.Locale)
			}))
		case "derivative", "second_derivative":
			mcp.AddTool(server, tool, handler(spec.Name, locale, func(in DerivativeInput) map[string]any {
				return withLocale(map[string]any{"expr": in.Expr, "var": in.Var}, in.Locale)
			}))
		case "substitute":
			mcp.AddTool(server, tool, handler(spec.Name, locale, func(in SubstituteInput) map[string]any {
				return withLocale(map[string]any{"expr": in.Expr, "var": in.Var, "value": in.Value}, in.Locale)
			}))
		case "evaluate":
			mcp.AddTool(server, tool, handler(spec.Name, "", func(in EvaluateInput) map[string]any {
				bindings := make(map[string]any, len(in.Bindings))
				for k, v := range in.Bindings {
					bindings[k] = v
				}
				return map[string]any{"expr": in.Expr, "bindings": bindings}
			}))
		default:
			return fmt.Errorf("tool %q has no MCP binding", spec.Name)
		}
	}
	return nil
}

func withLocale(params map[string]any, locale string) map[string]any {
	if locale != "" {
		params["locale"] = locale
	}
	return params
}

// handler adapts a typed input to gopoly.HandleToolCall. Tool failures are
// returned as errors, which the SDK reports as tool errors.
func handler[In any](name, defaultLocale string, params func(In) map[string]any) mcp.ToolHandlerFor[In, ToolOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, in In) (*mcp.CallToolResult, ToolOutput, error) {
		p := params(in)
		if _, ok := p["locale"]; !ok && defaultLocale != "" && name != "variables" {
			p["locale"] = defaultLocale
		}
		resp := gopoly.HandleToolCall(gopoly.ToolRequest{Tool: name, Params: p})
		if resp.Error != "" {
			return nil, ToolOutput{}, errors.New(resp.Error)
		}
		return nil, ToolOutput{Result: resp.Result, Text: resp.String, LaTeX: resp.LaTeX}, nil
	}
}
