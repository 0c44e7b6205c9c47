package gopoly

import (
	"encoding/json"
	"fmt"

	"golang.org/x/text/language"
)

// ============================================================
// Tool Interface
// ============================================================

// ToolRequest names a tool and its parameters. Expressions are passed as
// strings in the syntax accepted by Parse.
type ToolRequest struct {
	Tool   string                 `json:"tool"`
	Params map[string]interface{} `json:"params"`
}

type ToolResponse struct {
	Result interface{} `json:"result,omitempty"`
	String string      `json:"string,omitempty"`
	LaTeX  string      `json:"latex,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// ToolSpec describes one tool accepted by HandleToolCall.
type ToolSpec struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Required    []string          `json:"required"`
	Properties  map[string]string `json:"properties"`
}

// Tools lists every tool HandleToolCall understands, in a stable order.
func Tools() []ToolSpec {
	expr := map[string]string{"expr": "string", "locale": "string"}
	binary := map[string]string{"a": "string", "b": "string", "locale": "string"}
	byVar := map[string]string{"expr": "string", "var": "string", "locale": "string"}
	return []ToolSpec{
		{"simplify", "Parse an expression and return its canonical form", []string{"expr"}, expr},
		{"add", "Sum of two expressions a+b", []string{"a", "b"}, binary},
		{"subtract", "Difference of two expressions a-b", []string{"a", "b"}, binary},
		{"multiply", "Product of two expressions a*b", []string{"a", "b"}, binary},
		{"divide", "Rational expression a/b, reduced when exact", []string{"a", "b"}, binary},
		{"power", "Raise an expression to a non-negative integer n", []string{"expr", "n"},
			map[string]string{"expr": "string", "n": "integer", "locale": "string"}},
		{"reduce", "Single-pivot polynomial division, returns quotient and remainder", []string{"expr", "divisor"},
			map[string]string{"expr": "string", "divisor": "string", "locale": "string"}},
		{"mod", "Remainder of single-pivot polynomial division", []string{"expr", "divisor"},
			map[string]string{"expr": "string", "divisor": "string", "locale": "string"}},
		{"derivative", "First derivative by var", []string{"expr", "var"}, byVar},
		{"second_derivative", "Second derivative by var", []string{"expr", "var"}, byVar},
		{"substitute", "Replace var with value throughout expr", []string{"expr", "var", "value"},
			map[string]string{"expr": "string", "var": "string", "value": "string", "locale": "string"}},
		{"evaluate", "Numeric value for bindings {var: number}", []string{"expr", "bindings"},
			map[string]string{"expr": "string", "bindings": "object"}},
		{"variables", "Distinct indeterminates of expr", []string{"expr"}, map[string]string{"expr": "string"}},
	}
}

// MCPToolSpec returns the tool list as an MCP-style schema document.
func MCPToolSpec() string {
	tools := make([]map[string]interface{}, 0)
	for _, spec := range Tools() {
		properties := map[string]interface{}{}
		for k, typ := range spec.Properties {
			properties[k] = map[string]interface{}{"type": typ}
		}
		tools = append(tools, map[string]interface{}{
			"name":        spec.Name,
			"description": spec.Description,
			"inputSchema": map[string]interface{}{
				"type":       "object",
				"properties": properties,
				"required":   spec.Required,
			},
		})
	}
	b, _ := json.MarshalIndent(map[string]interface{}{"tools": tools}, "", "  ")
	return string(b)
}

// HandleToolCall runs one tool. Failures are reported in ToolResponse.Error.
func HandleToolCall(req ToolRequest) ToolResponse {
	getString := func(key string) (string, error) {
		v, ok := req.Params[key]
		if !ok {
			return "", fmt.Errorf("missing param: %s", key)
		}
		s, ok := v.(string)
		if !ok {
			return "", fmt.Errorf("param %s must be a string", key)
		}
		return s, nil
	}
	getExpr := func(key string) (Division, error) {
		s, err := getString(key)
		if err != nil {
			return Division{}, err
		}
		d, err := Parse(s)
		if err != nil {
			return Division{}, fmt.Errorf("param %s: %w", key, err)
		}
		return d, nil
	}
	getPolynomial := func(key string) (Polynomial, error) {
		d, err := getExpr(key)
		if err != nil {
			return Polynomial{}, err
		}
		p, ok := d.AsPolynomial()
		if !ok {
			return Polynomial{}, fmt.Errorf("param %s must be a polynomial", key)
		}
		return p, nil
	}
	getVar := func(key string) (Indeterminate, error) {
		s, err := getString(key)
		if err != nil {
			return Indeterminate{}, err
		}
		return ParseIndeterminate(s)
	}
	tag := language.Und
	if _, ok := req.Params["locale"]; ok {
		s, err := getString("locale")
		if err != nil {
			return errResp(err)
		}
		if tag, err = language.Parse(s); err != nil {
			return errResp(fmt.Errorf("param locale: %w", err))
		}
	}
	respond := func(d Division) ToolResponse {
		if p, ok := d.AsPolynomial(); ok {
			return ToolResponse{Result: p, String: p.Format(tag), LaTeX: p.LaTeX()}
		}
		return ToolResponse{Result: d, String: d.Format(tag), LaTeX: d.LaTeX()}
	}
	binary := func(op func(a, b Division) (Division, error)) ToolResponse {
		a, err := getExpr("a")
		if err != nil {
			return errResp(err)
		}
		b, err := getExpr("b")
		if err != nil {
			return errResp(err)
		}
		d, err := op(a, b)
		if err != nil {
			return errResp(err)
		}
		return respond(d)
	}

	switch req.Tool {
	case "simplify":
		d, err := getExpr("expr")
		if err != nil {
			return errResp(err)
		}
		return respond(d)

	case "add":
		return binary(func(a, b Division) (Division, error) { return a.Add(b), nil })
	case "subtract":
		return binary(func(a, b Division) (Division, error) { return a.Sub(b), nil })
	case "multiply":
		return binary(func(a, b Division) (Division, error) { return a.Mul(b), nil })
	case "divide":
		return binary(Division.Quo)

	case "power":
		d, err := getExpr("expr")
		if err != nil {
			return errResp(err)
		}
		n, ok := req.Params["n"].(float64)
		if !ok || n < 0 || n != float64(uint(n)) {
			return errResp(fmt.Errorf("param n must be a non-negative integer"))
		}
		if n > MaxExponent {
			return errResp(fmt.Errorf("param n exceeds %d", MaxExponent))
		}
		return respond(d.ToPower(uint(n)))

	case "reduce", "mod":
		p, err := getPolynomial("expr")
		if err != nil {
			return errResp(err)
		}
		divisor, err := getPolynomial("divisor")
		if err != nil {
			return errResp(err)
		}
		q, r, err := p.ReduceBy(divisor)
		if err != nil {
			return errResp(err)
		}
		if req.Tool == "mod" {
			return ToolResponse{Result: r, String: r.Format(tag), LaTeX: r.LaTeX()}
		}
		return ToolResponse{
			Result: map[string]interface{}{"quotient": q, "remainder": r},
			String: fmt.Sprintf("quotient=%s remainder=%s", q.Format(tag), r.Format(tag)),
		}

	case "derivative", "second_derivative":
		d, err := getExpr("expr")
		if err != nil {
			return errResp(err)
		}
		v, err := getVar("var")
		if err != nil {
			return errResp(err)
		}
		if req.Tool == "second_derivative" {
			return respond(d.SecondDerivativeBy(v))
		}
		return respond(d.DerivativeBy(v))

	case "substitute":
		d, err := getExpr("expr")
		if err != nil {
			return errResp(err)
		}
		v, err := getVar("var")
		if err != nil {
			return errResp(err)
		}
		value, err := getExpr("value")
		if err != nil {
			return errResp(err)
		}
		var result Division
		if p, ok := value.AsPolynomial(); ok {
			result, err = d.Composition(v, p)
		} else {
			result, err = d.CompositionDivision(v, value)
		}
		if err != nil {
			return errResp(err)
		}
		return respond(result)

	case "evaluate":
		d, err := getExpr("expr")
		if err != nil {
			return errResp(err)
		}
		raw, ok := req.Params["bindings"].(map[string]interface{})
		if !ok {
			return errResp(fmt.Errorf("param bindings must be an object"))
		}
		bindings := make(map[Indeterminate]float64, len(raw))
		for name, value := range raw {
			v, err := ParseIndeterminate(name)
			if err != nil {
				return errResp(err)
			}
			x, ok := value.(float64)
			if !ok {
				return errResp(fmt.Errorf("binding %s must be a number", name))
			}
			bindings[v] = x
		}
		x, err := d.Value(bindings)
		if err != nil {
			return errResp(err)
		}
		return ToolResponse{Result: x, String: formatInvariant(x)}

	case "variables":
		d, err := getExpr("expr")
		if err != nil {
			return errResp(err)
		}
		names := make([]string, 0)
		for _, v := range d.Variables() {
			names = append(names, v.String())
		}
		return ToolResponse{Result: names, String: fmt.Sprint(names)}

	case "spec":
		return ToolResponse{Result: Tools()}
	}
	return errResp(fmt.Errorf("unknown tool: %s", req.Tool))
}

func errResp(err error) ToolResponse { return ToolResponse{Error: err.Error()} }
