package tools

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ArgumentError reports a missing or malformed tool argument
type ArgumentError struct {
	Tool   string
	Arg    string
	Reason string
}

func (e *ArgumentError) Error() string {
	if e.Arg == "" {
		return fmt.Sprintf("invalid arguments for %s: %s", e.Tool, e.Reason)
	}
	return fmt.Sprintf("invalid argument %q for %s: %s", e.Arg, e.Tool, e.Reason)
}

// Args holds validated arguments keyed by param name
type Args struct {
	strs map[string]string
	ints map[string]int64
}

// String returns a validated string argument
func (a Args) String(name string) string {
	return a.strs[name]
}

// Int returns a validated integer argument
func (a Args) Int(name string) int64 {
	return a.ints[name]
}

// parseArgs validates raw against the descriptor's params. Unknown
// arguments are ignored.
func parseArgs(d Descriptor, raw json.RawMessage) (Args, error) {
	args := Args{
		strs: make(map[string]string),
		ints: make(map[string]int64),
	}

	values := map[string]any{}
	if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null")) {
		dec := json.NewDecoder(bytes.NewReader(trimmed))
		dec.UseNumber()
		if err := dec.Decode(&values); err != nil {
			return args, &ArgumentError{Tool: d.Name, Reason: "arguments must be a JSON object"}
		}
	}

	for _, p := range d.Params {
		v, ok := values[p.Name]
		if !ok || v == nil {
			return args, &ArgumentError{Tool: d.Name, Arg: p.Name, Reason: "is required"}
		}

		switch p.Type {
		case ParamString:
			s, err := stringValue(v)
			if err != nil {
				return args, &ArgumentError{Tool: d.Name, Arg: p.Name, Reason: err.Error()}
			}
			args.strs[p.Name] = s
		case ParamNumber:
			n, err := intValue(v)
			if err != nil {
				return args, &ArgumentError{Tool: d.Name, Arg: p.Name, Reason: err.Error()}
			}
			args.ints[p.Name] = n
		}
	}
	return args, nil
}

func stringValue(v any) (string, error) {
	switch val := v.(type) {
	case string:
		if strings.TrimSpace(val) == "" {
			return "", fmt.Errorf("must not be empty")
		}
		return val, nil
	case json.Number:
		return val.String(), nil
	default:
		return "", fmt.Errorf("must be a string")
	}
}

func intValue(v any) (int64, error) {
	var text string
	switch val := v.(type) {
	case json.Number:
		text = val.String()
	case string:
		text = strings.TrimSpace(val)
	default:
		return 0, fmt.Errorf("must be a number")
	}

	if n, err := strconv.ParseInt(text, 10, 64); err == nil {
		return n, nil
	}
	// 42.0 and 4.2e1 are integers too
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("must be a number")
	}
	if f != float64(int64(f)) {
		return 0, fmt.Errorf("must be an integer")
	}
	return int64(f), nil
}
