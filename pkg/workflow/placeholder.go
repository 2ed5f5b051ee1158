package workflow

import (
	"fmt"
	"regexp"
	"strings"
)

// placeholderRegex matches `{{ context.k }}` and `{{ outputs.step.path }}`
// with optional inner whitespace.
var placeholderRegex = regexp.MustCompile(`\{\{\s*((?:context|outputs)(?:\.[\w-]+)+)\s*\}\}`)

// RenderPayload resolves every placeholder in the payload against the
// workflow's context and outputs. The evaluator is pure: it never mutates
// its inputs and the same (context, outputs, payload) always yields the
// same result. An unresolved placeholder returns an ErrTemplate.
func RenderPayload(payload map[string]any, context, outputs map[string]any) (map[string]any, error) {
	if payload == nil {
		return map[string]any{}, nil
	}
	rendered, err := renderValue(payload, context, outputs)
	if err != nil {
		return nil, err
	}
	return rendered.(map[string]any), nil
}

// RenderString resolves placeholders inside a single string.
func RenderString(s string, context, outputs map[string]any) (string, error) {
	v, err := renderValue(s, context, outputs)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%v", v), nil
}

func renderValue(v any, context, outputs map[string]any) (any, error) {
	switch val := v.(type) {
	case string:
		return renderStringValue(val, context, outputs)
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, inner := range val {
			rendered, err := renderValue(inner, context, outputs)
			if err != nil {
				return nil, err
			}
			out[k] = rendered
		}
		return out, nil
	case []any:
		out := make([]any, len(val))
		for i, inner := range val {
			rendered, err := renderValue(inner, context, outputs)
			if err != nil {
				return nil, err
			}
			out[i] = rendered
		}
		return out, nil
	default:
		return v, nil
	}
}

// renderStringValue substitutes placeholders. A string that is exactly one
// placeholder resolves to the referenced value with its type preserved;
// placeholders embedded in longer text are stringified in place.
func renderStringValue(s string, context, outputs map[string]any) (any, error) {
	trimmed := strings.TrimSpace(s)
	if m := placeholderRegex.FindStringSubmatch(trimmed); m != nil && m[0] == trimmed {
		return resolvePath(m[1], context, outputs)
	}

	var resolveErr error
	result := placeholderRegex.ReplaceAllStringFunc(s, func(match string) string {
		path := placeholderRegex.FindStringSubmatch(match)[1]
		v, err := resolvePath(path, context, outputs)
		if err != nil {
			if resolveErr == nil {
				resolveErr = err
			}
			return match
		}
		return fmt.Sprintf("%v", v)
	})
	if resolveErr != nil {
		return nil, resolveErr
	}
	return result, nil
}

// resolvePath walks a dotted path rooted at context or outputs.
func resolvePath(path string, context, outputs map[string]any) (any, error) {
	parts := strings.Split(path, ".")

	var current any
	switch parts[0] {
	case "context":
		current = context
	case "outputs":
		current = outputs
	default:
		return nil, fmt.Errorf("%w: unknown placeholder root %q", ErrTemplate, parts[0])
	}

	for _, part := range parts[1:] {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: placeholder %q: %q is not an object", ErrTemplate, path, part)
		}
		current, ok = m[part]
		if !ok {
			return nil, fmt.Errorf("%w: unresolved placeholder %q", ErrTemplate, path)
		}
	}
	return current, nil
}
