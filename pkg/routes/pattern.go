package routes

import (
	"fmt"
	"net/url"
	"strings"
)

type segment struct {
	literal string
	param   string
}

type pattern struct {
	route    Route
	segments []segment
}

func compilePattern(r Route) (pattern, error) {
	p := r.Pattern
	if !strings.HasPrefix(p, "/") {
		return pattern{}, fmt.Errorf("%w: %q must start with /", ErrInvalidPattern, p)
	}

	parts := splitSegments(p)
	segments := make([]segment, 0, len(parts))
	seen := make(map[string]bool, len(parts))

	for _, part := range parts {
		if part == "" {
			return pattern{}, fmt.Errorf("%w: %q contains an empty segment", ErrInvalidPattern, p)
		}

		name, ok := strings.CutPrefix(part, ":")
		if !ok {
			segments = append(segments, segment{literal: part})
			continue
		}

		if !validParamName(name) {
			return pattern{}, fmt.Errorf("%w: %q has invalid parameter name %q", ErrInvalidPattern, p, name)
		}
		if seen[name] {
			return pattern{}, fmt.Errorf("%w: %q repeats parameter %q", ErrInvalidPattern, p, name)
		}
		seen[name] = true
		segments = append(segments, segment{param: name})
	}

	return pattern{route: r, segments: segments}, nil
}

// match reports whether the escaped path segments satisfy the pattern and
// returns the decoded parameters on success.
func (p pattern) match(parts []string) (Params, bool) {
	if len(parts) != len(p.segments) {
		return nil, false
	}

	params := make(Params, len(p.segments))
	for i, seg := range p.segments {
		value, err := url.PathUnescape(parts[i])
		if err != nil || value == "" {
			return nil, false
		}

		if seg.param == "" {
			if value != seg.literal {
				return nil, false
			}
			continue
		}
		params[seg.param] = value
	}

	return params, true
}

// shadows reports whether every path matched by other is also matched by p.
func (p pattern) shadows(other pattern) bool {
	if len(p.segments) != len(other.segments) {
		return false
	}
	for i, seg := range p.segments {
		if seg.param != "" {
			continue
		}
		o := other.segments[i]
		if o.param != "" || o.literal != seg.literal {
			return false
		}
	}
	return true
}

func (p pattern) build(params Params) (string, error) {
	if len(p.segments) == 0 {
		return "/", nil
	}

	var b strings.Builder
	for _, seg := range p.segments {
		b.WriteByte('/')
		if seg.param == "" {
			b.WriteString(seg.literal)
			continue
		}
		v := params[seg.param]
		if v == "" {
			return "", fmt.Errorf("%w: %s for %s", ErrMissingParam, seg.param, p.route.Pattern)
		}
		b.WriteString(url.PathEscape(v))
	}
	return b.String(), nil
}

// splitSegments splits a path into its segments. The root path has none and
// a single trailing slash is ignored.
func splitSegments(path string) []string {
	path = strings.TrimPrefix(path, "/")
	if path == "" {
		return nil
	}
	path = strings.TrimSuffix(path, "/")
	if path == "" {
		return []string{""}
	}
	return strings.Split(path, "/")
}

func validParamName(name string) bool {
	if name == "" {
		return false
	}
	for i, c := range name {
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case i > 0 && c >= '0' && c <= '9':
		default:
			return false
		}
	}
	return true
}
