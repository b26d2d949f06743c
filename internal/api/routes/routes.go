// Package routes checks connection address patterns before the router is
// built, so a bad pattern fails startup instead of producing 404s at runtime.
package routes

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRoute is wrapped by every validation failure.
var ErrInvalidRoute = errors.New("invalid route")

// Route is a named address pattern in gin syntax, e.g. "/ws/chat/:peer_id".
type Route struct {
	Name    string
	Pattern string
}

// RouteError names the offending pattern.
type RouteError struct {
	Route  Route
	Other  *Route // set when the pattern overlaps another one
	Reason string
}

func (e *RouteError) Error() string {
	if e.Other != nil {
		return fmt.Sprintf("route %s %q overlaps route %s %q: %s",
			e.Route.Name, e.Route.Pattern, e.Other.Name, e.Other.Pattern, e.Reason)
	}
	return fmt.Sprintf("route %s %q: %s", e.Route.Name, e.Route.Pattern, e.Reason)
}

func (e *RouteError) Unwrap() error { return ErrInvalidRoute }

type segmentKind int

const (
	static segmentKind = iota
	param
	catchAll
)

type segment struct {
	kind  segmentKind
	value string // literal text or parameter name
}

// Pattern is a compiled route pattern.
type Pattern struct {
	raw      string
	segments []segment
}

// Params lists the parameter names of the pattern in order.
func (p Pattern) Params() []string {
	var names []string
	for _, s := range p.segments {
		if s.kind != static {
			names = append(names, s.value)
		}
	}
	return names
}

// Compile parses a pattern.
func Compile(pattern string) (Pattern, error) {
	if pattern == "" {
		return Pattern{}, errors.New("pattern is empty")
	}
	if !strings.HasPrefix(pattern, "/") {
		return Pattern{}, errors.New("pattern must start with /")
	}

	p := Pattern{raw: pattern}
	if pattern == "/" {
		return p, nil
	}

	parts := strings.Split(strings.TrimPrefix(pattern, "/"), "/")
	seen := make(map[string]bool)

	for i, part := range parts {
		switch {
		case part == "":
			if i == len(parts)-1 {
				return Pattern{}, errors.New("trailing slash is not allowed")
			}
			return Pattern{}, errors.New("empty path segment")

		case part[0] == ':' || part[0] == '*':
			name := part[1:]
			if !identifier(name) {
				return Pattern{}, fmt.Errorf("parameter %q must be a non-empty identifier", part)
			}
			if seen[name] {
				return Pattern{}, fmt.Errorf("parameter %q is declared twice", name)
			}
			seen[name] = true

			kind := param
			if part[0] == '*' {
				if i != len(parts)-1 {
					return Pattern{}, fmt.Errorf("catch-all %q must be the last segment", part)
				}
				kind = catchAll
			}
			p.segments = append(p.segments, segment{kind: kind, value: name})

		default:
			if strings.ContainsAny(part, ":*?# \t") {
				return Pattern{}, fmt.Errorf("segment %q contains a reserved character", part)
			}
			p.segments = append(p.segments, segment{kind: static, value: part})
		}
	}

	return p, nil
}

func identifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// Match reports whether path matches the pattern and returns its parameters.
func (p Pattern) Match(path string) (map[string]string, bool) {
	if !strings.HasPrefix(path, "/") {
		return nil, false
	}
	if len(p.segments) == 0 {
		return map[string]string{}, path == "/"
	}

	parts := strings.Split(strings.TrimPrefix(path, "/"), "/")
	params := make(map[string]string)

	for i, s := range p.segments {
		if s.kind == catchAll {
			params[s.value] = "/" + strings.Join(parts[i:], "/")
			return params, true
		}
		if i >= len(parts) || parts[i] == "" {
			return nil, false
		}
		switch s.kind {
		case static:
			if parts[i] != s.value {
				return nil, false
			}
		case param:
			params[s.value] = parts[i]
		}
	}

	if len(parts) != len(p.segments) {
		return nil, false
	}

	return params, true
}

// overlaps reports whether some path matches both patterns.
func overlaps(a, b Pattern) bool {
	for i := 0; ; i++ {
		aDone, bDone := i >= len(a.segments), i >= len(b.segments)
		switch {
		case aDone && bDone:
			return true
		case aDone || bDone:
			// a catch-all also matches an empty remainder
			return (!aDone && a.segments[i].kind == catchAll) || (!bDone && b.segments[i].kind == catchAll)
		}

		sa, sb := a.segments[i], b.segments[i]
		if sa.kind == catchAll || sb.kind == catchAll {
			return true
		}
		if sa.kind == static && sb.kind == static && sa.value != sb.value {
			return false
		}
	}
}

// Validate compiles every route and rejects duplicate names and overlapping
// patterns. The returned error is a *RouteError.
func Validate(routes []Route) error {
	compiled := make([]Pattern, len(routes))
	names := make(map[string]bool, len(routes))

	for i, r := range routes {
		if strings.TrimSpace(r.Name) == "" {
			return &RouteError{Route: r, Reason: "route name is empty"}
		}
		if names[r.Name] {
			return &RouteError{Route: r, Reason: "route name is declared twice"}
		}
		names[r.Name] = true

		p, err := Compile(r.Pattern)
		if err != nil {
			return &RouteError{Route: r, Reason: err.Error()}
		}
		compiled[i] = p
	}

	for i := range compiled {
		for j := i + 1; j < len(compiled); j++ {
			if overlaps(compiled[i], compiled[j]) {
				other := routes[j]
				return &RouteError{Route: routes[i], Other: &other, Reason: "ambiguous patterns"}
			}
		}
	}

	return nil
}
