package pkgrouter

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// segmentKind describes how a single pattern segment matches a path segment.
type segmentKind int

const (
	segmentLiteral segmentKind = iota // exact string match
	segmentString                     // {name}: any non-empty segment
	segmentInt                        // {name:int}: decimal integer, >= 0
)

type segment struct {
	kind    segmentKind
	literal string // set for segmentLiteral
	param   string // set for segmentString and segmentInt
}

// Param is a single extracted path parameter.
type Param struct {
	Key   string
	Value string
}

// Params holds the path parameters extracted during route matching.
type Params []Param

// ByName returns the value of the first parameter with the given key,
// or the empty string when no such parameter exists.
func (ps Params) ByName(key string) string {
	for _, p := range ps {
		if p.Key == key {
			return p.Value
		}
	}
	return ""
}

// Route is one entry of a router's route table.
//
// A pattern is a sequence of /-separated segments. A segment is either a
// literal, a string parameter "{name}" matching any non-empty segment, or a
// typed parameter "{name:int}" matching a non-negative decimal integer that
// fits in an int64. A single trailing slash is insignificant: "/event/7" and
// "/event/7/" match the same route.
type Route struct {
	method  string
	pattern string
	name    string
	segs    []segment
	handler http.Handler
}

// Method returns the HTTP method the route is registered for.
func (rt *Route) Method() string { return rt.method }

// Pattern returns the pattern the route was registered with.
func (rt *Route) Pattern() string { return rt.pattern }

// Name returns the optional route name.
func (rt *Route) Name() string { return rt.name }

// Named sets the route name and returns the route, so registration reads
// router.GET(...).Named("event_detail").
func (rt *Route) Named(name string) *Route {
	rt.name = name
	return rt
}

func parsePattern(pattern string) ([]segment, error) {
	if pattern == "" || pattern[0] != '/' {
		return nil, fmt.Errorf("pattern %q must start with /", pattern)
	}

	trimmed := strings.Trim(pattern, "/")
	if trimmed == "" {
		return []segment{}, nil
	}

	parts := strings.Split(trimmed, "/")
	segs := make([]segment, 0, len(parts))

	for _, part := range parts {
		if part == "" {
			return nil, fmt.Errorf("pattern %q has an empty segment", pattern)
		}

		if !strings.HasPrefix(part, "{") {
			if strings.ContainsAny(part, "{}") {
				return nil, fmt.Errorf("pattern %q has a malformed segment %q", pattern, part)
			}
			segs = append(segs, segment{kind: segmentLiteral, literal: part})
			continue
		}

		if !strings.HasSuffix(part, "}") {
			return nil, fmt.Errorf("pattern %q has an unterminated parameter %q", pattern, part)
		}

		spec := part[1 : len(part)-1]
		name, typ, hasType := strings.Cut(spec, ":")
		if name == "" {
			return nil, fmt.Errorf("pattern %q has an unnamed parameter", pattern)
		}

		if !hasType {
			segs = append(segs, segment{kind: segmentString, param: name})
			continue
		}

		switch typ {
		case "int":
			segs = append(segs, segment{kind: segmentInt, param: name})
		default:
			return nil, fmt.Errorf("pattern %q uses unknown parameter type %q", pattern, typ)
		}
	}

	return segs, nil
}

// match reports whether path matches the route's pattern, returning the
// extracted parameters. A typed segment that fails to parse fails the match.
func (rt *Route) match(path string) (Params, bool) {
	trimmed := strings.Trim(path, "/")

	var parts []string
	if trimmed != "" {
		parts = strings.Split(trimmed, "/")
	}

	if len(parts) != len(rt.segs) {
		return nil, false
	}

	var params Params
	for i, seg := range rt.segs {
		part := parts[i]

		switch seg.kind {
		case segmentLiteral:
			if part != seg.literal {
				return nil, false
			}
		case segmentString:
			if part == "" {
				return nil, false
			}
			params = append(params, Param{Key: seg.param, Value: part})
		case segmentInt:
			if !isDecimal(part) {
				return nil, false
			}
			if _, err := strconv.ParseInt(part, 10, 64); err != nil {
				return nil, false
			}
			params = append(params, Param{Key: seg.param, Value: part})
		}
	}

	return params, true
}

func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
