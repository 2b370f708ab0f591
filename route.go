package apikit

import (
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/dmitrymomot/apikit/schema"
)

// Route binds an HTTP method and chi pattern to a handler through
// records. Request describes every input the handler reads; Patch, for
// partial updates, describes the body fields a client may send; Response
// projects the handler's instances before rendering; Status overrides
// the 200 default for responses that do not set their own.
//
// Exactly one of Handler and PatchHandler must be set, and PatchHandler
// requires Patch. Registration validates the route and panics on
// misdeclaration, so a broken route fails at startup rather than on
// first request.
type Route struct {
	Method  string
	Pattern string

	Request  *schema.Record
	Patch    *schema.Record
	Response *schema.Record

	Status int

	Handler      HandlerFunc
	PatchHandler PatchHandlerFunc
}

var knownMethods = map[string]bool{
	http.MethodGet:     true,
	http.MethodHead:    true,
	http.MethodPost:    true,
	http.MethodPut:     true,
	http.MethodPatch:   true,
	http.MethodDelete:  true,
	http.MethodOptions: true,
}

func (r Route) name() string {
	return r.Method + " " + r.Pattern
}

func (r Route) validate() {
	if !knownMethods[r.Method] {
		panic(fmt.Sprintf("apikit: route %q: unknown method", r.name()))
	}
	if !strings.HasPrefix(r.Pattern, "/") {
		panic(fmt.Sprintf("apikit: route %q: pattern must start with /", r.name()))
	}

	switch {
	case r.Handler == nil && r.PatchHandler == nil:
		panic(fmt.Sprintf("apikit: route %q: no handler", r.name()))
	case r.Handler != nil && r.PatchHandler != nil:
		panic(fmt.Sprintf("apikit: route %q: Handler and PatchHandler are mutually exclusive", r.name()))
	case r.PatchHandler != nil && r.Patch == nil:
		panic(fmt.Sprintf("apikit: route %q: PatchHandler requires a Patch record", r.name()))
	case r.Handler != nil && r.Patch != nil:
		panic(fmt.Sprintf("apikit: route %q: Patch record requires a PatchHandler", r.name()))
	}

	if r.Status != 0 && http.StatusText(r.Status) == "" {
		panic(fmt.Sprintf("apikit: route %q: unknown status code %d", r.name(), r.Status))
	}

	if r.Patch != nil {
		for _, f := range r.Patch.Fields() {
			if f.Source() != schema.SourceBody {
				panic(fmt.Sprintf("apikit: route %q: patch field %q must decode from the body", r.name(), f.Name()))
			}
		}
		if r.Request != nil && len(r.Request.SourceFields(schema.SourceBody)) > 0 {
			panic(fmt.Sprintf("apikit: route %q: the request record on a patch route must not declare body fields", r.name()))
		}
	}

	r.validatePathFields()
}

// validatePathFields checks that the pattern's placeholders and the
// request record's path fields name each other exactly.
func (r Route) validatePathFields() {
	placeholders := parsePlaceholders(r.Pattern)

	seen := make(map[string]bool, len(placeholders))
	for _, p := range placeholders {
		if seen[p] {
			panic(fmt.Sprintf("apikit: route %q: duplicate placeholder {%s}", r.name(), p))
		}
		seen[p] = true
	}

	var pathFields []string
	if r.Request != nil {
		pathFields = r.Request.SourceFields(schema.SourcePath)
	}

	for _, name := range pathFields {
		if !seen[name] {
			panic(fmt.Sprintf("apikit: route %q: path field %q has no {%s} placeholder", r.name(), name, name))
		}
	}
	for _, p := range placeholders {
		if !slices.Contains(pathFields, p) {
			panic(fmt.Sprintf("apikit: route %q: placeholder {%s} has no path field", r.name(), p))
		}
	}
}

// parsePlaceholders extracts placeholder names from a chi pattern,
// dropping any regex part: "/users/{id:[0-9]+}" yields ["id"]. Braces
// inside the regex are matched by depth, chi-style.
func parsePlaceholders(pattern string) []string {
	var names []string
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '{' {
			continue
		}
		depth := 1
		j := i + 1
		for ; j < len(pattern) && depth > 0; j++ {
			switch pattern[j] {
			case '{':
				depth++
			case '}':
				depth--
			}
		}
		if depth != 0 {
			panic(fmt.Sprintf("apikit: pattern %q: unclosed placeholder", pattern))
		}

		name := pattern[i+1 : j-1]
		if idx := strings.Index(name, ":"); idx >= 0 {
			name = name[:idx]
		}
		if name == "" {
			panic(fmt.Sprintf("apikit: pattern %q: empty placeholder name", pattern))
		}
		names = append(names, name)
		i = j - 1
	}
	return names
}
