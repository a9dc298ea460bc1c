package rules

import "strings"

// BodyMode selects how a request body is represented in the collection.
type BodyMode string

const (
	BodyJSON      BodyMode = "json"
	BodyMultipart BodyMode = "multipart"
)

// Route is one endpoint descriptor as written in a route file: a path
// template, an HTTP method, and rule trees for path params, query params and
// the request body.
type Route struct {
	Path       string   `yaml:"path"`
	Method     string   `yaml:"method"`
	Params     *Schema  `yaml:"params,omitempty"`
	ParamOrder []string `yaml:"paramOrder,omitempty"`
	Query      *Schema  `yaml:"query,omitempty"`
	Body       *Node    `yaml:"body,omitempty"`
	BodyMode   BodyMode `yaml:"bodyMode,omitempty"`
	Auth       *bool    `yaml:"auth,omitempty"`
}

// RouteFile is one YAML document in the routes directory.
type RouteFile struct {
	Name   string  `yaml:"name,omitempty"`
	Routes []Route `yaml:"routes"`
}

// ParamNames returns the path-parameter order for variable emission: the
// explicit paramOrder when given, otherwise the params declaration order.
func (r Route) ParamNames() []string {
	if len(r.ParamOrder) > 0 {
		return r.ParamOrder
	}
	if r.Params == nil {
		return nil
	}
	names := make([]string, 0, len(r.Params.Fields))
	for _, f := range r.Params.Fields {
		names = append(names, f.Name)
	}
	return names
}

// NormalMethod returns the upper-cased HTTP method, defaulting to GET.
func (r Route) NormalMethod() string {
	if r.Method == "" {
		return "GET"
	}
	return strings.ToUpper(r.Method)
}

// WantsAuth reports whether the request item should carry an auth block.
// Routes opt in by default.
func (r Route) WantsAuth() bool {
	return r.Auth == nil || *r.Auth
}

// Mode returns the effective body encoding, defaulting to JSON.
func (r Route) Mode() BodyMode {
	if r.BodyMode == "" {
		return BodyJSON
	}
	return r.BodyMode
}
