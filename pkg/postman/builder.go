package postman

import (
	"fmt"
	"io"
	"strings"

	"github.com/blackcoderx/postgen/pkg/compiler"
	"github.com/blackcoderx/postgen/pkg/rules"
)

// bodyMethods are the methods whose requests carry a body envelope.
var bodyMethods = map[string]bool{
	"POST":   true,
	"PUT":    true,
	"PATCH":  true,
	"DELETE": true,
}

// Builder drives the compilers over a set of routes and assembles the
// collection document. Compilation is a single synchronous pass; each route
// is processed to completion before the next begins.
type Builder struct {
	// Name becomes the collection's info.name.
	Name string
	// MaxFolders is the folder-grouping depth; 0 produces a flat item list.
	MaxFolders int
	// Comments enables inline `//` annotations in raw JSON bodies.
	Comments bool
	// AuthBuilder produces the auth block for a route, or nil for none.
	// Routes that opt out of auth are never passed to it.
	AuthBuilder func(rules.Route) *Auth
	// Trace receives per-route compile tracing when non-nil.
	Trace io.Writer
}

// Build compiles every route and inserts the resulting request items into a
// shared folder tree keyed by each route's path prefix.
func (b *Builder) Build(routes []rules.Route) *Collection {
	col := &Collection{
		Info:  Info{Name: b.Name, Schema: SchemaURL},
		Items: []*Item{},
	}
	for _, rt := range routes {
		loc, item := b.buildItem(rt)
		if b.Trace != nil {
			fmt.Fprintf(b.Trace, "compile %s %s -> folders %v\n", rt.NormalMethod(), rt.Path, loc.Folders)
		}
		Insert(&col.Items, loc, item)
	}
	return col
}

// buildItem compiles one route into a request leaf plus its tree location.
func (b *Builder) buildItem(rt rules.Route) (compiler.Location, *Item) {
	params := make(map[string]*rules.Node)
	if rt.Params != nil {
		for _, f := range rt.Params.Fields {
			params[f.Name] = f.Rule
		}
	}
	loc := compiler.ParseLocation(rt.Path, params, rt.ParamNames(), b.MaxFolders)
	method := rt.NormalMethod()

	req := &Request{
		Method: method,
		Header: []KV{},
		URL: URL{
			Raw:      loc.RawURL,
			Host:     []string{compiler.HostVariable},
			Path:     loc.Path,
			Variable: variableKVs(loc.Variables),
			Query:    queryKVs(compiler.CompileQuery(rt.Query)),
		},
	}

	if rt.Body != nil && bodyMethods[method] {
		req.Body = b.buildBody(rt)
		if req.Body != nil && req.Body.Mode == "raw" {
			req.Header = append(req.Header, KV{Key: "Content-Type", Value: "application/json"})
		}
	}

	if rt.WantsAuth() && b.AuthBuilder != nil {
		req.Auth = b.AuthBuilder(rt)
	}

	name := method + " /" + strings.Join(loc.Path, "/")
	return loc, &Item{Name: name, Request: req}
}

// buildBody picks the body representation from the route's declared
// encoding: a multipart field list, or annotated JSON text.
func (b *Builder) buildBody(rt rules.Route) *Body {
	if rt.Mode() == rules.BodyMultipart {
		rep := rt.Body.Representative()
		if rep == nil {
			return nil
		}
		return &Body{Mode: "formdata", FormData: compiler.CompileMultipart(rep.Schema)}
	}
	renderer := compiler.Renderer{Comments: b.Comments}
	return &Body{Mode: "raw", Raw: renderer.Render(compiler.Compile(rt.Body))}
}

func variableKVs(vars []compiler.Variable) []KV {
	if len(vars) == 0 {
		return nil
	}
	out := make([]KV, 0, len(vars))
	for _, v := range vars {
		out = append(out, KV{Key: v.Key, Value: v.Value, Description: v.Description})
	}
	return out
}

func queryKVs(params []compiler.QueryParam) []KV {
	if len(params) == 0 {
		return nil
	}
	out := make([]KV, 0, len(params))
	for _, p := range params {
		out = append(out, KV{Key: p.Key, Value: p.Value, Description: p.Description})
	}
	return out
}
