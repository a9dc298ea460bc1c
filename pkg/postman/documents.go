// Package postman assembles and validates the two output documents: the
// hierarchical collection (a folder tree of request items) and the flat
// key/value environment.
package postman

import (
	"encoding/json"

	"github.com/blackcoderx/postgen/pkg/compiler"
)

// SchemaURL pins the collection format version the output conforms to.
const SchemaURL = "https://schema.getpostman.com/json/collection/v2.1.0/collection.json"

// Collection is the root of the collection document.
type Collection struct {
	Info  Info    `json:"info"`
	Items []*Item `json:"item"`
}

// Info is the collection header.
type Info struct {
	Name   string `json:"name"`
	Schema string `json:"schema"`
}

// Item is a node of the collection tree: a folder when Request is nil,
// otherwise a request leaf. The two shapes marshal differently, so the union
// carries its own MarshalJSON.
type Item struct {
	Name     string
	Children []*Item
	Request  *Request
}

// IsFolder reports whether the item groups other items.
func (it *Item) IsFolder() bool {
	return it.Request == nil
}

// MarshalJSON emits `{name, item}` for folders and
// `{name, request, response: []}` for request leaves. Folders always carry an
// item array, even when empty.
func (it *Item) MarshalJSON() ([]byte, error) {
	if it.Request != nil {
		return json.Marshal(struct {
			Name     string        `json:"name"`
			Request  *Request      `json:"request"`
			Response []interface{} `json:"response"`
		}{it.Name, it.Request, []interface{}{}})
	}
	children := it.Children
	if children == nil {
		children = []*Item{}
	}
	return json.Marshal(struct {
		Name string  `json:"name"`
		Item []*Item `json:"item"`
	}{it.Name, children})
}

// Request is the request block of a leaf item.
type Request struct {
	Method string `json:"method"`
	Header []KV   `json:"header"`
	Body   *Body  `json:"body,omitempty"`
	URL    URL    `json:"url"`
	Auth   *Auth  `json:"auth,omitempty"`
}

// KV is a key/value pair with an optional description, used for headers,
// path variables and query parameters alike.
type KV struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
}

// URL is the structured request URL.
type URL struct {
	Raw      string   `json:"raw"`
	Host     []string `json:"host"`
	Path     []string `json:"path"`
	Variable []KV     `json:"variable,omitempty"`
	Query    []KV     `json:"query,omitempty"`
}

// Body is the request body envelope: annotated JSON text in raw mode, or a
// multipart field list in formdata mode.
type Body struct {
	Mode     string               `json:"mode"`
	Raw      string               `json:"raw,omitempty"`
	FormData []compiler.FormField `json:"formdata,omitempty"`
}

// Auth is the bearer-token auth block. Other schemes are out of scope.
type Auth struct {
	Type   string      `json:"type"`
	Bearer []AuthParam `json:"bearer,omitempty"`
}

// AuthParam is one entry of an auth block.
type AuthParam struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Type  string `json:"type"`
}

// BearerAuth builds the single supported auth shape: a bearer token read
// from an environment variable.
func BearerAuth(variable string) *Auth {
	return &Auth{
		Type: "bearer",
		Bearer: []AuthParam{
			{Key: "token", Value: "{{" + variable + "}}", Type: "string"},
		},
	}
}

// Environment is the flat key/value output document.
type Environment struct {
	Name   string     `json:"name"`
	Values []EnvValue `json:"values"`
}

// EnvValue is one environment entry. Entries are always enabled.
type EnvValue struct {
	Key     string `json:"key"`
	Value   string `json:"value"`
	Enabled bool   `json:"enabled"`
}

// EnvVar is an input environment pair in declaration order.
type EnvVar struct {
	Key   string `mapstructure:"key" yaml:"key"`
	Value string `mapstructure:"value" yaml:"value"`
}

// NewEnvironment maps the configured variables onto the environment
// document, one entry per input key, order preserved.
func NewEnvironment(name string, vars []EnvVar) *Environment {
	env := &Environment{Name: name, Values: make([]EnvValue, 0, len(vars))}
	for _, v := range vars {
		env.Values = append(env.Values, EnvValue{Key: v.Key, Value: v.Value, Enabled: true})
	}
	return env
}
