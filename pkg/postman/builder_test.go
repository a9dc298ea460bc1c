package postman

import (
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/blackcoderx/postgen/pkg/rules"
)

func mustRoutes(t *testing.T, src string) []rules.Route {
	t.Helper()
	var rf rules.RouteFile
	if err := yaml.Unmarshal([]byte(src), &rf); err != nil {
		t.Fatalf("failed to decode routes: %v", err)
	}
	return rf.Routes
}

func findLeaf(items []*Item) *Item {
	for _, it := range items {
		if !it.IsFolder() {
			return it
		}
		if found := findLeaf(it.Children); found != nil {
			return found
		}
	}
	return nil
}

func TestBuilder_RequestItem(t *testing.T) {
	routes := mustRoutes(t, `
routes:
  - path: /users/:id/orders
    method: get
    params:
      id: {type: number, integer: true}
    query:
      page: {type: number, integer: true}
`)
	b := &Builder{Name: "API", MaxFolders: 2, Comments: true}
	col := b.Build(routes)

	if col.Info.Name != "API" || col.Info.Schema != SchemaURL {
		t.Errorf("unexpected info %+v", col.Info)
	}

	item := findLeaf(col.Items)
	if item == nil {
		t.Fatal("no request leaf in tree")
	}
	if item.Name != "GET /users/:id/orders" {
		t.Errorf("unexpected item name %q", item.Name)
	}

	req := item.Request
	if req.Method != "GET" {
		t.Errorf("method should be upper-cased, got %q", req.Method)
	}
	if req.URL.Raw != "{{host}}/users/:id/orders" {
		t.Errorf("unexpected url %q", req.URL.Raw)
	}
	if len(req.URL.Variable) != 1 || req.URL.Variable[0].Key != "id" {
		t.Errorf("unexpected variables %+v", req.URL.Variable)
	}
	if len(req.URL.Query) != 1 || req.URL.Query[0].Value != "0" {
		t.Errorf("unexpected query %+v", req.URL.Query)
	}
	if req.Body != nil {
		t.Error("GET must not carry a body")
	}
}

func TestBuilder_RawBodyEnvelope(t *testing.T) {
	routes := mustRoutes(t, `
routes:
  - path: /users
    method: POST
    body:
      type: object
      schema:
        name: {type: string, values: [ann]}
`)
	col := (&Builder{Name: "API", MaxFolders: 2, Comments: true}).Build(routes)
	req := findLeaf(col.Items).Request

	if req.Body == nil || req.Body.Mode != "raw" {
		t.Fatalf("expected raw body, got %+v", req.Body)
	}
	if !strings.Contains(req.Body.Raw, `"name": "ann"`) {
		t.Errorf("unexpected raw body:\n%s", req.Body.Raw)
	}
	if len(req.Header) != 1 || req.Header[0].Key != "Content-Type" || req.Header[0].Value != "application/json" {
		t.Errorf("raw body requires a single JSON content-type header, got %+v", req.Header)
	}
}

func TestBuilder_MultipartEnvelope(t *testing.T) {
	routes := mustRoutes(t, `
routes:
  - path: /uploads
    method: POST
    bodyMode: multipart
    body:
      type: object
      schema:
        file: {type: object}
        label: {type: string}
`)
	col := (&Builder{Name: "API"}).Build(routes)
	req := findLeaf(col.Items).Request

	if req.Body == nil || req.Body.Mode != "formdata" {
		t.Fatalf("expected formdata body, got %+v", req.Body)
	}
	if len(req.Body.FormData) != 2 || req.Body.FormData[0].Type != "file" {
		t.Errorf("unexpected form fields %+v", req.Body.FormData)
	}
	if len(req.Header) != 0 {
		t.Errorf("formdata must not set a content-type header, got %+v", req.Header)
	}
}

func TestBuilder_BodyOnlyForWritingMethods(t *testing.T) {
	routes := mustRoutes(t, `
routes:
  - path: /search
    method: GET
    body: {type: object}
  - path: /users/:id
    method: DELETE
    body: {type: object}
`)
	col := (&Builder{Name: "API"}).Build(routes)

	var leaves []*Item
	var walk func([]*Item)
	walk = func(items []*Item) {
		for _, it := range items {
			if it.IsFolder() {
				walk(it.Children)
			} else {
				leaves = append(leaves, it)
			}
		}
	}
	walk(col.Items)

	for _, it := range leaves {
		switch it.Request.Method {
		case "GET":
			if it.Request.Body != nil {
				t.Error("GET must not carry a body envelope")
			}
		case "DELETE":
			if it.Request.Body == nil {
				t.Error("DELETE with a body rule should carry a body envelope")
			}
		}
	}
}

func TestBuilder_AuthBlock(t *testing.T) {
	routes := mustRoutes(t, `
routes:
  - path: /private
    method: GET
  - path: /public
    method: GET
    auth: false
`)
	b := &Builder{
		Name:        "API",
		MaxFolders:  1,
		AuthBuilder: func(rules.Route) *Auth { return BearerAuth("accessKey") },
	}
	col := b.Build(routes)

	private := col.Items[0].Children[0].Request
	if private.Auth == nil || private.Auth.Type != "bearer" {
		t.Fatalf("expected bearer auth, got %+v", private.Auth)
	}
	if private.Auth.Bearer[0].Value != "{{accessKey}}" {
		t.Errorf("unexpected token value %q", private.Auth.Bearer[0].Value)
	}

	public := col.Items[1].Children[0].Request
	if public.Auth != nil {
		t.Errorf("auth: false route must not carry auth, got %+v", public.Auth)
	}
}

func TestBuilder_FlatWithZeroFolders(t *testing.T) {
	routes := mustRoutes(t, `
routes:
  - {path: /a/b, method: GET}
  - {path: /c/d, method: GET}
`)
	col := (&Builder{Name: "API", MaxFolders: 0}).Build(routes)

	if len(col.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(col.Items))
	}
	for _, it := range col.Items {
		if it.IsFolder() {
			t.Errorf("expected flat request list, got folder %q", it.Name)
		}
	}
}

func TestItem_MarshalShapes(t *testing.T) {
	folder := &Item{Name: "users", Children: []*Item{}}
	data, err := json.Marshal(folder)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `{"name":"users","item":[]}` {
		t.Errorf("unexpected folder shape %s", data)
	}

	req := leaf("GET /ping")
	data, err = json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(data), `"response":[]`) {
		t.Errorf("request leaf must carry an empty response list, got %s", data)
	}
	if strings.Contains(string(data), `"item"`) {
		t.Errorf("request leaf must not carry an item list, got %s", data)
	}
}

func TestNewEnvironment_PreservesOrder(t *testing.T) {
	env := NewEnvironment("API", []EnvVar{
		{Key: "host", Value: "http://localhost"},
		{Key: "accessKey", Value: "secret"},
	})
	if env.Name != "API" || len(env.Values) != 2 {
		t.Fatalf("unexpected environment %+v", env)
	}
	if env.Values[0].Key != "host" || env.Values[1].Key != "accessKey" {
		t.Errorf("insertion order lost: %+v", env.Values)
	}
	for _, v := range env.Values {
		if !v.Enabled {
			t.Errorf("entry %q must be enabled", v.Key)
		}
	}
}
