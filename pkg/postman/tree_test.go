package postman

import (
	"testing"

	"github.com/blackcoderx/postgen/pkg/compiler"
)

func leaf(name string) *Item {
	return &Item{Name: name, Request: &Request{Method: "GET"}}
}

func TestInsert_SharedPrefixCreatesOneFolderPair(t *testing.T) {
	var root []*Item
	loc := compiler.Location{Folders: []string{"users", ":id"}}

	Insert(&root, loc, leaf("GET /users/:id/orders"))
	Insert(&root, loc, leaf("GET /users/:id/invoices"))

	if len(root) != 1 {
		t.Fatalf("expected one top folder, got %d", len(root))
	}
	users := root[0]
	if !users.IsFolder() || users.Name != "users" || len(users.Children) != 1 {
		t.Fatalf("unexpected top folder %+v", users)
	}
	id := users.Children[0]
	if !id.IsFolder() || id.Name != ":id" {
		t.Fatalf("unexpected inner folder %+v", id)
	}
	if len(id.Children) != 2 {
		t.Errorf("expected both leaves in the shared folder, got %d", len(id.Children))
	}
	for _, child := range id.Children {
		if child.IsFolder() {
			t.Errorf("expected request leaves, got folder %q", child.Name)
		}
	}
}

func TestInsert_EmptyPrefixGoesToRoot(t *testing.T) {
	var root []*Item
	Insert(&root, compiler.Location{}, leaf("GET /health"))

	if len(root) != 1 || root[0].IsFolder() {
		t.Fatalf("expected one request at root, got %+v", root)
	}
}

func TestInsert_DistinctPrefixes(t *testing.T) {
	var root []*Item
	Insert(&root, compiler.Location{Folders: []string{"users"}}, leaf("a"))
	Insert(&root, compiler.Location{Folders: []string{"orders"}}, leaf("b"))
	Insert(&root, compiler.Location{Folders: []string{"users"}}, leaf("c"))

	if len(root) != 2 {
		t.Fatalf("expected 2 folders, got %d", len(root))
	}
	if root[0].Name != "users" || root[1].Name != "orders" {
		t.Errorf("folders out of insertion order: %q, %q", root[0].Name, root[1].Name)
	}
	if len(root[0].Children) != 2 {
		t.Errorf("expected users folder reused for both leaves, got %d children", len(root[0].Children))
	}
}

func TestInsert_RequestLeafNeverMatchesAsFolder(t *testing.T) {
	// A request named like a folder must not absorb children.
	root := []*Item{leaf("users")}
	Insert(&root, compiler.Location{Folders: []string{"users"}}, leaf("x"))

	if len(root) != 2 {
		t.Fatalf("expected a new folder next to the request leaf, got %+v", root)
	}
	if !root[1].IsFolder() || len(root[1].Children) != 1 {
		t.Errorf("expected the new folder to hold the leaf, got %+v", root[1])
	}
}
