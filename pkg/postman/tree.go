package postman

import "github.com/blackcoderx/postgen/pkg/compiler"

// Insert places a request leaf into the folder tree, walking the location's
// folder prefix top-down. At each level an existing sibling folder with the
// exact name is descended into; otherwise exactly one new folder is created.
// With an empty prefix the leaf lands directly in root.
//
// The builder owns the tree for the duration of one compilation pass;
// folders are only ever mutated to append children.
func Insert(root *[]*Item, loc compiler.Location, leaf *Item) {
	items := root
	for _, name := range loc.Folders {
		var match *Item
		for _, it := range *items {
			if it.IsFolder() && it.Name == name {
				match = it
				break
			}
		}
		if match == nil {
			match = &Item{Name: name, Children: []*Item{}}
			*items = append(*items, match)
		}
		items = &match.Children
	}
	*items = append(*items, leaf)
}
