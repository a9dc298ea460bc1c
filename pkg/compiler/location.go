package compiler

import (
	"regexp"
	"strings"

	"github.com/blackcoderx/postgen/pkg/rules"
)

// HostVariable is the environment placeholder every generated URL hangs off.
const HostVariable = "{{host}}"

// Variable is one path variable of a request URL. Values are left empty so
// the consumer fills them at call time.
type Variable struct {
	Key         string
	Value       string
	Description string
}

// Location is the parsed form of a path template: the folder-grouping
// prefix, the normalized URL, the full segment list and the path variables.
type Location struct {
	Folders   []string
	RawURL    string
	Path      []string
	Variables []Variable
}

var paramSegment = regexp.MustCompile(`^:([A-Za-z_][A-Za-z0-9_]*)(\(.*\))?$`)

// ParamName extracts the parameter name from a path segment like ":id" or
// ":id(\\d+)". Non-parameter segments report false.
func ParamName(segment string) (string, bool) {
	m := paramSegment.FindStringSubmatch(segment)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ParseLocation splits a path template into segments, rewrites colon
// parameters to their bare `:name` form (inline regex constraints dropped),
// and emits path variables in the caller-supplied order. The folder prefix is
// the first maxFolders segments, fewer when the path is shorter.
//
// Variable descriptions keep their line breaks, unlike Describe; the
// multi-line form is part of the established output.
func ParseLocation(pathTemplate string, params map[string]*rules.Node, order []string, maxFolders int) Location {
	trimmed := strings.TrimPrefix(pathTemplate, "/")
	segments := strings.Split(trimmed, "/")

	path := make([]string, 0, len(segments))
	for _, seg := range segments {
		if name, ok := ParamName(seg); ok {
			path = append(path, ":"+name)
		} else {
			path = append(path, seg)
		}
	}

	depth := maxFolders
	if depth > len(path) {
		depth = len(path)
	}
	if depth < 0 {
		depth = 0
	}

	variables := make([]Variable, 0, len(order))
	for _, name := range order {
		variables = append(variables, Variable{
			Key:         name,
			Description: DescribeMultiline(params[name]),
		})
	}

	return Location{
		Folders:   append([]string(nil), path[:depth]...),
		RawURL:    HostVariable + "/" + strings.Join(path, "/"),
		Path:      path,
		Variables: variables,
	}
}
