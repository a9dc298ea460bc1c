// Package storage loads route descriptor files and writes the compiled
// output documents.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/blackcoderx/postgen/pkg/rules"
)

// LoadRouteFile reads one YAML route file.
func LoadRouteFile(filePath string) (*rules.RouteFile, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read route file: %w", err)
	}

	var rf rules.RouteFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return &rf, nil
}

// LoadRoutes walks the routes directory and collects every route, file order
// first (lexical walk order) and declaration order within a file.
func LoadRoutes(dir string) ([]rules.Route, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, fmt.Errorf("routes directory %s does not exist", dir)
	}

	var routes []rules.Route
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !(strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")) {
			return nil
		}
		rf, err := LoadRouteFile(path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		routes = append(routes, rf.Routes...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load routes: %w", err)
	}

	return routes, nil
}
