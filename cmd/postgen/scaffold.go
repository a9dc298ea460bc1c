package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter postgen.yaml and routes directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		return scaffold()
	},
}

const defaultConfigFile = `# Postgen configuration
name: My API
routes: routes
output:
  collection: postman/collection.json
  environment: postman/environment.json
environment:
  - key: host
    value: http://localhost:3000
  - key: accessKey
    value: ""
max_folders: 2
comments: true
# api_keys:
#   - PMAK-xxxx
`

const exampleRouteFile = `name: users
routes:
  - path: /users/:id
    method: GET
    params:
      id:
        type: number
        integer: true
  - path: /users
    method: POST
    body:
      type: object
      schema:
        name:
          type: string
        role:
          type: string
          values: [admin, member]
`

// scaffold creates the starter files for a new project. Existing files are
// left alone.
func scaffold() error {
	if err := createIfMissing("postgen.yaml", defaultConfigFile); err != nil {
		return err
	}
	if err := os.MkdirAll("routes", 0755); err != nil {
		return fmt.Errorf("failed to create routes folder: %w", err)
	}
	if err := createIfMissing(filepath.Join("routes", "users.yaml"), exampleRouteFile); err != nil {
		return err
	}
	fmt.Println(successStyle.Render("✓ Project initialized. Edit postgen.yaml and routes/, then run `postgen build`."))
	return nil
}

func createIfMissing(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		fmt.Println(dimStyle.Render("  Exists " + path))
		return nil
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Println(successStyle.Render("✓ Created " + path))
	return nil
}
