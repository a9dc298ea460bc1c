package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackcoderx/postgen/pkg/postman"
	"github.com/blackcoderx/postgen/pkg/rules"
	"github.com/blackcoderx/postgen/pkg/storage"
)

func init() {
	rootCmd.AddCommand(buildCmd)
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Compile route files into collection and environment documents",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuild()
	},
}

func runBuild() error {
	_, _, err := buildDocuments()
	return err
}

// buildDocuments runs the whole compile pass: load routes, build and
// validate the collection, write both documents. It returns the collection
// and config so `push` can reuse them.
func buildDocuments() (*postman.Collection, *Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	routes, err := storage.LoadRoutes(cfg.Routes)
	if err != nil {
		return nil, nil, err
	}
	if len(routes) == 0 {
		return nil, nil, fmt.Errorf("no routes found in %s", cfg.Routes)
	}

	var trace io.Writer
	if verbose {
		trace = os.Stderr
	}
	builder := postman.Builder{
		Name:       cfg.Name,
		MaxFolders: cfg.MaxFolders,
		Comments:   cfg.Comments,
		AuthBuilder: func(rules.Route) *postman.Auth {
			return postman.BearerAuth(cfg.AuthVariable)
		},
		Trace: trace,
	}
	col := builder.Build(routes)

	if err := postman.Validate(col); err != nil {
		return nil, nil, err
	}

	env := postman.NewEnvironment(cfg.Name, cfg.Environment)

	if err := writeDocument(cfg.Output.Collection, col); err != nil {
		return nil, nil, err
	}
	if err := writeDocument(cfg.Output.Environment, env); err != nil {
		return nil, nil, err
	}

	fmt.Println(successStyle.Render(fmt.Sprintf("✓ Compiled %d routes", len(routes))))
	return col, cfg, nil
}

func writeDocument(path string, doc interface{}) error {
	res, err := storage.WriteDocument(path, doc)
	if err != nil {
		return err
	}
	switch {
	case res.Created:
		fmt.Println(successStyle.Render("✓ Created " + res.Path))
	case res.Changed:
		fmt.Println(successStyle.Render("✓ Updated " + res.Path))
		if verbose && res.Diff != "" {
			fmt.Println(dimStyle.Render(res.Diff))
		}
	default:
		fmt.Println(dimStyle.Render("  Unchanged " + res.Path))
	}
	return nil
}
