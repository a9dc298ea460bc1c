package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackcoderx/postgen/pkg/upload"
)

func init() {
	rootCmd.AddCommand(pushCmd)
}

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Compile and upload the collection to the Postman API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPush()
	},
}

func runPush() error {
	col, cfg, err := buildDocuments()
	if err != nil {
		return err
	}
	if len(cfg.APIKeys) == 0 {
		return fmt.Errorf("no api_keys configured; nothing to push")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	client := upload.NewClient("", time.Duration(cfg.UploadTimeout)*time.Second)
	results := client.PushAll(ctx, col, cfg.APIKeys)

	for _, r := range results {
		if r.Err != nil {
			fmt.Println(errorStyle.Render(fmt.Sprintf("✗ %s: %v", r.Key, r.Err)))
		} else {
			fmt.Println(successStyle.Render(fmt.Sprintf("✓ %s: uploaded (%d)", r.Key, r.Status)))
		}
	}

	return results.Err()
}
