package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
	version = "dev"

	rootCmd = &cobra.Command{
		Use:   "postgen",
		Short: "Postgen - compile route descriptors into Postman collections",
		Long: `Postgen compiles declarative route descriptors (path templates, HTTP methods
and validation-rule trees) into a Postman collection plus a matching
environment document, and can push the collection straight to the Postman API.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bare invocation behaves like `postgen build`.
			return runBuild()
		},
	}
)

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is postgen.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "trace the compile phase and show output diffs")
}

func initConfig() {
	// Load .env file if it exists (optional, warn if malformed)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Warning: Failed to load .env file: %v\n", err)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("postgen")
	}

	viper.SetDefault("name", "API")
	viper.SetDefault("routes", "routes")
	viper.SetDefault("output.collection", "postman/collection.json")
	viper.SetDefault("output.environment", "postman/environment.json")
	viper.SetDefault("max_folders", 2)
	viper.SetDefault("comments", true)
	viper.SetDefault("auth_variable", "accessKey")
	viper.SetDefault("upload_timeout", 30)

	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
