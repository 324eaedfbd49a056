// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the search-skills CLI.
// Each skill is a subcommand: web, wikipedia, and arxiv call their public
// APIs and print a JSON envelope on stdout; skills lists the manifests an
// assistant can discover.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/search-skills/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "search-skills/0.1"
)

// errFailed signals a failed operation whose JSON envelope has already been
// printed; main converts it into exit code 1 without further output.
var errFailed = errors.New("operation failed")

// rootCmd is the base command for the search-skills CLI.
var rootCmd = &cobra.Command{
	Use:   "search-skills",
	Short: "Search skills backed by public search APIs",
	Long: `search-skills provides self-contained search skills for AI coding
assistants and direct CLI use. Each skill is a subcommand that calls one
public API (DuckDuckGo, Wikipedia, arXiv) and prints a JSON object with a
boolean success field on stdout. Diagnostics go to stderr; the process
exits non-zero when success is false.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./search-skills.yaml or ~/.config/search-skills/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("search-skills")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "search-skills"))
		}
	}

	viper.SetEnvPrefix("SEARCH_SKILLS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// httpConfig builds the shared HTTP settings from config-file values with
// built-in defaults.
func httpConfig() types.HTTPConfig {
	cfg := types.HTTPConfig{
		Timeout:   defaultTimeout,
		UserAgent: defaultUserAgent,
	}
	if viper.IsSet("http.timeout") {
		cfg.Timeout = viper.GetDuration("http.timeout")
	}
	if viper.IsSet("http.user_agent") {
		cfg.UserAgent = viper.GetString("http.user_agent")
	}
	return cfg
}

func newHTTPClient(cfg types.HTTPConfig) *http.Client {
	return &http.Client{Timeout: cfg.Timeout}
}

// flagInt resolves an integer setting: an explicitly set flag wins, then a
// config-file value, then the flag's default.
func flagInt(cmd *cobra.Command, flag, key string) int {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetInt(flag)
		return v
	}
	if viper.IsSet(key) {
		return viper.GetInt(key)
	}
	v, _ := cmd.Flags().GetInt(flag)
	return v
}

// flagDuration resolves a duration setting with the same precedence as flagInt.
func flagDuration(cmd *cobra.Command, flag, key string) time.Duration {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetDuration(flag)
		return v
	}
	if viper.IsSet(key) {
		return viper.GetDuration(key)
	}
	v, _ := cmd.Flags().GetDuration(flag)
	return v
}

// flagString resolves a string setting with the same precedence as flagInt.
func flagString(cmd *cobra.Command, flag, key string) string {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetString(flag)
		return v
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	v, _ := cmd.Flags().GetString(flag)
	return v
}

// writeResult prints the JSON envelope on stdout. When ok is false the
// envelope is still printed and errFailed is returned so main exits 1.
func writeResult(v any, pretty bool, ok bool) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	if !ok {
		return errFailed
	}
	return nil
}

// fail prints an error envelope and reports the failure to main.
func fail(env types.ErrorEnvelope, pretty bool) error {
	env.Success = false
	return writeResult(env, pretty, false)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
