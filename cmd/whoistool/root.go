// Package main implements the whoistool CLI,
// a thin driver over the WHOIS lookup tools.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/effective-security/whoistools/pkg/whoisapi"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	baseURL string
	timeout time.Duration
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "whoistool",
	Short: "whoistool — WHOIS lookups via the WHOIS API service",
	Long: `whoistool queries a WHOIS API service and prints domain registration data,
either as a parsed summary or as the raw WHOIS record.

The service base URL is taken from --base-url, the ` + whoisapi.EnvBaseURL + `
environment variable, or the default ` + whoisapi.DefaultBaseURL + `.`,
}

// Execute runs the root command and exits on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = version
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "WHOIS API base URL")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "request timeout")

	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(rawCmd)
	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(toolsCmd)
}

// clientConfig resolves flags over the environment config.
func clientConfig() *whoisapi.Config {
	cfg := whoisapi.NewConfig()
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if timeout != 0 {
		cfg.Timeout = timeout
	}
	return cfg
}
