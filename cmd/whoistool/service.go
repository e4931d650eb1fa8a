package main

import (
	"fmt"

	"github.com/effective-security/gogentic/pkg/llmutils"
	"github.com/effective-security/gogentic/tools"
	"github.com/effective-security/whoistools/pkg/whoisapi"
	"github.com/effective-security/whoistools/tools/whois"
	"github.com/effective-security/whoistools/tools/whoisraw"
	"github.com/spf13/cobra"
)

var debugCmd = &cobra.Command{
	Use:   "debug <domain>",
	Short: "Print a WHOIS lookup with the service's parsing analysis",
	Args:  cobra.ExactArgs(1),
	RunE:  runDebug,
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the WHOIS API service health",
	RunE:  runHealth,
}

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Describe the LLM tools this module provides",
	RunE:  runTools,
}

func runDebug(cmd *cobra.Command, args []string) error {
	client := whoisapi.NewClient(clientConfig())

	res, err := client.Debug(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if len(res.ParsingAnalysis) > 0 {
		fmt.Println("Parsing analysis:")
		for _, line := range res.ParsingAnalysis {
			fmt.Printf("  %s\n", line)
		}
		fmt.Println()
	}
	fmt.Println(llmutils.ToJSONIndent(res))
	return nil
}

func runHealth(cmd *cobra.Command, _ []string) error {
	client := whoisapi.NewClient(clientConfig())

	res, err := client.Health(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("Status:  %s\n", res.Status)
	fmt.Printf("Version: %s\n", res.Version)
	fmt.Printf("Uptime:  %ds\n", res.UptimeSeconds)
	return nil
}

func runTools(_ *cobra.Command, _ []string) error {
	cfg := clientConfig()

	whoisTool, err := whois.New(cfg)
	if err != nil {
		return err
	}
	rawTool, err := whoisraw.New(cfg)
	if err != nil {
		return err
	}

	fmt.Print(tools.GetDescriptions(whoisTool, rawTool))
	return nil
}
