package main

import (
	"fmt"

	"github.com/effective-security/gogentic/pkg/llmutils"
	"github.com/effective-security/whoistools/tools/whois"
	"github.com/effective-security/whoistools/tools/whoisraw"
	"github.com/spf13/cobra"
)

var (
	fresh   bool
	jsonOut bool
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <domain>",
	Short: "Print a parsed WHOIS summary for a domain",
	Args:  cobra.ExactArgs(1),
	RunE:  runLookup,
}

var rawCmd = &cobra.Command{
	Use:   "raw <domain>",
	Short: "Print the raw WHOIS record for a domain",
	Args:  cobra.ExactArgs(1),
	RunE:  runRaw,
}

func init() {
	lookupCmd.Flags().BoolVar(&fresh, "fresh", false, "bypass the service cache")
	lookupCmd.Flags().BoolVar(&jsonOut, "json", false, "print the API response as JSON")
}

func runLookup(cmd *cobra.Command, args []string) error {
	tool, err := whois.New(clientConfig())
	if err != nil {
		return err
	}

	res, err := tool.Run(cmd.Context(), &whois.LookupRequest{
		Domain: args[0],
		Fresh:  fresh,
	})
	if err != nil {
		return err
	}

	if jsonOut {
		fmt.Println(llmutils.ToJSONIndent(res.Response))
		return nil
	}
	fmt.Println(res.String())
	return nil
}

func runRaw(cmd *cobra.Command, args []string) error {
	tool, err := whoisraw.New(clientConfig())
	if err != nil {
		return err
	}

	res, err := tool.Run(cmd.Context(), &whoisraw.LookupRequest{
		Domain: args[0],
	})
	if err != nil {
		return err
	}

	fmt.Println(res.String())
	return nil
}
