// Package cli provides the command-line interface for Lumexa.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/optivex/lumexa-go/internal/client"
)

var (
	// Version is set at build time.
	Version = "0.1.0"

	// Global flags
	verbose   bool
	serverURL string

	// api is the shared server client, created before any command runs.
	// One CLI invocation maps to one conversation session on the server.
	api *client.Client
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "lumexa",
	Short: "Conversational AI assistant with smart web search",
	Long: `Lumexa is a conversational AI assistant backed by a Lumexa server.

Chat with the configured LLM provider, run web searches that return an
AI-synthesized answer with numbered references, and find PDF documents.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		api = client.New(serverURL)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "server URL (default $LUMEXA_SERVER_URL or http://localhost:3000)")

	// Add subcommands
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(pdfCmd)
	rootCmd.AddCommand(statsCmd)
}
