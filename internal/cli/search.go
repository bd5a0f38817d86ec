package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/optivex/lumexa-go/internal/client"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Web search with an AI-synthesized answer",
	Long: `Search the web and get an AI-synthesized answer with numbered references.

The server fetches live results, feeds them to the configured LLM, and
returns an answer with [n] citations pointing into the reference list.

Examples:
  lumexa search "latest Go release"
  lumexa search "how does raft leader election work" -v`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	value, err := runWithSpinner(ctx, "Searching the web...", func(ctx context.Context) (any, error) {
		return api.SmartSearch(ctx, args[0])
	})
	if err != nil {
		return err
	}
	result := value.(*client.SmartSearchResult)

	answerStyle := lipgloss.NewStyle().Width(terminalWidth())
	fmt.Println(answerStyle.Render(cleanResponse(result.AIResponse)))

	theme := defaultTheme
	if len(result.References) > 0 {
		fmt.Println()
		fmt.Println(theme.accentStyle().Render("References"))
		for _, ref := range result.References {
			fmt.Printf("  [%d] %s\n", ref.ID, ref.Title)
			fmt.Printf("      %s\n", theme.hintStyle().Render(ref.Link))
		}
	}

	if verbose && len(result.Images) > 0 {
		fmt.Println()
		fmt.Println(theme.accentStyle().Render("Images"))
		for _, img := range result.Images {
			fmt.Printf("  %s\n", theme.hintStyle().Render(img))
		}
	}

	if verbose {
		fmt.Println()
		fmt.Println(theme.hintStyle().Render(fmt.Sprintf("%d results analyzed by %s", result.TotalResults, result.AnalyzedBy)))
	}
	return nil
}
