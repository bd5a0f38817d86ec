package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/optivex/lumexa-go/internal/client"
)

var pdfCmd = &cobra.Command{
	Use:   "pdf <query>",
	Short: "Find PDF documents on the web",
	Long: `Find PDF documents matching a query.

Examples:
  lumexa pdf "transformer architecture paper"
  lumexa pdf "go language specification"`,
	Args: cobra.ExactArgs(1),
	RunE: runPDF,
}

func runPDF(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	value, err := runWithSpinner(ctx, "Searching for PDFs...", func(ctx context.Context) (any, error) {
		return api.PDFSearch(ctx, args[0])
	})
	if err != nil {
		return err
	}
	result := value.(*client.PDFSearchResult)

	if result.TotalPDFs == 0 {
		fmt.Println("No PDFs found.")
		return nil
	}

	theme := defaultTheme
	fmt.Printf("Found %d PDFs:\n\n", result.TotalPDFs)
	for _, doc := range result.PDFs {
		fmt.Printf("%d. %s\n", doc.ID, doc.Title)
		fmt.Printf("   %s\n", theme.hintStyle().Render(doc.Link))
		if verbose && doc.Snippet != "" {
			fmt.Printf("   %s\n", doc.Snippet)
		}
		fmt.Println()
	}
	return nil
}
