package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/optivex/lumexa-go/internal/metrics"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show server runtime statistics",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stats, err := api.Stats(ctx)
	if err != nil {
		return fmt.Errorf("fetch stats: %w", err)
	}

	theme := defaultTheme
	uptime := time.Duration(stats.UptimeSeconds * float64(time.Second)).Round(time.Second)
	fmt.Println(theme.accentStyle().Render("Server statistics"))
	fmt.Printf("  Uptime: %s\n\n", uptime)

	printOp(stats.LLMGenerate, "LLM generations")
	printOp(stats.WebSearch, "Web searches")
	printOp(stats.ImageSearch, "Image searches")
	printOp(stats.PDFSearch, "PDF searches")
	return nil
}

func printOp(op *metrics.OperationSnapshot, label string) {
	if op == nil {
		return
	}
	fmt.Printf("  %-16s %5d calls  avg %7.0fms  min %5dms  max %5dms\n",
		label, op.Count, op.AvgTimeMs, op.MinTimeMs, op.MaxTimeMs)
}
