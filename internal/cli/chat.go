package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/optivex/lumexa-go/internal/client"
)

var chatMode string

var chatCmd = &cobra.Command{
	Use:   "chat [prompt]",
	Short: "Chat with the assistant",
	Long: `Chat with the Lumexa assistant.

With a prompt argument, sends a single message and prints the reply.
Without arguments, starts an interactive session; the server keeps the
conversation history for the session, so follow-up questions work.

Examples:
  lumexa chat "Explain goroutines in two sentences"
  lumexa chat --mode code "Write a binary search in Go"
  lumexa chat`,
	Args: cobra.MaximumNArgs(1),
	RunE: runChat,
}

func init() {
	chatCmd.Flags().StringVarP(&chatMode, "mode", "m", "", "assistant mode (chat, code, research)")
}

func runChat(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if len(args) == 1 {
		return chatOnce(ctx, args[0])
	}
	return chatLoop(ctx)
}

func chatOnce(ctx context.Context, prompt string) error {
	result, err := sendPrompt(ctx, prompt)
	if err != nil {
		return err
	}

	fmt.Println(cleanResponse(result.Response))
	if verbose {
		fmt.Println(defaultTheme.hintStyle().Render("model: " + result.Model))
	}
	return nil
}

func chatLoop(ctx context.Context) error {
	theme := defaultTheme
	fmt.Println(theme.accentStyle().Render("Lumexa chat") +
		theme.hintStyle().Render("  (empty line or Ctrl+D to exit)"))

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		fmt.Print(theme.accentStyle().Render("you> "))
		if !scanner.Scan() {
			fmt.Println()
			break
		}
		prompt := strings.TrimSpace(scanner.Text())
		if prompt == "" {
			break
		}

		result, err := sendPrompt(ctx, prompt)
		if err != nil {
			if errors.Is(err, errCancelled) {
				break
			}
			fmt.Println(theme.errorStyle().Render("Error: " + err.Error()))
			continue
		}

		fmt.Println(theme.replyStyle().Render("lumexa>"))
		fmt.Println(cleanResponse(result.Response))
		fmt.Println()
	}

	return scanner.Err()
}

func sendPrompt(ctx context.Context, prompt string) (*client.GenerateResult, error) {
	value, err := runWithSpinner(ctx, "Thinking...", func(ctx context.Context) (any, error) {
		return api.Generate(ctx, prompt, chatMode)
	})
	if err != nil {
		return nil, err
	}
	return value.(*client.GenerateResult), nil
}
