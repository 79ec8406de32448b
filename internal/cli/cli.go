// Package cli provides an interactive terminal front end to the agent.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"

	"github.com/nrizzio/chat-agent/internal/agent"
)

// cliUserID tags terminal conversations in the shared history store.
const cliUserID = "cli"

const banner = `%s v%s
Type a message and press enter. Commands: /help /history /clear /quit
`

// Run starts a read-eval-print loop on the terminal. It returns when the
// user quits, the input stream closes, or ctx is cancelled.
func Run(ctx context.Context, ag *agent.Agent, out io.Writer) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	status := ag.Status()
	fmt.Fprintf(out, banner, status.Name, status.Version)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		input, err := line.Prompt("> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				fmt.Fprintln(out, "Goodbye!")
				return nil
			}
			return fmt.Errorf("read input: %w", err)
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		if strings.HasPrefix(input, "/") {
			if quit := runCommand(ag, out, input); quit {
				fmt.Fprintln(out, "Goodbye!")
				return nil
			}
			continue
		}

		reply := ag.Respond(ctx, input, cliUserID)
		fmt.Fprintln(out, reply.Content)
	}
}

// runCommand handles slash commands and reports whether the loop should
// exit.
func runCommand(ag *agent.Agent, out io.Writer, input string) bool {
	switch strings.ToLower(input) {
	case "/quit", "/exit":
		return true
	case "/help":
		fmt.Fprintln(out, "/help     show this message")
		fmt.Fprintln(out, "/history  show this session's conversation")
		fmt.Fprintln(out, "/clear    clear this session's conversation")
		fmt.Fprintln(out, "/quit     exit")
	case "/history":
		entries := ag.History(cliUserID, 0)
		if len(entries) == 0 {
			fmt.Fprintln(out, "No history yet.")
			return false
		}
		for _, e := range entries {
			fmt.Fprintf(out, "[%s] you: %s\n", e.Timestamp.Local().Format("15:04:05"), e.Message)
			fmt.Fprintf(out, "[%s] %s\n", e.Timestamp.Local().Format("15:04:05"), e.Response)
		}
	case "/clear":
		ag.ClearHistory(cliUserID)
		fmt.Fprintln(out, "History cleared.")
	default:
		fmt.Fprintf(out, "Unknown command %q. Try /help.\n", input)
	}
	return false
}
