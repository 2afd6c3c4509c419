package chat

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/openai/openai-go/v3"
)

// Loop runs the interactive console conversation.
type Loop struct {
	client  *Client
	history *HistoryDB
	session string
	log     *slog.Logger
}

// NewLoop creates a console loop. history may be nil to run without
// persistence.
func NewLoop(client *Client, history *HistoryDB, session string, log *slog.Logger) *Loop {
	return &Loop{client: client, history: history, session: session, log: log}
}

// Run reads user lines from in and writes replies to out until EOF, "exit",
// or context cancellation. "reset" clears the stored transcript.
func (l *Loop) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	var transcript []openai.ChatCompletionMessageParamUnion
	if l.history != nil {
		stored, err := l.history.Load(l.session)
		if err != nil {
			return fmt.Errorf("loading history: %w", err)
		}
		transcript = stored
		if len(stored) > 0 {
			fmt.Fprintf(out, "(resuming session %q, %d messages)\n", l.session, len(stored))
		}
	}

	fmt.Fprintln(out, "LiftCoach ready. Type your message, or 'exit' to quit.")
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case line == "exit" || line == "quit":
			fmt.Fprintln(out, "Bye. Rest up.")
			return nil
		case line == "reset":
			if l.history != nil {
				if err := l.history.Clear(l.session); err != nil {
					return fmt.Errorf("clearing history: %w", err)
				}
			}
			transcript = nil
			fmt.Fprintln(out, "(conversation cleared)")
			continue
		}

		reply, updated, err := l.client.Respond(ctx, transcript, line)
		if err != nil {
			l.log.Error("chat turn failed", "error", err)
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		transcript = updated

		if l.history != nil {
			if err := l.history.Append(l.session, "user", line); err != nil {
				l.log.Warn("persisting user message", "error", err)
			}
			if err := l.history.Append(l.session, "assistant", reply); err != nil {
				l.log.Warn("persisting assistant message", "error", err)
			}
		}

		fmt.Fprintln(out, reply)
	}
	return scanner.Err()
}
