package chat

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// maxToolRounds bounds the tool-call loop for one user turn.
const maxToolRounds = 5

// Client wraps the OpenAI chat completion API with the coaching tools.
type Client struct {
	client openai.Client
	model  string
	log    *slog.Logger
}

// NewClient creates a chat client. Model defaults to gpt-4o when empty.
func NewClient(apiKey, model string, log *slog.Logger) *Client {
	if model == "" {
		model = openai.ChatModelGPT4o
	}
	return &Client{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
		log:    log,
	}
}

// Respond sends the conversation plus the new user message and resolves any
// tool calls before returning the assistant's final text. The returned
// messages include everything appended during this turn (user message, tool
// rounds, final reply) so callers can carry the conversation forward.
func (c *Client) Respond(ctx context.Context, history []openai.ChatCompletionMessageParamUnion, userMsg string) (string, []openai.ChatCompletionMessageParamUnion, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(history)+2)
	messages = append(messages, openai.SystemMessage(systemPrompt))
	messages = append(messages, history...)
	messages = append(messages, openai.UserMessage(userMsg))

	for round := 0; round < maxToolRounds; round++ {
		completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
			Model:    c.model,
			Messages: messages,
			Tools:    toolDefs,
		})
		if err != nil {
			return "", nil, fmt.Errorf("chat completion: %w", err)
		}
		if len(completion.Choices) == 0 {
			return "", nil, fmt.Errorf("chat completion: empty response")
		}

		msg := completion.Choices[0].Message
		if len(msg.ToolCalls) == 0 {
			messages = append(messages, msg.ToParam())
			// Strip the system message before returning the transcript.
			return msg.Content, messages[1:], nil
		}

		messages = append(messages, msg.ToParam())
		for _, call := range msg.ToolCalls {
			result, err := dispatch(call.Function.Name, call.Function.Arguments)
			if err != nil {
				c.log.Warn("tool call failed", "tool", call.Function.Name, "error", err)
				result = fmt.Sprintf(`{"error":%q}`, err.Error())
			} else {
				c.log.Info("tool call", "tool", call.Function.Name)
			}
			messages = append(messages, openai.ToolMessage(result, call.ID))
		}
	}

	return "", nil, fmt.Errorf("tool loop exceeded %d rounds", maxToolRounds)
}
