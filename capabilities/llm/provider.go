// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Provider is the shell-side implementation of the llm capability,
// backed by the OpenAI chat completions API.
type Provider struct {
	client openai.Client
}

// NewProvider builds a Provider from the given request options (typically
// option.WithAPIKey, sourced from configuration rather than hardcoded).
func NewProvider(options ...option.RequestOption) *Provider {
	return &Provider{client: openai.NewClient(options...)}
}

// Execute answers a Complete effect synchronously. A shell binding that
// wants non-blocking behavior should run Execute on its own goroutine and
// post the result back through Core.Resolve.
func (p *Provider) Execute(ctx context.Context, op Complete) CompleteResponse {
	params := openai.ChatCompletionNewParams{
		Model:    op.Model,
		Messages: toOpenAIMessages(op.Messages),
	}
	resp, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return CompleteResponse{Err: fmt.Sprintf("llm: completion: %v", err)}
	}
	if len(resp.Choices) == 0 {
		return CompleteResponse{Err: "llm: empty response"}
	}
	return CompleteResponse{Content: resp.Choices[0].Message.Content}
}

func toOpenAIMessages(messages []Message) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, len(messages))
	for i, m := range messages {
		switch m.Role {
		case "system":
			out[i] = openai.SystemMessage(m.Content)
		case "assistant":
			out[i] = openai.AssistantMessage(m.Content)
		default:
			out[i] = openai.UserMessage(m.Content)
		}
	}
	return out
}
