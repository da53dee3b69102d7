// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package llm is the app-facing language-model capability: a single
// Complete request/response round trip. Package llm also provides
// Provider, the shell-side implementation backed by openai-go.
package llm

import (
	"code.hybscloud.com/kernel/capability"
	"code.hybscloud.com/kernel/task"
)

// Message is one turn of a chat completion request.
type Message struct {
	Role    string // "system", "user", or "assistant"
	Content string
}

// Complete asks the shell to run a chat completion over Messages.
type Complete struct {
	Model    string
	Messages []Message
}

func (Complete) OpResult() CompleteResponse { panic("llm: Complete is phantom") }

// CompleteResponse carries the model's reply, or an error description.
type CompleteResponse struct {
	Content string
	Err     string
}

// Ask performs a chat completion and awaits the reply.
func Ask(model string, messages []Message) task.Expr[CompleteResponse] {
	return capability.RequestFromShell[Complete, CompleteResponse](Complete{Model: model, Messages: messages})
}
