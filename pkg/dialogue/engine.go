package dialogue

import (
	"context"
	"strings"
	"time"

	"ai-studyaid-be/internal/entity"
)

// Engine advances a fixed assistant script in lock-step with user messages.
// The reply is selected purely by stage position; user text is never parsed.
type Engine struct {
	script   []string
	terminal string
	delay    time.Duration
}

func NewEngine(script []string, terminal string, delay time.Duration) *Engine {
	return &Engine{
		script:   script,
		terminal: terminal,
		delay:    delay,
	}
}

// ScriptLen returns the number of scripted prompts.
func (e *Engine) ScriptLen() int {
	return len(e.script)
}

// SubmitUserMessage appends the user entry, waits the reply delay, then
// appends the scripted assistant reply and advances the stage. The stage
// saturates at the script length; after that the terminal message repeats.
// Empty or whitespace-only text is a silent no-op. The caller must hold the
// session lock so exchanges for one session never interleave.
func (e *Engine) SubmitUserMessage(ctx context.Context, state *entity.DialogueState, text string) (*entity.ChatEntry, *entity.ChatEntry, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil, nil
	}

	sent := entity.ChatEntry{
		Text:      text,
		Sender:    entity.ChatSenderUser,
		Timestamp: time.Now(),
	}
	state.Transcript = append(state.Transcript, sent)

	// Simulated thinking pause. Pacing only, zero in tests.
	if e.delay > 0 {
		timer := time.NewTimer(e.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, nil, ctx.Err()
		case <-timer.C:
		}
	}

	replyText := e.terminal
	if state.Stage < len(e.script) {
		replyText = e.script[state.Stage]
		state.Stage++
	}
	reply := entity.ChatEntry{
		Text:      replyText,
		Sender:    entity.ChatSenderAssistant,
		Timestamp: time.Now(),
	}
	state.Transcript = append(state.Transcript, reply)

	return &sent, &reply, nil
}
