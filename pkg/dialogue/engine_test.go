package dialogue

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"ai-studyaid-be/internal/entity"
)

var testScript = []string{"prompt one", "prompt two", "prompt three"}

const testTerminal = "all done"

func newTestEngine() *Engine {
	return NewEngine(testScript, testTerminal, 0)
}

func TestSubmitUserMessageIgnoresBlankText(t *testing.T) {
	engine := newTestEngine()
	state := &entity.DialogueState{}

	for _, text := range []string{"", "   ", "\n\t "} {
		sent, reply, err := engine.SubmitUserMessage(context.Background(), state, text)
		if err != nil {
			t.Fatalf("SubmitUserMessage(%q) error = %v", text, err)
		}
		if sent != nil || reply != nil {
			t.Errorf("SubmitUserMessage(%q) = (%v, %v), want no-op", text, sent, reply)
		}
	}

	if len(state.Transcript) != 0 || state.Stage != 0 {
		t.Errorf("state = %+v, want untouched", state)
	}
}

func TestSubmitUserMessageAdvancesScript(t *testing.T) {
	engine := newTestEngine()
	state := &entity.DialogueState{}

	for i, want := range testScript {
		sent, reply, err := engine.SubmitUserMessage(context.Background(), state, fmt.Sprintf("answer %d", i))
		if err != nil {
			t.Fatalf("SubmitUserMessage error = %v", err)
		}
		if sent.Sender != entity.ChatSenderUser {
			t.Errorf("sent.Sender = %q", sent.Sender)
		}
		if reply.Sender != entity.ChatSenderAssistant {
			t.Errorf("reply.Sender = %q", reply.Sender)
		}
		if reply.Text != want {
			t.Errorf("reply %d = %q, want %q", i, reply.Text, want)
		}
		if state.Stage != i+1 {
			t.Errorf("Stage = %d, want %d", state.Stage, i+1)
		}
	}
}

func TestSubmitUserMessageSaturates(t *testing.T) {
	engine := newTestEngine()
	state := &entity.DialogueState{}

	// Walk past the end of the script; the terminal message repeats and the
	// stage never exceeds the script length.
	for i := 0; i < len(testScript)+5; i++ {
		_, reply, err := engine.SubmitUserMessage(context.Background(), state, "msg")
		if err != nil {
			t.Fatalf("SubmitUserMessage error = %v", err)
		}
		if i >= len(testScript) && reply.Text != testTerminal {
			t.Errorf("reply %d = %q, want terminal message", i, reply.Text)
		}
	}

	if state.Stage != len(testScript) {
		t.Errorf("Stage = %d, want %d", state.Stage, len(testScript))
	}
}

func TestTranscriptOrdering(t *testing.T) {
	engine := newTestEngine()
	state := &entity.DialogueState{}

	const exchanges = 4
	for i := 0; i < exchanges; i++ {
		if _, _, err := engine.SubmitUserMessage(context.Background(), state, "hello"); err != nil {
			t.Fatalf("SubmitUserMessage error = %v", err)
		}
	}

	if len(state.Transcript) != 2*exchanges {
		t.Fatalf("len(Transcript) = %d, want %d", len(state.Transcript), 2*exchanges)
	}
	for i, entry := range state.Transcript {
		want := entity.ChatSenderUser
		if i%2 == 1 {
			want = entity.ChatSenderAssistant
		}
		if entry.Sender != want {
			t.Errorf("Transcript[%d].Sender = %q, want %q", i, entry.Sender, want)
		}
	}
}

func TestSubmitUserMessageCancelledDelay(t *testing.T) {
	engine := NewEngine(testScript, testTerminal, 50*time.Millisecond)
	state := &entity.DialogueState{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := engine.SubmitUserMessage(ctx, state, "hello")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
	// The user entry is in; the paired assistant reply never arrived.
	if len(state.Transcript) != 1 {
		t.Errorf("len(Transcript) = %d, want 1", len(state.Transcript))
	}
	if state.Stage != 0 {
		t.Errorf("Stage = %d, want 0", state.Stage)
	}
}
