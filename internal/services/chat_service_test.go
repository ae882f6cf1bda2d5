package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func newTestChatService(t *testing.T, completer *stubCompleter, messages *stubChatMessageRepository) *ChatService {
	t.Helper()
	svc, err := NewChatService(ChatServiceDeps{
		Completer: completer,
		Messages:  messages,
		Clock:     func() time.Time { return time.Date(2025, 8, 20, 16, 0, 0, 0, time.UTC) },
	})
	if err != nil {
		t.Fatalf("NewChatService returned error: %v", err)
	}
	return svc
}

func TestAskPersistsExchange(t *testing.T) {
	completer := &stubCompleter{reply: "We build websites.", model: "gpt-4o"}
	messages := &stubChatMessageRepository{}
	svc := newTestChatService(t, completer, messages)

	msg, err := svc.Ask(context.Background(), "session-1", "What do you do?")
	if err != nil {
		t.Fatalf("Ask returned error: %v", err)
	}
	if msg.Reply != "We build websites." || msg.Model != "gpt-4o" {
		t.Fatalf("msg = %+v", msg)
	}
	if len(messages.created) != 1 {
		t.Fatalf("persisted = %d", len(messages.created))
	}
	if messages.created[0].Prompt != "What do you do?" {
		t.Fatalf("prompt = %q", messages.created[0].Prompt)
	}
}

func TestAskRequiresMessage(t *testing.T) {
	svc := newTestChatService(t, &stubCompleter{}, &stubChatMessageRepository{})

	if _, err := svc.Ask(context.Background(), "s", "   "); !errors.Is(err, ErrMessageRequired) {
		t.Fatalf("expected ErrMessageRequired, got %v", err)
	}
}

func TestAskFoldsUpstreamErrorIntoReply(t *testing.T) {
	completer := &stubCompleter{err: errors.New("rate limited"), model: "gpt-4o"}
	messages := &stubChatMessageRepository{}
	svc := newTestChatService(t, completer, messages)

	msg, err := svc.Ask(context.Background(), "s", "hello")
	if err != nil {
		t.Fatalf("Ask should not fail on upstream errors, got %v", err)
	}
	if !strings.HasPrefix(msg.Reply, "Error processing request:") {
		t.Fatalf("reply = %q", msg.Reply)
	}
	if len(messages.created) != 1 {
		t.Fatalf("exchange with error reply should still be persisted")
	}
}
