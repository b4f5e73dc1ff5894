package termpanel

import (
	"bytes"
	"testing"
)

func TestNoopNotification(t *testing.T) {
	var provider NotificationProvider = NoopNotification{}

	payload := &NotificationPayload{
		PayloadType: "title",
		Data:        []byte("Test"),
	}

	if response := provider.Notify(payload); response != "" {
		t.Errorf("expected empty response from NoopNotification, got %q", response)
	}
}

func TestWithNotification(t *testing.T) {
	provider := &captureNotification{}
	term := New(WithNotification(provider))

	if term.NotificationProvider() != provider {
		t.Error("expected custom notification provider to be set")
	}
}

func TestDefaultNotificationProvider(t *testing.T) {
	term := New()

	provider := term.NotificationProvider()
	if provider == nil {
		t.Fatal("expected default notification provider to be set")
	}

	payload := &NotificationPayload{PayloadType: "title", Data: []byte("Test")}
	if response := provider.Notify(payload); response != "" {
		t.Errorf("expected empty response from default provider, got %q", response)
	}
}

func TestSetNotificationProvider(t *testing.T) {
	term := New()
	provider := &captureNotification{}

	term.SetNotificationProvider(provider)

	if term.NotificationProvider() != provider {
		t.Error("expected notification provider to be updated")
	}
}

func TestDesktopNotification_ForwardsPayload(t *testing.T) {
	provider := &captureNotification{}
	term := New(WithNotification(provider))

	payload := &NotificationPayload{
		ID:          "notify-1",
		PayloadType: "title",
		Data:        []byte("Build finished"),
		Done:        true,
	}

	term.DesktopNotification(payload)

	if len(provider.payloads) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(provider.payloads))
	}
	last := provider.payloads[0]
	if last.ID != "notify-1" {
		t.Errorf("expected ID 'notify-1', got %q", last.ID)
	}
	if string(last.Data) != "Build finished" {
		t.Errorf("expected data 'Build finished', got %q", string(last.Data))
	}
}

func TestDesktopNotification_NilProvider(t *testing.T) {
	term := New()
	term.SetNotificationProvider(nil)

	payload := &NotificationPayload{
		PayloadType: "title",
		Data:        []byte("Test"),
	}

	// Must not panic
	term.DesktopNotification(payload)
}

func TestDesktopNotification_QueryResponse(t *testing.T) {
	writer := &bytes.Buffer{}
	provider := &captureNotification{
		queryReply: "\x1b]99;i=test;p=?\x1b\\",
	}

	term := New(
		WithNotification(provider),
		WithResponse(writer),
	)

	term.DesktopNotification(&NotificationPayload{
		ID:          "test",
		PayloadType: "?",
		Done:        true,
	})

	if got := writer.String(); got != provider.queryReply {
		t.Errorf("expected query response %q, got %q", provider.queryReply, got)
	}
}

func TestDesktopNotification_NoResponseWhenNotQuery(t *testing.T) {
	writer := &bytes.Buffer{}
	term := New(
		WithNotification(&captureNotification{queryReply: "reply"}),
		WithResponse(writer),
	)

	term.DesktopNotification(&NotificationPayload{
		PayloadType: "title",
		Data:        []byte("Test"),
	})

	if writer.Len() != 0 {
		t.Errorf("expected no response for non-query payload, got %q", writer.String())
	}
}

// captureNotification records every payload it receives and answers
// capability queries with a fixed reply.
type captureNotification struct {
	payloads   []*NotificationPayload
	queryReply string
}

func (p *captureNotification) Notify(payload *NotificationPayload) string {
	p.payloads = append(p.payloads, payload)
	if payload.PayloadType == "?" {
		return p.queryReply
	}
	return ""
}
