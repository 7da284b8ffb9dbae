package pubsub

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func receive(t *testing.T, sub Subscription) Event {
	t.Helper()
	select {
	case event := <-sub.Events():
		return event
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestPublishSubscribe(t *testing.T) {
	p := NewSSEPublisher()
	defer p.Close()

	sub, err := p.Subscribe(context.Background(), "analysis_status")
	if err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}

	status := AnalysisStatus{State: "analyzing", Message: "running analysis", Step: 1, Total: 2}
	if err := p.Publish("analysis_status", "analyzing", status); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	event := receive(t, sub)
	if event.Topic != "analysis_status" || event.Type != "analyzing" {
		t.Errorf("event = %+v, want topic analysis_status type analyzing", event)
	}
	if event.Version != 1 {
		t.Errorf("Version = %d, want 1", event.Version)
	}

	var got AnalysisStatus
	if err := json.Unmarshal(event.Data, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got != status {
		t.Errorf("payload = %+v, want %+v", got, status)
	}
}

func TestReplayLastEvent(t *testing.T) {
	p := NewSSEPublisher()
	defer p.Close()

	p.ConfigureTopic("analysis_result", TopicConfig{BufferSize: 5, ReplayAll: false})

	for i := 1; i <= 3; i++ {
		if err := p.Publish("analysis_result", "ready", map[string]int{"run": i}); err != nil {
			t.Fatalf("Publish() error = %v", err)
		}
	}

	// A late subscriber only sees the most recent state.
	sub, err := p.Subscribe(context.Background(), "analysis_result")
	if err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}

	event := receive(t, sub)
	if event.Version != 3 {
		t.Errorf("replayed Version = %d, want 3", event.Version)
	}

	select {
	case extra := <-sub.Events():
		t.Errorf("unexpected extra replayed event %+v", extra)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSubscriptionClosedByContext(t *testing.T) {
	p := NewSSEPublisher()
	defer p.Close()

	ctx, cancel := context.WithCancel(context.Background())
	sub, err := p.Subscribe(ctx, "analysis_status")
	if err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}

	cancel()

	// Unsubscribe is asynchronous; publishing afterwards must not reach it.
	time.Sleep(50 * time.Millisecond)
	if err := p.Publish("analysis_status", "ready", AnalysisStatus{State: "ready"}); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	select {
	case event, ok := <-sub.Events():
		if ok {
			t.Errorf("closed subscription received event %+v", event)
		}
	case <-time.After(50 * time.Millisecond):
	}

	_ = sub
}

func TestPublishAfterClose(t *testing.T) {
	p := NewSSEPublisher()
	p.Close()

	err := p.Publish("analysis_status", "ready", nil)
	if err == nil {
		t.Fatal("Publish() after Close() should fail")
	}
}

func TestWriteSSE(t *testing.T) {
	var sb strings.Builder
	event := Event{Topic: "analysis_status", Type: "ready", Data: json.RawMessage(`{"state":"ready"}`), Version: 7}

	if err := WriteSSE(&sb, event); err != nil {
		t.Fatalf("WriteSSE() error = %v", err)
	}

	out := sb.String()
	if !strings.HasPrefix(out, "data: ") || !strings.HasSuffix(out, "\n\n") {
		t.Errorf("WriteSSE output framing wrong: %q", out)
	}
	if !strings.Contains(out, `"version":7`) {
		t.Errorf("WriteSSE output missing version: %q", out)
	}
}
