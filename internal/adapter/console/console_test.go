package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"icpc-contest/internal/apperrors"
	"icpc-contest/internal/domain/model"
)

func TestAskReadsLines(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader("Alpha\r\nState U\nlast"), &out)
	ctx := context.Background()

	for _, want := range []string{"Alpha", "State U", "last"} {
		got, err := c.Ask(ctx, "? ")
		if err != nil {
			t.Fatalf("Ask: %v", err)
		}
		if got != want {
			t.Errorf("Ask = %q, want %q", got, want)
		}
	}

	if _, err := c.Ask(ctx, "? "); !errors.Is(err, apperrors.ErrInputClosed) {
		t.Fatalf("Ask at EOF err = %v, want ErrInputClosed", err)
	}

	if got := out.String(); got != "? ? ? ? " {
		t.Errorf("prompts = %q", got)
	}
}

func TestAskKeepsWhitespace(t *testing.T) {
	c := New(strings.NewReader("  yes \n\n"), &bytes.Buffer{})

	got, err := c.Ask(context.Background(), "")
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if got != "  yes " {
		t.Errorf("Ask = %q, want %q", got, "  yes ")
	}

	got, err = c.Ask(context.Background(), "")
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if got != "" {
		t.Errorf("Ask = %q, want empty line", got)
	}
}

func TestAskHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := New(strings.NewReader("x\n"), &bytes.Buffer{})
	if _, err := c.Ask(ctx, "? "); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestAskReturnsWhenContextEndsWhileWaiting(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	c := New(pr, &bytes.Buffer{})
	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(50*time.Millisecond, cancel)

	done := make(chan error, 1)
	go func() {
		_, err := c.Ask(ctx, "? ")
		done <- err
	}()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("err = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Ask still blocked after the context was cancelled")
	}
}

func TestAskAfterInterruptedWait(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	c := New(pr, &bytes.Buffer{})
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if _, err := c.Ask(ctx, "? "); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want context.DeadlineExceeded", err)
	}

	go func() { _, _ = io.WriteString(pw, "Alpha\n") }()

	got, err := c.Ask(context.Background(), "? ")
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if got != "Alpha" {
		t.Errorf("Ask = %q, want Alpha", got)
	}
}

func TestSendRendersNotification(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out)

	err := c.Send(context.Background(), model.Notification{
		Title:       "Problem Review",
		Description: "Check the details below.",
		Fields: []model.NotificationField{
			{Name: "Difficulty", Value: "Easy"},
			{Name: "Tags", Value: "array, hash"},
		},
	})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}

	want := "Problem Review\nCheck the details below.\n  Difficulty: Easy\n  Tags: array, hash\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestSendMessage(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out)

	if err := c.Send(context.Background(), model.Message("Solution successfully submitted.")); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if out.String() != "Solution successfully submitted.\n" {
		t.Errorf("output = %q", out.String())
	}
}
