package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"icpc-contest/internal/apperrors"
	"icpc-contest/internal/domain/model"
	"icpc-contest/internal/domain/ports"
)

// Console reads answers line by line and writes prompts and notifications.
type Console struct {
	mu     sync.Mutex
	reader *bufio.Reader
	out    io.Writer

	start sync.Once
	lines chan lineResult
}

type lineResult struct {
	line string
	err  error
}

var (
	_ ports.Prompter = (*Console)(nil)
	_ ports.Notifier = (*Console)(nil)
)

// New creates a Console over the given streams.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		reader: bufio.NewReader(in),
		out:    out,
		lines:  make(chan lineResult),
	}
}

// readLines feeds c.lines until the input fails or ends. A read blocked on
// the terminal cannot be interrupted, so it runs apart from Ask.
func (c *Console) readLines() {
	for {
		line, err := c.reader.ReadString('\n')
		c.lines <- lineResult{line: line, err: err}
		if err != nil {
			close(c.lines)
			return
		}
	}
}

// Ask prints the question without a newline and returns the next input line.
// It returns ctx.Err() as soon as ctx is done, even while waiting for input.
func (c *Console) Ask(ctx context.Context, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := io.WriteString(c.out, question); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}

	c.start.Do(func() { go c.readLines() })

	var (
		line string
		err  error
	)
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-c.lines:
		if !ok {
			return "", apperrors.ErrInputClosed
		}
		line, err = res.line, res.err
	}

	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read answer: %w", err)
		}
		if line == "" {
			return "", apperrors.ErrInputClosed
		}
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// Send writes the notification. The title goes on its own line, followed by
// the description and one line per field.
func (c *Console) Send(ctx context.Context, notification model.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var builder strings.Builder
	builder.WriteString(notification.Title)
	builder.WriteByte('\n')
	if notification.Description != "" {
		builder.WriteString(notification.Description)
		builder.WriteByte('\n')
	}
	for _, field := range notification.Fields {
		builder.WriteString(fmt.Sprintf("  %s: %s\n", field.Name, field.Value))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := io.WriteString(c.out, builder.String()); err != nil {
		return fmt.Errorf("write notification: %w", err)
	}
	return nil
}
