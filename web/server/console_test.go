package server

import (
	"fmt"
	"strings"
	"sync"
	"testing"
)

// captureLogger records formatted messages
type captureLogger struct {
	mu       sync.Mutex
	messages []string
}

func (c *captureLogger) Printf(format string, args ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, fmt.Sprintf(format, args...))
}

func (c *captureLogger) all() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.messages...)
}

func TestRenderLogger_TagsMessages(t *testing.T) {
	base := &captureLogger{}
	logger := NewRenderLogger("render-123", base)

	logger.Printf("Test log message %d\n", 7)

	messages := base.all()
	if len(messages) != 1 {
		t.Fatalf("Expected 1 message, got %d", len(messages))
	}
	expected := "[render-123] Test log message 7\n"
	if messages[0] != expected {
		t.Errorf("Expected message '%s', got '%s'", expected, messages[0])
	}
}

func TestRenderLogger_PercentInMessage(t *testing.T) {
	base := &captureLogger{}
	logger := NewRenderLogger("r", base)

	// Already-formatted text must not be interpreted again
	logger.Printf("%s\n", "100% done")

	if msg := base.all()[0]; !strings.Contains(msg, "100% done") {
		t.Errorf("Expected literal percent sign, got '%s'", msg)
	}
}
