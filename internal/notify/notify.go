// Package notify is the fire-and-forget channel for user-facing success and failure messages.
package notify

import (
	"log"
	"sync"
	"time"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelFailure Level = "failure"
)

type Message struct {
	Level   Level     `json:"level"`
	Text    string    `json:"text"`
	Created time.Time `json:"created_at"`
}

// Center keeps the most recent messages until the UI drains them.
type Center struct {
	mu  sync.Mutex
	buf []Message
	max int
	now func() time.Time
}

// New returns a Center that retains at most size messages (minimum 1).
func New(size int) *Center {
	if size < 1 {
		size = 1
	}
	return &Center{max: size, now: time.Now}
}

func (c *Center) Success(text string) { c.push(LevelSuccess, text) }

func (c *Center) Failure(text string) { c.push(LevelFailure, text) }

func (c *Center) push(level Level, text string) {
	log.Printf("[NOTIFY] %s: %s", level, text)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.buf = append(c.buf, Message{Level: level, Text: text, Created: c.now()})
	if len(c.buf) > c.max {
		c.buf = append([]Message(nil), c.buf[len(c.buf)-c.max:]...)
	}
}

// Drain returns pending messages oldest first and clears them.
func (c *Center) Drain() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := c.buf
	c.buf = nil
	if out == nil {
		out = []Message{}
	}
	return out
}
