// Package conversation owns the in-memory chat state and applies gateway outcomes to it.
package conversation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
)

var (
	// ErrBusy is returned by Submit while a reply is still pending.
	ErrBusy = errors.New("conversation: a reply is already pending")
	// ErrEmptyPrompt is returned by Submit when the prompt is blank. The warning
	// message has already been appended when it is returned.
	ErrEmptyPrompt = errors.New("conversation: empty prompt")
)

// Gateway produces a reply for a prompt.
type Gateway interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Listener receives a state snapshot after every transition. Listeners run on the
// goroutine that caused the transition and must not call back into the Controller.
type Listener func(State)

// Controller is safe for concurrent use. At most one gateway call is in flight.
type Controller struct {
	gateway Gateway
	logger  *zap.Logger

	mu         sync.Mutex
	messages   []Message
	pending    string
	awaiting   bool
	generation uint64
	listeners  []Listener

	// notifyMu serializes deliveries so listeners never see an older snapshot last.
	notifyMu sync.Mutex
}

func NewController(gateway Gateway, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{gateway: gateway, logger: logger}
}

// OnChange registers l for state notifications.
func (c *Controller) OnChange(l Listener) {
	c.mu.Lock()
	c.listeners = append(c.listeners, l)
	c.mu.Unlock()
}

// SetPrompt replaces the pending prompt. It does not notify listeners.
func (c *Controller) SetPrompt(prompt string) {
	c.mu.Lock()
	c.pending = prompt
	c.mu.Unlock()
}

// State returns a snapshot of the conversation.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Submit sends the pending prompt. A blank prompt appends a warning and returns
// ErrEmptyPrompt without contacting the gateway. Otherwise the user message is appended,
// the prompt cleared, and the gateway called on a new goroutine; the returned Pending
// completes once the outcome has been applied.
func (c *Controller) Submit(ctx context.Context) (*Pending, error) {
	c.mu.Lock()
	if c.awaiting {
		c.mu.Unlock()
		return nil, ErrBusy
	}

	prompt := c.pending
	if strings.TrimSpace(prompt) == "" {
		c.messages = append(c.messages, Message{Type: TypeError, Text: EmptyPromptText})
		c.mu.Unlock()
		c.notify()
		return nil, ErrEmptyPrompt
	}

	c.messages = append(c.messages, Message{Type: TypeUser, Text: prompt})
	c.pending = ""
	c.awaiting = true
	gen := c.generation
	c.mu.Unlock()
	c.notify()

	c.logger.Debug("prompt submitted", zap.Int("length", len(prompt)), zap.Uint64("generation", gen))

	p := &Pending{done: make(chan struct{})}
	go c.await(ctx, gen, prompt, p)
	return p, nil
}

func (c *Controller) await(ctx context.Context, gen uint64, prompt string, p *Pending) {
	var msg Message
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("gateway call panicked", zap.Any("panic", r))
			msg = Message{Type: TypeError, Text: ErrorPrefix + fmt.Sprint(r)}
		}
		p.message = msg
		p.applied = c.resolve(gen, msg)
		close(p.done)
	}()

	reply, err := c.gateway.Generate(ctx, prompt)
	msg = outcome(reply, err)
}

func outcome(reply string, err error) Message {
	if err != nil {
		return Message{Type: TypeError, Text: ErrorPrefix + err.Error()}
	}
	if reply == "" {
		return Message{Type: TypeBot, Text: NoReplyText}
	}
	return Message{Type: TypeBot, Text: reply}
}

// resolve is the single completion transition: it appends msg unless the conversation
// moved to a newer generation meanwhile, and always clears the awaiting flag.
func (c *Controller) resolve(gen uint64, msg Message) bool {
	c.mu.Lock()
	applied := gen == c.generation
	if applied {
		c.messages = append(c.messages, msg)
	}
	c.awaiting = false
	c.mu.Unlock()

	if !applied {
		c.logger.Debug("discarding reply for stale conversation", zap.Uint64("generation", gen))
	}
	c.notify()
	return applied
}

// Clear empties the conversation. It is a no-op, returning false, while a reply is
// pending or when there is nothing to clear.
func (c *Controller) Clear() bool {
	c.mu.Lock()
	if c.awaiting || len(c.messages) == 0 {
		c.mu.Unlock()
		return false
	}
	c.messages = nil
	c.generation++
	c.mu.Unlock()

	c.notify()
	return true
}

// Reset starts a new conversation even while a reply is pending. The pending reply is
// discarded when it arrives; Submit stays blocked until then.
func (c *Controller) Reset() {
	c.mu.Lock()
	c.messages = nil
	c.pending = ""
	c.generation++
	c.mu.Unlock()

	c.notify()
}

func (c *Controller) notify() {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	c.mu.Lock()
	state := c.snapshotLocked()
	listeners := append([]Listener(nil), c.listeners...)
	c.mu.Unlock()

	for _, l := range listeners {
		l(state)
	}
}

func (c *Controller) snapshotLocked() State {
	return State{
		Messages:      append([]Message(nil), c.messages...),
		PendingPrompt: c.pending,
		AwaitingReply: c.awaiting,
	}
}

// Pending tracks one in-flight gateway call.
type Pending struct {
	done    chan struct{}
	message Message
	applied bool
}

// Done is closed once the outcome has been applied to the conversation.
func (p *Pending) Done() <-chan struct{} { return p.done }

// Wait blocks until the call resolves or ctx ends. It returns the outcome message and
// whether it was appended (false when the conversation was reset meanwhile).
func (p *Pending) Wait(ctx context.Context) (Message, bool, error) {
	select {
	case <-p.done:
		return p.message, p.applied, nil
	case <-ctx.Done():
		return Message{}, false, ctx.Err()
	}
}
