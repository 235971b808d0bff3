// Package ui is the terminal chat front-end bound to a conversation.Controller.
package ui

import (
	"context"
	"errors"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"

	"gemino/internal/conversation"
)

type Chat struct {
	app        *tview.Application
	controller *conversation.Controller
	logger     *zap.Logger

	textView *tview.TextView
	textArea *tview.TextArea
	status   *tview.TextView

	// redraw coalesces state notifications; QueueUpdateDraw blocks until the event loop
	// runs the update, so listeners only signal here.
	redraw chan struct{}

	ctx context.Context
}

func New(controller *conversation.Controller, logger *zap.Logger) *Chat {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Chat{
		app:        tview.NewApplication(),
		controller: controller,
		logger:     logger,
		redraw:     make(chan struct{}, 1),
		ctx:        context.Background(),
	}
	c.app.EnablePaste(true)

	c.textView = initChatViewer()
	c.textArea = initChatInput()
	c.status = tview.NewTextView().SetDynamicColors(true)

	controller.OnChange(func(conversation.State) {
		select {
		case c.redraw <- struct{}{}:
		default:
		}
	})
	return c
}

func initChatViewer() *tview.TextView {
	textView := tview.NewTextView().
		SetDynamicColors(true).
		SetWordWrap(true)

	textView.SetTitle(" 🤖 Gemino · Powered by Google ").SetBorder(true)
	textView.SetScrollable(true)
	return textView
}

func initChatInput() *tview.TextArea {
	textArea := tview.NewTextArea().
		SetPlaceholder("Type your message here...")
	textArea.SetTitle(" Message ").SetBorder(true)
	return textArea
}

// Run blocks until the user quits or ctx is cancelled.
func (c *Chat) Run(ctx context.Context) error {
	c.ctx = ctx

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(c.textView, 0, 1, false).
		AddItem(c.textArea, 5, 0, true).
		AddItem(c.status, 1, 0, false)

	c.textArea.SetInputCapture(c.handleKey)
	c.draw(c.controller.State())

	go c.redrawLoop(ctx)
	go func() {
		<-ctx.Done()
		c.app.Stop()
	}()

	return c.app.SetRoot(layout, true).SetFocus(c.textArea).Run()
}

func (c *Chat) handleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyCtrlN:
		c.controller.Reset()
		c.textArea.SetText("", false)
		return nil
	case tcell.KeyCtrlL:
		c.controller.Clear()
		return nil
	}

	// Input stays inactive until the pending reply resolves.
	if !c.controller.State().CanSubmit() {
		return nil
	}

	if event.Key() == tcell.KeyEnter {
		if event.Modifiers()&tcell.ModAlt != 0 {
			return tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)
		}
		c.submit()
		return nil
	}
	return event
}

func (c *Chat) submit() {
	c.controller.SetPrompt(c.textArea.GetText())

	_, err := c.controller.Submit(c.ctx)
	switch {
	case err == nil:
		c.logger.Info("prompt sent")
	case errors.Is(err, conversation.ErrEmptyPrompt):
		c.logger.Debug("empty prompt rejected")
	case errors.Is(err, conversation.ErrBusy):
		c.logger.Debug("submit ignored while awaiting reply")
	default:
		c.logger.Error("submit failed", zap.Error(err))
	}

	c.textArea.SetText(c.controller.State().PendingPrompt, true)
}

func (c *Chat) redrawLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-c.redraw:
			c.app.QueueUpdateDraw(func() { c.draw(c.controller.State()) })
		}
	}
}

func (c *Chat) draw(st conversation.State) {
	c.textView.SetText(formatConversation(st))
	c.textView.ScrollToEnd()
	c.status.SetText(statusLine(st))
	if st.AwaitingReply {
		c.textArea.SetTitle(" Waiting for Gemini... ")
	} else {
		c.textArea.SetTitle(" Message ")
	}
}
