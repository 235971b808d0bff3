package ui

import (
	"strings"

	"github.com/rivo/tview"

	"gemino/internal/conversation"
	"gemino/internal/render"
)

const (
	hintIdle     = "[gray]Enter[-] send  [gray]Alt+Enter[-] newline  [gray]Ctrl-L[-] clear  [gray]Ctrl-N[-] new chat  [gray]Ctrl-C[-] quit"
	hintAwaiting = "[yellow]Thinking...[-]  [gray]Ctrl-N[-] new chat  [gray]Ctrl-C[-] quit"
)

func header(t conversation.MessageType) string {
	switch t {
	case conversation.TypeUser:
		return "[green::b]You[-::-]"
	case conversation.TypeBot:
		return "[aqua::b]Gemini AI[-::-]"
	default:
		return "[red::b]Error[-::-]"
	}
}

// formatMessage renders one message with tview colour tags. Message text is escaped so
// brackets in replies are shown literally.
func formatMessage(m conversation.Message) string {
	var b strings.Builder
	b.WriteString(header(m.Type))
	b.WriteString("\n")
	for _, block := range render.Parse(m.Text) {
		switch block.Kind {
		case render.Code:
			for _, line := range strings.Split(block.Text, "\n") {
				b.WriteString("[yellow]  │ ")
				b.WriteString(tview.Escape(line))
				b.WriteString("[-]\n")
			}
		default:
			b.WriteString(tview.Escape(block.Text))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// formatConversation renders the whole transcript, including the empty state and the
// thinking indicator.
func formatConversation(st conversation.State) string {
	if len(st.Messages) == 0 && !st.AwaitingReply {
		return "\n[gray]💬 " + conversation.EmptyStateText + "[-]\n"
	}

	parts := make([]string, 0, len(st.Messages)+1)
	for _, m := range st.Messages {
		parts = append(parts, formatMessage(m))
	}
	if st.AwaitingReply {
		parts = append(parts, header(conversation.TypeBot)+"\n[gray]● "+conversation.ThinkingText+"...[-]\n")
	}
	return strings.Join(parts, "\n")
}

func statusLine(st conversation.State) string {
	if st.AwaitingReply {
		return hintAwaiting
	}
	return hintIdle
}
