package conversation

// MessageType classifies a message for display.
type MessageType string

const (
	TypeUser  MessageType = "user"
	TypeBot   MessageType = "bot"
	TypeError MessageType = "error"
)

// Message is one immutable entry in the conversation.
type Message struct {
	Type MessageType `json:"type"`
	Text string      `json:"text"`
}

// Texts shown to the user by the controller.
const (
	EmptyPromptText = "⚠️ Please enter a prompt."
	NoReplyText     = "🤖 No reply received."
	ErrorPrefix     = "❌ Error: "
	EmptyStateText  = "Start a conversation with Gemino"
	ThinkingText    = "Processing your request"
)

// State is a snapshot of the conversation. Messages is a copy owned by the caller.
type State struct {
	Messages      []Message
	PendingPrompt string
	AwaitingReply bool
}

// CanClear reports whether Clear would change anything.
func (s State) CanClear() bool {
	return !s.AwaitingReply && len(s.Messages) > 0
}

// CanSubmit reports whether Submit would be accepted.
func (s State) CanSubmit() bool {
	return !s.AwaitingReply
}
