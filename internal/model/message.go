package model

// MessageSender identifies who authored a chat message.
type MessageSender string

// Message sender constants.
const (
	SenderUser MessageSender = "user"
	SenderAI   MessageSender = "ai"
)

// Message is a single advisor chat message. Messages are transient: they
// live for one advisor session and are never persisted.
type Message struct {
	Sender MessageSender
	Text   string
}
