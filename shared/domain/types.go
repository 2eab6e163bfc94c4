package domain

type (
	PostId   = string
	AuthorId = string

	MsgId          = string
	UserId         = string
	ConversationId = string

	// ParticipantLabel is a short conversation-local token ("A", "B", ..., "AA").
	ParticipantLabel = string
)
