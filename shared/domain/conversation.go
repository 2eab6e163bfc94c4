package domain

// ParticipantLabels maps a sender id to its conversation-local label.
type ParticipantLabels map[UserId]ParticipantLabel

// Conversation holds all messages sharing one conversation id, oldest-first.
type Conversation struct {
	Id           ConversationId
	Messages     []*Message
	Participants []UserId // distinct senders in order of first appearance
	Labels       ParticipantLabels
	Annotations  []TemporalAnnotation
	Stats        ResponseTimeStats
}

func (c *Conversation) Chronological() View[*Message] {
	return View[*Message]{items: c.Messages}
}

// Label returns the participant label for a sender, or the raw id when unlabeled.
func (c *Conversation) Label(sender UserId) string {
	if l, ok := c.Labels[sender]; ok {
		return l
	}
	return sender
}
