package domain

import (
	"fmt"
	"strings"
	"time"
)

// for debug
func (p *Post) String() string {
	replyTo, _ := p.ReplyTo()
	return fmt.Sprintf("[id:%s, author:%s, created:%s, reply_to:%q, text:%s]", p.Id, p.Author(), p.CreatedAt.Format(time.StampMilli), replyTo, p.Text)
}

func (m *Message) String() string {
	return fmt.Sprintf("[id:%s, conversation:%s, sender:%s, created:%s, text:%s]", m.Id, m.ConversationId, m.SenderId, m.CreatedAt.Format(time.StampMilli), m.Text)
}

func (t *Thread) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[root:%s, reason:%s, posts:[", t.RootId, t.RootReason)
	for i, p := range t.Posts {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteString("]]\n")
	return sb.String()
}
