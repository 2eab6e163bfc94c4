package domain

import "time"

// Engagement carries opaque numeric counters (likes, reposts, ...) through unmodified.
type Engagement map[string]int64

// Post is a single public message as produced by the upstream normalizer.
type Post struct {
	Id              PostId     `json:"id" validate:"required"`
	AuthorId        AuthorId   `json:"author_id,omitempty" validate:"required_without=AuthorHandle"`
	AuthorHandle    string     `json:"author_handle,omitempty" validate:"required_without=AuthorId"`
	CreatedAt       time.Time  `json:"created_at" validate:"required"`
	Text            string     `json:"text"`
	ReplyToId       *PostId    `json:"reply_to_id,omitempty"`
	ReplyToAuthorId *AuthorId  `json:"reply_to_author_id,omitempty"`
	Engagement      Engagement `json:"engagement,omitempty"`
}

func (p *Post) Timestamp() time.Time {
	return p.CreatedAt
}

// Author returns the account identifier, falling back to the handle.
func (p *Post) Author() AuthorId {
	if p.AuthorId != "" {
		return p.AuthorId
	}
	return p.AuthorHandle
}

// ReplyTo returns the replied-to post id, if any.
func (p *Post) ReplyTo() (PostId, bool) {
	if p.ReplyToId == nil || *p.ReplyToId == "" {
		return "", false
	}
	return *p.ReplyToId, true
}

// ReplyToAuthor returns the replied-to author id, if specified.
func (p *Post) ReplyToAuthor() (AuthorId, bool) {
	if p.ReplyToAuthorId == nil || *p.ReplyToAuthorId == "" {
		return "", false
	}
	return *p.ReplyToAuthorId, true
}

func (p *Post) IsReply() bool {
	_, ok := p.ReplyTo()
	return ok
}
