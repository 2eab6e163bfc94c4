package crypto

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/itchan-dev/threadline/shared/domain"
	"golang.org/x/crypto/blake2b"
)

const tokenSize = 16

var ErrInvalidKey = fmt.Errorf("anonymize key must be 1..%d bytes", blake2b.Size)

// Anonymizer replaces identifiers with keyed BLAKE2b digests. Equal inputs map
// to equal tokens under one key, so reply pointers and conversation grouping
// survive the transform. Safe for concurrent use.
type Anonymizer struct {
	key []byte
}

func NewAnonymizer(key string) (*Anonymizer, error) {
	if len(key) == 0 || len(key) > blake2b.Size {
		return nil, ErrInvalidKey
	}
	return &Anonymizer{key: []byte(key)}, nil
}

// Token returns the hex token for id. Empty stays empty.
func (a *Anonymizer) Token(id string) string {
	if id == "" {
		return ""
	}
	h, err := blake2b.New256(a.key)
	if err != nil {
		// key length is checked in NewAnonymizer
		panic(errors.Join(ErrInvalidKey, err))
	}
	h.Write([]byte(id))
	return hex.EncodeToString(h.Sum(nil)[:tokenSize])
}

func (a *Anonymizer) tokenPtr(id *string) *string {
	if id == nil {
		return nil
	}
	t := a.Token(*id)
	return &t
}

// Post returns a copy of p with every identifier replaced. Text is untouched.
func (a *Anonymizer) Post(p domain.Post) domain.Post {
	p.Id = a.Token(p.Id)
	p.AuthorId = a.Token(p.AuthorId)
	p.AuthorHandle = a.Token(p.AuthorHandle)
	p.ReplyToId = a.tokenPtr(p.ReplyToId)
	p.ReplyToAuthorId = a.tokenPtr(p.ReplyToAuthorId)
	return p
}

func (a *Anonymizer) Message(m domain.Message) domain.Message {
	m.Id = a.Token(m.Id)
	m.ConversationId = a.Token(m.ConversationId)
	m.SenderId = a.Token(m.SenderId)
	m.RecipientId = a.Token(m.RecipientId)
	return m
}

// Batch anonymizes every record into a new batch; the input is not modified.
func (a *Anonymizer) Batch(b domain.Batch) domain.Batch {
	out := domain.Batch{
		Posts:    make([]domain.Post, len(b.Posts)),
		Messages: make([]domain.Message, len(b.Messages)),
	}
	for i, p := range b.Posts {
		out.Posts[i] = a.Post(p)
	}
	for i, m := range b.Messages {
		out.Messages[i] = a.Message(m)
	}
	return out
}
