package fs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/itchan-dev/threadline/shared/domain"
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"Mon Jan 02 15:04:05 -0700 2006",
}

// timestamp accepts the layouts upstream exporters produce, or unix seconds.
type timestamp time.Time

func (ts *timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] != '"' {
		secs, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrTimestamp, data)
		}
		whole := int64(secs)
		*ts = timestamp(time.Unix(whole, int64((secs-float64(whole))*1e9)).UTC())
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			*ts = timestamp(t)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrTimestamp, s)
}

// postLine shadows CreatedAt so the loose timestamp decoder is used.
type postLine struct {
	domain.Post
	CreatedAt timestamp `json:"created_at"`
}

func (l *postLine) record() domain.Post {
	p := l.Post
	p.CreatedAt = time.Time(l.CreatedAt)
	if p.ReplyToId != nil && *p.ReplyToId == "" {
		p.ReplyToId = nil
	}
	if p.ReplyToAuthorId != nil && *p.ReplyToAuthorId == "" {
		p.ReplyToAuthorId = nil
	}
	return p
}

type messageLine struct {
	domain.Message
	CreatedAt timestamp `json:"created_at"`
}

func (l *messageLine) record() domain.Message {
	m := l.Message
	m.CreatedAt = time.Time(l.CreatedAt)
	return m
}
