package render

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/itchan-dev/threadline/shared/domain"
)

// entry is one row of a rendered page: a record or a gap marker.
type entry struct {
	Gap    string
	Id     string
	Author string
	At     string
	Body   template.HTML
}

type page struct {
	Title   string
	Meta    string
	Entries []entry
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{.Title}}</title></head>
<body>
<h1>{{.Title}}</h1>
<p class="meta">{{.Meta}}</p>
{{- range .Entries}}
{{- if .Gap}}
<div class="gap">{{.Gap}}</div>
{{- else}}
<article id="{{.Id}}">
<header><span class="author">{{.Author}}</span> <time>{{.At}}</time></header>
<div class="body">{{.Body}}</div>
</article>
{{- end}}
{{- end}}
</body>
</html>
`))

const timeLayout = "2006-01-02 15:04:05 MST"

// Renderer produces standalone HTML pages for threads and conversations.
type Renderer struct {
	text *TextProcessor
	loc  *time.Location
}

func NewRenderer(text *TextProcessor, loc *time.Location) *Renderer {
	if loc == nil {
		loc = time.UTC
	}
	return &Renderer{text: text, loc: loc}
}

// Thread renders posts newest-first. A significant gap between two posts is
// shown as a marker between them.
func (r *Renderer) Thread(t *domain.Thread) (string, error) {
	p := page{
		Title: fmt.Sprintf("Thread %s", t.RootId),
		Meta:  fmt.Sprintf("%d posts, root %s", len(t.Posts), t.RootReason),
	}
	gaps := significantGaps(t.Annotations)
	for i, post := range t.NewestFirst().All() {
		pos := len(t.Posts) - 1 - i // oldest-first index
		p.Entries = append(p.Entries, entry{
			Id:     post.Id,
			Author: post.Author(),
			At:     post.CreatedAt.In(r.loc).Format(timeLayout),
			Body:   template.HTML(r.text.Render(post.Text)),
		})
		if gap, ok := gaps[pos]; ok {
			p.Entries = append(p.Entries, entry{Gap: gap})
		}
	}
	return execute(p)
}

// Conversation renders messages oldest-first with participant labels in place of sender ids.
func (r *Renderer) Conversation(c *domain.Conversation) (string, error) {
	p := page{
		Title: fmt.Sprintf("Conversation %s", c.Id),
		Meta:  fmt.Sprintf("%d messages, %d participants", len(c.Messages), len(c.Participants)),
	}
	gaps := significantGaps(c.Annotations)
	for i, m := range c.Chronological().All() {
		if gap, ok := gaps[i]; ok {
			p.Entries = append(p.Entries, entry{Gap: gap})
		}
		p.Entries = append(p.Entries, entry{
			Id:     m.Id,
			Author: "Participant " + c.Label(m.SenderId),
			At:     m.CreatedAt.In(r.loc).Format(timeLayout),
			Body:   template.HTML(r.text.Render(m.Text)),
		})
	}
	return execute(p)
}

// significantGaps maps the index of the later item to its gap description.
func significantGaps(annotations []domain.TemporalAnnotation) map[int]string {
	gaps := make(map[int]string)
	for _, a := range annotations {
		if a.IsSignificant {
			gaps[a.Index] = a.RelativeDescription
		}
	}
	return gaps
}

func execute(p page) (string, error) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, p); err != nil {
		return "", fmt.Errorf("failed to render page: %w", err)
	}
	return buf.String(), nil
}
