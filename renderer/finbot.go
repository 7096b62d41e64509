package renderer

import (
	"bytes"
	"strings"

	"github.com/etnz/finpulse/finbot"
	md "github.com/nao1215/markdown"
)

// ReplyMarkdown renders a FinBot reply. Lines starting with a bullet become a
// list, the follow-up question is quoted.
func ReplyMarkdown(r finbot.Reply) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	for _, para := range strings.Split(r.Response, "\n\n") {
		var items []string
		for _, line := range strings.Split(para, "\n") {
			if item, ok := strings.CutPrefix(line, "• "); ok {
				items = append(items, item)
			}
		}
		if len(items) > 0 {
			doc.BulletList(items...)
			continue
		}
		doc.PlainText(para)
		doc.LF()
	}
	if r.FollowUp != "" {
		doc.Blockquote(r.FollowUp)
	}

	return doc.String()
}

// SuggestionsMarkdown renders the questions a user can start with.
func SuggestionsMarkdown(suggestions []string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("Try asking")
	doc.BulletList(suggestions...)

	return doc.String()
}
