package finbot

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

//go:embed knowledge.md
var knowledge []byte

// Entry is one topic of the knowledge base.
type Entry struct {
	Topic    string // lowercase phrase looked for in the question
	Response string
	FollowUp string // optional
}

// KnowledgeBase is an ordered, read-only list of entries with unique topics.
type KnowledgeBase struct {
	entries []Entry
	index   map[string]int
}

// ParseKnowledge reads a knowledge base from a markdown document.
//
// Every level 2 heading starts an entry, its text is the topic. The
// paragraphs that follow are the response, a block quote is the follow-up.
// Anything before the first level 2 heading is ignored. Entries keep the
// document order.
func ParseKnowledge(src []byte) (*KnowledgeBase, error) {
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	kb := &KnowledgeBase{index: make(map[string]int)}
	var current *Entry
	var responses []string

	flush := func() error {
		if current == nil {
			return nil
		}
		current.Response = strings.Join(responses, "\n\n")
		if current.Response == "" {
			return fmt.Errorf("topic %q has no response", current.Topic)
		}
		kb.index[current.Topic] = len(kb.entries)
		kb.entries = append(kb.entries, *current)
		current, responses = nil, nil
		return nil
	}

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch n := n.(type) {
		case *ast.Heading:
			if n.Level != 2 {
				continue
			}
			if err := flush(); err != nil {
				return nil, err
			}
			topic := strings.ToLower(blockText(n, src))
			if topic == "" {
				return nil, fmt.Errorf("empty topic heading")
			}
			if _, exists := kb.index[topic]; exists {
				return nil, fmt.Errorf("topic %q is already defined", topic)
			}
			current = &Entry{Topic: topic}
		case *ast.Paragraph:
			if current != nil {
				responses = append(responses, blockText(n, src))
			}
		case *ast.Blockquote:
			if current == nil {
				continue
			}
			if current.FollowUp != "" {
				return nil, fmt.Errorf("topic %q has more than one follow-up", current.Topic)
			}
			var parts []string
			for c := n.FirstChild(); c != nil; c = c.NextSibling() {
				parts = append(parts, blockText(c, src))
			}
			current.FollowUp = strings.Join(parts, " ")
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if len(kb.entries) == 0 {
		return nil, fmt.Errorf("knowledge base has no topic")
	}
	return kb, nil
}

// blockText returns the raw source text of a block, soft line breaks joined by a space.
func blockText(n ast.Node, src []byte) string {
	lines := n.Lines()
	parts := make([]string, 0, lines.Len())
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		if s := strings.TrimSpace(string(seg.Value(src))); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// Entries returns the entries in table order.
func (kb *KnowledgeBase) Entries() []Entry {
	return append([]Entry(nil), kb.entries...)
}

// Lookup returns the entry of a topic.
func (kb *KnowledgeBase) Lookup(topic string) (Entry, bool) {
	i, ok := kb.index[strings.ToLower(topic)]
	if !ok {
		return Entry{}, false
	}
	return kb.entries[i], true
}

// Topics returns the topics in table order.
func (kb *KnowledgeBase) Topics() []string {
	topics := make([]string, len(kb.entries))
	for i, e := range kb.entries {
		topics[i] = e.Topic
	}
	return topics
}
