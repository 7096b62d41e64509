// Package finbot answers financial questions from a fixed knowledge base.
//
// There is no language model involved: a question is lowercased and matched
// by substring containment, first against the knowledge base topics, then
// against broader keyword categories, and falls back to a generic answer.
// The same question always gets the same answer.
package finbot

import (
	"fmt"
	"strings"
)

// Reply is the answer to a question.
type Reply struct {
	Topic    string // matched topic, empty for the fallback
	Response string
	FollowUp string // optional next question
}

// Category maps a group of keywords to the topic that covers them.
type Category struct {
	Name     string
	Keywords []string // lowercase
	Topic    string
}

// Categories are checked in this order, after every topic failed.
var Categories = []Category{
	{Name: "valuation", Keywords: []string{"p/e", "pe ratio", "price earning"}, Topic: "what is p/e ratio"},
	{Name: "psychology", Keywords: []string{"psychology", "emotion", "behavior"}, Topic: "market psychology"},
	{Name: "allocation", Keywords: []string{"allocation", "diversif", "portfolio"}, Topic: "asset allocation"},
	{Name: "security", Keywords: []string{"cyber", "security", "safe"}, Topic: "cybersecurity tips"},
	{Name: "budgeting", Keywords: []string{"budget", "invest", "money"}, Topic: "budgeting"},
}

// Fallback is the answer to questions that match nothing.
var Fallback = Reply{
	Response: "I'd be happy to help! I can provide information about:\n\n" +
		"• Financial ratios (P/E, P/B, EPS)\n" +
		"• Market psychology and behavioral finance\n" +
		"• Asset allocation and portfolio diversification\n" +
		"• Cybersecurity best practices for trading\n" +
		"• Investment budgeting and planning\n\n" +
		"Please ask me about any of these topics!",
	FollowUp: "What specific financial topic interests you most?",
}

// Greeting opens a conversation.
const Greeting = "Hello! I'm FinBot, your AI financial assistant. I can help you with financial concepts, market psychology, investment strategies, and cybersecurity tips. What would you like to learn about?"

// suggestions are ready-made questions, one per topic.
var suggestions = []string{
	"What is P/E ratio?",
	"Market psychology tips",
	"Asset allocation basics",
	"Cybersecurity for trading",
	"Budgeting for investments",
}

// Resolver answers questions. It holds no mutable state and is safe for
// concurrent use.
type Resolver struct {
	kb         *KnowledgeBase
	categories []Category
	fallback   Reply
}

// New creates a Resolver. Every category must point to a topic of 'kb'.
func New(kb *KnowledgeBase, categories []Category, fallback Reply) (*Resolver, error) {
	cats := make([]Category, len(categories))
	for i, c := range categories {
		if _, ok := kb.Lookup(c.Topic); !ok {
			return nil, fmt.Errorf("category %q points to unknown topic %q", c.Name, c.Topic)
		}
		keywords := make([]string, 0, len(c.Keywords))
		for _, k := range c.Keywords {
			if k = strings.ToLower(k); k != "" {
				keywords = append(keywords, k)
			}
		}
		cats[i] = Category{Name: c.Name, Keywords: keywords, Topic: strings.ToLower(c.Topic)}
	}
	return &Resolver{kb: kb, categories: cats, fallback: fallback}, nil
}

var defaultResolver = must(New(must(ParseKnowledge(knowledge)), Categories, Fallback))

// Default returns the Resolver over the built-in knowledge base.
func Default() *Resolver { return defaultResolver }

// Resolve answers 'question'.
//
// The lowercased question is matched, first match wins:
//  1. against every topic, in knowledge base order;
//  2. against the keywords of every category, in order;
//  3. otherwise the fallback is returned.
//
// A question containing several topics gets the answer of the one listed
// first in the knowledge base, whatever their positions in the question.
func (r *Resolver) Resolve(question string) Reply {
	q := strings.ToLower(question)
	for _, e := range r.kb.entries {
		if strings.Contains(q, e.Topic) {
			return reply(e)
		}
	}
	for _, c := range r.categories {
		for _, k := range c.Keywords {
			if strings.Contains(q, k) {
				e, _ := r.kb.Lookup(c.Topic)
				return reply(e)
			}
		}
	}
	return r.fallback
}

// Topics returns the knowledge base topics, in matching order.
func (r *Resolver) Topics() []string { return r.kb.Topics() }

// Suggestions returns ready-made questions a user can pick from.
func (r *Resolver) Suggestions() []string {
	return append([]string(nil), suggestions...)
}

func reply(e Entry) Reply {
	return Reply{Topic: e.Topic, Response: e.Response, FollowUp: e.FollowUp}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
