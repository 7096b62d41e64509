package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/finpulse/feed"
	md "github.com/nao1215/markdown"
)

// MarketMarkdown renders the market snapshot.
func MarketMarkdown(m feed.Market) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Market Overview")
	doc.Table(md.TableSet{
		Header: []string{"Index", "Value", "Change", "Change %"},
		Rows: [][]string{
			indexRow("NIFTY 50", m.Nifty),
			indexRow("SENSEX", m.Sensex),
		},
	})
	doc.PlainText(fmt.Sprintf("Market sentiment: %s (%d/100)", mood(m.SentimentScore), m.SentimentScore))

	doc.H2("Volatile Sectors")
	table := md.TableSet{
		Header: []string{"Sector", "Change"},
		Rows:   [][]string{},
	}
	for _, s := range m.VolatileSectors {
		table.Rows = append(table.Rows, []string{s.Name, fmt.Sprintf("%+.1f%%", s.Change)})
	}
	doc.Table(table)

	return doc.String()
}

func indexRow(name string, i feed.Index) []string {
	return []string{
		name,
		fmt.Sprintf("%.2f", i.Value),
		fmt.Sprintf("%+.2f", i.Change),
		fmt.Sprintf("%+.2f%%", i.ChangePercent*100),
	}
}

// mood names a 0-100 sentiment score.
func mood(score int) string {
	switch {
	case score >= 60:
		return "Bullish"
	case score <= 40:
		return "Bearish"
	}
	return "Neutral"
}

// NewsMarkdown renders the headlines.
func NewsMarkdown(news []feed.News) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Latest News")
	for _, n := range news {
		doc.H3(n.Title)
		doc.PlainText(fmt.Sprintf("%s %s", md.Italic(n.Time), md.Code(string(n.Sentiment))))
		doc.LF()
		doc.PlainText(n.Summary)
	}

	return doc.String()
}

// SentimentMarkdown renders the sentiment analysis.
func SentimentMarkdown(s feed.Sentiment) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Sentiment Analysis")
	doc.PlainText(fmt.Sprintf("Overall: %s (%d/100), confidence %d%%", mood(s.Overall), s.Overall, s.Confidence))

	doc.H2("Key Phrases")
	phrases := make([]string, 0, len(s.Phrases))
	for _, p := range s.Phrases {
		phrases = append(phrases, fmt.Sprintf("%s %s", p.Text, md.Italic(string(p.Sentiment))))
	}
	doc.BulletList(phrases...)

	doc.H2("Sectors")
	table := md.TableSet{
		Header: []string{"Sector", "Score", "Mood"},
		Rows:   [][]string{},
	}
	for _, sec := range s.Sectors {
		table.Rows = append(table.Rows, []string{sec.Name, fmt.Sprint(sec.Score), mood(sec.Score)})
	}
	doc.Table(table)

	return doc.String()
}

// ThreatsMarkdown renders cyber threats.
func ThreatsMarkdown(threats []feed.Threat) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Cyber Threats")
	if len(threats) == 0 {
		doc.PlainText("No threat at this severity.")
		return doc.String()
	}
	for _, t := range threats {
		doc.H3(fmt.Sprintf("%s [%s]", t.Title, strings.ToUpper(string(t.Severity))))
		doc.PlainText(t.Description)
		doc.LF()
		doc.BulletList(
			fmt.Sprintf("Company: %s", t.Company),
			fmt.Sprintf("Date: %s", t.Date),
			fmt.Sprintf("Impact: %s", t.Impact),
			fmt.Sprintf("Recommendation: %s", t.Recommendation),
		)
	}

	return doc.String()
}

// LearningMarkdown renders the learning modules with their progress.
func LearningMarkdown(modules []feed.Module) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Learning Modules")
	table := md.TableSet{
		Header: []string{"ID", "Module", "Difficulty", "Duration", "Progress"},
		Rows:   [][]string{},
	}
	for _, m := range modules {
		table.Rows = append(table.Rows, []string{m.ID, m.Title, m.Difficulty, m.Duration, fmt.Sprintf("%d%%", m.Progress)})
	}
	doc.Table(table)

	return doc.String()
}

// ModuleMarkdown renders a learning module and its lessons.
func ModuleMarkdown(m feed.Module) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(m.Title)
	doc.PlainText(m.Description)
	doc.LF()
	doc.PlainText(fmt.Sprintf("%s, %s, %d%% done.", m.Difficulty, m.Duration, m.Progress))
	doc.H2("Lessons")
	doc.OrderedList(m.Lessons...)

	return doc.String()
}
