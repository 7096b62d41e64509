// Package feed serves the read-only dashboard feeds: market snapshot, news,
// sentiment analysis, cyber threats and learning modules.
//
// The data is a static dataset embedded in the binary. It can be read through
// typed accessors or queried with JSONPath expressions.
package feed

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

//go:embed data.json
var data []byte

// Index is a market index quote.
type Index struct {
	Value         float64 `json:"value"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"` // as a ratio, 0.0043 is 0.43%
}

// SectorMove is the daily change of a sector, in percent.
type SectorMove struct {
	Name   string  `json:"name"`
	Change float64 `json:"change"`
}

// Market is the market snapshot.
type Market struct {
	Nifty           Index        `json:"nifty"`
	Sensex          Index        `json:"sensex"`
	SentimentScore  int          `json:"sentimentScore"` // 0 to 100
	VolatileSectors []SectorMove `json:"volatileSectors"`
}

// Tone is the sentiment attached to a piece of text.
type Tone string

const (
	Positive Tone = "positive"
	Neutral  Tone = "neutral"
	Negative Tone = "negative"
)

// News is a headline.
type News struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	Time      string `json:"time"`
	Sentiment Tone   `json:"sentiment"`
}

// Phrase is a key phrase found by sentiment analysis.
type Phrase struct {
	Text      string `json:"text"`
	Sentiment Tone   `json:"sentiment"`
}

// SectorScore is the sentiment score of a sector, 0 to 100.
type SectorScore struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Sentiment is the market sentiment analysis.
type Sentiment struct {
	Overall    int           `json:"overall"`
	Confidence int           `json:"confidence"`
	Phrases    []Phrase      `json:"phrases"`
	Sectors    []SectorScore `json:"sectors"`
}

// Threat is a reported cyber threat.
type Threat struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Severity       Severity `json:"severity"`
	Company        string   `json:"company"`
	Date           string   `json:"date"`
	Description    string   `json:"description"`
	Impact         string   `json:"impact"`
	Recommendation string   `json:"recommendation"`
}

// Module is a learning module.
type Module struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Duration    string   `json:"duration"`
	Difficulty  string   `json:"difficulty"`
	Progress    int      `json:"progress"` // percent completed
	Lessons     []string `json:"lessons"`
}

// Dataset holds every feed.
type Dataset struct {
	Market    Market    `json:"market"`
	News      []News    `json:"news"`
	Sentiment Sentiment `json:"sentiment"`
	Threats   []Threat  `json:"threats"`
	Learning  []Module  `json:"learning"`
}

// Load returns the embedded dataset.
func Load() (*Dataset, error) {
	return Decode(data)
}

// Decode reads a dataset from its JSON form.
func Decode(src []byte) (*Dataset, error) {
	dec := json.NewDecoder(bytes.NewReader(src))
	dec.DisallowUnknownFields()
	var d Dataset
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("decoding feeds: %w", err)
	}
	for _, t := range d.Threats {
		if !t.Severity.Valid() {
			return nil, fmt.Errorf("threat %q: unknown severity %q", t.ID, t.Severity)
		}
	}
	return &d, nil
}

// Query evaluates a JSONPath expression against the embedded dataset, e.g.
// "$.market.nifty.value" or "$.threats[*].company".
func Query(path string) (any, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("decoding feeds: %w", err)
	}
	res, err := jsonpath.Get(path, v)
	if err != nil {
		return nil, fmt.Errorf("query %q: %w", path, err)
	}
	return res, nil
}

// ThreatsAtLeast returns the threats at or above 'min' severity, most severe first.
// Threats of equal severity keep the dataset order.
func (d *Dataset) ThreatsAtLeast(min Severity) []Threat {
	var res []Threat
	for _, t := range d.Threats {
		if t.Severity.AtLeast(min) {
			res = append(res, t)
		}
	}
	slices.SortStableFunc(res, func(a, b Threat) int {
		return b.Severity.rank() - a.Severity.rank()
	})
	return res
}

// Module returns the learning module with 'id'.
func (d *Dataset) Module(id string) (Module, bool) {
	i := slices.IndexFunc(d.Learning, func(m Module) bool { return m.ID == id })
	if i < 0 {
		return Module{}, false
	}
	return d.Learning[i], true
}

// Severity of a threat.
type Severity string

const (
	Low      Severity = "low"
	Medium   Severity = "medium"
	High     Severity = "high"
	Critical Severity = "critical"
)

var severities = []Severity{Low, Medium, High, Critical}

// ParseSeverity parses a severity name, case insensitive.
func ParseSeverity(s string) (Severity, error) {
	sev := Severity(strings.ToLower(strings.TrimSpace(s)))
	if !sev.Valid() {
		return "", fmt.Errorf("unknown severity %q (want low, medium, high or critical)", s)
	}
	return sev, nil
}

// Valid reports whether s is a known severity.
func (s Severity) Valid() bool { return s.rank() >= 0 }

// AtLeast reports whether s is as severe as 'min' or more.
func (s Severity) AtLeast(min Severity) bool { return s.rank() >= min.rank() }

func (s Severity) rank() int { return slices.Index(severities, s) }
