// Package sentiment classifies comment text with VADER.
package sentiment

import (
	"html"
	"regexp"
	"strings"

	"github.com/abelbrown/sentiscope/internal/dataset"
	"github.com/jonreiter/govader"
	"github.com/microcosm-cc/bluemonday"
	"github.com/russross/blackfriday/v2"
)

// Compound score cut-offs. Scores strictly between them are Neutral.
const (
	PositiveThreshold = 0.20
	NegativeThreshold = -0.20
)

var (
	analyzer = govader.NewSentimentIntensityAnalyzer()
	stripper = bluemonday.StripTagsPolicy()

	mdLinkPattern = regexp.MustCompile(`\[(.*?)\]\((https?://[^\s)]+)\)`)
	urlPattern    = regexp.MustCompile(`https?://\S+|www\.\S+`)
)

// Clean turns a raw comment body (markdown, possibly with HTML entities or
// tags) into plain text with links removed.
func Clean(body string) string {
	body = html.UnescapeString(body)
	body = mdLinkPattern.ReplaceAllString(body, "$1")

	rendered := blackfriday.Run([]byte(body), blackfriday.WithNoExtensions())
	text := stripper.Sanitize(string(rendered))
	text = html.UnescapeString(text)

	text = urlPattern.ReplaceAllString(text, "")
	return strings.Join(strings.Fields(text), " ")
}

// Score returns the VADER compound score of body in [-1, 1].
func Score(body string) float64 {
	return analyzer.PolarityScores(Clean(body)).Compound
}

// Label maps a compound score to a category.
func Label(score float64) dataset.Category {
	switch {
	case score >= PositiveThreshold:
		return dataset.Positive
	case score <= NegativeThreshold:
		return dataset.Negative
	default:
		return dataset.Neutral
	}
}

// Classify scores body and labels it.
func Classify(body string) (float64, dataset.Category) {
	score := Score(body)
	return score, Label(score)
}
