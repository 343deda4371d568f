package usecase

import (
	"strings"

	"golang.org/x/net/html"

	"icpc-contest/internal/domain/model"
)

const defaultPreviewLength = 420

func formatProblemReview(p model.Problem, limit int) model.Notification {
	tags := "none"
	if len(p.Tags) > 0 {
		tags = strings.Join(p.Tags, ", ")
	}

	return model.Notification{
		Title: "Problem Review",
		Fields: []model.NotificationField{
			{Name: "Statement", Value: preview(p.Statement, limit)},
			{Name: "Test cases", Value: preview(p.TestCases, limit)},
			{Name: "Sample solutions", Value: preview(p.SampleSolutions, limit)},
			{Name: "Difficulty", Value: orNone(p.Difficulty)},
			{Name: "Tags", Value: tags},
			{Name: "Hints", Value: preview(p.Hints, limit)},
		},
	}
}

func formatTeamSummary(t model.Team) model.Notification {
	members := "none"
	if len(t.Members) > 0 {
		members = strings.Join(t.MemberNames(), ", ")
	}

	return model.Notification{
		Title: "Team Summary",
		Fields: []model.NotificationField{
			{Name: "Team", Value: t.Name},
			{Name: "University", Value: t.University},
			{Name: "Members", Value: members},
		},
	}
}

// preview renders text that may contain HTML markup as one summarised line.
func preview(content string, limit int) string {
	return orNone(summarizeText(htmlToText(content), limit))
}

func orNone(value string) string {
	if strings.TrimSpace(value) == "" {
		return "none"
	}
	return value
}

func summarizeText(content string, limit int) string {
	clean := strings.Join(strings.Fields(content), " ")
	if clean == "" {
		return ""
	}

	runes := []rune(clean)
	if limit <= 0 || len(runes) <= limit {
		return clean
	}

	trimmed := string(runes[:limit])
	lastSpace := strings.LastIndex(trimmed, " ")
	if lastSpace > 0 {
		trimmed = trimmed[:lastSpace]
	}

	return trimmed + "..."
}

// markupElements are the tags that mark text as HTML. Single-letter tags such
// as b and i are left out: "a<b" is more likely an inequality.
var markupElements = map[string]struct{}{
	"p": {}, "br": {}, "li": {}, "ul": {}, "ol": {}, "code": {}, "pre": {},
	"em": {}, "strong": {}, "sub": {}, "sup": {}, "div": {}, "span": {},
}

// hasMarkup reports whether the tokenizer finds at least one known element.
func hasMarkup(input string) bool {
	if !strings.ContainsRune(input, '<') {
		return false
	}

	z := html.NewTokenizer(strings.NewReader(input))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return false
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			if _, ok := markupElements[string(name)]; ok {
				return true
			}
		}
	}
}

// htmlToText returns input unchanged unless it contains known markup.
func htmlToText(input string) string {
	if !hasMarkup(input) {
		return input
	}

	node, err := html.Parse(strings.NewReader(input))
	if err != nil {
		return input
	}

	var builder strings.Builder
	extractText(node, &builder)
	return builder.String()
}

func extractText(node *html.Node, builder *strings.Builder) {
	switch node.Type {
	case html.TextNode:
		builder.WriteString(node.Data)
	case html.ElementNode:
		if node.Data == "br" || node.Data == "p" || node.Data == "li" {
			builder.WriteRune('\n')
		}
	}

	for child := node.FirstChild; child != nil; child = child.NextSibling {
		extractText(child, builder)
	}

	if node.Type == html.ElementNode && (node.Data == "p" || node.Data == "li") {
		builder.WriteRune('\n')
	}
}
