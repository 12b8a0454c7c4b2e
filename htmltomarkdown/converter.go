// Package htmltomarkdown renders extracted article HTML as Markdown for
// reports and CLI output.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/strikethrough"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/digest"
)

var _ digest.Converter = (*Converter)(nil)

// noise matches elements extractors commonly leave inside article bodies.
// Images go too: a report is read as text.
const noise = "script, style, noscript, iframe, svg, img, picture, video, audio, " +
	"form, button, aside, nav, " +
	"[class*=share], [class*=newsletter], [class*=related], [aria-hidden=true]"

// Converter turns article HTML into Markdown without page furniture.
type Converter struct {
	conv *converter.Converter
}

// NewConverter returns a Converter with CommonMark, strikethrough and table
// support.
func NewConverter() *Converter {
	return &Converter{conv: converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			strikethrough.NewStrikethroughPlugin(),
			table.NewTablePlugin(),
		),
	)}
}

// Convert strips noise from html and renders the rest as Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", digest.Errorf(digest.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", digest.Errorf(digest.EINVALID, "could not parse HTML: %v", err)
	}
	doc.Find(noise).Remove()

	body, err := doc.Find("body").Html()
	if err != nil {
		return "", err
	}

	md, err := c.conv.ConvertString(body)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(md), nil
}
