// Package goquery implements digest.Extractor with CSS selector heuristics
// built on goquery. It is the last resort after the library extractors.
package goquery

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/digest"
)

// Extraction method names reported in results.
const (
	MethodCustom = "custom"
	MethodBasic  = "basic"
)

// MaxAuthors caps the number of authors returned.
const MaxAuthors = 10

// Minimum lengths, in characters, of accepted content.
const (
	minContentChars   = 100
	minParagraphChars = 20
	minAbstractChars  = 50
	minSectionChars   = 200
)

var (
	skipMarkers = []string{"nav", "navigation", "header", "footer", "sidebar", "menu", "breadcrumb", "social", "share", "comment"}

	sectionClassRe = regexp.MustCompile(`(?i)(content|paper|article|main|body)`)
	whitespaceRe   = regexp.MustCompile(`\s+`)

	datePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\d{4}-\d{2}-\d{2}`),
		regexp.MustCompile(`\d{2}/\d{2}/\d{4}`),
		regexp.MustCompile(`\d{1,2}\s+\w+\s+\d{4}`),
	}
)

// Ensure Extractor implements digest.Extractor at compile time.
var _ digest.Extractor = (*Extractor)(nil)

// Extractor extracts article content using site profiles.
type Extractor struct {
	registry *Registry
}

// NewExtractor creates an Extractor. A nil registry uses DefaultRegistry.
func NewExtractor(registry *Registry) *Extractor {
	if registry == nil {
		registry = DefaultRegistry()
	}
	return &Extractor{registry: registry}
}

// Extract finds the main content with the profile selectors for pageURL's
// host. When no selector yields enough text it falls back to joining every
// paragraph on the page and reports MethodBasic.
func (e *Extractor) Extract(rawHTML, pageURL string) (*digest.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, digest.Errorf(digest.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, digest.Errorf(digest.EINVALID, "failed to parse HTML: %v", err)
	}
	doc.Find("script, style, noscript").Remove()

	var host string
	if u, err := url.Parse(pageURL); err == nil {
		host = u.Host
	}
	profile := e.registry.ForHost(host)

	result := &digest.ExtractResult{
		Title:       extractTitle(doc, profile.Title),
		Authors:     extractAuthors(doc, profile.Authors),
		PublishDate: extractDate(doc),
		Method:      MethodCustom,
	}

	sel, text := mainContent(doc, profile.Content)
	if text == "" {
		text = academicContent(doc)
	}
	if text == "" {
		text = paragraphs(doc)
		result.Method = MethodBasic
	}
	if sel != nil {
		result.ContentHTML, _ = goquery.OuterHtml(sel)
	}
	result.Text = text
	return result, nil
}

// mainContent returns the first selector match whose text is long enough.
func mainContent(doc *goquery.Document, selectors []string) (*goquery.Selection, string) {
	for _, s := range selectors {
		sel := doc.Find(s).First()
		if sel.Length() == 0 {
			continue
		}
		if text := elementText(sel); len(text) > minContentChars {
			return sel, text
		}
	}
	return nil, ""
}

// academicContent stitches together abstract and body sections of papers
// that have no single content container.
func academicContent(doc *goquery.Document) string {
	var parts []string

	for _, s := range []string{".abstract", ".abstract-text", ".paper-abstract", ".article-abstract"} {
		if text := clean(doc.Find(s).First().Text()); len(text) > minAbstractChars {
			parts = append(parts, "Abstract: "+text)
		}
	}
	for _, s := range []string{".content", ".article-content", ".paper-content", ".main-content", ".article-body"} {
		if sel := doc.Find(s).First(); sel.Length() > 0 {
			if text := elementText(sel); text != "" {
				parts = append(parts, text)
			}
		}
	}
	doc.Find("section[class], div[class]").Each(func(_ int, sel *goquery.Selection) {
		class, _ := sel.Attr("class")
		if !sectionClassRe.MatchString(class) {
			return
		}
		if text := elementText(sel); len(text) > minSectionChars {
			parts = append(parts, text)
		}
	})

	combined := strings.TrimSpace(strings.Join(parts, " "))
	if len(combined) > minContentChars {
		return combined
	}
	return ""
}

// elementText joins the paragraphs of sel that are outside page chrome.
func elementText(sel *goquery.Selection) string {
	sel = sel.Clone()
	sel.Find("nav, header, footer, aside").Remove()

	var parts []string
	sel.Find("p, li, blockquote, h2, h3").Each(func(_ int, el *goquery.Selection) {
		if isChrome(el) {
			return
		}
		if text := clean(el.Text()); len(text) > minParagraphChars {
			parts = append(parts, text)
		}
	})
	if len(parts) == 0 {
		return clean(sel.Text())
	}
	return strings.Join(parts, " ")
}

// isChrome reports whether el or an ancestor is marked as navigation,
// sharing or comment markup.
func isChrome(el *goquery.Selection) bool {
	for s := el; s.Length() > 0; s = s.Parent() {
		class, _ := s.Attr("class")
		id, _ := s.Attr("id")
		marker := strings.ToLower(class + " " + id)
		for _, m := range skipMarkers {
			if strings.Contains(marker, m) {
				return true
			}
		}
	}
	return false
}

func paragraphs(doc *goquery.Document) string {
	var parts []string
	doc.Find("p").Each(func(_ int, p *goquery.Selection) {
		if text := strings.TrimSpace(p.Text()); text != "" {
			parts = append(parts, text)
		}
	})
	return strings.Join(parts, " ")
}

func extractTitle(doc *goquery.Document, selectors []string) string {
	for _, s := range selectors {
		sel := doc.Find(s).First()
		if sel.Length() == 0 {
			continue
		}
		if content, ok := sel.Attr("content"); ok && strings.TrimSpace(content) != "" {
			return strings.TrimSpace(content)
		}
		if text := clean(sel.Text()); text != "" {
			return text
		}
	}
	if content, ok := doc.Find(`meta[property="og:title"], meta[name="title"]`).First().Attr("content"); ok {
		return strings.TrimSpace(content)
	}
	return ""
}

func extractAuthors(doc *goquery.Document, selectors []string) []string {
	authors := []string{}
	seen := make(map[string]bool)
	add := func(name string) {
		name = clean(name)
		if len(name) <= 2 || seen[name] || len(authors) >= MaxAuthors {
			return
		}
		seen[name] = true
		authors = append(authors, name)
	}

	for _, s := range selectors {
		doc.Find(s).Each(func(_ int, sel *goquery.Selection) {
			if content, ok := sel.Attr("content"); ok {
				add(content)
				return
			}
			add(sel.Text())
		})
	}
	for _, s := range []string{`meta[name="author"]`, `meta[property="article:author"]`, `meta[property="author"]`} {
		content, ok := doc.Find(s).First().Attr("content")
		if !ok {
			continue
		}
		for _, name := range strings.Split(content, ",") {
			add(name)
		}
	}
	return authors
}

// extractDate returns the first date-like string in the page text.
func extractDate(doc *goquery.Document) string {
	if t, ok := doc.Find(`meta[property="article:published_time"]`).First().Attr("content"); ok && t != "" {
		return t
	}
	if t, ok := doc.Find("time[datetime]").First().Attr("datetime"); ok && t != "" {
		return t
	}
	text := doc.Text()
	for _, re := range datePatterns {
		if m := re.FindString(text); m != "" {
			return m
		}
	}
	return ""
}

func clean(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}
