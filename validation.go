package digest

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Limits applied by the validation helpers.
const (
	MaxURLLength       = 2048
	MinTextLength      = 100
	MaxTextLength      = 100000
	MinReadableWords   = 20
	MinTitleLength     = 3
	MaxTitleLength     = 500
	MaxAppropriateRisk = 50
)

var (
	domainRe   = regexp.MustCompile(`^[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	wordRe     = regexp.MustCompile(`[\p{L}\p{N}_]+`)
	sentenceRe = regexp.MustCompile(`[.!?]+`)
)

// newsDomains are hostname labels of well-known news publishers.
var newsDomains = map[string]bool{
	"news": true, "cnn": true, "bbc": true, "reuters": true, "apnews": true,
	"nytimes": true, "washingtonpost": true, "theguardian": true, "bloomberg": true,
	"wsj": true, "forbes": true, "huffpost": true, "abcnews": true, "cbsnews": true,
	"nbcnews": true, "foxnews": true, "usatoday": true, "latimes": true,
	"chicagotribune": true, "bostonglobe": true, "npr": true, "pbs": true,
	"time": true, "newsweek": true, "economist": true, "ft": true,
}

// ValidateURL returns an EINVALID error if rawURL cannot point at an article.
func ValidateURL(rawURL string) error {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return Errorf(EINVALID, "URL cannot be empty")
	}
	if len(rawURL) > MaxURLLength {
		return Errorf(EINVALID, "URL is too long (max %d characters)", MaxURLLength)
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return Errorf(EINVALID, "invalid URL format: %v", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return Errorf(EINVALID, "URL must start with http:// or https://")
	}
	if u.Host == "" {
		return Errorf(EINVALID, "URL must include a domain name")
	}
	if !domainRe.MatchString(u.Host) {
		return Errorf(EINVALID, "invalid domain format")
	}
	return nil
}

// URLValidation describes a checked article URL.
type URLValidation struct {
	Valid      bool     `json:"isValid"`
	URL        string   `json:"url"`
	Domain     string   `json:"domain,omitempty"`
	IsNewsSite bool     `json:"isNewsSite"`
	Errors     []string `json:"errors"`
	Warnings   []string `json:"warnings"`
}

// CheckURL validates rawURL and collects warnings about URLs that are
// unlikely to point at a specific article.
func CheckURL(rawURL string) *URLValidation {
	v := &URLValidation{URL: rawURL, Errors: []string{}, Warnings: []string{}}
	if err := ValidateURL(rawURL); err != nil {
		v.Errors = append(v.Errors, ErrorMessage(err))
		return v
	}
	v.Valid = true

	u, _ := url.Parse(strings.TrimSpace(rawURL))
	v.Domain = u.Host
	v.IsNewsSite = IsNewsDomain(u.Host)

	if len(rawURL) < 20 {
		v.Warnings = append(v.Warnings, "URL seems unusually short")
	}
	if strings.Count(rawURL, "/") < 3 {
		v.Warnings = append(v.Warnings, "URL might not point to a specific article")
	}
	return v
}

// IsNewsDomain reports whether any label of host names a known news publisher.
func IsNewsDomain(host string) bool {
	for _, label := range strings.Split(strings.ToLower(host), ".") {
		if newsDomains[label] {
			return true
		}
	}
	return false
}

// ValidateArticleText returns an EINVALID error if text is too short, too
// long or has too little readable content to analyze.
func ValidateArticleText(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return Errorf(EINVALID, "article text cannot be empty")
	}

	n := utf8.RuneCountInString(text)
	if n < MinTextLength {
		return Errorf(EINVALID, "article text is too short (min %d characters)", MinTextLength)
	}
	if n > MaxTextLength {
		return Errorf(EINVALID, "article text is too long (max %d characters)", MaxTextLength)
	}
	if len(wordRe.FindAllString(text, -1)) < MinReadableWords {
		return Errorf(EINVALID, "article appears to contain insufficient readable content")
	}
	return nil
}

// ValidateTitle reports whether title has a plausible length.
func ValidateTitle(title string) bool {
	n := utf8.RuneCountInString(strings.TrimSpace(title))
	return n >= MinTitleLength && n <= MaxTitleLength
}

// Quality holds simple structural metrics of a text.
type Quality struct {
	WordCount         int     `json:"wordCount"`
	SentenceCount     int     `json:"sentenceCount"`
	ParagraphCount    int     `json:"paragraphCount"`
	AvgSentenceLength float64 `json:"avgSentenceLength"`
	ReadabilityScore  float64 `json:"readabilityScore"`
	LikelyArticle     bool    `json:"isLikelyArticle"`
}

// AssessQuality computes structural metrics for text.
func AssessQuality(text string) Quality {
	var q Quality
	q.WordCount = len(wordRe.FindAllString(text, -1))

	for _, s := range sentenceRe.Split(text, -1) {
		if strings.TrimSpace(s) != "" {
			q.SentenceCount++
		}
	}
	for _, p := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(p) != "" {
			q.ParagraphCount++
		}
	}

	if q.SentenceCount > 0 {
		q.AvgSentenceLength = float64(q.WordCount) / float64(q.SentenceCount)
		q.ReadabilityScore = min(100, q.AvgSentenceLength*2)
	}

	q.LikelyArticle = q.WordCount > 200 && q.SentenceCount > 5 && q.ParagraphCount > 2
	return q
}

// Content filter flags.
const (
	FlagExcessiveCaps        = "excessive_caps"
	FlagExcessivePunctuation = "excessive_punctuation"
	FlagTooShort             = "too_short"
	FlagRepetitive           = "repetitive_content"
)

// ContentFilter reports heuristics that flag low-quality text.
type ContentFilter struct {
	Appropriate bool     `json:"isAppropriate"`
	Flags       []string `json:"flags"`
	RiskScore   int      `json:"riskScore"`
}

// FilterContent scores text against shouting, punctuation noise, length
// and repetition heuristics. Text is appropriate while its risk score stays
// below MaxAppropriateRisk.
func FilterContent(text string) ContentFilter {
	f := ContentFilter{Flags: []string{}}

	total := utf8.RuneCountInString(text)
	if total > 0 {
		var upper, punct int
		for _, r := range text {
			if unicode.IsUpper(r) {
				upper++
			}
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsSpace(r) {
				punct++
			}
		}
		if float64(upper)/float64(total) > 0.3 {
			f.Flags = append(f.Flags, FlagExcessiveCaps)
			f.RiskScore += 20
		}
		if float64(punct)/float64(total) > 0.15 {
			f.Flags = append(f.Flags, FlagExcessivePunctuation)
			f.RiskScore += 10
		}
	}

	if utf8.RuneCountInString(strings.TrimSpace(text)) < 50 {
		f.Flags = append(f.Flags, FlagTooShort)
		f.RiskScore += 30
	}

	words := wordRe.FindAllString(strings.ToLower(text), -1)
	if len(words) > 0 {
		counts := make(map[string]int, len(words))
		maxCount := 0
		for _, w := range words {
			counts[w]++
			maxCount = max(maxCount, counts[w])
		}
		if float64(maxCount) > float64(len(words))*0.1 {
			f.Flags = append(f.Flags, FlagRepetitive)
			f.RiskScore += 25
		}
	}

	f.Appropriate = f.RiskScore < MaxAppropriateRisk
	return f
}

// ContentValidation is the combined verdict on an article's title and text.
type ContentValidation struct {
	Valid    bool           `json:"isValid"`
	Errors   []string       `json:"errors"`
	Warnings []string       `json:"warnings"`
	Quality  *Quality       `json:"qualityMetrics,omitempty"`
	Filter   *ContentFilter `json:"filterResults,omitempty"`
}

// ValidateContent checks title and text before they reach the summarizer.
// It never rejects the core's output, only its input.
func ValidateContent(title, text string) *ContentValidation {
	v := &ContentValidation{Errors: []string{}, Warnings: []string{}}

	if err := ValidateArticleText(text); err != nil {
		v.Errors = append(v.Errors, ErrorMessage(err))
		return v
	}

	if !ValidateTitle(title) {
		v.Warnings = append(v.Warnings, "title seems too short or too long")
	}

	quality := AssessQuality(text)
	filter := FilterContent(text)
	v.Quality = &quality
	v.Filter = &filter

	if !quality.LikelyArticle {
		v.Warnings = append(v.Warnings, "content might not be a proper article")
	}
	if !filter.Appropriate {
		v.Errors = append(v.Errors, "content flagged as inappropriate or low quality")
	}

	v.Valid = len(v.Errors) == 0
	return v
}
