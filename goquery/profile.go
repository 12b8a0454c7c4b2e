package goquery

import "strings"

// Profile lists the CSS selectors tried for one kind of site, in order.
type Profile struct {
	// Domain is matched as a substring of the page host.
	Domain string

	Content []string
	Title   []string
	Authors []string
}

// GenericProfile applies to every page after any domain-specific profile.
var GenericProfile = Profile{
	Content: []string{
		"article", `[role="main"]`, ".content", ".post-content", ".entry-content",
		".article-content", ".story-body", "main", "#content", "#main", ".post",
		".entry", ".paper-content", ".abstract", ".article-body", ".full-text",
		".main-content", ".abstract-text", ".paper-abstract", ".research-paper",
		".academic-content",
	},
	Title: []string{
		"title", "h1", ".headline", ".article-title", ".entry-title", ".post-title",
		`[property="og:title"]`, ".paper-title", ".publication-title", ".citation-title",
	},
	Authors: []string{
		".author", ".authors", ".byline", `[rel="author"]`, ".entry-author",
		".post-author", `[property="author"]`, `[property="article:author"]`,
		".citation-authors", ".paper-authors", ".contributor-list",
	},
}

// AcademicProfiles cover publishers whose papers use their own markup.
var AcademicProfiles = []Profile{
	{
		Domain: "dl.acm.org",
		Content: []string{
			".abstract", ".abstractSection", ".article__abstract", ".article-content",
			".content", ".main-content", ".paper-abstract", ".paper-content", ".full-text",
			".section-content", ".article-body", ".paper-body", ".article-section", ".paper-section",
		},
		Title:   []string{"h1", ".paper-title", ".article-title", ".citation__title", ".publication-title", ".paper-header-title"},
		Authors: []string{".author", ".authors", ".citation-authors", ".paper-authors", ".author-list", ".contributor-list", ".byline"},
	},
	{
		Domain:  "arxiv.org",
		Content: []string{".abstract", ".content", ".paper-content", ".article-content", ".main-content", ".abstract-text"},
		Title:   []string{"h1", ".title", ".paper-title", ".article-title"},
		Authors: []string{".authors", ".author", ".paper-authors", ".byline"},
	},
	{
		Domain:  "ieee.org",
		Content: []string{".abstract", ".article-content", ".paper-content", ".full-text", ".article-body", ".abstract-text"},
		Title:   []string{"h1", ".paper-title", ".article-title", ".title"},
		Authors: []string{".authors", ".author", ".paper-authors", ".byline"},
	},
	{
		Domain:  "springer.com",
		Content: []string{".abstract", ".main-content", ".article-content", ".content", ".paper-content", ".abstract-text"},
		Title:   []string{"h1", ".article-title", ".paper-title", ".title"},
		Authors: []string{".authors", ".author", ".paper-authors", ".byline"},
	},
	{
		Domain:  "sciencedirect.com",
		Content: []string{".abstract", ".article-content", ".paper-content", ".full-text", ".article-body", ".abstract-text"},
		Title:   []string{"h1", ".article-title", ".paper-title", ".title"},
		Authors: []string{".authors", ".author", ".paper-authors", ".byline"},
	},
	{
		Domain:  "researchgate.net",
		Content: []string{".abstract", ".content", ".paper-content", ".article-content", ".abstract-text"},
	},
	{
		Domain:  "academia.edu",
		Content: []string{".abstract", ".content", ".paper-content", ".article-content", ".abstract-text"},
	},
}

// Registry matches page hosts to site profiles.
type Registry struct {
	profiles []Profile
	generic  Profile
}

// NewRegistry creates a Registry that falls back to generic.
func NewRegistry(generic Profile, profiles ...Profile) *Registry {
	return &Registry{profiles: profiles, generic: generic}
}

// DefaultRegistry returns the registry with the built-in academic profiles.
func DefaultRegistry() *Registry {
	return NewRegistry(GenericProfile, AcademicProfiles...)
}

// Register adds a profile. Earlier profiles win when several match.
func (r *Registry) Register(p Profile) {
	r.profiles = append(r.profiles, p)
}

// ForHost returns the selectors to try for host: the first matching
// profile's selectors followed by the generic ones.
func (r *Registry) ForHost(host string) Profile {
	out := Profile{Domain: host}
	for _, p := range r.profiles {
		if p.Domain != "" && strings.Contains(host, p.Domain) {
			out.Content = append(out.Content, p.Content...)
			out.Title = append(out.Title, p.Title...)
			out.Authors = append(out.Authors, p.Authors...)
			break
		}
	}
	out.Content = append(out.Content, r.generic.Content...)
	out.Title = append(out.Title, r.generic.Title...)
	out.Authors = append(out.Authors, r.generic.Authors...)
	return out
}
