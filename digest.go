// Package digest condenses news articles into extractive summaries and
// ranked keywords. The core engine scores sentences and terms with several
// independent heuristics and fuses them into one ranked result without
// relying on a generative model. An optional abstractive summary can be
// requested from a remote model as an alternate source.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, gemini/, trafilatura/).
package digest
