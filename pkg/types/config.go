package types

import "time"

// HTTPConfig holds shared HTTP settings used by skills that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "search-skills/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// WebSearchConfig holds settings for the web skill.
type WebSearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxResults is the maximum number of search results (default 5, capped at 10).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// TopN is the number of top results to fetch in combined mode (default 3).
	TopN int `json:"top_n" yaml:"top_n"`

	// FetchDelay is the delay between consecutive page fetches (default 1s).
	FetchDelay time.Duration `json:"fetch_delay" yaml:"fetch_delay"`
}

// FetchConfig holds settings for page fetching.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxLength is the maximum character length of extracted text (default 50000).
	MaxLength int `json:"max_length" yaml:"max_length"`

	// MaxBodyBytes caps how much of a response body is read (default 2 MiB).
	MaxBodyBytes int64 `json:"max_body_bytes" yaml:"max_body_bytes"`
}

// WikipediaConfig holds settings for the wikipedia skill.
type WikipediaConfig struct {
	HTTPConfig `yaml:",inline"`

	// Language is the Wikipedia language code (default "en").
	Language string `json:"language" yaml:"language"`

	// MaxLength is the maximum article content length (default 5000).
	MaxLength int `json:"max_length" yaml:"max_length"`

	// RelatedLimit is how many linked articles a search returns (default 5).
	RelatedLimit int `json:"related_limit" yaml:"related_limit"`
}

// ArxivConfig holds settings for the arxiv skill.
type ArxivConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxResults is the maximum number of search results (default 5, capped at 20).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// MaxLength is the maximum abstract length for ID lookups (default 5000).
	MaxLength int `json:"max_length" yaml:"max_length"`
}
