package intent

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

//go:embed patterns.yaml
var defaultPatterns []byte

var ErrEmptyLibrary = errors.New("pattern library declares no intents")

// Pattern is one entry of the pattern library as declared in YAML.
type Pattern struct {
	Intent   Intent   `yaml:"intent"`
	Patterns []string `yaml:"patterns"`
}

type compiledIntent struct {
	intent   Intent
	matchers []*regexp.Regexp
}

// Library is the compiled, immutable form of a pattern declaration. Entries
// keep their declaration order.
type Library struct {
	entries []compiledIntent
}

func ParsePatterns(data []byte) ([]Pattern, error) {
	var patterns []Pattern
	if err := yaml.Unmarshal(data, &patterns); err != nil {
		return nil, fmt.Errorf("failed to parse pattern library: %w", err)
	}
	return patterns, nil
}

func LoadPatterns(path string) ([]Pattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pattern library %s: %w", path, err)
	}
	return ParsePatterns(data)
}

func DefaultPatterns() ([]Pattern, error) {
	return ParsePatterns(defaultPatterns)
}

// NewDefaultLibrary compiles the embedded pattern library, or the file at
// path when path is not empty.
func NewDefaultLibrary(path string) (*Library, error) {
	var (
		patterns []Pattern
		err      error
	)

	if path != "" {
		patterns, err = LoadPatterns(path)
	} else {
		patterns, err = DefaultPatterns()
	}
	if err != nil {
		return nil, err
	}

	return NewLibrary(patterns)
}

func NewLibrary(patterns []Pattern) (*Library, error) {
	if len(patterns) == 0 {
		return nil, ErrEmptyLibrary
	}

	seen := make(map[Intent]struct{}, len(patterns))
	entries := make([]compiledIntent, 0, len(patterns))

	for _, p := range patterns {
		if !p.Intent.IsKnown() {
			return nil, fmt.Errorf("pattern library declares unsupported intent %q", p.Intent)
		}
		if _, dup := seen[p.Intent]; dup {
			return nil, fmt.Errorf("pattern library declares intent %q more than once", p.Intent)
		}
		if len(p.Patterns) == 0 {
			return nil, fmt.Errorf("intent %q has no patterns", p.Intent)
		}
		seen[p.Intent] = struct{}{}

		matchers := make([]*regexp.Regexp, 0, len(p.Patterns))
		for _, expr := range p.Patterns {
			re, err := regexp.Compile("(?i)" + expr)
			if err != nil {
				return nil, fmt.Errorf("intent %q: invalid pattern %q: %w", p.Intent, expr, err)
			}
			matchers = append(matchers, re)
		}

		entries = append(entries, compiledIntent{intent: p.Intent, matchers: matchers})
	}

	return &Library{entries: entries}, nil
}

// Intents returns the declared intents in scan order.
func (l *Library) Intents() []Intent {
	intents := make([]Intent, 0, len(l.entries))
	for _, entry := range l.entries {
		intents = append(intents, entry.intent)
	}
	return intents
}

// Match returns the first declared intent with any pattern found in text.
func (l *Library) Match(text string) (Intent, bool) {
	for _, entry := range l.entries {
		for _, re := range entry.matchers {
			if re.MatchString(text) {
				return entry.intent, true
			}
		}
	}
	return Unknown, false
}
