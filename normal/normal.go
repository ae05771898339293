package normal

import (
	"regexp"
	"strings"
)

type Pipeline struct {
	Normalizer []Normalizer
}

func (p *Pipeline) Normalize(s string) string {
	for _, n := range p.Normalizer {
		s = n.Normalize(s)
	}
	return s
}

type Normalizer interface {
	Normalize(string) string
}

var wsPattern = regexp.MustCompile(`[ \t\r\n]+`)

// CollapseWSNormalizer folds runs of spaces, tabs, carriage returns
// and newlines into a single space and trims the result. Embedded
// control characters would otherwise break row and column alignment in
// delimited output.
type CollapseWSNormalizer struct{}

func (n *CollapseWSNormalizer) Normalize(v string) string {
	return strings.TrimSpace(wsPattern.ReplaceAllString(v, " "))
}

// LowercaseNormalizer lowercases the whole string.
type LowercaseNormalizer struct{}

func (n *LowercaseNormalizer) Normalize(v string) string {
	return strings.ToLower(v)
}

var defaultPipeline = &Pipeline{
	Normalizer: []Normalizer{
		&CollapseWSNormalizer{},
	},
}

// CollapseWS runs the default cleanup applied to titles, raw strings
// and reconstructed abstracts.
func CollapseWS(s string) string {
	return defaultPipeline.Normalize(s)
}
