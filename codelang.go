package md2office

import (
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
)

// CanonicalLanguage resolves a fence language tag against the chroma
// lexer registry so aliases collapse to one name (golang -> go,
// js -> javascript). Unknown tags pass through lowercased rather than
// being dropped - the writer may still want to show them.
func CanonicalLanguage(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" {
		return ""
	}
	lexer := lexers.Get(tag)
	if lexer == nil {
		return tag
	}
	return strings.ToLower(lexer.Config().Name)
}
