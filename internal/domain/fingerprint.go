package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// DefaultPromptPrefixLength is how many characters of the flattened
// conversation are kept readable in a fingerprint.
const DefaultPromptPrefixLength = 100

// Fingerprint identifies a request for caching purposes.
type Fingerprint struct {
	Namespace    string
	PromptPrefix string
	Model        string
	Temperature  *float64
	ContentHash  uint64
}

// NewFingerprint derives the cache identity of a conversation. The prefix
// alone collides for conversations that share long system instructions, so
// the whole conversation is hashed as well.
func NewFingerprint(namespace string, messages []Message, opts GenerationOptions, prefixLength int) Fingerprint {
	if prefixLength <= 0 {
		prefixLength = DefaultPromptPrefixLength
	}

	text := buildQueryText(messages)

	return Fingerprint{
		Namespace:    namespace,
		PromptPrefix: truncateRunes(text, prefixLength),
		Model:        opts.Model,
		Temperature:  opts.Temperature,
		ContentHash:  xxhash.Sum64String(text),
	}
}

// Key serializes the fingerprint into a cache key.
func (f Fingerprint) Key() string {
	prefixHash := xxhash.Sum64String(f.PromptPrefix)
	return fmt.Sprintf("%s:%s:%s:%016x:%016x",
		f.Namespace,
		f.Model,
		formatTemperature(f.Temperature),
		prefixHash,
		f.ContentHash,
	)
}

// buildQueryText constructs a consistent text representation of a conversation.
func buildQueryText(messages []Message) string {
	var b strings.Builder
	for _, msg := range messages {
		b.WriteString(msg.Role)
		b.WriteString(": ")
		b.WriteString(msg.Content)
		b.WriteByte('\n')
	}
	return b.String()
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// formatTemperature keeps an unset temperature apart from an explicit zero.
func formatTemperature(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
