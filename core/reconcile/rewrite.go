package reconcile

import (
	"sort"
	"strings"
)

// Rewriter replaces external ids embedded in content with host ids.
type Rewriter struct {
	replacer *strings.Replacer
}

// NewRewriter builds a rewriter for every non-empty external id in ids.
//
// Content is scanned once from left to right. Where several external ids match
// at the same position the longest one wins, and replaced text is never scanned
// again, so a host id that happens to contain an external id is left alone.
func NewRewriter(ids ExternalIDMap) *Rewriter {
	keys := make([]string, 0, len(ids))
	for externalID := range ids {
		if externalID == "" {
			continue
		}
		keys = append(keys, externalID)
	}
	if len(keys) == 0 {
		return &Rewriter{}
	}

	// strings.Replacer prefers earlier pairs on a tie at the same position.
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	pairs := make([]string, 0, len(keys)*2)
	for _, externalID := range keys {
		pairs = append(pairs, externalID, ids[externalID])
	}
	return &Rewriter{replacer: strings.NewReplacer(pairs...)}
}

// Rewrite returns content with every mapped external id replaced.
func (r *Rewriter) Rewrite(content string) string {
	if r.replacer == nil {
		return content
	}
	return r.replacer.Replace(content)
}

// RewriteReferences is a one-shot helper around NewRewriter.
func RewriteReferences(content string, ids ExternalIDMap) string {
	return NewRewriter(ids).Rewrite(content)
}
