// Package tags canonicalizes free-form place and interest tags and expands an
// interest into the set of related canonical tags.
package tags

import "strings"

// Normalizer is immutable after construction and safe for concurrent use.
type Normalizer struct {
	synonyms map[string]string
	aliases  map[string][]string
}

// New builds a Normalizer whose synonym keys and alias lists are case-folded and canonical.
func New(v Vocabulary) *Normalizer {
	n := &Normalizer{
		synonyms: make(map[string]string, len(v.Synonyms)),
		aliases:  make(map[string][]string, len(v.Aliases)),
	}
	for raw, canon := range v.Synonyms {
		n.synonyms[fold(raw)] = fold(canon)
	}
	for canon, related := range v.Aliases {
		key := n.NormalizeTag(canon)
		out := make([]string, 0, len(related))
		for _, r := range related {
			if t := n.NormalizeTag(r); t != "" {
				out = append(out, t)
			}
		}
		n.aliases[key] = out
	}
	return n
}

// Default builds a Normalizer over the built-in vocabulary.
func Default() *Normalizer { return New(DefaultVocabulary()) }

// NormalizeTag maps raw to its canonical tag, or returns the case-folded input.
func (n *Normalizer) NormalizeTag(raw string) string {
	key := fold(raw)
	if canon, ok := n.synonyms[key]; ok {
		return canon
	}
	return key
}

// NormalizeAll normalizes and de-duplicates tags, keeping first-seen order.
func (n *Normalizer) NormalizeAll(raw []string) []string {
	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, r := range raw {
		t := n.NormalizeTag(r)
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// ExpandInterest returns the canonical interest plus its direct aliases.
func (n *Normalizer) ExpandInterest(interest string) map[string]struct{} {
	canon := n.NormalizeTag(interest)
	out := make(map[string]struct{}, 1+len(n.aliases[canon]))
	if canon == "" {
		return out
	}
	out[canon] = struct{}{}
	for _, a := range n.aliases[canon] {
		out[a] = struct{}{}
	}
	return out
}

func fold(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
