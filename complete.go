package cline

import (
	"sort"
	"strings"
)

// Complete returns the candidate next tokens for a partial input.
//
// An empty input completes to the top-level command tokens. Otherwise all
// tokens but the last form an exact path; the last token is a case-sensitive
// prefix matched against the children of the node that path names. A partial
// that already equals a full child token is still included. An unresolvable
// path yields an empty result, never an error.
//
// When the walk runs past a node registered with a dynamic completion
// callback, the callback is invoked with the unconsumed tokens and its
// suggestions are merged in unfiltered; the callback owns any narrowing.
// The result is sorted and free of duplicates.
func (t *CommandTree) Complete(tokens []string) []string {
	if len(tokens) == 0 {
		return childTokens(t.root, "")
	}

	current := t.root
	for i, tok := range tokens[:len(tokens)-1] {
		child, ok := current.Children[tok]
		if !ok {
			if current.Complete != nil {
				return dedupeSorted(current.Complete(tokens[i:]))
			}
			return nil
		}
		current = child
	}

	partial := tokens[len(tokens)-1]
	candidates := childTokens(current, partial)
	if current.Complete != nil {
		candidates = append(candidates, current.Complete(tokens[len(tokens)-1:])...)
	}
	return dedupeSorted(candidates)
}

// childTokens returns the child tokens of node that start with prefix,
// sorted. An empty prefix matches every child.
func childTokens(node *CommandNode, prefix string) []string {
	var tokens []string
	for tok := range node.Children {
		if strings.HasPrefix(tok, prefix) {
			tokens = append(tokens, tok)
		}
	}
	sort.Strings(tokens)
	return tokens
}

func dedupeSorted(tokens []string) []string {
	if len(tokens) == 0 {
		return nil
	}
	sorted := append([]string{}, tokens...)
	sort.Strings(sorted)

	out := sorted[:1]
	for _, tok := range sorted[1:] {
		if tok != out[len(out)-1] {
			out = append(out, tok)
		}
	}
	return out
}
