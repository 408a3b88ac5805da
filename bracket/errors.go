// Package bracket encodes parse trees and named entity runs into the per
// token bracket notation of the CoNLL format and decodes bracket columns back
// into span sets.
package bracket

import "errors"

var (
	// ErrMalformedParseTree is returned when a parse string does not yield
	// exactly one fragment per token.
	ErrMalformedParseTree = errors.New("malformed parse tree")

	// ErrUnbalancedBrackets is returned when a closing bracket has no
	// matching opening bracket.
	ErrUnbalancedBrackets = errors.New("unbalanced brackets")
)
