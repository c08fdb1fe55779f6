// Package matching implements the candidate matching and scoring engine.
//
// A reference name is expanded into an ordered set of normalized variants
// (most specific first). Each file in the source listing is considered a
// candidate when at least one variant is a literal substring of the file's
// normalized name. Candidates are then scored by combining a variant
// specificity bonus, token coverage, regional priority weights, and a length
// similarity term, or rejected outright by the configured tag and region
// rules. Rejection is absolute: a rejected candidate is never selectable
// regardless of how the rest of its score would have ranked it.
//
// All rule state lives in an immutable RuleSet value constructed once per
// batch and passed explicitly into every scoring call.
package matching
