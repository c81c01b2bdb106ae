// Package match scores how likely a field added in the target shape is a
// renamed field dropped from the source shape. Migrations never act on
// these scores; they only surface as suggestions in diagnostics.
//
// Key functions:
//   - NormalizeIdent: case- and separator-insensitive identifier form
//   - Levenshtein: edit distance between strings
//   - RankCandidates: ranks dropped fields as rename candidates
package match
