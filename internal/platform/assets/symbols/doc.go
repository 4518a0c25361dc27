// Package symbols derives Go identifiers from asset catalog keys.
//
// Derivation is deterministic and one-to-one: a catalog that would produce two
// identical identifiers, an unsupported character, or a reserved name is
// rejected as a whole so the generated registry never ships ambiguous names.
package symbols
