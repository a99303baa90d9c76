package utils

import "golang.org/x/text/unicode/norm"

// NormalizeLine applies NFC normalization to a raw input line before it
// reaches the lexer, so that visually identical characters composed of
// different code point sequences (e.g. combining accents typed through
// different input methods) tokenize identically.
func NormalizeLine(line string) string {
	return norm.NFC.String(line)
}
