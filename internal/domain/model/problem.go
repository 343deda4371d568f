package model

import (
	"strings"

	"golang.org/x/text/cases"
)

// Problem is a contest problem as submitted by a problem setter.
type Problem struct {
	ID              string
	Statement       string
	TestCases       string
	SampleSolutions string
	Difficulty      string
	Tags            []string
	Hints           string
	Author          string
}

// StatementKey folds a statement so that two statements differing only in
// letter case map to the same key. Folding is full Unicode case folding, so
// "Straße" and "STRASSE" share a key.
func StatementKey(statement string) string {
	return cases.Fold().String(statement)
}

// SameStatement reports whether a and b are equal ignoring case.
func SameStatement(a, b string) bool {
	return StatementKey(a) == StatementKey(b)
}

// ParseTags splits a comma-separated tag line. Entries are kept verbatim;
// trailing empty entries are dropped, so an empty line has no tags.
func ParseTags(line string) []string {
	parts := strings.Split(line, ",")
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	if len(parts) == 0 {
		return nil
	}
	return parts
}
