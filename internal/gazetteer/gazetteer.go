// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package gazetteer holds the curated Brazilian name and place lists used by
// the person-name and place-name validators. Lookups are case-insensitive
// and diacritic-insensitive: entries are stored folded, and callers'
// input is folded the same way.
package gazetteer

import "strings"

// foldRunes maps accented Portuguese letters to their base form.
var foldRunes = map[rune]rune{
	'á': 'a', 'à': 'a', 'â': 'a', 'ã': 'a', 'ä': 'a',
	'é': 'e', 'è': 'e', 'ê': 'e', 'ë': 'e',
	'í': 'i', 'ì': 'i', 'î': 'i', 'ï': 'i',
	'ó': 'o', 'ò': 'o', 'ô': 'o', 'õ': 'o', 'ö': 'o',
	'ú': 'u', 'ù': 'u', 'û': 'u', 'ü': 'u',
	'ç': 'c', 'ñ': 'n',
}

// Normalize lowercases s and strips Portuguese diacritics, collapsing
// whitespace runs to single spaces.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			space = true
			continue
		}
		if space {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			space = false
		}
		if folded, ok := foldRunes[r]; ok {
			r = folded
		}
		b.WriteRune(r)
	}
	return b.String()
}

// set is a normalized string set.
type set map[string]struct{}

func newSet(words ...string) set {
	s := make(set, len(words))
	for _, w := range words {
		s[Normalize(w)] = struct{}{}
	}
	return s
}

func (s set) has(word string) bool {
	_, ok := s[Normalize(word)]
	return ok
}

// IsFirstName reports whether word is a known Brazilian given name.
func IsFirstName(word string) bool { return firstNames.has(word) }

// IsSurname reports whether word is a common Brazilian surname.
func IsSurname(word string) bool { return surnames.has(word) }

// IsConnective reports whether word is a name connective (de, da, dos, ...).
func IsConnective(word string) bool { return connectives.has(word) }

// IsState reports whether s is a Brazilian state name or abbreviation.
func IsState(s string) bool { return states.has(s) }

// IsCity reports whether s is a major Brazilian city.
func IsCity(s string) bool { return cities.has(s) }

// IsLocationIndicator reports whether word labels an address or place
// (rua, avenida, cep, ...).
func IsLocationIndicator(word string) bool { return locationIndicators.has(word) }
