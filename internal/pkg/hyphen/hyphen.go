package hyphen

import (
	"strings"
)

const controlChars = ".,@&#*+?!()_\\<>"

//Break is one possible split position in a word.
//Offset counts runes before the split. AtHyphen marks a split on a real hyphen,
//the rune at Offset is then the hyphen itself.
type Break struct {
	Offset   int
	AtHyphen bool
}

//Breaks returns the possible split positions of a word, or nil if the word
//should not be split. Abbreviations and short words yield no breaks, words
//with control characters are ignored. For words carrying a real hyphen only
//the hyphen positions and pattern breaks of the parts are returned, so an
//abbreviation part like in 'UTF-8' is never split by patterns.
func (p *Patterns) Breaks(word string) []Break {
	if letterCount(word) < 4 {
		return nil
	}
	if strings.ContainsAny(word, controlChars) {
		return nil
	}
	runes := []rune(word)
	if strings.ContainsRune(word, '-') {
		return p.hyphenedBreaks(runes)
	}
	var result []Break
	for _, o := range p.pieceBreaks(runes) {
		result = append(result, Break{Offset: o})
	}
	return result
}

func (p *Patterns) hyphenedBreaks(runes []rune) []Break {
	var result []Break
	start := 0
	for i := 0; i <= len(runes); i++ {
		if i < len(runes) && runes[i] != '-' {
			continue
		}
		for _, o := range p.pieceBreaks(runes[start:i]) {
			result = append(result, Break{Offset: start + o})
		}
		if i > 0 && i < len(runes)-1 && runes[i-1] != '-' {
			result = append(result, Break{Offset: i, AtHyphen: true})
		}
		start = i + 1
	}
	return result
}
