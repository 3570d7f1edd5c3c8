package strategy

import (
	"strings"
)

//Features is a deterministic representation of a hyphenation point,
//a pure function of (prefix, suffix) with no hidden state
type Features map[string]string

//Extract derives classifier features from the two sides of a point
func Extract(prefix, suffix string) Features {
	result := Features{}
	result["word-shape"] = shape(prefix) + "-" + shape(suffix)
	sideFeatures(result, "p", prefix, prefixBigrams(prefix))
	sideFeatures(result, "s", suffix, suffixBigrams(suffix))
	return result
}

func sideFeatures(to Features, side, word string, bigrams map[string]string) {
	to[side+":lower"] = strings.ToLower(word)
	to[side+":isuppercase"] = boolValue(word != "" && word == strings.ToUpper(word) && word != strings.ToLower(word))
	to[side+":isdigit"] = boolValue(isDigits(word))
	to[side+":hashyphen"] = boolValue(strings.ContainsRune(word, '-'))
	for k, v := range bigrams {
		to[k] = v
	}
}

//prefixBigrams returns up to three overlapping bigrams from the prefix end
func prefixBigrams(prefix string) map[string]string {
	runes := []rune(strings.ToLower(prefix))
	result := make(map[string]string)
	l := len(runes)
	if l >= 2 {
		result["p:-1bigram"] = string(runes[l-2:])
	}
	if l >= 3 {
		result["p:-2bigram"] = string(runes[l-3 : l-1])
	}
	if l >= 4 {
		result["p:-3bigram"] = string(runes[l-4 : l-2])
	}
	return result
}

//suffixBigrams returns up to three overlapping bigrams from the suffix start
func suffixBigrams(suffix string) map[string]string {
	runes := []rune(strings.ToLower(suffix))
	result := make(map[string]string)
	l := len(runes)
	if l >= 2 {
		result["s:+1bigram"] = string(runes[:2])
	}
	if l >= 3 {
		result["s:+2bigram"] = string(runes[1:3])
	}
	if l >= 4 {
		result["s:+3bigram"] = string(runes[2:4])
	}
	return result
}

func shape(word string) string {
	return strings.Repeat("x", len([]rune(word)))
}

func isDigits(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func boolValue(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
