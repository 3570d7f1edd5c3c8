package hyphenate

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

const softHyphen = '­'

//Reformatter prepares a corpus line for injection.
//Returns ok = false when the line must be dropped
type Reformatter func(line string) (string, bool)

//NewReformatter returns the reformatter for a dataset mode.
//Every mode shares the same normalization after its own rewriting step
func NewReformatter(mode string) (Reformatter, error) {
	switch mode {
	case "plain":
		return reformatPlain, nil
	case "ontonotes":
		return reformatOntonotes, nil
	case "clueweb":
		return reformatClueweb, nil
	}
	return nil, errors.New("Unknown mode '" + mode + "'")
}

func reformatPlain(line string) (string, bool) {
	res := strings.ReplaceAll(line, "[", "")
	res = strings.ReplaceAll(res, "]", "")
	return normalize(res)
}

//reformatOntonotes expects '<sentence>\t<pos tags>'.
//Tokens tagged HYPH are merged into their neighbours as a real hyphen
func reformatOntonotes(line string) (string, bool) {
	parts := strings.Split(line, "\t")
	if len(parts) != 2 {
		return "", false
	}
	words := strings.Fields(parts[0])
	tags := strings.Fields(parts[1])
	if len(words) != len(tags) {
		return "", false
	}
	result := make([]string, 0, len(words))
	for i := 0; i < len(words); i++ {
		w := mapBracket(words[i])
		if tags[i] == "HYPH" && w == "-" && len(result) > 0 && i+1 < len(words) {
			result[len(result)-1] = result[len(result)-1] + "-" + mapBracket(words[i+1])
			i++
			continue
		}
		result = append(result, w)
	}
	return normalize(strings.Join(result, " "))
}

func mapBracket(w string) string {
	switch w {
	case "-LRB-":
		return "("
	case "-RRB-":
		return ")"
	}
	return w
}

var entityTag = regexp.MustCompile(`\[[a-z]\.[^|]+\|([^\]]+)\]`)

//reformatClueweb drops entity tags keeping the surface text and turns
//the ' - ' interruptor into a dash so it is not taken for a word hyphen
func reformatClueweb(line string) (string, bool) {
	res := entityTag.ReplaceAllString(line, "$1")
	res = strings.ReplaceAll(res, " - ", " — ")
	return normalize(res)
}

//normalize drops non latin lines, masks links, soft hyphens and in-word slashes
func normalize(line string) (string, bool) {
	if hasNonLatin(line) {
		return "", false
	}
	res := strings.ReplaceAll(line, string(softHyphen), "")
	words := strings.Fields(res)
	result := make([]string, 0, len(words))
	for _, w := range words {
		if looksLikeLink(w) {
			result = append(result, "x")
			continue
		}
		result = append(result, spaceOutSlash(w))
	}
	return strings.Join(result, " "), true
}

func hasNonLatin(line string) bool {
	for _, r := range line {
		if r >= 0x370 && r <= 0x1fff {
			return true
		}
	}
	return false
}

func looksLikeLink(w string) bool {
	runes := []rune(w)
	for i := 1; i < len(runes)-1; i++ {
		r := runes[i]
		if r == '@' || r == ':' {
			return true
		}
		//a dot between letter runs, but not a short abbreviation like 'U.S.'
		if r == '.' && i > 1 && i < len(runes)-2 &&
			isAlpha(runes[i-2]) && isAlpha(runes[i-1]) && isAlpha(runes[i+1]) && isAlpha(runes[i+2]) {
			return true
		}
	}
	return false
}

func spaceOutSlash(w string) string {
	runes := []rune(w)
	for i := 1; i < len(runes)-1; i++ {
		if runes[i] == '/' {
			return strings.ReplaceAll(w, "/", " / ")
		}
	}
	return w
}

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
