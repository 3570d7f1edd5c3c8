package vocab

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

//Vocabulary maps normalized word forms to corpus frequencies.
//It is loaded once and read only afterwards.
type Vocabulary struct {
	words map[string]int
}

//Load reads a vocabulary from a tab separated word frequency file
func Load(file string) (*Vocabulary, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, errors.Wrap(err, "Can't open vocabulary "+file)
	}
	defer f.Close()
	return Read(f)
}

//Read parses word frequency records
func Read(r io.Reader) (*Vocabulary, error) {
	result := &Vocabulary{words: make(map[string]int)}
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		s := scanner.Text()
		if strings.TrimSpace(s) == "" {
			continue
		}
		parts := strings.Split(s, "\t")
		if len(parts) != 2 {
			return nil, errors.Errorf("Wrong vocabulary line %d: '%s'", line, s)
		}
		count, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil || count < 0 {
			return nil, errors.Errorf("Wrong frequency at line %d: '%s'", line, s)
		}
		result.words[strings.ToLower(parts[0])] += count
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "Can't read vocabulary")
	}
	return result, nil
}

//Count returns the frequency of a word form, zero for the unseen
func (v *Vocabulary) Count(word string) int {
	return v.words[strings.ToLower(word)]
}

//CountNormalized looks a word up with every digit mapped to zero,
//so unseen numbers still match their numeric class
func (v *Vocabulary) CountNormalized(word string) int {
	if c := v.Count(word); c > 0 {
		return c
	}
	return v.words[NormalizeDigits(strings.ToLower(word))]
}

//Ambiguous reports whether both spellings of a word are present
func (v *Vocabulary) Ambiguous(joined, hyphenated string) bool {
	return v.Count(joined) > 0 && v.Count(hyphenated) > 0
}

//Size returns the number of distinct word forms
func (v *Vocabulary) Size() int {
	return len(v.words)
}

//NormalizeDigits replaces every digit rune with '0'
func NormalizeDigits(word string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return '0'
		}
		return r
	}, word)
}
