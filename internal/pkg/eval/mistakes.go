package eval

import (
	"fmt"
	"sort"
	"strings"
)

//Category of a wrong decision
type Category string

//Mistake categories. Ambiguous spelling means the vocabulary knows both
//forms of the word, so a frequency decision is inherently unreliable
const (
	CategoryAmbiguous Category = "ambiguous spelling"
	CategoryUnseen    Category = "unseen word"
	CategoryOther     Category = "other"
)

//Lookup is a read only vocabulary view
type Lookup interface {
	Count(word string) int
}

//Mistakes accumulates wrong decisions by category
type Mistakes struct {
	lookup Lookup
	counts map[Category]int
	words  map[Category]map[string]int
}

//NewMistakes creates an accumulator backed by a vocabulary
func NewMistakes(lookup Lookup) *Mistakes {
	return &Mistakes{lookup: lookup,
		counts: make(map[Category]int),
		words:  make(map[Category]map[string]int)}
}

//Categorize explains one wrong decision on a prefix/suffix pair
func (m *Mistakes) Categorize(prefix, suffix string) Category {
	joined := m.lookup.Count(prefix + suffix)
	hyphenated := m.lookup.Count(prefix + "-" + suffix)
	if joined > 0 && hyphenated > 0 {
		return CategoryAmbiguous
	}
	if joined == 0 && hyphenated == 0 {
		return CategoryUnseen
	}
	return CategoryOther
}

//Add records one wrong decision
func (m *Mistakes) Add(prefix, suffix string) {
	c := m.Categorize(prefix, suffix)
	m.counts[c]++
	if m.words[c] == nil {
		m.words[c] = make(map[string]int)
	}
	m.words[c][prefix+"-"+suffix]++
}

//Count returns the number of mistakes in a category
func (m *Mistakes) Count(c Category) int {
	return m.counts[c]
}

//Total returns the overall mistake count
func (m *Mistakes) Total() int {
	result := 0
	for _, v := range m.counts {
		result += v
	}
	return result
}

//Render prepares a mistake breakdown with the top k words per category
func (m *Mistakes) Render(k int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Mistakes in total: %d. Categories:\n", m.Total())
	for _, c := range []Category{CategoryAmbiguous, CategoryUnseen, CategoryOther} {
		fmt.Fprintf(&sb, "\n%s (%d)\n", c, m.counts[c])
		for _, w := range topFrequent(m.words[c], k) {
			fmt.Fprintf(&sb, "%10d  %s\n", m.words[c][w], w)
		}
	}
	return sb.String()
}

func topFrequent(words map[string]int, k int) []string {
	result := make([]string, 0, len(words))
	for w := range words {
		result = append(result, w)
	}
	sort.Slice(result, func(i, j int) bool {
		if words[result[i]] != words[result[j]] {
			return words[result[i]] > words[result[j]]
		}
		return result[i] < result[j]
	})
	if len(result) > k {
		result = result[:k]
	}
	return result
}
