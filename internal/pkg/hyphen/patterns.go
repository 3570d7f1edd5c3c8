package hyphen

import (
	"bufio"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

type node struct {
	next   map[rune]*node
	points []int
}

//Patterns keeps a Liang hyphenation pattern trie and the exception list
type Patterns struct {
	root       *node
	exceptions map[string][]int
}

//Load reads patterns from a file
func Load(file string) (*Patterns, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, errors.Wrap(err, "Can't open patterns file "+file)
	}
	defer f.Close()
	return Parse(f)
}

//Parse reads a TeX style pattern file.
//Lines inside \patterns{ } are patterns, lines inside \hyphenation{ } are exceptions.
//Bare lines outside any section are treated as patterns. '%' starts a comment.
func Parse(r io.Reader) (*Patterns, error) {
	result := &Patterns{root: &node{}, exceptions: make(map[string][]int)}
	scanner := bufio.NewScanner(r)
	inExceptions := false
	count := 0
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.IndexByte(line, '%'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case `\patterns{`:
			inExceptions = false
			continue
		case `\hyphenation{`:
			inExceptions = true
			continue
		case `}`:
			inExceptions = false
			continue
		}
		for _, w := range strings.Fields(line) {
			if inExceptions {
				result.addException(w)
			} else {
				result.addPattern(w)
			}
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "Can't read patterns")
	}
	if count == 0 {
		return nil, errors.New("No patterns found")
	}
	return result, nil
}

func (p *Patterns) addPattern(pattern string) {
	chars := make([]rune, 0, len(pattern))
	points := []int{0}
	for _, r := range pattern {
		if r >= '0' && r <= '9' {
			points[len(points)-1] = int(r - '0')
		} else {
			chars = append(chars, r)
			points = append(points, 0)
		}
	}
	n := p.root
	for _, r := range chars {
		if n.next == nil {
			n.next = make(map[rune]*node)
		}
		child, ok := n.next[r]
		if !ok {
			child = &node{}
			n.next[r] = child
		}
		n = child
	}
	n.points = points
}

func (p *Patterns) addException(word string) {
	chars := make([]rune, 0, len(word))
	points := []int{0}
	for _, r := range word {
		if r == '-' {
			points[len(points)-1] = 1
		} else {
			chars = append(chars, r)
			points = append(points, 0)
		}
	}
	p.exceptions[string(chars)] = points
}

//pieceBreaks returns break offsets inside a hyphen free lower case word
func (p *Patterns) pieceBreaks(word []rune) []int {
	if len(word) <= 4 {
		return nil
	}
	lower := []rune(strings.ToLower(string(word)))
	if points, ok := p.exceptions[string(lower)]; ok {
		return oddOffsets(points[1:])
	}

	work := make([]rune, 0, len(lower)+2)
	work = append(work, '.')
	work = append(work, lower...)
	work = append(work, '.')

	points := make([]int, len(work)+1)
	for i := range work {
		n := p.root
		for _, r := range work[i:] {
			child, ok := n.next[r]
			if !ok {
				break
			}
			n = child
			for j, v := range n.points {
				if points[i+j] < v {
					points[i+j] = v
				}
			}
		}
	}
	// no breaks in the first two or the last two characters
	points[1], points[2] = 0, 0
	points[len(points)-2], points[len(points)-3] = 0, 0
	return oddOffsets(points[2 : len(points)-2])
}

//oddOffsets maps a points slice to word break offsets, points[i] marks a break after rune i
func oddOffsets(points []int) []int {
	var result []int
	for i, v := range points {
		if v%2 != 0 {
			result = append(result, i+1)
		}
	}
	return result
}

func letterCount(word string) int {
	result := 0
	for _, r := range word {
		if unicode.IsLetter(r) {
			result++
		}
	}
	return result
}
