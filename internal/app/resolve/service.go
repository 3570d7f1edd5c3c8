package resolve

import (
	"bufio"
	"io"
	"os"
	"strings"
	"time"

	"bitbucket.org/adfreiburg/dehyph/internal/pkg/cmdapp"
	"bitbucket.org/adfreiburg/dehyph/internal/pkg/progress"
	"bitbucket.org/adfreiburg/dehyph/internal/pkg/strategy/api"
	"bitbucket.org/adfreiburg/dehyph/internal/pkg/token"
	"github.com/pkg/errors"
)

const progressEvery = 10000

// ServiceData keeps data required for service work
type ServiceData struct {
	decider api.Decider
	marker  rune
	input   string
	output  string
}

//StartProcessing resolves every hyphenation point of the input file
func StartProcessing(data *ServiceData) error {
	cmdapp.Log.Infof("Processing %s -> %s", data.input, data.output)
	start := time.Now()

	inFile, err := os.Open(data.input)
	if err != nil {
		return errors.Wrap(err, "Can't open file "+data.input)
	}
	defer inFile.Close()

	outFile, err := os.Create(data.output)
	if err != nil {
		return errors.Wrap(err, "Can't create file "+data.output)
	}
	defer func() { cmdapp.LogIf(outFile.Close()) }()

	lines, err := process(data, inFile, outFile)
	if err != nil {
		return errors.Wrap(err, "Can't process file "+data.input)
	}
	cmdapp.Log.Infof("Done: %d lines, took %s", lines, time.Since(start))
	return nil
}

func process(data *ServiceData, r io.Reader, w io.Writer) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	writer := bufio.NewWriter(w)
	defer writer.Flush()

	counter := progress.New(progressEvery)
	for scanner.Scan() {
		counter.Inc()
		hyphenated := scanner.Text()
		if i := strings.IndexByte(hyphenated, '\t'); i >= 0 {
			hyphenated = hyphenated[:i]
		}
		resolved := resolveLine(data, hyphenated)
		_, err := writer.WriteString(hyphenated + "\t" + resolved + "\n")
		if err != nil {
			return counter.Count(), err
		}
	}
	return counter.Count(), scanner.Err()
}

//resolveLine replaces every marker token by the winning realization.
//A strategy failure on one point falls back to remove, the batch never aborts
func resolveLine(data *ServiceData, hyphenated string) string {
	points, warns := token.ExtractPoints(hyphenated, data.marker)
	for _, w := range warns {
		cmdapp.Log.Warn(w)
	}
	if len(points) == 0 {
		return hyphenated
	}
	result := make([]string, 0)
	for _, t := range token.Tokenize(hyphenated) {
		result = append(result, resolveToken(data, t, points))
	}
	return strings.Join(result, " ")
}

func resolveToken(data *ServiceData, t token.Token, points []*token.Point) string {
	for _, p := range points {
		if p.Sentence[p.Index].Start != t.Start {
			continue
		}
		d, err := data.decider.Decide(p)
		if err != nil {
			cmdapp.Log.Warnf("Can't decide '%s%c%s', removing: %s", p.Prefix, data.marker, p.Suffix, err.Error())
			return p.Joined()
		}
		if d.Keep {
			return p.Hyphenated()
		}
		return p.Joined()
	}
	return t.Text
}
