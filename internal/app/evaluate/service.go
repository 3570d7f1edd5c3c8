package evaluate

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"bitbucket.org/adfreiburg/dehyph/internal/pkg/cmdapp"
	"bitbucket.org/adfreiburg/dehyph/internal/pkg/eval"
	"bitbucket.org/adfreiburg/dehyph/internal/pkg/progress"
	"bitbucket.org/adfreiburg/dehyph/internal/pkg/strategy"
	"bitbucket.org/adfreiburg/dehyph/internal/pkg/strategy/api"
	"bitbucket.org/adfreiburg/dehyph/internal/pkg/token"
	"github.com/pkg/errors"
)

const progressEvery = 10000

// ServiceData keeps data required for service work
type ServiceData struct {
	decider      api.Decider
	mistakes     *eval.Mistakes
	marker       rune
	topK         int
	strategyName string
	runID        string
	input        string
	report       string
	failLog      string
}

//StartProcessing evaluates the strategy over the input file and writes the report
func StartProcessing(data *ServiceData) error {
	cmdapp.Log.Infof("Evaluating %s on %s", data.strategyName, data.input)
	start := time.Now()

	inFile, err := os.Open(data.input)
	if err != nil {
		return errors.Wrap(err, "Can't open file "+data.input)
	}
	defer inFile.Close()

	matrix, err := evaluate(data, inFile)
	if err != nil {
		return errors.Wrap(err, "Can't evaluate "+data.input)
	}

	err = saveReport(data, matrix)
	if err != nil {
		return err
	}
	err = saveFailLog(data)
	if err != nil {
		return err
	}
	cmdapp.Log.Infof("Done: %d points, took %s", matrix.Total(), time.Since(start))
	return nil
}

func evaluate(data *ServiceData, r io.Reader) (*eval.Matrix, error) {
	if data.strategyName == strategy.NameClassifier {
		return evaluateLabeled(data, r)
	}
	return evaluateHyphenated(data, r)
}

//evaluateHyphenated reads '<hyphenated>\t<original>' records.
//The gold label of a point is recovered from the original sentence token
func evaluateHyphenated(data *ServiceData, r io.Reader) (*eval.Matrix, error) {
	matrix := &eval.Matrix{}
	counter := progress.New(progressEvery)
	scanner := newScanner(r)
	for scanner.Scan() {
		counter.Inc()
		parts := strings.Split(scanner.Text(), "\t")
		if len(parts) != 2 {
			cmdapp.Log.Warnf("Wrong record at line %d", counter.Count())
			continue
		}
		evaluateRecord(data, matrix, parts[0], parts[1])
	}
	return matrix, scanner.Err()
}

//evaluateRecord scores the points of one record.
//A failing decider skips the point only, a long run must survive transient errors
func evaluateRecord(data *ServiceData, matrix *eval.Matrix, hyphenated, original string) {
	points, warns := token.ExtractPoints(hyphenated, data.marker)
	for _, w := range warns {
		cmdapp.Log.Warn(w)
	}
	origTokens := token.Tokenize(original)
	for _, p := range points {
		gold, err := goldOf(p, origTokens)
		if err != nil {
			cmdapp.Log.Warn(err.Error())
			continue
		}
		d, err := data.decider.Decide(p)
		if err != nil {
			cmdapp.Log.Warnf("Can't decide '%s%c%s', skipping: %s", p.Prefix, data.marker, p.Suffix, err.Error())
			continue
		}
		matrix.Add(d.Keep, gold)
		if d.Keep != gold && data.mistakes != nil {
			data.mistakes.Add(p.Prefix, p.Suffix)
		}
	}
}

func goldOf(p *token.Point, origTokens []token.Token) (bool, error) {
	if p.Index >= len(origTokens) {
		return false, errors.Errorf("No original token for '%s'", p.Prefix+p.Suffix)
	}
	orig := origTokens[p.Index].Text
	if orig == p.Prefix+"-"+p.Suffix {
		return true, nil
	}
	if orig == p.Prefix+p.Suffix {
		return false, nil
	}
	return false, errors.Errorf("Original token '%s' does not match point '%s|%s'", orig, p.Prefix, p.Suffix)
}

//evaluateLabeled reads '<label>\t<prefix>\t<suffix>' records, label 1 = keep
func evaluateLabeled(data *ServiceData, r io.Reader) (*eval.Matrix, error) {
	matrix := &eval.Matrix{}
	counter := progress.New(progressEvery)
	scanner := newScanner(r)
	for scanner.Scan() {
		counter.Inc()
		parts := strings.Split(scanner.Text(), "\t")
		if len(parts) != 3 || (parts[0] != "0" && parts[0] != "1") {
			cmdapp.Log.Warnf("Wrong record at line %d", counter.Count())
			continue
		}
		p := &token.Point{Prefix: parts[1], Suffix: parts[2]}
		d, err := data.decider.Decide(p)
		if err != nil {
			cmdapp.Log.Warnf("Can't decide '%s|%s', skipping: %s", p.Prefix, p.Suffix, err.Error())
			continue
		}
		matrix.Add(d.Keep, parts[0] == "1")
	}
	return matrix, scanner.Err()
}

func saveReport(data *ServiceData, matrix *eval.Matrix) error {
	f, err := os.Create(data.report)
	if err != nil {
		return errors.Wrap(err, "Can't create file "+data.report)
	}
	defer func() { cmdapp.LogIf(f.Close()) }()
	return writeReport(data, matrix, f)
}

func writeReport(data *ServiceData, matrix *eval.Matrix, w io.Writer) error {
	_, err := fmt.Fprintf(w, "Run: %s\nStrategy: %s\nInput: %s\nDate: %s\n\n%s",
		data.runID, data.strategyName, data.input,
		time.Now().Format(time.RFC3339), matrix.Render())
	return err
}

func saveFailLog(data *ServiceData) error {
	if data.mistakes == nil || data.failLog == "" {
		return nil
	}
	f, err := os.Create(data.failLog)
	if err != nil {
		return errors.Wrap(err, "Can't create file "+data.failLog)
	}
	defer func() { cmdapp.LogIf(f.Close()) }()
	_, err = fmt.Fprintf(f, "Run: %s\n\n%s", data.runID, data.mistakes.Render(data.topK))
	return err
}

func newScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	return scanner
}
