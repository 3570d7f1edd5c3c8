package hyphenate

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"time"

	"bitbucket.org/adfreiburg/dehyph/internal/pkg/cmdapp"
	"bitbucket.org/adfreiburg/dehyph/internal/pkg/injector"
	"bitbucket.org/adfreiburg/dehyph/internal/pkg/loader"
	"bitbucket.org/adfreiburg/dehyph/internal/pkg/progress"
	"github.com/pkg/errors"
)

const progressEvery = 10000

//Injector marks synthetic hyphenation points in a sentence
type Injector interface {
	Inject(sentence string) *injector.Result
}

// ServiceData keeps data required for service work
type ServiceData struct {
	injector    Injector
	reformatter Reformatter
	input       string
	output      string
}

//StartProcessing hyphenates the input file or every file of the input directory
func StartProcessing(data *ServiceData) error {
	info, err := os.Stat(data.input)
	if err != nil {
		return errors.Wrap(err, "Can't open input "+data.input)
	}
	if !info.IsDir() {
		return processFile(data, data.input, data.output)
	}
	list, err := loader.NewLocalFileList(data.input)
	if err != nil {
		return errors.Wrap(err, "Can't init file list")
	}
	files, err := list.List()
	if err != nil {
		return errors.Wrap(err, "Can't list input files")
	}
	cmdapp.Log.Infof("Found %d file(s)", len(files))
	for _, f := range files {
		out := filepath.Join(data.output, filepath.Base(f)+".hyph")
		if fileExists(out) {
			cmdapp.Log.Infof("Skipping %s, output exists", f)
			continue
		}
		err = processFile(data, f, out)
		if err != nil {
			return err
		}
	}
	return nil
}

func fileExists(file string) bool {
	info, err := os.Stat(file)
	return err == nil && !info.IsDir()
}

func processFile(data *ServiceData, in string, out string) error {
	cmdapp.Log.Infof("Processing %s -> %s", in, out)
	start := time.Now()

	inFile, err := os.Open(in)
	if err != nil {
		return errors.Wrap(err, "Can't open file "+in)
	}
	defer inFile.Close()

	err = os.MkdirAll(filepath.Dir(out), os.ModePerm)
	if err != nil {
		return errors.Wrap(err, "Can't init output directory")
	}
	outFile, err := os.Create(out)
	if err != nil {
		return errors.Wrap(err, "Can't create file "+out)
	}
	defer func() { cmdapp.LogIf(outFile.Close()) }()

	lines, ignored, err := process(data, inFile, outFile)
	if err != nil {
		return errors.Wrap(err, "Can't process file "+in)
	}
	cmdapp.Log.Infof("Done %s: %d lines, %.2f%% ignored, took %s", in, lines,
		percent(ignored, lines), time.Since(start))
	return nil
}

func process(data *ServiceData, r io.Reader, w io.Writer) (int, int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	writer := bufio.NewWriter(w)
	defer writer.Flush()

	counter := progress.New(progressEvery)
	ignored := 0
	for scanner.Scan() {
		counter.Inc()
		line, ok := data.reformatter(scanner.Text())
		if !ok {
			ignored++
			continue
		}
		res := data.injector.Inject(line)
		_, err := writer.WriteString(res.Hyphenated + "\t" + res.Original + "\n")
		if err != nil {
			return counter.Count(), ignored, err
		}
	}
	return counter.Count(), ignored, scanner.Err()
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) * 100 / float64(total)
}
