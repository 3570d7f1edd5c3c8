package evaluate

import (
	"bitbucket.org/adfreiburg/dehyph/internal/pkg/charprob"
	"bitbucket.org/adfreiburg/dehyph/internal/pkg/cmdapp"
	"bitbucket.org/adfreiburg/dehyph/internal/pkg/eval"
	"bitbucket.org/adfreiburg/dehyph/internal/pkg/strategy"
	"bitbucket.org/adfreiburg/dehyph/internal/pkg/utils"
	"bitbucket.org/adfreiburg/dehyph/internal/pkg/vocab"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var appName = "Dehyphenation Evaluator"

var rootCmd = &cobra.Command{
	Use:   "evaluate",
	Short: appName,
	Long:  `Evaluates a dehyphenation strategy against gold labels`,
	Run:   run,
}

func init() {
	cmdapp.InitApplication(rootCmd)
	rootCmd.PersistentFlags().StringP("input", "i", "", "Input file")
	rootCmd.PersistentFlags().StringP("report", "r", "", "Report output file")
	rootCmd.PersistentFlags().StringP("failLog", "f", "", "Fail log output file")
	rootCmd.PersistentFlags().StringP("strategy", "s", "", "Strategy: baseline, baseline-supplemented, classifier, langmodel")
	cmdapp.Config.BindPFlag("input", rootCmd.PersistentFlags().Lookup("input"))
	cmdapp.Config.BindPFlag("report", rootCmd.PersistentFlags().Lookup("report"))
	cmdapp.Config.BindPFlag("failLog", rootCmd.PersistentFlags().Lookup("failLog"))
	cmdapp.Config.BindPFlag("strategy", rootCmd.PersistentFlags().Lookup("strategy"))
	cmdapp.Config.SetDefault("marker", "·")
	cmdapp.Config.SetDefault("charProb.windowRadius", 10)
	cmdapp.Config.SetDefault("failLog.topK", 20)
}

//Execute starts the tool
func Execute() {
	cmdapp.Execute(rootCmd)
}

func run(cmd *cobra.Command, args []string) {
	cmdapp.Log.Info("Starting " + appName)

	data := &ServiceData{}
	data.runID = uuid.New().String()
	cmdapp.Log.Infof("Run ID: %s", data.runID)

	data.input = cmdapp.Config.GetString("input")
	data.report = cmdapp.Config.GetString("report")
	if data.input == "" || data.report == "" {
		cmdapp.CheckOrPanic(errors.New("No input or report provided"), "")
	}
	data.failLog = cmdapp.Config.GetString("failLog")
	data.topK = cmdapp.Config.GetInt("failLog.topK")

	marker, err := markerRune(cmdapp.Config.GetString("marker"))
	cmdapp.CheckOrPanic(err, "Can't init marker")
	data.marker = marker

	data.strategyName = cmdapp.Config.GetString("strategy")
	cfg, err := newStrategyConfig(data.strategyName, marker)
	cmdapp.CheckOrPanic(err, "Can't init strategy resources")

	data.decider, err = strategy.For(data.strategyName, cfg)
	cmdapp.CheckOrPanic(err, "Can't init strategy")

	if cfg.Vocabulary != nil {
		data.mistakes = eval.NewMistakes(cfg.Vocabulary)
	}

	err = StartProcessing(data)
	cmdapp.CheckOrPanic(err, "")
	cmdapp.Log.Info("Done")
}

func newStrategyConfig(name string, marker rune) (*strategy.Config, error) {
	cfg := &strategy.Config{Marker: marker}
	var err error
	switch name {
	case strategy.NameBaseline, strategy.NameBaselineSupplemented:
		cfg.Vocabulary, err = vocab.Load(cmdapp.Config.GetString("vocabulary.path"))
		if err != nil {
			return nil, errors.Wrap(err, "Can't load vocabulary")
		}
		cmdapp.Log.Infof("Vocabulary size: %d", cfg.Vocabulary.Size())
	case strategy.NameClassifier:
		cfg.ModelFile = cmdapp.Config.GetString("model.path")
	case strategy.NameLangModel:
		cfg.WindowRadius = cmdapp.Config.GetInt("charProb.windowRadius")
		url, err := utils.GetURLFromConfig("charProb.url")
		if err != nil {
			return nil, err
		}
		cmdapp.Log.Infof("CharProb URL: %s", utils.URLToLog(url))
		cfg.Provider, err = charprob.NewClient(url)
		if err != nil {
			return nil, errors.Wrap(err, "Can't init charprob client")
		}
	}
	return cfg, nil
}

func markerRune(s string) (rune, error) {
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, errors.New("Marker must be one symbol, got '" + s + "'")
	}
	return runes[0], nil
}
