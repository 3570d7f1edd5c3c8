package hyphenate

import (
	"bitbucket.org/adfreiburg/dehyph/internal/pkg/cmdapp"
	"bitbucket.org/adfreiburg/dehyph/internal/pkg/hyphen"
	"bitbucket.org/adfreiburg/dehyph/internal/pkg/injector"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var appName = "Synthetic Hyphenation Injector"

var rootCmd = &cobra.Command{
	Use:   "hyphenate",
	Short: appName,
	Long:  `Injects synthetic hyphenation points into corpus sentences`,
	Run:   run,
}

func init() {
	cmdapp.InitApplication(rootCmd)
	rootCmd.PersistentFlags().StringP("input", "i", "", "Input file or directory")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file or directory")
	rootCmd.PersistentFlags().StringP("mode", "m", "plain", "Dataset mode: plain, ontonotes, clueweb")
	rootCmd.PersistentFlags().StringP("patterns", "p", "", "Hyphenation patterns file")
	rootCmd.PersistentFlags().IntP("distance", "d", 10, "Min distance between injected hyphens")
	cmdapp.Config.BindPFlag("input", rootCmd.PersistentFlags().Lookup("input"))
	cmdapp.Config.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	cmdapp.Config.BindPFlag("mode", rootCmd.PersistentFlags().Lookup("mode"))
	cmdapp.Config.BindPFlag("patterns", rootCmd.PersistentFlags().Lookup("patterns"))
	cmdapp.Config.BindPFlag("distance", rootCmd.PersistentFlags().Lookup("distance"))
	cmdapp.Config.SetDefault("marker", "·")
}

//Execute starts the tool
func Execute() {
	cmdapp.Execute(rootCmd)
}

func run(cmd *cobra.Command, args []string) {
	cmdapp.Log.Info("Starting " + appName)

	data := &ServiceData{}
	data.input = cmdapp.Config.GetString("input")
	data.output = cmdapp.Config.GetString("output")
	if data.input == "" || data.output == "" {
		cmdapp.CheckOrPanic(errors.New("No input or output provided"), "")
	}

	var err error
	data.reformatter, err = NewReformatter(cmdapp.Config.GetString("mode"))
	cmdapp.CheckOrPanic(err, "Can't init reformatter")

	patterns, err := hyphen.Load(cmdapp.Config.GetString("patterns"))
	cmdapp.CheckOrPanic(err, "Can't load hyphenation patterns")

	marker, err := markerRune(cmdapp.Config.GetString("marker"))
	cmdapp.CheckOrPanic(err, "Can't init marker")

	data.injector, err = injector.New(patterns, cmdapp.Config.GetInt("distance"), marker)
	cmdapp.CheckOrPanic(err, "Can't init injector")

	err = StartProcessing(data)
	cmdapp.CheckOrPanic(err, "")
	cmdapp.Log.Info("Done")
}

func markerRune(s string) (rune, error) {
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, errors.New("Marker must be one symbol, got '" + s + "'")
	}
	return runes[0], nil
}
