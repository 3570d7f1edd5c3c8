package cmdapp

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "test",
		Short: "test",
		Long:  `test`,
		Run:   run}
}

func run(cmd *cobra.Command, args []string) {
	Log.Info("Starting test app")
}

func TestReadEnvironmentVariable(t *testing.T) {
	os.Setenv("VOCABULARY_PATH", "olia")
	InitApplication(newRootCmd())

	assert.Equal(t, "olia", Config.GetString("vocabulary.path"))
}

func TestReadConfig(t *testing.T) {
	initAppFromTempFile(t, "vocabulary:\n     path: olia\n")

	assert.Equal(t, "olia", Config.GetString("vocabulary.path"))
}

func TestEnvBeatsConfig(t *testing.T) {
	os.Setenv("VOCABULARY_PATH", "xxxx")
	initAppFromTempFile(t, "vocabulary:\n     path: olia\n")

	assert.Equal(t, "xxxx", Config.GetString("vocabulary.path"))
}

func TestDefaultLogger(t *testing.T) {
	initDefaultLevel()
	initAppFromTempFile(t, "")

	assert.Equal(t, "info", Log.GetLevel().String())
}

func TestLoggerInitFromConfig(t *testing.T) {
	initDefaultLevel()
	initAppFromTempFile(t, "logger:\n    level: trace\n")

	assert.Equal(t, "trace", Log.GetLevel().String())
}

func TestLoggerLevelInitFromEnv(t *testing.T) {
	initDefaultLevel()

	os.Setenv("LOGGER_LEVEL", "trace")
	initAppFromTempFile(t, "logger:\n    level: info\n")

	assert.Equal(t, "trace", Log.GetLevel().String())
}

func TestLogIf(t *testing.T) {
	LogIf(nil)
	LogIf(errors.New("olia"))
}

func initAppFromTempFile(t *testing.T, data string) {
	f, err := ioutil.TempFile("", "test.*.yml")
	assert.Nil(t, err)
	f.WriteString(data)
	f.Sync()

	defer os.Remove(f.Name())

	rootCmd := newRootCmd()
	InitApplication(rootCmd)
	configFile = f.Name()
	rootCmd.Execute()
}

func initDefaultLevel() {
	Log.SetLevel(logrus.ErrorLevel)
}
