package charprob

import (
	"time"

	"bitbucket.org/adfreiburg/dehyph/internal/app/charprob/tf"
	"bitbucket.org/adfreiburg/dehyph/internal/pkg/cmdapp"
	"bitbucket.org/adfreiburg/dehyph/internal/pkg/metrics"
	"github.com/heptiolabs/healthcheck"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var appName = "Character Probability Service"

var rootCmd = &cobra.Command{
	Use:   "charprobService",
	Short: appName,
	Long:  `HTTP server to provide character probabilities from a language model`,
	Run:   run,
}

func init() {
	cmdapp.InitApplication(rootCmd)
	rootCmd.PersistentFlags().Int32P("port", "", 8000, "Default service port")
	cmdapp.Config.BindPFlag("port", rootCmd.PersistentFlags().Lookup("port"))
	cmdapp.Config.SetDefault("port", 8900)
}

//Execute starts the server
func Execute() {
	cmdapp.Execute(rootCmd)
}

func run(cmd *cobra.Command, args []string) {
	cmdapp.Log.Info("Starting " + appName)

	data := &ServiceData{}
	err := initMetrics(data)
	cmdapp.CheckOrPanic(err, "Can't init metrics")

	provider, err := NewSettingsDataProviderImpl(cmdapp.Config.GetString("modelDir"))
	cmdapp.CheckOrPanic(err, "Cannot init data provider")

	tfWrapper, err := tf.NewWrapper(cmdapp.Config.GetString("tf.url"), provider.data.Model, provider.data.Version)
	cmdapp.CheckOrPanic(err, "Cannot init tensorflow wrapper")

	data.health = healthcheck.NewHandler()
	data.health.AddLivenessCheck("tensorflow", healthcheck.Async(tfWrapper.Healthy, 10*time.Second))

	data.estimator, err = NewEstimatorImpl(provider, tfWrapper)
	cmdapp.CheckOrPanic(err, "Cannot init estimator")

	data.Port = cmdapp.Config.GetInt("port")

	err = StartWebServer(data)
	cmdapp.CheckOrPanic(err, "")
}

func initMetrics(data *ServiceData) error {
	namespace := "charprob_service"
	data.metrics.responseDur = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_durations_seconds",
			Help:      "Request latency distributions.",
		}, nil)

	return metrics.Register(data.metrics.responseDur)
}
