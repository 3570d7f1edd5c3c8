package charprob

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"bitbucket.org/adfreiburg/dehyph/internal/pkg/cmdapp"
	"github.com/gorilla/mux"
	"github.com/heptiolabs/healthcheck"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

//Estimator returns character probability distributions for a sentence
type Estimator interface {
	Estimate(sentence string) ([]map[string]float64, error)
}

type serviceMetrics struct {
	responseDur *prometheus.HistogramVec
}

// ServiceData keeps data required for service work
type ServiceData struct {
	Port      int
	health    healthcheck.Handler
	estimator Estimator
	metrics   serviceMetrics
}

//StartWebServer starts the HTTP service and listens for the requests
func StartWebServer(data *ServiceData) error {

	cmdapp.Log.Infof("Starting HTTP service at %d", data.Port)
	r := NewRouter(data)
	http.Handle("/", r)
	portStr := strconv.Itoa(data.Port)
	err := http.ListenAndServe(":"+portStr, nil)

	if err != nil {
		return errors.Wrap(err, "Can't start HTTP listener at port "+portStr)
	}
	return nil
}

//NewRouter creates the router for HTTP service
func NewRouter(data *ServiceData) *mux.Router {
	router := mux.NewRouter()
	ph := probHandler{data: data}
	router.Methods("GET").Path("/probabilities").Handler(&ph)
	router.Methods("GET").Path("/probabilities/").Handler(&ph)
	if data.health != nil {
		router.Methods("GET").Path("/live").HandlerFunc(data.health.LiveEndpoint)
		router.Methods("GET").Path("/ready").HandlerFunc(data.health.ReadyEndpoint)
	}
	return router
}

type probHandler struct {
	data *ServiceData
}

func (h *probHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	cmdapp.Log.Infof("Request from %s", r.Host)
	start := time.Now()
	defer h.observe(start)

	sentence := r.URL.Query().Get("q")
	if strings.TrimSpace(sentence) == "" {
		http.Error(w, "No sentence", http.StatusBadRequest)
		cmdapp.Log.Error("No sentence")
		return
	}

	result, err := h.data.estimator.Estimate(sentence)
	if err != nil {
		http.Error(w, "Cannot estimate probabilities", http.StatusInternalServerError)
		cmdapp.Log.Error("Cannot estimate probabilities " + err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	encoder := json.NewEncoder(w)
	err = encoder.Encode(&result)
	if err != nil {
		http.Error(w, "Can not prepare result", http.StatusBadRequest)
		cmdapp.Log.Error(err)
		return
	}
}

func (h *probHandler) observe(start time.Time) {
	if h.data.metrics.responseDur != nil {
		h.data.metrics.responseDur.WithLabelValues().Observe(time.Since(start).Seconds())
	}
}
