package charprob

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"bitbucket.org/adfreiburg/dehyph/internal/pkg/utils"
	"github.com/cenkalti/backoff"
	"github.com/pkg/errors"
)

//Client queries the character probability service over HTTP.
//The service wraps a pretrained bidirectional character language model
//and returns one character to probability map per sentence position
type Client struct {
	url        string
	httpclient *http.Client
	bp         func() backoff.BackOff
}

//NewClient creates a Client for the service URL
func NewClient(urlStr string) (*Client, error) {
	res := Client{}
	if urlStr == "" {
		return nil, errors.New("No charProb.url provided")
	}
	if _, err := url.Parse(urlStr); err != nil {
		return nil, errors.Wrap(err, "Can't parse url "+urlStr)
	}
	res.url = urlStr
	res.httpclient = &http.Client{Timeout: time.Minute}
	res.bp = newExpBackOff
	return &res, nil
}

//Probabilities returns the model distributions for each character position
func (c *Client) Probabilities(sentence string) ([]map[string]float64, error) {
	var result []map[string]float64
	op := func() error {
		var err error
		result, err = c.invoke(sentence)
		return err
	}
	err := backoff.Retry(op, c.bp())
	if err != nil {
		return nil, errors.Wrap(err, "Can't invoke char probability service")
	}
	return result, nil
}

func (c *Client) invoke(sentence string) ([]map[string]float64, error) {
	resp, err := c.httpclient.Get(c.url + "?q=" + url.QueryEscape(sentence))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if err := utils.ValidateResponse(resp); err != nil {
		return nil, err
	}
	var result []map[string]float64
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, errors.Wrap(err, "Can't decode response")
	}
	return result, nil
}

func newExpBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = 45 * time.Second
	b.Reset()
	return b
}
