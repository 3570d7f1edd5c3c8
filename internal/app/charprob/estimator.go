package charprob

import (
	"bitbucket.org/adfreiburg/dehyph/internal/pkg/cmdapp"
	"github.com/pkg/errors"
)

//Data keeps language model settings
type Data struct {
	Info        string
	Charset     []string `yaml:"charset,flow"`
	Model       string   `yaml:"model"`
	Version     int      `yaml:"version"`
	UnknownChar string   `yaml:"unknownChar"`
}

//DataProvider provides data to initializer
type DataProvider interface {
	GetData() (*Data, error)
}

//TFWrap makes real call to tensorflow service
type TFWrap interface {
	Invoke([]int32) ([][]float32, error)
}

//EstimatorImpl turns sentences into char ids, invokes the model and
//maps the returned distributions back onto the charset
type EstimatorImpl struct {
	charIDs   map[string]int32
	charset   []string
	unknownID int32
	tfWrap    TFWrap
}

//NewEstimatorImpl creates instance
func NewEstimatorImpl(d DataProvider, tfWrap TFWrap) (*EstimatorImpl, error) {
	if tfWrap == nil {
		return nil, errors.New("No tf wrapper provided")
	}
	data, err := d.GetData()
	if err != nil {
		return nil, errors.Wrap(err, "Cannot get data")
	}
	if len(data.Charset) == 0 {
		return nil, errors.New("Empty charset")
	}
	p := EstimatorImpl{}
	p.charset = data.Charset
	p.charIDs = make(map[string]int32)
	for i, c := range data.Charset {
		p.charIDs[c] = int32(i)
	}
	uID, found := p.charIDs[data.UnknownChar]
	if !found {
		return nil, errors.New("Unknown char '" + data.UnknownChar + "' is not in charset")
	}
	p.unknownID = uID
	p.tfWrap = tfWrap
	cmdapp.Log.Infof("Charset size: %d", len(p.charset))
	return &p, nil
}

//Estimate is main EstimatorImpl method
func (p *EstimatorImpl) Estimate(sentence string) ([]map[string]float64, error) {
	ids := p.convertToNum(sentence)
	dists, err := p.tfWrap.Invoke(ids)
	if err != nil {
		return nil, errors.Wrap(err, "Cannot invoke tensorflow service")
	}
	if len(dists) != len(ids) {
		return nil, errors.Errorf("Expected %d distributions, got %d", len(ids), len(dists))
	}
	return p.prepareResult(dists), nil
}

func (p *EstimatorImpl) convertToNum(sentence string) []int32 {
	result := make([]int32, 0)
	for _, r := range sentence {
		k, f := p.charIDs[string(r)]
		if !f {
			k = p.unknownID
		}
		result = append(result, k)
	}
	return result
}

func (p *EstimatorImpl) prepareResult(dists [][]float32) []map[string]float64 {
	result := make([]map[string]float64, len(dists))
	for i, dist := range dists {
		m := make(map[string]float64)
		for j, v := range dist {
			if j < len(p.charset) {
				m[p.charset[j]] = float64(v)
			}
		}
		result[i] = m
	}
	return result
}
