package strategy

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testModel(t *testing.T, m *Model) *Classifier {
	var b bytes.Buffer
	assert.Nil(t, WriteModel(&b, m))
	c, err := NewClassifierFromReader(&b)
	assert.Nil(t, err)
	assert.NotNil(t, c)
	return c
}

func TestNewClassifierFailsOnMissingFile(t *testing.T) {
	c, err := NewClassifier("/no/such/model.bin")
	assert.Nil(t, c)
	assert.NotNil(t, err)
}

func TestNewClassifierFailsOnGarbage(t *testing.T) {
	c, err := NewClassifierFromReader(strings.NewReader("olia"))
	assert.Nil(t, c)
	assert.NotNil(t, err)
}

func TestNewClassifierFailsOnEmptyModel(t *testing.T) {
	var b bytes.Buffer
	assert.Nil(t, WriteModel(&b, &Model{}))
	c, err := NewClassifierFromReader(&b)
	assert.Nil(t, c)
	assert.NotNil(t, err)
}

func TestClassifierDecideKeep(t *testing.T) {
	c := testModel(t, &Model{Weights: map[string]float64{"p:lower=well": 5.0}})
	d, err := c.Decide(newPoint("well", "known"))
	assert.Nil(t, err)
	assert.True(t, d.Keep)
	assert.True(t, d.Confidence > 0.5)
}

func TestClassifierDecideRemove(t *testing.T) {
	c := testModel(t, &Model{Bias: -3.0, Weights: map[string]float64{"s:+1bigram=ma": 1.0}})
	d, err := c.Decide(newPoint("e", "mail"))
	assert.Nil(t, err)
	assert.False(t, d.Keep)
	assert.True(t, d.Confidence > 0.5)
}

func TestClassifierIsStateless(t *testing.T) {
	c := testModel(t, &Model{Weights: map[string]float64{"p:lower=well": 5.0}})
	d1, _ := c.Decide(newPoint("well", "known"))
	c.Decide(newPoint("e", "mail"))
	d2, _ := c.Decide(newPoint("well", "known"))
	assert.Equal(t, d1, d2)
}
