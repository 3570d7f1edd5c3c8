package tf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWrapper(t *testing.T) {
	w, err := NewWrapper("url:8500", "olia", 1)
	assert.Nil(t, err)
	assert.NotNil(t, w)
}

func TestNewWrapper_FailURL(t *testing.T) {
	_, err := NewWrapper("", "olia", 1)
	assert.NotNil(t, err)
}

func TestNewWrapper_FailModel(t *testing.T) {
	_, err := NewWrapper("url:8500", "", 1)
	assert.NotNil(t, err)
}

func TestNewModelSpec(t *testing.T) {
	ms := newModelSpec("olia", 2)
	assert.Equal(t, "olia", ms.Name)
	assert.Equal(t, int64(2), ms.GetVersion().GetValue())
}

func TestNewModelSpec_NoVersion(t *testing.T) {
	ms := newModelSpec("olia", 0)
	assert.Nil(t, ms.GetVersion())
}

func TestMakeRes(t *testing.T) {
	res := makeRes([]float32{1, 2, 3, 4, 5, 6}, 2, 3)
	assert.Equal(t, [][]float32{{1, 2, 3}, {4, 5, 6}}, res)
}
