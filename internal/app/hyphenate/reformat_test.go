package hyphenate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewReformatter(t *testing.T) {
	for _, m := range []string{"plain", "ontonotes", "clueweb"} {
		r, err := NewReformatter(m)
		assert.Nil(t, err, m)
		assert.NotNil(t, r, m)
	}
}

func TestNewReformatter_Fail(t *testing.T) {
	r, err := NewReformatter("olia")
	assert.Nil(t, r)
	assert.NotNil(t, err)
}

func TestPlain(t *testing.T) {
	res, ok := reformatPlain("a [b] c")
	assert.True(t, ok)
	assert.Equal(t, "a b c", res)
}

func TestOntonotes(t *testing.T) {
	res, ok := reformatOntonotes("the well - known author\tDT JJ HYPH VBN NN")
	assert.True(t, ok)
	assert.Equal(t, "the well-known author", res)
}

func TestOntonotes_Brackets(t *testing.T) {
	res, ok := reformatOntonotes("-LRB- yes -RRB-\t-LRB- UH -RRB-")
	assert.True(t, ok)
	assert.Equal(t, "( yes )", res)
}

func TestOntonotes_FailNoTags(t *testing.T) {
	_, ok := reformatOntonotes("no tags here")
	assert.False(t, ok)
}

func TestOntonotes_FailTagMismatch(t *testing.T) {
	_, ok := reformatOntonotes("one two\tNN")
	assert.False(t, ok)
}

func TestClueweb_StripsEntityTags(t *testing.T) {
	res, ok := reformatClueweb("[m.0h7h6|Toronto] is big")
	assert.True(t, ok)
	assert.Equal(t, "Toronto is big", res)
}

func TestClueweb_Interruptor(t *testing.T) {
	res, _ := reformatClueweb("wait - no")
	assert.Equal(t, "wait — no", res)
}

func TestClueweb_Link(t *testing.T) {
	res, ok := reformatClueweb("see www.example.com now")
	assert.True(t, ok)
	assert.Equal(t, "see x now", res)
}

func TestClueweb_Mail(t *testing.T) {
	res, _ := reformatClueweb("mail me@example.com now")
	assert.Equal(t, "mail x now", res)
}

func TestClueweb_KeepsAbbreviation(t *testing.T) {
	res, _ := reformatClueweb("the U.S. army")
	assert.Equal(t, "the U.S. army", res)
}

func TestClueweb_Slash(t *testing.T) {
	res, _ := reformatClueweb("either and/or both")
	assert.Equal(t, "either and / or both", res)
}

func TestClueweb_SoftHyphen(t *testing.T) {
	res, _ := reformatClueweb("hy­phen")
	assert.Equal(t, "hyphen", res)
}

func TestClueweb_SkipsGreek(t *testing.T) {
	_, ok := reformatClueweb("some ελληνικά text")
	assert.False(t, ok)
}

func TestClueweb_SkipsCyrillic(t *testing.T) {
	_, ok := reformatClueweb("Ты не хочешь увидеться с Томом?")
	assert.False(t, ok)
}

func TestPlain_SkipsTamil(t *testing.T) {
	_, ok := reformatPlain("அவள் வீட்டிற்கு சென்றாள்")
	assert.False(t, ok)
}

func TestPlain_MasksLink(t *testing.T) {
	res, ok := reformatPlain("see www.example.com now")
	assert.True(t, ok)
	assert.Equal(t, "see x now", res)
}
