package strategy

import (
	"bitbucket.org/adfreiburg/dehyph/internal/pkg/strategy/api"
	"bitbucket.org/adfreiburg/dehyph/internal/pkg/vocab"
	"github.com/pkg/errors"
)

//Strategy names accepted by the selector
const (
	NameBaseline             = "baseline"
	NameBaselineSupplemented = "baseline-supplemented"
	NameClassifier           = "classifier"
	NameLangModel            = "langmodel"
)

//Config carries the immutable resources strategies are built from.
//They load once at startup and are shared read only
type Config struct {
	Vocabulary   *vocab.Vocabulary
	ModelFile    string
	Provider     ProbProvider
	WindowRadius int
	Marker       rune
}

//For selects a decision strategy by name, once per run.
//An unknown name is a configuration error, there is no silent default
func For(name string, cfg *Config) (api.Decider, error) {
	if cfg == nil {
		return nil, errors.New("No strategy config")
	}
	switch name {
	case NameBaseline:
		return NewVocabBaseline(cfg.Vocabulary, false)
	case NameBaselineSupplemented:
		return NewVocabBaseline(cfg.Vocabulary, true)
	case NameClassifier:
		return NewClassifier(cfg.ModelFile)
	case NameLangModel:
		return NewLangModel(cfg.Provider, cfg.WindowRadius, cfg.Marker)
	}
	return nil, errors.Errorf("Unknown strategy '%s'", name)
}
