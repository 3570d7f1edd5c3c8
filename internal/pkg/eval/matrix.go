package eval

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

//Matrix is a 2x2 confusion matrix over keep/remove decisions.
//Keep is the positive class. It is owned by a single goroutine,
//guard it yourself if records are processed in parallel
type Matrix struct {
	TrueKeep    int
	TrueRemove  int
	FalseKeep   int
	FalseRemove int
}

//Add counts one prediction against its gold label
func (m *Matrix) Add(predicted, gold bool) {
	if predicted {
		if gold {
			m.TrueKeep++
		} else {
			m.FalseKeep++
		}
	} else {
		if gold {
			m.FalseRemove++
		} else {
			m.TrueRemove++
		}
	}
}

//FromLabels accumulates a matrix from parallel label streams.
//A length mismatch is a fatal evaluation setup error
func FromLabels(predicted, gold []bool) (*Matrix, error) {
	if len(predicted) != len(gold) {
		return nil, errors.Errorf("Prediction and gold stream length mismatch: %d vs %d", len(predicted), len(gold))
	}
	m := &Matrix{}
	for i, p := range predicted {
		m.Add(p, gold[i])
	}
	return m, nil
}

//Total returns the number of evaluated points
func (m *Matrix) Total() int {
	return m.TrueKeep + m.TrueRemove + m.FalseKeep + m.FalseRemove
}

//Accuracy over all decisions
func (m *Matrix) Accuracy() float64 {
	return ratio(m.TrueKeep+m.TrueRemove, m.Total())
}

//Precision of the keep class
func (m *Matrix) Precision() float64 {
	return ratio(m.TrueKeep, m.TrueKeep+m.FalseKeep)
}

//Recall of the keep class
func (m *Matrix) Recall() float64 {
	return ratio(m.TrueKeep, m.TrueKeep+m.FalseRemove)
}

//F1 is the harmonic mean of precision and recall
func (m *Matrix) F1() float64 {
	p, r := m.Precision(), m.Recall()
	if p+r == 0 {
		return 0
	}
	return 2 * p * r / (p + r)
}

//Render prepares a readable evaluation report
func (m *Matrix) Render() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Accuracy:                       %.2f%%\n", m.Accuracy()*100)
	fmt.Fprintf(&sb, "Accuracy 'expected non-hyphen': %.2f%%\n", ratio(m.TrueRemove, m.TrueRemove+m.FalseKeep)*100)
	fmt.Fprintf(&sb, "Accuracy 'expected hyphen':     %.2f%%\n", ratio(m.TrueKeep, m.TrueKeep+m.FalseRemove)*100)
	fmt.Fprintf(&sb, "Precision:                      %.4f\n", m.Precision())
	fmt.Fprintf(&sb, "Recall:                         %.4f\n", m.Recall())
	fmt.Fprintf(&sb, "F1:                             %.4f\n", m.F1())
	sb.WriteString("\nConfusion Matrix:\n")
	sb.WriteString("                expected '':   expected '-':\n")
	fmt.Fprintf(&sb, "predicted '' :  %11d     %11d\n", m.TrueRemove, m.FalseRemove)
	fmt.Fprintf(&sb, "predicted '-':  %11d     %11d\n", m.FalseKeep, m.TrueKeep)
	return sb.String()
}

func ratio(nom, denom int) float64 {
	if denom == 0 {
		return 0
	}
	return float64(nom) / float64(denom)
}
