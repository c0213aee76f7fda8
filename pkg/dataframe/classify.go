// Package dataframe recognizes tabular values in generated results.
//
// It is the production implementation of the tabular classifier the
// dataframe output kind delegates to (outputs.TabularClassifier). The
// outputs package never imports the table library directly; keeping the
// dependency here lets the classifier evolve (new table libraries, new
// shapes) without touching the validation contract.
package dataframe

import (
	gotaframe "github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Kind identifiers returned by Classify.
const (
	KindDataFrame = "dataframe"
	KindSeries    = "series"
)

// Classifier recognizes gota dataframes and series.
type Classifier struct{}

// NewClassifier returns a classifier for gota tabular values.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify returns a non-empty kind identifier when v is a recognized
// tabular structure (a two-dimensional dataframe or a single-column
// series), and "" otherwise. Both values and pointers are recognized.
func (c *Classifier) Classify(v any) string {
	switch v.(type) {
	case gotaframe.DataFrame, *gotaframe.DataFrame:
		return KindDataFrame
	case series.Series, *series.Series:
		return KindSeries
	}
	return ""
}
