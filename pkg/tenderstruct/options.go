// Package tenderstruct compiles semi-structured tender spreadsheets
// into a normalized hierarchical document model.
package tenderstruct

import (
	"log/slog"

	"github.com/akazarov/tenderstruct-go/pkg/tenderstruct/normalize"
	"github.com/akazarov/tenderstruct-go/pkg/tenderstruct/parser"
)

// Options configures compilation. The zero value is not usable; start
// from DefaultOptions. All marker phrases and scan windows follow the
// source tender convention but are plain data and can be replaced for
// other phrasings.
type Options struct {
	// Sheet selects the worksheet by name; empty means the first
	// worksheet of the workbook.
	Sheet string `mapstructure:"sheet" yaml:"sheet"`

	Layout    parser.LayoutParams   `mapstructure:"layout" yaml:"layout"`
	Lots      parser.LotParams      `mapstructure:"lots" yaml:"lots"`
	Rows      parser.RowParams      `mapstructure:"rows" yaml:"rows"`
	Summary   parser.SummaryParams  `mapstructure:"summary" yaml:"summary"`
	Headers   parser.HeaderParams   `mapstructure:"headers" yaml:"headers"`
	Executor  parser.ExecutorParams `mapstructure:"executor" yaml:"executor"`
	Normalize normalize.Params      `mapstructure:"normalize" yaml:"normalize"`

	// Normalizer produces job_title_normalized; nil selects the
	// built-in normalizer.
	Normalizer parser.TitleNormalizer `mapstructure:"-" yaml:"-"`

	// Logger receives extraction warnings; nil discards them.
	Logger *slog.Logger `mapstructure:"-" yaml:"-"`
}

// DefaultOptions returns the source-convention defaults.
func DefaultOptions() Options {
	return Options{
		Layout:    parser.DefaultLayoutParams(),
		Lots:      parser.DefaultLotParams(),
		Rows:      parser.DefaultRowParams(),
		Summary:   parser.DefaultSummaryParams(),
		Headers:   parser.DefaultHeaderParams(),
		Executor:  parser.DefaultExecutorParams(),
		Normalize: normalize.DefaultParams(),
	}
}

func (o Options) normalizer() parser.TitleNormalizer {
	if o.Normalizer != nil {
		return o.Normalizer
	}
	return normalize.NewTitle()
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.DiscardHandler)
}
