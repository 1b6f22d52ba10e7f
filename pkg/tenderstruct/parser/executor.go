package parser

import (
	"strings"

	"github.com/akazarov/tenderstruct-go/pkg/tenderstruct/models"
	"github.com/akazarov/tenderstruct-go/pkg/tenderstruct/sheet"
)

// ExecutorParams bounds the executor block scan at the sheet bottom.
type ExecutorParams struct {
	// Column holds the executor labels.
	Column int `mapstructure:"column" yaml:"column"`
	// Label prefixes, compared case-insensitively.
	NameLabel  string `mapstructure:"name_label" yaml:"name_label"`
	PhoneLabel string `mapstructure:"phone_label" yaml:"phone_label"`
	DateLabel  string `mapstructure:"date_label" yaml:"date_label"`
}

// DefaultExecutorParams matches the source convention: column 2 with
// Russian labels.
func DefaultExecutorParams() ExecutorParams {
	return ExecutorParams{
		Column:     2,
		NameLabel:  "исполнитель",
		PhoneLabel: "телефон",
		DateLabel:  "дата подготовки",
	}
}

// ReadExecutor scans the three rows just above the sheet bottom
// (maxRow-5 .. maxRow-3) for the executor/phone/date labels and takes
// the text after the first colon. The date label also tolerates the
// "label value" form without a colon.
func ReadExecutor(s sheet.Sheet, p ExecutorParams) models.Executor {
	var ex models.Executor

	maxRow := s.MaxRow()
	for row := maxRow - 5; row <= maxRow-3; row++ {
		if row < 1 {
			continue
		}
		v := s.Value(row, p.Column)
		if v == "" {
			continue
		}
		switch {
		case hasFoldedPrefix(v, p.NameLabel):
			ex.Name = afterColon(v)
		case hasFoldedPrefix(v, p.PhoneLabel):
			ex.Phone = afterColon(v)
		case hasFoldedPrefix(v, p.DateLabel):
			ex.Date = afterLabel(v, p.DateLabel)
		}
	}
	return ex
}

// afterColon returns the trimmed text after the first colon, nil when
// the colon is absent.
func afterColon(v string) any {
	_, rest, found := strings.Cut(v, ":")
	if !found {
		return nil
	}
	return rawValue(rest)
}

// afterLabel returns the value part following the label, accepting
// both "label: value" and "label value".
func afterLabel(v, label string) any {
	rest := v[len(label):]
	if strings.HasPrefix(strings.TrimLeft(rest, " "), ":") {
		return afterColon(rest)
	}
	return rawValue(rest)
}
