package parser

import (
	"strings"

	"github.com/akazarov/tenderstruct-go/pkg/tenderstruct/sheet"
)

// Headers is the tender header block from the top of the sheet.
type Headers struct {
	TenderID    any
	TenderTitle any
	Object      any
	Address     any
}

// HeaderParams bounds the header block scan.
type HeaderParams struct {
	MinRow int `mapstructure:"min_row" yaml:"min_row"`
	MaxRow int `mapstructure:"max_row" yaml:"max_row"`
	// Label prefixes, compared case-insensitively.
	SubjectLabel string `mapstructure:"subject_label" yaml:"subject_label"`
	ObjectLabel  string `mapstructure:"object_label" yaml:"object_label"`
	AddressLabel string `mapstructure:"address_label" yaml:"address_label"`
}

// DefaultHeaderParams matches the source convention: rows 3-5 with
// Russian labels.
func DefaultHeaderParams() HeaderParams {
	return HeaderParams{
		MinRow:       3,
		MaxRow:       5,
		SubjectLabel: "предмет тендера",
		ObjectLabel:  "объект",
		AddressLabel: "адрес",
	}
}

// ReadHeaders scans the header rows. On each row the first populated
// cell is the label and the second populated cell the value. The
// tender subject value is further split into ID (leading token,
// leading "№" stripped) and title (remainder). Missing parts stay nil.
func ReadHeaders(s sheet.Sheet, p HeaderParams) Headers {
	var h Headers
	for row := p.MinRow; row <= p.MaxRow && row <= s.MaxRow(); row++ {
		label, value, ok := labelValuePair(s, row)
		if !ok {
			continue
		}
		switch {
		case hasFoldedPrefix(label, p.SubjectLabel):
			h.TenderID, h.TenderTitle = splitSubject(value)
		case hasFoldedPrefix(label, p.ObjectLabel):
			h.Object = rawValue(value)
		case hasFoldedPrefix(label, p.AddressLabel):
			h.Address = rawValue(value)
		}
	}
	return h
}

// labelValuePair returns the first and second populated cells of a row.
func labelValuePair(s sheet.Sheet, row int) (label, value string, ok bool) {
	for col := 1; col <= s.MaxCol(); col++ {
		v := s.Value(row, col)
		if strings.TrimSpace(v) == "" {
			continue
		}
		if label == "" {
			label = v
			continue
		}
		return label, v, true
	}
	return label, "", label != ""
}

// splitSubject splits "№12345 Construction of ..." into ID and title.
// Without a space after the ID the whole remainder is the title and
// the ID stays nil.
func splitSubject(value string) (id, title any) {
	v := strings.TrimSpace(value)
	if v == "" {
		return nil, nil
	}
	v = strings.TrimPrefix(v, "№")
	idPart, rest, found := strings.Cut(v, " ")
	if !found {
		return nil, rawValue(v)
	}
	return rawValue(idPart), rawValue(rest)
}
