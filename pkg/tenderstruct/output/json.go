// Package output serializes compiled documents: JSON artifacts and
// per-lot markdown reports.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/akazarov/tenderstruct-go/pkg/tenderstruct/models"
)

// ToJSON serializes the document.
func ToJSON(doc *models.Document, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(doc, "", "    ")
	}
	return json.Marshal(doc)
}

// WriteJSON writes the document to path. A path ending in ".gz" is
// gzip-compressed.
func WriteJSON(path string, doc *models.Document, pretty bool) error {
	data, err := ToJSON(doc, pretty)
	if err != nil {
		return fmt.Errorf("serialize document: %w", err)
	}

	if strings.HasSuffix(path, ".gz") {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		zw := gzip.NewWriter(f)
		if _, err := zw.Write(data); err != nil {
			f.Close()
			return fmt.Errorf("compress %s: %w", path, err)
		}
		if err := zw.Close(); err != nil {
			f.Close()
			return fmt.Errorf("compress %s: %w", path, err)
		}
		return f.Close()
	}

	return os.WriteFile(path, data, 0644)
}
