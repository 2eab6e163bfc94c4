package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/itchan-dev/threadline/shared/api"
)

// writeDocument writes doc as indented JSON to path; "-" or empty means stdout.
func writeDocument(path string, doc api.Document) error {
	if path == "" || path == "-" {
		return encodeDocument(os.Stdout, doc)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := encodeDocument(f, doc); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func encodeDocument(w io.Writer, doc api.Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
