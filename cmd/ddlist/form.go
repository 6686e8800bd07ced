package main

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"github.com/jask/ddlist/native"
)

//go:embed sample_form.html
var sampleForm []byte

// loadForm parses the form at path, or the built-in sample when path is empty.
func loadForm(path string) (*native.Form, error) {
	if path == "" {
		return native.Parse(bytes.NewReader(sampleForm))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open form: %w", err)
	}
	defer f.Close()
	form, err := native.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse form %s: %w", path, err)
	}
	return form, nil
}
