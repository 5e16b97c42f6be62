// Package extract pulls the text layer out of uploaded PDF bytes.
package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"dhwani/apperr"
)

// Text extracts the concatenated page text from a PDF, in page order.
// It returns an extraction error when the bytes are not a readable PDF,
// the document is encrypted, or no text layer is present (scanned pages).
// There is no OCR fallback.
func Text(data []byte) (text string, err error) {
	if len(data) == 0 {
		return "", apperr.New(apperr.KindExtraction, "empty document")
	}

	// The pdf package panics on some malformed inputs instead of
	// returning an error; treat that the same as a parse failure.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = apperr.Wrap(apperr.KindExtraction, "could not parse PDF", fmt.Errorf("%v", r))
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", apperr.Wrap(apperr.KindExtraction, "could not parse PDF", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", apperr.Wrap(apperr.KindExtraction, "could not extract text from PDF", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", apperr.Wrap(apperr.KindExtraction, "could not read PDF text", err)
	}

	text = buf.String()
	if strings.TrimSpace(text) == "" {
		return "", apperr.New(apperr.KindExtraction, "PDF has no extractable text layer")
	}
	return text, nil
}
