package sarvam

import (
	"context"
	"strings"

	"dhwani/apperr"
)

type translateRequest struct {
	Input              string `json:"input"`
	SourceLanguageCode string `json:"source_language_code"`
	TargetLanguageCode string `json:"target_language_code"`
}

type translateResponse struct {
	TranslatedText string `json:"translated_text"`
}

// Translate converts text into the target language. targetLang is a bare
// code such as "hi"; the "-IN" region suffix the API expects is appended
// here. The source language is auto-detected.
func (c *Client) Translate(ctx context.Context, text, targetLang string) (string, error) {
	req := translateRequest{
		Input:              text,
		SourceLanguageCode: "auto",
		TargetLanguageCode: regionCode(targetLang),
	}

	var resp translateResponse
	if err := c.postJSON(ctx, "/translate", req, &resp); err != nil {
		return "", serviceErr("translate request failed", err)
	}

	translated := strings.TrimSpace(resp.TranslatedText)
	if translated == "" {
		return "", apperr.New(apperr.KindService, "translate returned empty text")
	}
	return translated, nil
}

// regionCode maps a bare language code to the regional form the API uses.
func regionCode(lang string) string {
	if strings.Contains(lang, "-") {
		return lang
	}
	return lang + "-IN"
}
