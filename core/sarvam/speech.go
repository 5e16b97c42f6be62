package sarvam

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"dhwani/apperr"
)

type speechRequest struct {
	Text               string `json:"text"`
	TargetLanguageCode string `json:"target_language_code"`
}

type speechResponse struct {
	RequestID string   `json:"request_id"`
	Audios    []string `json:"audios"`
}

// TextToSpeech synthesizes spoken audio for text in the target language and
// returns the decoded WAV bytes. The API splits long input into several
// base64 fragments which are concatenated before decoding.
func (c *Client) TextToSpeech(ctx context.Context, text, targetLang string) ([]byte, error) {
	req := speechRequest{
		Text:               text,
		TargetLanguageCode: regionCode(targetLang),
	}

	var resp speechResponse
	if err := c.postJSON(ctx, "/text-to-speech", req, &resp); err != nil {
		// The API answers 400 when it has no voice for the requested
		// language; that is a caller mistake, not a backend outage.
		var se *statusError
		if errors.As(err, &se) && se.Status == http.StatusBadRequest {
			return nil, apperr.Wrap(apperr.KindUnsupportedLanguage,
				"speech synthesis does not support language "+targetLang, err)
		}
		return nil, serviceErr("text-to-speech request failed", err)
	}

	if len(resp.Audios) == 0 {
		return nil, apperr.New(apperr.KindService, "text-to-speech returned no audio")
	}

	audio, err := base64.StdEncoding.DecodeString(strings.Join(resp.Audios, ""))
	if err != nil {
		return nil, serviceErr("decode text-to-speech audio", err)
	}
	if len(audio) == 0 {
		return nil, apperr.New(apperr.KindService, "text-to-speech returned empty audio")
	}
	return audio, nil
}
