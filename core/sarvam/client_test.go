package sarvam

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"dhwani/apperr"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient("test-key")
	c.SetBaseURL(srv.URL)
	return c
}

func TestTranslate(t *testing.T) {
	var got translateRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/translate" {
			t.Errorf("path = %q, want /translate", r.URL.Path)
		}
		if key := r.Header.Get("api-subscription-key"); key != "test-key" {
			t.Errorf("api-subscription-key = %q", key)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(translateResponse{TranslatedText: "नमस्ते दुनिया"})
	})

	out, err := c.Translate(context.Background(), "hello world", "hi")
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	if out != "नमस्ते दुनिया" {
		t.Errorf("Translate() = %q", out)
	}
	if got.Input != "hello world" {
		t.Errorf("request input = %q", got.Input)
	}
	if got.SourceLanguageCode != "auto" {
		t.Errorf("source_language_code = %q, want auto", got.SourceLanguageCode)
	}
	if got.TargetLanguageCode != "hi-IN" {
		t.Errorf("target_language_code = %q, want hi-IN", got.TargetLanguageCode)
	}
}

func TestTranslateEmptyResult(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(translateResponse{TranslatedText: "  "})
	})

	_, err := c.Translate(context.Background(), "hello", "ta")
	if !apperr.IsKind(err, apperr.KindService) {
		t.Errorf("error = %v, want service kind", err)
	}
}

func TestTranslateServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})

	_, err := c.Translate(context.Background(), "hello", "hi")
	if !apperr.IsKind(err, apperr.KindService) {
		t.Errorf("error = %v, want service kind", err)
	}
}

func TestTextToSpeechJoinsAudioFragments(t *testing.T) {
	wav := []byte("RIFF....WAVEfmt fake-wav-bytes")
	half := len(wav) / 2
	// Fragment boundary must fall on a 3-byte group so each fragment is
	// independently valid base64.
	half -= half % 3

	var got speechRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/text-to-speech" {
			t.Errorf("path = %q, want /text-to-speech", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(speechResponse{
			RequestID: "req-1",
			Audios: []string{
				base64.StdEncoding.EncodeToString(wav[:half]),
				base64.StdEncoding.EncodeToString(wav[half:]),
			},
		})
	})

	audio, err := c.TextToSpeech(context.Background(), "नमस्ते", "hi")
	if err != nil {
		t.Fatalf("TextToSpeech() error = %v", err)
	}
	if string(audio) != string(wav) {
		t.Errorf("audio = %q, want %q", audio, wav)
	}
	if got.TargetLanguageCode != "hi-IN" {
		t.Errorf("target_language_code = %q, want hi-IN", got.TargetLanguageCode)
	}
}

func TestTextToSpeechUnsupportedLanguage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"unsupported target_language_code"}`, http.StatusBadRequest)
	})

	_, err := c.TextToSpeech(context.Background(), "hello", "xx")
	if !apperr.IsKind(err, apperr.KindUnsupportedLanguage) {
		t.Errorf("error kind = %q, want %q", apperr.Kind(err), apperr.KindUnsupportedLanguage)
	}
}

func TestTextToSpeechNoAudio(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(speechResponse{RequestID: "req-2"})
	})

	_, err := c.TextToSpeech(context.Background(), "hello", "hi")
	if !apperr.IsKind(err, apperr.KindService) {
		t.Errorf("error = %v, want service kind", err)
	}
}

func TestRegionCode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"hi", "hi-IN"},
		{"od", "od-IN"},
		{"ta-IN", "ta-IN"},
	}
	for _, tt := range tests {
		if got := regionCode(tt.in); got != tt.want {
			t.Errorf("regionCode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
