package model

import "time"

// Briefing is the full result of one pipeline run: the English summary, its
// translation and a reference to the synthesized audio. Briefings are
// request-scoped; nothing about them survives beyond the response except the
// stored audio object.
type Briefing struct {
	ID           string    `json:"id"`
	LanguageCode string    `json:"language_code"`
	Summary      string    `json:"summary"`
	Translation  string    `json:"translation"`
	AudioObject  string    `json:"-"`
	AudioURL     string    `json:"audio_url"`
	CreatedAt    time.Time `json:"created_at"`
}
