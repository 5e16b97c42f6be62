package model

import "sort"

// Language is one selectable translation/speech target.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// supportedLanguages maps target language codes to display names. The set
// mirrors what the Sarvam translate and TTS backends both accept.
var supportedLanguages = map[string]string{
	"hi": "Hindi",
	"bn": "Bengali",
	"ta": "Tamil",
	"te": "Telugu",
	"kn": "Kannada",
	"ml": "Malayalam",
	"mr": "Marathi",
	"gu": "Gujarati",
	"pa": "Punjabi",
	"od": "Odia",
}

// IsSupportedLanguage reports whether code is a selectable target language.
func IsSupportedLanguage(code string) bool {
	_, ok := supportedLanguages[code]
	return ok
}

// LanguageName returns the display name for code, or "" if unsupported.
func LanguageName(code string) string {
	return supportedLanguages[code]
}

// SupportedLanguages returns the selectable languages sorted by code.
func SupportedLanguages() []Language {
	langs := make([]Language, 0, len(supportedLanguages))
	for code, name := range supportedLanguages {
		langs = append(langs, Language{Code: code, Name: name})
	}
	sort.Slice(langs, func(i, j int) bool { return langs[i].Code < langs[j].Code })
	return langs
}
