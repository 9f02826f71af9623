package domain

// Language pairs a human-readable name with the provider's language code
type Language struct {
	Name string
	Code string
}

// Languages is an ordered table of supported languages.
// The first entry is the default.
type Languages []Language

// SupportedLanguages is the fixed set of languages the bot can switch to
var SupportedLanguages = Languages{
	{Name: "english", Code: "en"},
	{Name: "spanish", Code: "es"},
	{Name: "german", Code: "de"},
	{Name: "french", Code: "fr"},
	{Name: "italian", Code: "it"},
	{Name: "finnish", Code: "fi"},
	{Name: "chinese", Code: "zh"},
	{Name: "korean", Code: "ko"},
	{Name: "hebrew", Code: "he"},
	{Name: "thai", Code: "th"},
	{Name: "turkish", Code: "tr"},
	{Name: "swedish", Code: "sv"},
	{Name: "czech", Code: "cs"},
	{Name: "estonian", Code: "et"},
	{Name: "latvian", Code: "lv"},
	{Name: "dutch", Code: "nl"},
	{Name: "arabic", Code: "ar"},
	{Name: "japanese", Code: "ja"},
}

// Default returns the first language of the table
func (l Languages) Default() Language {
	return l[0]
}

// Lookup returns the provider code for name. Matching is exact.
func (l Languages) Lookup(name string) (string, bool) {
	for _, lang := range l {
		if lang.Name == name {
			return lang.Code, true
		}
	}
	return "", false
}

// Names returns language names in table order
func (l Languages) Names() []string {
	names := make([]string, 0, len(l))
	for _, lang := range l {
		names = append(names, lang.Name)
	}
	return names
}
