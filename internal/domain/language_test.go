package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLanguages_Lookup(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectedCode string
		expectedOK   bool
	}{
		{name: "default language", input: "english", expectedCode: "en", expectedOK: true},
		{name: "last language", input: "japanese", expectedCode: "ja", expectedOK: true},
		{name: "estonian", input: "estonian", expectedCode: "et", expectedOK: true},
		{name: "case sensitive", input: "English", expectedOK: false},
		{name: "unknown", input: "klingon", expectedOK: false},
		{name: "empty", input: "", expectedOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := SupportedLanguages.Lookup(tt.input)

			assert.Equal(t, tt.expectedOK, ok)
			assert.Equal(t, tt.expectedCode, code)
		})
	}
}

func TestLanguages_DefaultIsFirstEntry(t *testing.T) {
	assert.Equal(t, Language{Name: "english", Code: "en"}, SupportedLanguages.Default())
}

func TestLanguages_NamesKeepOrder(t *testing.T) {
	names := SupportedLanguages.Names()

	assert.Len(t, names, len(SupportedLanguages))
	assert.Equal(t, "english", names[0])
	assert.Equal(t, "spanish", names[1])
	assert.Equal(t, "japanese", names[len(names)-1])
}

func TestDirection_String(t *testing.T) {
	assert.Equal(t, "ru-en", Direction{From: "ru", To: "en"}.String())
}

func TestProviderError_Error(t *testing.T) {
	assert.Equal(t, "translation provider returned code 402", (&ProviderError{Code: 402}).Error())
	assert.Equal(t,
		"translation provider returned code 401: API key is invalid",
		(&ProviderError{Code: 401, Message: "API key is invalid"}).Error(),
	)
}
