package domain

import (
	"errors"
	"fmt"
)

// ReferenceLanguageCode is the code of the language written in the reference script
const ReferenceLanguageCode = "ru"

// StatusOK is the provider status code of a successful translation
const StatusOK = 200

// ErrEmptyTranslation is returned when the provider reports success without any text
var ErrEmptyTranslation = errors.New("translation response has no text")

// Direction is an ordered source->target pair of provider language codes
type Direction struct {
	From string
	To   string
}

// String renders the direction the way the provider expects it, e.g. "ru-en"
func (d Direction) String() string {
	return d.From + "-" + d.To
}

// ProviderError is a well-formed provider response with a non-OK status code
type ProviderError struct {
	Code    int
	Message string
}

func (e *ProviderError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("translation provider returned code %d", e.Code)
	}
	return fmt.Sprintf("translation provider returned code %d: %s", e.Code, e.Message)
}
