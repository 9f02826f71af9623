package script

import "unicode"

// Detector reports whether a text is dominantly written in one script
type Detector struct {
	table *unicode.RangeTable
}

// NewCyrillic creates a detector for the Cyrillic script
func NewCyrillic() *Detector {
	return &Detector{table: unicode.Cyrillic}
}

// IsReference reports whether more than half of the letters in text
// belong to the detector's script. Text without letters is never a match.
func (d *Detector) IsReference(text string) bool {
	var letters, matched int
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		letters++
		if unicode.Is(d.table, r) {
			matched++
		}
	}
	return letters > 0 && matched*2 > letters
}
