package domain

import (
	"sort"
	"time"
)

// State is the bot's per-process mutable state.
// It is owned by the poll loop and is not safe for concurrent use.
type State struct {
	languages      Languages
	targetLanguage string
	lastOffset     int
	requestCount   int
	knownUsers     map[string]struct{}
	startTime      time.Time
}

// NewState creates state targeting the default language of languages
func NewState(languages Languages, startTime time.Time) *State {
	return &State{
		languages:      languages,
		targetLanguage: languages.Default().Name,
		knownUsers:     make(map[string]struct{}),
		startTime:      startTime,
	}
}

// Languages returns the supported language table
func (s *State) Languages() Languages {
	return s.languages
}

// TargetLanguage returns the name of the active target language
func (s *State) TargetLanguage() string {
	return s.targetLanguage
}

// TargetCode returns the provider code of the active target language
func (s *State) TargetCode() string {
	if code, ok := s.languages.Lookup(s.targetLanguage); ok {
		return code
	}
	return s.languages.Default().Code
}

// SetLanguage switches the target language to name.
// Unknown names reset the target to the default and report false.
func (s *State) SetLanguage(name string) bool {
	if _, ok := s.languages.Lookup(name); ok {
		s.targetLanguage = name
		return true
	}
	s.targetLanguage = s.languages.Default().Name
	return false
}

// LastOffset returns the id of the last consumed update
func (s *State) LastOffset() int {
	return s.lastOffset
}

// Advance moves the offset to updateID. It refuses to move backwards
// and reports whether the offset changed.
func (s *State) Advance(updateID int) bool {
	if updateID <= s.lastOffset {
		return false
	}
	s.lastOffset = updateID
	return true
}

// RecordRequest counts a request from username
func (s *State) RecordRequest(username string) {
	s.requestCount++
	s.knownUsers[username] = struct{}{}
}

// RequestCount returns the number of recorded requests
func (s *State) RequestCount() int {
	return s.requestCount
}

// KnownUsers returns recorded usernames, sorted
func (s *State) KnownUsers() []string {
	users := make([]string, 0, len(s.knownUsers))
	for u := range s.knownUsers {
		users = append(users, u)
	}
	sort.Strings(users)
	return users
}

// StartTime returns when the state was created
func (s *State) StartTime() time.Time {
	return s.startTime
}

// Uptime returns time elapsed since start
func (s *State) Uptime(now time.Time) time.Duration {
	return now.Sub(s.startTime)
}
