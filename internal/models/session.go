package models

import "time"

// BrowserSession is the in-memory state of one visitor: the converter
// fields and the quiz progress. It lives only as long as the process.
type BrowserSession struct {
	ID        string
	Converter TimeValue
	Quiz      QuizSession
	ExpiresAt time.Time
}

// IsExpired checks if the session has expired
func (s BrowserSession) IsExpired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
