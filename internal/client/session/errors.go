package session

import "errors"

var (
	ErrEmptyToken = errors.New("session token must not be empty")

	// ErrPersistence wraps failures of the durable storage. The in-memory
	// transition has already been applied when it is returned.
	ErrPersistence = errors.New("session persistence failed")

	// ErrCorruptSession is returned by a Persister whose stored data cannot
	// be decoded.
	ErrCorruptSession = errors.New("stored session is corrupt")
)
