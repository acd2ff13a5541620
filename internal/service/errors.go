package service

import "errors"

var (
	// ErrOpenSessionExists is returned by Start when a session is
	// already running. Only one session may be open at a time.
	ErrOpenSessionExists = errors.New("a work session is already running")

	// ErrNoOpenSession is returned by Stop when nothing is running.
	ErrNoOpenSession = errors.New("no work session is running")

	// ErrNotLoggedIn is returned when an operation needs stored
	// credentials and none exist.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrMessageTooLong is returned by Send for messages over the
	// server's length limit.
	ErrMessageTooLong = errors.New("message exceeds maximum length")

	// ErrEmptyMessage is returned by Send for blank messages.
	ErrEmptyMessage = errors.New("message is empty")

	// ErrGroupNotFound is returned when a group id or name matches
	// nothing the user is a member of.
	ErrGroupNotFound = errors.New("group not found")
)
