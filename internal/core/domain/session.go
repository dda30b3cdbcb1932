package domain

import "errors"

var ErrSessionNotFound = errors.New("session not found")

// Flash categories. A flash is a one-shot message stored on the session and
// surfaced in exactly one subsequent response.
const (
	FlashMessage = "message"
	FlashError   = "error"
	FlashNotice  = "notice"
	FlashSuccess = "success"
)
