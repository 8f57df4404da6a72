package middleware

import "errors"

// ErrRetryExhausted reports that the retry middleware consumed every attempt
// for one provider call without a success. The returned error also wraps the
// last provider error, so errors.Is matches both this sentinel and the
// underlying cause (for example [ai.ErrUnavailable]).
var ErrRetryExhausted = errors.New("deckgen: all retry attempts exhausted")
