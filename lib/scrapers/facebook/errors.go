package facebook

import "errors"

// every failure in the pipeline funnels into one of these kinds; none
// of them is retried, the request that hit it is over
var (
	ErrPageUnavailable         = errors.New("page returned a non-success status")
	ErrDatrTokenNotFound       = errors.New("datr token not found in login page")
	ErrLoginFormMissing        = errors.New("login form not found in login page")
	ErrLoginRejected           = errors.New("credentials were rejected")
	ErrCheckpointRequired      = errors.New("account requires checkpoint verification")
	ErrTokenExtraction         = errors.New("async token could not be extracted")
	ErrUnsupportedLocaleFormat = errors.New("account locale has an unexpected format")
	ErrNoData                  = errors.New("no birthdays could be extracted")
	ErrEntityResolution        = errors.New("entity id could not be resolved")
)
