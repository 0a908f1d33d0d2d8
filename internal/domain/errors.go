package domain

import "errors"

var (
	ErrMalformedSource  = errors.New("malformed source file")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrInvalidClaim     = errors.New("invalid claim")
	ErrTrackingFailed   = errors.New("email sent but failed to submit to tracking system")
)
