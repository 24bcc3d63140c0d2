package utils

import "errors"

var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrCityNotFound           = errors.New("city not found")
	ErrPOIProviderUnavailable = errors.New("poi provider unavailable")
	ErrAdvisorDisabled        = errors.New("advisor disabled")
)
