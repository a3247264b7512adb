package domain

import "errors"

var (
	ErrInvalidParameter  = errors.New("invalid parameter")
	ErrUnsupportedFormat = errors.New("unsupported video format")
	ErrExternalTool      = errors.New("external tool failure")
)
