package domain

import "github.com/m-mizutani/goerr/v2"

var (
	ErrConfiguration = goerr.New("configuration error")
	ErrInvalidAction = goerr.New("invalid action")
	ErrUnknownAction = goerr.New("unknown action")
)
