package game

import "errors"

var (
	ErrSessionFull = errors.New("session full")
	ErrNameTaken   = errors.New("name already taken")
)
