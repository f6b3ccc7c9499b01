package io

import (
	"errors"

	"github.com/fbzr/Computer-Architecture/translate"
)

var f = translate.From

var (
	// Output errors
	ErrShortWrite = errors.New(f("short write"))
)
