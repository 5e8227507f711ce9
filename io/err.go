package io

import (
	"errors"

	"github.com/ezrec/bft/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrChannelClosed = errors.New(f("channel closed"))
)
