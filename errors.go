package Byte_View

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// ErrOutOfRange 越界访问，属于调用方的编程错误
var ErrOutOfRange = errors.New("byteview: out of range")

// outOfRange logs the failing access and panics with an error wrapping ErrOutOfRange.
func outOfRange(op string, n, length int) {
	err := fmt.Errorf("%w: %s %d with length %d", ErrOutOfRange, op, n, length)
	logrus.WithFields(logrus.Fields{
		"op":     op,
		"arg":    n,
		"length": length,
	}).Error("byteview access out of range")
	panic(err)
}
