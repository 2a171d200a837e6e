package utils

import (
	"github.com/jxskiss/base62"
)

var encoding = base62.NewEncoding("0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz")

func EncodeBinaryNumber(n uint64) string {
	return string(encoding.FormatUint(n))
}
