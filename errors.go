package mceliece

import (
	"errors"
	"fmt"
)

// ErrEntropy is returned by Generate and Encapsulate when the entropy
// source fails or produces output too biased to sample from. It is
// fatal and not retryable. It is also the only externally visible
// failure: malformed ciphertexts do not produce errors.
var ErrEntropy = fmt.Errorf("entropy source failed")

func IsErrEntropy(err error) bool {
	return errors.Is(err, ErrEntropy)
}
