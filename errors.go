package bristol

import (
	"errors"
	"fmt"
)

// ErrParsing reports text that does not conform to the Bristol positional
// grammar: wrong token count, unparsable integer, out-of-bounds field access,
// or unexpected non-blank trailing content.
var ErrParsing = errors.New("parsing error")

// ErrInconsistency reports a mismatch between the arity declared in the text
// and the caller-supplied naming metadata.
var ErrInconsistency = errors.New("inconsistency")

func parsingErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrParsing}, args...)...)
}

func inconsistencyErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrInconsistency}, args...)...)
}
