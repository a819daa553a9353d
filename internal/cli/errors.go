package cli

import (
	"errors"
	"fmt"
)

// outputErrorCommon normalizes error emission across commands. Fatal errors
// go to stderr so stdout never carries a partial payload.
func outputErrorCommon(globals *Globals, code, message string) error {
	if globals != nil {
		fmt.Fprintf(globals.Stderr, "Error [%s]: %s\n", code, message)
	}
	return errors.New(message)
}
