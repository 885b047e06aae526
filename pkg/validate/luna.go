package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

// IsLuna reports whether the card reference attached to a top-up passes the
// Luhn checksum.
func IsLuna(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}
