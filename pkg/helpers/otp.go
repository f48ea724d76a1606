package helpers

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"
)

// OTP helpers

const otpSpace = 1000000

// KeySignupPending is the Redis key for a pending signup of the given email
func KeySignupPending(email string) string {
	return "signup:pending:" + email
}

// GenOTPCode generates a uniformly distributed 6-digit code as a zero-padded string
func GenOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpSpace))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// OTPEqual compares two codes exactly, in constant time
func OTPEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
