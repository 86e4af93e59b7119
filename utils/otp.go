// utils/otp.go
package utils

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/go-redis/redis/v8"
)

// ErrTooManyOTPRequests is returned when an email has exhausted its hourly
// OTP request budget.
var ErrTooManyOTPRequests = errors.New("too many OTP requests")

// GenerateOTP returns a 6-digit numeric one-time code.
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

// ValidateOTPRequests rate-limits OTP requests per email to 5 per hour.
// With no Redis client configured the check is skipped.
func ValidateOTPRequests(ctx context.Context, email string, rdb *redis.Client) error {
	if rdb == nil {
		return nil
	}

	key := "otp_requests:" + email
	attempts, err := rdb.Incr(ctx, key).Result()
	if err != nil {
		// Throttling is best effort; a Redis outage must not block signup.
		return nil
	}

	if attempts == 1 {
		rdb.Expire(ctx, key, 1*time.Hour)
	}

	if attempts > 5 {
		return ErrTooManyOTPRequests
	}
	return nil
}
