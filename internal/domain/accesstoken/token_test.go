//go:build unit

package accesstoken_test

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"parkpass/internal/domain/accesstoken"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

func newCodec() *accesstoken.Codec {
	return accesstoken.NewCodec("PARKPASS", 2*time.Minute)
}

func TestCodec_RoundTrip(t *testing.T) {
	codec := newCodec()

	cases := []struct {
		subject string
		plate   string
	}{
		{subject: "9b2d7c1e-2f44-4d7a-9a0a-0f7e3c1d2b11", plate: "51F-123.45"},
		{subject: "driver-1", plate: "ABC 123"},
		{subject: "x", plate: "y"},
	}

	for _, tc := range cases {
		t.Run(tc.subject, func(t *testing.T) {
			raw := codec.Encode(tc.subject, tc.plate, baseTime)

			token, err := codec.Decode(raw)
			require.NoError(t, err)

			payload := "PARKPASS|" + tc.subject + "|" + strconv.FormatInt(baseTime.UnixMilli(), 10) + "|" + tc.plate
			sum := sha256.Sum256([]byte(payload))
			assert.Equal(t, hex.EncodeToString(sum[:]), token.IntegrityDigest())
			assert.Equal(t, tc.subject, token.SubjectID())
			assert.Equal(t, tc.plate, token.VehiclePlate())
			assert.Equal(t, baseTime.UnixMilli(), token.IssuedAtMillis())
			assert.Equal(t, raw, token.String())
		})
	}
}

func TestCodec_Decode_Errors(t *testing.T) {
	codec := newCodec()
	millis := strconv.FormatInt(baseTime.UnixMilli(), 10)

	cases := []struct {
		name  string
		raw   string
		errIs error
	}{
		{name: "too few fields", raw: "PARKPASS|d1|" + millis + "|ABC", errIs: accesstoken.ErrMalformedToken},
		{name: "too many fields", raw: "PARKPASS|d1|" + millis + "|ABC|x|y", errIs: accesstoken.ErrMalformedToken},
		{name: "empty string", raw: "", errIs: accesstoken.ErrMalformedToken},
		{name: "wrong issuer", raw: accesstoken.Encode("OTHER", "d1", "ABC", baseTime.UnixMilli()), errIs: accesstoken.ErrMalformedToken},
		{name: "non integer timestamp", raw: "PARKPASS|d1|yesterday|ABC|" + strings.Repeat("0", 64), errIs: accesstoken.ErrInvalidTimestamp},
		{name: "blank subject", raw: "PARKPASS| |" + millis + "|ABC|" + accesstoken.Digest("PARKPASS", " ", baseTime.UnixMilli(), "ABC"), errIs: accesstoken.ErrEmptySubject},
		{name: "blank vehicle", raw: "PARKPASS|d1|" + millis + "||" + accesstoken.Digest("PARKPASS", "d1", baseTime.UnixMilli(), ""), errIs: accesstoken.ErrEmptyVehicle},
		{name: "digest of other payload", raw: "PARKPASS|d1|" + millis + "|ABC|" + accesstoken.Digest("PARKPASS", "d2", baseTime.UnixMilli(), "ABC"), errIs: accesstoken.ErrIntegrityMismatch},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			token, err := codec.Decode(tc.raw)
			assert.Nil(t, token)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestCodec_TamperDetection(t *testing.T) {
	codec := newCodec()
	raw := codec.Encode("driver-42", "30A-999.99", baseTime)
	fields := strings.Split(raw, "|")

	flip := func(s string, i int) string {
		b := []byte(s)
		if b[i] == 'a' {
			b[i] = 'b'
		} else {
			b[i] = 'a'
		}
		return string(b)
	}

	t.Run("every digest character", func(t *testing.T) {
		for i := range len(fields[4]) {
			tampered := append([]string{}, fields...)
			tampered[4] = flip(fields[4], i)

			_, err := codec.Decode(strings.Join(tampered, "|"))
			require.Error(t, err)
			assert.ErrorIs(t, err, accesstoken.ErrIntegrityMismatch, "position %d", i)
			assert.False(t, errors.Is(err, accesstoken.ErrMalformedToken))
		}
	})

	t.Run("every plate character", func(t *testing.T) {
		for i := range len(fields[3]) {
			tampered := append([]string{}, fields...)
			tampered[3] = flip(fields[3], i)

			_, err := codec.Decode(strings.Join(tampered, "|"))
			require.Error(t, err)
			assert.ErrorIs(t, err, accesstoken.ErrIntegrityMismatch, "position %d", i)
		}
	})
}

func TestCodec_Validate_ExpiryBoundary(t *testing.T) {
	codec := newCodec()
	now := baseTime

	cases := []struct {
		name  string
		age   time.Duration
		errIs error
	}{
		{name: "fresh", age: 0},
		{name: "119s old", age: 119 * time.Second},
		{name: "exactly at window", age: 120 * time.Second},
		{name: "121s old", age: 121 * time.Second, errIs: accesstoken.ErrExpired},
		{name: "one hour old", age: time.Hour, errIs: accesstoken.ErrExpired},
		{name: "issued slightly in the future", age: -30 * time.Second},
		{name: "issued far in the future", age: -10 * time.Minute, errIs: accesstoken.ErrInvalidTimestamp},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raw := codec.Encode("driver-1", "ABC123", now.Add(-tc.age))
			token, err := codec.Validate(raw, now)
			if tc.errIs != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "driver-1", token.SubjectID())
		})
	}
}

func TestCodec_Validate_ChecksIntegrityBeforeExpiry(t *testing.T) {
	codec := newCodec()
	now := baseTime
	raw := codec.Encode("driver-1", "ABC123", now.Add(-time.Hour))
	tampered := strings.Replace(raw, "ABC123", "ABC124", 1)

	_, err := codec.Validate(tampered, now)
	assert.ErrorIs(t, err, accesstoken.ErrIntegrityMismatch)
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "QR code expired, request a new one", accesstoken.UserMessage(accesstoken.ErrExpired))
	assert.Equal(t, "Invalid QR code", accesstoken.UserMessage(accesstoken.ErrMalformedToken))
	assert.Equal(t, "QR code has been tampered with", accesstoken.UserMessage(accesstoken.ErrIntegrityMismatch))
	assert.Equal(t, "Invalid QR code", accesstoken.UserMessage(errors.New("boom")))
}
