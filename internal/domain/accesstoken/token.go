package accesstoken

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultIssuerTag = "PARKPASS"
	DefaultWindow    = 2 * time.Minute

	separator  = "|"
	fieldCount = 5
)

// AccessToken is the decoded form of a scanned entry/exit code. It only exists in transit.
type AccessToken struct {
	issuerTag       string
	subjectID       string
	issuedAtMillis  int64
	vehiclePlate    string
	integrityDigest string
}

func (t AccessToken) IssuerTag() string       { return t.issuerTag }
func (t AccessToken) SubjectID() string       { return t.subjectID }
func (t AccessToken) IssuedAtMillis() int64   { return t.issuedAtMillis }
func (t AccessToken) VehiclePlate() string    { return t.vehiclePlate }
func (t AccessToken) IntegrityDigest() string { return t.integrityDigest }

func (t AccessToken) IssuedAt() time.Time {
	return time.UnixMilli(t.issuedAtMillis)
}

// String renders the wire form ISSUER|subject|millis|plate|digest.
func (t AccessToken) String() string {
	return strings.Join([]string{
		t.issuerTag,
		t.subjectID,
		strconv.FormatInt(t.issuedAtMillis, 10),
		t.vehiclePlate,
		t.integrityDigest,
	}, separator)
}

// Digest is the hex SHA-256 over issuer|subject|issuedAt|plate.
func Digest(issuerTag, subjectID string, issuedAtMillis int64, vehiclePlate string) string {
	payload := issuerTag + separator + subjectID + separator +
		strconv.FormatInt(issuedAtMillis, 10) + separator + vehiclePlate
	sum := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(sum[:])
}

// Encode carries no nonce; equal inputs produce equal tokens.
func Encode(issuerTag, subjectID, vehiclePlate string, nowMillis int64) string {
	return AccessToken{
		issuerTag:       issuerTag,
		subjectID:       subjectID,
		issuedAtMillis:  nowMillis,
		vehiclePlate:    vehiclePlate,
		integrityDigest: Digest(issuerTag, subjectID, nowMillis, vehiclePlate),
	}.String()
}

type Codec struct {
	issuerTag string
	window    time.Duration
}

func NewCodec(issuerTag string, window time.Duration) *Codec {
	if issuerTag == "" {
		issuerTag = DefaultIssuerTag
	}
	if window <= 0 {
		window = DefaultWindow
	}
	return &Codec{issuerTag: issuerTag, window: window}
}

func (c *Codec) IssuerTag() string     { return c.issuerTag }
func (c *Codec) Window() time.Duration { return c.window }

func (c *Codec) Encode(subjectID, vehiclePlate string, now time.Time) string {
	return Encode(c.issuerTag, subjectID, vehiclePlate, now.UnixMilli())
}

// Decode checks structure, prefix and integrity. Freshness is left to Validate.
func (c *Codec) Decode(raw string) (*AccessToken, error) {
	fields := strings.Split(strings.TrimSpace(raw), separator)
	if len(fields) != fieldCount {
		return nil, newError(KindMalformed, "expected 5 fields, got "+strconv.Itoa(len(fields)))
	}
	if fields[0] != c.issuerTag {
		return nil, newError(KindMalformed, "unknown issuer tag")
	}

	issuedAt, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return nil, newError(KindInvalidTimestamp, "timestamp is not an integer")
	}
	if strings.TrimSpace(fields[1]) == "" {
		return nil, newError(KindEmptySubject, "subject is blank")
	}
	if strings.TrimSpace(fields[3]) == "" {
		return nil, newError(KindEmptyVehicle, "vehicle plate is blank")
	}

	expected := Digest(fields[0], fields[1], issuedAt, fields[3])
	if subtle.ConstantTimeCompare([]byte(expected), []byte(fields[4])) != 1 {
		return nil, newError(KindIntegrityMismatch, "digest does not match payload")
	}

	return &AccessToken{
		issuerTag:       fields[0],
		subjectID:       fields[1],
		issuedAtMillis:  issuedAt,
		vehiclePlate:    fields[3],
		integrityDigest: fields[4],
	}, nil
}

// Validate runs Decode and then rejects tokens outside the freshness window.
func (c *Codec) Validate(raw string, now time.Time) (*AccessToken, error) {
	token, err := c.Decode(raw)
	if err != nil {
		return nil, err
	}

	age := now.UnixMilli() - token.issuedAtMillis
	windowMillis := c.window.Milliseconds()
	if age > windowMillis {
		return nil, newError(KindExpired, "token older than "+c.window.String())
	}
	if -age > windowMillis {
		return nil, newError(KindInvalidTimestamp, "token issued in the future")
	}
	return token, nil
}
