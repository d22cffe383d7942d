package services

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"
)

// Page cursors serialize the (createdAt, id) keyset of the last returned row
// as "<epochMillis>:<id>" and encode it with the padding-free URL alphabet.

func EncodeCursor(createdAt time.Time, id int64) string {
	raw := strconv.FormatInt(createdAt.UnixMilli(), 10) + ":" + strconv.FormatInt(id, 10)
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// DecodeCursor returns ok=false for any malformed token. Callers treat that
// as an absent cursor and restart from the first page.
func DecodeCursor(token string) (createdAt time.Time, id int64, ok bool) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return time.Time{}, 0, false
	}
	parts := strings.SplitN(string(raw), ":", 2)
	if len(parts) != 2 {
		return time.Time{}, 0, false
	}
	millis, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return time.Time{}, 0, false
	}
	id, err = strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return time.Time{}, 0, false
	}
	return time.UnixMilli(millis).UTC(), id, true
}
