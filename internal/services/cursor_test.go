package services

import (
	"testing"
	"time"
)

func TestCursor_RoundTrip(t *testing.T) {
	at := time.Date(2025, 3, 14, 9, 26, 53, 589_000_000, time.UTC)

	token := EncodeCursor(at, 42)

	gotAt, gotID, ok := DecodeCursor(token)
	if !ok {
		t.Fatal("decode failed for a token we just encoded")
	}
	if !gotAt.Equal(at) {
		t.Errorf("createdAt: got %v want %v", gotAt, at)
	}
	if gotID != 42 {
		t.Errorf("id: got %d want 42", gotID)
	}
}

func TestDecodeCursor_Malformed(t *testing.T) {
	cases := []string{
		"invalid-cursor-123",
		"%%%",
		"",
		"bm8tY29sb24",      // "no-colon"
		"YWJjOjQy",         // "abc:42", non-numeric millis
		"MTcwMDAwMDAwMDp4", // "1700000000:x", non-numeric id
	}

	for _, token := range cases {
		if _, _, ok := DecodeCursor(token); ok {
			t.Errorf("DecodeCursor(%q) unexpectedly succeeded", token)
		}
	}
}
