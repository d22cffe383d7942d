package crypto

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/Imadeveloperrr/backend-test-v1/internal/model"
)

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	inputs := [][]byte{
		[]byte(`{"cardNumber":"4571000000001234","amount":10000}`),
		[]byte(""),
		[]byte("a"),
		bytes.Repeat([]byte{0x00, 0xff}, 512),
	}

	for _, plaintext := range inputs {
		token, err := Encrypt(plaintext, "api-key-secret")
		if err != nil {
			t.Fatalf("encrypt: %v", err)
		}

		got, err := Decrypt(token, "api-key-secret")
		if err != nil {
			t.Fatalf("decrypt: %v", err)
		}
		if !bytes.Equal(got, plaintext) {
			t.Errorf("round trip mismatch: got %q want %q", got, plaintext)
		}
	}
}

func TestEncrypt_NonceFreshness(t *testing.T) {
	plaintext := []byte("identical payload")

	first, err := Encrypt(plaintext, "secret")
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	second, err := Encrypt(plaintext, "secret")
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}

	if first == second {
		t.Fatal("two encryptions of the same plaintext produced identical tokens")
	}

	for _, token := range []string{first, second} {
		got, err := Decrypt(token, "secret")
		if err != nil {
			t.Fatalf("decrypt: %v", err)
		}
		if !bytes.Equal(got, plaintext) {
			t.Errorf("got %q want %q", got, plaintext)
		}
	}
}

func TestDecrypt_WrongKey(t *testing.T) {
	token, err := Encrypt([]byte("payload"), "right-key")
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}

	if _, err := Decrypt(token, "wrong-key"); !errors.Is(err, model.ErrIntegrity) {
		t.Fatalf("expected ErrIntegrity, got %v", err)
	}
}

func TestDecrypt_Tampered(t *testing.T) {
	token, err := Encrypt([]byte("payload"), "secret")
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}

	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	raw[len(raw)-1] ^= 0x01
	mutated := base64.RawURLEncoding.EncodeToString(raw)

	if _, err := Decrypt(mutated, "secret"); !errors.Is(err, model.ErrIntegrity) {
		t.Fatalf("expected ErrIntegrity, got %v", err)
	}
}

func TestDecrypt_MalformedTokens(t *testing.T) {
	cases := map[string]string{
		"not base64":         "!!!not-base64!!!",
		"empty":              "",
		"shorter than nonce": base64.RawURLEncoding.EncodeToString([]byte("short")),
	}

	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Decrypt(token, "secret"); !errors.Is(err, model.ErrIntegrity) {
				t.Fatalf("expected ErrIntegrity, got %v", err)
			}
		})
	}
}
