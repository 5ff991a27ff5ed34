package keyring

import (
	"testing"

	gokeyring "github.com/zalando/go-keyring"
)

func TestSetAndGetTraySecret(t *testing.T) {
	gokeyring.MockInit()

	testSecret := "c0ffee-cafe-1234"

	err := SetTraySecret(testSecret)
	if err != nil {
		t.Fatalf("SetTraySecret() failed: %v", err)
	}

	retrieved, err := GetTraySecret()
	if err != nil {
		t.Fatalf("GetTraySecret() failed: %v", err)
	}

	if retrieved != testSecret {
		t.Errorf("GetTraySecret() = %q, want %q", retrieved, testSecret)
	}
}

func TestSetTraySecretEmpty(t *testing.T) {
	gokeyring.MockInit()

	err := SetTraySecret("")
	if err == nil {
		t.Error("SetTraySecret(\"\") should return an error")
	}
}

func TestGetTraySecretNotFound(t *testing.T) {
	gokeyring.MockInit()

	_ = DeleteTraySecret()

	_, err := GetTraySecret()
	if err != ErrNotFound {
		t.Errorf("GetTraySecret() error = %v, want %v", err, ErrNotFound)
	}
}

func TestDeleteTraySecret(t *testing.T) {
	gokeyring.MockInit()

	err := SetTraySecret("ephemeral")
	if err != nil {
		t.Fatalf("SetTraySecret() failed: %v", err)
	}

	err = DeleteTraySecret()
	if err != nil {
		t.Fatalf("DeleteTraySecret() failed: %v", err)
	}

	_, err = GetTraySecret()
	if err != ErrNotFound {
		t.Errorf("After DeleteTraySecret(), GetTraySecret() error = %v, want %v", err, ErrNotFound)
	}
}

func TestDeleteTraySecretNotFound(t *testing.T) {
	gokeyring.MockInit()

	_ = DeleteTraySecret()

	err := DeleteTraySecret()
	if err != ErrNotFound {
		t.Errorf("DeleteTraySecret() error = %v, want %v", err, ErrNotFound)
	}
}

func TestIsAvailable(t *testing.T) {
	gokeyring.MockInit()

	if !IsAvailable() {
		t.Error("IsAvailable() = false, want true in mock mode")
	}
}
