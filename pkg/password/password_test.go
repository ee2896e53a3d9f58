package password

import "testing"

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("secret123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "secret123" {
		t.Fatal("hash equals plaintext")
	}

	if !Verify("secret123", hash) {
		t.Error("correct password rejected")
	}
	if Verify("wrong", hash) {
		t.Error("wrong password accepted")
	}
	if Verify("secret123", "") {
		t.Error("empty hash accepted")
	}
}

func TestHashIsSalted(t *testing.T) {
	h1, err := Hash("secret123")
	if err != nil {
		t.Fatalf("hash #1: %v", err)
	}
	h2, err := Hash("secret123")
	if err != nil {
		t.Fatalf("hash #2: %v", err)
	}
	if h1 == h2 {
		t.Error("two hashes of the same password are identical")
	}
}
