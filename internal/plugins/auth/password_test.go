package auth

import (
	"strings"
	"testing"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := hashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("hashPassword: %v", err)
	}

	if !strings.HasPrefix(hash, "$argon2id$v=19$m=65536,t=3,p=4$") {
		t.Errorf("unexpected hash format: %s", hash)
	}
	if !verifyPassword("correct horse battery staple", hash) {
		t.Error("expected correct password to verify")
	}
	if verifyPassword("correct horse battery stapler", hash) {
		t.Error("expected wrong password to be rejected")
	}
	if verifyPassword("", hash) {
		t.Error("expected empty password to be rejected")
	}
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	a, err := hashPassword("same-password")
	if err != nil {
		t.Fatalf("hashPassword: %v", err)
	}
	b, err := hashPassword("same-password")
	if err != nil {
		t.Fatalf("hashPassword: %v", err)
	}

	if a == b {
		t.Error("two hashes of the same password should differ")
	}
	if !verifyPassword("same-password", a) || !verifyPassword("same-password", b) {
		t.Error("both hashes should verify")
	}
}

// Stored hashes come from the database; none of these may panic or verify.
func TestVerifyPassword_MalformedHashes(t *testing.T) {
	valid, err := hashPassword("pw")
	if err != nil {
		t.Fatalf("hashPassword: %v", err)
	}
	parts := strings.Split(valid, "$")
	salt, key := parts[4], parts[5]

	tests := []struct {
		name string
		hash string
	}{
		{"empty", ""},
		{"plaintext", "pw"},
		{"too few parts", "$argon2id$v=19$m=65536,t=3,p=4$" + salt},
		{"wrong algorithm", "$argon2i$v=19$m=65536,t=3,p=4$" + salt + "$" + key},
		{"bcrypt", "$2a$10$abcdefghijklmnopqrstuuJ0sI1vQ5rN5nqkz9ZJtK2s3Q8hKx6W"},
		{"wrong version", "$argon2id$v=16$m=65536,t=3,p=4$" + salt + "$" + key},
		{"zero parallelism", "$argon2id$v=19$m=65536,t=3,p=0$" + salt + "$" + key},
		{"zero time", "$argon2id$v=19$m=65536,t=0,p=4$" + salt + "$" + key},
		{"zero memory", "$argon2id$v=19$m=0,t=3,p=4$" + salt + "$" + key},
		{"huge memory", "$argon2id$v=19$m=4194304,t=3,p=4$" + salt + "$" + key},
		{"huge time", "$argon2id$v=19$m=65536,t=1000,p=4$" + salt + "$" + key},
		{"parallelism overflow", "$argon2id$v=19$m=65536,t=3,p=300$" + salt + "$" + key},
		{"trailing params", "$argon2id$v=19$m=65536,t=3,p=4,x=1$" + salt + "$" + key},
		{"empty salt", "$argon2id$v=19$m=65536,t=3,p=4$$" + key},
		{"empty key", "$argon2id$v=19$m=65536,t=3,p=4$" + salt + "$"},
		{"bad salt base64", "$argon2id$v=19$m=65536,t=3,p=4$!!!$" + key},
		{"bad key base64", "$argon2id$v=19$m=65536,t=3,p=4$" + salt + "$***"},
		{"leading junk", "x$argon2id$v=19$m=65536,t=3,p=4$" + salt + "$" + key},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if verifyPassword("pw", tt.hash) {
				t.Errorf("expected %q to be rejected", tt.hash)
			}
		})
	}
}

// An empty stored key used to compare equal to an empty computed key.
func TestVerifyPassword_EmptyKeyNeverMatchesAnyPassword(t *testing.T) {
	valid, _ := hashPassword("pw")
	salt := strings.Split(valid, "$")[4]
	hash := "$argon2id$v=19$m=65536,t=3,p=4$" + salt + "$"

	for _, pw := range []string{"", "pw", "anything"} {
		if verifyPassword(pw, hash) {
			t.Errorf("password %q verified against an empty key", pw)
		}
	}
}

func TestDummyHashIsValid(t *testing.T) {
	h := dummyHash()
	if h == "" {
		t.Fatal("dummy hash is empty")
	}
	if verifyPassword("pw123", h) {
		t.Error("dummy hash should not accept ordinary passwords")
	}
}
