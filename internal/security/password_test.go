package security

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCompare(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("s3cret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "s3cret" {
		t.Fatal("hash must not equal plain password")
	}

	ok, err := h.Compare(hash, "s3cret")
	if err != nil || !ok {
		t.Errorf("Compare(correct) = %v, %v; want true, nil", ok, err)
	}

	ok, err = h.Compare(hash, "wrong")
	if err != nil || ok {
		t.Errorf("Compare(wrong) = %v, %v; want false, nil", ok, err)
	}
}

func TestBcryptHasher_CompareMalformedHash(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	ok, err := h.Compare("not-a-bcrypt-hash", "s3cret")
	if ok {
		t.Error("expected false for malformed hash")
	}
	if err == nil {
		t.Error("expected error for malformed hash")
	}
}

func TestNewBcryptHasher_InvalidCostFallsBackToDefault(t *testing.T) {
	for _, cost := range []int{0, -1, bcrypt.MaxCost + 1} {
		h := NewBcryptHasher(cost)
		if h.cost != bcrypt.DefaultCost {
			t.Errorf("NewBcryptHasher(%d).cost = %d, want %d", cost, h.cost, bcrypt.DefaultCost)
		}
	}
}
