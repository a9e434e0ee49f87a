// Package adapters implements adapter interfaces from the application layer.
package adapters

import "testing"

func TestPasswordService(t *testing.T) {
	svc := NewPasswordService()

	hash, err := svc.Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Fatal("expected hash to differ from the password")
	}

	if err := svc.Compare(hash, "correct horse battery staple"); err != nil {
		t.Errorf("expected matching password to verify, got %v", err)
	}
	if err := svc.Compare(hash, "wrong password"); err == nil {
		t.Error("expected mismatched password to fail")
	}
}
