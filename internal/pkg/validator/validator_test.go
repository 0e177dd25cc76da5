package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidGSTIN(t *testing.T) {
	valid := []string{"29ABCDE1234F1Z5", "07AABCU9603R1ZM", "27aapfu0939f1zv"}
	invalid := []string{"", "29ABCDE1234F", "XXABCDE1234F1Z5", "29ABCDE1234F1A5"}
	for _, gstin := range valid {
		if !IsValidGSTIN(gstin) {
			t.Errorf("IsValidGSTIN(%q) = false, want true", gstin)
		}
	}
	for _, gstin := range invalid {
		if IsValidGSTIN(gstin) {
			t.Errorf("IsValidGSTIN(%q) = true, want false", gstin)
		}
	}
}

func TestIsValidIFSC(t *testing.T) {
	valid := []string{"SBIN0005943", "hdfc0001234"}
	invalid := []string{"", "SBIN5943", "SBIN1005943", "SB1N0005943"}
	for _, ifsc := range valid {
		if !IsValidIFSC(ifsc) {
			t.Errorf("IsValidIFSC(%q) = false, want true", ifsc)
		}
	}
	for _, ifsc := range invalid {
		if IsValidIFSC(ifsc) {
			t.Errorf("IsValidIFSC(%q) = true, want false", ifsc)
		}
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	valid := []string{"9876543210", "+919876543210", "98765 43210"}
	invalid := []string{"", "12345", "abcdefghij", "123456789012345"}
	for _, phone := range valid {
		if !IsValidPhoneNumber(phone) {
			t.Errorf("IsValidPhoneNumber(%q) = false, want true", phone)
		}
	}
	for _, phone := range invalid {
		if IsValidPhoneNumber(phone) {
			t.Errorf("IsValidPhoneNumber(%q) = true, want false", phone)
		}
	}
}
