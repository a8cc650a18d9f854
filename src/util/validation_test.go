package util

import "testing"

func TestValidateEmail(t *testing.T) {
	valid := []string{"a@b.co", "user.name+tag@example.com"}
	invalid := []string{"", "plain", "a@b", "@example.com", "a b@example.com"}

	for _, e := range valid {
		if !ValidateEmail(e) {
			t.Errorf("ValidateEmail(%q) = false, want true", e)
		}
	}
	for _, e := range invalid {
		if ValidateEmail(e) {
			t.Errorf("ValidateEmail(%q) = true, want false", e)
		}
	}
}

func TestValidateUsername(t *testing.T) {
	if ValidateUsername("ab") {
		t.Error("two characters should be rejected")
	}
	if !ValidateUsername("abc") {
		t.Error("three characters should be accepted")
	}
	if ValidateUsername("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa") {
		t.Error("31 characters should be rejected")
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{"Aa1!aaaa", true},
		{"short1!", false},
		{"alllowercase1!", false},
		{"ALLUPPERCASE1!", false},
		{"NoDigits!!", false},
		{"NoSpecial11", false},
	}
	for _, tt := range tests {
		if got := ValidatePassword(tt.password); got != tt.want {
			t.Errorf("ValidatePassword(%q) = %v, want %v", tt.password, got, tt.want)
		}
	}
}

func TestValidateAmount(t *testing.T) {
	valid := []string{"", "0", "10", "25.50", "-12.75", "+3.10"}
	invalid := []string{"abc", "1.2.3", "$5", "NaN", "Inf", "-Inf", "1e308", "5e2", "5."}

	for _, a := range valid {
		if !ValidateAmount(a) {
			t.Errorf("ValidateAmount(%q) = false, want true", a)
		}
	}
	for _, a := range invalid {
		if ValidateAmount(a) {
			t.Errorf("ValidateAmount(%q) = true, want false", a)
		}
	}
}

func TestValidateMonth(t *testing.T) {
	for _, m := range []int{1, 12} {
		if !ValidateMonth(m) {
			t.Errorf("ValidateMonth(%d) = false, want true", m)
		}
	}
	for _, m := range []int{0, 13, -1} {
		if ValidateMonth(m) {
			t.Errorf("ValidateMonth(%d) = true, want false", m)
		}
	}
}

func TestValidateBillingDay(t *testing.T) {
	if !ValidateBillingDay(1) || !ValidateBillingDay(31) {
		t.Error("1 and 31 should be accepted")
	}
	if ValidateBillingDay(0) || ValidateBillingDay(32) {
		t.Error("0 and 32 should be rejected")
	}
}
