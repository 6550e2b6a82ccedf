package utils

import "testing"

func TestGenerateOTP_Length(t *testing.T) {
	t.Parallel()

	for _, length := range []int{4, 6, 8} {
		code, err := GenerateOTP(length)
		if err != nil {
			t.Fatalf("GenerateOTP(%d) error: %v", length, err)
		}
		if len(code) != length {
			t.Fatalf("expected %d digits, got %q", length, code)
		}
		for _, r := range code {
			if r < '0' || r > '9' {
				t.Fatalf("expected only digits, got %q", code)
			}
		}
	}
}

func TestGenerateOTP_InvalidLength(t *testing.T) {
	t.Parallel()

	if _, err := GenerateOTP(0); err == nil {
		t.Fatal("expected an error for zero length")
	}
	if _, err := GenerateOTP(-1); err == nil {
		t.Fatal("expected an error for negative length")
	}
}

func TestGenerateOTP_Varies(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{})
	for i := 0; i < 32; i++ {
		code, err := GenerateOTP(6)
		if err != nil {
			t.Fatalf("GenerateOTP() error: %v", err)
		}
		seen[code] = struct{}{}
	}
	if len(seen) < 2 {
		t.Fatal("expected varying codes across generations")
	}
}

func TestNormalizePhone(t *testing.T) {
	t.Parallel()

	if got := NormalizePhone("  +8801234567890 "); got != "+8801234567890" {
		t.Fatalf("unexpected normalization: %q", got)
	}
}
