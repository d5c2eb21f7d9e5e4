package session

import (
	"testing"
)

func TestGenerateSecret(t *testing.T) {
	secret, err := GenerateSecret()
	if err != nil {
		t.Fatalf("GenerateSecret() error = %v", err)
	}

	// 32 bytes, hex encoded
	if len(secret) != 64 {
		t.Errorf("Secret length = %d, want 64", len(secret))
	}

	secret2, err := GenerateSecret()
	if err != nil {
		t.Fatalf("Second GenerateSecret() error = %v", err)
	}
	if secret == secret2 {
		t.Error("Generated secrets should be unique")
	}
}

func TestResolveSecret(t *testing.T) {
	tests := []struct {
		name          string
		configured    string
		wantLen       int
		wantGenerated bool
	}{
		{"empty generates", "", 32, true},
		{"hex is decoded", "00112233445566778899aabbccddeeff00112233445566778899aabbccddeeff", 32, false},
		{"raw is kept", "not hex at all", len("not hex at all"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, generated, err := ResolveSecret(tt.configured)
			if err != nil {
				t.Fatalf("ResolveSecret() error = %v", err)
			}
			if len(key) != tt.wantLen {
				t.Errorf("len(key) = %d, want %d", len(key), tt.wantLen)
			}
			if generated != tt.wantGenerated {
				t.Errorf("generated = %v, want %v", generated, tt.wantGenerated)
			}
		})
	}
}
