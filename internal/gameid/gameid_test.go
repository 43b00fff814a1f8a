package gameid

import (
	"strings"
	"testing"
	"time"
)

func TestGenerateWellFormed(t *testing.T) {
	id := Generate()

	if len(id) != 26 {
		t.Fatalf("expected 26 characters, got %d: %q", len(id), id)
	}
	if err := Validate(id); err != nil {
		t.Errorf("generated ID failed validation: %v", err)
	}
}

func TestGenerateUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		id := Generate()
		if seen[id] {
			t.Fatalf("duplicate ID generated: %s", id)
		}
		seen[id] = true
	}
}

func TestGenerateSortsByTime(t *testing.T) {
	var ids []string
	for i := 0; i < 10; i++ {
		ids = append(ids, Generate())
		time.Sleep(2 * time.Millisecond)
	}

	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Errorf("IDs out of order: %s >= %s", ids[i-1], ids[i])
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"valid", "01h5n0et5q6mt3v7ms1234abcd", false},
		{"too short", "01h5n0et5q6mt3v7ms123", true},
		{"too long", "01h5n0et5q6mt3v7ms1234abcdef", true},
		{"first char out of range", "81h5n0et5q6mt3v7ms1234abcd", true},
		{"excluded letter", "01h5n0et5q6mt3v7ms1234abci", true},
		{"uppercase rejected", "01H5N0ET5Q6MT3V7MS1234ABCD", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
		})
	}
}

func TestAlphabetExcludesAmbiguousLetters(t *testing.T) {
	if len(alphabet) != 32 {
		t.Fatalf("alphabet should have 32 characters, got %d", len(alphabet))
	}
	for _, c := range "ilou" {
		if strings.ContainsRune(alphabet, c) {
			t.Errorf("alphabet should not contain %c", c)
		}
	}
}
