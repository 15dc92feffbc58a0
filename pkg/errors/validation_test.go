package errors

import "testing"

func TestValidatePersonID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"valid simple", "I1", false},
		{"valid with dash", "person-42", false},
		{"empty", "", true},
		{"path traversal", "../etc/passwd", true},
		{"double slash", "a//b", true},
		{"backslash", "a\\b", true},
		{"control character", "a\x01b", true},
		{"null byte", "a\x00b", true},
		{"too long", string(make([]byte, 300)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePersonID(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePersonID(%q) = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
			if err != nil && GetCode(err) != ErrCodeInvalidInput {
				t.Errorf("code = %v, want INVALID_INPUT", GetCode(err))
			}
		})
	}
}

func TestValidateOutputFilename(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		wantErr  bool
	}{
		{"valid", "tree.json", false},
		{"valid canvas", "jones.canvas.json", false},
		{"empty", "", true},
		{"with path", "dir/tree.json", true},
		{"with backslash", "dir\\tree.json", true},
		{"hidden", ".secret", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFilename(tt.filename)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputFilename(%q) = %v, wantErr %v", tt.filename, err, tt.wantErr)
			}
		})
	}
}
