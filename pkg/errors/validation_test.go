package errors

import "testing"

func TestValidateNodeID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"simple", "Trust", false},
		{"with dash", "trust-score", false},
		{"with dot", "c1.v2", false},
		{"digit start", "1st", false},
		{"empty", "", true},
		{"space", "trust score", true},
		{"quote", `Tr"ust`, true},
		{"leading dash", "-trust", true},
		{"too long", string(make([]byte, MaxNodeIDLength+1)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNodeID(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateNodeID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("ValidateNodeID(%q) code = %v, want %v", tt.id, GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"relative", "out/network.svg", false},
		{"absolute", "/tmp/network.svg", false},
		{"dot segments inside", "out/../network.svg", false},
		{"empty", "", true},
		{"parent", "../network.svg", false},
		{"tab", "net\t.svg", true},
		{"null byte", "net\x00.svg", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}
