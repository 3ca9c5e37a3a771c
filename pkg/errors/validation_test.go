package errors

import (
	"strings"
	"testing"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"tile type", "QSB", false},
		{"indexed wire", "SLICE3_LUT3_1_I0", false},
		{"padded empty tile", "   ", false},

		{"empty", "", true},
		{"too long", strings.Repeat("W", 200), true},
		{"newline", "E_0\n", true},
		{"tab", "E\t0", true},
		{"null byte", "E\x000", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName("wire", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("ValidateName(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidateDimensions(t *testing.T) {
	tests := []struct {
		w, h    int
		wantErr bool
	}{
		{7, 7, false},
		{5, 5, false},
		{9, 21, false},
		{3, 7, true},
		{7, 3, true},
		{8, 7, true},
		{7, 8, true},
		{0, 0, true},
		{-7, 7, true},
	}

	for _, tt := range tests {
		err := ValidateDimensions(tt.w, tt.h)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateDimensions(%d, %d) error = %v, wantErr %v", tt.w, tt.h, err, tt.wantErr)
		}
		if err != nil && !Is(err, ErrCodeInvalidDimensions) {
			t.Errorf("ValidateDimensions(%d, %d) code = %v", tt.w, tt.h, GetCode(err))
		}
	}
}

func TestValidateCount(t *testing.T) {
	if err := ValidateCount("channels", 1); err != nil {
		t.Errorf("1 channel should pass: %v", err)
	}
	if err := ValidateCount("channels", 16); err != nil {
		t.Errorf("16 channels should pass: %v", err)
	}
	if err := ValidateCount("channels", 0); err == nil {
		t.Error("0 channels should fail")
	}
	if err := ValidateCount("channels", 4096); err == nil {
		t.Error("4096 channels should fail")
	}
}
