package utils

import (
	"strings"
	"testing"
)

func TestValidateReviewImages(t *testing.T) {
	ok := "data:image/png;base64,aGVsbG8="

	tests := []struct {
		name    string
		images  []string
		wantErr bool
	}{
		{"nil", nil, false},
		{"empty", []string{}, false},
		{"one valid", []string{ok}, false},
		{"three valid", []string{ok, ok, ok}, false},
		{"four images", []string{ok, ok, ok, ok}, true},
		{"not a data url", []string{"https://example.com/a.png"}, true},
		{"wrong mime", []string{"data:text/plain;base64,aGk="}, true},
		{"missing payload marker", []string{"data:image/png,rawdata"}, true},
		{"empty payload", []string{"data:image/png;base64,"}, true},
		{"broken base64", []string{"data:image/png;base64,!!!"}, true},
		{"one bad fails the batch", []string{ok, "bad", ok}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateReviewImages(tt.images)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateReviewImages(%v) error = %v, wantErr %v", tt.images, err, tt.wantErr)
			}
		})
	}
}

func TestValidateReviewImagesTooLarge(t *testing.T) {
	huge := "data:image/png;base64," + strings.Repeat("A", maxImageDataBytes)
	if err := ValidateReviewImages([]string{huge}); err == nil {
		t.Error("oversized image must be rejected")
	}
}
