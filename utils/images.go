// utils/images.go
package utils

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

const (
	MaxReviewImages   = 3
	maxImageDataBytes = 10 * 1024 * 1024 // limit 10MB ต่อรูป
)

// ValidateReviewImages ตรวจชุดรูปแบบ all-or-nothing:
// รูปเสียรูปเดียว = reject ทั้งชุด จะได้ไม่มีรีวิวที่รูปหายไปบางส่วน
func ValidateReviewImages(images []string) error {
	if len(images) > MaxReviewImages {
		return fmt.Errorf("at most %d images allowed", MaxReviewImages)
	}
	for i, img := range images {
		if err := validateDataURL(img); err != nil {
			return fmt.Errorf("image %d: %w", i+1, err)
		}
	}
	return nil
}

func validateDataURL(s string) error {
	if !strings.HasPrefix(s, "data:image/") {
		return errors.New("invalid image format")
	}
	if len(s) > maxImageDataBytes {
		return errors.New("file too large")
	}
	idx := strings.Index(s, ";base64,")
	if idx < 0 {
		return errors.New("missing base64 payload")
	}
	payload := s[idx+len(";base64,"):]
	if payload == "" {
		return errors.New("empty image data")
	}
	if _, err := base64.StdEncoding.DecodeString(payload); err != nil {
		return errors.New("invalid base64 data")
	}
	return nil
}
