// utils/avatar.go
package utils

import "net/url"

// DefaultAvatarURL สร้าง avatar เริ่มต้นจาก email (dicebear)
func DefaultAvatarURL(email string) string {
	return "https://api.dicebear.com/7.x/avataaars/svg?seed=" + url.QueryEscape(email)
}
