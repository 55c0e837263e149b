package entity

// ประเภทพื้นที่ของร้าน
const (
	SpaceIndoor  = "indoor"
	SpaceOutdoor = "outdoor"
	SpaceBoth    = "both"
)

func ValidSpaceType(s string) bool {
	switch s {
	case SpaceIndoor, SpaceOutdoor, SpaceBoth:
		return true
	}
	return false
}
