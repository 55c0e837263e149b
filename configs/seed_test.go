package configs

import (
	"testing"

	"backend/entity"
)

func seedUserFixture() entity.User {
	return entity.User{
		Email:            "a@example.com",
		Name:             "田中 花子",
		Username:         "hanako",
		AvatarURL:        "https://example.com/a.svg",
		Location:         "ベトナム・ハノイ",
		RegistrationDate: "2024年3月15日",
	}
}

func TestFillUserDefaultsBackfillsOnlyBlankFields(t *testing.T) {
	seed := seedUserFixture()

	// user แก้ชื่อเองไว้ — ต้องไม่โดน seed ทับ
	saved := entity.User{Email: seed.Email, Name: "改名済み"}

	if changed := fillUserDefaults(&saved, seed); !changed {
		t.Fatal("blank fields present, expected changed=true")
	}

	if saved.Name != "改名済み" {
		t.Errorf("edited name was overwritten: %q", saved.Name)
	}
	if saved.Username != seed.Username {
		t.Errorf("username not backfilled: %q", saved.Username)
	}
	if saved.AvatarURL != seed.AvatarURL {
		t.Errorf("avatar_url not backfilled: %q", saved.AvatarURL)
	}
	if saved.Location != seed.Location {
		t.Errorf("location not backfilled: %q", saved.Location)
	}
	if saved.RegistrationDate != seed.RegistrationDate {
		t.Errorf("registration_date not backfilled: %q", saved.RegistrationDate)
	}
}

func TestFillUserDefaultsNoChange(t *testing.T) {
	seed := seedUserFixture()
	saved := seedUserFixture()
	if changed := fillUserDefaults(&saved, seed); changed {
		t.Error("fully populated user must report changed=false")
	}
}

func TestFillUserDefaultsPerField(t *testing.T) {
	seed := seedUserFixture()

	tests := []struct {
		name  string
		blank func(*entity.User)
		check func(entity.User) bool
	}{
		{"name", func(u *entity.User) { u.Name = "" }, func(u entity.User) bool { return u.Name == seed.Name }},
		{"username", func(u *entity.User) { u.Username = "" }, func(u entity.User) bool { return u.Username == seed.Username }},
		{"avatar_url", func(u *entity.User) { u.AvatarURL = "" }, func(u entity.User) bool { return u.AvatarURL == seed.AvatarURL }},
		{"location", func(u *entity.User) { u.Location = "" }, func(u entity.User) bool { return u.Location == seed.Location }},
		{"registration_date", func(u *entity.User) { u.RegistrationDate = "" }, func(u entity.User) bool { return u.RegistrationDate == seed.RegistrationDate }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			saved := seedUserFixture()
			tt.blank(&saved)
			if changed := fillUserDefaults(&saved, seed); !changed {
				t.Fatal("expected changed=true")
			}
			if !tt.check(saved) {
				t.Errorf("field %s not backfilled", tt.name)
			}
		})
	}
}

func TestFillUserDefaultsEmptySeedField(t *testing.T) {
	seed := seedUserFixture()
	seed.Location = ""
	saved := entity.User{Email: seed.Email}
	fillUserDefaults(&saved, seed)
	if saved.Location != "" {
		t.Error("blank seed field must not mark the record changed with garbage")
	}
}
