package services

import (
	"errors"
	"strings"
	"time"

	"backend/entity"
	"backend/repository"
	"backend/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService จัดการ business logic ของการ login/signup
type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

// Signup สร้าง user ใหม่แล้ว login ให้เลย ถ้า email ซ้ำคืน ErrDuplicateEmail
func (s *AuthService) Signup(email, password, name, username string) (string, *entity.User, error) {
	// trim และ normalize email
	email = strings.ToLower(strings.TrimSpace(email))

	// ตรวจซ้ำ email
	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return "", nil, err
	}
	if count > 0 {
		return "", nil, ErrDuplicateEmail
	}

	// hash password
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, errors.New("hash password failed")
	}

	user := &entity.User{
		Email:    email,
		Password: string(hashed),
		Name:     strings.TrimSpace(name),
		Username: strings.TrimSpace(username),
		// ค่าเริ่มต้นของ user ใหม่
		AvatarURL:        utils.DefaultAvatarURL(email),
		Location:         "ベトナム・ハノイ",
		RegistrationDate: time.Now().Format("2006年1月2日"),
	}

	if err := s.userRepo.Create(user); err != nil {
		return "", nil, err
	}

	token, err := utils.GenerateToken(user.ID, user.Email, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}
	return token, user, nil
}

// Login ตรวจสอบ user + สร้าง JWT
// ไม่เจอ email → ErrNotFound, รหัสผิด → ErrInvalidCredentials
func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrNotFound
		}
		return "", nil, err
	}

	// เทียบรหัสผ่าน
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	// ออก token
	token, err := utils.GenerateToken(user.ID, user.Email, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}

	return token, user, nil
}

// GetProfile
func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return user, err
}
