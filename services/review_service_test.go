package services

import (
	"errors"
	"math"
	"testing"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

func newReviewService(db *gorm.DB) *ReviewService {
	return NewReviewService(db, repository.NewReviewRepository(db), repository.NewUserRepository(db))
}

func TestCreateReviewUpdatesStats(t *testing.T) {
	db := setupTestDB(t)
	svc := newReviewService(db)
	user := createTestUser(t, db, "a@example.com")

	// เคสจาก UX: ร้าน 4.0/2 รีวิว ได้ 5 ดาวเพิ่ม → (4.0*2+5)/3 = 4.3
	store := createTestStore(t, db, "コンカフェ", 4.0, 2)

	review, err := svc.Create(user.ID, store.ID, 5, "最高でした", nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if review.ID == 0 {
		t.Error("review must come back with assigned id")
	}
	if review.UserName != user.Name || review.UserAvatar != user.AvatarURL {
		t.Error("review must snapshot the author")
	}
	if review.ReviewDate.IsZero() {
		t.Error("review must have a timestamp")
	}

	var got entity.Store
	if err := db.First(&got, store.ID).Error; err != nil {
		t.Fatal(err)
	}
	if got.ReviewCount != 3 {
		t.Errorf("review_count = %d, want 3", got.ReviewCount)
	}
	if got.AvgRating != 4.3 {
		t.Errorf("avg_rating = %v, want 4.3", got.AvgRating)
	}
}

func TestCreateReviewRunningMean(t *testing.T) {
	db := setupTestDB(t)
	svc := newReviewService(db)
	user := createTestUser(t, db, "a@example.com")
	store := createTestStore(t, db, "書斎カフェ", 0, 0)

	ratings := []int{5, 3, 4, 2, 5}
	sum := 0
	var lastID uint
	for _, r := range ratings {
		rev, err := svc.Create(user.ID, store.ID, r, "comment", nil)
		if err != nil {
			t.Fatalf("Create(rating=%d): %v", r, err)
		}
		if rev.ID <= lastID {
			t.Errorf("review ids must increase: %d then %d", lastID, rev.ID)
		}
		lastID = rev.ID
		sum += r
	}

	var got entity.Store
	db.First(&got, store.ID)
	if got.ReviewCount != len(ratings) {
		t.Errorf("review_count = %d, want %d", got.ReviewCount, len(ratings))
	}
	want := math.Round(float64(sum)/float64(len(ratings))*10) / 10
	if got.AvgRating != want {
		t.Errorf("avg_rating = %v, want %v", got.AvgRating, want)
	}
}

func TestCreateReviewValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := newReviewService(db)
	user := createTestUser(t, db, "a@example.com")
	store := createTestStore(t, db, "カフェ", 4.0, 1)

	tests := []struct {
		name    string
		rating  int
		comment string
		images  []string
	}{
		{"rating too low", 0, "ok comment", nil},
		{"rating too high", 6, "ok comment", nil},
		{"empty comment", 4, "", nil},
		{"whitespace comment", 4, "   \t ", nil},
		{"too many images", 4, "ok", []string{
			"data:image/png;base64,aGk=", "data:image/png;base64,aGk=",
			"data:image/png;base64,aGk=", "data:image/png;base64,aGk=",
		}},
		{"broken image rejects whole batch", 4, "ok", []string{
			"data:image/png;base64,aGk=", "not-a-data-url",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(user.ID, store.ID, tt.rating, tt.comment, tt.images)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("want ErrValidation, got %v", err)
			}
		})
	}

	// ไม่มี partial mutation
	var got entity.Store
	db.First(&got, store.ID)
	if got.ReviewCount != 1 || got.AvgRating != 4.0 {
		t.Errorf("stats changed after rejected reviews: %v/%d", got.AvgRating, got.ReviewCount)
	}
	var count int64
	db.Model(&entity.Review{}).Count(&count)
	if count != 0 {
		t.Errorf("%d reviews persisted after rejections, want 0", count)
	}
}

func TestCreateReviewUnknownStore(t *testing.T) {
	db := setupTestDB(t)
	svc := newReviewService(db)
	user := createTestUser(t, db, "a@example.com")

	if _, err := svc.Create(user.ID, 999, 4, "comment", nil); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestCreateReviewWithImages(t *testing.T) {
	db := setupTestDB(t)
	svc := newReviewService(db)
	user := createTestUser(t, db, "a@example.com")
	store := createTestStore(t, db, "カフェ", 0, 0)

	images := []string{
		"data:image/png;base64,aGVsbG8=",
		"data:image/jpeg;base64,d29ybGQ=",
	}
	review, err := svc.Create(user.ID, store.ID, 5, "写真付き", images)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	var got entity.Review
	if err := db.First(&got, review.ID).Error; err != nil {
		t.Fatal(err)
	}
	if len(got.Images) != 2 || got.Images[0] != images[0] {
		t.Errorf("images not persisted in order: %v", got.Images)
	}
}

func TestListByStoreNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	svc := newReviewService(db)
	user := createTestUser(t, db, "a@example.com")
	store := createTestStore(t, db, "カフェ", 0, 0)

	for _, comment := range []string{"first", "second", "third"} {
		if _, err := svc.Create(user.ID, store.ID, 4, comment, nil); err != nil {
			t.Fatal(err)
		}
	}

	reviews, err := svc.ListByStore(store.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(reviews) != 3 {
		t.Fatalf("got %d reviews, want 3", len(reviews))
	}
	if reviews[0].ReviewDate.Before(reviews[2].ReviewDate) {
		t.Error("reviews must be ordered newest first")
	}
}
