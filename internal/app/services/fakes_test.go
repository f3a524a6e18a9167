package services

import (
	"context"
	"time"

	"github.com/uniboard/markbook/internal/app/models"
	"github.com/uniboard/markbook/internal/pkg/apperrors"
)

// In-memory repository fakes backing the service tests.

type fakeUserRepo struct {
	users  map[string]*models.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	if _, ok := r.users[user.Email]; ok {
		return apperrors.ErrEmailAlreadyExists
	}
	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	copied := *user
	r.users[user.Email] = &copied
	return nil
}

func (r *fakeUserRepo) Upsert(_ context.Context, user *models.User) error {
	if existing, ok := r.users[user.Email]; ok {
		existing.Password = user.Password
		existing.Name = user.Name
		existing.RoleType = user.RoleType
		existing.UpdatedAt = time.Now()
		user.ID = existing.ID
		user.CGPA = existing.CGPA
		user.CreatedAt = existing.CreatedAt
		user.UpdatedAt = existing.UpdatedAt
		return nil
	}
	return r.Create(context.Background(), user)
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	for _, user := range r.users {
		if user.ID == id {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := r.users[email]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	_, ok := r.users[email]
	return ok, nil
}

func (r *fakeUserRepo) ListByRole(_ context.Context, role models.RoleType) ([]*models.User, error) {
	var users []*models.User
	for _, user := range r.users {
		if user.RoleType == role {
			copied := *user
			users = append(users, &copied)
		}
	}
	return users, nil
}

func (r *fakeUserRepo) DeleteByEmail(_ context.Context, email string) error {
	if _, ok := r.users[email]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(r.users, email)
	return nil
}

func (r *fakeUserRepo) UpdateLastLogin(_ context.Context, userID int64) error {
	for _, user := range r.users {
		if user.ID == userID {
			now := time.Now()
			user.LastLoginAt = &now
			return nil
		}
	}
	return apperrors.ErrUserNotFound
}

type fakeRecordRepo struct {
	userRepo  *fakeUserRepo
	semesters map[int64][]models.Semester
}

func newFakeRecordRepo(userRepo *fakeUserRepo) *fakeRecordRepo {
	return &fakeRecordRepo{
		userRepo:  userRepo,
		semesters: make(map[int64][]models.Semester),
	}
}

func (r *fakeRecordRepo) GetSemesters(_ context.Context, userID int64) ([]models.Semester, error) {
	return append([]models.Semester{}, r.semesters[userID]...), nil
}

func (r *fakeRecordRepo) AppendSemester(_ context.Context, userID int64, semester *models.Semester, cgpa float64) error {
	r.semesters[userID] = append(r.semesters[userID], *semester)
	for _, user := range r.userRepo.users {
		if user.ID == userID {
			c := cgpa
			user.CGPA = &c
			break
		}
	}
	return nil
}

type storedToken struct {
	userID  int64
	expiry  time.Time
	revoked bool
}

type fakeTokenRepo struct {
	tokens map[string]*storedToken
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: make(map[string]*storedToken)}
}

func (r *fakeTokenRepo) CreateToken(_ context.Context, token string, userID int64, expiryDate time.Time) error {
	if _, ok := r.tokens[token]; ok {
		return apperrors.ErrConflict
	}
	r.tokens[token] = &storedToken{userID: userID, expiry: expiryDate}
	return nil
}

func (r *fakeTokenRepo) GetTokenByValue(_ context.Context, token string) (int64, time.Time, bool, error) {
	stored, ok := r.tokens[token]
	if !ok {
		return 0, time.Time{}, false, apperrors.ErrTokenNotFound
	}
	if stored.revoked {
		return 0, time.Time{}, false, apperrors.ErrTokenRevoked
	}
	if time.Now().After(stored.expiry) {
		return 0, time.Time{}, false, apperrors.ErrTokenExpired
	}
	return stored.userID, stored.expiry, stored.revoked, nil
}

func (r *fakeTokenRepo) RevokeToken(_ context.Context, token string) error {
	stored, ok := r.tokens[token]
	if !ok {
		return apperrors.ErrTokenNotFound
	}
	stored.revoked = true
	return nil
}
