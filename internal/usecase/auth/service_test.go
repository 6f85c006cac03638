package auth

import (
	"context"
	"errors"
	"testing"

	"jobdeck/internal/domain/user"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type memoryUserRepo struct {
	byID    map[uuid.UUID]user.User
	byEmail map[string]user.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{
		byID:    map[uuid.UUID]user.User{},
		byEmail: map[string]user.User{},
	}
}

func (m *memoryUserRepo) Create(_ context.Context, u user.User) error {
	m.byID[u.ID] = u
	m.byEmail[u.Email] = u
	return nil
}

func (m *memoryUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *memoryUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *memoryUserRepo) SetApproval(_ context.Context, id uuid.UUID, status string) error {
	u, ok := m.byID[id]
	if !ok {
		return user.ErrNotFound
	}
	u.ApprovalStatus = status
	m.byID[id] = u
	m.byEmail[u.Email] = u
	return nil
}

func (m *memoryUserRepo) ListByApprovalStatus(context.Context, string, int, int) ([]user.User, error) {
	return nil, nil
}

func TestService_Register_CreatesPendingMember(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := NewService(repo)

	u, err := svc.Register(context.Background(), RegisterInput{Email: "Dev@Example.COM", Password: "secret-pass"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if u.Email != "dev@example.com" {
		t.Fatalf("email must be normalized, got %s", u.Email)
	}
	if u.Role != user.RoleMember {
		t.Fatalf("expected member role, got %s", u.Role)
	}
	if u.ApprovalStatus != user.ApprovalPending {
		t.Fatalf("new accounts must start pending, got %s", u.ApprovalStatus)
	}
	if u.PasswordHash != "" {
		t.Fatalf("password hash must not be returned")
	}

	stored, err := repo.GetByEmail(context.Background(), "dev@example.com")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret-pass")); err != nil {
		t.Fatalf("stored hash must match password: %v", err)
	}
}

func TestService_Register_ShortPassword(t *testing.T) {
	svc := NewService(newMemoryUserRepo())

	_, err := svc.Register(context.Background(), RegisterInput{Email: "dev@example.com", Password: "short"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := NewService(repo)

	if _, err := svc.Register(context.Background(), RegisterInput{Email: "dev@example.com", Password: "secret-pass"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	_, err := svc.Register(context.Background(), RegisterInput{Email: "dev@example.com", Password: "other-pass"})
	if !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestService_Login_WrongPassword(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := NewService(repo)

	if _, err := svc.Register(context.Background(), RegisterInput{Email: "dev@example.com", Password: "secret-pass"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	_, err := svc.Login(context.Background(), LoginInput{Email: "dev@example.com", Password: "wrong-pass"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestService_Login_UnknownEmail(t *testing.T) {
	svc := NewService(newMemoryUserRepo())

	_, err := svc.Login(context.Background(), LoginInput{Email: "nobody@example.com", Password: "secret-pass"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestService_Login_Success(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := NewService(repo)

	if _, err := svc.Register(context.Background(), RegisterInput{Email: "dev@example.com", Password: "secret-pass"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	u, err := svc.Login(context.Background(), LoginInput{Email: " DEV@example.com ", Password: "secret-pass"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if u.Email != "dev@example.com" {
		t.Fatalf("unexpected user: %+v", u)
	}
}
