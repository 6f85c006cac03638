package usecase

import (
	"context"
	"errors"
	"log"

	"jobdeck/internal/domain/user"

	"github.com/google/uuid"
)

type AdminUsecase interface {
	ListPending(ctx context.Context, limit, offset int) ([]user.User, error)
	Approve(ctx context.Context, adminID, targetID uuid.UUID) (user.User, error)
	Reject(ctx context.Context, adminID, targetID uuid.UUID) (user.User, error)
}

type approvalMailer interface {
	SendApprovalDecision(ctx context.Context, to string, approved bool) error
}

type Admin struct {
	users  user.Repository
	mailer approvalMailer
	logger *log.Logger
}

func NewAdminUsecase(users user.Repository, mailer approvalMailer, logger *log.Logger) *Admin {
	return &Admin{users: users, mailer: mailer, logger: logger}
}

func (u *Admin) ListPending(ctx context.Context, limit, offset int) ([]user.User, error) {
	if limit == 0 {
		limit = 50
	}
	if limit < 0 || limit > 100 || offset < 0 {
		return nil, ErrInvalidInput
	}

	users, err := u.users.ListByApprovalStatus(ctx, user.ApprovalPending, limit, offset)
	if err != nil {
		return nil, ErrInternal
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

func (u *Admin) Approve(ctx context.Context, adminID, targetID uuid.UUID) (user.User, error) {
	return u.decide(ctx, adminID, targetID, user.ApprovalApproved)
}

func (u *Admin) Reject(ctx context.Context, adminID, targetID uuid.UUID) (user.User, error) {
	return u.decide(ctx, adminID, targetID, user.ApprovalRejected)
}

// decide records the approval decision. Admins cannot decide on their
// own account.
func (u *Admin) decide(ctx context.Context, adminID, targetID uuid.UUID, status string) (user.User, error) {
	if adminID == targetID {
		return user.User{}, ErrInvalidInput
	}

	target, err := u.users.GetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrNotFound
		}
		return user.User{}, ErrInternal
	}

	if err := u.users.SetApproval(ctx, targetID, status); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrNotFound
		}
		return user.User{}, ErrInternal
	}

	updated, err := u.users.GetByID(ctx, targetID)
	if err != nil {
		return user.User{}, ErrInternal
	}
	updated.PasswordHash = ""

	if u.mailer != nil {
		if err := u.mailer.SendApprovalDecision(ctx, target.Email, status == user.ApprovalApproved); err != nil && u.logger != nil {
			u.logger.Printf("[Admin] Decision mail failed | to=%s err=%v", target.Email, err)
		}
	}
	return updated, nil
}
