package e2e

import (
	"context"
	"sync"

	"github.com/mahir-soa/FYP/domain"
)

// memoryUserRepo is an in-process stand-in for the SQL-backed user store so
// the flow tests can run without a database server.
type memoryUserRepo struct {
	mu     sync.Mutex
	nextID uint
	users  map[uint]*domain.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{nextID: 1, users: make(map[uint]*domain.User)}
}

func (r *memoryUserRepo) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.ID = r.nextID
	r.nextID++
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *memoryUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memoryUserRepo) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *memoryUserRepo) FindByVerificationToken(ctx context.Context, token string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.VerificationToken != "" && u.VerificationToken == token {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memoryUserRepo) FindByResetToken(ctx context.Context, token string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ResetToken != "" && u.ResetToken == token {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memoryUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.FindByEmail(ctx, email)
	if err == domain.ErrUserNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *memoryUserRepo) Update(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

var _ domain.UserRepository = (*memoryUserRepo)(nil)

// recordingNotifier captures secrets that would have gone out by email so
// tests can complete the OTP and token flows.
type recordingNotifier struct {
	mu          sync.Mutex
	otps        map[string]string
	verTokens   map[string]string
	resetTokens map[string]string
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{
		otps:        make(map[string]string),
		verTokens:   make(map[string]string),
		resetTokens: make(map[string]string),
	}
}

func (n *recordingNotifier) SendOTPEmail(to, name, otp string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.otps[to] = otp
}

func (n *recordingNotifier) SendVerificationEmail(to, name, token string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.verTokens[to] = token
}

func (n *recordingNotifier) SendPasswordResetEmail(to, name, token string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.resetTokens[to] = token
}

func (n *recordingNotifier) lastOTP(email string) string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.otps[email]
}

func (n *recordingNotifier) lastResetToken(email string) string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.resetTokens[email]
}

var _ domain.NotificationService = (*recordingNotifier)(nil)
