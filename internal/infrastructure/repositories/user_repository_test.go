package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mahir-soa/FYP/domain"
)

// setupMockDB wires a gorm connection onto a sqlmock driver
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}
	return db, mock
}

func userColumns() []string {
	return []string{
		"id", "name", "email", "password", "email_verified",
		"verification_token", "verification_token_expiry",
		"reset_token", "reset_token_expiry", "created_at", "updated_at",
	}
}

func TestUserRepositoryImpl_FindByEmail(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WithArgs("alice@example.com", 1).
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(1, "Alice", "alice@example.com", "hashed", true, nil, nil, nil, nil, now, now))

	user, err := repo.FindByEmail(context.Background(), "alice@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != 1 || user.Email != "alice@example.com" {
		t.Errorf("unexpected user %+v", user)
	}
	if !user.EmailVerified {
		t.Error("expected verified user")
	}
	if user.PasswordHash != "hashed" {
		t.Errorf("password column must map to PasswordHash, got %q", user.PasswordHash)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUserRepositoryImpl_FindByEmail_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WithArgs("nobody@example.com", 1).
		WillReturnRows(sqlmock.NewRows(userColumns()))

	_, err := repo.FindByEmail(context.Background(), "nobody@example.com")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserRepositoryImpl_FindByVerificationToken(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	token := "tok-abc"
	expiry := time.Now().Add(time.Hour)
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE verification_token = \$1`).
		WithArgs(token, 1).
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(2, "Bob", "bob@example.com", "hashed", false, token, expiry, nil, nil, time.Now(), time.Now()))

	user, err := repo.FindByVerificationToken(context.Background(), token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.VerificationToken != token {
		t.Errorf("nullable token column must map to a plain string, got %q", user.VerificationToken)
	}
	if user.VerificationTokenExpiry == nil {
		t.Error("expected the expiry to survive the mapping")
	}
}

func TestUserRepositoryImpl_FindByResetToken_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE reset_token = \$1`).
		WithArgs("gone", 1).
		WillReturnRows(sqlmock.NewRows(userColumns()))

	_, err := repo.FindByResetToken(context.Background(), "gone")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserRepositoryImpl_ExistsByEmail(t *testing.T) {
	tests := []struct {
		name  string
		count int64
		want  bool
	}{
		{"exists", 1, true},
		{"does not exist", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupMockDB(t)
			repo := NewUserRepository(db)

			mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE email = \$1`).
				WithArgs("alice@example.com").
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(tt.count))

			exists, err := repo.ExistsByEmail(context.Background(), "alice@example.com")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if exists != tt.want {
				t.Errorf("expected %v, got %v", tt.want, exists)
			}
		})
	}
}

func TestUserRepositoryImpl_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	user := &domain.User{
		Name:          "Alice",
		Email:         "alice@example.com",
		PasswordHash:  "hashed",
		EmailVerified: true,
	}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != 7 {
		t.Errorf("expected the generated id to be written back, got %d", user.ID)
	}
}

func TestUserRepositoryImpl_Update_ClearsConsumedTokens(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	user := &domain.User{
		ID:            1,
		Name:          "Alice",
		Email:         "alice@example.com",
		PasswordHash:  "new-hash",
		EmailVerified: true,
		// empty tokens persist as NULL so they can never match a lookup
	}
	if err := repo.Update(context.Background(), user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
