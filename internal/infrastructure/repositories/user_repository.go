package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/mahir-soa/FYP/domain"
)

// UserRepositoryImpl implements domain.UserRepository using GORM
type UserRepositoryImpl struct {
	db *gorm.DB
}

// DBUser represents the database model for User (with GORM tags)
type DBUser struct {
	ID                      uint       `gorm:"primaryKey"`
	Name                    string     `gorm:"size:255;not null"`
	Email                   string     `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash            string     `gorm:"column:password;not null"`
	EmailVerified           bool       `gorm:"index"`
	VerificationToken       *string    `gorm:"index;size:64"`
	VerificationTokenExpiry *time.Time
	ResetToken              *string    `gorm:"index;size:64"`
	ResetTokenExpiry        *time.Time
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// TableName returns the table name for GORM
func (DBUser) TableName() string {
	return "users"
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create implements domain.UserRepository
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		return err
	}
	user.ID = dbUser.ID
	user.CreatedAt = dbUser.CreatedAt
	user.UpdatedAt = dbUser.UpdatedAt
	return nil
}

// FindByEmail implements domain.UserRepository
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&dbUser).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbUser).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByVerificationToken implements domain.UserRepository. Lookup is by
// exact token value; consumed tokens are nulled out and never match again.
func (r *UserRepositoryImpl) FindByVerificationToken(ctx context.Context, token string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("verification_token = ?", token).First(&dbUser).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByResetToken implements domain.UserRepository
func (r *UserRepositoryImpl) FindByResetToken(ctx context.Context, token string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("reset_token = ?", token).First(&dbUser).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// ExistsByEmail implements domain.UserRepository
func (r *UserRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&DBUser{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update implements domain.UserRepository
func (r *UserRepositoryImpl) Update(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	return r.db.WithContext(ctx).Save(dbUser).Error
}

// domainToDB converts domain user to database user
func (r *UserRepositoryImpl) domainToDB(user *domain.User) *DBUser {
	dbUser := &DBUser{
		ID:                      user.ID,
		Name:                    user.Name,
		Email:                   user.Email,
		PasswordHash:            user.PasswordHash,
		EmailVerified:           user.EmailVerified,
		VerificationTokenExpiry: user.VerificationTokenExpiry,
		ResetTokenExpiry:        user.ResetTokenExpiry,
		CreatedAt:               user.CreatedAt,
	}
	if user.VerificationToken != "" {
		dbUser.VerificationToken = &user.VerificationToken
	}
	if user.ResetToken != "" {
		dbUser.ResetToken = &user.ResetToken
	}
	return dbUser
}

// dbToDomain converts database user to domain user
func (r *UserRepositoryImpl) dbToDomain(dbUser *DBUser) *domain.User {
	user := &domain.User{
		ID:                      dbUser.ID,
		Name:                    dbUser.Name,
		Email:                   dbUser.Email,
		PasswordHash:            dbUser.PasswordHash,
		EmailVerified:           dbUser.EmailVerified,
		VerificationTokenExpiry: dbUser.VerificationTokenExpiry,
		ResetTokenExpiry:        dbUser.ResetTokenExpiry,
		CreatedAt:               dbUser.CreatedAt,
		UpdatedAt:               dbUser.UpdatedAt,
	}
	if dbUser.VerificationToken != nil {
		user.VerificationToken = *dbUser.VerificationToken
	}
	if dbUser.ResetToken != nil {
		user.ResetToken = *dbUser.ResetToken
	}
	return user
}
