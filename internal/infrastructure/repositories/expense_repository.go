package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/mahir-soa/FYP/domain"
)

// ExpenseRepositoryImpl implements domain.ExpenseRepository using GORM
type ExpenseRepositoryImpl struct {
	db *gorm.DB
}

// DBExpense represents the database model for Expense
type DBExpense struct {
	ID          uint    `gorm:"primaryKey"`
	Date        string  `gorm:"size:10;index"`
	Description string
	Amount      float64
	Category    string `gorm:"size:64;index"`
	Mood        string `gorm:"size:32"`
	SubType     string `gorm:"size:32"`
	FromZone    *int
	ToZone      *int
	IsPeak      *bool
}

// TableName returns the table name for GORM
func (DBExpense) TableName() string {
	return "expenses"
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *gorm.DB) domain.ExpenseRepository {
	return &ExpenseRepositoryImpl{db: db}
}

// FindAll implements domain.ExpenseRepository
func (r *ExpenseRepositoryImpl) FindAll(ctx context.Context) ([]domain.Expense, error) {
	var dbExpenses []DBExpense
	if err := r.db.WithContext(ctx).Find(&dbExpenses).Error; err != nil {
		return nil, err
	}
	expenses := make([]domain.Expense, 0, len(dbExpenses))
	for i := range dbExpenses {
		expenses = append(expenses, *r.dbToDomain(&dbExpenses[i]))
	}
	return expenses, nil
}

// FindByID implements domain.ExpenseRepository
func (r *ExpenseRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Expense, error) {
	var dbExpense DBExpense
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbExpense).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrExpenseNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbExpense), nil
}

// Create implements domain.ExpenseRepository
func (r *ExpenseRepositoryImpl) Create(ctx context.Context, expense *domain.Expense) error {
	dbExpense := r.domainToDB(expense)
	if err := r.db.WithContext(ctx).Create(dbExpense).Error; err != nil {
		return err
	}
	expense.ID = dbExpense.ID
	return nil
}

// Update implements domain.ExpenseRepository
func (r *ExpenseRepositoryImpl) Update(ctx context.Context, expense *domain.Expense) error {
	return r.db.WithContext(ctx).Save(r.domainToDB(expense)).Error
}

// Delete implements domain.ExpenseRepository
func (r *ExpenseRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&DBExpense{}, id).Error
}

func (r *ExpenseRepositoryImpl) domainToDB(e *domain.Expense) *DBExpense {
	return &DBExpense{
		ID:          e.ID,
		Date:        e.Date,
		Description: e.Description,
		Amount:      e.Amount,
		Category:    e.Category,
		Mood:        e.Mood,
		SubType:     e.SubType,
		FromZone:    e.FromZone,
		ToZone:      e.ToZone,
		IsPeak:      e.IsPeak,
	}
}

func (r *ExpenseRepositoryImpl) dbToDomain(e *DBExpense) *domain.Expense {
	return &domain.Expense{
		ID:          e.ID,
		Date:        e.Date,
		Description: e.Description,
		Amount:      e.Amount,
		Category:    e.Category,
		Mood:        e.Mood,
		SubType:     e.SubType,
		FromZone:    e.FromZone,
		ToZone:      e.ToZone,
		IsPeak:      e.IsPeak,
	}
}
