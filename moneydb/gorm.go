package moneydb

import (
	"github.com/clanie/money"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"moul.io/zapgorm2"
)

// NewGormConfig returns a GORM configuration that logs through zapLogger.
func NewGormConfig(zapLogger *zap.Logger) *gorm.Config {
	return &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 zapgorm2.New(zapLogger),
	}
}

// WhereEqual returns a GORM scope that selects rows whose money columns,
// named after prefix, hold an amount equal to a.
func WhereEqual(prefix string, a money.Amount) func(*gorm.DB) *gorm.DB {
	amount, currency := Names(prefix)
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(clause.And(
			clause.Eq{Column: clause.Column{Name: amount}, Value: a.Decimal()},
			clause.Eq{Column: clause.Column{Name: currency}, Value: a.Curr()},
		))
	}
}

// WhereNull returns a GORM scope that selects rows whose money columns,
// named after prefix, hold an absent amount.
func WhereNull(prefix string) func(*gorm.DB) *gorm.DB {
	amount, currency := Names(prefix)
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(clause.And(
			clause.Eq{Column: clause.Column{Name: amount}, Value: nil},
			clause.Eq{Column: clause.Column{Name: currency}, Value: nil},
		))
	}
}
