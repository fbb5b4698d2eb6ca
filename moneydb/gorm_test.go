package moneydb_test

import (
	"testing"

	"github.com/clanie/money"
	"github.com/clanie/money/moneydb"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

type invoice struct {
	Number string
	Total  moneydb.Columns `gorm:"embedded;embeddedPrefix:total_"`
}

func dryRun(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(tests.DummyDialector{}, moneydb.NewGormConfig(zaptest.NewLogger(t)))
	require.NoError(t, err)

	return db.Session(&gorm.Session{DryRun: true})
}

func TestColumns_GormSchema(t *testing.T) {
	req := require.New(t)
	db := dryRun(t)

	stmt := &gorm.Statement{DB: db}
	req.NoError(stmt.Parse(&invoice{}))

	amount, currency := moneydb.Names("total")

	amountField := stmt.Schema.LookUpField(amount)
	req.NotNil(amountField)
	req.EqualValues("varchar(40)", amountField.DataType)

	currencyField := stmt.Schema.LookUpField(currency)
	req.NotNil(currencyField)
	req.EqualValues("varchar(3)", currencyField.DataType)
}

func TestColumns_GormCreate(t *testing.T) {
	req := require.New(t)
	db := dryRun(t)

	inv := invoice{
		Number: "INV-1",
		Total:  moneydb.FromAmount(money.MustParseAmount("DKK", "3.33")),
	}

	stmt := db.Create(&inv).Statement
	req.NoError(stmt.Error)
	req.Contains(stmt.SQL.String(), "total_amount")
	req.Contains(stmt.SQL.String(), "total_currency")
	req.Equal([]any{
		"INV-1",
		decimal.NullDecimal{Decimal: decimal.MustParse("3.33"), Valid: true},
		money.NullCurrency{Currency: money.DKK, Valid: true},
	}, stmt.Vars)
}

func TestWhereEqual(t *testing.T) {
	req := require.New(t)
	db := dryRun(t)

	a := money.MustParseAmount("XDR", "10")

	var invoices []invoice

	stmt := db.Scopes(moneydb.WhereEqual("total", a)).Find(&invoices).Statement
	req.NoError(stmt.Error)
	req.Contains(stmt.SQL.String(), "total_amount")
	req.Contains(stmt.SQL.String(), "total_currency")
	req.Equal([]any{a.Decimal(), money.XDR}, stmt.Vars)
}

func TestWhereNull(t *testing.T) {
	req := require.New(t)
	db := dryRun(t)

	var invoices []invoice

	stmt := db.Scopes(moneydb.WhereNull("total")).Find(&invoices).Statement
	req.NoError(stmt.Error)
	req.Contains(stmt.SQL.String(), "total_amount")
	req.Contains(stmt.SQL.String(), "total_currency")
	req.Contains(stmt.SQL.String(), "IS NULL")
	req.Empty(stmt.Vars)
}
