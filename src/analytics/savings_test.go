package analytics

import (
	"monthwise-server/src/models"
	"testing"
)

func TestAccountBalance(t *testing.T) {
	account := models.SavingsAccount{ID: "acc-1", InitialBalance: "500"}
	transactions := []models.SavingsTransaction{
		{AccountID: "acc-1", Amount: "100"},
		{AccountID: "acc-1", Amount: "-25.50"},
		{AccountID: "acc-2", Amount: "9000"}, // other account, ignored
	}

	if got := AccountBalance(account, transactions); got != 574.50 {
		t.Errorf("AccountBalance = %v, want 574.50", got)
	}
}

func TestBalancesByAccount(t *testing.T) {
	accounts := []models.SavingsAccount{
		{ID: "acc-1", InitialBalance: "500"},
		{ID: "acc-2", InitialBalance: "0"},
		{ID: "acc-3", InitialBalance: "100"},
	}
	transactions := []models.SavingsTransaction{
		{AccountID: "acc-1", Amount: "200"},
		{AccountID: "acc-2", Amount: "50"},
		{AccountID: "acc-2", Amount: "-20"},
		{AccountID: "acc-gone", Amount: "1"}, // unknown account, ignored
	}

	balances := BalancesByAccount(accounts, transactions)
	if balances["acc-1"] != 700 {
		t.Errorf("acc-1 = %v, want 700", balances["acc-1"])
	}
	if balances["acc-2"] != 30 {
		t.Errorf("acc-2 = %v, want 30", balances["acc-2"])
	}
	// No transactions: the lifetime balance is just the initial balance.
	if balances["acc-3"] != 100 {
		t.Errorf("acc-3 = %v, want 100", balances["acc-3"])
	}
}

func TestMonthContribution(t *testing.T) {
	transactions := []models.SavingsTransactionWithAccount{
		{Amount: "100"},
		{Amount: "-40"},
		{Amount: "10.50"},
	}
	if got := MonthContribution(transactions); got != 70.50 {
		t.Errorf("MonthContribution = %v, want 70.50", got)
	}
	if got := MonthContribution(nil); got != 0 {
		t.Errorf("MonthContribution(nil) = %v, want 0", got)
	}
}
