package analytics

import "monthwise-server/src/models"

// AccountBalance is the lifetime balance: initial balance plus every
// transaction ever posted to the account, regardless of month.
func AccountBalance(account models.SavingsAccount, transactions []models.SavingsTransaction) float64 {
	balance := ParseAmount(account.InitialBalance)
	for _, t := range transactions {
		if t.AccountID != account.ID {
			continue
		}
		balance += ParseAmount(t.Amount)
	}
	return balance
}

// BalancesByAccount folds a full transaction history into per-account
// lifetime balances. Accounts with no transactions keep their initial
// balance.
func BalancesByAccount(accounts []models.SavingsAccount, transactions []models.SavingsTransaction) map[string]float64 {
	balances := make(map[string]float64, len(accounts))
	for _, a := range accounts {
		balances[a.ID] = ParseAmount(a.InitialBalance)
	}
	for _, t := range transactions {
		if _, ok := balances[t.AccountID]; !ok {
			continue
		}
		balances[t.AccountID] += ParseAmount(t.Amount)
	}
	return balances
}

// MonthContribution sums the signed amounts of one month's transactions:
// the trend-chart number, not the balance.
func MonthContribution(transactions []models.SavingsTransactionWithAccount) float64 {
	var total float64
	for _, t := range transactions {
		total += ParseAmount(t.Amount)
	}
	return total
}
