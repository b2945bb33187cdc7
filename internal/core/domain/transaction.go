package domain

import "time"

// TransactionKind is the business reason for a ledger entry.
type TransactionKind string

const (
	KindEarn     TransactionKind = "earn"
	KindSpend    TransactionKind = "spend"
	KindPurchase TransactionKind = "purchase"
	KindBonus    TransactionKind = "bonus"
)

// Valid reports whether k is one of the known kinds.
func (k TransactionKind) Valid() bool {
	switch k {
	case KindEarn, KindSpend, KindPurchase, KindBonus:
		return true
	}
	return false
}

// Sign is +1 for kinds that add to a balance and -1 for spend.
func (k TransactionKind) Sign() int64 {
	if k == KindSpend {
		return -1
	}
	return 1
}

// Transaction is an immutable ledger entry. Amount is always positive; the
// direction comes from Kind.
type Transaction struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	Kind        TransactionKind `json:"type"`
	Amount      int64           `json:"amount"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"timestamp"`
}

// Signed returns the amount with the kind's sign applied.
func (t Transaction) Signed() int64 {
	return t.Kind.Sign() * t.Amount
}

// SignedSum folds a transaction log into the balance it implies.
func SignedSum(txs []Transaction) int64 {
	var sum int64
	for _, t := range txs {
		sum += t.Signed()
	}
	return sum
}
