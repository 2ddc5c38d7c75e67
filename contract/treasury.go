package contract

import "prediction_market/sdk"

// -----------------------------------------------------------------------------
// Treasury
// -----------------------------------------------------------------------------
// One scalar balance shared by all predictions. Payout computation divides a
// winner's stake by the winning pool and multiplies by this balance at the
// moment of computation; nothing is earmarked per prediction. Funds staked on
// one prediction can therefore back another prediction's payouts when claims
// overlap. Tests pin this behavior so any change to it is deliberate.

// getTreasuryBalance retrieves the shared balance backing all payouts.
func getTreasuryBalance() Amount {
	return readAmount(TreasuryKey)
}

// setTreasuryBalance overwrites the shared balance.
func setTreasuryBalance(amount Amount) {
	writeAmount(TreasuryKey, amount)
}

// addTreasuryFunds credits the treasury after a successful draw.
func addTreasuryFunds(amount Amount) {
	setTreasuryBalance(getTreasuryBalance() + amount)
}

// removeTreasuryFunds debits the treasury before funds leave the contract.
// Returns false if the balance cannot cover the amount.
func removeTreasuryFunds(amount Amount) bool {
	current := getTreasuryBalance()
	if current < amount {
		return false
	}
	setTreasuryBalance(current - amount)
	return true
}

// WithdrawBalance transfers the entire treasury to the owner. Owner only,
// not pause-gated. No per-prediction accounting constrains this; it can
// drain funds already announced as available to pending claims.
func WithdrawBalance(payload *string) *string {
	requireInitialized()
	owner := requireOwner()

	acquireLock()

	balance := getTreasuryBalance()
	if balance == 0 {
		revertArithmetic("treasury balance is zero")
	}
	setTreasuryBalance(0)
	emitBalanceWithdrawn(owner.String(), balance)
	sdk.HiveTransfer(owner, AmountToInt64(balance), TreasuryAsset)

	releaseLock()
	return strptr("balance withdrawn")
}
