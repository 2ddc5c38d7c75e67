package contract

import "prediction_market/sdk"

// Revert symbols, the contract's error taxonomy. Every failure path maps to
// exactly one of these; the host rolls back all state mutations on revert.
const (
	// SymbolAuthorizationError: caller lacks owner/admin privilege.
	SymbolAuthorizationError = "authorization_error"
	// SymbolStateError: wrong pause state, missing/ended/not-yet-ended
	// prediction, or a re-entrant call in progress.
	SymbolStateError = "state_error"
	// SymbolValidationError: malformed input.
	SymbolValidationError = "validation_error"
	// SymbolArithmeticError: empty winning pool or zero computed payout.
	SymbolArithmeticError = "arithmetic_error"
	// SymbolTransferError: value could not be drawn or sent.
	SymbolTransferError = "transfer_error"
)

func revertAuthorization(msg string) {
	sdk.Revert(msg, SymbolAuthorizationError)
}

func revertState(msg string) {
	sdk.Revert(msg, SymbolStateError)
}

func revertValidation(msg string) {
	sdk.Revert(msg, SymbolValidationError)
}

func revertArithmetic(msg string) {
	sdk.Revert(msg, SymbolArithmeticError)
}

func revertTransfer(msg string) {
	sdk.Revert(msg, SymbolTransferError)
}
