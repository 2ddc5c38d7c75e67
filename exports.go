//go:build wasm

package main

import "prediction_market/contract"

// -----------------------------------------------------------------------------
// Contract entry points
// -----------------------------------------------------------------------------
// Thin wasm shims only; all logic lives in the contract package so the same
// code runs under the host and under the native test build.

//go:wasmexport contract_init
func ContractInit(payload *string) *string {
	return contract.Init(payload)
}

//go:wasmexport admin_add
func AdminAdd(payload *string) *string {
	return contract.AddAdmin(payload)
}

//go:wasmexport admin_remove
func AdminRemove(payload *string) *string {
	return contract.RemoveAdmin(payload)
}

//go:wasmexport pause
func Pause(payload *string) *string {
	return contract.Pause(payload)
}

//go:wasmexport unpause
func Unpause(payload *string) *string {
	return contract.Unpause(payload)
}

//go:wasmexport prediction_create
func PredictionCreate(payload *string) *string {
	return contract.CreatePrediction(payload)
}

//go:wasmexport prediction_get
func PredictionGet(payload *string) *string {
	return contract.GetPrediction(payload)
}

//go:wasmexport prediction_get_options
func PredictionGetOptions(payload *string) *string {
	return contract.GetOptions(payload)
}

//go:wasmexport bet_place
func BetPlace(payload *string) *string {
	return contract.PlaceBet(payload)
}

//go:wasmexport bet_get
func BetGet(payload *string) *string {
	return contract.GetStakes(payload)
}

//go:wasmexport prediction_end
func PredictionEnd(payload *string) *string {
	return contract.EndPrediction(payload)
}

//go:wasmexport payout_claim
func PayoutClaim(payload *string) *string {
	return contract.ClaimPayout(payload)
}

//go:wasmexport balance_withdraw
func BalanceWithdraw(payload *string) *string {
	return contract.WithdrawBalance(payload)
}
