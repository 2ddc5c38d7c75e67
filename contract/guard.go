package contract

import "prediction_market/sdk"

// -----------------------------------------------------------------------------
// Pause Guard
// -----------------------------------------------------------------------------
// One flag halting prediction creation, bet placement and payout claims.
// Settlement, admin management and withdrawal stay available while paused:
// pause protects participants from new exposure, not administrators from
// resolving existing obligations.

// isPaused reads the flag from the contract config.
func isPaused() bool {
	cfg := loadContractConfig()
	return cfg != nil && cfg.Paused
}

// requireNotPaused reverts participant-facing operations while paused.
func requireNotPaused() {
	if isPaused() {
		revertState("contract is paused")
	}
}

// Pause halts participant-facing operations. Owner only.
func Pause(payload *string) *string {
	requireInitialized()
	requireOwner()

	cfg := loadContractConfig()
	if cfg.Paused {
		revertState("contract is already paused")
	}
	cfg.Paused = true
	saveContractConfig(cfg)
	emitPauseChanged(true)
	return strptr("paused")
}

// Unpause lifts the halt. Owner only.
func Unpause(payload *string) *string {
	requireInitialized()
	requireOwner()

	cfg := loadContractConfig()
	if !cfg.Paused {
		revertState("contract is not paused")
	}
	cfg.Paused = false
	saveContractConfig(cfg)
	emitPauseChanged(false)
	return strptr("unpaused")
}

// -----------------------------------------------------------------------------
// Re-entrancy Guard
// -----------------------------------------------------------------------------
// A lock flag scoped to a single fund-moving operation. A transfer inside
// claim can call back into the contract before returning; the lock makes the
// nested call revert. Reverts roll the flag back with the rest of the state,
// so a failed operation never leaves the lock stuck.

// acquireLock takes the re-entrancy lock or reverts when already held.
func acquireLock() {
	ptr := sdk.StateGetObject(ReentrancyLockKey)
	if ptr != nil && *ptr != "" {
		revertState("re-entrant call rejected")
	}
	sdk.StateSetObject(ReentrancyLockKey, "1")
}

// releaseLock clears the lock on the success path.
func releaseLock() {
	sdk.StateDeleteObject(ReentrancyLockKey)
}
