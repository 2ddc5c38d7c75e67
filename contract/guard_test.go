package contract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prediction_market/contract"
	"prediction_market/sdk"
)

func TestPauseBlocksParticipantOperations(t *testing.T) {
	ct := SetupContractTest(t)
	id := ct.CreatePrediction(60)
	ct.PlaceBet(bettorOne, id, "yes", "1.0")

	ct.MustCall(contract.Pause, "", ownerAddress, nil)
	assert.True(t, ct.HasLog("cp|1"))

	ct.MustRevert(contract.CreatePrediction, "t|d|yes;no|60", ownerAddress, nil, contract.SymbolStateError)
	ct.MustRevert(contract.PlaceBet, "0|yes|1.0", bettorTwo, HiveAllow("1.0"), contract.SymbolStateError)

	ct.Advance(61)
	ct.EndPrediction(id, "yes")
	ct.MustRevert(contract.ClaimPayout, "0", bettorOne, nil, contract.SymbolStateError)

	ct.MustCall(contract.Unpause, "", ownerAddress, nil)
	assert.True(t, ct.HasLog("cp|0"))
	ct.MustCall(contract.ClaimPayout, "0", bettorOne, nil)
}

func TestPauseLeavesAdminOperationsAvailable(t *testing.T) {
	ct := SetupContractTest(t)
	id := ct.CreatePrediction(60)
	ct.PlaceBet(bettorOne, id, "yes", "1.0")

	ct.MustCall(contract.Pause, "", ownerAddress, nil)

	// resolving obligations and managing the contract work while paused
	ct.MustCall(contract.AddAdmin, bettorTwo, ownerAddress, nil)
	ct.MustCall(contract.RemoveAdmin, bettorTwo, ownerAddress, nil)
	ct.Advance(61)
	ct.EndPrediction(id, "yes")
	ct.MustCall(contract.WithdrawBalance, "", ownerAddress, nil)
}

func TestPauseTransitions(t *testing.T) {
	ct := SetupContractTest(t)

	ct.MustRevert(contract.Unpause, "", ownerAddress, nil, contract.SymbolStateError)

	ct.MustCall(contract.Pause, "", ownerAddress, nil)
	ct.MustRevert(contract.Pause, "", ownerAddress, nil, contract.SymbolStateError)

	ct.MustCall(contract.Unpause, "", ownerAddress, nil)
	ct.MustRevert(contract.Unpause, "", ownerAddress, nil, contract.SymbolStateError)
}

func TestPauseOnlyOwner(t *testing.T) {
	ct := SetupContractTest(t)

	ct.MustCall(contract.AddAdmin, bettorOne, ownerAddress, nil)
	ct.MustRevert(contract.Pause, "", bettorOne, nil, contract.SymbolAuthorizationError)

	ct.MustCall(contract.Pause, "", ownerAddress, nil)
	ct.MustRevert(contract.Unpause, "", bettorOne, nil, contract.SymbolAuthorizationError)
}

// A recipient reacting to the payout transfer must not be able to claim a
// second time before the first claim finishes.
func TestClaimReentrancyRejected(t *testing.T) {
	ct := SetupContractTest(t)
	id := ct.CreatePrediction(60)
	ct.PlaceBet(bettorOne, id, "yes", "1.0")
	ct.PlaceBet(bettorTwo, id, "no", "1.0")
	ct.Advance(61)
	ct.EndPrediction(id, "yes")

	var inner *sdk.RevertError
	sdk.Mock.TransferHook = func(to sdk.Address, amount int64, asset sdk.Asset) {
		sdk.Mock.TransferHook = nil
		_, inner = invokeRecovering(contract.ClaimPayout, "0")
	}

	ct.MustCall(contract.ClaimPayout, "0", bettorOne, nil)

	require.NotNil(t, inner, "nested claim did not run")
	assert.Equal(t, contract.SymbolStateError, inner.Symbol)
	assert.Len(t, sdk.Mock.Transfers, 1)
	assert.EqualValues(t, 2000, sdk.Mock.Transfers[0].Amount)

	// the stake was consumed exactly once
	ct.MustRevert(contract.ClaimPayout, "0", bettorOne, nil, contract.SymbolArithmeticError)
}

// A reverted fund-moving call must not leave the lock behind.
func TestLockReleasedAfterRevert(t *testing.T) {
	ct := SetupContractTest(t)
	id := ct.CreatePrediction(60)
	ct.PlaceBet(bettorOne, id, "yes", "1.0")
	ct.Advance(61)
	ct.EndPrediction(id, "yes")

	sdk.Mock.FailTransfers = true
	ct.MustRevert(contract.ClaimPayout, "0", bettorOne, nil, contract.SymbolTransferError)

	sdk.Mock.FailTransfers = false
	ct.MustCall(contract.ClaimPayout, "0", bettorOne, nil)
}
