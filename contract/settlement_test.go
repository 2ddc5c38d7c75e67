package contract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"prediction_market/contract"
	"prediction_market/sdk"
)

func TestEndPredictionRecordsWinner(t *testing.T) {
	ct := SetupContractTest(t)
	id := ct.CreatePrediction(60)
	ct.PlaceBet(bettorOne, id, "yes", "1.0")
	ct.Advance(61)

	ct.EndPrediction(id, "yes")
	assert.True(t, ct.HasLog("pe|id:0|w:yes"))
	assert.True(t, ct.HasLog("pa|id:0|to:"+bettorOne+"|am:1000"))

	ret := ct.MustCall(contract.GetPrediction, "0", bettorOne, nil)
	assert.Contains(t, ret, `"active":false`)
	assert.Contains(t, ret, `"winner":"yes"`)
}

func TestEndPredictionGuards(t *testing.T) {
	ct := SetupContractTest(t)
	id := ct.CreatePrediction(60)
	ct.PlaceBet(bettorOne, id, "yes", "1.0")

	// not before the window closes, not by outsiders, not with a made-up winner
	ct.MustRevert(contract.EndPrediction, "0|yes", ownerAddress, nil, contract.SymbolStateError)
	ct.Advance(61)
	ct.MustRevert(contract.EndPrediction, "0|yes", bettorOne, nil, contract.SymbolAuthorizationError)
	ct.MustRevert(contract.EndPrediction, "0|maybe", ownerAddress, nil, contract.SymbolValidationError)
	ct.MustRevert(contract.EndPrediction, "4|yes", ownerAddress, nil, contract.SymbolStateError)

	ct.EndPrediction(id, "yes")

	// the winner is immutable, even for the owner
	ct.MustRevert(contract.EndPrediction, "0|no", ownerAddress, nil, contract.SymbolStateError)
}

func TestProportionalPayouts(t *testing.T) {
	ct := SetupContractTest(t)
	id := ct.CreatePrediction(60)
	ct.PlaceBet(bettorOne, id, "yes", "1.0")
	ct.PlaceBet(bettorTwo, id, "yes", "3.0")
	ct.PlaceBet(bettorThree, id, "no", "4.0")
	ct.Advance(61)
	ct.EndPrediction(id, "yes")

	// 8.0 pooled, bettorOne holds 1/4 of the winning pool
	ct.MustCall(contract.ClaimPayout, "0", bettorOne, nil)
	assert.True(t, ct.HasLog("pl|id:0|by:"+bettorOne+"|am:2000"))
	assert.EqualValues(t, 6000, ct.TreasuryBalance())

	// the next claim divides what is left, not the original pot
	ct.MustCall(contract.ClaimPayout, "0", bettorTwo, nil)
	assert.True(t, ct.HasLog("pl|id:0|by:"+bettorTwo+"|am:4500"))
	assert.EqualValues(t, 1500, ct.TreasuryBalance())

	ct.MustRevert(contract.ClaimPayout, "0", bettorThree, nil, contract.SymbolArithmeticError)
}

func TestSoleWinnerTakesWholePot(t *testing.T) {
	ct := SetupContractTest(t)
	id := ct.CreatePrediction(100, "X", "Y")
	ct.PlaceBet(bettorOne, id, "X", "0.1")
	ct.PlaceBet(bettorTwo, id, "Y", "0.3")
	ct.Advance(101)
	ct.EndPrediction(id, "X")

	ct.MustCall(contract.ClaimPayout, "0", bettorOne, nil)
	assert.True(t, ct.HasLog("pl|id:0|by:"+bettorOne+"|am:400"))
	assert.EqualValues(t, 0, ct.TreasuryBalance())
}

func TestPayoutRoundsDown(t *testing.T) {
	ct := SetupContractTest(t)
	id := ct.CreatePrediction(60)
	ct.PlaceBet(bettorOne, id, "yes", "0.003")
	ct.PlaceBet(bettorTwo, id, "yes", "0.004")
	ct.PlaceBet(bettorThree, id, "no", "0.003")
	ct.Advance(61)
	ct.EndPrediction(id, "yes")

	// floor(3 * 10 / 7) = 4
	ct.MustCall(contract.ClaimPayout, "0", bettorOne, nil)
	assert.True(t, ct.HasLog("pl|id:0|by:"+bettorOne+"|am:4"))

	// floor(4 * 6 / 7) = 3; rounding dust stays in the treasury
	ct.MustCall(contract.ClaimPayout, "0", bettorTwo, nil)
	assert.True(t, ct.HasLog("pl|id:0|by:"+bettorTwo+"|am:3"))
	assert.EqualValues(t, 3, ct.TreasuryBalance())
}

func TestClaimGuards(t *testing.T) {
	ct := SetupContractTest(t)
	id := ct.CreatePrediction(60)
	ct.PlaceBet(bettorOne, id, "yes", "1.0")
	ct.PlaceBet(bettorTwo, id, "no", "1.0")

	ct.MustRevert(contract.ClaimPayout, "0", bettorOne, nil, contract.SymbolStateError)

	ct.Advance(61)
	ct.EndPrediction(id, "yes")

	// losers and bystanders have nothing to claim
	ct.MustRevert(contract.ClaimPayout, "0", bettorTwo, nil, contract.SymbolArithmeticError)
	ct.MustRevert(contract.ClaimPayout, "0", outsiderAddress, nil, contract.SymbolArithmeticError)

	before := ct.BalanceOf(bettorOne)
	ct.MustCall(contract.ClaimPayout, "0", bettorOne, nil)
	assert.EqualValues(t, before+2000, ct.BalanceOf(bettorOne))

	// claiming twice consumes nothing twice
	ct.MustRevert(contract.ClaimPayout, "0", bettorOne, nil, contract.SymbolArithmeticError)
}

func TestSettlementWithEmptyWinningPool(t *testing.T) {
	ct := SetupContractTest(t)
	id := ct.CreatePrediction(60)
	ct.PlaceBet(bettorOne, id, "no", "1.0")
	ct.Advance(61)

	ret := ct.MustCall(contract.EndPrediction, "0|yes", ownerAddress, nil)
	assert.Contains(t, ret, "empty winning pool")
	assert.False(t, ct.HasLog("pa|id:0"))

	ct.MustRevert(contract.ClaimPayout, "0", bettorOne, nil, contract.SymbolArithmeticError)
}

// The treasury is one shared scalar; a settled prediction's winners divide
// whatever is in it, including stakes pooled by other, still-open
// predictions. Pinned here so the behavior is a documented fact, not an
// accident.
func TestTreasuryIsSharedAcrossPredictions(t *testing.T) {
	ct := SetupContractTest(t)
	first := ct.CreatePrediction(60)
	second := ct.CreatePrediction(3600, "foo", "bar")
	ct.PlaceBet(bettorOne, first, "yes", "1.0")
	ct.PlaceBet(bettorTwo, second, "foo", "1.0")
	ct.Advance(61)
	ct.EndPrediction(first, "yes")

	// bettorOne's share is computed against both predictions' funds
	ct.MustCall(contract.ClaimPayout, "0", bettorOne, nil)
	assert.True(t, ct.HasLog("pl|id:0|by:"+bettorOne+"|am:2000"))
	assert.EqualValues(t, 0, ct.TreasuryBalance())
}

func TestClaimRollsBackWhenTransferFails(t *testing.T) {
	ct := SetupContractTest(t)
	id := ct.CreatePrediction(60)
	ct.PlaceBet(bettorOne, id, "yes", "1.0")
	ct.Advance(61)
	ct.EndPrediction(id, "yes")

	sdk.Mock.FailTransfers = true
	ct.MustRevert(contract.ClaimPayout, "0", bettorOne, nil, contract.SymbolTransferError)

	// stake and treasury are untouched after the rollback
	assert.EqualValues(t, 1000, ct.TreasuryBalance())
	ret := ct.MustCall(contract.GetStakes, "0", bettorOne, nil)
	assert.Contains(t, ret, `"total":1`)

	sdk.Mock.FailTransfers = false
	ct.MustCall(contract.ClaimPayout, "0", bettorOne, nil)
	assert.EqualValues(t, 0, ct.TreasuryBalance())
}

func TestClaimAfterOwnerWithdrawal(t *testing.T) {
	ct := SetupContractTest(t)
	id := ct.CreatePrediction(60)
	ct.PlaceBet(bettorOne, id, "yes", "1.0")
	ct.Advance(61)
	ct.EndPrediction(id, "yes")

	ct.MustCall(contract.WithdrawBalance, "", ownerAddress, nil)

	// the announced payout no longer exists; the claim fails cleanly
	ct.MustRevert(contract.ClaimPayout, "0", bettorOne, nil, contract.SymbolArithmeticError)
}
