package contract

import (
	"math/bits"

	"prediction_market/sdk"
)

// -----------------------------------------------------------------------------
// Settlement Engine
// -----------------------------------------------------------------------------
// Settlement is split in two: prediction_end freezes the market and announces
// advisory payout availability, then each winner pulls its share through an
// individually guarded claim. The claim recomputes the share against the
// treasury at claim time, so the announced and the paid amount diverge when
// the treasury moves in between.

// EndPrediction freezes a market and records the winning option, exactly once.
// Payload: `predictionId|winner`. Admin only, allowed while paused, requires
// the betting window to be over.
func EndPrediction(payload *string) *string {
	requireInitialized()
	requireAdmin()

	args := decodeEndPredictionArgs(payload)
	p := mustLoadPrediction(args.PredictionID)

	if nowUnix() <= p.EndTime {
		revertState("betting window still open")
	}
	if !p.Active {
		revertState("prediction already settled")
	}
	winnerIdx, ok := p.optionIndex(args.Winner)
	if !ok {
		revertValidation("unknown option: " + args.Winner)
	}

	p.Active = false
	p.Winner = int32(winnerIdx)
	savePrediction(p)
	emitPredictionEnded(p.ID, args.Winner)

	// Advisory availability pass. Nothing is reserved here; pool == 0 means
	// nobody backed the winner and no payouts are possible at all.
	pool := getOptionPool(p.ID, winnerIdx)
	if pool == 0 {
		return strptr("settled with empty winning pool")
	}
	balance := getTreasuryBalance()
	for _, participant := range loadParticipants(p.ID) {
		stake := getUserStake(p.ID, winnerIdx, participant)
		if stake <= 0 {
			continue
		}
		share := payoutShare(stake, balance, pool)
		if share > 0 {
			emitPayoutAvailable(p.ID, participant.String(), share)
		}
	}
	return strptr("settled")
}

// ClaimPayout pays the sender its proportional share of a settled market.
// Payload: the prediction id. The stake entry is consumed before any value
// moves; a re-entrant call therefore observes a zero stake even if it got
// past the lock. Do not reorder.
func ClaimPayout(payload *string) *string {
	requireInitialized()
	caller := getSenderAddress()
	requireNotPaused()

	acquireLock()

	id := decodeIDPayload(payload)
	p := mustLoadPrediction(id)
	if p.Active {
		revertState("prediction not settled yet")
	}

	winnerIdx := uint32(p.Winner)
	stake := getUserStake(p.ID, winnerIdx, caller)
	if stake <= 0 {
		revertArithmetic("no claimable stake on the winning option")
	}
	pool := getOptionPool(p.ID, winnerIdx)
	if pool <= 0 {
		revertArithmetic("winning pool is empty")
	}
	payout := payoutShare(stake, getTreasuryBalance(), pool)
	if payout == 0 {
		revertArithmetic("computed payout is zero")
	}

	clearUserStake(p.ID, winnerIdx, caller)
	if !removeTreasuryFunds(payout) {
		revertArithmetic("treasury cannot cover payout")
	}
	emitPayoutClaimed(p.ID, caller.String(), payout)
	sdk.HiveTransfer(caller, AmountToInt64(payout), TreasuryAsset)

	releaseLock()
	return strptr("payout claimed")
}

// payoutShare computes floor(stake * balance / pool) through a 128-bit
// intermediate so scaled amounts cannot overflow int64. stake <= pool holds
// for every caller, so the quotient always fits.
func payoutShare(stake, balance, pool Amount) Amount {
	if stake <= 0 || balance <= 0 || pool <= 0 {
		return 0
	}
	hi, lo := bits.Mul64(uint64(stake), uint64(balance))
	if hi >= uint64(pool) {
		sdk.Abort("payout quotient overflow")
	}
	q, _ := bits.Div64(hi, lo, uint64(pool))
	return Amount(q)
}
