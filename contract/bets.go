package contract

import "prediction_market/sdk"

// -----------------------------------------------------------------------------
// Betting Pool
// -----------------------------------------------------------------------------

// PlaceBet stakes value on one option of an active prediction.
// Payload: `predictionId|option|amount`; the funds are drawn from the sender
// via a transfer.allow intent covering the amount.
// Repeated bets accumulate, they never replace.
func PlaceBet(payload *string) *string {
	requireInitialized()
	caller := getSenderAddress()
	args := decodePlaceBetArgs(payload)

	p := mustLoadPrediction(args.PredictionID)
	requireNotPaused()

	acquireLock()

	if !p.Active {
		revertState("prediction already settled")
	}
	if args.Amount <= 0 {
		revertValidation("bet amount must be positive")
	}
	if nowUnix() > p.EndTime {
		revertState("betting window closed")
	}
	idx, ok := p.optionIndex(args.Option)
	if !ok {
		revertValidation("unknown option: " + args.Option)
	}

	drawBetFunds(args.Amount)

	addParticipant(p.ID, caller)
	addUserStake(p.ID, idx, caller, args.Amount)
	addOptionPool(p.ID, idx, args.Amount)
	addTreasuryFunds(args.Amount)

	emitBetPlaced(p.ID, caller.String(), args.Option, args.Amount)

	releaseLock()
	return strptr("bet placed")
}

// drawBetFunds verifies the transfer.allow intent covers the bet and pulls
// the tokens into the contract.
func drawBetFunds(amount Amount) {
	ta := getFirstTransferAllow()
	if ta == nil {
		revertTransfer("transfer.allow intent required")
	}
	if ta.Limit < amount {
		revertTransfer("intent limit below bet amount")
	}
	sdk.HiveDraw(AmountToInt64(amount), TreasuryAsset)
}

// GetStakes returns the per-option stakes of one participant as JSON.
// Payload: `predictionId` (sender's own stakes) or `predictionId|address`.
func GetStakes(payload *string) *string {
	requireInitialized()
	args := decodeStakeQueryArgs(payload)
	p := mustLoadPrediction(args.PredictionID)
	return strptr(stakesJSON(p, args.Address))
}
