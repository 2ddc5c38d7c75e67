package contract

import (
	"fmt"

	"prediction_market/sdk"
)

// Terse pipe-delimited event lines so indexers can follow state changes
// without scanning full storage diffs. Amounts are the raw scaled int64.

// emitInitEvent records the one-time ownership assignment.
func emitInitEvent(owner string) {
	sdk.Log("ci|owner:" + owner)
}

// emitAdminAdded pings watchers that the admin set grew.
func emitAdminAdded(addr string) {
	sdk.Log("aa|addr:" + addr)
}

// emitAdminRemoved mirrors the add log for removals.
func emitAdminRemoved(addr string) {
	sdk.Log("ar|addr:" + addr)
}

// emitPauseChanged logs both directions of the pause flag with one code.
func emitPauseChanged(paused bool) {
	if paused {
		sdk.Log("cp|1")
	} else {
		sdk.Log("cp|0")
	}
}

// emitPredictionCreated includes the resolved deadline so explorers dont
// have to re-derive it from duration.
func emitPredictionCreated(id uint64, createdBy string, endTime int64) {
	sdk.Log(fmt.Sprintf(
		"pc|id:%d|by:%s|end:%d",
		id,
		createdBy,
		endTime,
	))
}

// emitBetPlaced carries the resolved amount actually drawn.
func emitBetPlaced(id uint64, bettor string, option string, amount Amount) {
	sdk.Log(fmt.Sprintf(
		"bp|id:%d|by:%s|opt:%s|am:%d",
		id,
		bettor,
		option,
		int64(amount),
	))
}

// emitPredictionEnded records the final winner, the irreversible bit.
func emitPredictionEnded(id uint64, winner string) {
	sdk.Log(fmt.Sprintf(
		"pe|id:%d|w:%s",
		id,
		winner,
	))
}

// emitPayoutAvailable is advisory: the share reflects the treasury at
// resolution time and is recomputed at claim time.
func emitPayoutAvailable(id uint64, participant string, share Amount) {
	sdk.Log(fmt.Sprintf(
		"pa|id:%d|to:%s|am:%d",
		id,
		participant,
		int64(share),
	))
}

// emitPayoutClaimed logs the amount actually paid out.
func emitPayoutClaimed(id uint64, claimer string, amount Amount) {
	sdk.Log(fmt.Sprintf(
		"pl|id:%d|by:%s|am:%d",
		id,
		claimer,
		int64(amount),
	))
}

// emitBalanceWithdrawn traces the owner draining the treasury.
func emitBalanceWithdrawn(to string, amount Amount) {
	sdk.Log(fmt.Sprintf(
		"wb|to:%s|am:%d",
		to,
		int64(amount),
	))
}
