package contract

import (
	"strconv"

	"prediction_market/sdk"
)

// -----------------------------------------------------------------------------
// Pooled-stake bookkeeping
// -----------------------------------------------------------------------------
// Two explicit tables instead of nested maps: (prediction, option) -> pooled
// amount and (prediction, option, address) -> user amount. Both only grow
// while a prediction is active; the user entry is deleted exactly once at a
// successful claim.

// readAmount parses a stored decimal amount, defaulting to zero when absent.
func readAmount(key string) Amount {
	ptr := sdk.StateGetObject(key)
	if ptr == nil || *ptr == "" {
		return 0
	}
	v, err := strconv.ParseInt(*ptr, 10, 64)
	if err != nil {
		sdk.Abort("corrupt amount under state key")
	}
	return Amount(v)
}

// writeAmount stores amounts as decimal strings for the host kv.
func writeAmount(key string, v Amount) {
	sdk.StateSetObject(key, strconv.FormatInt(int64(v), 10))
}

// getOptionPool returns the aggregate stake committed to one option.
func getOptionPool(id uint64, idx uint32) Amount {
	return readAmount(optionPoolKey(id, idx))
}

// addOptionPool bumps the option pool; only ever called with positive amounts.
func addOptionPool(id uint64, idx uint32, amount Amount) {
	key := optionPoolKey(id, idx)
	writeAmount(key, readAmount(key)+amount)
}

// getUserStake returns a participant's accumulated stake on one option.
func getUserStake(id uint64, idx uint32, addr sdk.Address) Amount {
	return readAmount(userStakeKey(id, idx, addr))
}

// addUserStake accumulates; repeated bets add up, they never replace.
func addUserStake(id uint64, idx uint32, addr sdk.Address, amount Amount) {
	key := userStakeKey(id, idx, addr)
	writeAmount(key, readAmount(key)+amount)
}

// clearUserStake consumes the entry at claim time. The option pool keeps its
// value on purpose: it stays the payout denominator for every other winner.
func clearUserStake(id uint64, idx uint32, addr sdk.Address) {
	sdk.StateDeleteObject(userStakeKey(id, idx, addr))
}

// hasParticipant reports whether the address already staked on this prediction.
func hasParticipant(id uint64, addr sdk.Address) bool {
	ptr := sdk.StateGetObject(participantSeenKey(id, addr))
	return ptr != nil && *ptr != ""
}

// addParticipant appends the address to the ordered list on its first stake,
// no matter which option that stake lands on.
func addParticipant(id uint64, addr sdk.Address) {
	if hasParticipant(id, addr) {
		return
	}
	sdk.StateSetObject(participantSeenKey(id, addr), "1")
	list := loadParticipants(id)
	list = append(list, addr)
	sdk.StateSetObject(participantsKey(id), string(EncodeAddressList(list)))
}

// loadParticipants returns the ordered participant list, empty when nobody bet.
func loadParticipants(id uint64) []sdk.Address {
	ptr := sdk.StateGetObject(participantsKey(id))
	if ptr == nil || *ptr == "" {
		return []sdk.Address{}
	}
	list, err := DecodeAddressList([]byte(*ptr))
	if err != nil {
		sdk.Abort("corrupt participant list " + UInt64ToString(id))
	}
	return list
}
