package contract

import (
	"math"

	"prediction_market/sdk"
)

type Amount int64

// FloatToAmount scales human floats by AmountScale and rounds to int64 so storage stays precise.
// Example payload: FloatToAmount(1.234)
func FloatToAmount(v float64) Amount {
	return Amount(math.Round(v * AmountScale))
}

// AmountToFloat converts back to float64 for reporting or events.
// Example payload: AmountToFloat(FloatToAmount(2.5))
func AmountToFloat(v Amount) float64 {
	return float64(v) / AmountScale
}

// AmountToInt64 exposes the raw scaled int64 for Hive transfer functions.
// Example payload: AmountToInt64(FloatToAmount(3.14))
func AmountToInt64(v Amount) int64 {
	return int64(v)
}

// ContractConfig holds contract-wide settings fixed at init plus the pause flag.
type ContractConfig struct {
	Owner  sdk.Address
	Paused bool
}

// WinnerUnset marks a prediction that has not been settled yet.
const WinnerUnset int32 = -1

// Prediction is one wagering market: a fixed outcome set, a betting deadline
// and exactly one eventual winner. The record is created once and kept
// forever for audit reads; only Active and Winner flip, exactly once, at
// settlement.
type Prediction struct {
	ID          uint64
	Creator     sdk.Address
	Title       string
	Description string
	Options     []string
	CreatedAt   int64
	EndTime     int64
	Active      bool
	Winner      int32
	Tx          string
}

// optionIndex resolves an outcome label to its position in the option set.
func (p *Prediction) optionIndex(label string) (uint32, bool) {
	for i, opt := range p.Options {
		if opt == label {
			return uint32(i), true
		}
	}
	return 0, false
}

// winnerLabel returns the recorded winning label, empty while active.
func (p *Prediction) winnerLabel() string {
	if p.Winner < 0 || int(p.Winner) >= len(p.Options) {
		return ""
	}
	return p.Options[p.Winner]
}

type CreatePredictionArgs struct {
	Title       string
	Description string
	Options     []string
	Duration    uint64
}

type PlaceBetArgs struct {
	PredictionID uint64
	Option       string
	Amount       Amount
}

type EndPredictionArgs struct {
	PredictionID uint64
	Winner       string
}

type StakeQueryArgs struct {
	PredictionID uint64
	Address      sdk.Address
}

// AddressFromString converts a human string to the platform-specific address wrapper.
// Example payload: AddressFromString("hive:alice")
func AddressFromString(s string) sdk.Address { return sdk.Address(s) }

// AddressToString turns the wrapped type back into the underlying string.
// Example payload: AddressToString(AddressFromString("hive:bob"))
func AddressToString(a sdk.Address) string { return a.String() }
