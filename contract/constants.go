package contract

import "prediction_market/sdk"

// -----------------------------------------------------------------------------
// Treasury
// -----------------------------------------------------------------------------

// TreasuryAsset is the single asset this contract pools and pays out.
var TreasuryAsset = sdk.AssetHive

// AmountScale defines the precision multiplier for converting floats to int64.
const AmountScale = 1000

// -----------------------------------------------------------------------------
// Validation Limits
// -----------------------------------------------------------------------------

const (
	// MinOptions and MaxOptions bound the outcome set of a prediction.
	MinOptions = 2
	MaxOptions = 10
	// MaxOptionTextLength limits the size of a single outcome label.
	MaxOptionTextLength = 120
	// MaxTitleLength limits prediction titles.
	MaxTitleLength = 200
	// MaxDescriptionLength limits prediction descriptions.
	MaxDescriptionLength = 500
)

// -----------------------------------------------------------------------------
// Fixed State Keys
// -----------------------------------------------------------------------------

const (
	// ContractConfigKey stores the pipe-encoded ContractConfig (owner|paused).
	ContractConfigKey = "cfg"
	// ReentrancyLockKey is present while a fund-moving operation runs.
	ReentrancyLockKey = "lock"
	// TreasuryKey holds the shared scalar balance backing all payouts.
	TreasuryKey = "treasury"
	// PredictionsCount holds an integer counter for predictions (used for generating IDs).
	PredictionsCount = "count:predictions"
)

// -----------------------------------------------------------------------------
// Storage Key Prefixes
// -----------------------------------------------------------------------------

const (
	// kPredictionMeta stores encoded Prediction records.
	kPredictionMeta byte = 0x01
	// kOptionPool tracks the pooled stake per (prediction, option index).
	kOptionPool byte = 0x02
	// kUserStake tracks a participant's stake per (prediction, option index, address).
	kUserStake byte = 0x03
	// kParticipantList stores the ordered, deduplicated participant list per prediction.
	kParticipantList byte = 0x04
	// kParticipantSeen flags addresses already in the participant list (dedup across options).
	kParticipantSeen byte = 0x05
	// kAdminFlag marks members of the admin set (the owner is admin implicitly).
	kAdminFlag byte = 0x06
)
