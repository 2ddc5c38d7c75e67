package contract

import (
	"strconv"

	"prediction_market/sdk"
)

////////////////////////////////////////////////////////////////////////////////
// Contract State Persistence helpers
////////////////////////////////////////////////////////////////////////////////

// savePrediction stores the encoded record under its id key.
func savePrediction(p *Prediction) {
	sdk.StateSetObject(predictionKey(p.ID), string(EncodePrediction(p)))
}

// loadPrediction returns nil when the id was never allocated.
func loadPrediction(id uint64) *Prediction {
	ptr := sdk.StateGetObject(predictionKey(id))
	if ptr == nil || *ptr == "" {
		return nil
	}
	p, err := DecodePrediction([]byte(*ptr))
	if err != nil {
		sdk.Abort("corrupt prediction record " + UInt64ToString(id))
	}
	return p
}

// mustLoadPrediction is the taxonomy-aware variant used by every operation.
func mustLoadPrediction(id uint64) *Prediction {
	p := loadPrediction(id)
	if p == nil {
		revertState("prediction " + UInt64ToString(id) + " not found")
	}
	return p
}

// -----------------------------------------------------------------------------
// Counter Operations
// -----------------------------------------------------------------------------

// getCount reads the string counter under the key and defaults to zero, nothing magical here.
func getCount(key string) uint64 {
	ptr := sdk.StateGetObject(key)
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.ParseUint(*ptr, 10, 64)
	return n
}

// setCount stores uint64 counters back as decimal strings for the host kv.
func setCount(key string, n uint64) {
	sdk.StateSetObject(key, strconv.FormatUint(n, 10))
}

// nextPredictionID hands out dense ids starting at 0. The bump is part of
// the same transaction as the record write, so a reverted create never
// consumes an id.
func nextPredictionID() uint64 {
	id := getCount(PredictionsCount)
	setCount(PredictionsCount, id+1)
	return id
}

// -----------------------------------------------------------------------------
// String Conversion Helpers
// -----------------------------------------------------------------------------

// UInt64ToString turns an id back into decimal text for logs or event lines.
// Example payload: UInt64ToString(9001)
func UInt64ToString(val uint64) string {
	return strconv.FormatUint(val, 10)
}
