package contract

import (
	"strconv"
	"time"

	"prediction_market/sdk"
)

// cachedEnv/cachedTransfer are scoped to the currently executing transaction.
// Whenever the tx.id changes we refresh sdk.GetEnv() and drop memoized data
// to keep reads consistent.
var (
	cachedEnv       sdk.Env
	cachedEnvLoaded bool
	cachedTransfer  *TransferAllow
)

// currentEnv caches the env per tx.id so we dont poke the host api every few
// lines and ensures subsequent helper calls (intents, sender, timestamps)
// always see the same snapshot.
func currentEnv() *sdk.Env {
	var currentTx string
	if txPtr := sdk.GetEnvKey("tx.id"); txPtr != nil {
		currentTx = *txPtr
	}
	if !cachedEnvLoaded || cachedEnv.TxId != currentTx {
		cachedEnv = sdk.GetEnv()
		cachedEnvLoaded = true
		cachedTransfer = nil
	}
	return &cachedEnv
}

// currentIntents is just a tiny helper to access intents already pulled above.
func currentIntents() []sdk.Intent {
	return currentEnv().Intents
}

// getSenderAddress returns the address of the current transaction sender.
func getSenderAddress() sdk.Address {
	return currentEnv().Sender.Address
}

// getTxID returns the id of the current transaction for audit fields.
func getTxID() string {
	return currentEnv().TxId
}

// TransferAllow represents arguments extracted from a transfer.allow intent.
// It specifies the allowed transfer amount (`Limit`) and the asset (`Token`).
type TransferAllow struct {
	Limit Amount
	Token sdk.Asset
}

// getFirstTransferAllow scans the provided intents and returns the first
// transfer.allow intent carrying the treasury asset. The cached result is
// cleared automatically whenever currentEnv() detects a new transaction so
// tests do not leak state between calls.
func getFirstTransferAllow() *TransferAllow {
	if cachedTransfer != nil {
		return cachedTransfer
	}
	for _, intent := range currentIntents() {
		if intent.Type != "transfer.allow" {
			continue
		}
		token := intent.Args["token"]
		if token != TreasuryAsset.String() {
			continue
		}
		limit, err := strconv.ParseFloat(intent.Args["limit"], 64)
		if err != nil {
			revertValidation("invalid intent limit")
		}
		ta := &TransferAllow{
			Limit: FloatToAmount(limit),
			Token: sdk.Asset(token),
		}
		cachedTransfer = ta
		return ta
	}
	return nil
}

// -----------------------------------------------------------------------------
// Timestamp Helpers
// -----------------------------------------------------------------------------

// nowUnix returns the current Unix timestamp.
// It prefers the chain's block timestamp from the environment if available.
func nowUnix() int64 {
	if ts := currentEnv().Timestamp; ts != "" {
		if v, ok := parseTimestamp(ts); ok {
			return v
		}
	}
	if tsPtr := sdk.GetEnvKey("block.timestamp"); tsPtr != nil && *tsPtr != "" {
		if v, ok := parseTimestamp(*tsPtr); ok {
			return v
		}
	}
	return time.Now().Unix()
}

// parseTimestamp accepts unix seconds or iso-ish strings since the env flips formats sometimes.
func parseTimestamp(val string) (int64, bool) {
	if v, err := strconv.ParseInt(val, 10, 64); err == nil {
		return v, true
	}
	if t, err := time.Parse(time.RFC3339, val); err == nil {
		return t.Unix(), true
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", val, time.UTC); err == nil {
		return t.Unix(), true
	}
	return 0, false
}
