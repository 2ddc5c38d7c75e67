package contract_test

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prediction_market/contract"
	"prediction_market/sdk"
)

const ownerAddress = "hive:tibfox"
const bettorOne = "hive:someone"
const bettorTwo = "hive:someoneelse"
const bettorThree = "hive:member2"
const outsiderAddress = "hive:outsider"

// baseTime is an arbitrary fixed block time in unix seconds; tests move the
// clock forward explicitly to cross betting deadlines.
const baseTime int64 = 1_750_000_000

var txCounter int

// contractTest wraps the mock host with a controllable clock, mirroring how
// the wasm integration harness drives a registered contract instance.
type contractTest struct {
	t   *testing.T
	now int64
}

// SetupContractTest resets the host, funds the default accounts and
// initializes the contract with ownerAddress as owner.
func SetupContractTest(t *testing.T) *contractTest {
	sdk.ResetMock()
	ct := &contractTest{t: t, now: baseTime}
	ct.Deposit(bettorOne, 200_000)
	ct.Deposit(bettorTwo, 200_000)
	ct.Deposit(bettorThree, 200_000)
	ct.Deposit(outsiderAddress, 200_000)
	ct.MustCall(contract.Init, "init", ownerAddress, nil)
	return ct
}

// Deposit credits a scaled hive amount to an account on the mock ledger.
func (ct *contractTest) Deposit(user string, amount int64) {
	sdk.Mock.Balances[user+"|"+sdk.AssetHive.String()] += amount
}

// BalanceOf reads an account's scaled hive balance off the mock ledger.
func (ct *contractTest) BalanceOf(user string) int64 {
	return sdk.Mock.Balances[user+"|"+sdk.AssetHive.String()]
}

// TreasuryBalance reads the contract's pooled balance straight from state.
func (ct *contractTest) TreasuryBalance() int64 {
	raw, ok := sdk.Mock.State[contract.TreasuryKey]
	if !ok || raw == "" {
		return 0
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	require.NoError(ct.t, err)
	return v
}

// Advance moves the block clock forward.
func (ct *contractTest) Advance(seconds int64) {
	ct.now += seconds
}

// HiveAllow builds the transfer.allow intent bets draw against. The limit is
// in human units, matching what wallets sign.
func HiveAllow(limit string) []sdk.Intent {
	return []sdk.Intent{{
		Type: "transfer.allow",
		Args: map[string]string{"limit": limit, "token": "hive"},
	}}
}

// Call runs one entry point as one host transaction: fresh tx id, state
// snapshot before, full rollback when the call reverts. That mirrors the
// host's all-or-nothing execution.
func (ct *contractTest) Call(fn func(*string) *string, payload string, user string, intents []sdk.Intent) (string, *sdk.RevertError) {
	txCounter++
	sdk.Mock.TxID = fmt.Sprintf("tx-%d", txCounter)
	sdk.Mock.Sender = sdk.Address(user)
	sdk.Mock.Timestamp = strconv.FormatInt(ct.now, 10)
	sdk.Mock.Intents = intents

	snap := sdk.Mock.Snapshot()
	ret, rerr := invokeRecovering(fn, payload)
	if rerr != nil {
		sdk.Mock.Restore(snap)
	}
	return ret, rerr
}

// MustCall asserts the call succeeds and returns its result string.
func (ct *contractTest) MustCall(fn func(*string) *string, payload string, user string, intents []sdk.Intent) string {
	ret, rerr := ct.Call(fn, payload, user, intents)
	require.Nil(ct.t, rerr, "call reverted unexpectedly: %v", rerr)
	return ret
}

// MustRevert asserts the call reverts with the given symbol.
func (ct *contractTest) MustRevert(fn func(*string) *string, payload string, user string, intents []sdk.Intent, symbol string) *sdk.RevertError {
	_, rerr := ct.Call(fn, payload, user, intents)
	require.NotNil(ct.t, rerr, "call succeeded but a revert was expected")
	assert.Equal(ct.t, symbol, rerr.Symbol, "unexpected revert: %v", rerr)
	return rerr
}

// invokeRecovering converts the mock host's revert panic back into a value.
func invokeRecovering(fn func(*string) *string, payload string) (ret string, rerr *sdk.RevertError) {
	defer func() {
		if r := recover(); r != nil {
			re, ok := r.(*sdk.RevertError)
			if !ok {
				panic(r)
			}
			rerr = re
		}
	}()
	p := payload
	if out := fn(&p); out != nil {
		ret = *out
	}
	return
}

// CreatePrediction opens a market as the owner and returns its id.
// Options default to yes/no when none are given.
func (ct *contractTest) CreatePrediction(durationSeconds int64, options ...string) uint64 {
	if len(options) == 0 {
		options = []string{"yes", "no"}
	}
	payload := fmt.Sprintf(
		"Will it rain tomorrow|simple weather wager|%s|%d",
		strings.Join(options, ";"),
		durationSeconds,
	)
	ret := ct.MustCall(contract.CreatePrediction, payload, ownerAddress, nil)
	id, err := strconv.ParseUint(ret, 10, 64)
	require.NoError(ct.t, err, "create did not return a numeric id: %q", ret)
	return id
}

// PlaceBet stakes a human-unit amount with a matching transfer.allow intent.
func (ct *contractTest) PlaceBet(user string, id uint64, option string, amount string) {
	payload := fmt.Sprintf("%d|%s|%s", id, option, amount)
	ct.MustCall(contract.PlaceBet, payload, user, HiveAllow(amount))
}

// EndPrediction settles a market as the owner.
func (ct *contractTest) EndPrediction(id uint64, winner string) {
	ct.MustCall(contract.EndPrediction, fmt.Sprintf("%d|%s", id, winner), ownerAddress, nil)
}

// HasLog reports whether any emitted event line starts with the prefix.
func (ct *contractTest) HasLog(prefix string) bool {
	for _, line := range sdk.Mock.Logs {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}
