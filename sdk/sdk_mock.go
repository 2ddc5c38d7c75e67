//go:build !wasm

package sdk

// In-memory stand-in for the vsc host so the contract package can run under
// plain `go test`. The wasm build in sdk.go talks to the real host; this file
// mirrors its exported surface one to one. Tests drive the environment
// through the Mock singleton and snapshot/restore state around each call to
// get the host's all-or-nothing transaction semantics.

import (
	"fmt"
	"strconv"
)

// RevertError is what the mock host throws instead of trapping the wasm
// instance. Symbol matches the second argument of sdk.Revert.
type RevertError struct {
	Symbol string
	Msg    string
}

func (e *RevertError) Error() string {
	return e.Symbol + ": " + e.Msg
}

// Transfer records an outbound hive.transfer call.
type Transfer struct {
	To     Address
	Amount int64
	Asset  Asset
}

// Draw records an inbound hive.draw call against the current sender.
type Draw struct {
	From   Address
	Amount int64
	Asset  Asset
}

type MockHost struct {
	State       map[string]string
	Sender      Address
	TxID        string
	BlockHeight uint64
	Timestamp   string
	Intents     []Intent
	Balances    map[string]int64
	Logs        []string
	Draws       []Draw
	Transfers   []Transfer

	// TransferHook runs after every outbound transfer, simulating a
	// recipient that reacts to the incoming funds (re-entrancy scenarios).
	TransferHook func(to Address, amount int64, asset Asset)
	// FailTransfers makes every hive.transfer throw like the host does when
	// the ledger operation cannot complete.
	FailTransfers bool
}

func NewMockHost() *MockHost {
	return &MockHost{
		State:     map[string]string{},
		Sender:    Address("hive:someone"),
		TxID:      "tx-0",
		Timestamp: "2025-01-01T00:00:00",
		Balances:  map[string]int64{},
	}
}

// Mock is the host instance backing all sdk calls in the native build.
var Mock = NewMockHost()

// ResetMock swaps in a fresh host; call at the start of every test.
func ResetMock() {
	Mock = NewMockHost()
}

// MockSnapshot captures everything a rolled-back transaction must restore.
type MockSnapshot struct {
	state     map[string]string
	balances  map[string]int64
	logs      []string
	draws     []Draw
	transfers []Transfer
}

// Snapshot copies the mutable host data so a failed call can be undone.
func (m *MockHost) Snapshot() *MockSnapshot {
	s := &MockSnapshot{
		state:     make(map[string]string, len(m.State)),
		balances:  make(map[string]int64, len(m.Balances)),
		logs:      append([]string(nil), m.Logs...),
		draws:     append([]Draw(nil), m.Draws...),
		transfers: append([]Transfer(nil), m.Transfers...),
	}
	for k, v := range m.State {
		s.state[k] = v
	}
	for k, v := range m.Balances {
		s.balances[k] = v
	}
	return s
}

// Restore rewinds the host to a snapshot, mirroring the host's atomic rollback.
func (m *MockHost) Restore(s *MockSnapshot) {
	m.State = s.state
	m.Balances = s.balances
	m.Logs = s.logs
	m.Draws = s.draws
	m.Transfers = s.transfers
}

func balanceKey(addr Address, asset Asset) string {
	return addr.String() + "|" + asset.String()
}

// --- sdk surface, mock flavor ---

func Log(s string) {
	Mock.Logs = append(Mock.Logs, s)
}

func Abort(msg string) {
	panic(&RevertError{Symbol: "abort", Msg: msg})
}

func Revert(msg string, symbol string) {
	panic(&RevertError{Symbol: symbol, Msg: msg})
}

func StateSetObject(key string, value string) {
	Mock.State[key] = value
}

func StateGetObject(key string) *string {
	val, ok := Mock.State[key]
	if !ok {
		return nil
	}
	return &val
}

func StateDeleteObject(key string) {
	delete(Mock.State, key)
}

func GetEnv() Env {
	return Env{
		ContractId:  "contract:predictionmarket",
		TxId:        Mock.TxID,
		BlockId:     "block-mock",
		BlockHeight: Mock.BlockHeight,
		Timestamp:   Mock.Timestamp,
		Sender: Sender{
			Address:       Mock.Sender,
			RequiredAuths: []Address{Mock.Sender},
		},
		Intents: Mock.Intents,
	}
}

func GetEnvKey(key string) *string {
	var val string
	switch key {
	case "tx.id":
		val = Mock.TxID
	case "block.timestamp":
		val = Mock.Timestamp
	case "block.height":
		val = strconv.FormatUint(Mock.BlockHeight, 10)
	default:
		return nil
	}
	return &val
}

func GetBalance(address Address, asset Asset) int64 {
	return Mock.Balances[balanceKey(address, asset)]
}

func HiveDraw(amount int64, asset Asset) {
	key := balanceKey(Mock.Sender, asset)
	if bal, ok := Mock.Balances[key]; ok {
		if bal < amount {
			panic(&RevertError{Symbol: "abort", Msg: fmt.Sprintf("draw of %d exceeds balance %d", amount, bal)})
		}
		Mock.Balances[key] = bal - amount
	}
	Mock.Draws = append(Mock.Draws, Draw{From: Mock.Sender, Amount: amount, Asset: asset})
}

func HiveTransfer(to Address, amount int64, asset Asset) {
	if Mock.FailTransfers {
		panic(&RevertError{Symbol: "transfer_error", Msg: "transfer failed"})
	}
	Mock.Balances[balanceKey(to, asset)] += amount
	Mock.Transfers = append(Mock.Transfers, Transfer{To: to, Amount: amount, Asset: asset})
	if Mock.TransferHook != nil {
		Mock.TransferHook(to, amount, asset)
	}
}
