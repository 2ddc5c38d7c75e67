package contract

import (
	"strings"

	"prediction_market/sdk"
)

// -----------------------------------------------------------------------------
// Contract Configuration State
// -----------------------------------------------------------------------------

// isContractInitialized returns true if the contract has been initialized.
func isContractInitialized() bool {
	ptr := sdk.StateGetObject(ContractConfigKey)
	return ptr != nil && *ptr != ""
}

// requireInitialized aborts if the contract has not been initialized.
func requireInitialized() {
	if !isContractInitialized() {
		sdk.Abort("contract not initialized")
	}
}

// loadContractConfig loads the contract configuration from state.
func loadContractConfig() *ContractConfig {
	ptr := sdk.StateGetObject(ContractConfigKey)
	if ptr == nil || *ptr == "" {
		return nil
	}
	cfg := decodeContractConfig(*ptr)
	if cfg == nil {
		sdk.Abort("corrupt contract config")
	}
	return cfg
}

// saveContractConfig stores the contract configuration to state.
func saveContractConfig(cfg *ContractConfig) {
	sdk.StateSetObject(ContractConfigKey, encodeContractConfig(cfg))
}

// getContractOwner returns the contract owner address, or nil if not initialized.
func getContractOwner() *sdk.Address {
	cfg := loadContractConfig()
	if cfg == nil {
		return nil
	}
	return &cfg.Owner
}

// isContractOwner returns true if the given address is the contract owner.
// The owner is set exactly once at init and is immutable thereafter.
func isContractOwner(addr sdk.Address) bool {
	owner := getContractOwner()
	return owner != nil && *owner == addr
}

// -----------------------------------------------------------------------------
// Contract Config Encoding
// -----------------------------------------------------------------------------

// encodeContractConfig serializes ContractConfig to a pipe-delimited string.
// Format: owner|paused
func encodeContractConfig(cfg *ContractConfig) string {
	pausedStr := "0"
	if cfg.Paused {
		pausedStr = "1"
	}
	return cfg.Owner.String() + "|" + pausedStr
}

// decodeContractConfig deserializes a pipe-delimited string to ContractConfig.
func decodeContractConfig(data string) *ContractConfig {
	parts := strings.Split(data, "|")
	if len(parts) < 2 {
		return nil
	}
	return &ContractConfig{
		Owner:  AddressFromString(parts[0]),
		Paused: parts[1] == "1",
	}
}
