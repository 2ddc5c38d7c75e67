package contract

// -----------------------------------------------------------------------------
// Contract Initialization
// -----------------------------------------------------------------------------

// Init initializes the contract with the caller as owner.
// Must be called before any other function; the owner is immutable afterwards.
func Init(payload *string) *string {
	if isContractInitialized() {
		revertState("contract already initialized")
	}

	cfg := ContractConfig{
		Owner: getSenderAddress(),
	}
	saveContractConfig(&cfg)

	emitInitEvent(cfg.Owner.String())
	return strptr("initialized with owner " + cfg.Owner.String())
}
