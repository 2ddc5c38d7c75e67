package contract

import "prediction_market/sdk"

// -----------------------------------------------------------------------------
// Access Control: owner + mutable admin set
// -----------------------------------------------------------------------------
// The owner is fixed at init, is always an admin and can never be removed.
// Only the owner mutates the admin set.

// isAdmin reports whether the address may run privileged market operations.
func isAdmin(addr sdk.Address) bool {
	if isContractOwner(addr) {
		return true
	}
	ptr := sdk.StateGetObject(adminKey(addr))
	return ptr != nil && *ptr != ""
}

// requireOwner reverts unless the current sender is the contract owner.
func requireOwner() sdk.Address {
	caller := getSenderAddress()
	if !isContractOwner(caller) {
		revertAuthorization("only the owner may call this")
	}
	return caller
}

// requireAdmin reverts unless the current sender is owner or admin.
func requireAdmin() sdk.Address {
	caller := getSenderAddress()
	if !isAdmin(caller) {
		revertAuthorization("only an admin may call this")
	}
	return caller
}

// AddAdmin grants a target address admin rights.
// Payload: the target address.
func AddAdmin(payload *string) *string {
	requireInitialized()
	requireOwner()

	target := decodeAddressPayload(payload, "admin address required")
	if target.String() == "" || !target.IsValid() {
		revertValidation("invalid admin address")
	}
	if isAdmin(target) {
		revertValidation("address is already an admin")
	}

	sdk.StateSetObject(adminKey(target), "1")
	emitAdminAdded(target.String())
	return strptr("admin added")
}

// RemoveAdmin revokes admin rights from a target address.
// The owner is permanently admin and cannot be removed.
// Payload: the target address.
func RemoveAdmin(payload *string) *string {
	requireInitialized()
	requireOwner()

	target := decodeAddressPayload(payload, "admin address required")
	if target.String() == "" || !target.IsValid() {
		revertValidation("invalid admin address")
	}
	if isContractOwner(target) {
		revertValidation("owner cannot be removed from the admin set")
	}
	ptr := sdk.StateGetObject(adminKey(target))
	if ptr == nil || *ptr == "" {
		revertValidation("address is not an admin")
	}

	sdk.StateDeleteObject(adminKey(target))
	emitAdminRemoved(target.String())
	return strptr("admin removed")
}
