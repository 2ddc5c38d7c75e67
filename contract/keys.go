package contract

import "prediction_market/sdk"

// packU64LEInline sprinkles a uint64 into dst in little-endian order so our keys stay compact.
func packU64LEInline(x uint64, dst []byte) {
	dst[0] = byte(x)
	dst[1] = byte(x >> 8)
	dst[2] = byte(x >> 16)
	dst[3] = byte(x >> 24)
	dst[4] = byte(x >> 32)
	dst[5] = byte(x >> 40)
	dst[6] = byte(x >> 48)
	dst[7] = byte(x >> 56)
}

// packU32LEInline mirrors the 64-bit helper but for smaller option indexes.
func packU32LEInline(x uint32, dst []byte) {
	dst[0] = byte(x)
	dst[1] = byte(x >> 8)
	dst[2] = byte(x >> 16)
	dst[3] = byte(x >> 24)
}

// packU64LE appends the encoded number to dst and returns the new slice.
func packU64LE(x uint64, dst []byte) []byte {
	return append(dst,
		byte(x),
		byte(x>>8),
		byte(x>>16),
		byte(x>>24),
		byte(x>>32),
		byte(x>>40),
		byte(x>>48),
		byte(x>>56),
	)
}

// predictionKey builds the storage key for a prediction record by ID.
func predictionKey(id uint64) string {
	var buf [9]byte
	buf[0] = kPredictionMeta
	packU64LEInline(id, buf[1:])
	return string(buf[:])
}

// optionPoolKey addresses the pooled stake of one option within one prediction.
func optionPoolKey(id uint64, idx uint32) string {
	var buf [13]byte
	buf[0] = kOptionPool
	packU64LEInline(id, buf[1:])
	packU32LEInline(idx, buf[9:])
	return string(buf[:])
}

// userStakeKey mixes prediction id, option index and address bytes to avoid
// nested maps in host storage.
func userStakeKey(id uint64, idx uint32, addr sdk.Address) string {
	addrStr := AddressToString(addr)
	buf := make([]byte, 0, 1+8+4+len(addrStr))
	buf = append(buf, kUserStake)
	buf = packU64LE(id, buf)
	buf = append(buf, byte(idx), byte(idx>>8), byte(idx>>16), byte(idx>>24))
	buf = append(buf, addrStr...)
	return string(buf)
}

// participantsKey stores the ordered participant list of a prediction.
func participantsKey(id uint64) string {
	var buf [9]byte
	buf[0] = kParticipantList
	packU64LEInline(id, buf[1:])
	return string(buf[:])
}

// participantSeenKey flags an address already counted as participant,
// regardless of which option it staked first.
func participantSeenKey(id uint64, addr sdk.Address) string {
	addrStr := AddressToString(addr)
	buf := make([]byte, 0, 1+8+len(addrStr))
	buf = append(buf, kParticipantSeen)
	buf = packU64LE(id, buf)
	buf = append(buf, addrStr...)
	return string(buf)
}

// adminKey marks membership in the mutable admin set.
func adminKey(addr sdk.Address) string {
	addrStr := AddressToString(addr)
	buf := make([]byte, 0, 1+len(addrStr))
	buf = append(buf, kAdminFlag)
	buf = append(buf, addrStr...)
	return string(buf)
}
