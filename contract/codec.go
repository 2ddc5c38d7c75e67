package contract

import (
	"bytes"
	"encoding/binary"
	"errors"

	"prediction_market/sdk"
)

// Deterministic binary codec for stored records. State values are strings in
// the host kv, so encoded bytes travel as string(bytes); keeping the layout
// byte-stable means off-chain tools can verify storage without re-running
// the contract.

type binWriter struct {
	buf bytes.Buffer
}

// newWriter spins up a fresh writer so we dont leak old bytes between encodes.
func newWriter() *binWriter { return &binWriter{} }

// bytes returns the accumulated buffer, tiny helper but keeps code tidy.
func (w *binWriter) bytes() []byte { return w.buf.Bytes() }

// writeBool squashes bools into a single byte flag for deterministic payloads.
func (w *binWriter) writeBool(v bool) {
	if v {
		w.buf.WriteByte(1)
	} else {
		w.buf.WriteByte(0)
	}
}

// writeUint64 writes big endian numbers so tooling can read them without guessing.
func (w *binWriter) writeUint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

// writeInt64 reuses the uint routine since casting keeps the sign bits intact.
func (w *binWriter) writeInt64(v int64) {
	w.writeUint64(uint64(v))
}

// writeVarUint uses varints to keep counts and lens compact.
func (w *binWriter) writeVarUint(v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	w.buf.Write(tmp[:n])
}

// writeVarInt mirrors writeVarUint but keeps sign info for the winner index.
func (w *binWriter) writeVarInt(v int64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutVarint(tmp[:], v)
	w.buf.Write(tmp[:n])
}

// writeString prefixes its length then dumps UTF-8 directly.
func (w *binWriter) writeString(s string) {
	w.writeVarUint(uint64(len(s)))
	w.buf.WriteString(s)
}

// writeAddress canonicalizes the address before writing, so later parsing is easyer.
func (w *binWriter) writeAddress(a sdk.Address) {
	w.writeString(AddressToString(a))
}

type binReader struct {
	data []byte
	pos  int
}

func newReader(data []byte) *binReader { return &binReader{data: data} }

var errShortBuffer = errors.New("codec: short buffer")

func (r *binReader) readByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, errShortBuffer
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

func (r *binReader) readBool() (bool, error) {
	b, err := r.readByte()
	if err != nil {
		return false, err
	}
	return b != 0, nil
}

func (r *binReader) readUint64() (uint64, error) {
	if r.pos+8 > len(r.data) {
		return 0, errShortBuffer
	}
	v := binary.BigEndian.Uint64(r.data[r.pos:])
	r.pos += 8
	return v, nil
}

func (r *binReader) readInt64() (int64, error) {
	v, err := r.readUint64()
	return int64(v), err
}

func (r *binReader) readVarUint() (uint64, error) {
	v, n := binary.Uvarint(r.data[r.pos:])
	if n <= 0 {
		return 0, errShortBuffer
	}
	r.pos += n
	return v, nil
}

func (r *binReader) readVarInt() (int64, error) {
	v, n := binary.Varint(r.data[r.pos:])
	if n <= 0 {
		return 0, errShortBuffer
	}
	r.pos += n
	return v, nil
}

func (r *binReader) readString() (string, error) {
	l, err := r.readVarUint()
	if err != nil {
		return "", err
	}
	if r.pos+int(l) > len(r.data) {
		return "", errShortBuffer
	}
	s := string(r.data[r.pos : r.pos+int(l)])
	r.pos += int(l)
	return s, nil
}

// EncodePrediction serializes the full Prediction into deterministic bytes for storage.
// Example payload: EncodePrediction(&Prediction{ID: 7, Title: "who wins", Options: []string{"X","Y"}})
func EncodePrediction(p *Prediction) []byte {
	w := newWriter()
	w.writeUint64(p.ID)
	w.writeAddress(p.Creator)
	w.writeString(p.Title)
	w.writeString(p.Description)
	w.writeVarUint(uint64(len(p.Options)))
	for _, opt := range p.Options {
		w.writeString(opt)
	}
	w.writeInt64(p.CreatedAt)
	w.writeInt64(p.EndTime)
	w.writeBool(p.Active)
	w.writeVarInt(int64(p.Winner))
	w.writeString(p.Tx)
	return w.bytes()
}

// DecodePrediction lets off-chain tools verify stored predictions without reimplementing the codec.
// Example payload: DecodePrediction(EncodePrediction(&Prediction{ID: 42}))
func DecodePrediction(data []byte) (*Prediction, error) {
	r := newReader(data)
	p := &Prediction{}
	var err error
	if p.ID, err = r.readUint64(); err != nil {
		return nil, err
	}
	creator, err := r.readString()
	if err != nil {
		return nil, err
	}
	p.Creator = AddressFromString(creator)
	if p.Title, err = r.readString(); err != nil {
		return nil, err
	}
	if p.Description, err = r.readString(); err != nil {
		return nil, err
	}
	count, err := r.readVarUint()
	if err != nil {
		return nil, err
	}
	p.Options = make([]string, 0, count)
	for i := uint64(0); i < count; i++ {
		opt, err := r.readString()
		if err != nil {
			return nil, err
		}
		p.Options = append(p.Options, opt)
	}
	if p.CreatedAt, err = r.readInt64(); err != nil {
		return nil, err
	}
	if p.EndTime, err = r.readInt64(); err != nil {
		return nil, err
	}
	if p.Active, err = r.readBool(); err != nil {
		return nil, err
	}
	winner, err := r.readVarInt()
	if err != nil {
		return nil, err
	}
	p.Winner = int32(winner)
	if p.Tx, err = r.readString(); err != nil {
		return nil, err
	}
	return p, nil
}

// EncodeAddressList packs the ordered participant list, no json noise.
// Example payload: EncodeAddressList([]sdk.Address{"hive:alice", "hive:bob"})
func EncodeAddressList(addrs []sdk.Address) []byte {
	w := newWriter()
	w.writeVarUint(uint64(len(addrs)))
	for _, a := range addrs {
		w.writeAddress(a)
	}
	return w.bytes()
}

// DecodeAddressList reverses EncodeAddressList preserving order.
// Example payload: DecodeAddressList(EncodeAddressList(nil))
func DecodeAddressList(data []byte) ([]sdk.Address, error) {
	r := newReader(data)
	count, err := r.readVarUint()
	if err != nil {
		return nil, err
	}
	addrs := make([]sdk.Address, 0, count)
	for i := uint64(0); i < count; i++ {
		a, err := r.readString()
		if err != nil {
			return nil, err
		}
		addrs = append(addrs, AddressFromString(a))
	}
	return addrs, nil
}
