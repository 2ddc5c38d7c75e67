package contract

import (
	"strconv"

	"github.com/CosmWasm/tinyjson/jwriter"

	"prediction_market/sdk"
)

// writeFloat64 emits a float the way easyjson's jwriter.Float64 does; the
// tinyjson fork drops float helpers for wasm determinism, so the formatting
// is inlined here.
func writeFloat64(w *jwriter.Writer, n float64) {
	w.RawString(strconv.FormatFloat(n, 'g', -1, 64))
}

// -----------------------------------------------------------------------------
// Read-endpoint JSON
// -----------------------------------------------------------------------------
// Read endpoints hand JSON to off-chain callers. The documents are built with
// tinyjson's jwriter, which works without reflection and therefore survives
// the tinygo wasm target. State keys stay compact binary; JSON only exists at
// this boundary.

// predictionJSON renders the full market view: the record, per-option pools
// and the ordered participant list.
func predictionJSON(p *Prediction) string {
	w := jwriter.Writer{}
	w.RawByte('{')
	w.RawString(`"id":`)
	w.Uint64(p.ID)
	w.RawString(`,"creator":`)
	w.String(p.Creator.String())
	w.RawString(`,"title":`)
	w.String(p.Title)
	w.RawString(`,"description":`)
	w.String(p.Description)
	w.RawString(`,"createdAt":`)
	w.Int64(p.CreatedAt)
	w.RawString(`,"endTime":`)
	w.Int64(p.EndTime)
	w.RawString(`,"active":`)
	w.Bool(p.Active)
	w.RawString(`,"winner":`)
	w.String(p.winnerLabel())
	w.RawString(`,"options":[`)
	for i, opt := range p.Options {
		if i > 0 {
			w.RawByte(',')
		}
		w.RawByte('{')
		w.RawString(`"label":`)
		w.String(opt)
		w.RawString(`,"pool":`)
		writeFloat64(&w, AmountToFloat(getOptionPool(p.ID, uint32(i))))
		w.RawByte('}')
	}
	w.RawString(`],"participants":[`)
	for i, addr := range loadParticipants(p.ID) {
		if i > 0 {
			w.RawByte(',')
		}
		w.String(addr.String())
	}
	w.RawString(`]}`)
	return buildJSON(&w)
}

// optionsJSON renders just the outcome labels in declaration order.
func optionsJSON(p *Prediction) string {
	w := jwriter.Writer{}
	w.RawByte('[')
	for i, opt := range p.Options {
		if i > 0 {
			w.RawByte(',')
		}
		w.String(opt)
	}
	w.RawByte(']')
	return buildJSON(&w)
}

// stakesJSON renders one address's stake per option on a prediction.
func stakesJSON(p *Prediction, addr sdk.Address) string {
	w := jwriter.Writer{}
	w.RawByte('{')
	w.RawString(`"id":`)
	w.Uint64(p.ID)
	w.RawString(`,"address":`)
	w.String(addr.String())
	w.RawString(`,"stakes":[`)
	total := Amount(0)
	for i, opt := range p.Options {
		if i > 0 {
			w.RawByte(',')
		}
		stake := getUserStake(p.ID, uint32(i), addr)
		total += stake
		w.RawByte('{')
		w.RawString(`"label":`)
		w.String(opt)
		w.RawString(`,"amount":`)
		writeFloat64(&w, AmountToFloat(stake))
		w.RawByte('}')
	}
	w.RawString(`],"total":`)
	writeFloat64(&w, AmountToFloat(total))
	w.RawByte('}')
	return buildJSON(&w)
}

func buildJSON(w *jwriter.Writer) string {
	b, err := w.BuildBytes()
	if err != nil {
		sdk.Abort("json encoding failed")
	}
	return string(b)
}
