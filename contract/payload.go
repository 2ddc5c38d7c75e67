package contract

import (
	"strconv"
	"strings"

	"prediction_market/sdk"
)

// Call payloads are pipe-delimited strings; option lists use ';' between
// labels. Malformed fields revert with the validation symbol before any
// state is touched.

// decodeCreatePredictionArgs unpacks `title|description|opt1;opt2;...|durationSeconds`.
func decodeCreatePredictionArgs(payload *string) *CreatePredictionArgs {
	raw := unwrapPayload(payload, "prediction payload missing")
	parts := strings.Split(raw, "|")
	get := func(i int) string {
		if i < len(parts) {
			return parts[i]
		}
		return ""
	}
	return &CreatePredictionArgs{
		Title:       strings.TrimSpace(get(0)),
		Description: strings.TrimSpace(get(1)),
		Options:     parseOptionsField(get(2)),
		Duration:    parseUintField(get(3), "duration"),
	}
}

// decodePlaceBetArgs unpacks `predictionId|option|amount`.
func decodePlaceBetArgs(payload *string) *PlaceBetArgs {
	raw := unwrapPayload(payload, "bet payload missing")
	parts := strings.Split(raw, "|")
	if len(parts) < 3 {
		revertValidation("bet payload requires predictionId|option|amount")
	}
	return &PlaceBetArgs{
		PredictionID: parseUintField(parts[0], "prediction id"),
		Option:       strings.TrimSpace(parts[1]),
		Amount:       parseAmountField(parts[2], "bet amount"),
	}
}

// decodeEndPredictionArgs unpacks `predictionId|winner`.
func decodeEndPredictionArgs(payload *string) *EndPredictionArgs {
	raw := unwrapPayload(payload, "end payload missing")
	parts := strings.Split(raw, "|")
	if len(parts) < 2 {
		revertValidation("end payload requires predictionId|winner")
	}
	return &EndPredictionArgs{
		PredictionID: parseUintField(parts[0], "prediction id"),
		Winner:       strings.TrimSpace(parts[1]),
	}
}

// decodeIDPayload reads a single prediction id.
func decodeIDPayload(payload *string) uint64 {
	raw := unwrapPayload(payload, "prediction id required")
	return parseUintField(raw, "prediction id")
}

// decodeStakeQueryArgs unpacks `predictionId` or `predictionId|address`,
// defaulting to the sender when no address is given.
func decodeStakeQueryArgs(payload *string) *StakeQueryArgs {
	raw := unwrapPayload(payload, "stake query requires a prediction id")
	parts := strings.Split(raw, "|")
	args := &StakeQueryArgs{
		PredictionID: parseUintField(parts[0], "prediction id"),
		Address:      getSenderAddress(),
	}
	if len(parts) > 1 && strings.TrimSpace(parts[1]) != "" {
		args.Address = AddressFromString(strings.TrimSpace(parts[1]))
	}
	return args
}

// decodeAddressPayload reads a single address for admin management calls.
func decodeAddressPayload(payload *string, errMsg string) sdk.Address {
	raw := unwrapPayload(payload, errMsg)
	return AddressFromString(strings.TrimSpace(raw))
}

// unwrapPayload trims quotes and whitespace, reverting if the payload is empty.
func unwrapPayload(payload *string, errMsg string) string {
	if payload == nil {
		revertValidation(errMsg)
	}
	raw := strings.TrimSpace(*payload)
	if raw == "" {
		revertValidation(errMsg)
	}
	if len(raw) >= 2 {
		first := raw[0]
		last := raw[len(raw)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			if unquoted, err := strconv.Unquote(raw); err == nil {
				return unquoted
			}
			raw = strings.TrimSpace(raw[1 : len(raw)-1])
			if raw == "" {
				revertValidation(errMsg)
			}
		}
	}
	return raw
}

// parseUintField is the uint variant used for durations and ids.
func parseUintField(val string, field string) uint64 {
	val = strings.TrimSpace(val)
	if val == "" {
		return 0
	}
	n, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		revertValidation("invalid " + field)
	}
	return n
}

// parseAmountField converts a human float into the scaled Amount.
func parseAmountField(val string, field string) Amount {
	val = strings.TrimSpace(val)
	if val == "" {
		return 0
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		revertValidation("invalid " + field)
	}
	return FloatToAmount(f)
}

// parseOptionsField splits the list by ';' and trims each label. Count and
// duplicate checks happen at create time where the whole set is known.
func parseOptionsField(val string) []string {
	val = strings.TrimSpace(val)
	if val == "" {
		return []string{}
	}
	raw := strings.Split(val, ";")
	opts := make([]string, 0, len(raw))
	for _, opt := range raw {
		opt = strings.TrimSpace(opt)
		if opt == "" {
			revertValidation("option label cannot be empty")
		}
		if len(opt) > MaxOptionTextLength {
			revertValidation("option label exceeds maximum length")
		}
		opts = append(opts, opt)
	}
	return opts
}

// strptr is a tiny helper so we can take a literal string and hand a pointer to sdk calls quickly.
func strptr(s string) *string { return &s }
