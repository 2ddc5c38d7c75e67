package contract

// -----------------------------------------------------------------------------
// Prediction Registry
// -----------------------------------------------------------------------------
// Allocates dense ids, owns the existence index (the record key itself) and
// the read endpoints. Records are created once and never deleted.

// CreatePrediction opens a new market with a fixed outcome set and deadline.
// Payload: `title|description|opt1;opt2;...|durationSeconds`.
// Admin only, rejected while paused.
func CreatePrediction(payload *string) *string {
	requireInitialized()
	caller := requireAdmin()
	requireNotPaused()

	args := decodeCreatePredictionArgs(payload)
	if args.Duration == 0 {
		revertValidation("duration must be positive")
	}
	if len(args.Title) == 0 || len(args.Title) > MaxTitleLength {
		revertValidation("invalid title")
	}
	if len(args.Description) > MaxDescriptionLength {
		revertValidation("invalid description")
	}
	if len(args.Options) < MinOptions || len(args.Options) > MaxOptions {
		revertValidation("option count must be between 2 and 10")
	}
	seen := map[string]struct{}{}
	for _, opt := range args.Options {
		if _, ok := seen[opt]; ok {
			revertValidation("duplicate option label: " + opt)
		}
		seen[opt] = struct{}{}
	}

	now := nowUnix()
	p := &Prediction{
		ID:          nextPredictionID(),
		Creator:     caller,
		Title:       args.Title,
		Description: args.Description,
		Options:     args.Options,
		CreatedAt:   now,
		EndTime:     now + int64(args.Duration),
		Active:      true,
		Winner:      WinnerUnset,
		Tx:          getTxID(),
	}
	savePrediction(p)

	emitPredictionCreated(p.ID, caller.String(), p.EndTime)
	return strptr(UInt64ToString(p.ID))
}

// GetPrediction returns the full record as JSON, including per-option pools
// and the ordered participant list. Read only.
// Payload: the prediction id.
func GetPrediction(payload *string) *string {
	requireInitialized()
	id := decodeIDPayload(payload)
	p := mustLoadPrediction(id)
	return strptr(predictionJSON(p))
}

// GetOptions returns the ordered option label list as JSON. Read only.
// Payload: the prediction id.
func GetOptions(payload *string) *string {
	requireInitialized()
	id := decodeIDPayload(payload)
	p := mustLoadPrediction(id)
	return strptr(optionsJSON(p))
}
