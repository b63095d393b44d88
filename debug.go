package ringalloc

// violation reports a caller contract breach. Builds tagged ringdebug trap at
// the call site; other builds log it and let the caller return a nil result.
func (r *Ring) violation(err error) {
	if debugChecks {
		panic(err)
	}
	r.log.Error("contract violation", "err", err)
}

// checkInvariants verifies the chain after a mutation in ringdebug builds.
func (r *Ring) checkInvariants() {
	if !debugChecks {
		return
	}
	if err := r.Verify(); err != nil {
		panic(err)
	}
}
