package core

// processFrameInit runs once per confirmed sync hit: it looks up the
// dispatch entry for the code, recomputes centre/umid/lmid and the
// QPSK reference levels against the freshly blended min/max, clears
// the per-frame descriptive fields, and hands off to the matching
// processor's Init. A sync code with no processor registered is
// treated as carrier loss: the dispatcher can't do anything useful
// with a frame type it doesn't recognize, so it resets exactly as the
// no-sync timeout does rather than leaving stale level/carrier state
// behind.
func (d *Decoder) processFrameInit(code SyncCode) {
	s := d.State
	s.recomputeCentre()
	s.updateRef()
	s.SyncType = code
	s.ErrStr = ""

	entry, ok := d.dispatch[code]
	if !ok {
		d.noCarrier()
		return
	}

	s.FSubtype = entry.subtype
	d.fsmState = entry.state
	d.activeCode = code
	d.activeProc = entry.proc
	entry.proc.Init(d)

	d.emit(Event{Kind: EventFrameDispatch, SyncCode: code, Offset: s.Offset, Modulation: s.RFMod, State: d.fsmState})
}
