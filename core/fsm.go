package core

// Run feeds one PCM sample through the symbol slicer and, on every
// symbol boundary it reports, advances the top-level state machine by
// exactly one step:
//
//	LookForSync    -> feed the sync matcher; a hit dispatches to a
//	                  processor and moves to that processor's state
//	SyncFound/...  -> hand the symbol to the active processor; a
//	                  completed frame returns to LookForSync
//
// Run never blocks and never allocates on the steady-state path; it is
// safe to call once per audio sample from a tight pump loop.
func (d *Decoder) Run(pcm int16) {
	hasSync := d.fsmState != LookForSync
	if !d.slicer.PushSample(pcm, hasSync) {
		return
	}
	amplitude := int(d.slicer.CurrentSymbol())

	if d.fsmState == LookForSync {
		code := d.feedSymbol(amplitude)
		if code >= 0 {
			d.emit(Event{Kind: EventSyncHit, SyncCode: code, Offset: d.State.Offset, Modulation: d.State.RFMod, State: SyncFound})
			d.State.resetFrameSync()
			d.processFrameInit(code)
		}
		return
	}

	if d.activeProc == nil {
		d.fsmState = LookForSync
		return
	}
	if d.activeProc.Process(d, amplitude) {
		d.activeProc = nil
		d.fsmState = LookForSync
	}
}
