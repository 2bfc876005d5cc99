package core

// SymbolSlicer is the external oracle that turns raw PCM samples into
// the dibit symbol stream the matcher consumes. Timing recovery and
// phase tracking live entirely on the slicer's side of this seam; the
// core never looks at a raw sample.
type SymbolSlicer interface {
	// PushSample feeds one PCM sample and reports whether a new symbol
	// boundary was crossed. hasSync tells the slicer whether the FSM
	// currently believes it is mid-frame, since timing recovery is
	// looser while still searching.
	PushSample(pcm int16, hasSync bool) bool
	// CurrentSymbol returns the amplitude of the most recently sliced
	// symbol. Only valid immediately after PushSample returns true.
	CurrentSymbol() int16
}

// Processor is a protocol frame processor. Init runs once, on the
// transition into the processor's FSM state, to clear any per-frame
// working state. Process runs once per symbol while the FSM is in
// that state and reports whether the frame has completed, at which
// point the FSM returns to LookForSync.
type Processor interface {
	Init(d *Decoder)
	Process(d *Decoder, amplitude int) (done bool)
}

// dispatchEntry is one row of the sync-code dispatch table: which
// processor a confirmed sync code hands off to, which FSM state that
// processor runs under, and the subtype label to display while it
// runs.
type dispatchEntry struct {
	state   FSMState
	proc    Processor
	subtype string
}

// Decoder is one running instance of the sample-driven sync-search and
// dispatch engine. It owns one Opts, one State, and the processors
// wired to each sync code it recognizes. A Decoder is not safe for
// concurrent use by multiple goroutines; the sample pump that feeds it
// must serialize calls to Run.
type Decoder struct {
	Opts  *Opts
	State *State

	slicer     SymbolSlicer
	fsmState   FSMState
	dispatch   map[SyncCode]dispatchEntry
	observer   Observer
	log        Logger

	activeCode SyncCode
	activeProc Processor
}

// NewDecoder builds a Decoder from the given Opts and symbol slicer.
// The returned Decoder starts in LookForSync with no processors wired;
// call Wire to attach protocol processors before running samples
// through it.
func NewDecoder(o *Opts, slicer SymbolSlicer) *Decoder {
	d := &Decoder{
		Opts:     o,
		State:    NewState(o),
		slicer:   slicer,
		fsmState: LookForSync,
		dispatch: make(map[SyncCode]dispatchEntry),
	}
	return d
}

// SetObserver attaches the event callback. Pass nil to detach.
func (d *Decoder) SetObserver(obs Observer) { d.observer = obs }

// ObserverFunc returns the currently attached observer, or nil if
// none is set. Callers compose a new observer out of this one to
// register an additional ambient component without discarding an
// earlier registration.
func (d *Decoder) ObserverFunc() Observer { return d.observer }

// SetLogger attaches a diagnostic sink shared with Opts.
func (d *Decoder) SetLogger(l Logger) {
	d.log = l
	d.Opts.SetLogger(l)
}

// Wire registers the processor that handles frames confirmed under
// the given sync code, along with the FSM state the dispatcher enters
// and the subtype label shown for it:
//
//	10,13 -> DMR data       (ProcessDMRData)
//	11,12 -> DMR voice      (ProcessDMRVoice)
//	6,7   -> D-STAR voice   (ProcessDStar)
//	18,19 -> D-STAR HD data (ProcessDStarHD)
//
// Any other sync code may be wired too; a confirmed code with no
// processor registered is treated as carrier loss (noCarrier resets
// carrier and levels) and the FSM stays in LookForSync.
func (d *Decoder) Wire(code SyncCode, state FSMState, subtype string, proc Processor) {
	d.dispatch[code] = dispatchEntry{state: state, proc: proc, subtype: subtype}
}

// FSMState returns the decoder's current top-level FSM state.
func (d *Decoder) FSMState() FSMState { return d.fsmState }

// noCarrier resets carrier/level state and the frame-sync matcher, and
// emits EventNoCarrier. It mirrors the source's reset-on-carrier-loss
// semantics verbatim: dibit trail, level floor/ceiling, and all sync
// bookkeeping return to their post-construction values.
func (d *Decoder) noCarrier() {
	d.State.reset()
	d.State.resetFrameSync()
	d.fsmState = LookForSync
	d.emit(Event{Kind: EventNoCarrier, State: d.fsmState})
}
