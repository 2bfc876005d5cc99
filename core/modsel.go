package core

// selectModulation runs every 24 symbols (on lastT wrap) and updates
// rf_mod from the accumulated flip count, subject to the enable
// flags in Opts. A family whose flag is disabled leaves rf_mod
// unchanged rather than falling through to a different family.
func (o *Opts) selectModulation(s *State) {
	switch {
	case s.numFlips > o.ModThreshold:
		if o.ModQPSK {
			s.RFMod = ModQPSK
		}
	case s.numFlips > gfskFlipThreshold:
		if o.ModGFSK {
			s.RFMod = ModGFSK
		}
	default:
		if o.ModC4FM {
			s.RFMod = ModC4FM
		}
	}
	s.numFlips = 0
}

// noteFlip records one sign transition of the symbol stream.
// feedSymbol detects the transitions itself by comparing the signs of
// consecutive sliced symbol amplitudes; the SymbolSlicer interface
// carries no flip count, and raw PCM samples are never inspected here.
func (s *State) noteFlip() {
	s.numFlips++
}
