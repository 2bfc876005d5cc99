package core

// feedSymbol runs the full per-symbol sync-matcher procedure for one
// newly emitted symbol and returns the matcher's verdict:
// SyncSearching, SyncMiss, or a 0..19 hit code.
func (d *Decoder) feedSymbol(amplitude int) SyncCode {
	s := d.State
	o := d.Opts

	s.t++
	s.lbuf[s.lidx] = amplitude
	s.sbuf[s.sidx] = amplitude

	if s.lidx == lbufLen-1 {
		s.lidx = 0
	} else {
		s.lidx++
	}

	s.scopeSymbolCnt++
	if o.Datascope && s.lidx == 0 {
		rate := o.ScopeRate
		if rate < 1 {
			rate = 1
		}
		if s.scopeSymbolCnt > scopeSymbolRateDivisor/rate {
			d.emit(Event{Kind: EventDatascope, Modulation: s.RFMod, Scope: s.buildDatascopeFrame()})
			s.scopeSymbolCnt = 0
		}
	}

	if s.sidx == len(s.sbuf)-1 {
		s.sidx = 0
	} else {
		s.sidx++
	}

	if s.lastT == lbufLen-1 {
		s.lastT = 0
		o.selectModulation(s)
	} else {
		s.lastT++
	}

	sign := amplitude > 0
	if s.haveSign && sign != s.lastSign {
		s.noteFlip()
	}
	s.lastSign = sign
	s.haveSign = true

	s.pushDibit(sign)

	if s.t < 18 {
		return SyncSearching
	}

	lmin := sortedTripleMean(s.lbuf, true)
	lmax := sortedTripleMean(s.lbuf, false)

	if s.RFMod == ModQPSK {
		s.minBuf[s.midx] = lmin
		s.maxBuf[s.midx] = lmax
		if s.midx == len(s.minBuf)-1 {
			s.midx = 0
		} else {
			s.midx++
		}
		s.Min = meanOf(s.minBuf)
		s.Max = meanOf(s.maxBuf)
		s.recomputeCentre()
		s.updateRef()
	} else {
		s.MinRef = s.Min
		s.MaxRef = s.Max
	}

	win24 := s.window(24)
	win32 := s.window(32)
	win18 := s.window(18)

	if code, ok := d.tryFixedFamilies(win24, win32, win18, lmin, lmax); ok {
		return code
	}

	if s.t == 24 && s.LastSyncType != SyncMiss {
		if code, ok := d.trySoftRecognition(win24, lmin, lmax); ok {
			return code
		}
	}

	if s.syncTestPos < syncTestCapacity {
		s.syncTestPos++
	} else {
		s.syncTestPos = 0
		d.noCarrier()
	}

	if s.LastSyncType != SyncP25P1Neg {
		if s.syncTestPos >= noSyncTimeoutSymbols {
			d.noCarrier()
			return SyncMiss
		}
	}

	return SyncSearching
}

func meanOf(vals []int) int {
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return sum / len(vals)
}

// onHit applies the common bookkeeping every confirmed sync match
// performs: latch carrier, record offset, blend the level estimate,
// and remember the code for soft recognition / NXDN confirmation.
func (d *Decoder) onHit(code SyncCode, ftype string, lmin, lmax int) SyncCode {
	s := d.State
	s.Carrier = true
	s.Offset = s.syncTestPos
	s.Max = blendLevel(s.Max, lmax)
	s.Min = blendLevel(s.Min, lmin)
	s.FType = ftype
	s.LastSyncType = code
	return code
}

// tryFixedFamilies attempts every enabled pattern family in a fixed
// order: P25p1, X2-TDMA, DMR, ProVoice, NXDN, D-STAR (and D-STAR HD).
// The first family whose flag is enabled and whose window matches
// wins.
func (d *Decoder) tryFixedFamilies(win24, win32, win18 string, lmin, lmax int) (SyncCode, bool) {
	s := d.State
	o := d.Opts

	if o.FrameP25P1 {
		switch win24 {
		case p25p1Sync:
			return d.onHit(SyncP25P1Pos, " P25 Phase 1 ", lmin, lmax), true
		case invP25p1Sync:
			return d.onHit(SyncP25P1Neg, " P25 Phase 1 ", lmin, lmax), true
		}
	}

	if o.FrameX2TDMA {
		if win24 == x2tdmaBSDataSync || win24 == x2tdmaMSDataSync {
			if !o.InvertedX2TDMA {
				return d.onHit(SyncX2TDMADataPos, " X2-TDMA     ", lmin, lmax), true
			}
			if s.LastSyncType != SyncX2TDMAVoiceInvAsPos {
				s.FirstFrame = true
			}
			return d.onHit(SyncX2TDMAVoiceInvAsPos, " X2-TDMA     ", lmin, lmax), true
		}
		if win24 == x2tdmaBSVoiceSync || win24 == x2tdmaMSVoiceSync {
			if !o.InvertedX2TDMA {
				if s.LastSyncType != SyncX2TDMAVoiceNeg {
					s.FirstFrame = true
				}
				return d.onHit(SyncX2TDMAVoiceNeg, " X2-TDMA     ", lmin, lmax), true
			}
			return d.onHit(SyncX2TDMADataInvAsNeg, " X2-TDMA     ", lmin, lmax), true
		}
	}

	if o.FrameDMR {
		if win24 == dmrMSDataSync || win24 == dmrBSDataSync {
			if !o.InvertedDMR {
				return d.onHit(SyncDMRDataPos, " DMR         ", lmin, lmax), true
			}
			if s.LastSyncType != SyncDMRVoiceInvAsPos {
				s.FirstFrame = true
			}
			return d.onHit(SyncDMRVoiceInvAsPos, " DMR         ", lmin, lmax), true
		}
		if win24 == dmrMSVoiceSync || win24 == dmrBSVoiceSync {
			if !o.InvertedDMR {
				if s.LastSyncType != SyncDMRVoicePos {
					s.FirstFrame = true
				}
				return d.onHit(SyncDMRVoicePos, " DMR         ", lmin, lmax), true
			}
			return d.onHit(SyncDMRDataInvAsNeg, " DMR         ", lmin, lmax), true
		}
	}

	if o.FrameProVoice {
		switch win32 {
		case provoiceSync, provoiceEASync:
			return d.onHit(SyncProVoicePos, " ProVoice    ", lmin, lmax), true
		case invProvoiceSync, invProvoiceEASync:
			return d.onHit(SyncProVoiceNeg, " ProVoice    ", lmin, lmax), true
		}
	}

	if o.FrameNXDN96 || o.FrameNXDN48 {
		if code, ok := d.tryNXDN(win18, lmin, lmax); ok {
			return code, true
		}
	}

	if o.FrameDStar {
		switch win24 {
		case dstarSync:
			return d.onHit(SyncDStarPos, " D-STAR      ", lmin, lmax), true
		case invDstarSync:
			return d.onHit(SyncDStarNeg, " D-STAR      ", lmin, lmax), true
		case dstarHDSync:
			return d.onHit(SyncDStarHDPos, " D-STAR_HD   ", lmin, lmax), true
		case invDstarHDSync:
			return d.onHit(SyncDStarHDNeg, " D-STAR_HD   ", lmin, lmax), true
		}
	}

	return 0, false
}

// nxdnLabel picks the NXDN48 vs NXDN96 label from the samples-per-symbol
// count: 20 means NXDN48, anything else NXDN96.
func (d *Decoder) nxdnLabel() string {
	if d.State.samplesPerSymbol == 20 {
		return " NXDN48      "
	}
	return " NXDN96      "
}

// tryNXDN implements the NXDN double-match rule: a match only
// confirms a hit when lastsynctype already indicates NXDN of the same
// polarity from a prior window; otherwise it only latches
// lastsynctype, consuming this window as the first half of the
// confirmation.
func (d *Decoder) tryNXDN(win18 string, lmin, lmax int) (SyncCode, bool) {
	s := d.State
	switch win18 {
	case nxdnBSVoiceSync, nxdnMSVoiceSync:
		if s.LastSyncType == SyncNXDNVoicePos || s.LastSyncType == SyncNXDNDataPos {
			s.FType = d.nxdnLabel()
			return d.onHit(SyncNXDNVoicePos, d.nxdnLabel(), lmin, lmax), true
		}
		s.LastSyncType = SyncNXDNVoicePos
	case invNxdnBSVoiceSync, invNxdnMSVoiceSync:
		if s.LastSyncType == SyncNXDNVoiceNeg || s.LastSyncType == SyncNXDNDataNeg {
			return d.onHit(SyncNXDNVoiceNeg, d.nxdnLabel(), lmin, lmax), true
		}
		s.LastSyncType = SyncNXDNVoiceNeg
	case nxdnBSDataSync, nxdnMSDataSync:
		if s.LastSyncType == SyncNXDNVoicePos || s.LastSyncType == SyncNXDNDataPos {
			return d.onHit(SyncNXDNDataPos, d.nxdnLabel(), lmin, lmax), true
		}
		s.LastSyncType = SyncNXDNDataPos
	case invNxdnBSDataSync, invNxdnMSDataSync:
		if s.LastSyncType == SyncNXDNVoiceNeg || s.LastSyncType == SyncNXDNDataNeg {
			return d.onHit(SyncNXDNDataNeg, d.nxdnLabel(), lmin, lmax), true
		}
		s.LastSyncType = SyncNXDNDataNeg
	}
	return 0, false
}

// trySoftRecognition preserves lock across the intra-frame windows
// that are not themselves sync patterns: on the 24th symbol since the
// last reset, if lastsynctype already shows a confirmed family, the
// engine re-confirms that family's code for one more window even
// though the window content does not match a fresh sync pattern.
//
// The guard for the X2-TDMA/DMR branches compares the current window
// against the *opposite* polarity pattern with != combined by ||,
// which is always true. That degenerate guard is preserved verbatim
// rather than "fixed": it is documented behaviour, not a bug to
// silently correct.
func (d *Decoder) trySoftRecognition(win24 string, lmin, lmax int) (SyncCode, bool) {
	s := d.State
	switch {
	case s.LastSyncType == SyncP25P1Pos && (s.LastP25Type == 1 || s.LastP25Type == 2):
		s.LastSyncType = SyncMiss
		return d.onHit(SyncP25P1Pos, " P25 Phase 1 ", lmin, lmax), true
	case s.LastSyncType == SyncP25P1Neg && (s.LastP25Type == 1 || s.LastP25Type == 2):
		s.LastSyncType = SyncMiss
		return d.onHit(SyncP25P1Neg, " P25 Phase 1 ", lmin, lmax), true
	case s.LastSyncType == SyncX2TDMAVoiceInvAsPos && (win24 != x2tdmaBSVoiceSync || win24 != x2tdmaMSVoiceSync):
		s.LastSyncType = SyncMiss
		return d.onHit(SyncX2TDMAVoiceInvAsPos, " X2-TDMA     ", lmin, lmax), true
	case s.LastSyncType == SyncX2TDMAVoiceNeg && (win24 != x2tdmaBSDataSync || win24 != x2tdmaMSDataSync):
		s.LastSyncType = SyncMiss
		return d.onHit(SyncX2TDMAVoiceNeg, " X2-TDMA     ", lmin, lmax), true
	case s.LastSyncType == SyncDMRVoiceInvAsPos && (win24 != dmrBSVoiceSync || win24 != dmrMSVoiceSync):
		s.LastSyncType = SyncMiss
		return d.onHit(SyncDMRVoiceInvAsPos, " DMR         ", lmin, lmax), true
	case s.LastSyncType == SyncDMRVoicePos && (win24 != dmrBSDataSync || win24 != dmrMSDataSync):
		s.LastSyncType = SyncMiss
		return d.onHit(SyncDMRVoicePos, " DMR         ", lmin, lmax), true
	}
	return 0, false
}
