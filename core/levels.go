package core

// recomputeCentre derives centre, then umid/lmid from centre and the
// current min/max:
//
//	min ≤ centre ≤ max
//	lmid = centre + 5*(min-centre)/8
//	umid = centre + 5*(max-centre)/8
//
// This is called whenever the FSM transitions LookForSync -> SyncFound,
// and whenever QPSK level averaging updates min/max.
func (s *State) recomputeCentre() {
	s.Centre = (s.Max + s.Min) / 2
	s.UMid = (s.Max-s.Centre)*umidLmidNumerator/umidLmidDenominator + s.Centre
	s.LMid = (s.Min-s.Centre)*umidLmidNumerator/umidLmidDenominator + s.Centre
}

// updateRef sets minref/maxref from the current min/max, scaling by
// qpskRefScale when QPSK modulation is selected.
func (s *State) updateRef() {
	if s.RFMod == ModQPSK {
		s.MaxRef = int(float64(s.Max) * qpskRefScale)
		s.MinRef = int(float64(s.Min) * qpskRefScale)
	} else {
		s.MaxRef = s.Max
		s.MinRef = s.Min
	}
}

// blendLevel folds a freshly observed level estimate into the running
// one: new = (old + observed) / 2. Used on every sync hit.
func blendLevel(old, observed int) int {
	return (old + observed) / 2
}

// sortedTripleMean returns the mean of the three smallest (when low is
// true) or three largest entries of vals, matching the source's
// lmin/lmax computation over a sorted copy of the 24-entry window.
func sortedTripleMean(vals [lbufLen]int, low bool) int {
	sorted := vals
	// Simple insertion sort: lbufLen is fixed and tiny (24), and this
	// runs once per symbol once t >= 18, same cost class as the
	// source's qsort of 24 ints.
	for i := 1; i < len(sorted); i++ {
		v := sorted[i]
		j := i - 1
		for j >= 0 && sorted[j] > v {
			sorted[j+1] = sorted[j]
			j--
		}
		sorted[j+1] = v
	}
	if low {
		return (sorted[0] + sorted[1] + sorted[2]) / 3
	}
	return (sorted[23] + sorted[22] + sorted[21]) / 3
}
