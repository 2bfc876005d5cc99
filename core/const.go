// Package core implements the sample-driven sync-search and dispatch
// engine: symbol-timing bookkeeping, the adaptive level tracker, the
// modulation auto-selector, the multi-pattern sync matcher, and the
// top-level state machine that hands confirmed frames off to a
// protocol processor.
//
// The package has no dependency beyond the standard library. Logging,
// configuration, audio capture, and diagnostics transport all live in
// sibling packages that import core, never the reverse.
package core

// Named constants for the magic numbers called out in the design
// notes. None of these are negotiable without changing the observed
// sync/offset trace for a given sample sequence.
const (
	// lbufLen is the width of the rolling symbol-amplitude window used
	// for the min/max level estimate and the modulation flip counter.
	lbufLen = 24

	// inputLevelDivisor converts a peak amplitude into an approximate
	// input level percentage for diagnostics.
	inputLevelDivisor = 164

	// datascopeBucketWidth is the bucket width, in amplitude units, of
	// the 64-bucket datascope histogram.
	datascopeBucketWidth = 1024
	datascopeBuckets     = 64
	datascopeCenterOffset = 32768

	// umidLmidNumerator/Denominator is the 5/8 weighting applied
	// between centre and the min/max levels.
	umidLmidNumerator   = 5
	umidLmidDenominator = 8

	// qpskRefScale is the reference-threshold scaling applied to
	// min/max when QPSK modulation is selected.
	qpskRefScale = 0.80

	// gfskFlipThreshold is the fixed flip-count floor between GFSK and
	// C4FM; only the QPSK/GFSK boundary (mod_threshold) is configurable.
	gfskFlipThreshold = 18

	// scopeSymbolRateDivisor is the symbol-rate constant used to pace
	// datascope frame emission against scoperate.
	scopeSymbolRateDivisor = 4800

	// noSyncTimeoutSymbols is the number of consecutive sync-test
	// positions without a hit before the matcher declares carrier loss.
	noSyncTimeoutSymbols = 1800

	// syncTestCapacity is the logical length of the sync-test window
	// position counter; reaching it wraps the position back to zero
	// and forces a carrier-loss reset.
	syncTestCapacity = 10200

	// levelFloor/levelCeiling are the levels a decoder is reset to on
	// carrier loss.
	levelFloor   = -15000
	levelCeiling = 15000
)

// Sync code numbering. The original integer coding mixes polarity and
// frame type into one 0..19 value; it is preserved here verbatim for
// interoperability with external tooling, and the dispatch table
// (Decoder.Wire) is keyed directly on these codes.
const (
	SyncP25P1Pos SyncCode = iota
	SyncP25P1Neg
	SyncX2TDMADataPos
	SyncX2TDMAVoiceInvAsPos
	SyncX2TDMAVoiceNeg
	SyncX2TDMADataInvAsNeg
	SyncDStarPos
	SyncDStarNeg
	SyncNXDNVoicePos
	SyncNXDNVoiceNeg
	SyncDMRDataPos
	SyncDMRVoiceInvAsPos
	SyncDMRVoicePos
	SyncDMRDataInvAsNeg
	SyncProVoicePos
	SyncProVoiceNeg
	SyncNXDNDataPos
	SyncNXDNDataNeg
	SyncDStarHDPos
	SyncDStarHDNeg
)

const (
	// SyncSearching means no decision on this symbol: either fewer
	// than 18 symbols have been seen, or no pattern matched and the
	// no-sync timeout has not yet elapsed.
	SyncSearching SyncCode = -2
	// SyncMiss means the no-sync timeout elapsed without a match.
	SyncMiss SyncCode = -1
)

// SyncCode is the matcher's per-symbol result: SyncSearching (-2),
// SyncMiss (-1), or one of the 20 family/polarity codes in 0..19.
type SyncCode int

// Modulation is the auto-selected modulation scheme.
type Modulation int

const (
	ModC4FM Modulation = iota
	ModQPSK
	ModGFSK
)

func (m Modulation) String() string {
	switch m {
	case ModC4FM:
		return "C4FM"
	case ModQPSK:
		return "QPSK"
	case ModGFSK:
		return "GFSK"
	default:
		return "????"
	}
}

// FSMState is a top-level decoder state.
type FSMState int

const (
	LookForSync FSMState = iota
	SyncFound
	ProcessDMRVoice
	ProcessDMRData
	ProcessDStar
	ProcessDStarHD
)

func (s FSMState) String() string {
	switch s {
	case LookForSync:
		return "LookForSync"
	case SyncFound:
		return "SyncFound"
	case ProcessDMRVoice:
		return "ProcessDMRVoice"
	case ProcessDMRData:
		return "ProcessDMRData"
	case ProcessDStar:
		return "ProcessDStar"
	case ProcessDStarHD:
		return "ProcessDStarHD"
	default:
		return "Unknown"
	}
}
