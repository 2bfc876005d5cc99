package core

// Sync dibit patterns, one ASCII character per symbol ('1' for
// positive polarity, '3' for negative). The literal bit patterns are
// fixed by each protocol's own specification; these are carried as
// named constants per the design notes rather than inline literals,
// and a mismatch of any single character is always a miss — there is
// no fuzzy matching at this layer.
const (
	p25p1Sync = "113111113111111131331133"
	invP25p1Sync = "331333331333333313113311"

	x2tdmaBSDataSync  = "311311313331313133111131"
	x2tdmaMSDataSync  = "131331113333311133111131"
	x2tdmaBSVoiceSync = "113333133131111333131113"
	x2tdmaMSVoiceSync = "313311311111133313113133"

	dmrBSDataSync  = "331131333131133331131111"
	dmrMSDataSync  = "333311311131131111111311"
	dmrBSVoiceSync = "131333311331331313113113"
	dmrMSVoiceSync = "113331313313331131113131"

	dstarSync    = "113311331111131113133113"
	invDstarSync = "331133113333313331311331"

	dstarHDSync    = "333311113111111111311331"
	invDstarHDSync = "111133331333333333133113"

	provoiceSync      = "13313313113111331313331133113131"
	provoiceEASync    = "33111113131133131113311113113313"
	invProvoiceSync   = "31131131331333113131113311331313"
	invProvoiceEASync = "11333331313311313331133331331131"

	nxdnBSVoiceSync    = "113131133311113331"
	nxdnMSVoiceSync    = "333311313113333131"
	invNxdnBSVoiceSync = "331313311133331113"
	invNxdnMSVoiceSync = "111133131331111313"

	nxdnBSDataSync    = "313113313313333331"
	nxdnMSDataSync    = "133133133133333131"
	invNxdnBSDataSync = "131331131131111113"
	invNxdnMSDataSync = "311311311311111313"
)
