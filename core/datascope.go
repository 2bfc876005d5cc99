package core

import (
	"strconv"
	"strings"
)

// DatascopeFrame is one rendered diagnostic snapshot: a 64-bucket
// amplitude histogram plus the level markers needed to draw it.
type DatascopeFrame struct {
	Histogram  [datascopeBuckets]int
	Min, Max, Centre int
	Modulation Modulation
	FType      string
	FSubtype   string
}

func bucketOf(v int) int {
	b := (v + datascopeCenterOffset) / datascopeBucketWidth
	if b < 0 {
		b = 0
	}
	if b >= datascopeBuckets {
		b = datascopeBuckets - 1
	}
	return b
}

// buildDatascopeFrame computes the 64-bucket histogram of the current
// 24-entry symbol window.
func (s *State) buildDatascopeFrame() *DatascopeFrame {
	f := &DatascopeFrame{
		Min:        s.Min,
		Max:        s.Max,
		Centre:     s.Centre,
		Modulation: s.RFMod,
		FType:      s.FType,
		FSubtype:   s.FSubtype,
	}
	for i := 0; i < lbufLen; i++ {
		f.Histogram[bucketOf(s.lbuf[i])]++
	}
	return f
}

// Render draws the 10-row ASCII datascope plot: the top row marks
// min/max ('#'), centre ('!'), and the zero column ('|'); the
// remaining nine rows are a descending histogram silhouette.
func (f *DatascopeFrame) Render() string {
	var b strings.Builder
	b.WriteString("+----------------------------------------------------------------+\n")
	minCol := bucketOf(f.Min)
	maxCol := bucketOf(f.Max)
	centreCol := bucketOf(f.Centre)
	for row := 0; row < 10; row++ {
		b.WriteByte('|')
		for col := 0; col < datascopeBuckets; col++ {
			switch {
			case row == 0 && (col == minCol || col == maxCol):
				b.WriteByte('#')
			case row == 0 && col == centreCol:
				b.WriteByte('!')
			case row == 0 && col == datascopeBuckets/2:
				b.WriteByte('|')
			case row > 0 && f.Histogram[col] > 9-row:
				b.WriteByte('*')
			case col == datascopeBuckets/2:
				b.WriteByte('|')
			default:
				b.WriteByte(' ')
			}
		}
		b.WriteString("|\n")
	}
	b.WriteString("+----------------------------------------------------------------+\n")
	return b.String()
}

// String renders a one-line summary, used by callers that just want
// the numbers without the ASCII plot.
func (f *DatascopeFrame) String() string {
	return "min=" + strconv.Itoa(f.Min) + " max=" + strconv.Itoa(f.Max) +
		" centre=" + strconv.Itoa(f.Centre) + " mod=" + f.Modulation.String()
}
