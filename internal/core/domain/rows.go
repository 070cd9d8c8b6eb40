package domain

import "time"

// Side identifies an end or half-plane of the baseline.
type Side string

const (
	SideA        Side = "A"
	SideB        Side = "B"
	SideNone     Side = "none"
	SideBaseline Side = "baseline"
)

// Numbering styles for row labels.
const (
	NumberingZeroPadded = "zero-padded" // F01, F02, ...
	NumberingUnpadded   = "unpadded"    // F1, F2, ...
)

// Baseline is the two-point AB reference line defining row orientation.
// A and B must be distinct.
type Baseline struct {
	A GeoPoint `json:"a"`
	B GeoPoint `json:"b"`
}

// RowConfig is the immutable per-generation configuration.
type RowConfig struct {
	SpacingMeters   float64 `json:"spacing_m"`
	StartLetter     string  `json:"start_letter"`
	StartNumber     int     `json:"start_number"`
	NumberingStyle  string  `json:"numbering_style"`
	DestinationSide Side    `json:"destination_side"`
	EPSG            int     `json:"epsg,omitempty"` // 0 = auto UTM zone from centroid

	// Descending reverses the traversal order used for name assignment
	// (B-side to A-side instead of A-side to B-side).
	Descending bool `json:"descending,omitempty"`
	// CycleLetters advances the letter with each row (F01, G02, H03)
	// instead of keeping the start letter fixed.
	CycleLetters bool `json:"cycle_letters,omitempty"`
	// DualZone labels each row with two adjacent slots ("F01/F02").
	DualZone bool `json:"dual_zone,omitempty"`
}

// DefaultRowConfig mirrors the defaults of the interactive generator.
func DefaultRowConfig() RowConfig {
	return RowConfig{
		SpacingMeters:   6.0,
		StartLetter:     "F",
		StartNumber:     1,
		NumberingStyle:  NumberingZeroPadded,
		DestinationSide: SideA,
	}
}

// GeneratedRow is one boundary-clipped parallel path.
type GeneratedRow struct {
	Name        string        `json:"name"`
	OffsetIndex int           `json:"offset_index"`
	SubIndex    int           `json:"sub_index"`
	Side        Side          `json:"side"`
	Geometry    GeoLineString `json:"geometry"`
	LengthM     float64       `json:"length_m"`
}

// DestinationPoint marks the configured end of one row.
type DestinationPoint struct {
	RowName  string   `json:"row_name"`
	Side     Side     `json:"side"`
	Location GeoPoint `json:"location"`
}

// GenerationMeta is shared metadata for one generated RowSet.
type GenerationMeta struct {
	SpacingMeters   float64   `json:"spacing_m"`
	EPSG            int       `json:"epsg"`
	RowCount        int       `json:"row_count"`
	BaselineLengthM float64   `json:"baseline_length_m"`
	GeneratedAt     time.Time `json:"generated_at"`
}

// RowSet is the complete result of one generation call. Rows are ordered
// by (offset index, sub index) ascending; destinations follow row order.
type RowSet struct {
	Rows         []GeneratedRow     `json:"rows"`
	Destinations []DestinationPoint `json:"destinations,omitempty"`
	Meta         GenerationMeta     `json:"meta"`
}
