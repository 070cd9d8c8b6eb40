package engine

import (
	"fmt"
	"sort"

	"github.com/fieldrows/rowgen/internal/core/domain"
)

// assignNames sorts the clipped rows into traversal order and returns
// one name per row, aligned by index. Traversal is by offset index
// ascending (A-side to B-side), sub-index ascending within an offset,
// reversed when Descending is set. Every segment consumes one slot, so
// a concave offset with two segments advances the sequence by two.
func assignNames(rows []clippedRow, cfg domain.RowConfig) []string {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].offsetIndex != rows[j].offsetIndex {
			if cfg.Descending {
				return rows[i].offsetIndex > rows[j].offsetIndex
			}
			return rows[i].offsetIndex < rows[j].offsetIndex
		}
		if cfg.Descending {
			return rows[i].subIndex > rows[j].subIndex
		}
		return rows[i].subIndex < rows[j].subIndex
	})

	names := make([]string, len(rows))
	for i := range rows {
		if cfg.DualZone {
			names[i] = labelFor(cfg, i) + "/" + labelFor(cfg, i+1)
		} else {
			names[i] = labelFor(cfg, i)
		}
	}
	return names
}

// labelFor builds the label for the given sequence slot. The letter
// stays fixed unless CycleLetters is set, in which case it advances with
// the slot and wraps around Z. An unset numbering style means
// zero-padded, the default.
func labelFor(cfg domain.RowConfig, slot int) string {
	letter := startLetter(cfg)
	if cfg.CycleLetters {
		letter = rune((int(letter)-'A'+slot)%26 + 'A')
	}
	num := cfg.StartNumber + slot
	if cfg.NumberingStyle == domain.NumberingUnpadded {
		return fmt.Sprintf("%c%d", letter, num)
	}
	return fmt.Sprintf("%c%02d", letter, num)
}

func startLetter(cfg domain.RowConfig) rune {
	if cfg.StartLetter == "" {
		return 'F'
	}
	r := rune(cfg.StartLetter[0])
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	return r
}
