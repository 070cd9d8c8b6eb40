package engine

import "github.com/fieldrows/rowgen/internal/core/domain"

// attachDestinations creates one destination point per row at the
// configured end. The point reuses the exact row endpoint coordinate so
// it stays topologically connected to the path after reprojection.
// Side "none" (or unset) produces no points.
func attachDestinations(rows []domain.GeneratedRow, side domain.Side) []domain.DestinationPoint {
	if side != domain.SideA && side != domain.SideB {
		return nil
	}

	dests := make([]domain.DestinationPoint, 0, len(rows))
	for _, row := range rows {
		coords := row.Geometry.Coordinates
		if len(coords) == 0 {
			continue
		}
		loc := coords[0] // rows are oriented A-end first
		if side == domain.SideB {
			loc = coords[len(coords)-1]
		}
		dests = append(dests, domain.DestinationPoint{
			RowName:  row.Name,
			Side:     side,
			Location: loc,
		})
	}
	return dests
}
