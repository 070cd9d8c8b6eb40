package http

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	geocodec "github.com/fieldrows/rowgen/internal/adapters/geojson"
	"github.com/fieldrows/rowgen/internal/core/domain"
)

// generateRequest is the POST /v1/rows/generate body: the raw GeoJSON
// input collection plus optional generation options. Omitted options
// fall back to the configured service defaults.
type generateRequest struct {
	Input   json.RawMessage `json:"input"`
	Options generateOptions `json:"options"`
}

type generateOptions struct {
	SpacingMeters   *float64 `json:"spacing_m"`
	StartLetter     *string  `json:"start_letter"`
	StartNumber     *int     `json:"start_number"`
	NumberingStyle  *string  `json:"numbering_style"`
	DestinationSide *string  `json:"destination_side"`
	EPSG            *int     `json:"epsg"`
	Descending      *bool    `json:"descending"`
	CycleLetters    *bool    `json:"cycle_letters"`
	DualZone        *bool    `json:"dual_zone"`
}

// apply overlays the request options on the default configuration.
func (o generateOptions) apply(cfg domain.RowConfig) domain.RowConfig {
	if o.SpacingMeters != nil {
		cfg.SpacingMeters = *o.SpacingMeters
	}
	if o.StartLetter != nil {
		cfg.StartLetter = *o.StartLetter
	}
	if o.StartNumber != nil {
		cfg.StartNumber = *o.StartNumber
	}
	if o.NumberingStyle != nil {
		cfg.NumberingStyle = *o.NumberingStyle
	}
	if o.DestinationSide != nil {
		cfg.DestinationSide = domain.Side(*o.DestinationSide)
	}
	if o.EPSG != nil {
		cfg.EPSG = *o.EPSG
	}
	if o.Descending != nil {
		cfg.Descending = *o.Descending
	}
	if o.CycleLetters != nil {
		cfg.CycleLetters = *o.CycleLetters
	}
	if o.DualZone != nil {
		cfg.DualZone = *o.DualZone
	}
	return cfg
}

// GenerateRowsHandler runs one stateless generation pass: decode and
// validate the input collection, generate, encode the output collection.
func GenerateRowsHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req generateRequest
		if err := json.Unmarshal(c.Body(), &req); err != nil {
			return errBadRequest(c, "request body is not valid JSON: "+err.Error())
		}
		if len(req.Input) == 0 {
			return errBadRequest(c, "input feature collection is required")
		}

		area, baseline, err := geocodec.DecodeInput(req.Input)
		if err != nil {
			return errGeneration(c, err)
		}

		cfg := req.Options.apply(deps.Defaults)

		rs, err := deps.Generator.Generate(c.Context(), area, baseline, cfg)
		if err != nil {
			return errGeneration(c, err)
		}

		return c.JSON(fiber.Map{
			"meta":       rs.Meta,
			"collection": geocodec.Encode(rs),
		})
	}
}
