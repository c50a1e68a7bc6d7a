package locations

import (
	"github.com/varunisrani/thinkaiback-sub000/pkg/core/model"
)

// TravelCost estimates the cost of a company move between two locations.
// Implementations must be deterministic and symmetric.
type TravelCost interface {
	Cost(from, to model.LocationKey) float64
}

// TravelCostFunc adapts a plain function to TravelCost
type TravelCostFunc func(from, to model.LocationKey) float64

func (f TravelCostFunc) Cost(from, to model.LocationKey) float64 {
	return f(from, to)
}

// CategoricalTravelCost prices moves by interior/exterior type only
type CategoricalTravelCost struct {
	InteriorToInterior float64 `yaml:"interiorToInterior"`
	ExteriorToExterior float64 `yaml:"exteriorToExterior"`
	Mixed              float64 `yaml:"mixed"`
}

// DefaultTravelCost returns INT–INT 1.0, EXT–EXT 2.0 and 1.5 for mixed moves
func DefaultTravelCost() CategoricalTravelCost {
	return CategoricalTravelCost{
		InteriorToInterior: 1.0,
		ExteriorToExterior: 2.0,
		Mixed:              1.5,
	}
}

func (c CategoricalTravelCost) Cost(from, to model.LocationKey) float64 {
	switch {
	case from.Type == model.LocationInterior && to.Type == model.LocationInterior:
		return c.InteriorToInterior
	case from.Type == model.LocationExterior && to.Type == model.LocationExterior:
		return c.ExteriorToExterior
	}
	return c.Mixed
}

func (c CategoricalTravelCost) Validate() error {
	if c.InteriorToInterior < 0 || c.ExteriorToExterior < 0 || c.Mixed < 0 {
		return &model.ConfigurationError{Field: "locations.travelCost", Reason: "costs must not be negative"}
	}
	return nil
}

// Route is a known cost between two named locations
type Route struct {
	From string  `yaml:"from"`
	To   string  `yaml:"to"`
	Cost float64 `yaml:"cost"`
}

// MatrixTravelCost uses explicit costs between location names, for example
// measured driving times, and falls back to another TravelCost for unknown pairs.
type MatrixTravelCost struct {
	costs    map[[2]string]float64
	fallback TravelCost
}

// NewMatrixTravelCost builds a symmetric cost table from routes
func NewMatrixTravelCost(routes []Route, fallback TravelCost) (*MatrixTravelCost, error) {
	costs := make(map[[2]string]float64, len(routes)*2)
	for _, route := range routes {
		if route.Cost < 0 {
			return nil, &model.ConfigurationError{
				Field:  "locations.routes",
				Reason: "cost from " + route.From + " to " + route.To + " must not be negative",
			}
		}
		costs[[2]string{route.From, route.To}] = route.Cost
		costs[[2]string{route.To, route.From}] = route.Cost
	}
	if fallback == nil {
		fallback = DefaultTravelCost()
	}
	return &MatrixTravelCost{costs: costs, fallback: fallback}, nil
}

func (m *MatrixTravelCost) Cost(from, to model.LocationKey) float64 {
	if cost, ok := m.costs[[2]string{from.Name, to.Name}]; ok {
		return cost
	}
	return m.fallback.Cost(from, to)
}
