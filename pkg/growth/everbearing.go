package growth

import "github.com/verdantlabs/trellis/pkg/types"

// UnboundedLifespanPolicy decides the terminal stage of an everbearing
// variety that carries no productive-lifespan bound.
type UnboundedLifespanPolicy int

const (
	// UnboundedPerpetual treats an unbounded everbearing variety as
	// perpetually productive: the stage stays ongoing-production.
	UnboundedPerpetual UnboundedLifespanPolicy = iota

	// UnboundedTerminal sends an unbounded everbearing variety straight
	// to harvest once mature.
	UnboundedTerminal
)

// DefaultUnboundedLifespan is the policy applied by CalculateForVariety
// and CalculateForPlant. Perpetual production is the documented default;
// varieties that should eventually stop producing must carry an explicit
// ProductiveLifespan.
const DefaultUnboundedLifespan = UnboundedPerpetual

// everbearingStage resolves the terminal branch of the calculator, applied
// only once elapsed days have reached the maturation threshold.
func everbearingStage(days int, variety types.Variety, policy UnboundedLifespanPolicy) types.GrowthStage {
	if !variety.Everbearing {
		return types.StageHarvest
	}
	if variety.ProductiveLifespan == nil {
		if policy == UnboundedTerminal {
			return types.StageHarvest
		}
		return types.StageOngoingProduction
	}
	if days < *variety.ProductiveLifespan {
		return types.StageOngoingProduction
	}
	return types.StageHarvest
}
