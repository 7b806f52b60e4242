package growth

import "github.com/verdantlabs/trellis/pkg/types"

// protocolKeyAliases maps each canonical stage to the care-protocol table
// keys that may describe it, in resolution priority order: the canonical
// tag first, then near-synonyms used by older protocol tables.
var protocolKeyAliases = map[types.GrowthStage][]string{
	types.StageGermination:       {"germination", "sprouting"},
	types.StageSeedling:          {"seedling", "earlyGrowth"},
	types.StageVegetative:        {"vegetative", "vegetativeGrowth"},
	types.StageFlowering:         {"flowering", "budding"},
	types.StageMaturation:        {"maturation", "podSetMaturation"},
	types.StageOngoingProduction: {"ongoingProduction", "fruitingHarvesting"},
	types.StageHarvest:           {"harvest", "fruitingHarvesting", "podSetMaturation"},
}

// ProtocolKeys returns the accepted care-protocol table keys for a stage,
// in resolution priority order. Unknown stages resolve to their literal
// tag only.
func ProtocolKeys(stage types.GrowthStage) []string {
	aliases, ok := protocolKeyAliases[stage]
	if !ok {
		return []string{string(stage)}
	}
	out := make([]string, len(aliases))
	copy(out, aliases)
	return out
}

// ResolveProtocol looks the stage up in a stage-keyed protocol table,
// trying each accepted key in priority order. ok is false when no key
// matches.
func ResolveProtocol[T any](stage types.GrowthStage, table map[string]T) (T, bool) {
	for _, key := range ProtocolKeys(stage) {
		if v, found := table[key]; found {
			return v, true
		}
	}
	var zero T
	return zero, false
}
