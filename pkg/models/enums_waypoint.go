package models

// WaypointTraitSymbol identifies a trait of a waypoint.
type WaypointTraitSymbol string

const (
	WaypointTraitUncharted             WaypointTraitSymbol = "UNCHARTED"
	WaypointTraitUnderConstruction     WaypointTraitSymbol = "UNDER_CONSTRUCTION"
	WaypointTraitMarketplace           WaypointTraitSymbol = "MARKETPLACE"
	WaypointTraitShipyard              WaypointTraitSymbol = "SHIPYARD"
	WaypointTraitOutpost               WaypointTraitSymbol = "OUTPOST"
	WaypointTraitScatteredSettlements  WaypointTraitSymbol = "SCATTERED_SETTLEMENTS"
	WaypointTraitSprawlingCities       WaypointTraitSymbol = "SPRAWLING_CITIES"
	WaypointTraitMegaStructures        WaypointTraitSymbol = "MEGA_STRUCTURES"
	WaypointTraitPirateBase            WaypointTraitSymbol = "PIRATE_BASE"
	WaypointTraitOvercrowded           WaypointTraitSymbol = "OVERCROWDED"
	WaypointTraitHighTech              WaypointTraitSymbol = "HIGH_TECH"
	WaypointTraitCorrupt               WaypointTraitSymbol = "CORRUPT"
	WaypointTraitBureaucratic          WaypointTraitSymbol = "BUREAUCRATIC"
	WaypointTraitTradingHub            WaypointTraitSymbol = "TRADING_HUB"
	WaypointTraitIndustrial            WaypointTraitSymbol = "INDUSTRIAL"
	WaypointTraitBlackMarket           WaypointTraitSymbol = "BLACK_MARKET"
	WaypointTraitResearchFacility      WaypointTraitSymbol = "RESEARCH_FACILITY"
	WaypointTraitMilitaryBase          WaypointTraitSymbol = "MILITARY_BASE"
	WaypointTraitSurveillanceOutpost   WaypointTraitSymbol = "SURVEILLANCE_OUTPOST"
	WaypointTraitExplorationOutpost    WaypointTraitSymbol = "EXPLORATION_OUTPOST"
	WaypointTraitMineralDeposits       WaypointTraitSymbol = "MINERAL_DEPOSITS"
	WaypointTraitCommonMetalDeposits   WaypointTraitSymbol = "COMMON_METAL_DEPOSITS"
	WaypointTraitPreciousMetalDeposits WaypointTraitSymbol = "PRECIOUS_METAL_DEPOSITS"
	WaypointTraitRareMetalDeposits     WaypointTraitSymbol = "RARE_METAL_DEPOSITS"
	WaypointTraitMethanePools          WaypointTraitSymbol = "METHANE_POOLS"
	WaypointTraitIceCrystals           WaypointTraitSymbol = "ICE_CRYSTALS"
	WaypointTraitExplosiveGases        WaypointTraitSymbol = "EXPLOSIVE_GASES"
	WaypointTraitStrongMagnetosphere   WaypointTraitSymbol = "STRONG_MAGNETOSPHERE"
	WaypointTraitVibrantAuroras        WaypointTraitSymbol = "VIBRANT_AURORAS"
	WaypointTraitSaltFlats             WaypointTraitSymbol = "SALT_FLATS"
	WaypointTraitCanyons               WaypointTraitSymbol = "CANYONS"
	WaypointTraitPerpetualDaylight     WaypointTraitSymbol = "PERPETUAL_DAYLIGHT"
	WaypointTraitPerpetualOvercast     WaypointTraitSymbol = "PERPETUAL_OVERCAST"
	WaypointTraitDrySeabeds            WaypointTraitSymbol = "DRY_SEABEDS"
	WaypointTraitMagmaSeas             WaypointTraitSymbol = "MAGMA_SEAS"
	WaypointTraitSupervolcanoes        WaypointTraitSymbol = "SUPERVOLCANOES"
	WaypointTraitAshClouds             WaypointTraitSymbol = "ASH_CLOUDS"
	WaypointTraitVastRuins             WaypointTraitSymbol = "VAST_RUINS"
	WaypointTraitMutatedFlora          WaypointTraitSymbol = "MUTATED_FLORA"
	WaypointTraitTerraformed           WaypointTraitSymbol = "TERRAFORMED"
	WaypointTraitExtremeTemperatures   WaypointTraitSymbol = "EXTREME_TEMPERATURES"
	WaypointTraitExtremePressure       WaypointTraitSymbol = "EXTREME_PRESSURE"
	WaypointTraitDiverseLife           WaypointTraitSymbol = "DIVERSE_LIFE"
	WaypointTraitScarceLife            WaypointTraitSymbol = "SCARCE_LIFE"
	WaypointTraitFossils               WaypointTraitSymbol = "FOSSILS"
	WaypointTraitWeakGravity           WaypointTraitSymbol = "WEAK_GRAVITY"
	WaypointTraitStrongGravity         WaypointTraitSymbol = "STRONG_GRAVITY"
	WaypointTraitCrushingGravity       WaypointTraitSymbol = "CRUSHING_GRAVITY"
	WaypointTraitToxicAtmosphere       WaypointTraitSymbol = "TOXIC_ATMOSPHERE"
	WaypointTraitCorrosiveAtmosphere   WaypointTraitSymbol = "CORROSIVE_ATMOSPHERE"
	WaypointTraitBreathableAtmosphere  WaypointTraitSymbol = "BREATHABLE_ATMOSPHERE"
	WaypointTraitThinAtmosphere        WaypointTraitSymbol = "THIN_ATMOSPHERE"
	WaypointTraitJovian                WaypointTraitSymbol = "JOVIAN"
	WaypointTraitRocky                 WaypointTraitSymbol = "ROCKY"
	WaypointTraitVolcanic              WaypointTraitSymbol = "VOLCANIC"
	WaypointTraitFrozen                WaypointTraitSymbol = "FROZEN"
	WaypointTraitSwamp                 WaypointTraitSymbol = "SWAMP"
	WaypointTraitBarren                WaypointTraitSymbol = "BARREN"
	WaypointTraitTemperate             WaypointTraitSymbol = "TEMPERATE"
	WaypointTraitJungle                WaypointTraitSymbol = "JUNGLE"
	WaypointTraitOcean                 WaypointTraitSymbol = "OCEAN"
	WaypointTraitRadioactive           WaypointTraitSymbol = "RADIOACTIVE"
	WaypointTraitMicroGravityAnomalies WaypointTraitSymbol = "MICRO_GRAVITY_ANOMALIES"
	WaypointTraitDebrisCluster         WaypointTraitSymbol = "DEBRIS_CLUSTER"
	WaypointTraitDeepCraters           WaypointTraitSymbol = "DEEP_CRATERS"
	WaypointTraitShallowCraters        WaypointTraitSymbol = "SHALLOW_CRATERS"
	WaypointTraitUnstableComposition   WaypointTraitSymbol = "UNSTABLE_COMPOSITION"
	WaypointTraitHollowedInterior      WaypointTraitSymbol = "HOLLOWED_INTERIOR"
	WaypointTraitStripped              WaypointTraitSymbol = "STRIPPED"
)

var waypointTraits = newEnumSet(
	WaypointTraitUncharted, WaypointTraitUnderConstruction, WaypointTraitMarketplace,
	WaypointTraitShipyard, WaypointTraitOutpost, WaypointTraitScatteredSettlements,
	WaypointTraitSprawlingCities, WaypointTraitMegaStructures, WaypointTraitPirateBase,
	WaypointTraitOvercrowded, WaypointTraitHighTech, WaypointTraitCorrupt, WaypointTraitBureaucratic,
	WaypointTraitTradingHub, WaypointTraitIndustrial, WaypointTraitBlackMarket,
	WaypointTraitResearchFacility, WaypointTraitMilitaryBase, WaypointTraitSurveillanceOutpost,
	WaypointTraitExplorationOutpost, WaypointTraitMineralDeposits, WaypointTraitCommonMetalDeposits,
	WaypointTraitPreciousMetalDeposits, WaypointTraitRareMetalDeposits, WaypointTraitMethanePools,
	WaypointTraitIceCrystals, WaypointTraitExplosiveGases, WaypointTraitStrongMagnetosphere,
	WaypointTraitVibrantAuroras, WaypointTraitSaltFlats, WaypointTraitCanyons,
	WaypointTraitPerpetualDaylight, WaypointTraitPerpetualOvercast, WaypointTraitDrySeabeds,
	WaypointTraitMagmaSeas, WaypointTraitSupervolcanoes, WaypointTraitAshClouds,
	WaypointTraitVastRuins, WaypointTraitMutatedFlora, WaypointTraitTerraformed,
	WaypointTraitExtremeTemperatures, WaypointTraitExtremePressure, WaypointTraitDiverseLife,
	WaypointTraitScarceLife, WaypointTraitFossils, WaypointTraitWeakGravity,
	WaypointTraitStrongGravity, WaypointTraitCrushingGravity, WaypointTraitToxicAtmosphere,
	WaypointTraitCorrosiveAtmosphere, WaypointTraitBreathableAtmosphere, WaypointTraitThinAtmosphere,
	WaypointTraitJovian, WaypointTraitRocky, WaypointTraitVolcanic, WaypointTraitFrozen,
	WaypointTraitSwamp, WaypointTraitBarren, WaypointTraitTemperate, WaypointTraitJungle,
	WaypointTraitOcean, WaypointTraitRadioactive, WaypointTraitMicroGravityAnomalies,
	WaypointTraitDebrisCluster, WaypointTraitDeepCraters, WaypointTraitShallowCraters,
	WaypointTraitUnstableComposition, WaypointTraitHollowedInterior, WaypointTraitStripped,
)

func (s WaypointTraitSymbol) Valid() bool { return waypointTraits.has(s) }
