package models

// TradeSymbol identifies a trade good. Ship components are trade goods too.
type TradeSymbol string

const (
	TradeSymbolPreciousStones          TradeSymbol = "PRECIOUS_STONES"
	TradeSymbolQuartzSand              TradeSymbol = "QUARTZ_SAND"
	TradeSymbolSiliconCrystals         TradeSymbol = "SILICON_CRYSTALS"
	TradeSymbolAmmoniaIce              TradeSymbol = "AMMONIA_ICE"
	TradeSymbolLiquidHydrogen          TradeSymbol = "LIQUID_HYDROGEN"
	TradeSymbolLiquidNitrogen          TradeSymbol = "LIQUID_NITROGEN"
	TradeSymbolIceWater                TradeSymbol = "ICE_WATER"
	TradeSymbolExoticMatter            TradeSymbol = "EXOTIC_MATTER"
	TradeSymbolAdvancedCircuitry       TradeSymbol = "ADVANCED_CIRCUITRY"
	TradeSymbolGravitonEmitters        TradeSymbol = "GRAVITON_EMITTERS"
	TradeSymbolIron                    TradeSymbol = "IRON"
	TradeSymbolIronOre                 TradeSymbol = "IRON_ORE"
	TradeSymbolCopper                  TradeSymbol = "COPPER"
	TradeSymbolCopperOre               TradeSymbol = "COPPER_ORE"
	TradeSymbolAluminum                TradeSymbol = "ALUMINUM"
	TradeSymbolAluminumOre             TradeSymbol = "ALUMINUM_ORE"
	TradeSymbolSilver                  TradeSymbol = "SILVER"
	TradeSymbolSilverOre               TradeSymbol = "SILVER_ORE"
	TradeSymbolGold                    TradeSymbol = "GOLD"
	TradeSymbolGoldOre                 TradeSymbol = "GOLD_ORE"
	TradeSymbolPlatinum                TradeSymbol = "PLATINUM"
	TradeSymbolPlatinumOre             TradeSymbol = "PLATINUM_ORE"
	TradeSymbolDiamonds                TradeSymbol = "DIAMONDS"
	TradeSymbolUranite                 TradeSymbol = "URANITE"
	TradeSymbolUraniteOre              TradeSymbol = "URANITE_ORE"
	TradeSymbolMeritium                TradeSymbol = "MERITIUM"
	TradeSymbolMeritiumOre             TradeSymbol = "MERITIUM_ORE"
	TradeSymbolHydrocarbon             TradeSymbol = "HYDROCARBON"
	TradeSymbolAntimatter              TradeSymbol = "ANTIMATTER"
	TradeSymbolFabMats                 TradeSymbol = "FAB_MATS"
	TradeSymbolFertilizers             TradeSymbol = "FERTILIZERS"
	TradeSymbolFabrics                 TradeSymbol = "FABRICS"
	TradeSymbolFood                    TradeSymbol = "FOOD"
	TradeSymbolJewelry                 TradeSymbol = "JEWELRY"
	TradeSymbolMachinery               TradeSymbol = "MACHINERY"
	TradeSymbolFirearms                TradeSymbol = "FIREARMS"
	TradeSymbolAssaultRifles           TradeSymbol = "ASSAULT_RIFLES"
	TradeSymbolMilitaryEquipment       TradeSymbol = "MILITARY_EQUIPMENT"
	TradeSymbolExplosives              TradeSymbol = "EXPLOSIVES"
	TradeSymbolLabInstruments          TradeSymbol = "LAB_INSTRUMENTS"
	TradeSymbolAmmunition              TradeSymbol = "AMMUNITION"
	TradeSymbolElectronics             TradeSymbol = "ELECTRONICS"
	TradeSymbolShipPlating             TradeSymbol = "SHIP_PLATING"
	TradeSymbolShipParts               TradeSymbol = "SHIP_PARTS"
	TradeSymbolEquipment               TradeSymbol = "EQUIPMENT"
	TradeSymbolFuel                    TradeSymbol = "FUEL"
	TradeSymbolMedicine                TradeSymbol = "MEDICINE"
	TradeSymbolDrugs                   TradeSymbol = "DRUGS"
	TradeSymbolClothing                TradeSymbol = "CLOTHING"
	TradeSymbolMicroprocessors         TradeSymbol = "MICROPROCESSORS"
	TradeSymbolPlastics                TradeSymbol = "PLASTICS"
	TradeSymbolPolynucleotides         TradeSymbol = "POLYNUCLEOTIDES"
	TradeSymbolBiocomposites           TradeSymbol = "BIOCOMPOSITES"
	TradeSymbolQuantumStabilizers      TradeSymbol = "QUANTUM_STABILIZERS"
	TradeSymbolNanobots                TradeSymbol = "NANOBOTS"
	TradeSymbolAiMainframes            TradeSymbol = "AI_MAINFRAMES"
	TradeSymbolQuantumDrives           TradeSymbol = "QUANTUM_DRIVES"
	TradeSymbolRoboticDrones           TradeSymbol = "ROBOTIC_DRONES"
	TradeSymbolCyberImplants           TradeSymbol = "CYBER_IMPLANTS"
	TradeSymbolGeneTherapeutics        TradeSymbol = "GENE_THERAPEUTICS"
	TradeSymbolNeuralChips             TradeSymbol = "NEURAL_CHIPS"
	TradeSymbolMoodRegulators          TradeSymbol = "MOOD_REGULATORS"
	TradeSymbolViralAgents             TradeSymbol = "VIRAL_AGENTS"
	TradeSymbolMicroFusionGenerators   TradeSymbol = "MICRO_FUSION_GENERATORS"
	TradeSymbolSupergrains             TradeSymbol = "SUPERGRAINS"
	TradeSymbolLaserRifles             TradeSymbol = "LASER_RIFLES"
	TradeSymbolHolographics            TradeSymbol = "HOLOGRAPHICS"
	TradeSymbolShipSalvage             TradeSymbol = "SHIP_SALVAGE"
	TradeSymbolRelicTech               TradeSymbol = "RELIC_TECH"
	TradeSymbolNovelLifeforms          TradeSymbol = "NOVEL_LIFEFORMS"
	TradeSymbolBotanicalSpecimens      TradeSymbol = "BOTANICAL_SPECIMENS"
	TradeSymbolCulturalArtifacts       TradeSymbol = "CULTURAL_ARTIFACTS"
	TradeSymbolFrameProbe              TradeSymbol = "FRAME_PROBE"
	TradeSymbolFrameDrone              TradeSymbol = "FRAME_DRONE"
	TradeSymbolFrameInterceptor        TradeSymbol = "FRAME_INTERCEPTOR"
	TradeSymbolFrameRacer              TradeSymbol = "FRAME_RACER"
	TradeSymbolFrameFighter            TradeSymbol = "FRAME_FIGHTER"
	TradeSymbolFrameFrigate            TradeSymbol = "FRAME_FRIGATE"
	TradeSymbolFrameShuttle            TradeSymbol = "FRAME_SHUTTLE"
	TradeSymbolFrameExplorer           TradeSymbol = "FRAME_EXPLORER"
	TradeSymbolFrameMiner              TradeSymbol = "FRAME_MINER"
	TradeSymbolFrameLightFreighter     TradeSymbol = "FRAME_LIGHT_FREIGHTER"
	TradeSymbolFrameHeavyFreighter     TradeSymbol = "FRAME_HEAVY_FREIGHTER"
	TradeSymbolFrameTransport          TradeSymbol = "FRAME_TRANSPORT"
	TradeSymbolFrameDestroyer          TradeSymbol = "FRAME_DESTROYER"
	TradeSymbolFrameCruiser            TradeSymbol = "FRAME_CRUISER"
	TradeSymbolFrameCarrier            TradeSymbol = "FRAME_CARRIER"
	TradeSymbolReactorSolarI           TradeSymbol = "REACTOR_SOLAR_I"
	TradeSymbolReactorFusionI          TradeSymbol = "REACTOR_FUSION_I"
	TradeSymbolReactorFissionI         TradeSymbol = "REACTOR_FISSION_I"
	TradeSymbolReactorChemicalI        TradeSymbol = "REACTOR_CHEMICAL_I"
	TradeSymbolReactorAntimatterI      TradeSymbol = "REACTOR_ANTIMATTER_I"
	TradeSymbolEngineImpulseDriveI     TradeSymbol = "ENGINE_IMPULSE_DRIVE_I"
	TradeSymbolEngineIonDriveI         TradeSymbol = "ENGINE_ION_DRIVE_I"
	TradeSymbolEngineIonDriveII        TradeSymbol = "ENGINE_ION_DRIVE_II"
	TradeSymbolEngineHyperDriveI       TradeSymbol = "ENGINE_HYPER_DRIVE_I"
	TradeSymbolModuleMineralProcessorI TradeSymbol = "MODULE_MINERAL_PROCESSOR_I"
	TradeSymbolModuleGasProcessorI     TradeSymbol = "MODULE_GAS_PROCESSOR_I"
	TradeSymbolModuleCargoHoldI        TradeSymbol = "MODULE_CARGO_HOLD_I"
	TradeSymbolModuleCargoHoldII       TradeSymbol = "MODULE_CARGO_HOLD_II"
	TradeSymbolModuleCargoHoldIII      TradeSymbol = "MODULE_CARGO_HOLD_III"
	TradeSymbolModuleCrewQuartersI     TradeSymbol = "MODULE_CREW_QUARTERS_I"
	TradeSymbolModuleEnvoyQuartersI    TradeSymbol = "MODULE_ENVOY_QUARTERS_I"
	TradeSymbolModulePassengerCabinI   TradeSymbol = "MODULE_PASSENGER_CABIN_I"
	TradeSymbolModuleMicroRefineryI    TradeSymbol = "MODULE_MICRO_REFINERY_I"
	TradeSymbolModuleScienceLabI       TradeSymbol = "MODULE_SCIENCE_LAB_I"
	TradeSymbolModuleJumpDriveI        TradeSymbol = "MODULE_JUMP_DRIVE_I"
	TradeSymbolModuleJumpDriveII       TradeSymbol = "MODULE_JUMP_DRIVE_II"
	TradeSymbolModuleJumpDriveIII      TradeSymbol = "MODULE_JUMP_DRIVE_III"
	TradeSymbolModuleWarpDriveI        TradeSymbol = "MODULE_WARP_DRIVE_I"
	TradeSymbolModuleWarpDriveII       TradeSymbol = "MODULE_WARP_DRIVE_II"
	TradeSymbolModuleWarpDriveIII      TradeSymbol = "MODULE_WARP_DRIVE_III"
	TradeSymbolModuleShieldGeneratorI  TradeSymbol = "MODULE_SHIELD_GENERATOR_I"
	TradeSymbolModuleShieldGeneratorII TradeSymbol = "MODULE_SHIELD_GENERATOR_II"
	TradeSymbolModuleOreRefineryI      TradeSymbol = "MODULE_ORE_REFINERY_I"
	TradeSymbolModuleFuelRefineryI     TradeSymbol = "MODULE_FUEL_REFINERY_I"
	TradeSymbolMountGasSiphonI         TradeSymbol = "MOUNT_GAS_SIPHON_I"
	TradeSymbolMountGasSiphonII        TradeSymbol = "MOUNT_GAS_SIPHON_II"
	TradeSymbolMountGasSiphonIII       TradeSymbol = "MOUNT_GAS_SIPHON_III"
	TradeSymbolMountSurveyorI          TradeSymbol = "MOUNT_SURVEYOR_I"
	TradeSymbolMountSurveyorII         TradeSymbol = "MOUNT_SURVEYOR_II"
	TradeSymbolMountSurveyorIII        TradeSymbol = "MOUNT_SURVEYOR_III"
	TradeSymbolMountSensorArrayI       TradeSymbol = "MOUNT_SENSOR_ARRAY_I"
	TradeSymbolMountSensorArrayII      TradeSymbol = "MOUNT_SENSOR_ARRAY_II"
	TradeSymbolMountSensorArrayIII     TradeSymbol = "MOUNT_SENSOR_ARRAY_III"
	TradeSymbolMountMiningLaserI       TradeSymbol = "MOUNT_MINING_LASER_I"
	TradeSymbolMountMiningLaserII      TradeSymbol = "MOUNT_MINING_LASER_II"
	TradeSymbolMountMiningLaserIII     TradeSymbol = "MOUNT_MINING_LASER_III"
	TradeSymbolMountLaserCannonI       TradeSymbol = "MOUNT_LASER_CANNON_I"
	TradeSymbolMountMissileLauncherI   TradeSymbol = "MOUNT_MISSILE_LAUNCHER_I"
	TradeSymbolMountTurretI            TradeSymbol = "MOUNT_TURRET_I"
	TradeSymbolShipProbe               TradeSymbol = "SHIP_PROBE"
	TradeSymbolShipMiningDrone         TradeSymbol = "SHIP_MINING_DRONE"
	TradeSymbolShipSiphonDrone         TradeSymbol = "SHIP_SIPHON_DRONE"
	TradeSymbolShipInterceptor         TradeSymbol = "SHIP_INTERCEPTOR"
	TradeSymbolShipLightHauler         TradeSymbol = "SHIP_LIGHT_HAULER"
	TradeSymbolShipCommandFrigate      TradeSymbol = "SHIP_COMMAND_FRIGATE"
	TradeSymbolShipExplorer            TradeSymbol = "SHIP_EXPLORER"
	TradeSymbolShipHeavyFreighter      TradeSymbol = "SHIP_HEAVY_FREIGHTER"
	TradeSymbolShipLightShuttle        TradeSymbol = "SHIP_LIGHT_SHUTTLE"
	TradeSymbolShipOreHound            TradeSymbol = "SHIP_ORE_HOUND"
	TradeSymbolShipRefiningFreighter   TradeSymbol = "SHIP_REFINING_FREIGHTER"
	TradeSymbolShipSurveyor            TradeSymbol = "SHIP_SURVEYOR"
)

var tradeSymbols = newEnumSet(
	TradeSymbolPreciousStones, TradeSymbolQuartzSand, TradeSymbolSiliconCrystals,
	TradeSymbolAmmoniaIce, TradeSymbolLiquidHydrogen, TradeSymbolLiquidNitrogen, TradeSymbolIceWater,
	TradeSymbolExoticMatter, TradeSymbolAdvancedCircuitry, TradeSymbolGravitonEmitters,
	TradeSymbolIron, TradeSymbolIronOre, TradeSymbolCopper, TradeSymbolCopperOre, TradeSymbolAluminum,
	TradeSymbolAluminumOre, TradeSymbolSilver, TradeSymbolSilverOre, TradeSymbolGold,
	TradeSymbolGoldOre, TradeSymbolPlatinum, TradeSymbolPlatinumOre, TradeSymbolDiamonds,
	TradeSymbolUranite, TradeSymbolUraniteOre, TradeSymbolMeritium, TradeSymbolMeritiumOre,
	TradeSymbolHydrocarbon, TradeSymbolAntimatter, TradeSymbolFabMats, TradeSymbolFertilizers,
	TradeSymbolFabrics, TradeSymbolFood, TradeSymbolJewelry, TradeSymbolMachinery,
	TradeSymbolFirearms, TradeSymbolAssaultRifles, TradeSymbolMilitaryEquipment,
	TradeSymbolExplosives, TradeSymbolLabInstruments, TradeSymbolAmmunition, TradeSymbolElectronics,
	TradeSymbolShipPlating, TradeSymbolShipParts, TradeSymbolEquipment, TradeSymbolFuel,
	TradeSymbolMedicine, TradeSymbolDrugs, TradeSymbolClothing, TradeSymbolMicroprocessors,
	TradeSymbolPlastics, TradeSymbolPolynucleotides, TradeSymbolBiocomposites,
	TradeSymbolQuantumStabilizers, TradeSymbolNanobots, TradeSymbolAiMainframes,
	TradeSymbolQuantumDrives, TradeSymbolRoboticDrones, TradeSymbolCyberImplants,
	TradeSymbolGeneTherapeutics, TradeSymbolNeuralChips, TradeSymbolMoodRegulators,
	TradeSymbolViralAgents, TradeSymbolMicroFusionGenerators, TradeSymbolSupergrains,
	TradeSymbolLaserRifles, TradeSymbolHolographics, TradeSymbolShipSalvage, TradeSymbolRelicTech,
	TradeSymbolNovelLifeforms, TradeSymbolBotanicalSpecimens, TradeSymbolCulturalArtifacts,
	TradeSymbolFrameProbe, TradeSymbolFrameDrone, TradeSymbolFrameInterceptor, TradeSymbolFrameRacer,
	TradeSymbolFrameFighter, TradeSymbolFrameFrigate, TradeSymbolFrameShuttle,
	TradeSymbolFrameExplorer, TradeSymbolFrameMiner, TradeSymbolFrameLightFreighter,
	TradeSymbolFrameHeavyFreighter, TradeSymbolFrameTransport, TradeSymbolFrameDestroyer,
	TradeSymbolFrameCruiser, TradeSymbolFrameCarrier, TradeSymbolReactorSolarI,
	TradeSymbolReactorFusionI, TradeSymbolReactorFissionI, TradeSymbolReactorChemicalI,
	TradeSymbolReactorAntimatterI, TradeSymbolEngineImpulseDriveI, TradeSymbolEngineIonDriveI,
	TradeSymbolEngineIonDriveII, TradeSymbolEngineHyperDriveI, TradeSymbolModuleMineralProcessorI,
	TradeSymbolModuleGasProcessorI, TradeSymbolModuleCargoHoldI, TradeSymbolModuleCargoHoldII,
	TradeSymbolModuleCargoHoldIII, TradeSymbolModuleCrewQuartersI, TradeSymbolModuleEnvoyQuartersI,
	TradeSymbolModulePassengerCabinI, TradeSymbolModuleMicroRefineryI, TradeSymbolModuleScienceLabI,
	TradeSymbolModuleJumpDriveI, TradeSymbolModuleJumpDriveII, TradeSymbolModuleJumpDriveIII,
	TradeSymbolModuleWarpDriveI, TradeSymbolModuleWarpDriveII, TradeSymbolModuleWarpDriveIII,
	TradeSymbolModuleShieldGeneratorI, TradeSymbolModuleShieldGeneratorII,
	TradeSymbolModuleOreRefineryI, TradeSymbolModuleFuelRefineryI, TradeSymbolMountGasSiphonI,
	TradeSymbolMountGasSiphonII, TradeSymbolMountGasSiphonIII, TradeSymbolMountSurveyorI,
	TradeSymbolMountSurveyorII, TradeSymbolMountSurveyorIII, TradeSymbolMountSensorArrayI,
	TradeSymbolMountSensorArrayII, TradeSymbolMountSensorArrayIII, TradeSymbolMountMiningLaserI,
	TradeSymbolMountMiningLaserII, TradeSymbolMountMiningLaserIII, TradeSymbolMountLaserCannonI,
	TradeSymbolMountMissileLauncherI, TradeSymbolMountTurretI, TradeSymbolShipProbe,
	TradeSymbolShipMiningDrone, TradeSymbolShipSiphonDrone, TradeSymbolShipInterceptor,
	TradeSymbolShipLightHauler, TradeSymbolShipCommandFrigate, TradeSymbolShipExplorer,
	TradeSymbolShipHeavyFreighter, TradeSymbolShipLightShuttle, TradeSymbolShipOreHound,
	TradeSymbolShipRefiningFreighter, TradeSymbolShipSurveyor,
)

func (s TradeSymbol) Valid() bool { return tradeSymbols.has(s) }
