package models

// ShipType is the model of a purchasable ship.
type ShipType string

const (
	ShipTypeProbe             ShipType = "SHIP_PROBE"
	ShipTypeMiningDrone       ShipType = "SHIP_MINING_DRONE"
	ShipTypeSiphonDrone       ShipType = "SHIP_SIPHON_DRONE"
	ShipTypeInterceptor       ShipType = "SHIP_INTERCEPTOR"
	ShipTypeLightHauler       ShipType = "SHIP_LIGHT_HAULER"
	ShipTypeCommandFrigate    ShipType = "SHIP_COMMAND_FRIGATE"
	ShipTypeExplorer          ShipType = "SHIP_EXPLORER"
	ShipTypeHeavyFreighter    ShipType = "SHIP_HEAVY_FREIGHTER"
	ShipTypeLightShuttle      ShipType = "SHIP_LIGHT_SHUTTLE"
	ShipTypeOreHound          ShipType = "SHIP_ORE_HOUND"
	ShipTypeRefiningFreighter ShipType = "SHIP_REFINING_FREIGHTER"
	ShipTypeSurveyor          ShipType = "SHIP_SURVEYOR"
)

var shipTypes = newEnumSet(
	ShipTypeProbe, ShipTypeMiningDrone, ShipTypeSiphonDrone, ShipTypeInterceptor, ShipTypeLightHauler,
	ShipTypeCommandFrigate, ShipTypeExplorer, ShipTypeHeavyFreighter, ShipTypeLightShuttle,
	ShipTypeOreHound, ShipTypeRefiningFreighter, ShipTypeSurveyor,
)

func (s ShipType) Valid() bool { return shipTypes.has(s) }

// FrameSymbol identifies a ship frame.
type FrameSymbol string

const (
	FrameProbe          FrameSymbol = "FRAME_PROBE"
	FrameDrone          FrameSymbol = "FRAME_DRONE"
	FrameInterceptor    FrameSymbol = "FRAME_INTERCEPTOR"
	FrameRacer          FrameSymbol = "FRAME_RACER"
	FrameFighter        FrameSymbol = "FRAME_FIGHTER"
	FrameFrigate        FrameSymbol = "FRAME_FRIGATE"
	FrameShuttle        FrameSymbol = "FRAME_SHUTTLE"
	FrameExplorer       FrameSymbol = "FRAME_EXPLORER"
	FrameMiner          FrameSymbol = "FRAME_MINER"
	FrameLightFreighter FrameSymbol = "FRAME_LIGHT_FREIGHTER"
	FrameHeavyFreighter FrameSymbol = "FRAME_HEAVY_FREIGHTER"
	FrameTransport      FrameSymbol = "FRAME_TRANSPORT"
	FrameDestroyer      FrameSymbol = "FRAME_DESTROYER"
	FrameCruiser        FrameSymbol = "FRAME_CRUISER"
	FrameCarrier        FrameSymbol = "FRAME_CARRIER"
)

var frameSymbols = newEnumSet(
	FrameProbe, FrameDrone, FrameInterceptor, FrameRacer, FrameFighter, FrameFrigate, FrameShuttle,
	FrameExplorer, FrameMiner, FrameLightFreighter, FrameHeavyFreighter, FrameTransport,
	FrameDestroyer, FrameCruiser, FrameCarrier,
)

func (s FrameSymbol) Valid() bool { return frameSymbols.has(s) }

// ReactorSymbol identifies a ship reactor.
type ReactorSymbol string

const (
	ReactorSolarI      ReactorSymbol = "REACTOR_SOLAR_I"
	ReactorFusionI     ReactorSymbol = "REACTOR_FUSION_I"
	ReactorFissionI    ReactorSymbol = "REACTOR_FISSION_I"
	ReactorChemicalI   ReactorSymbol = "REACTOR_CHEMICAL_I"
	ReactorAntimatterI ReactorSymbol = "REACTOR_ANTIMATTER_I"
)

var reactorSymbols = newEnumSet(
	ReactorSolarI, ReactorFusionI, ReactorFissionI, ReactorChemicalI, ReactorAntimatterI,
)

func (s ReactorSymbol) Valid() bool { return reactorSymbols.has(s) }

// EngineSymbol identifies a ship engine.
type EngineSymbol string

const (
	EngineImpulseDriveI EngineSymbol = "ENGINE_IMPULSE_DRIVE_I"
	EngineIonDriveI     EngineSymbol = "ENGINE_ION_DRIVE_I"
	EngineIonDriveII    EngineSymbol = "ENGINE_ION_DRIVE_II"
	EngineHyperDriveI   EngineSymbol = "ENGINE_HYPER_DRIVE_I"
)

var engineSymbols = newEnumSet(
	EngineImpulseDriveI, EngineIonDriveI, EngineIonDriveII, EngineHyperDriveI,
)

func (s EngineSymbol) Valid() bool { return engineSymbols.has(s) }

// ModuleSymbol identifies an installable ship component.
type ModuleSymbol string

const (
	ModuleMineralProcessorI ModuleSymbol = "MODULE_MINERAL_PROCESSOR_I"
	ModuleGasProcessorI     ModuleSymbol = "MODULE_GAS_PROCESSOR_I"
	ModuleCargoHoldI        ModuleSymbol = "MODULE_CARGO_HOLD_I"
	ModuleCargoHoldII       ModuleSymbol = "MODULE_CARGO_HOLD_II"
	ModuleCargoHoldIII      ModuleSymbol = "MODULE_CARGO_HOLD_III"
	ModuleCrewQuartersI     ModuleSymbol = "MODULE_CREW_QUARTERS_I"
	ModuleEnvoyQuartersI    ModuleSymbol = "MODULE_ENVOY_QUARTERS_I"
	ModulePassengerCabinI   ModuleSymbol = "MODULE_PASSENGER_CABIN_I"
	ModuleMicroRefineryI    ModuleSymbol = "MODULE_MICRO_REFINERY_I"
	ModuleOreRefineryI      ModuleSymbol = "MODULE_ORE_REFINERY_I"
	ModuleFuelRefineryI     ModuleSymbol = "MODULE_FUEL_REFINERY_I"
	ModuleScienceLabI       ModuleSymbol = "MODULE_SCIENCE_LAB_I"
	ModuleJumpDriveI        ModuleSymbol = "MODULE_JUMP_DRIVE_I"
	ModuleJumpDriveII       ModuleSymbol = "MODULE_JUMP_DRIVE_II"
	ModuleJumpDriveIII      ModuleSymbol = "MODULE_JUMP_DRIVE_III"
	ModuleWarpDriveI        ModuleSymbol = "MODULE_WARP_DRIVE_I"
	ModuleWarpDriveII       ModuleSymbol = "MODULE_WARP_DRIVE_II"
	ModuleWarpDriveIII      ModuleSymbol = "MODULE_WARP_DRIVE_III"
	ModuleShieldGeneratorI  ModuleSymbol = "MODULE_SHIELD_GENERATOR_I"
	ModuleShieldGeneratorII ModuleSymbol = "MODULE_SHIELD_GENERATOR_II"
)

var moduleSymbols = newEnumSet(
	ModuleMineralProcessorI, ModuleGasProcessorI, ModuleCargoHoldI, ModuleCargoHoldII,
	ModuleCargoHoldIII, ModuleCrewQuartersI, ModuleEnvoyQuartersI, ModulePassengerCabinI,
	ModuleMicroRefineryI, ModuleOreRefineryI, ModuleFuelRefineryI, ModuleScienceLabI,
	ModuleJumpDriveI, ModuleJumpDriveII, ModuleJumpDriveIII, ModuleWarpDriveI, ModuleWarpDriveII,
	ModuleWarpDriveIII, ModuleShieldGeneratorI, ModuleShieldGeneratorII,
)

func (s ModuleSymbol) Valid() bool { return moduleSymbols.has(s) }

// MountSymbol identifies a ship mount.
type MountSymbol string

const (
	MountGasSiphonI       MountSymbol = "MOUNT_GAS_SIPHON_I"
	MountGasSiphonII      MountSymbol = "MOUNT_GAS_SIPHON_II"
	MountGasSiphonIII     MountSymbol = "MOUNT_GAS_SIPHON_III"
	MountSurveyorI        MountSymbol = "MOUNT_SURVEYOR_I"
	MountSurveyorII       MountSymbol = "MOUNT_SURVEYOR_II"
	MountSurveyorIII      MountSymbol = "MOUNT_SURVEYOR_III"
	MountSensorArrayI     MountSymbol = "MOUNT_SENSOR_ARRAY_I"
	MountSensorArrayII    MountSymbol = "MOUNT_SENSOR_ARRAY_II"
	MountSensorArrayIII   MountSymbol = "MOUNT_SENSOR_ARRAY_III"
	MountMiningLaserI     MountSymbol = "MOUNT_MINING_LASER_I"
	MountMiningLaserII    MountSymbol = "MOUNT_MINING_LASER_II"
	MountMiningLaserIII   MountSymbol = "MOUNT_MINING_LASER_III"
	MountLaserCannonI     MountSymbol = "MOUNT_LASER_CANNON_I"
	MountMissileLauncherI MountSymbol = "MOUNT_MISSILE_LAUNCHER_I"
	MountTurretI          MountSymbol = "MOUNT_TURRET_I"
)

var mountSymbols = newEnumSet(
	MountGasSiphonI, MountGasSiphonII, MountGasSiphonIII, MountSurveyorI, MountSurveyorII,
	MountSurveyorIII, MountSensorArrayI, MountSensorArrayII, MountSensorArrayIII, MountMiningLaserI,
	MountMiningLaserII, MountMiningLaserIII, MountLaserCannonI, MountMissileLauncherI, MountTurretI,
)

func (s MountSymbol) Valid() bool { return mountSymbols.has(s) }

// DepositSymbol is a resource a mount can extract.
type DepositSymbol string

const (
	DepositQuartzSand      DepositSymbol = "QUARTZ_SAND"
	DepositSiliconCrystals DepositSymbol = "SILICON_CRYSTALS"
	DepositPreciousStones  DepositSymbol = "PRECIOUS_STONES"
	DepositIceWater        DepositSymbol = "ICE_WATER"
	DepositAmmoniaIce      DepositSymbol = "AMMONIA_ICE"
	DepositIronOre         DepositSymbol = "IRON_ORE"
	DepositCopperOre       DepositSymbol = "COPPER_ORE"
	DepositSilverOre       DepositSymbol = "SILVER_ORE"
	DepositAluminumOre     DepositSymbol = "ALUMINUM_ORE"
	DepositGoldOre         DepositSymbol = "GOLD_ORE"
	DepositPlatinumOre     DepositSymbol = "PLATINUM_ORE"
	DepositDiamonds        DepositSymbol = "DIAMONDS"
	DepositUraniteOre      DepositSymbol = "URANITE_ORE"
	DepositMeritiumOre     DepositSymbol = "MERITIUM_ORE"
)

var depositSymbols = newEnumSet(
	DepositQuartzSand, DepositSiliconCrystals, DepositPreciousStones, DepositIceWater,
	DepositAmmoniaIce, DepositIronOre, DepositCopperOre, DepositSilverOre, DepositAluminumOre,
	DepositGoldOre, DepositPlatinumOre, DepositDiamonds, DepositUraniteOre, DepositMeritiumOre,
)

func (s DepositSymbol) Valid() bool { return depositSymbols.has(s) }

// ShipRole is the registered role of a ship.
type ShipRole string

const (
	ShipRoleFabricator  ShipRole = "FABRICATOR"
	ShipRoleHarvester   ShipRole = "HARVESTER"
	ShipRoleHauler      ShipRole = "HAULER"
	ShipRoleInterceptor ShipRole = "INTERCEPTOR"
	ShipRoleExcavator   ShipRole = "EXCAVATOR"
	ShipRoleTransport   ShipRole = "TRANSPORT"
	ShipRoleRepair      ShipRole = "REPAIR"
	ShipRoleSurveyor    ShipRole = "SURVEYOR"
	ShipRoleCommand     ShipRole = "COMMAND"
	ShipRoleCarrier     ShipRole = "CARRIER"
	ShipRolePatrol      ShipRole = "PATROL"
	ShipRoleSatellite   ShipRole = "SATELLITE"
	ShipRoleExplorer    ShipRole = "EXPLORER"
	ShipRoleRefinery    ShipRole = "REFINERY"
)

var shipRoles = newEnumSet(
	ShipRoleFabricator, ShipRoleHarvester, ShipRoleHauler, ShipRoleInterceptor, ShipRoleExcavator,
	ShipRoleTransport, ShipRoleRepair, ShipRoleSurveyor, ShipRoleCommand, ShipRoleCarrier,
	ShipRolePatrol, ShipRoleSatellite, ShipRoleExplorer, ShipRoleRefinery,
)

func (s ShipRole) Valid() bool { return shipRoles.has(s) }

// ConditionEventSymbol names an event that wore down a ship component.
type ConditionEventSymbol string

const (
	ConditionEventReactorOverload                  ConditionEventSymbol = "REACTOR_OVERLOAD"
	ConditionEventEnergySpikeFromMineral           ConditionEventSymbol = "ENERGY_SPIKE_FROM_MINERAL"
	ConditionEventSolarFlareInterference           ConditionEventSymbol = "SOLAR_FLARE_INTERFERENCE"
	ConditionEventCoolantLeak                      ConditionEventSymbol = "COOLANT_LEAK"
	ConditionEventPowerDistributionFluctuation     ConditionEventSymbol = "POWER_DISTRIBUTION_FLUCTUATION"
	ConditionEventMagneticFieldDisruption          ConditionEventSymbol = "MAGNETIC_FIELD_DISRUPTION"
	ConditionEventHullMicrometeoriteStrikes        ConditionEventSymbol = "HULL_MICROMETEORITE_STRIKES"
	ConditionEventStructuralStressFractures        ConditionEventSymbol = "STRUCTURAL_STRESS_FRACTURES"
	ConditionEventCorrosiveMineralContamination    ConditionEventSymbol = "CORROSIVE_MINERAL_CONTAMINATION"
	ConditionEventThermalExpansionMismatch         ConditionEventSymbol = "THERMAL_EXPANSION_MISMATCH"
	ConditionEventVibrationDamageFromDrilling      ConditionEventSymbol = "VIBRATION_DAMAGE_FROM_DRILLING"
	ConditionEventElectromagneticFieldInterference ConditionEventSymbol = "ELECTROMAGNETIC_FIELD_INTERFERENCE"
	ConditionEventImpactWithExtractedDebris        ConditionEventSymbol = "IMPACT_WITH_EXTRACTED_DEBRIS"
	ConditionEventFuelEfficiencyDegradation        ConditionEventSymbol = "FUEL_EFFICIENCY_DEGRADATION"
	ConditionEventCoolantSystemAgeing              ConditionEventSymbol = "COOLANT_SYSTEM_AGEING"
	ConditionEventDustMicroabrasions               ConditionEventSymbol = "DUST_MICROABRASIONS"
	ConditionEventThrusterNozzleWear               ConditionEventSymbol = "THRUSTER_NOZZLE_WEAR"
	ConditionEventExhaustPortClogging              ConditionEventSymbol = "EXHAUST_PORT_CLOGGING"
	ConditionEventBearingLubricationFade           ConditionEventSymbol = "BEARING_LUBRICATION_FADE"
	ConditionEventSensorCalibrationDrift           ConditionEventSymbol = "SENSOR_CALIBRATION_DRIFT"
	ConditionEventHullMicrometeoriteDamage         ConditionEventSymbol = "HULL_MICROMETEORITE_DAMAGE"
	ConditionEventSpaceDebrisCollision             ConditionEventSymbol = "SPACE_DEBRIS_COLLISION"
	ConditionEventThermalStress                    ConditionEventSymbol = "THERMAL_STRESS"
	ConditionEventVibrationOverload                ConditionEventSymbol = "VIBRATION_OVERLOAD"
	ConditionEventPressureDifferentialStress       ConditionEventSymbol = "PRESSURE_DIFFERENTIAL_STRESS"
	ConditionEventElectromagneticSurgeEffects      ConditionEventSymbol = "ELECTROMAGNETIC_SURGE_EFFECTS"
	ConditionEventAtmosphericEntryHeat             ConditionEventSymbol = "ATMOSPHERIC_ENTRY_HEAT"
)

var conditionEvents = newEnumSet(
	ConditionEventReactorOverload, ConditionEventEnergySpikeFromMineral,
	ConditionEventSolarFlareInterference, ConditionEventCoolantLeak,
	ConditionEventPowerDistributionFluctuation, ConditionEventMagneticFieldDisruption,
	ConditionEventHullMicrometeoriteStrikes, ConditionEventStructuralStressFractures,
	ConditionEventCorrosiveMineralContamination, ConditionEventThermalExpansionMismatch,
	ConditionEventVibrationDamageFromDrilling, ConditionEventElectromagneticFieldInterference,
	ConditionEventImpactWithExtractedDebris, ConditionEventFuelEfficiencyDegradation,
	ConditionEventCoolantSystemAgeing, ConditionEventDustMicroabrasions,
	ConditionEventThrusterNozzleWear, ConditionEventExhaustPortClogging,
	ConditionEventBearingLubricationFade, ConditionEventSensorCalibrationDrift,
	ConditionEventHullMicrometeoriteDamage, ConditionEventSpaceDebrisCollision,
	ConditionEventThermalStress, ConditionEventVibrationOverload,
	ConditionEventPressureDifferentialStress, ConditionEventElectromagneticSurgeEffects,
	ConditionEventAtmosphericEntryHeat,
)

func (s ConditionEventSymbol) Valid() bool { return conditionEvents.has(s) }
