package models

// Enum is implemented by every closed enumeration in this package.
// The "enum" validation rule rejects values for which Valid reports false.
type Enum interface {
	Valid() bool
}

type enumSet[T ~string] map[T]struct{}

func newEnumSet[T ~string](values ...T) enumSet[T] {
	set := make(enumSet[T], len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func (s enumSet[T]) has(v T) bool {
	_, ok := s[v]
	return ok
}

// ContractType is the kind of work a contract asks for.
type ContractType string

const (
	ContractTypeProcurement ContractType = "PROCUREMENT"
	ContractTypeTransport   ContractType = "TRANSPORT"
	ContractTypeShuttle     ContractType = "SHUTTLE"
)

var contractTypes = newEnumSet(ContractTypeProcurement, ContractTypeTransport, ContractTypeShuttle)

func (t ContractType) Valid() bool { return contractTypes.has(t) }

// FactionSymbol identifies one of the known factions.
type FactionSymbol string

const (
	FactionCosmic   FactionSymbol = "COSMIC"
	FactionVoid     FactionSymbol = "VOID"
	FactionGalactic FactionSymbol = "GALACTIC"
	FactionQuantum  FactionSymbol = "QUANTUM"
	FactionDominion FactionSymbol = "DOMINION"
	FactionAstro    FactionSymbol = "ASTRO"
	FactionCorsairs FactionSymbol = "CORSAIRS"
	FactionObsidian FactionSymbol = "OBSIDIAN"
	FactionAegis    FactionSymbol = "AEGIS"
	FactionUnited   FactionSymbol = "UNITED"
	FactionSolitary FactionSymbol = "SOLITARY"
	FactionCobalt   FactionSymbol = "COBALT"
	FactionOmega    FactionSymbol = "OMEGA"
	FactionEcho     FactionSymbol = "ECHO"
	FactionLords    FactionSymbol = "LORDS"
	FactionCult     FactionSymbol = "CULT"
	FactionAncients FactionSymbol = "ANCIENTS"
	FactionShadow   FactionSymbol = "SHADOW"
	FactionEthereal FactionSymbol = "ETHEREAL"
)

var factionSymbols = newEnumSet(
	FactionCosmic, FactionVoid, FactionGalactic, FactionQuantum, FactionDominion, FactionAstro,
	FactionCorsairs, FactionObsidian, FactionAegis, FactionUnited, FactionSolitary, FactionCobalt,
	FactionOmega, FactionEcho, FactionLords, FactionCult, FactionAncients, FactionShadow, FactionEthereal,
)

func (f FactionSymbol) Valid() bool { return factionSymbols.has(f) }

// WaypointType is the kind of body or structure at a waypoint.
type WaypointType string

const (
	WaypointTypePlanet                WaypointType = "PLANET"
	WaypointTypeGasGiant              WaypointType = "GAS_GIANT"
	WaypointTypeMoon                  WaypointType = "MOON"
	WaypointTypeOrbitalStation        WaypointType = "ORBITAL_STATION"
	WaypointTypeJumpGate              WaypointType = "JUMP_GATE"
	WaypointTypeAsteroidField         WaypointType = "ASTEROID_FIELD"
	WaypointTypeAsteroid              WaypointType = "ASTEROID"
	WaypointTypeEngineeredAsteroid    WaypointType = "ENGINEERED_ASTEROID"
	WaypointTypeAsteroidBase          WaypointType = "ASTEROID_BASE"
	WaypointTypeNebula                WaypointType = "NEBULA"
	WaypointTypeDebrisField           WaypointType = "DEBRIS_FIELD"
	WaypointTypeGravityWell           WaypointType = "GRAVITY_WELL"
	WaypointTypeArtificialGravityWell WaypointType = "ARTIFICIAL_GRAVITY_WELL"
	WaypointTypeFuelStation           WaypointType = "FUEL_STATION"
)

var waypointTypes = newEnumSet(
	WaypointTypePlanet, WaypointTypeGasGiant, WaypointTypeMoon, WaypointTypeOrbitalStation,
	WaypointTypeJumpGate, WaypointTypeAsteroidField, WaypointTypeAsteroid, WaypointTypeEngineeredAsteroid,
	WaypointTypeAsteroidBase, WaypointTypeNebula, WaypointTypeDebrisField, WaypointTypeGravityWell,
	WaypointTypeArtificialGravityWell, WaypointTypeFuelStation,
)

func (t WaypointType) Valid() bool { return waypointTypes.has(t) }

// WaypointModifierSymbol is a temporary condition affecting a waypoint.
type WaypointModifierSymbol string

const (
	WaypointModifierStripped      WaypointModifierSymbol = "STRIPPED"
	WaypointModifierUnstable      WaypointModifierSymbol = "UNSTABLE"
	WaypointModifierRadiationLeak WaypointModifierSymbol = "RADIATION_LEAK"
	WaypointModifierCriticalLimit WaypointModifierSymbol = "CRITICAL_LIMIT"
	WaypointModifierCivilUnrest   WaypointModifierSymbol = "CIVIL_UNREST"
)

var waypointModifiers = newEnumSet(
	WaypointModifierStripped, WaypointModifierUnstable, WaypointModifierRadiationLeak,
	WaypointModifierCriticalLimit, WaypointModifierCivilUnrest,
)

func (m WaypointModifierSymbol) Valid() bool { return waypointModifiers.has(m) }

// SystemType is the kind of star at the centre of a system.
type SystemType string

const (
	SystemTypeNeutronStar SystemType = "NEUTRON_STAR"
	SystemTypeRedStar     SystemType = "RED_STAR"
	SystemTypeOrangeStar  SystemType = "ORANGE_STAR"
	SystemTypeBlueStar    SystemType = "BLUE_STAR"
	SystemTypeYoungStar   SystemType = "YOUNG_STAR"
	SystemTypeWhiteDwarf  SystemType = "WHITE_DWARF"
	SystemTypeBlackHole   SystemType = "BLACK_HOLE"
	SystemTypeHypergiant  SystemType = "HYPERGIANT"
	SystemTypeNebula      SystemType = "NEBULA"
	SystemTypeUnstable    SystemType = "UNSTABLE"
)

var systemTypes = newEnumSet(
	SystemTypeNeutronStar, SystemTypeRedStar, SystemTypeOrangeStar, SystemTypeBlueStar,
	SystemTypeYoungStar, SystemTypeWhiteDwarf, SystemTypeBlackHole, SystemTypeHypergiant,
	SystemTypeNebula, SystemTypeUnstable,
)

func (t SystemType) Valid() bool { return systemTypes.has(t) }

type TransactionType string

const (
	TransactionPurchase TransactionType = "PURCHASE"
	TransactionSell     TransactionType = "SELL"
)

var transactionTypes = newEnumSet(TransactionPurchase, TransactionSell)

func (t TransactionType) Valid() bool { return transactionTypes.has(t) }

// TradeGoodType says how a market trades a good.
type TradeGoodType string

const (
	TradeGoodExport   TradeGoodType = "EXPORT"
	TradeGoodImport   TradeGoodType = "IMPORT"
	TradeGoodExchange TradeGoodType = "EXCHANGE"
)

var tradeGoodTypes = newEnumSet(TradeGoodExport, TradeGoodImport, TradeGoodExchange)

func (t TradeGoodType) Valid() bool { return tradeGoodTypes.has(t) }

type SupplyLevel string

const (
	SupplyScarce   SupplyLevel = "SCARCE"
	SupplyLimited  SupplyLevel = "LIMITED"
	SupplyModerate SupplyLevel = "MODERATE"
	SupplyHigh     SupplyLevel = "HIGH"
	SupplyAbundant SupplyLevel = "ABUNDANT"
)

var supplyLevels = newEnumSet(SupplyScarce, SupplyLimited, SupplyModerate, SupplyHigh, SupplyAbundant)

func (s SupplyLevel) Valid() bool { return supplyLevels.has(s) }

// ActivityLevel is how close production or consumption of a good runs to capacity.
type ActivityLevel string

const (
	ActivityWeak       ActivityLevel = "WEAK"
	ActivityGrowing    ActivityLevel = "GROWING"
	ActivityStrong     ActivityLevel = "STRONG"
	ActivityRestricted ActivityLevel = "RESTRICTED"
)

var activityLevels = newEnumSet(ActivityWeak, ActivityGrowing, ActivityStrong, ActivityRestricted)

func (a ActivityLevel) Valid() bool { return activityLevels.has(a) }

type CrewRotation string

const (
	CrewRotationStrict  CrewRotation = "STRICT"
	CrewRotationRelaxed CrewRotation = "RELAXED"
)

var crewRotations = newEnumSet(CrewRotationStrict, CrewRotationRelaxed)

func (r CrewRotation) Valid() bool { return crewRotations.has(r) }

// NavStatus is where a ship is relative to its current waypoint.
type NavStatus string

const (
	NavStatusInTransit NavStatus = "IN_TRANSIT"
	NavStatusInOrbit   NavStatus = "IN_ORBIT"
	NavStatusDocked    NavStatus = "DOCKED"
)

var navStatuses = newEnumSet(NavStatusInTransit, NavStatusInOrbit, NavStatusDocked)

func (s NavStatus) Valid() bool { return navStatuses.has(s) }

// FlightMode trades travel time against fuel consumption.
type FlightMode string

const (
	FlightModeDrift   FlightMode = "DRIFT"
	FlightModeStealth FlightMode = "STEALTH"
	FlightModeCruise  FlightMode = "CRUISE"
	FlightModeBurn    FlightMode = "BURN"
)

var flightModes = newEnumSet(FlightModeDrift, FlightModeStealth, FlightModeCruise, FlightModeBurn)

func (m FlightMode) Valid() bool { return flightModes.has(m) }

// ShipComponent is the part of a ship a condition event applies to.
type ShipComponent string

const (
	ComponentFrame   ShipComponent = "FRAME"
	ComponentReactor ShipComponent = "REACTOR"
	ComponentEngine  ShipComponent = "ENGINE"
)

var shipComponents = newEnumSet(ComponentFrame, ComponentReactor, ComponentEngine)

func (c ShipComponent) Valid() bool { return shipComponents.has(c) }

type SurveySize string

const (
	SurveySizeSmall    SurveySize = "SMALL"
	SurveySizeModerate SurveySize = "MODERATE"
	SurveySizeLarge    SurveySize = "LARGE"
)

var surveySizes = newEnumSet(SurveySizeSmall, SurveySizeModerate, SurveySizeLarge)

func (s SurveySize) Valid() bool { return surveySizes.has(s) }
