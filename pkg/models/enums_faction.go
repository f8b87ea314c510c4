package models

// FactionTraitSymbol identifies a trait of a faction.
type FactionTraitSymbol string

const (
	FactionTraitBureaucratic            FactionTraitSymbol = "BUREAUCRATIC"
	FactionTraitSecretive               FactionTraitSymbol = "SECRETIVE"
	FactionTraitCapitalistic            FactionTraitSymbol = "CAPITALISTIC"
	FactionTraitIndustrious             FactionTraitSymbol = "INDUSTRIOUS"
	FactionTraitPeaceful                FactionTraitSymbol = "PEACEFUL"
	FactionTraitDistrustful             FactionTraitSymbol = "DISTRUSTFUL"
	FactionTraitWelcoming               FactionTraitSymbol = "WELCOMING"
	FactionTraitSmugglers               FactionTraitSymbol = "SMUGGLERS"
	FactionTraitScavengers              FactionTraitSymbol = "SCAVENGERS"
	FactionTraitRebellious              FactionTraitSymbol = "REBELLIOUS"
	FactionTraitExiles                  FactionTraitSymbol = "EXILES"
	FactionTraitPirates                 FactionTraitSymbol = "PIRATES"
	FactionTraitRaiders                 FactionTraitSymbol = "RAIDERS"
	FactionTraitClan                    FactionTraitSymbol = "CLAN"
	FactionTraitGuild                   FactionTraitSymbol = "GUILD"
	FactionTraitDominion                FactionTraitSymbol = "DOMINION"
	FactionTraitFringe                  FactionTraitSymbol = "FRINGE"
	FactionTraitForsaken                FactionTraitSymbol = "FORSAKEN"
	FactionTraitIsolated                FactionTraitSymbol = "ISOLATED"
	FactionTraitLocalized               FactionTraitSymbol = "LOCALIZED"
	FactionTraitEstablished             FactionTraitSymbol = "ESTABLISHED"
	FactionTraitNotable                 FactionTraitSymbol = "NOTABLE"
	FactionTraitDominant                FactionTraitSymbol = "DOMINANT"
	FactionTraitInescapable             FactionTraitSymbol = "INESCAPABLE"
	FactionTraitInnovative              FactionTraitSymbol = "INNOVATIVE"
	FactionTraitBold                    FactionTraitSymbol = "BOLD"
	FactionTraitVisionary               FactionTraitSymbol = "VISIONARY"
	FactionTraitCurious                 FactionTraitSymbol = "CURIOUS"
	FactionTraitDaring                  FactionTraitSymbol = "DARING"
	FactionTraitExploratory             FactionTraitSymbol = "EXPLORATORY"
	FactionTraitResourceful             FactionTraitSymbol = "RESOURCEFUL"
	FactionTraitFlexible                FactionTraitSymbol = "FLEXIBLE"
	FactionTraitCooperative             FactionTraitSymbol = "COOPERATIVE"
	FactionTraitUnited                  FactionTraitSymbol = "UNITED"
	FactionTraitStrategic               FactionTraitSymbol = "STRATEGIC"
	FactionTraitIntelligent             FactionTraitSymbol = "INTELLIGENT"
	FactionTraitResearchFocused         FactionTraitSymbol = "RESEARCH_FOCUSED"
	FactionTraitCollaborative           FactionTraitSymbol = "COLLABORATIVE"
	FactionTraitProgressive             FactionTraitSymbol = "PROGRESSIVE"
	FactionTraitMilitaristic            FactionTraitSymbol = "MILITARISTIC"
	FactionTraitTechnologicallyAdvanced FactionTraitSymbol = "TECHNOLOGICALLY_ADVANCED"
	FactionTraitAggressive              FactionTraitSymbol = "AGGRESSIVE"
	FactionTraitImperialistic           FactionTraitSymbol = "IMPERIALISTIC"
	FactionTraitTreasureHunters         FactionTraitSymbol = "TREASURE_HUNTERS"
	FactionTraitDexterous               FactionTraitSymbol = "DEXTEROUS"
	FactionTraitUnpredictable           FactionTraitSymbol = "UNPREDICTABLE"
	FactionTraitBrutal                  FactionTraitSymbol = "BRUTAL"
	FactionTraitFleeting                FactionTraitSymbol = "FLEETING"
	FactionTraitAdaptable               FactionTraitSymbol = "ADAPTABLE"
	FactionTraitSelfSufficient          FactionTraitSymbol = "SELF_SUFFICIENT"
	FactionTraitDefensive               FactionTraitSymbol = "DEFENSIVE"
	FactionTraitProud                   FactionTraitSymbol = "PROUD"
	FactionTraitDiverse                 FactionTraitSymbol = "DIVERSE"
	FactionTraitIndependent             FactionTraitSymbol = "INDEPENDENT"
	FactionTraitSelfInterested          FactionTraitSymbol = "SELF_INTERESTED"
	FactionTraitFragmented              FactionTraitSymbol = "FRAGMENTED"
	FactionTraitCommercial              FactionTraitSymbol = "COMMERCIAL"
	FactionTraitFreeMarkets             FactionTraitSymbol = "FREE_MARKETS"
	FactionTraitEntrepreneurial         FactionTraitSymbol = "ENTREPRENEURIAL"
)

var factionTraits = newEnumSet(
	FactionTraitBureaucratic, FactionTraitSecretive, FactionTraitCapitalistic,
	FactionTraitIndustrious, FactionTraitPeaceful, FactionTraitDistrustful, FactionTraitWelcoming,
	FactionTraitSmugglers, FactionTraitScavengers, FactionTraitRebellious, FactionTraitExiles,
	FactionTraitPirates, FactionTraitRaiders, FactionTraitClan, FactionTraitGuild,
	FactionTraitDominion, FactionTraitFringe, FactionTraitForsaken, FactionTraitIsolated,
	FactionTraitLocalized, FactionTraitEstablished, FactionTraitNotable, FactionTraitDominant,
	FactionTraitInescapable, FactionTraitInnovative, FactionTraitBold, FactionTraitVisionary,
	FactionTraitCurious, FactionTraitDaring, FactionTraitExploratory, FactionTraitResourceful,
	FactionTraitFlexible, FactionTraitCooperative, FactionTraitUnited, FactionTraitStrategic,
	FactionTraitIntelligent, FactionTraitResearchFocused, FactionTraitCollaborative,
	FactionTraitProgressive, FactionTraitMilitaristic, FactionTraitTechnologicallyAdvanced,
	FactionTraitAggressive, FactionTraitImperialistic, FactionTraitTreasureHunters,
	FactionTraitDexterous, FactionTraitUnpredictable, FactionTraitBrutal, FactionTraitFleeting,
	FactionTraitAdaptable, FactionTraitSelfSufficient, FactionTraitDefensive, FactionTraitProud,
	FactionTraitDiverse, FactionTraitIndependent, FactionTraitSelfInterested, FactionTraitFragmented,
	FactionTraitCommercial, FactionTraitFreeMarkets, FactionTraitEntrepreneurial,
)

func (s FactionTraitSymbol) Valid() bool { return factionTraits.has(s) }
