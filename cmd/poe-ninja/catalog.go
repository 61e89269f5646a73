package main

import "slices"

// Known league names. Challenge leagues rotate, so other names are still sent.
var leagues = []string{
	"Standard",
	"Hardcore",
	"Settlers",
	"Hardcore Settlers",
	"Solo Self-Found",
	"Hardcore Solo Self-Found",
}

// Currency overview types.
var currencyTypes = []string{"Currency", "Fragment"}

// Item overview types.
var itemTypes = []string{
	"Oil", "Incubator", "Scarab", "Fossil", "Resonator", "Essence",
	"DivinationCard", "SkillGem", "BaseType", "HelmetEnchant",
	"UniqueMap", "Map", "UniqueJewel", "UniqueFlask", "UniqueWeapon",
	"UniqueArmour", "UniqueAccessory", "Beast", "Vials", "DeliriumOrb",
	"Omen", "UniqueRelic", "ClusterJewel", "BlightedMap", "BlightRavagedMap",
	"Invitation", "Memory", "Coffin", "AllflameEmber",
}

// known reports whether name is listed. Names are case-sensitive upstream.
func known(list []string, name string) bool {
	return slices.Contains(list, name)
}
