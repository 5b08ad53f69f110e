package icons

// Stat names referenced directly by the placeholder evaluator
const (
	StatMaxHealth      = "Max Health"
	StatWeaponPower    = "Weapon Power"
	StatArmor          = "Armor"
	StatPhysicalDamage = "Physical Damage"
	StatMagicalDamage  = "Magical Damage"
)

// Default returns the built-in icon tables
func Default() *Set {
	return &Set{
		Stats: map[string]string{
			"Max Health":        ":health:",
			"Max Energy":        ":energy:",
			"Weapon Power":      ":weapon_power:",
			"Spell Power":       ":spell_power:",
			"Armor":             ":armor:",
			"Magic Resist":      ":magic_resist:",
			"Accuracy":          ":accuracy:",
			"Crit Rating":       ":crit:",
			"Dodge":             ":dodge:",
			"Strength":          ":strength:",
			"Agility":           ":agility:",
			"Will":              ":will:",
			"Armor Penetration": ":armor_penetration:",
			"Attack Range":      ":attack_range:",
			"Movement Range":    ":movement_range:",
			"Pet Grit":          ":grit:",
			"Pet Guile":         ":guile:",
			"Pet Guts":          ":guts:",
			"Pet Power":         ":pet_power:",
			"Physical Damage":   ":physical_damage:",
			"Magical Damage":    ":magical_damage:",
			"Primary Stat":      ":primary_stats:",
			"Speed":             ":speed:",
			"Current Health1":   "Current :health:",
			"Max Health1":       "Max :health:",
		},
		StatKeys: map[string]string{
			"DAMAGE_BASE_ICON":     ":weapon_power:",
			"ARMOR_ICON":           ":armor:",
			"CRIT_RATING_ICON":     ":crit:",
			"ACCURACY_ICON":        ":accuracy:",
			"AGILITY_ICON":         ":agility:",
			"STRENGTH_ICON":        ":strength:",
			"SPELL_POWER_ICON":     ":spell_power:",
			"DODGE_ICON":           ":dodge:",
			"ATTACK_RANGE_ICON":    ":attack_range:",
			"MOVE_RANGE_ICON":      ":movement_range:",
			"CURRENT_HP_ICON":      ":health:",
			"DAMAGE_PHYSICAL_ICON": ":physical_damage:",
			"DAMAGE_MAGICAL_ICON":  ":magical_damage:",
			"MAX_HP_ICON":          ":health:",
			"ICON_MOVEMENT_RANGE":  ":movement_range:",
			"WILL_ICON":            ":will:",
			"RESIST_BASE_ICON":     ":magic_resist:",
		},
		Images: map[string]string{
			"Icon_Timer_Med":                 ":timer:",
			"Icon_Buff_Bad":                  ":debuff:",
			"Icon_Buff_Good":                 ":buff:",
			"Icon_Area_Enemy_Territory_Med":  ":enemy_territory:",
			"Icon_Area_Radial_Orange_Med":    ":all_3x3:",
			"Icon_Area_Radial_Green_Med":     ":ally_3x3:",
			"Icon_Attribute_Slash_Med":       ":slashy:",
			"Icon_Attribute_Axe_Med":         ":smashy:",
			"Icon_Attribute_Kris_Med":        ":stabby:",
			"Icon_Attribute_Pistol_Med":      ":shooty:",
			"Icon_Attribute_Staff_Med":       ":staffy:",
			"Icon_Attribute_Crit_Rating_Med": ":crit:",
			"Icon_Attribute_Damage":          ":weapon_power:",
			"Icon_Attribute_Mojo":            ":spell_power:",
			"Icon_Talent_Star_Yellow_01":     ":talent_star:",
			"Icon_Chance_Med":                ":chance:",
			"Icon_TimesPerTurn_Med":          ":times:",
		},
		Effects: map[string]string{
			"Bleed":  ":bleed:",
			"Poison": ":poison:",
			"Heal":   ":health:",
			"Curse":  ":curse:",
		},
		RequirementLabel: "Exploding Starfish",
	}
}
