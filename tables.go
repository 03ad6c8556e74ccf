package killicons

// Mappings translates log line weapon names to the internal asset names used
// by mod_textures.txt. The two vocabularies evolved independently across
// years of content updates, so the table collects the known mismatches.
// Not every target needs to exist as a definition.
var Mappings = map[string]string{
	"robot_arm":       "robot_arm_kill",
	"unique_pickaxe":  "pickaxe",
	"world":           "skull",
	"trigger_hurt":    "skull",
	"env_explosion":   "skull",
	"player":          "skull",
	"tf_pumpkin_bomb": "pumpkindeath",
	// telefrag, tf_projectile_* and entity_medigun_shield come from the
	// community sheets; 'default' uses the saw_kill icon.
	"default": "saw_kill",
	// Internal projectile names.
	"grenadelauncher":     "tf_projectile_pipe",
	"rocketlauncher":      "tf_projectile_rocket",
	"stickybomb_launcher": "tf_projectile_pipe_remote",
	"flamethrower":        "tf_weapon_flamethrower",
	"knife":               "tf_weapon_knife",
	// _kill suffix weapons.
	"frontier_justice":     "frontier_kill",
	"southern_hospitality": "southern_comfort_kill",
	"golden_wrench":        "wrench_golden",
	"gunslinger":           "robot_arm_kill",
	"jag":                  "wrench_jag",
	"wrangler":             "wrangler_kill",
	// Demoman shields.
	"chargin_targe": "demoshield",
	"loose_cannon":  "loose_cannon_impact",
	// Community weapons.
	"tf_projectile_mechanicalarmorb": "tf_projectile_mechanicalarmor",
	// Scout weapons.
	"baby_face_blaster":        "pep_brawlerblaster",
	"winger":                   "the_winger",
	"pretty_boy_pocket_pistol": "pep_pistol",
	"flying_guillotine":        "guillotine",
	"three_rune_blade":         "boston_basher",
	"sun_on_a_stick":           "lava_bat",
	"fan_o_war":                "warfan",
	// Soldier weapons.
	"black_box":             "blackbox",
	"beggars_bazooka":       "dumpster_device",
	"beggar":                "dumpster_device",
	"direct_hit":            "rocketlauncher_directhit",
	"original":              "quake_rl",
	"escape_plan":           "pickaxe",
	"equalizer":             "pickaxe",
	"unique_pickaxe_escape": "pickaxe",
	// Pyro weapons.
	"dragon_fury":                "ai_flamethrower",
	"neon_annihilator":           "annihilator",
	"third_degree":               "thirddegree",
	"homewrecker":                "sledgehammer",
	"sharpened_volcano_fragment": "lava_axe",
	"postal_pummeler":            "mailbox",
	// Heavy weapons.
	"huo_long_heater": "long_heatmaker",
	"fists":           "gloves",
	"gru":             "gloves_running_urgently",
	"fists_of_steel":  "steel_fists",
	// Engineer weapons.
	"gas_passer": "gas_blast",
	// Medic weapons.
	"vita_saw": "battleneedle",
	"overdose": "proto_syringe",
	// Sniper weapons.
	"hitman_heatmaker": "pro_rifle",
	"cleaners_carbine": "pro_smg",
	"kukri":            "club",
	"bushwacka":        "tribalkukri",
	// Spy weapons.
	"big_kill":            "samrevolver",
	"l_etranger":          "letranger",
	"your_eternal_reward": "eternal_reward",
	"conniver_kunai":      "kunai",
	// Multi-class.
	"half_zatoichi":          "demokatana",
	"conscientious_objector": "nonnonviolent_protest",
	// Taunts.
	"taunt_guitar_kill": "taunt_guitar_kill",
	// Other.
	"backscatter":                  "back_scatter",
	"nessie_club":                  "nessieclub",
	"horseless_headless_horsemann": "headtaker",
	"sentry_buster":                "ullapool_caber",
	"holy_mackerel":                "holymackerel",
	"pda_engineer":                 "saw_kill",
	"tf_projectile_arrow":          "huntsman",
	"cleaver":                      "guillotine",
}

// Aliases maps weapon names which legitimately share an icon with another
// weapon onto their canonical name. Unlike Mappings these are applied as a
// resolver fallback, not as a pre-translation.
var Aliases = map[string]string{
	"holymackerel":    "holy_mackerel",
	"force-a-nature":  "force_a_nature",
	"lugermorph":      "maxgun",
	"shotgun_soldier": "shotgun_primary",
	"shotgun_hwg":     "shotgun_primary",
	"shotgun_pyro":    "shotgun_primary",
	"pistol_scout":    "pistol",
	"pistol_engineer": "pistol",
	"awper_hand":      "sniperrifle",
	"compound_bow":    "huntsman",
}
