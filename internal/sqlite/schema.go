package sqlite

// Names are hashed locale keys (see locale.Hash) stored as INTEGER. Duration
// and percent use -1 for "not present".
var schema = []string{
	`CREATE TABLE IF NOT EXISTS locale_en (
		id INTEGER PRIMARY KEY,
		data TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS powers (
		id INTEGER PRIMARY KEY,
		name INTEGER NOT NULL,
		real_name BLOB,
		image BLOB,
		description INTEGER NOT NULL,
		pvp_tag INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS power_adjustments (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		power INTEGER NOT NULL,
		num INTEGER NOT NULL,
		type TEXT NOT NULL DEFAULT '',
		operator TEXT NOT NULL,
		stat TEXT NOT NULL DEFAULT '',
		-- Divide rows hold the divisor stat name instead of a number
		amount REAL NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_power_adjustments_power ON power_adjustments(power)`,
	`CREATE TABLE IF NOT EXISTS power_info (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		power INTEGER NOT NULL,
		type TEXT NOT NULL DEFAULT '',
		dmg_type TEXT NOT NULL DEFAULT '',
		duration REAL NOT NULL DEFAULT -1,
		stat TEXT NOT NULL DEFAULT '',
		summon INTEGER NOT NULL DEFAULT 0,
		percent REAL NOT NULL DEFAULT -1
	)`,
	`CREATE INDEX IF NOT EXISTS idx_power_info_power ON power_info(power)`,

	`CREATE TABLE IF NOT EXISTS units (
		id INTEGER PRIMARY KEY,
		name INTEGER NOT NULL,
		real_name BLOB,
		image BLOB,
		title INTEGER NOT NULL DEFAULT 0,
		curve INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS unit_stats (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		unit INTEGER NOT NULL,
		stat TEXT NOT NULL,
		operator TEXT NOT NULL,
		amount REAL NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_unit_stats_unit ON unit_stats(unit)`,
	`CREATE TABLE IF NOT EXISTS curve_points (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		curve INTEGER NOT NULL,
		stat TEXT NOT NULL,
		type TEXT NOT NULL DEFAULT 'Regular',
		level INTEGER NOT NULL,
		value REAL NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_curve_points_curve ON curve_points(curve)`,

	`CREATE TABLE IF NOT EXISTS talents (
		id INTEGER PRIMARY KEY,
		name INTEGER NOT NULL,
		real_name BLOB,
		image BLOB,
		ranks INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS talent_ranks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		talent INTEGER NOT NULL,
		rank INTEGER NOT NULL,
		description INTEGER NOT NULL,
		requirement INTEGER,
		icon_1 BLOB,
		icon_2 BLOB,
		icon_3 BLOB,
		tooltip_1 INTEGER NOT NULL DEFAULT 0,
		tooltip_2 INTEGER NOT NULL DEFAULT 0,
		tooltip_3 INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_talent_ranks_talent ON talent_ranks(talent)`,
	`CREATE TABLE IF NOT EXISTS talent_stats (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		talent INTEGER NOT NULL,
		rank INTEGER NOT NULL,
		operator TEXT NOT NULL,
		stat TEXT NOT NULL,
		value REAL NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_talent_stats_talent ON talent_stats(talent)`,
}
