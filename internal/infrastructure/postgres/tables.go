package postgres

// Table layouts for every admin-managed entity.
var (
	PlayersSpec = TableSpec{
		Name:    "players",
		Key:     "player_id",
		Columns: []string{"email_account", "login_password", "role", "experience_points"},
		UpdateExpr: map[string]string{
			// empty means "keep the current value"
			"login_password": "COALESCE(NULLIF(:login_password, ''), login_password)",
			"role":           "COALESCE(NULLIF(:role, ''), role)",
		},
	}
	CharactersSpec = TableSpec{
		Name:    "characters",
		Key:     "character_id",
		Columns: []string{"player_id", "character_name"},
	}
	ItemTypesSpec = TableSpec{
		Name:    "item_types",
		Key:     "item_type_id",
		Columns: []string{"item_type_name"},
		OrderBy: "item_type_name",
	}
	ItemsSpec = TableSpec{
		Name:    "item_sales_sheet",
		Key:     "item_sheet_id",
		Columns: []string{"item_type_id", "item_version_name", "purchase_value", "image_url"},
		UpdateExpr: map[string]string{
			"image_url": "COALESCE(NULLIF(:image_url, ''), image_url)",
		},
	}
	VehiclesSpec = TableSpec{
		Name:    "vehicles",
		Key:     "vehicle_id",
		Columns: []string{"vehicle_name", "description", "purchase_value"},
	}
	QuestsSpec = TableSpec{
		Name:    "quests",
		Key:     "quest_id",
		Columns: []string{"quest_name", "description", "reward_exp"},
	}
	MonstersSpec = TableSpec{
		Name:    "monsters",
		Key:     "monster_id",
		Columns: []string{"monster_name", "exp_reward"},
	}
	ResourcesSpec = TableSpec{
		Name:    "resources",
		Key:     "resource_id",
		Columns: []string{"resource_name", "description"},
	}
	GameModesSpec = TableSpec{
		Name:    "game_modes",
		Key:     "mode_id",
		Columns: []string{"mode_name"},
	}
)
