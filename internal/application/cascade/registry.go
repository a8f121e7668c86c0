package cascade

// Dependent is a collection of rows that reference a parent through
// ForeignKey. Children are removed before the dependent itself.
type Dependent struct {
	Name       string // human-readable, used in conflict messages
	Table      string
	Key        string // primary key of Table, referenced by Children
	ForeignKey string // column of Table pointing at the parent key
	Children   []Dependent
}

// Kind describes a deletable entity and everything that blocks its deletion.
type Kind struct {
	Name        string // route segment, e.g. "item-type"
	Entity      string // audit entity name, e.g. "ItemType"
	Noun        string // used in messages, e.g. "item type"
	Table       string
	Key         string
	LabelColumn string
	Dependents  []Dependent
}

var (
	transactionsByPlayer = Dependent{Name: "transactions", Table: "transactions", Key: "transaction_id", ForeignKey: "player_id"}
	transactionsByItem   = Dependent{Name: "transactions", Table: "transactions", Key: "transaction_id", ForeignKey: "item_sheet_id"}
)

var kinds = map[string]Kind{
	"player": {
		Name: "player", Entity: "Player", Noun: "player",
		Table: "players", Key: "player_id", LabelColumn: "email_account",
		Dependents: []Dependent{
			{Name: "character", Table: "characters", Key: "character_id", ForeignKey: "player_id"},
			transactionsByPlayer,
			{Name: "play histories", Table: "play_histories", Key: "play_history_id", ForeignKey: "player_id"},
			{Name: "player quests", Table: "player_quests", Key: "player_quest_id", ForeignKey: "player_id"},
			{Name: "monster kills", Table: "monster_kills", Key: "kill_id", ForeignKey: "player_id"},
			{Name: "resource gatherings", Table: "resource_gatherings", Key: "gathering_id", ForeignKey: "player_id"},
		},
	},
	"item": {
		Name: "item", Entity: "Item", Noun: "item",
		Table: "item_sales_sheet", Key: "item_sheet_id", LabelColumn: "item_version_name",
		Dependents: []Dependent{transactionsByItem},
	},
	"item-type": {
		Name: "item-type", Entity: "ItemType", Noun: "item type",
		Table: "item_types", Key: "item_type_id", LabelColumn: "item_type_name",
		Dependents: []Dependent{
			{
				Name: "items", Table: "item_sales_sheet", Key: "item_sheet_id", ForeignKey: "item_type_id",
				Children: []Dependent{transactionsByItem},
			},
		},
	},
	"quest": {
		Name: "quest", Entity: "Quest", Noun: "quest",
		Table: "quests", Key: "quest_id", LabelColumn: "quest_name",
		Dependents: []Dependent{
			{Name: "player quests", Table: "player_quests", Key: "player_quest_id", ForeignKey: "quest_id"},
		},
	},
	"monster": {
		Name: "monster", Entity: "Monster", Noun: "monster",
		Table: "monsters", Key: "monster_id", LabelColumn: "monster_name",
		Dependents: []Dependent{
			{Name: "monster kills", Table: "monster_kills", Key: "kill_id", ForeignKey: "monster_id"},
		},
	},
	"vehicle": {
		Name: "vehicle", Entity: "Vehicle", Noun: "vehicle",
		Table: "vehicles", Key: "vehicle_id", LabelColumn: "vehicle_name",
		Dependents: []Dependent{
			{Name: "transactions", Table: "transactions", Key: "transaction_id", ForeignKey: "vehicle_id"},
		},
	},
	"resource": {
		Name: "resource", Entity: "Resource", Noun: "resource",
		Table: "resources", Key: "resource_id", LabelColumn: "resource_name",
		Dependents: []Dependent{
			{Name: "resource gatherings", Table: "resource_gatherings", Key: "gathering_id", ForeignKey: "resource_id"},
		},
	},
	"game-mode": {
		Name: "game-mode", Entity: "GameMode", Noun: "game mode",
		Table: "game_modes", Key: "mode_id", LabelColumn: "mode_name",
		Dependents: []Dependent{
			{Name: "play histories", Table: "play_histories", Key: "play_history_id", ForeignKey: "mode_id"},
		},
	},
	"character": {
		Name: "character", Entity: "Character", Noun: "character",
		Table: "characters", Key: "character_id", LabelColumn: "character_name",
	},
}

// Lookup returns the kind registered under name.
func Lookup(name string) (Kind, bool) {
	k, ok := kinds[name]
	return k, ok
}
