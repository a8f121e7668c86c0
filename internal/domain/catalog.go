package domain

type ItemType struct {
	ItemTypeID   int64  `json:"item_type_id" db:"item_type_id"`
	ItemTypeName string `json:"item_type_name" db:"item_type_name" validate:"required,max=100"`
}

func (t *ItemType) Key() int64      { return t.ItemTypeID }
func (t *ItemType) SetKey(id int64) { t.ItemTypeID = id }
func (t *ItemType) Label() string   { return t.ItemTypeName }

// Item is a row of the item sales sheet.
type Item struct {
	ItemSheetID     int64  `json:"item_sheet_id" db:"item_sheet_id"`
	ItemTypeID      int64  `json:"item_type_id" db:"item_type_id" validate:"required,gt=0"`
	ItemVersionName string `json:"item_version_name" db:"item_version_name" validate:"required,max=200"`
	PurchaseValue   int64  `json:"purchase_value" db:"purchase_value" validate:"gte=0"`
	ImageURL        string `json:"image_url" db:"image_url" validate:"omitempty,max=1024"`
}

func (i *Item) Key() int64      { return i.ItemSheetID }
func (i *Item) SetKey(id int64) { i.ItemSheetID = id }
func (i *Item) Label() string   { return i.ItemVersionName }

type Vehicle struct {
	VehicleID     int64  `json:"vehicle_id" db:"vehicle_id"`
	VehicleName   string `json:"vehicle_name" db:"vehicle_name" validate:"required,max=100"`
	Description   string `json:"description" db:"description"`
	PurchaseValue int64  `json:"purchase_value" db:"purchase_value" validate:"gte=0"`
}

func (v *Vehicle) Key() int64      { return v.VehicleID }
func (v *Vehicle) SetKey(id int64) { v.VehicleID = id }
func (v *Vehicle) Label() string   { return v.VehicleName }

type Quest struct {
	QuestID     int64  `json:"quest_id" db:"quest_id"`
	QuestName   string `json:"quest_name" db:"quest_name" validate:"required,max=200"`
	Description string `json:"description" db:"description"`
	RewardExp   int64  `json:"reward_exp" db:"reward_exp" validate:"gte=0"`
}

func (q *Quest) Key() int64      { return q.QuestID }
func (q *Quest) SetKey(id int64) { q.QuestID = id }
func (q *Quest) Label() string   { return q.QuestName }

type Monster struct {
	MonsterID   int64  `json:"monster_id" db:"monster_id"`
	MonsterName string `json:"monster_name" db:"monster_name" validate:"required,max=100"`
	ExpReward   int64  `json:"exp_reward" db:"exp_reward" validate:"gte=0"`
}

func (m *Monster) Key() int64      { return m.MonsterID }
func (m *Monster) SetKey(id int64) { m.MonsterID = id }
func (m *Monster) Label() string   { return m.MonsterName }

type Resource struct {
	ResourceID   int64  `json:"resource_id" db:"resource_id"`
	ResourceName string `json:"resource_name" db:"resource_name" validate:"required,max=100"`
	Description  string `json:"description" db:"description"`
}

func (r *Resource) Key() int64      { return r.ResourceID }
func (r *Resource) SetKey(id int64) { r.ResourceID = id }
func (r *Resource) Label() string   { return r.ResourceName }

type GameMode struct {
	ModeID   int64  `json:"mode_id" db:"mode_id"`
	ModeName string `json:"mode_name" db:"mode_name" validate:"required,max=100"`
}

func (g *GameMode) Key() int64      { return g.ModeID }
func (g *GameMode) SetKey(id int64) { g.ModeID = id }
func (g *GameMode) Label() string   { return g.ModeName }
