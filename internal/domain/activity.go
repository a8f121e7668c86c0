package domain

import "time"

// Transaction types.
const (
	TransactionBuyItem    = "BuyItem"
	TransactionBuyVehicle = "BuyVehicle"
)

type Transaction struct {
	TransactionID    int64     `json:"transaction_id" db:"transaction_id"`
	PlayerID         int64     `json:"player_id" db:"player_id"`
	ItemSheetID      *int64    `json:"item_sheet_id,omitempty" db:"item_sheet_id"`
	VehicleID        *int64    `json:"vehicle_id,omitempty" db:"vehicle_id"`
	TransactionTime  time.Time `json:"transaction_time" db:"transaction_time"`
	TransactionValue int64     `json:"transaction_value" db:"transaction_value"`
	TransactionType  string    `json:"transaction_type" db:"transaction_type"`
}

// TransactionDetail joins a transaction with the names of what was bought.
type TransactionDetail struct {
	Transaction
	ItemName    *string `json:"item_name,omitempty" db:"item_name"`
	VehicleName *string `json:"vehicle_name,omitempty" db:"vehicle_name"`
	PlayerEmail string  `json:"player_email,omitempty" db:"player_email"`
}

type PlayHistory struct {
	PlayHistoryID int64     `json:"play_history_id" db:"play_history_id"`
	PlayerID      int64     `json:"player_id" db:"player_id"`
	ModeID        int64     `json:"mode_id" db:"mode_id"`
	StartTime     time.Time `json:"start_time" db:"start_time"`
	PlayerEmail   string    `json:"player_email,omitempty" db:"player_email"`
	ModeName      string    `json:"mode_name,omitempty" db:"mode_name"`
}

type PlayerQuest struct {
	PlayerQuestID  int64      `json:"player_quest_id" db:"player_quest_id"`
	PlayerID       int64      `json:"player_id" db:"player_id"`
	QuestID        int64      `json:"quest_id" db:"quest_id"`
	CompletionTime *time.Time `json:"completion_time,omitempty" db:"completion_time"`
	PlayerEmail    string     `json:"player_email,omitempty" db:"player_email"`
	QuestName      string     `json:"quest_name,omitempty" db:"quest_name"`
}

type MonsterKill struct {
	KillID      int64     `json:"kill_id" db:"kill_id"`
	PlayerID    int64     `json:"player_id" db:"player_id"`
	MonsterID   int64     `json:"monster_id" db:"monster_id"`
	Quantity    int64     `json:"quantity" db:"quantity"`
	KillTime    time.Time `json:"kill_time" db:"kill_time"`
	PlayerEmail string    `json:"player_email,omitempty" db:"player_email"`
	MonsterName string    `json:"monster_name,omitempty" db:"monster_name"`
}

type ResourceGathering struct {
	GatheringID   int64     `json:"gathering_id" db:"gathering_id"`
	PlayerID      int64     `json:"player_id" db:"player_id"`
	ResourceID    int64     `json:"resource_id" db:"resource_id"`
	Quantity      int64     `json:"quantity" db:"quantity"`
	GatheringTime time.Time `json:"gathering_time" db:"gathering_time"`
	PlayerEmail   string    `json:"player_email,omitempty" db:"player_email"`
	ResourceName  string    `json:"resource_name,omitempty" db:"resource_name"`
}

// ItemSales is one row of the best-sellers report.
type ItemSales struct {
	ItemSheetID     int64  `json:"item_sheet_id" db:"item_sheet_id"`
	ItemVersionName string `json:"item_version_name" db:"item_version_name"`
	PurchaseCount   int64  `json:"purchase_count" db:"purchase_count"`
}

// PlayerPurchases counts the purchases made by a player.
type PlayerPurchases struct {
	PlayerID      int64  `json:"player_id" db:"player_id"`
	EmailAccount  string `json:"email_account" db:"email_account"`
	PurchaseCount int64  `json:"purchase_count" db:"purchase_count"`
}

// ItemWithType is an item joined with its type name.
type ItemWithType struct {
	Item
	ItemTypeName string `json:"item_type_name" db:"item_type_name"`
}

// Totals are the headline counters shown on the admin dashboard.
type Totals struct {
	Players      int64 `json:"total_players" db:"total_players"`
	Items        int64 `json:"total_items" db:"total_items"`
	Revenue      int64 `json:"total_revenue" db:"total_revenue"`
	PlaySessions int64 `json:"total_play_sessions" db:"total_play_sessions"`
	Transactions int64 `json:"total_transactions" db:"total_transactions"`
}
