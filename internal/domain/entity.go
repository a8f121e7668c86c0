package domain

// Entity is implemented by every admin-managed record. The key is assigned by
// the database on insert.
type Entity interface {
	Key() int64
	SetKey(id int64)
	// Label is the human-readable name used in audit descriptions.
	Label() string
}
