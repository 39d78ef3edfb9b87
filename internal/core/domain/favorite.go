package domain

import "time"

type ItemType string

const (
	ItemTypeProduct  ItemType = "product"
	ItemTypeActivity ItemType = "activity"
)

func (t ItemType) Valid() bool {
	return t == ItemTypeProduct || t == ItemTypeActivity
}

type Favorite struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	ItemID    int64     `json:"item_id"`
	ItemType  ItemType  `json:"item_type"`
	CreatedAt time.Time `json:"created_at"`
}

// FavoriteWithItem carries the favorited product or activity; exactly one
// of Product/Activity is set depending on ItemType.
type FavoriteWithItem struct {
	Favorite
	Product  *Product  `json:"product,omitempty"`
	Activity *Activity `json:"activity,omitempty"`
}
