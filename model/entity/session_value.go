package entity

import (
	"time"

	"gorm.io/datatypes"
)

// SessionValue is one JSON-serialized session key ("cart", "wishlist",
// "deliveryAddress", "checkoutData", "token", "user"). No versioning or
// migration strategy: payloads are rewritten wholesale on every mutation.
type SessionValue struct {
	ID        uint           `gorm:"column:id;primaryKey;autoIncrement"`
	Key       string         `gorm:"column:store_key;type:varchar(191);not null;uniqueIndex"`
	Value     datatypes.JSON `gorm:"column:value"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

func (SessionValue) TableName() string {
	return "storefront_session_value"
}
