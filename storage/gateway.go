// Package storage bridges typed domain records and the key-value persistence
// table. Persistence here is at-most-effort: every failure is logged and
// swallowed so the rest of the system keeps operating in memory for the
// session. Callers must never depend on a write having reached the database.
package storage

import (
	"encoding/json"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Storage keys for the different data types
const (
	KeyInventory  = "inventory_data"
	KeyOrders     = "orders_data"
	KeyNavigation = "navigation_state"
)

// AllKeys lists every key the gateway manages
var AllKeys = []string{KeyInventory, KeyOrders, KeyNavigation}

// probeKey is a throwaway key used by IsAvailable
const probeKey = "__storage_test__"

// AssumedCapacity is the capacity ceiling reported by UsageInfo, mirroring the
// conservative 5MB browser local-storage estimate the dashboard displays.
// It is informational only and never used for enforcement.
const AssumedCapacity = 5 * 1024 * 1024

// KVEntry is one persisted key-value row
type KVEntry struct {
	Key   string `gorm:"primaryKey;size:255"`
	Value string
}

// TableName specifies the table name for the KVEntry model
func (KVEntry) TableName() string {
	return "kv_entries"
}

// UsageInfo describes approximate storage consumption for display purposes
type UsageInfo struct {
	Used       int64   `json:"used"`
	Available  int64   `json:"available"`
	Percentage float64 `json:"percentage"`
}

// Gateway serializes domain records to and from the key-value table
type Gateway struct {
	db *gorm.DB
}

// NewGateway creates a gateway backed by the given database
func NewGateway(db *gorm.DB) *Gateway {
	return &Gateway{db: db}
}

// Migrate creates the key-value table if it does not exist yet
func (g *Gateway) Migrate() error {
	return g.db.AutoMigrate(&KVEntry{})
}

// Save serializes value to JSON and writes it under key. Failures are logged
// and swallowed; the caller proceeds as if the write succeeded.
func (g *Gateway) Save(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("storage: failed to serialize data for key %q: %v", key, err)
		return
	}

	entry := KVEntry{Key: key, Value: string(data)}
	err = g.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&entry).Error
	if err != nil {
		log.Printf("storage: failed to save data for key %q: %v", key, err)
	}
}

// Load reads the value under key into dest. It returns false when the key is
// absent or the stored text cannot be parsed, leaving dest untouched so the
// caller's default applies.
func (g *Gateway) Load(key string, dest any) bool {
	var entry KVEntry
	if err := g.db.First(&entry, "key = ?", key).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Printf("storage: failed to load data for key %q: %v", key, err)
		}
		return false
	}

	if err := json.Unmarshal([]byte(entry.Value), dest); err != nil {
		log.Printf("storage: failed to parse data for key %q: %v", key, err)
		return false
	}
	return true
}

// Remove deletes the entry under key
func (g *Gateway) Remove(key string) {
	if err := g.db.Delete(&KVEntry{}, "key = ?", key).Error; err != nil {
		log.Printf("storage: failed to remove data for key %q: %v", key, err)
	}
}

// ClearAll deletes every known application key
func (g *Gateway) ClearAll() {
	for _, key := range AllKeys {
		g.Remove(key)
	}
}

// IsAvailable probes the store with a throwaway write and delete. A false
// result lets callers degrade to memory-only operation for the session.
func (g *Gateway) IsAvailable() bool {
	entry := KVEntry{Key: probeKey, Value: "test"}
	if err := g.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&entry).Error; err != nil {
		return false
	}
	if err := g.db.Delete(&KVEntry{}, "key = ?", probeKey).Error; err != nil {
		return false
	}
	return true
}

// GetUsageInfo reports approximate bytes used across all known keys against
// the assumed capacity ceiling
func (g *Gateway) GetUsageInfo() UsageInfo {
	var entries []KVEntry
	if err := g.db.Where("key IN ?", AllKeys).Find(&entries).Error; err != nil {
		log.Printf("storage: failed to compute usage info: %v", err)
		return UsageInfo{}
	}

	var used int64
	for _, entry := range entries {
		used += int64(len(entry.Key) + len(entry.Value))
	}

	return UsageInfo{
		Used:       used,
		Available:  AssumedCapacity,
		Percentage: float64(used) / float64(AssumedCapacity) * 100,
	}
}
