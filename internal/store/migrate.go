package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Record is one stored object in raw form, as migrations see it.
type Record map[string]json.RawMessage

// Migration rewrites the raw records of one collection. Apply reports
// whether anything changed and must be idempotent.
type Migration struct {
	Version int
	Name    string
	Key     Key
	Apply   func(records []Record) ([]Record, bool)
}

// Migrations is the schema history, oldest first.
var Migrations = []Migration{
	{
		Version: 1,
		Name:    "payment-status",
		Key:     KeyPurchases,
		Apply:   migratePaidByIssam,
	},
	{
		Version: 2,
		Name:    "purchase-camel-case-fields",
		Key:     KeyPurchases,
		Apply: renameFields(map[string]string{
			"client_id":  "clientId",
			"item_name":  "itemName",
			"store_name": "storeName",
		}),
	},
	{
		Version: 3,
		Name:    "employee-camel-case-fields",
		Key:     KeyEmployees,
		Apply: renameFields(map[string]string{
			"daily_wage": "dailyWage",
			"work_days":  "workDays",
			"is_paid":    "isPaid",
		}),
	},
}

type schemaMarker struct {
	Version   int       `json:"version"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SchemaVersion returns the recorded schema version, 0 if none is recorded.
func (s *Store) SchemaVersion(ctx context.Context) (int, error) {
	data, found, err := s.backend.Read(ctx, string(keySchemaVersion))
	if err != nil {
		return 0, storageError("Read", keySchemaVersion, err)
	}
	if !found {
		return 0, nil
	}
	var marker schemaMarker
	if err := json.Unmarshal(data, &marker); err != nil {
		s.log.Warn().Err(err).Msg("Schema version marker unreadable, assuming version 0")
		return 0, nil
	}
	return marker.Version, nil
}

// Migrate runs every migration newer than the recorded schema version, in
// order, saving each changed collection once and then recording the new
// version. It returns the names of the migrations that ran.
func (s *Store) Migrate(ctx context.Context, migrations []Migration) ([]string, error) {
	current, err := s.SchemaVersion(ctx)
	if err != nil {
		return nil, err
	}

	var (
		ran     []string
		latest  = current
		pending = map[Key][]Record{}
		dirty   = map[Key]bool{}
		order   []Key
	)
	for _, m := range migrations {
		if m.Version <= current {
			continue
		}
		records, ok := pending[m.Key]
		if !ok {
			records, err = s.loadRecords(ctx, m.Key)
			if err != nil {
				return nil, err
			}
			order = append(order, m.Key)
		}
		next, changed := m.Apply(records)
		pending[m.Key] = next
		if changed {
			dirty[m.Key] = true
			s.log.Info().
				Int("version", m.Version).
				Str("migration", m.Name).
				Str("collection", string(m.Key)).
				Msg("Migrated collection")
		}
		ran = append(ran, m.Name)
		if m.Version > latest {
			latest = m.Version
		}
	}

	for _, key := range order {
		if !dirty[key] {
			continue
		}
		if err := Save(ctx, s, key, pending[key]); err != nil {
			return nil, err
		}
	}

	if latest != current {
		data, err := json.Marshal(schemaMarker{Version: latest, UpdatedAt: time.Now().UTC()})
		if err != nil {
			return nil, storageError("Encode", keySchemaVersion, err)
		}
		if err := s.backend.Write(ctx, string(keySchemaVersion), data); err != nil {
			return nil, storageError("Write", keySchemaVersion, err)
		}
		s.log.Info().Int("from", current).Int("to", latest).Msg("Schema upgraded")
	}
	return ran, nil
}

func (s *Store) loadRecords(ctx context.Context, key Key) ([]Record, error) {
	records, err := Load[Record](ctx, s, key)
	if err != nil {
		return nil, fmt.Errorf("load %s for migration: %w", key, err)
	}
	return records, nil
}

// migratePaidByIssam replaces the legacy boolean paidByIssam with
// paymentStatus on records that do not have one yet.
func migratePaidByIssam(records []Record) ([]Record, bool) {
	changed := false
	for _, r := range records {
		if r == nil {
			continue
		}
		legacy, hasLegacy := r["paidByIssam"]
		if !hasLegacy {
			continue
		}
		if _, hasStatus := r["paymentStatus"]; hasStatus {
			continue
		}
		var paid bool
		_ = json.Unmarshal(legacy, &paid)
		status := `"customer"`
		if paid {
			status = `"issam"`
		}
		r["paymentStatus"] = json.RawMessage(status)
		delete(r, "paidByIssam")
		changed = true
	}
	return records, changed
}

// renameFields moves legacy keys to their new names. When both are present
// the new key keeps its value and the legacy key is dropped.
func renameFields(renames map[string]string) func([]Record) ([]Record, bool) {
	return func(records []Record) ([]Record, bool) {
		changed := false
		for _, r := range records {
			if r == nil {
				continue
			}
			for from, to := range renames {
				v, ok := r[from]
				if !ok {
					continue
				}
				if _, exists := r[to]; !exists {
					r[to] = v
				}
				delete(r, from)
				changed = true
			}
		}
		return records, changed
	}
}
