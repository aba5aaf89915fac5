package store

import (
	"context"
	"encoding/json"
	"reflect"
	"testing"
)

const legacyPurchases = `[
	{"id": 1, "client_id": "3", "item_name": "كابل", "quantity": 2, "price": 150, "store_name": "A", "date": "01/06/2024", "paidByIssam": true},
	{"id": 2, "client_id": 3, "item_name": "قاطع", "quantity": 1, "price": 900, "store_name": "B", "date": "15/07/2024", "paidByIssam": false},
	{"id": 3, "clientId": "4", "itemName": "مفتاح", "quantity": 1, "price": 80, "storeName": "C", "date": "15/07/2024", "paymentStatus": "credit"}
]`

func decodeRaw(t *testing.T, data []byte) []map[string]any {
	t.Helper()
	var out []map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return out
}

func TestMigratePaidByIssam(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()
	if err := backend.Write(ctx, string(KeyPurchases), []byte(legacyPurchases)); err != nil {
		t.Fatal(err)
	}
	s := New(backend)

	ran, err := s.Migrate(ctx, Migrations)
	if err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	if len(ran) != len(Migrations) {
		t.Errorf("ran %v, want all %d migrations", ran, len(Migrations))
	}

	data, _, _ := backend.Read(ctx, string(KeyPurchases))
	got := decodeRaw(t, data)
	wantStatus := []string{"issam", "customer", "credit"}
	for i, r := range got {
		if _, ok := r["paidByIssam"]; ok {
			t.Errorf("record %d still has paidByIssam", i)
		}
		if r["paymentStatus"] != wantStatus[i] {
			t.Errorf("record %d paymentStatus = %v, want %s", i, r["paymentStatus"], wantStatus[i])
		}
		if _, ok := r["client_id"]; ok {
			t.Errorf("record %d still has client_id", i)
		}
		if r["clientId"] == nil || r["itemName"] == nil {
			t.Errorf("record %d missing camelCase fields: %v", i, r)
		}
	}

	version, err := s.SchemaVersion(ctx)
	if err != nil || version != 3 {
		t.Errorf("SchemaVersion = %d, %v; want 3", version, err)
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	ctx := context.Background()

	once := NewMemoryBackend()
	_ = once.Write(ctx, string(KeyPurchases), []byte(legacyPurchases))
	if _, err := New(once).Migrate(ctx, Migrations); err != nil {
		t.Fatal(err)
	}
	afterOnce, _, _ := once.Read(ctx, string(KeyPurchases))

	ran, err := New(once).Migrate(ctx, Migrations)
	if err != nil {
		t.Fatal(err)
	}
	if len(ran) != 0 {
		t.Errorf("second Migrate ran %v, want nothing", ran)
	}
	afterTwice, _, _ := once.Read(ctx, string(KeyPurchases))
	if !reflect.DeepEqual(decodeRaw(t, afterOnce), decodeRaw(t, afterTwice)) {
		t.Errorf("collection changed on second run")
	}

	// Each step on its own is idempotent too, even without the marker.
	for _, m := range Migrations {
		records, _ := Load[Record](ctx, New(once), m.Key)
		if _, changed := m.Apply(records); changed {
			t.Errorf("migration %s changed already migrated data", m.Name)
		}
	}
}

func TestMigrateLeavesUnreadableCollectionAlone(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()
	_ = backend.Write(ctx, string(KeyPurchases), []byte(`{broken`))

	if _, err := New(backend).Migrate(ctx, Migrations); err != nil {
		t.Fatal(err)
	}
	data, _, _ := backend.Read(ctx, string(KeyPurchases))
	if string(data) != `{broken` {
		t.Errorf("unreadable collection was overwritten with %q", data)
	}
}

func TestRenameFieldsPrefersNewKey(t *testing.T) {
	apply := renameFields(map[string]string{"work_days": "workDays"})
	records := []Record{{
		"work_days": json.RawMessage(`3`),
		"workDays":  json.RawMessage(`5`),
	}}
	out, changed := apply(records)
	if !changed {
		t.Fatal("expected change")
	}
	if string(out[0]["workDays"]) != "5" {
		t.Errorf("workDays = %s, want 5", out[0]["workDays"])
	}
	if _, ok := out[0]["work_days"]; ok {
		t.Error("legacy key kept")
	}
}
