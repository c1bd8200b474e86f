package models

import (
	"strings"
	"testing"
)

func TestTemplateItemsScan(t *testing.T) {
	t.Run("normalizes unknown priorities", func(t *testing.T) {
		raw := `[{"id":"a","title":"Cek email","priority":"urgent"},{"id":"b","title":"Rapat","priority":"low"}]`
		var items TemplateItems
		if err := items.Scan([]byte(raw)); err != nil {
			t.Fatalf("scan failed: %v", err)
		}
		if items[0].Priority != PriorityMed {
			t.Errorf("unknown priority not normalized: %q", items[0].Priority)
		}
		if items[1].Priority != PriorityLow {
			t.Errorf("valid priority rewritten: %q", items[1].Priority)
		}
	})

	t.Run("accepts string column values", func(t *testing.T) {
		var items TemplateItems
		if err := items.Scan(`[{"id":"a","title":"X","priority":"high"}]`); err != nil {
			t.Fatalf("scan failed: %v", err)
		}
		if len(items) != 1 || items[0].Priority != PriorityHigh {
			t.Errorf("unexpected items %+v", items)
		}
	})

	t.Run("nil column becomes empty list", func(t *testing.T) {
		var items TemplateItems
		if err := items.Scan(nil); err != nil {
			t.Fatalf("scan failed: %v", err)
		}
		if items == nil || len(items) != 0 {
			t.Errorf("expected empty non-nil list, got %#v", items)
		}
	})

	t.Run("rejects unsupported column types", func(t *testing.T) {
		var items TemplateItems
		if err := items.Scan(42); err == nil {
			t.Errorf("expected error for int column")
		}
	})

	t.Run("malformed json is an error", func(t *testing.T) {
		var items TemplateItems
		if err := items.Scan([]byte(`{not json`)); err == nil {
			t.Errorf("expected error for malformed payload")
		}
	})
}

func TestTemplateItemsValue(t *testing.T) {
	t.Run("nil marshals as empty array", func(t *testing.T) {
		var items TemplateItems
		v, err := items.Value()
		if err != nil {
			t.Fatalf("value failed: %v", err)
		}
		if string(v.([]byte)) != "[]" {
			t.Errorf("expected [], got %s", v)
		}
	})

	t.Run("round trip preserves order", func(t *testing.T) {
		items := TemplateItems{
			{ID: "b", Title: "Kedua", Priority: PriorityLow},
			{ID: "a", Title: "Pertama", Priority: PriorityHigh},
		}
		v, err := items.Value()
		if err != nil {
			t.Fatalf("value failed: %v", err)
		}
		var back TemplateItems
		if err := back.Scan(v); err != nil {
			t.Fatalf("scan failed: %v", err)
		}
		if back[0].ID != "b" || back[1].ID != "a" {
			t.Errorf("order lost: %+v", back)
		}
	})
}

func TestTaskItemsScan(t *testing.T) {
	t.Run("normalizes priorities and keeps done flags", func(t *testing.T) {
		raw := `[{"id":"a","title":"Cek email","done":true,"priority":""},{"id":"b","title":"Rapat","done":false,"priority":"high"}]`
		var items TaskItems
		if err := items.Scan([]byte(raw)); err != nil {
			t.Fatalf("scan failed: %v", err)
		}
		if items[0].Priority != PriorityMed || !items[0].Done {
			t.Errorf("unexpected first item %+v", items[0])
		}
		if items[1].Priority != PriorityHigh || items[1].Done {
			t.Errorf("unexpected second item %+v", items[1])
		}
	})

	t.Run("nil column becomes empty list", func(t *testing.T) {
		var items TaskItems
		if err := items.Scan(nil); err != nil {
			t.Fatalf("scan failed: %v", err)
		}
		if items == nil || len(items) != 0 {
			t.Errorf("expected empty non-nil list, got %#v", items)
		}
	})

	t.Run("rejects unsupported column types", func(t *testing.T) {
		var items TaskItems
		err := items.Scan(3.14)
		if err == nil || !strings.Contains(err.Error(), "unsupported") {
			t.Errorf("expected unsupported-type error, got %v", err)
		}
	})
}
