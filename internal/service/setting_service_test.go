package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/devfolio/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSettingServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:setting-service-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return gdb
}

func TestSettingServiceSetAndGet(t *testing.T) {
	svc := NewSettingService(setupSettingServiceTestDB(t))

	err := svc.Set(adminActor(), map[string]json.RawMessage{
		db.SettingKeySiteName: json.RawMessage(`"Jane's Portfolio"`),
	})
	if err != nil {
		t.Fatalf("set settings: %v", err)
	}

	name, err := svc.GetString(db.SettingKeySiteName)
	if err != nil {
		t.Fatalf("get site name: %v", err)
	}
	if name != "Jane's Portfolio" {
		t.Errorf("site name = %q", name)
	}

	// Upsert replaces the stored value in place.
	err = svc.Set(adminActor(), map[string]json.RawMessage{
		db.SettingKeySiteName: json.RawMessage(`"Renamed"`),
	})
	if err != nil {
		t.Fatalf("second set: %v", err)
	}
	name, err = svc.GetString(db.SettingKeySiteName)
	if err != nil {
		t.Fatalf("get after upsert: %v", err)
	}
	if name != "Renamed" {
		t.Errorf("site name after upsert = %q, want %q", name, "Renamed")
	}

	var count int64
	if err := svc.db.Model(&db.SiteSetting{}).Count(&count).Error; err != nil {
		t.Fatalf("count settings: %v", err)
	}
	if count != 1 {
		t.Errorf("setting rows = %d, want 1", count)
	}
}

func TestSettingServiceGetMissingKey(t *testing.T) {
	svc := NewSettingService(setupSettingServiceTestDB(t))

	_, ok, err := svc.Get("never-set")
	if err != nil {
		t.Fatalf("get missing key: %v", err)
	}
	if ok {
		t.Error("missing key reported as present")
	}

	value, err := svc.GetString("never-set")
	if err != nil || value != "" {
		t.Errorf("GetString(missing) = (%q, %v), want empty and nil", value, err)
	}
}

func TestSettingServiceSetRequiresAdmin(t *testing.T) {
	svc := NewSettingService(setupSettingServiceTestDB(t))

	err := svc.Set(Actor{}, map[string]json.RawMessage{"k": json.RawMessage(`"v"`)})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("set as anonymous = %v, want ErrUnauthorized", err)
	}
}

func TestSettingServiceMaintenanceEnabled(t *testing.T) {
	svc := NewSettingService(setupSettingServiceTestDB(t))

	if svc.MaintenanceEnabled() {
		t.Error("maintenance enabled with no setting stored")
	}

	err := svc.Set(adminActor(), map[string]json.RawMessage{
		db.SettingKeyMaintenanceMode: json.RawMessage(`true`),
	})
	if err != nil {
		t.Fatalf("enable maintenance: %v", err)
	}
	if !svc.MaintenanceEnabled() {
		t.Error("maintenance flag not honored")
	}

	err = svc.Set(adminActor(), map[string]json.RawMessage{
		db.SettingKeyMaintenanceMode: json.RawMessage(`false`),
	})
	if err != nil {
		t.Fatalf("disable maintenance: %v", err)
	}
	if svc.MaintenanceEnabled() {
		t.Error("maintenance still on after disabling")
	}
}
