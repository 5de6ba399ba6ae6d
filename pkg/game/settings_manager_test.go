package game

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"

	"github.com/gonewx/glyphfield/pkg/config"
)

// openTestGdata 在临时 HOME 下打开 gdata
func openTestGdata(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return manager
}

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
	if settings.WindowWidth != config.DefaultWindowWidth || settings.WindowHeight != config.DefaultWindowHeight {
		t.Errorf("Window size: got %dx%d, want %dx%d",
			settings.WindowWidth, settings.WindowHeight, config.DefaultWindowWidth, config.DefaultWindowHeight)
	}
	if settings.ShowStats {
		t.Error("ShowStats: got true, want false")
	}
	if settings.LinkGrid {
		t.Error("LinkGrid: got true, want false")
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm := NewSettingsManager(nil)

	if sm.GetSettings() == nil {
		t.Fatal("GetSettings() returned nil in degraded mode")
	}

	sm.SetShowStats(true)
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should not fail: %v", err)
	}
}

// TestSettingsLoadSave 测试 Load() 和 Save() 功能
func TestSettingsLoadSave(t *testing.T) {
	gdataManager := openTestGdata(t, "test_glyphfield_settings")

	sm1 := NewSettingsManager(gdataManager)
	sm1.SetFullscreen(true)
	sm1.SetWindowSize(1280, 720)
	sm1.SetShowStats(true)
	sm1.SetLinkGrid(true)

	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	sm2 := NewSettingsManager(gdataManager)
	settings := sm2.GetSettings()

	if !settings.Fullscreen {
		t.Error("Loaded Fullscreen: got false, want true")
	}
	if settings.WindowWidth != 1280 || settings.WindowHeight != 720 {
		t.Errorf("Loaded window size: got %dx%d, want 1280x720", settings.WindowWidth, settings.WindowHeight)
	}
	if !settings.ShowStats {
		t.Error("Loaded ShowStats: got false, want true")
	}
	if !settings.LinkGrid {
		t.Error("Loaded LinkGrid: got false, want true")
	}
}

// TestSettingsLoadPartial 旧版本缺失字段时保留默认值
func TestSettingsLoadPartial(t *testing.T) {
	gdataManager := openTestGdata(t, "test_glyphfield_partial")

	if err := gdataManager.SaveObjectProp(settingsObject, settingsProperty, []byte("showStats: true\n")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	settings := NewSettingsManager(gdataManager).GetSettings()
	if !settings.ShowStats {
		t.Error("ShowStats: got false, want true")
	}
	if settings.WindowWidth != config.DefaultWindowWidth {
		t.Errorf("WindowWidth: got %d, want default %d", settings.WindowWidth, config.DefaultWindowWidth)
	}
}

// TestSettingsLoadCorrupt 数据损坏时回退到默认设置
func TestSettingsLoadCorrupt(t *testing.T) {
	gdataManager := openTestGdata(t, "test_glyphfield_corrupt")

	if err := gdataManager.SaveObjectProp(settingsObject, settingsProperty, []byte("showStats: [unclosed")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	sm := &SettingsManager{gdataManager: gdataManager, settings: DefaultSettings()}
	if err := sm.Load(); err == nil {
		t.Error("expected an unmarshal error")
	}
	if *sm.GetSettings() != *DefaultSettings() {
		t.Errorf("expected defaults after a failed load, got %+v", sm.GetSettings())
	}
}

func TestSetWindowSizeIgnoresInvalid(t *testing.T) {
	sm := NewSettingsManager(nil)

	tests := []struct {
		width, height int
		wantW, wantH  int
	}{
		{800, 600, 800, 600},
		{0, 600, 800, 600},
		{800, -1, 800, 600},
		{1920, 1080, 1920, 1080},
	}

	for _, tt := range tests {
		sm.SetWindowSize(tt.width, tt.height)
		s := sm.GetSettings()
		if s.WindowWidth != tt.wantW || s.WindowHeight != tt.wantH {
			t.Errorf("SetWindowSize(%d, %d): got %dx%d, want %dx%d",
				tt.width, tt.height, s.WindowWidth, s.WindowHeight, tt.wantW, tt.wantH)
		}
	}
}
