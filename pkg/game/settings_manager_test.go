package game

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// openTestGdata 在临时目录中创建 gdata manager
func openTestGdata(t *testing.T) *gdata.Manager {
	t.Helper()

	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("XDG_DATA_HOME", tempDir)

	m, err := gdata.Open(gdata.Config{
		AppName: "invaders_test_settings",
	})
	if err != nil {
		t.Skipf("gdata unavailable in this environment: %v", err)
	}
	return m
}

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings.SoundVolume != 0.8 {
		t.Errorf("SoundVolume: got %v, want 0.8", settings.SoundVolume)
	}
	if !settings.SoundEnabled {
		t.Error("SoundEnabled: got false, want true")
	}
	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm := NewSettingsManager(nil)

	if sm.IsPersistent() {
		t.Error("IsPersistent() should be false without gdata")
	}
	if *sm.GetSettings() != *DefaultSettings() {
		t.Errorf("Expected default settings, got %+v", sm.GetSettings())
	}

	// 降级模式下修改只保存在内存中
	sm.SetSoundEnabled(false)
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should not fail: %v", err)
	}
	if sm.GetSettings().SoundEnabled {
		t.Error("In-memory change should be kept after Save()")
	}

	// Load 在降级模式下重置为默认值
	if err := sm.Load(); err != nil {
		t.Errorf("Load() in degraded mode should not fail: %v", err)
	}
	if !sm.GetSettings().SoundEnabled {
		t.Error("Load() in degraded mode should reset to defaults")
	}
}

// TestSettingsLoadSave 测试设置的持久化
func TestSettingsLoadSave(t *testing.T) {
	m := openTestGdata(t)

	sm1 := NewSettingsManager(m)
	sm1.SetSoundVolume(0.25)
	sm1.SetSoundEnabled(false)
	sm1.SetFullscreen(true)
	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	sm2 := NewSettingsManager(m)
	got := sm2.GetSettings()
	if got.SoundVolume != 0.25 {
		t.Errorf("SoundVolume: got %v, want 0.25", got.SoundVolume)
	}
	if got.SoundEnabled {
		t.Error("SoundEnabled: got true, want false")
	}
	if !got.Fullscreen {
		t.Error("Fullscreen: got false, want true")
	}
}

// TestSetSoundVolumeClamp 测试音量限制
func TestSetSoundVolumeClamp(t *testing.T) {
	tests := []struct {
		name   string
		volume float64
		want   float64
	}{
		{"正常值", 0.5, 0.5},
		{"下限", 0.0, 0.0},
		{"上限", 1.0, 1.0},
		{"低于下限", -0.5, 0.0},
		{"高于上限", 1.5, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm := NewSettingsManager(nil)
			sm.SetSoundVolume(tt.volume)
			if got := sm.GetSettings().SoundVolume; got != tt.want {
				t.Errorf("SoundVolume: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestToggleSound(t *testing.T) {
	sm := NewSettingsManager(nil)

	if sm.ToggleSound() {
		t.Error("First toggle should disable sound")
	}
	if sm.GetSettings().SoundEnabled {
		t.Error("SoundEnabled should be false after first toggle")
	}
	if !sm.ToggleSound() {
		t.Error("Second toggle should enable sound")
	}
}
