package game

import (
	"os"
	"testing"
)

// TestDeviceEnvironment_ReducedMotion 测试减弱动效的三种来源
func TestDeviceEnvironment_ReducedMotion(t *testing.T) {
	sm, _ := NewSettingsManager(nil)

	t.Run("默认关闭", func(t *testing.T) {
		env := NewDeviceEnvironment(sm, false)
		if env.ReducedMotion() {
			t.Error("默认不应该减弱动效")
		}
	})

	t.Run("设置开启", func(t *testing.T) {
		sm.SetReducedMotion(true)
		defer sm.SetReducedMotion(false)

		env := NewDeviceEnvironment(sm, false)
		if !env.ReducedMotion() {
			t.Error("设置开启后应该减弱动效")
		}
	})

	t.Run("命令行强制开启", func(t *testing.T) {
		env := NewDeviceEnvironment(sm, true)
		if !env.ReducedMotion() {
			t.Error("命令行开关应该强制减弱动效")
		}
	})

	t.Run("settings 为 nil 时安全", func(t *testing.T) {
		env := NewDeviceEnvironment(nil, false)
		if env.ReducedMotion() {
			t.Error("无设置管理器时默认不减弱动效")
		}
	})
}

// TestDeviceEnvironment_FinePointer 测试移动端模拟开关
func TestDeviceEnvironment_FinePointer(t *testing.T) {
	sm, _ := NewSettingsManager(nil)
	env := NewDeviceEnvironment(sm, false)

	original := os.Getenv("STATSPANEL_MOBILE_EMULATE")
	defer os.Setenv("STATSPANEL_MOBILE_EMULATE", original)

	os.Setenv("STATSPANEL_MOBILE_EMULATE", "")
	if !env.FinePointer() {
		t.Error("桌面端应该报告精确指针")
	}

	os.Setenv("STATSPANEL_MOBILE_EMULATE", "1")
	if env.FinePointer() {
		t.Error("模拟移动端时应该报告无精确指针")
	}
}
