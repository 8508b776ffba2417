package game

import (
	"github.com/decker502/statspanel/pkg/utils"
)

// Environment 提供呈现能力查询
//
// 悬停/入场/计数系统通过它读取环境，而不是各自去摸平台 API，
// 测试可以注入任意组合来确定性地模拟触摸设备和减弱动效偏好。
type Environment interface {
	// FinePointer 是否存在精确指针（鼠标）
	// false 表示触摸优先设备：悬停事件仍会派发，但缩放/浮起视觉被抑制
	FinePointer() bool

	// ReducedMotion 是否偏好减弱动效
	// true 时所有过渡动画禁用，内容直接呈现最终状态
	ReducedMotion() bool
}

// DeviceEnvironment 基于真实平台和显示设置的环境实现
type DeviceEnvironment struct {
	settings *SettingsManager
	// forceReducedMotion 命令行开关，优先于持久化设置
	forceReducedMotion bool
}

// NewDeviceEnvironment 创建真实设备环境
// forceReducedMotion 为 true 时忽略设置中的取值（用于 --reduced-motion 启动参数）
func NewDeviceEnvironment(settings *SettingsManager, forceReducedMotion bool) *DeviceEnvironment {
	return &DeviceEnvironment{
		settings:           settings,
		forceReducedMotion: forceReducedMotion,
	}
}

// FinePointer 桌面端为 true，移动端构建或模拟移动端时为 false
func (e *DeviceEnvironment) FinePointer() bool {
	return !utils.IsMobile()
}

// ReducedMotion 读取命令行开关或持久化设置
func (e *DeviceEnvironment) ReducedMotion() bool {
	if e.forceReducedMotion {
		return true
	}
	if e.settings == nil {
		return false
	}
	return e.settings.GetSettings().ReducedMotion
}
