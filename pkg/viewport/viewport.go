// Package viewport 提供可滚动页面的视口状态和区域可见性触发器
//
// 触发器是对"区域越过视口阈值线"这一判定的抽象：
// 任何能提供滚动偏移的宿主都可以驱动它，入场动画系统据此发出一次性触发。
package viewport

// Viewport 表示可滚动页面的可视窗口
// OffsetY 为页面内容相对视口顶部的滚动偏移
type Viewport struct {
	OffsetY       float64
	Height        float64
	ContentHeight float64
}

// MaxOffset 返回允许的最大滚动偏移
func (v *Viewport) MaxOffset() float64 {
	max := v.ContentHeight - v.Height
	if max < 0 {
		return 0
	}
	return max
}

// ScrollBy 按增量滚动并截断到合法区间
func (v *Viewport) ScrollBy(dy float64) {
	v.ScrollTo(v.OffsetY + dy)
}

// ScrollTo 滚动到绝对偏移并截断到合法区间
func (v *Viewport) ScrollTo(y float64) {
	if y < 0 {
		y = 0
	}
	if max := v.MaxOffset(); y > max {
		y = max
	}
	v.OffsetY = y
}

// Visible 判定世界坐标 regionTop 是否越过了视口高度 threshold 比例处的阈值线
func (v *Viewport) Visible(regionTop, threshold float64) bool {
	return regionTop-v.OffsetY <= v.Height*threshold
}

// Trigger 区域可见性触发器
// Once 为 true 时只在第一次越过阈值线时触发，之后进出视口都不再触发
type Trigger struct {
	// RegionTop 被观察区域顶部的世界坐标
	RegionTop float64
	// Threshold 视口高度的比例（0~1），区域顶部越过该线即触发
	Threshold float64
	// Once 一次性语义开关
	Once bool

	fired bool
}

// Check 根据当前视口状态判定是否触发
// 返回 true 表示本次调用产生了一次触发；Once 触发过后永远返回 false
func (t *Trigger) Check(v *Viewport) bool {
	if t.Once && t.fired {
		return false
	}
	if !v.Visible(t.RegionTop, t.Threshold) {
		return false
	}
	t.fired = true
	return true
}

// HasFired 返回触发器是否已经触发过
func (t *Trigger) HasFired() bool {
	return t.fired
}
