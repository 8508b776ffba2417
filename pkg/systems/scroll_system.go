package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/statspanel/pkg/config"
	"github.com/decker502/statspanel/pkg/utils"
	"github.com/decker502/statspanel/pkg/viewport"
)

// ScrollSystem 将滚轮/键盘/触摸拖拽转换为视口滚动偏移
// 视口偏移是入场触发器的唯一输入信号
type ScrollSystem struct {
	vp *viewport.Viewport

	// anchors 页面锚点：标识符 -> 世界坐标（深链接跳转用）
	anchors map[string]float64

	// 触摸拖拽状态
	dragging   bool
	lastTouchY int
}

// NewScrollSystem 创建滚动系统
// anchors 提供可跳转的页面锚点（如 "stats"）
func NewScrollSystem(vp *viewport.Viewport, anchors map[string]float64) *ScrollSystem {
	return &ScrollSystem{
		vp:      vp,
		anchors: anchors,
	}
}

// Update 读取本帧输入并更新滚动偏移
func (ss *ScrollSystem) Update(dt float64) {
	// 滚轮
	_, wheelY := ebiten.Wheel()
	if wheelY != 0 {
		ss.vp.ScrollBy(-wheelY * config.WheelScrollSpeed)
	}

	// 方向键持续滚动
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		ss.vp.ScrollBy(config.KeyScrollSpeed * dt)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		ss.vp.ScrollBy(-config.KeyScrollSpeed * dt)
	}

	// 翻页键
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) {
		ss.vp.ScrollBy(ss.vp.Height)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		ss.vp.ScrollBy(-ss.vp.Height)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		ss.vp.ScrollTo(0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnd) {
		ss.vp.ScrollTo(ss.vp.MaxOffset())
	}

	// S 键跳转到 stats 锚点（模拟页面内深链接）
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		ss.JumpTo("stats")
	}

	// 触摸拖拽
	pointer := utils.GetPointerState()
	if pointer.IsTouching {
		if ss.dragging {
			ss.vp.ScrollBy(float64(ss.lastTouchY - pointer.Y))
		}
		ss.dragging = true
		ss.lastTouchY = pointer.Y
	} else {
		ss.dragging = false
	}
}

// JumpTo 跳转到命名锚点
// 未知锚点是空操作
func (ss *ScrollSystem) JumpTo(anchor string) {
	if y, ok := ss.anchors[anchor]; ok {
		ss.vp.ScrollTo(y)
	}
}
