package systems

import (
	"github.com/decker502/statspanel/pkg/components"
	"github.com/decker502/statspanel/pkg/config"
	"github.com/decker502/statspanel/pkg/ecs"
	"github.com/decker502/statspanel/pkg/game"
	"github.com/decker502/statspanel/pkg/utils"
	"github.com/decker502/statspanel/pkg/viewport"
)

// HoverSystem 维护互斥的悬停状态并推导高亮强度
//
// 同一时刻最多一张卡片处于悬停态。指针事件在所有设备上都会
// 更新 HoveredIndex，触摸优先设备上的缩放视觉由这里通过
// ScaleComponent 抑制（保持 1.0），事件本身不被屏蔽。
//
// 悬停状态只产生视觉强调，永远不会触碰计数组件。
type HoverSystem struct {
	entityManager *ecs.EntityManager
	vp            *viewport.Viewport
	env           game.Environment
	panelEntity   ecs.EntityID

	// pointerFn 指针状态来源，测试注入模拟指针
	pointerFn func() utils.PointerState

	disposed bool
}

// NewHoverSystem 创建悬停系统
func NewHoverSystem(em *ecs.EntityManager, vp *viewport.Viewport, env game.Environment, panelEntity ecs.EntityID) *HoverSystem {
	return &HoverSystem{
		entityManager: em,
		vp:            vp,
		env:           env,
		panelEntity:   panelEntity,
		pointerFn:     utils.GetPointerState,
	}
}

// SetPointerProvider 替换指针状态来源（测试用）
func (hs *HoverSystem) SetPointerProvider(fn func() utils.PointerState) {
	if fn != nil {
		hs.pointerFn = fn
	}
}

// Update 命中检测并推进高亮过渡
func (hs *HoverSystem) Update(dt float64) {
	if hs == nil || hs.disposed {
		return
	}

	panel, ok := ecs.GetComponent[*components.PanelStateComponent](hs.entityManager, hs.panelEntity)
	if !ok {
		return
	}

	pointer := hs.pointerFn()

	// 命中检测：指针落在哪张卡片上（屏幕坐标）
	hovered := -1
	for _, id := range ecs.GetEntitiesWith2[*components.StatCardComponent, *components.PositionComponent](hs.entityManager) {
		card, _ := ecs.GetComponent[*components.StatCardComponent](hs.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](hs.entityManager, id)

		screenX := pos.X
		screenY := pos.Y - hs.vp.OffsetY

		px, py := float64(pointer.X), float64(pointer.Y)
		if px >= screenX && px < screenX+card.Width && py >= screenY && py < screenY+card.Height {
			hovered = card.Index
			break
		}
	}

	// 互斥语义：整体赋值，不存在两张卡片同时悬停的中间状态
	panel.HoveredIndex = hovered

	// 缩放/浮起视觉只在精确指针且未减弱动效时生效
	allowTransform := hs.env.FinePointer() && !hs.env.ReducedMotion()

	for _, id := range ecs.GetEntitiesWith2[*components.StatCardComponent, *components.HoverHighlightComponent](hs.entityManager) {
		card, _ := ecs.GetComponent[*components.StatCardComponent](hs.entityManager, id)
		highlight, _ := ecs.GetComponent[*components.HoverHighlightComponent](hs.entityManager, id)

		target := 0.0
		if card.Index == hovered {
			target = 1.0
		}

		if hs.env.ReducedMotion() {
			// 无过渡，直接到目标强度
			highlight.Intensity = target
		} else {
			highlight.Intensity = utils.Approach(highlight.Intensity, target, dt, config.HoverFadeRate)
		}
		highlight.IsActive = highlight.Intensity > 0.001

		if scale, ok := ecs.GetComponent[*components.ScaleComponent](hs.entityManager, id); ok {
			s := 1.0
			if allowTransform {
				s = 1 + (config.HoverScaleMax-1)*highlight.Intensity
			}
			scale.ScaleX = s
			scale.ScaleY = s
		}
	}
}

// Dispose 使系统失效：之后的 Update 是空操作
func (hs *HoverSystem) Dispose() {
	hs.disposed = true
}
