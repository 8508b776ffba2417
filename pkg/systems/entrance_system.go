package systems

import (
	"log"

	"github.com/decker502/statspanel/pkg/components"
	"github.com/decker502/statspanel/pkg/config"
	"github.com/decker502/statspanel/pkg/ecs"
	"github.com/decker502/statspanel/pkg/game"
	"github.com/decker502/statspanel/pkg/utils"
	"github.com/decker502/statspanel/pkg/viewport"
)

// EntranceSystem 编排三个分组的入场顺序和时序
//
// 标题 / 卡片 / 装饰线各自拥有独立的一次性视口触发器
// （阈值分别为视口高度的 80% / 75% / 70%），触发后组内成员
// 按错峰延迟依次从隐藏态过渡到静止态。
//
// 卡片组的首次触发额外锁存 HasEntranceFired 并启动安定延迟计时，
// 延迟到期后启动所有计数器，整个序列每次挂载最多运行一次。
type EntranceSystem struct {
	entityManager *ecs.EntityManager
	vp            *viewport.Viewport
	env           game.Environment
	panelEntity   ecs.EntityID

	titleTrigger *viewport.Trigger
	gridTrigger  *viewport.Trigger
	lineTrigger  *viewport.Trigger

	// 安定延迟计时（卡片组首次触发后启动计数前的等待）
	settleArmed   bool
	settleElapsed float64

	// counterStartCount 计数启动被安排的次数，必须恒 <= 1
	counterStartCount int

	disposed bool
}

// NewEntranceSystem 创建入场动画系统
// titleTop / gridTop / lineTop 为三个触发区域顶部的世界坐标；
// 装饰线组以卡片网格为触发区域，调用方应将 lineTop 传为网格顶部
func NewEntranceSystem(em *ecs.EntityManager, vp *viewport.Viewport, env game.Environment, panelEntity ecs.EntityID, titleTop, gridTop, lineTop float64) *EntranceSystem {
	return &EntranceSystem{
		entityManager: em,
		vp:            vp,
		env:           env,
		panelEntity:   panelEntity,
		titleTrigger:  &viewport.Trigger{RegionTop: titleTop, Threshold: config.TitleTriggerThreshold, Once: true},
		gridTrigger:   &viewport.Trigger{RegionTop: gridTop, Threshold: config.GridTriggerThreshold, Once: true},
		lineTrigger:   &viewport.Trigger{RegionTop: lineTop, Threshold: config.LineTriggerThreshold, Once: true},
	}
}

// Update 检查触发器并推进所有已触发成员的过渡
func (es *EntranceSystem) Update(dt float64) {
	if es == nil || es.disposed {
		return
	}

	// 三个触发器相互独立，按各自阈值判定
	if es.titleTrigger.Check(es.vp) {
		log.Printf("[EntranceSystem] Title group triggered")
		es.beginGroup(components.GroupTitle)
	}

	if es.gridTrigger.Check(es.vp) {
		log.Printf("[EntranceSystem] Card group triggered")
		es.beginGroup(components.GroupCards)

		// 首次触发锁存，并武装安定延迟
		// 锁存已置位时这里是空操作：计数启动永远不会被安排第二次
		if panel, ok := ecs.GetComponent[*components.PanelStateComponent](es.entityManager, es.panelEntity); ok {
			if !panel.HasEntranceFired {
				panel.HasEntranceFired = true
				es.settleArmed = true
				es.settleElapsed = 0
				log.Printf("[EntranceSystem] Entrance latched, counters armed (settle %.0fms)", config.CounterSettleDelay*1000)
			}
		}
	}

	if es.lineTrigger.Check(es.vp) {
		log.Printf("[EntranceSystem] Accent line group triggered")
		es.beginGroup(components.GroupLines)
	}

	// 安定延迟到期后启动计数
	if es.settleArmed {
		es.settleElapsed += dt
		if es.settleElapsed >= config.CounterSettleDelay {
			es.settleArmed = false
			es.startCounters()
		}
	}

	es.advance(dt)
}

// beginGroup 让分组内所有成员进入已触发状态
// 减弱动效时成员直接跳到静止态，不产生中间帧
func (es *EntranceSystem) beginGroup(group components.EntranceGroup) {
	reduced := es.env.ReducedMotion()

	for _, id := range ecs.GetEntitiesWith1[*components.EntranceComponent](es.entityManager) {
		e, ok := ecs.GetComponent[*components.EntranceComponent](es.entityManager, id)
		if !ok || e.Group != group || e.Triggered {
			continue
		}

		e.Triggered = true
		e.Elapsed = 0

		if reduced {
			// 直接呈现静止态
			e.Elapsed = e.Delay + e.Duration
			e.Opacity = 1
			e.OffsetY = 0
		}
	}
}

// advance 推进已触发成员的过渡曲线
func (es *EntranceSystem) advance(dt float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.EntranceComponent](es.entityManager) {
		e, ok := ecs.GetComponent[*components.EntranceComponent](es.entityManager, id)
		if !ok || !e.Triggered {
			continue
		}

		e.Elapsed += dt

		// 错峰延迟未到，保持隐藏态
		active := e.Elapsed - e.Delay
		if active < 0 {
			continue
		}

		progress := 1.0
		if e.Duration > 0 {
			progress = utils.Clamp01(active / e.Duration)
		}

		eased := utils.EaseOutQuad(progress)
		e.Opacity = eased
		e.OffsetY = e.HiddenOffsetY * (1 - eased)
	}
}

// startCounters 启动所有计数器（错峰延迟在组件构造时已按序号设置）
func (es *EntranceSystem) startCounters() {
	es.counterStartCount++
	log.Printf("[EntranceSystem] Starting counters (schedule #%d)", es.counterStartCount)

	for _, id := range ecs.GetEntitiesWith1[*components.CounterComponent](es.entityManager) {
		if c, ok := ecs.GetComponent[*components.CounterComponent](es.entityManager, id); ok {
			c.Started = true
		}
	}
}

// CounterStartCount 返回计数启动被安排的次数（用于验证一次性语义）
func (es *EntranceSystem) CounterStartCount() int {
	return es.counterStartCount
}

// Dispose 使系统失效：之后的 Update 是空操作，
// 未到期的安定延迟不会再启动计数
func (es *EntranceSystem) Dispose() {
	es.disposed = true
	es.settleArmed = false
}
