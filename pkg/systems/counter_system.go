package systems

import (
	"math"

	"golang.org/x/text/message"

	"github.com/decker502/statspanel/pkg/components"
	"github.com/decker502/statspanel/pkg/ecs"
	"github.com/decker502/statspanel/pkg/game"
	"github.com/decker502/statspanel/pkg/utils"
)

// CounterSystem 驱动数字计数动画
//
// 每个计数器从启动时刻起独立累计时间（错峰延迟之后），
// 按 ease-out-quad 曲线插值到目标值。相邻计数器只共享启动
// 错峰，后续步进互不对齐。
//
// 显示值单调不减、落在 [0, Target] 区间，终帧精确等于 Target
// 并按区域习惯做分组格式化。
type CounterSystem struct {
	entityManager *ecs.EntityManager
	env           game.Environment
	printer       *message.Printer
	disposed      bool
}

// NewCounterSystem 创建计数系统
// locale 决定数字分组格式（来自显示设置）
func NewCounterSystem(em *ecs.EntityManager, env game.Environment, locale string) *CounterSystem {
	return &CounterSystem{
		entityManager: em,
		env:           env,
		printer:       utils.NewNumberPrinter(locale),
	}
}

// Update 推进所有已启动且未完成的计数器
func (cs *CounterSystem) Update(dt float64) {
	if cs == nil || cs.disposed {
		return
	}

	for _, id := range ecs.GetEntitiesWith1[*components.CounterComponent](cs.entityManager) {
		c, ok := ecs.GetComponent[*components.CounterComponent](cs.entityManager, id)
		if !ok || !c.Started || c.Done {
			continue
		}

		// 配置层已截断负值，这里兜底：显示值永远不为负
		if c.Target < 0 {
			c.Target = 0
		}

		// 时长非法或减弱动效：立即到达终值，不产生中间帧
		if c.Duration <= 0 || cs.env.ReducedMotion() {
			cs.resolve(c)
			continue
		}

		c.Elapsed += dt

		// 错峰延迟未到
		active := c.Elapsed - c.Delay
		if active < 0 {
			continue
		}

		progress := utils.Clamp01(active / c.Duration)
		eased := utils.EaseOutQuad(progress)
		value := int(math.Floor(float64(c.Target) * eased))

		// 浮点误差兜底：显示值单调不减
		if value < c.Value {
			value = c.Value
		}
		c.Value = value

		if progress >= 1 {
			// 终帧写入精确目标值，之后不再步进
			cs.resolve(c)
			continue
		}

		c.Display = utils.FormatGrouped(cs.printer, c.Value) + c.Suffix
	}
}

// resolve 立即到达终值
func (cs *CounterSystem) resolve(c *components.CounterComponent) {
	c.Value = c.Target
	c.Done = true
	c.Display = utils.FormatGrouped(cs.printer, c.Value) + c.Suffix
}

// Dispose 使系统失效：之后的 Update 是空操作，
// 不会再有任何对计数组件的写入
func (cs *CounterSystem) Dispose() {
	cs.disposed = true
}
