package systems

import (
	"fmt"

	"github.com/decker502/statspanel/pkg/components"
	"github.com/decker502/statspanel/pkg/config"
	"github.com/decker502/statspanel/pkg/ecs"
	"github.com/decker502/statspanel/pkg/viewport"
)

// stubEnv 可控的环境能力桩
// 测试用它模拟触摸设备和减弱动效的任意组合
type stubEnv struct {
	finePointer   bool
	reducedMotion bool
}

func (e *stubEnv) FinePointer() bool   { return e.finePointer }
func (e *stubEnv) ReducedMotion() bool { return e.reducedMotion }

// statSpec 测试夹具的统计记录描述
type statSpec struct {
	value  int
	suffix string
}

// panelFixture 测试用的最小面板装配
// 与 StatsScene 的实体装配保持同构，但不触碰渲染和真实输入
type panelFixture struct {
	em       *ecs.EntityManager
	vp       *viewport.Viewport
	env      *stubEnv
	panel    ecs.EntityID
	cards    []ecs.EntityID
	lines    []ecs.EntityID
	entrance *EntranceSystem
	counters *CounterSystem
	hover    *HoverSystem
}

// newPanelFixture 按给定统计记录装配面板实体和系统
func newPanelFixture(stats []statSpec) *panelFixture {
	em := ecs.NewEntityManager()
	vp := &viewport.Viewport{
		Height:        float64(config.WindowHeight),
		ContentHeight: config.PageContentHeight,
	}
	env := &stubEnv{finePointer: true}

	panel := em.CreateEntity()
	ecs.AddComponent(em, panel, components.NewPanelStateComponent())

	// 标题实体
	title := em.CreateEntity()
	ecs.AddComponent(em, title, &components.TitleComponent{Text: "测试标题"})
	ecs.AddComponent(em, title, &components.PositionComponent{X: 0, Y: config.TitleTop})
	ecs.AddComponent(em, title, components.NewEntranceComponent(
		components.GroupTitle, 0, 0, config.TitleEntranceDuration, config.TitleEntranceOffsetY))

	// 卡片与装饰线实体
	var cards, lines []ecs.EntityID
	for i, s := range stats {
		x, y, w, h := config.CardRect(i, len(stats))

		card := em.CreateEntity()
		ecs.AddComponent(em, card, &components.StatCardComponent{
			Index:  i,
			Value:  s.value,
			Suffix: s.suffix,
			Label:  fmt.Sprintf("记录%d", i),
			Icon:   "diamond",
			Width:  w,
			Height: h,
		})
		ecs.AddComponent(em, card, &components.PositionComponent{X: x, Y: y})
		ecs.AddComponent(em, card, &components.CounterComponent{
			Target:   s.value,
			Suffix:   s.suffix,
			Duration: config.CounterDuration,
			Delay:    float64(i) * config.CounterStagger,
			Display:  "0" + s.suffix,
		})
		ecs.AddComponent(em, card, components.NewEntranceComponent(
			components.GroupCards, i, float64(i)*config.CardEntranceStagger,
			config.CardEntranceDuration, config.CardEntranceOffsetY))
		ecs.AddComponent(em, card, &components.HoverHighlightComponent{})
		ecs.AddComponent(em, card, &components.ScaleComponent{ScaleX: 1, ScaleY: 1})
		cards = append(cards, card)

		line := em.CreateEntity()
		ecs.AddComponent(em, line, &components.AccentLineComponent{
			Index:       i,
			TargetWidth: w - 2*config.LineInsetX,
		})
		ecs.AddComponent(em, line, &components.PositionComponent{
			X: x + config.LineInsetX,
			Y: config.LineRegionTop(),
		})
		ecs.AddComponent(em, line, components.NewEntranceComponent(
			components.GroupLines, i, float64(i)*config.LineEntranceStagger,
			config.LineEntranceDuration, 0))
		lines = append(lines, line)
	}

	f := &panelFixture{
		em:    em,
		vp:    vp,
		env:   env,
		panel: panel,
		cards: cards,
		lines: lines,
	}
	// 装饰线组与卡片组共用网格触发区域（阈值不同）
	f.entrance = NewEntranceSystem(em, vp, env, panel, config.TitleTop, config.GridTop, config.GridTop)
	f.counters = NewCounterSystem(em, env, "en")
	f.hover = NewHoverSystem(em, vp, env, panel)
	return f
}

// counter 返回第 i 张卡片的计数组件
func (f *panelFixture) counter(i int) *components.CounterComponent {
	c, _ := ecs.GetComponent[*components.CounterComponent](f.em, f.cards[i])
	return c
}

// entranceOf 返回第 i 张卡片的入场组件
func (f *panelFixture) entranceOf(i int) *components.EntranceComponent {
	e, _ := ecs.GetComponent[*components.EntranceComponent](f.em, f.cards[i])
	return e
}

// lineEntranceOf 返回第 i 条装饰线的入场组件
func (f *panelFixture) lineEntranceOf(i int) *components.EntranceComponent {
	e, _ := ecs.GetComponent[*components.EntranceComponent](f.em, f.lines[i])
	return e
}

// panelState 返回面板运行状态
func (f *panelFixture) panelState() *components.PanelStateComponent {
	p, _ := ecs.GetComponent[*components.PanelStateComponent](f.em, f.panel)
	return p
}

// step 以固定帧间隔推进入场和计数系统 n 次
func (f *panelFixture) step(n int, dt float64) {
	for i := 0; i < n; i++ {
		f.entrance.Update(dt)
		f.counters.Update(dt)
	}
}
