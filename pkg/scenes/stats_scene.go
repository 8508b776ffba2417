package scenes

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/statspanel/pkg/components"
	"github.com/decker502/statspanel/pkg/config"
	"github.com/decker502/statspanel/pkg/ecs"
	"github.com/decker502/statspanel/pkg/game"
	"github.com/decker502/statspanel/pkg/systems"
	"github.com/decker502/statspanel/pkg/viewport"
)

// StatsScene 是"关于我们"页面场景
//
// 装配一次实体（标题、卡片、装饰线、面板状态），之后每帧按
// 固定顺序驱动各系统：滚动 -> 入场 -> 计数 -> 悬停。渲染系统
// 只读取这些系统的输出。
type StatsScene struct {
	entityManager *ecs.EntityManager
	vp            *viewport.Viewport
	settings      *game.SettingsManager
	env           game.Environment

	panelEntity ecs.EntityID

	scrollSystem   *systems.ScrollSystem
	entranceSystem *systems.EntranceSystem
	counterSystem  *systems.CounterSystem
	hoverSystem    *systems.HoverSystem
	renderSystem   *systems.RenderSystem

	disposed bool
}

// NewStatsScene 按统计配置装配场景
func NewStatsScene(cfg *config.StatsConfig, settings *game.SettingsManager, env game.Environment, fonts *systems.Fonts) *StatsScene {
	em := ecs.NewEntityManager()
	vp := &viewport.Viewport{
		Height:        float64(config.WindowHeight),
		ContentHeight: config.PageContentHeight,
	}

	scene := &StatsScene{
		entityManager: em,
		vp:            vp,
		settings:      settings,
		env:           env,
	}
	scene.assembleEntities(cfg)

	// 页面锚点：S 键 / 深链接跳到 stats 区块顶部
	anchors := map[string]float64{"stats": config.SectionTop}

	locale := "en"
	if settings != nil {
		locale = settings.GetSettings().Locale
	}

	scene.scrollSystem = systems.NewScrollSystem(vp, anchors)
	// 装饰线组以卡片网格为触发区域（70% 阈值），不以装饰线自身的 y 为准
	scene.entranceSystem = systems.NewEntranceSystem(em, vp, env, scene.panelEntity,
		config.TitleTop, config.GridTop, config.GridTop)
	scene.counterSystem = systems.NewCounterSystem(em, env, locale)
	scene.hoverSystem = systems.NewHoverSystem(em, vp, env, scene.panelEntity)
	scene.renderSystem = systems.NewRenderSystem(em, vp, env, fonts)

	log.Printf("[Scene] StatsScene assembled: %d stats, locale=%s", len(cfg.Stats), locale)
	return scene
}

// assembleEntities 把配置展开成 ECS 实体
// 与各系统的查询约定保持一致：卡片实体同时挂计数/入场/悬停/缩放组件
func (s *StatsScene) assembleEntities(cfg *config.StatsConfig) {
	em := s.entityManager

	s.panelEntity = em.CreateEntity()
	ecs.AddComponent(em, s.panelEntity, components.NewPanelStateComponent())

	title := em.CreateEntity()
	ecs.AddComponent(em, title, &components.TitleComponent{
		Text:     cfg.Title,
		Subtitle: cfg.Subtitle,
	})
	ecs.AddComponent(em, title, &components.PositionComponent{X: 0, Y: config.TitleTop})
	ecs.AddComponent(em, title, components.NewEntranceComponent(
		components.GroupTitle, 0, 0, config.TitleEntranceDuration, config.TitleEntranceOffsetY))

	for i, stat := range cfg.Stats {
		x, y, w, h := config.CardRect(i, len(cfg.Stats))

		card := em.CreateEntity()
		ecs.AddComponent(em, card, &components.StatCardComponent{
			Index:        i,
			Value:        stat.Value,
			Suffix:       stat.Suffix,
			Label:        stat.Label,
			Icon:         stat.Icon,
			Width:        w,
			Height:       h,
			GradientFrom: stat.GradientFromColor(),
			GradientTo:   stat.GradientToColor(),
			Glow:         stat.GlowColor(),
		})
		ecs.AddComponent(em, card, &components.PositionComponent{X: x, Y: y})
		ecs.AddComponent(em, card, &components.CounterComponent{
			Target:   stat.Value,
			Suffix:   stat.Suffix,
			Duration: config.CounterDuration,
			Delay:    float64(i) * config.CounterStagger,
			// 静态回退内容：动画启动前也渲染出有意义的数字
			Display: "0" + stat.Suffix,
		})
		ecs.AddComponent(em, card, components.NewEntranceComponent(
			components.GroupCards, i, float64(i)*config.CardEntranceStagger,
			config.CardEntranceDuration, config.CardEntranceOffsetY))
		ecs.AddComponent(em, card, &components.HoverHighlightComponent{})
		ecs.AddComponent(em, card, &components.ScaleComponent{ScaleX: 1, ScaleY: 1})

		line := em.CreateEntity()
		ecs.AddComponent(em, line, &components.AccentLineComponent{
			Index:       i,
			TargetWidth: w - 2*config.LineInsetX,
			Color:       stat.GlowColor(),
		})
		ecs.AddComponent(em, line, &components.PositionComponent{
			X: x + config.LineInsetX,
			Y: config.LineRegionTop(),
		})
		ecs.AddComponent(em, line, components.NewEntranceComponent(
			components.GroupLines, i, float64(i)*config.LineEntranceStagger,
			config.LineEntranceDuration, 0))
	}
}

// Update 按固定顺序驱动各系统
func (s *StatsScene) Update(deltaTime float64) {
	if s.disposed {
		return
	}

	// M 键切换减弱动效并持久化
	if inpututil.IsKeyJustPressed(ebiten.KeyM) && s.settings != nil {
		enabled := !s.settings.GetSettings().ReducedMotion
		s.settings.SetReducedMotion(enabled)
		if err := s.settings.Save(); err != nil {
			log.Printf("[Scene] Failed to save settings: %v", err)
		}
		log.Printf("[Scene] Reduced motion: %v", enabled)
	}

	s.scrollSystem.Update(deltaTime)
	s.entranceSystem.Update(deltaTime)
	s.counterSystem.Update(deltaTime)
	s.hoverSystem.Update(deltaTime)

	s.entityManager.RemoveMarkedEntities()
}

// Draw 绘制页面
func (s *StatsScene) Draw(screen *ebiten.Image) {
	if s.disposed {
		return
	}
	s.renderSystem.Draw(screen)
}

// Viewport 暴露滚动状态（测试和调试用）
func (s *StatsScene) Viewport() *viewport.Viewport {
	return s.vp
}

// Dispose 取消所有进行中的动画并释放实体
// 之后的 Update/Draw 是空操作，不会再有组件写入
func (s *StatsScene) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true

	s.entranceSystem.Dispose()
	s.counterSystem.Dispose()
	s.hoverSystem.Dispose()
	s.entityManager.Clear()

	log.Printf("[Scene] StatsScene disposed")
}
