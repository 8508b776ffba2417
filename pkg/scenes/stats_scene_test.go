package scenes

import (
	"sort"
	"testing"

	"github.com/decker502/statspanel/pkg/components"
	"github.com/decker502/statspanel/pkg/config"
	"github.com/decker502/statspanel/pkg/ecs"
)

// sceneEnv 测试用的环境能力桩
type sceneEnv struct {
	finePointer   bool
	reducedMotion bool
}

func (e *sceneEnv) FinePointer() bool   { return e.finePointer }
func (e *sceneEnv) ReducedMotion() bool { return e.reducedMotion }

func testStatsConfig() *config.StatsConfig {
	return &config.StatsConfig{
		Title:    "Trusted by the Numbers",
		Subtitle: "Years of work, measured in outcomes",
		Stats: []config.StatConfig{
			{Value: 500, Suffix: "+", Label: "Projects Delivered", Icon: "rocket"},
			{Value: 1200, Suffix: "+", Label: "Happy Clients", Icon: "users"},
			{Value: 98, Suffix: "%", Label: "Satisfaction Rate", Icon: "star"},
			{Value: 15, Suffix: "+", Label: "Industry Awards", Icon: "trophy"},
		},
	}
}

// counterDisplays 按卡片序号收集当前显示文本
func counterDisplays(s *StatsScene) []string {
	type entry struct {
		index   int
		display string
	}
	var entries []entry
	for _, id := range ecs.GetEntitiesWith2[*components.StatCardComponent, *components.CounterComponent](s.entityManager) {
		card, _ := ecs.GetComponent[*components.StatCardComponent](s.entityManager, id)
		c, _ := ecs.GetComponent[*components.CounterComponent](s.entityManager, id)
		entries = append(entries, entry{card.Index, c.Display})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].index < entries[j].index })

	displays := make([]string, len(entries))
	for i, e := range entries {
		displays[i] = e.display
	}
	return displays
}

func panelState(s *StatsScene) *components.PanelStateComponent {
	p, _ := ecs.GetComponent[*components.PanelStateComponent](s.entityManager, s.panelEntity)
	return p
}

// TestStatsScene_Assembly 测试场景装配：实体数量与静态回退内容
func TestStatsScene_Assembly(t *testing.T) {
	s := NewStatsScene(testStatsConfig(), nil, &sceneEnv{finePointer: true}, nil)

	// 面板 + 标题 + 4 卡片 + 4 装饰线
	if got := s.entityManager.EntityCount(); got != 10 {
		t.Errorf("实体数量: got %d, want 10", got)
	}

	// 动画启动前显示静态回退内容
	want := []string{"0+", "0+", "0%", "0+"}
	got := counterDisplays(s)
	if len(got) != len(want) {
		t.Fatalf("计数器数量: got %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("初始显示[%d]: got %q, want %q", i, got[i], want[i])
		}
	}
}

// TestStatsScene_NoAnimationBeforeScroll 测试未滚动时不触发任何动画
func TestStatsScene_NoAnimationBeforeScroll(t *testing.T) {
	s := NewStatsScene(testStatsConfig(), nil, &sceneEnv{finePointer: true}, nil)

	for frame := 0; frame < 60; frame++ {
		s.Update(1.0 / 60.0)
	}

	if panelState(s).HasEntranceFired {
		t.Error("视口停在页面顶部时不应该触发入场")
	}
	if got := counterDisplays(s)[0]; got != "0+" {
		t.Errorf("未触发时显示应该保持静态回退内容: got %q", got)
	}
}

// TestStatsScene_FullPlayback 场景：滚动触发后完整播放到终态
func TestStatsScene_FullPlayback(t *testing.T) {
	s := NewStatsScene(testStatsConfig(), nil, &sceneEnv{finePointer: true}, nil)

	// 滚动到卡片网格越过 75% 触发线
	s.Viewport().ScrollTo(400)

	// 安定延迟 0.2s + 计数 1.2s + 错峰 0.24s，推进 2.5s 裕量
	for frame := 0; frame < 150; frame++ {
		s.Update(1.0 / 60.0)
	}

	if !panelState(s).HasEntranceFired {
		t.Error("卡片组触发后 HasEntranceFired 应该置位")
	}

	want := []string{"500+", "1,200+", "98%", "15+"}
	got := counterDisplays(s)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("终态显示[%d]: got %q, want %q", i, got[i], want[i])
		}
	}

	// 装饰线组以网格为触发区域，本场景下同样完整入场
	lineIDs := ecs.GetEntitiesWith2[*components.AccentLineComponent, *components.EntranceComponent](s.entityManager)
	if len(lineIDs) != 4 {
		t.Fatalf("装饰线实体数量: got %d, want 4", len(lineIDs))
	}
	for _, id := range lineIDs {
		e, _ := ecs.GetComponent[*components.EntranceComponent](s.entityManager, id)
		if !e.Triggered || e.Opacity < 0.999 {
			t.Errorf("装饰线应该到达静止态: triggered=%v opacity=%v", e.Triggered, e.Opacity)
		}
	}
}

// TestStatsScene_ReducedMotionPlayback 测试减弱动效下直接呈现终值
func TestStatsScene_ReducedMotionPlayback(t *testing.T) {
	s := NewStatsScene(testStatsConfig(), nil, &sceneEnv{finePointer: true, reducedMotion: true}, nil)

	s.Viewport().ScrollTo(400)

	// 安定延迟照常存在，0.5s 裕量足够
	for frame := 0; frame < 30; frame++ {
		s.Update(1.0 / 60.0)
	}

	want := []string{"500+", "1,200+", "98%", "15+"}
	got := counterDisplays(s)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("减弱动效终态显示[%d]: got %q, want %q", i, got[i], want[i])
		}
	}
}

// TestStatsScene_Dispose 测试销毁：实体释放、后续 Update 空操作、重复销毁安全
func TestStatsScene_Dispose(t *testing.T) {
	s := NewStatsScene(testStatsConfig(), nil, &sceneEnv{finePointer: true}, nil)

	s.Viewport().ScrollTo(400)
	for frame := 0; frame < 30; frame++ {
		s.Update(1.0 / 60.0)
	}

	s.Dispose()

	if got := s.entityManager.EntityCount(); got != 0 {
		t.Errorf("销毁后实体应该全部释放: got %d", got)
	}

	// 销毁后的 Update 是空操作，不会 panic
	s.Update(1.0 / 60.0)
	s.Dispose()
}
