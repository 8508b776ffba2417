package systems

import (
	"testing"
)

// startCounters 直接给所有计数器启动信号（绕过入场序列）
func (f *panelFixture) startCounters() {
	for i := range f.cards {
		f.counter(i).Started = true
	}
}

// TestCounterSystem_MonotoneAndBounded 测试序列单调不减且落在 [0, Target]
func TestCounterSystem_MonotoneAndBounded(t *testing.T) {
	f := newPanelFixture([]statSpec{{500, "+"}})
	f.startCounters()

	prev := -1
	for frame := 0; frame < 120; frame++ {
		f.counters.Update(1.0 / 60.0)
		c := f.counter(0)

		if c.Value < prev {
			t.Fatalf("帧 %d: 显示值倒退 %d -> %d", frame, prev, c.Value)
		}
		if c.Value < 0 || c.Value > 500 {
			t.Fatalf("帧 %d: 显示值越界 %d", frame, c.Value)
		}
		prev = c.Value
	}

	c := f.counter(0)
	if !c.Done {
		t.Error("1.2s 动画在 2s 后应该已完成")
	}
	if c.Value != 500 {
		t.Errorf("终值应该精确等于目标: got %d", c.Value)
	}
	if c.Display != "500+" {
		t.Errorf("显示文本: got %q, want %q", c.Display, "500+")
	}
}

// TestCounterSystem_ZeroTarget 测试目标为 0 时全程显示 0
func TestCounterSystem_ZeroTarget(t *testing.T) {
	f := newPanelFixture([]statSpec{{0, ""}})
	f.startCounters()

	for frame := 0; frame < 120; frame++ {
		f.counters.Update(1.0 / 60.0)
		if v := f.counter(0).Value; v != 0 {
			t.Fatalf("帧 %d: 目标为 0 时显示值应该恒为 0, got %d", frame, v)
		}
	}

	c := f.counter(0)
	if !c.Done || c.Display != "0" {
		t.Errorf("目标为 0 应该正常完成并显示 \"0\": done=%v display=%q", c.Done, c.Display)
	}
}

// TestCounterSystem_NegativeTargetClamped 测试负目标兜底为 0，永不显示负数
func TestCounterSystem_NegativeTargetClamped(t *testing.T) {
	f := newPanelFixture([]statSpec{{10, ""}})
	// 绕过配置校验直接注入坏数据
	f.counter(0).Target = -50
	f.startCounters()

	f.step(120, 1.0/60.0)

	c := f.counter(0)
	if c.Value != 0 {
		t.Errorf("负目标应该兜底为 0: got %d", c.Value)
	}
	if c.Display != "0" {
		t.Errorf("负目标显示文本应该为 \"0\": got %q", c.Display)
	}
}

// TestCounterSystem_GroupedFormatting 测试终值的分组格式化
func TestCounterSystem_GroupedFormatting(t *testing.T) {
	f := newPanelFixture([]statSpec{{1200, "+"}})
	f.startCounters()

	f.step(150, 1.0/60.0)

	if got := f.counter(0).Display; got != "1,200+" {
		t.Errorf("分组格式化: got %q, want %q", got, "1,200+")
	}
}

// TestCounterSystem_StaggeredStarts 测试启动错峰：序号靠后的计数器落后
func TestCounterSystem_StaggeredStarts(t *testing.T) {
	f := newPanelFixture([]statSpec{{1000, ""}, {1000, ""}, {1000, ""}, {1000, ""}})
	f.startCounters()

	// 推进 0.5s：所有计数器进行中
	for frame := 0; frame < 30; frame++ {
		f.counters.Update(1.0 / 60.0)
	}

	v0 := f.counter(0).Value
	v1 := f.counter(1).Value
	v3 := f.counter(3).Value

	if !(v0 > v1 && v1 > v3) {
		t.Errorf("错峰顺序错误: v0=%d v1=%d v3=%d", v0, v1, v3)
	}
}

// TestCounterSystem_InvalidDuration 测试非法时长立即到达终值
func TestCounterSystem_InvalidDuration(t *testing.T) {
	f := newPanelFixture([]statSpec{{500, "+"}})
	f.counter(0).Duration = 0
	f.startCounters()

	f.counters.Update(1.0 / 60.0)

	c := f.counter(0)
	if !c.Done || c.Value != 500 || c.Display != "500+" {
		t.Errorf("时长 <= 0 应该立即到达终值: %+v", c)
	}
}

// TestCounterSystem_ReducedMotion 测试减弱动效：无中间帧，直接终值
func TestCounterSystem_ReducedMotion(t *testing.T) {
	f := newPanelFixture([]statSpec{{500, "+"}})
	f.env.reducedMotion = true
	f.startCounters()

	// 第一次步进即到达终值
	f.counters.Update(1.0 / 60.0)

	c := f.counter(0)
	if !c.Done || c.Display != "500+" {
		t.Errorf("减弱动效应该立即到达终值: done=%v display=%q", c.Done, c.Display)
	}
	if c.Elapsed != 0 {
		t.Errorf("减弱动效不应该产生动画帧累计: elapsed=%v", c.Elapsed)
	}
}

// TestCounterSystem_DisposeStopsWrites 测试销毁后不再有任何组件写入
func TestCounterSystem_DisposeStopsWrites(t *testing.T) {
	f := newPanelFixture([]statSpec{{500, "+"}})
	f.startCounters()

	// 推进到动画中段
	for frame := 0; frame < 30; frame++ {
		f.counters.Update(1.0 / 60.0)
	}

	c := f.counter(0)
	midValue := c.Value
	midDisplay := c.Display
	if midValue == 0 || c.Done {
		t.Fatalf("动画应该处于中段: value=%d done=%v", midValue, c.Done)
	}

	f.counters.Dispose()

	// 销毁后的任何步进都必须是空操作
	for frame := 0; frame < 120; frame++ {
		f.counters.Update(1.0 / 60.0)
	}

	if c.Value != midValue || c.Display != midDisplay {
		t.Errorf("销毁后组件被写入: value %d->%d display %q->%q",
			midValue, c.Value, midDisplay, c.Display)
	}
}

// TestCounterSystem_FullScenario 场景：触发 + 时钟推进到 t0+1200ms 后显示 "500+"
func TestCounterSystem_FullScenario(t *testing.T) {
	f := newPanelFixture([]statSpec{{500, "+"}})

	// 初始静态回退内容
	if f.counter(0).Display != "0+" {
		t.Errorf("初始显示应该为 \"0+\"（静态回退内容）: got %q", f.counter(0).Display)
	}

	// 滚动触发入场
	f.vp.ScrollTo(400)

	// 安定延迟 0.2s + 动画 1.2s，按 60fps 推进 2s 裕量
	f.step(120, 1.0/60.0)

	if got := f.counter(0).Display; got != "500+" {
		t.Errorf("场景终态显示: got %q, want %q", got, "500+")
	}
}
