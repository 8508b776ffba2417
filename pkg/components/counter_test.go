package components

import "testing"

// TestCounterComponent_FieldInitialization 测试组件字段零值
func TestCounterComponent_FieldInitialization(t *testing.T) {
	counter := &CounterComponent{}

	if counter.Target != 0 {
		t.Errorf("Expected Target = 0, got %d", counter.Target)
	}

	if counter.Started {
		t.Error("Expected Started = false")
	}

	if counter.Done {
		t.Error("Expected Done = false")
	}

	if counter.Value != 0 {
		t.Errorf("Expected Value = 0, got %d", counter.Value)
	}

	if counter.Elapsed != 0 {
		t.Errorf("Expected Elapsed = 0, got %f", counter.Elapsed)
	}
}

// TestNewPanelStateComponent 测试面板运行状态的初始值
func TestNewPanelStateComponent(t *testing.T) {
	panel := NewPanelStateComponent()

	if panel.HasEntranceFired {
		t.Error("挂载时 HasEntranceFired 应该为 false")
	}

	if panel.HoveredIndex != -1 {
		t.Errorf("挂载时 HoveredIndex 应该为 -1（无悬停）, got %d", panel.HoveredIndex)
	}
}

// TestNewEntranceComponent 测试入场组件的隐藏态初始化
func TestNewEntranceComponent(t *testing.T) {
	e := NewEntranceComponent(GroupCards, 2, 0.16, 0.5, 24)

	if e.Opacity != 0 {
		t.Errorf("隐藏态 Opacity 应该为 0, got %v", e.Opacity)
	}

	if e.OffsetY != 24 {
		t.Errorf("隐藏态 OffsetY 应该等于 HiddenOffsetY, got %v", e.OffsetY)
	}

	if e.Triggered {
		t.Error("创建时不应该处于已触发状态")
	}

	if e.Group != GroupCards || e.Index != 2 {
		t.Errorf("分组/序号初始化错误: %+v", e)
	}
}
