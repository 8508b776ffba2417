package components

// PanelStateComponent 面板实例的运行状态
// 每次挂载创建一份，卸载即销毁，不跨实例共享
type PanelStateComponent struct {
	// HasEntranceFired 卡片组触发一次后锁存为 true
	// 保证入场/计数序列每次挂载最多运行一次，反复滚动进出视口不会重触发
	HasEntranceFired bool

	// HoveredIndex 当前悬停的卡片序号，-1 表示无悬停
	// 同一时刻最多一张卡片处于悬停态
	HoveredIndex int
}

// NewPanelStateComponent 创建初始运行状态（未触发、无悬停）
func NewPanelStateComponent() *PanelStateComponent {
	return &PanelStateComponent{
		HasEntranceFired: false,
		HoveredIndex:     -1,
	}
}
