package components

// EntranceGroup 标识入场动画分组
// 三个分组各自拥有独立的视口触发器和阈值
type EntranceGroup int

const (
	// GroupTitle 标题组（阈值 80%）
	GroupTitle EntranceGroup = iota
	// GroupCards 卡片组（阈值 75%，首次触发同时安排计数启动）
	GroupCards
	// GroupLines 装饰线组（阈值 70%）
	GroupLines
)

// EntranceComponent 单个实体的入场过渡状态
// 触发前处于隐藏态（Opacity=0、向下偏移），触发后按错峰延迟过渡到静止态
type EntranceComponent struct {
	// Group 所属分组
	Group EntranceGroup

	// Index 组内序号，决定错峰顺序
	Index int

	// Delay 相对分组触发时刻的错峰延迟（秒）
	Delay float64

	// Duration 过渡时长（秒）
	Duration float64

	// HiddenOffsetY 隐藏态的向下偏移（像素）
	HiddenOffsetY float64

	// Triggered 分组是否已触发（触发后开始累计 Elapsed）
	Triggered bool

	// Elapsed 触发后累计的时间（秒）
	Elapsed float64

	// Opacity 当前不透明度 0~1（渲染直接使用）
	Opacity float64

	// OffsetY 当前垂直偏移（像素，渲染直接使用）
	OffsetY float64
}

// NewEntranceComponent 创建处于隐藏态的入场组件
func NewEntranceComponent(group EntranceGroup, index int, delay, duration, hiddenOffsetY float64) *EntranceComponent {
	return &EntranceComponent{
		Group:         group,
		Index:         index,
		Delay:         delay,
		Duration:      duration,
		HiddenOffsetY: hiddenOffsetY,
		Opacity:       0,
		OffsetY:       hiddenOffsetY,
	}
}
