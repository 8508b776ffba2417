package components

// CounterComponent 数字计数动画的运行状态
//
// 启动后以 ease-out-quad 曲线从 0 插值到 Target：
//
//	progress = clamp(elapsed / Duration, 0, 1)
//	value    = floor(Target * (1 - (1-progress)²))
//
// Display 是对外可观察的显示文本（分组格式化 + 后缀），
// 构造时即为 "0"+后缀，动画环境不可用时也能渲染出有意义的静态内容
type CounterComponent struct {
	// Target 目标值（>= 0，配置层已做截断）
	Target int

	// Suffix 追加在数字后的字面后缀
	Suffix string

	// Duration 计数总时长（秒），<= 0 视为"立即到达"
	Duration float64

	// Delay 相对计数组启动时刻的错峰延迟（秒）
	Delay float64

	// Elapsed 从计数组启动起累计的时间（秒）
	Elapsed float64

	// Started 计数是否已启动（卡片组触发且安定延迟到期后置位）
	Started bool

	// Done 是否已到达终值，之后不再更新
	Done bool

	// Value 当前显示的整数值，单调不减且不超过 Target
	Value int

	// Display 当前显示文本（格式化数字 + 后缀）
	Display string
}
