package components

import "image/color"

// StatCardComponent 单张统计卡片的静态数据
// 来自配置，挂载后不再变化；Index 即渲染顺序和动画错峰顺序
type StatCardComponent struct {
	// Index 卡片在网格中的序号（0 起）
	Index int

	// Value 计数动画的目标值
	Value int

	// Suffix 数字后面的字面后缀（可为空）
	Suffix string

	// Label 描述文字
	Label string

	// Icon 装饰图标名称
	Icon string

	// Width / Height 卡片尺寸
	Width  float64
	Height float64

	// 纯展示属性，不影响任何行为
	GradientFrom color.RGBA
	GradientTo   color.RGBA
	Glow         color.RGBA
}
