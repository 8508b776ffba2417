package components

import "image/color"

// AccentLineComponent 卡片底部的装饰线
// 入场由 GroupLines 的 EntranceComponent 驱动，宽度随缓动展开
type AccentLineComponent struct {
	// Index 对应卡片的序号
	Index int

	// TargetWidth 完全展开时的宽度（像素）
	TargetWidth float64

	// Color 线条颜色（取卡片的光晕色）
	Color color.RGBA
}
