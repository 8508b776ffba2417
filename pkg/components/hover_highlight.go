package components

// HoverHighlightComponent 悬停高亮组件
// 用于卡片被指针悬停时的持续高亮效果（不闪烁）
//
// Intensity 由悬停系统逐帧趋近目标值，渲染层据此推导
// 光晕不透明度、边框颜色和缩放，但永远不影响计数动画
type HoverHighlightComponent struct {
	// Intensity 高亮强度（0.0 - 1.0）
	// 1.0 = 最亮，0.0 = 无效果
	Intensity float64

	// IsActive 是否激活（强度大于零）
	IsActive bool
}
