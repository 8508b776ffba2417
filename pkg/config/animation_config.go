package config

// 入场与计数动画的时序常量
// 所有时间单位为秒，阈值为视口高度的比例（0~1）

const (
	// TitleTriggerThreshold 标题组的触发阈值（标题自身区域越过视口 80% 线）
	TitleTriggerThreshold = 0.80
	// GridTriggerThreshold 卡片组的触发阈值（卡片网格越过视口 75% 线）
	GridTriggerThreshold = 0.75
	// LineTriggerThreshold 装饰线组的触发阈值（以网格区域为准，70% 线）
	LineTriggerThreshold = 0.70

	// TitleEntranceDuration 标题入场过渡时长
	TitleEntranceDuration = 0.6
	// TitleEntranceOffsetY 标题入场前的向下偏移（像素）
	TitleEntranceOffsetY = 30.0

	// CardEntranceDuration 单张卡片入场过渡时长
	CardEntranceDuration = 0.5
	// CardEntranceStagger 相邻卡片入场的错峰间隔
	CardEntranceStagger = 0.08
	// CardEntranceOffsetY 卡片入场前的向下偏移（像素）
	CardEntranceOffsetY = 24.0

	// LineEntranceDuration 装饰线入场过渡时长（比卡片短）
	LineEntranceDuration = 0.4
	// LineEntranceStagger 装饰线错峰间隔（比卡片短）
	LineEntranceStagger = 0.04

	// CounterDuration 计数动画总时长
	CounterDuration = 1.2
	// CounterStagger 相邻计数器启动的错峰间隔
	CounterStagger = 0.08
	// CounterSettleDelay 卡片组触发后到计数启动的安定延迟
	CounterSettleDelay = 0.2
)

// 悬停高亮参数
const (
	// HoverScaleMax 悬停时图标/数字/装饰线的最大缩放
	HoverScaleMax = 1.08
	// HoverFadeRate 高亮强度的收敛速率（每秒）
	HoverFadeRate = 8.0
	// HoverGlowAlpha 高亮强度为 1 时光晕覆盖层的不透明度
	HoverGlowAlpha = 0.28
)

// 滚动手感参数
const (
	// WheelScrollSpeed 每个滚轮刻度的滚动距离（像素）
	WheelScrollSpeed = 36.0
	// KeyScrollSpeed 方向键按住时的滚动速度（像素/秒）
	KeyScrollSpeed = 420.0
)
