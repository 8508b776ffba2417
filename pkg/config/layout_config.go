package config

// 页面布局常量
// 逻辑屏幕 800x600，页面内容高于屏幕，statistics 区块需要滚动进入视口

const (
	// WindowWidth / WindowHeight 逻辑屏幕尺寸
	WindowWidth  = 800
	WindowHeight = 600

	// HeroHeight 顶部占位区块高度（模拟 stats 区块上方的页面内容）
	HeroHeight = 520.0
	// SectionTop stats 区块顶部（锚点 "stats" 的跳转位置）
	SectionTop = HeroHeight
	// SectionHeight stats 区块高度
	SectionHeight = 460.0
	// FooterHeight 底部占位区块高度
	FooterHeight = 260.0
	// PageContentHeight 页面总高度
	PageContentHeight = HeroHeight + SectionHeight + FooterHeight
)

// stats 区块内部布局
const (
	// TitleTop 区块标题顶部
	TitleTop = SectionTop + 48.0
	// SubtitleTop 副标题顶部
	SubtitleTop = TitleTop + 46.0

	// GridTop 卡片网格顶部
	GridTop = SectionTop + 150.0
	// CardWidth / CardHeight 单张卡片尺寸
	CardWidth  = 176.0
	CardHeight = 210.0
	// CardGap 相邻卡片间距
	CardGap = 16.0

	// 卡片内部
	// IconCenterOffsetY 图标中心相对卡片顶部的偏移
	IconCenterOffsetY = 52.0
	// NumberCenterOffsetY 数字中心相对卡片顶部的偏移
	NumberCenterOffsetY = 116.0
	// LabelCenterOffsetY 标签中心相对卡片顶部的偏移
	LabelCenterOffsetY = 158.0

	// LineInsetX 装饰线相对卡片左右的内缩
	LineInsetX = 24.0
	// LineHeight 装饰线厚度
	LineHeight = 3.0
	// LineBottomInset 装饰线相对卡片底部的内缩
	LineBottomInset = 22.0
)

// GridLeft 卡片网格左边缘（按卡片数量水平居中）
func GridLeft(cardCount int) float64 {
	total := float64(cardCount)*CardWidth + float64(cardCount-1)*CardGap
	return (float64(WindowWidth) - total) / 2
}

// CardRect 计算第 index 张卡片的世界坐标矩形
func CardRect(index, cardCount int) (x, y, w, h float64) {
	x = GridLeft(cardCount) + float64(index)*(CardWidth+CardGap)
	return x, GridTop, CardWidth, CardHeight
}

// LineRegionTop 装饰线组的触发区域顶部（网格内装饰线所在的水平带）
func LineRegionTop() float64 {
	return GridTop + CardHeight - LineBottomInset - LineHeight
}
