package components

// ScaleComponent 存储实体级别的缩放因子
// 悬停系统根据高亮强度写入，渲染时对图标/数字/装饰线生效
//
// 触摸优先设备上悬停系统不写入（保持 1.0），
// 由此实现"事件仍然响应、视觉效果被抑制"的降级
type ScaleComponent struct {
	// ScaleX X轴缩放因子（1.0 = 原始大小）
	ScaleX float64

	// ScaleY Y轴缩放因子（1.0 = 原始大小）
	ScaleY float64
}
