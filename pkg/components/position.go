package components

// PositionComponent 实体在页面世界坐标中的位置（左上角）
// 渲染时减去视口滚动偏移得到屏幕坐标
type PositionComponent struct {
	X float64
	Y float64
}
