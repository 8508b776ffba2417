package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawIcon 绘制命名的矢量图标
// r 为图标半径（悬停缩放已折算在内），未知名称画菱形兜底
func drawIcon(dst *ebiten.Image, name string, cx, cy, r float32, clr color.RGBA, alpha float64) {
	c := withAlpha(clr, alpha)

	switch name {
	case "rocket":
		drawRocketIcon(dst, cx, cy, r, c)
	case "users":
		drawUsersIcon(dst, cx, cy, r, c)
	case "star":
		drawStarIcon(dst, cx, cy, r, c)
	case "trophy":
		drawTrophyIcon(dst, cx, cy, r, c)
	default:
		drawDiamondIcon(dst, cx, cy, r, c)
	}
}

// drawRocketIcon 机身 + 头锥 + 两片尾翼
func drawRocketIcon(dst *ebiten.Image, cx, cy, r float32, c color.RGBA) {
	vector.DrawFilledRect(dst, cx-r*0.25, cy-r*0.6, r*0.5, r*1.1, c, true)
	vector.DrawFilledCircle(dst, cx, cy-r*0.6, r*0.25, c, true)
	vector.StrokeLine(dst, cx-r*0.25, cy+r*0.3, cx-r*0.6, cy+r*0.7, r*0.18, c, true)
	vector.StrokeLine(dst, cx+r*0.25, cy+r*0.3, cx+r*0.6, cy+r*0.7, r*0.18, c, true)
}

// drawUsersIcon 两个头 + 两个身体
func drawUsersIcon(dst *ebiten.Image, cx, cy, r float32, c color.RGBA) {
	vector.DrawFilledCircle(dst, cx-r*0.35, cy-r*0.35, r*0.3, c, true)
	vector.DrawFilledCircle(dst, cx+r*0.35, cy-r*0.35, r*0.3, c, true)
	vector.DrawFilledRect(dst, cx-r*0.75, cy+r*0.05, r*0.8, r*0.6, c, true)
	vector.DrawFilledRect(dst, cx-r*0.05, cy+r*0.05, r*0.8, r*0.6, c, true)
}

// drawStarIcon 四芒星：两条主轴 + 两条短对角线 + 中心圆
func drawStarIcon(dst *ebiten.Image, cx, cy, r float32, c color.RGBA) {
	vector.StrokeLine(dst, cx, cy-r, cx, cy+r, r*0.22, c, true)
	vector.StrokeLine(dst, cx-r, cy, cx+r, cy, r*0.22, c, true)
	vector.StrokeLine(dst, cx-r*0.5, cy-r*0.5, cx+r*0.5, cy+r*0.5, r*0.16, c, true)
	vector.StrokeLine(dst, cx-r*0.5, cy+r*0.5, cx+r*0.5, cy-r*0.5, r*0.16, c, true)
	vector.DrawFilledCircle(dst, cx, cy, r*0.28, c, true)
}

// drawTrophyIcon 奖杯：杯体 + 双耳 + 杯柄 + 底座
func drawTrophyIcon(dst *ebiten.Image, cx, cy, r float32, c color.RGBA) {
	vector.DrawFilledRect(dst, cx-r*0.45, cy-r*0.8, r*0.9, r*0.85, c, true)
	vector.StrokeCircle(dst, cx-r*0.55, cy-r*0.5, r*0.22, r*0.12, c, true)
	vector.StrokeCircle(dst, cx+r*0.55, cy-r*0.5, r*0.22, r*0.12, c, true)
	vector.DrawFilledRect(dst, cx-r*0.12, cy+r*0.05, r*0.24, r*0.45, c, true)
	vector.DrawFilledRect(dst, cx-r*0.45, cy+r*0.5, r*0.9, r*0.22, c, true)
}

// drawDiamondIcon 菱形兜底图标
func drawDiamondIcon(dst *ebiten.Image, cx, cy, r float32, c color.RGBA) {
	w := r * 0.2
	vector.StrokeLine(dst, cx, cy-r, cx+r*0.8, cy, w, c, true)
	vector.StrokeLine(dst, cx+r*0.8, cy, cx, cy+r, w, c, true)
	vector.StrokeLine(dst, cx, cy+r, cx-r*0.8, cy, w, c, true)
	vector.StrokeLine(dst, cx-r*0.8, cy, cx, cy-r, w, c, true)
}
