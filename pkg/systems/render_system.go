package systems

import (
	"image"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/statspanel/pkg/components"
	"github.com/decker502/statspanel/pkg/config"
	"github.com/decker502/statspanel/pkg/ecs"
	"github.com/decker502/statspanel/pkg/game"
	"github.com/decker502/statspanel/pkg/viewport"
)

// 顶点着色用的白色纹理（ebiten 渐变绘制的惯用写法）
var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// 页面配色
var (
	pageBackground = color.RGBA{R: 0x0F, G: 0x17, B: 0x2A, A: 0xFF}
	textPrimary    = color.RGBA{R: 0xF1, G: 0xF5, B: 0xF9, A: 0xFF}
	textSecondary  = color.RGBA{R: 0x94, G: 0xA3, B: 0xB8, A: 0xFF}
	cardBorderBase = color.RGBA{R: 0x33, G: 0x41, B: 0x55, A: 0xFF}
	shadowColor    = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
)

// Fonts 渲染用字体集合
type Fonts struct {
	Hero     *text.GoTextFace
	Title    *text.GoTextFace
	Subtitle *text.GoTextFace
	Number   *text.GoTextFace
	Label    *text.GoTextFace
}

// RenderSystem 把组件状态绘制成页面画面
// 只读取状态，不产生任何状态变更，动画值全部来自其他系统的输出
type RenderSystem struct {
	entityManager *ecs.EntityManager
	vp            *viewport.Viewport
	env           game.Environment
	fonts         *Fonts
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, vp *viewport.Viewport, env game.Environment, fonts *Fonts) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		vp:            vp,
		env:           env,
		fonts:         fonts,
	}
}

// Draw 绘制整个页面
func (rs *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(pageBackground)

	rs.drawHero(screen)
	rs.drawSectionTitle(screen)
	rs.drawCards(screen)
	rs.drawAccentLines(screen)
	rs.drawFooter(screen)
}

// drawHero 绘制 stats 区块上方的占位内容
func (rs *RenderSystem) drawHero(screen *ebiten.Image) {
	cx := float64(config.WindowWidth) / 2
	rs.drawTextCentered(screen, "Our Story", rs.fonts.Hero, cx, 200-rs.vp.OffsetY, textPrimary, 1, 1)
	rs.drawTextCentered(screen, "Scroll down to see the numbers", rs.fonts.Subtitle, cx, 260-rs.vp.OffsetY, textSecondary, 1, 1)
}

// drawSectionTitle 绘制区块标题（入场状态由标题组驱动）
func (rs *RenderSystem) drawSectionTitle(screen *ebiten.Image) {
	cx := float64(config.WindowWidth) / 2

	for _, id := range ecs.GetEntitiesWith2[*components.TitleComponent, *components.PositionComponent](rs.entityManager) {
		title, _ := ecs.GetComponent[*components.TitleComponent](rs.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](rs.entityManager, id)

		alpha := 1.0
		offsetY := 0.0
		if e, ok := ecs.GetComponent[*components.EntranceComponent](rs.entityManager, id); ok {
			alpha = e.Opacity
			offsetY = e.OffsetY
		}
		if alpha <= 0 {
			continue
		}

		y := pos.Y - rs.vp.OffsetY + offsetY
		rs.drawTextCentered(screen, title.Text, rs.fonts.Title, cx, y, textPrimary, alpha, 1)
		if title.Subtitle != "" {
			rs.drawTextCentered(screen, title.Subtitle, rs.fonts.Subtitle, cx, y+(config.SubtitleTop-config.TitleTop), textSecondary, alpha, 1)
		}
	}
}

// cardDrawState 收集一张卡片绘制所需的组件组合
type cardDrawState struct {
	card      *components.StatCardComponent
	pos       *components.PositionComponent
	entrance  *components.EntranceComponent
	counter   *components.CounterComponent
	highlight *components.HoverHighlightComponent
	scale     *components.ScaleComponent
}

// collectCards 按卡片序号稳定排序（map 遍历无序）
func (rs *RenderSystem) collectCards() []cardDrawState {
	var cards []cardDrawState

	for _, id := range ecs.GetEntitiesWith2[*components.StatCardComponent, *components.PositionComponent](rs.entityManager) {
		st := cardDrawState{}
		st.card, _ = ecs.GetComponent[*components.StatCardComponent](rs.entityManager, id)
		st.pos, _ = ecs.GetComponent[*components.PositionComponent](rs.entityManager, id)
		st.entrance, _ = ecs.GetComponent[*components.EntranceComponent](rs.entityManager, id)
		st.counter, _ = ecs.GetComponent[*components.CounterComponent](rs.entityManager, id)
		st.highlight, _ = ecs.GetComponent[*components.HoverHighlightComponent](rs.entityManager, id)
		st.scale, _ = ecs.GetComponent[*components.ScaleComponent](rs.entityManager, id)
		cards = append(cards, st)
	}

	sort.Slice(cards, func(i, j int) bool {
		return cards[i].card.Index < cards[j].card.Index
	})
	return cards
}

// drawCards 绘制所有统计卡片
func (rs *RenderSystem) drawCards(screen *ebiten.Image) {
	// 悬停的浮起/缩放视觉只在精确指针且未减弱动效时出现
	allowElevation := rs.env.FinePointer() && !rs.env.ReducedMotion()

	for _, st := range rs.collectCards() {
		alpha := 1.0
		offsetY := 0.0
		if st.entrance != nil {
			alpha = st.entrance.Opacity
			offsetY = st.entrance.OffsetY
		}
		if alpha <= 0 {
			continue
		}

		x := st.pos.X
		y := st.pos.Y - rs.vp.OffsetY + offsetY
		w := st.card.Width
		h := st.card.Height

		// 视口裁剪
		if y > rs.vp.Height || y+h < 0 {
			continue
		}

		intensity := 0.0
		if st.highlight != nil {
			intensity = st.highlight.Intensity
		}

		// 浮起阴影（随高亮强度扩散）
		if allowElevation && intensity > 0 {
			spread := 10 * intensity
			rs.fillRect(screen, x-spread/2, y+6, w+spread, h+spread/2, shadowColor, 0.35*intensity*alpha)
		}

		// 渐变卡片主体
		drawGradientRect(screen, float32(x), float32(y), float32(w), float32(h),
			st.card.GradientFrom, st.card.GradientTo, float32(alpha))

		// 光晕覆盖层
		if intensity > 0 {
			rs.fillRect(screen, x, y, w, h, st.card.Glow, config.HoverGlowAlpha*intensity*alpha)
		}

		// 边框：基础色向光晕色过渡
		borderColor := lerpColor(cardBorderBase, st.card.Glow, intensity)
		vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1.5,
			withAlpha(borderColor, alpha), true)

		// 图标 / 数字 / 标签（缩放因子来自悬停系统）
		s := 1.0
		if st.scale != nil {
			s = st.scale.ScaleX
		}

		cx := x + w/2
		drawIcon(screen, st.card.Icon, float32(cx), float32(y+config.IconCenterOffsetY),
			float32(22*s), textPrimary, alpha)

		display := "0" + st.card.Suffix
		if st.counter != nil {
			display = st.counter.Display
		}
		rs.drawTextCentered(screen, display, rs.fonts.Number, cx, y+config.NumberCenterOffsetY, textPrimary, alpha, s)

		rs.drawTextCentered(screen, st.card.Label, rs.fonts.Label, cx, y+config.LabelCenterOffsetY, textSecondary, alpha*0.9, 1)
	}
}

// drawAccentLines 绘制卡片底部的装饰线
// 宽度随装饰线组的入场曲线展开，悬停时跟随卡片缩放
func (rs *RenderSystem) drawAccentLines(screen *ebiten.Image) {
	// 卡片序号 -> 悬停缩放
	scaleByIndex := map[int]float64{}
	for _, st := range rs.collectCards() {
		if st.scale != nil {
			scaleByIndex[st.card.Index] = st.scale.ScaleX
		}
	}

	for _, id := range ecs.GetEntitiesWith3[*components.AccentLineComponent, *components.PositionComponent, *components.EntranceComponent](rs.entityManager) {
		line, _ := ecs.GetComponent[*components.AccentLineComponent](rs.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](rs.entityManager, id)
		e, _ := ecs.GetComponent[*components.EntranceComponent](rs.entityManager, id)

		if e.Opacity <= 0 {
			continue
		}

		scale := 1.0
		if s, ok := scaleByIndex[line.Index]; ok {
			scale = s
		}

		// Opacity 与宽度共用同一条缓动曲线
		width := line.TargetWidth * e.Opacity * scale
		cx := pos.X + line.TargetWidth/2
		y := pos.Y - rs.vp.OffsetY + e.OffsetY

		if y > rs.vp.Height || y < -config.LineHeight {
			continue
		}

		rs.fillRect(screen, cx-width/2, y, width, config.LineHeight, line.Color, e.Opacity)
	}
}

// drawFooter 绘制底部占位内容
func (rs *RenderSystem) drawFooter(screen *ebiten.Image) {
	cx := float64(config.WindowWidth) / 2
	y := config.PageContentHeight - 140 - rs.vp.OffsetY
	rs.drawTextCentered(screen, "Help us write the next number", rs.fonts.Subtitle, cx, y, textSecondary, 1, 1)
}

// drawTextCentered 以 (cx, cy) 为中心绘制文字
func (rs *RenderSystem) drawTextCentered(screen *ebiten.Image, str string, face *text.GoTextFace, cx, cy float64, clr color.RGBA, alpha, scale float64) {
	if str == "" || face == nil || alpha <= 0 {
		return
	}

	w, h := text.Measure(str, face, 0)

	op := &text.DrawOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	if scale != 1 {
		op.GeoM.Scale(scale, scale)
	}
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(screen, str, face, op)
}

// fillRect 以指定不透明度填充矩形
func (rs *RenderSystem) fillRect(screen *ebiten.Image, x, y, w, h float64, clr color.RGBA, alpha float64) {
	if alpha <= 0 {
		return
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), withAlpha(clr, alpha), true)
}

// drawGradientRect 绘制垂直渐变矩形（顶点着色）
func drawGradientRect(dst *ebiten.Image, x, y, w, h float32, top, bottom color.RGBA, alpha float32) {
	if alpha <= 0 {
		return
	}

	tr, tg, tb := float32(top.R)/255, float32(top.G)/255, float32(top.B)/255
	br, bg, bb := float32(bottom.R)/255, float32(bottom.G)/255, float32(bottom.B)/255

	vs := []ebiten.Vertex{
		{DstX: x, DstY: y, SrcX: 1, SrcY: 1, ColorR: tr, ColorG: tg, ColorB: tb, ColorA: alpha},
		{DstX: x + w, DstY: y, SrcX: 1, SrcY: 1, ColorR: tr, ColorG: tg, ColorB: tb, ColorA: alpha},
		{DstX: x, DstY: y + h, SrcX: 1, SrcY: 1, ColorR: br, ColorG: bg, ColorB: bb, ColorA: alpha},
		{DstX: x + w, DstY: y + h, SrcX: 1, SrcY: 1, ColorR: br, ColorG: bg, ColorB: bb, ColorA: alpha},
	}
	is := []uint16{0, 1, 2, 1, 3, 2}

	dst.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{})
}

// withAlpha 返回按 alpha 衰减后的颜色
func withAlpha(c color.RGBA, alpha float64) color.RGBA {
	if alpha >= 1 {
		return c
	}
	if alpha < 0 {
		alpha = 0
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

// lerpColor 在两个颜色之间线性插值
func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return color.RGBA{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*t),
		A: 0xFF,
	}
}
