package components

// TitleComponent 区块标题文字
type TitleComponent struct {
	Text     string
	Subtitle string
}
