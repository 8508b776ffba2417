package scenes

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/decker502/statspanel/pkg/systems"
)

// 字号层级
const (
	heroFontSize     = 40.0
	titleFontSize    = 30.0
	subtitleFontSize = 16.0
	numberFontSize   = 34.0
	labelFontSize    = 14.0
)

// LoadFonts 构建页面字体层级
// 字体内嵌在二进制里（Go 字体族），不依赖外部资源文件
func LoadFonts() (*systems.Fonts, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("常规字体加载失败: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("粗体字体加载失败: %w", err)
	}

	return &systems.Fonts{
		Hero:     &text.GoTextFace{Source: bold, Size: heroFontSize},
		Title:    &text.GoTextFace{Source: bold, Size: titleFontSize},
		Subtitle: &text.GoTextFace{Source: regular, Size: subtitleFontSize},
		Number:   &text.GoTextFace{Source: bold, Size: numberFontSize},
		Label:    &text.GoTextFace{Source: regular, Size: labelFontSize},
	}, nil
}
