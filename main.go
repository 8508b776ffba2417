package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/statspanel/pkg/app"
	"github.com/decker502/statspanel/pkg/config"
	"github.com/decker502/statspanel/pkg/embedded"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	reducedMotion := flag.Bool("reduced-motion", false, "禁用所有过渡动画（无障碍模式，不写入设置）")
	flag.Parse()

	// 初始化嵌入资源，必须在任何配置加载之前
	embedded.Init(dataFS)

	a, err := app.NewApp(app.Config{
		Verbose:       *verbose,
		ReducedMotion: *reducedMotion,
	})
	if err != nil {
		log.Fatalf("应用初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("About Us - Stats Panel")

	// 启动游戏循环
	// Update() 和 Draw() 会被反复调用，直到窗口关闭
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
