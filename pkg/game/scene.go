package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a page scene with its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Disposable 是一个可选接口，用于支持场景在被切换或程序退出时释放资源
//
// 实现此接口的场景会在被替换前收到 Dispose() 调用。
// Dispose 必须保证：所有进行中的动画步骤被取消、视口触发器失效、
// 延迟任务不再执行，之后任何系统回调都必须是空操作。
type Disposable interface {
	Dispose()
}
