// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerState 存储当前帧的指针状态
// 统一鼠标和触摸两种输入来源，悬停检测和滚动拖拽共用
type PointerState struct {
	// 指针位置（逻辑屏幕坐标）
	X, Y int
	// 是否有新的按下/触摸事件刚刚发生
	JustPressed bool
	// 是否有活动的触摸（持续按住）
	IsTouching bool
}

// GetPointerState 获取当前帧的指针状态
// 优先检测触摸（移动设备），其次鼠标光标（桌面设备）
func GetPointerState() PointerState {
	state := PointerState{}

	// 新的触摸事件
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		state.JustPressed = true
		state.X, state.Y = ebiten.TouchPosition(touchIDs[0])
		state.IsTouching = true
		return state
	}

	// 活动的触摸（用于拖拽滚动）
	allTouchIDs := ebiten.AppendTouchIDs(nil)
	if len(allTouchIDs) > 0 {
		state.X, state.Y = ebiten.TouchPosition(allTouchIDs[0])
		state.IsTouching = true
		return state
	}

	// 鼠标输入
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		state.JustPressed = true
	}
	state.X, state.Y = ebiten.CursorPosition()
	return state
}
