package utils

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NewNumberPrinter 根据区域标识创建数字格式化器
// 无法解析的区域标识回退到英文（千位逗号分组）
func NewNumberPrinter(locale string) *message.Printer {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return message.NewPrinter(tag)
}

// FormatGrouped 按区域习惯对整数做分组格式化（如 1200 -> "1,200"）
// printer 为 nil 时退化为朴素十进制，保证显示永远不会为空
func FormatGrouped(p *message.Printer, n int) string {
	if p == nil {
		return strconv.Itoa(n)
	}
	return p.Sprintf("%d", n)
}
