package config

import (
	"fmt"
	"image/color"
	"log"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/decker502/statspanel/pkg/embedded"
)

// StatConfig 单条统计记录（data/stats.yaml 的一项）
// 列表顺序即渲染顺序，同时决定入场和计数动画的错峰顺序
type StatConfig struct {
	// Value 计数动画的目标值（>= 0）
	Value int `yaml:"value"`
	// Suffix 数字后面的字面后缀（如 "+"、"%"，可为空）
	Suffix string `yaml:"suffix"`
	// Label 描述文字
	Label string `yaml:"label"`
	// Icon 装饰图标名称：rocket / users / star / trophy
	// 未知名称回退为 diamond
	Icon string `yaml:"icon"`
	// GradientFrom / GradientTo 卡片背景渐变色（#RRGGBB）
	GradientFrom string `yaml:"gradientFrom"`
	GradientTo   string `yaml:"gradientTo"`
	// Glow 悬停光晕颜色（#RRGGBB）
	Glow string `yaml:"glow"`
}

// StatsConfig 统计面板的完整配置
type StatsConfig struct {
	Title    string       `yaml:"title"`
	Subtitle string       `yaml:"subtitle"`
	Stats    []StatConfig `yaml:"stats"`
}

// 图标名称白名单
var validIcons = map[string]bool{
	"rocket":  true,
	"users":   true,
	"star":    true,
	"trophy":  true,
	"diamond": true,
}

// 配色缺省值（配置损坏时仍能渲染）
var (
	DefaultGradientFrom = color.RGBA{R: 0x63, G: 0x66, B: 0xF1, A: 0xFF}
	DefaultGradientTo   = color.RGBA{R: 0x8B, G: 0x5C, B: 0xF6, A: 0xFF}
	DefaultGlow         = color.RGBA{R: 0x81, G: 0x8C, B: 0xF8, A: 0xFF}
)

// LoadStatsConfig 从嵌入资源加载统计配置
func LoadStatsConfig(path string) (*StatsConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取统计配置失败: %w", err)
	}
	return ParseStatsConfig(data)
}

// ParseStatsConfig 解析并校验统计配置
// 非法数据就地修正（负值截断为0、未知图标回退），不会让坏配置传播到渲染层
func ParseStatsConfig(data []byte) (*StatsConfig, error) {
	var cfg StatsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("解析统计配置失败: %w", err)
	}

	if len(cfg.Stats) == 0 {
		return nil, fmt.Errorf("统计配置为空: 至少需要一条记录")
	}

	for i := range cfg.Stats {
		s := &cfg.Stats[i]
		if s.Value < 0 {
			log.Printf("[Config] Warning: stats[%d].value=%d 为负值，截断为0", i, s.Value)
			s.Value = 0
		}
		if !validIcons[s.Icon] {
			if s.Icon != "" {
				log.Printf("[Config] Warning: stats[%d].icon=%q 未知，回退为 diamond", i, s.Icon)
			}
			s.Icon = "diamond"
		}
	}

	return &cfg, nil
}

// GradientFromColor 返回解析后的渐变起始色
func (s *StatConfig) GradientFromColor() color.RGBA {
	return ParseHexColor(s.GradientFrom, DefaultGradientFrom)
}

// GradientToColor 返回解析后的渐变结束色
func (s *StatConfig) GradientToColor() color.RGBA {
	return ParseHexColor(s.GradientTo, DefaultGradientTo)
}

// GlowColor 返回解析后的光晕色
func (s *StatConfig) GlowColor() color.RGBA {
	return ParseHexColor(s.Glow, DefaultGlow)
}

// ParseHexColor 解析 #RRGGBB 格式的颜色
// 解析失败时返回 fallback，保证渲染层拿到的永远是合法颜色
func ParseHexColor(s string, fallback color.RGBA) color.RGBA {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return fallback
	}

	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return fallback
	}

	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}
