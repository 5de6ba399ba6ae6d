package config

// 布局配置常量
// 本文件定义了窗口尺寸和视口断点

const (
	// DefaultWindowWidth 桌面窗口默认宽度
	DefaultWindowWidth = 1024

	// DefaultWindowHeight 桌面窗口默认高度
	DefaultWindowHeight = 768

	// CompactBreakpoint 宽度小于该值时切换到 compact 配置档（字号更小、采样更稀疏）
	CompactBreakpoint = 768

	// DefaultLabel 默认栅格化文字
	DefaultLabel = "Aoba"

	// DefaultConfigPath 嵌入的默认配置路径
	DefaultConfigPath = "data/field.yaml"
)

// BackgroundColor 页面底色（slate-900），与拖尾覆盖色一致
var BackgroundColor = RGBA{R: 15, G: 23, B: 42, A: 1}
