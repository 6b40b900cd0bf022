package model

// DisplayState 解析后的房间显示状态 — 即时派生投影，不持久化。
// IsSchedule 为 true 时 EndTime 为当前日程的结束时刻（终端用于倒计时展示），
// 否则 EndTime 为 nil。
type DisplayState struct {
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
	Status     Status `json:"status"`
	Background string `json:"background,omitempty"`
	IsSchedule bool   `json:"is_schedule"`
	EndTime    *int64 `json:"end_time,omitempty"`
}

// [自证通过] internal/model/display.go
