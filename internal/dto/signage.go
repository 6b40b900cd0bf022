package dto

// DisplayStateResponse 房间显示状态响应（终端渲染的唯一权威依据）
type DisplayStateResponse struct {
	RoomID     string `json:"room_id"`
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
	Status     string `json:"status"`
	Label      string `json:"label"` // 状态中文标签
	Badge      string `json:"badge"` // 终端状态条文案
	Color      string `json:"color"` // 主题色
	Background string `json:"background,omitempty"`
	IsSchedule bool   `json:"is_schedule"`
	EndTime    *int64 `json:"end_time,omitempty"` // 仅日程态返回，用于倒计时
	Instant    int64  `json:"instant"`            // 本次解析所用时刻
}

// RoomOverviewResponse 概览中的单个房间（房间信息 + 实时状态）
type RoomOverviewResponse struct {
	Room    RoomResponse         `json:"room"`
	Display DisplayStateResponse `json:"display"`
}

// FloorGroupResponse 按楼层分组的概览
type FloorGroupResponse struct {
	Floor string                 `json:"floor"`
	Rooms []RoomOverviewResponse `json:"rooms"`
}

// OverviewResponse 楼宇全景概览响应
type OverviewResponse struct {
	Instant int64                `json:"instant"`
	Floors  []FloorGroupResponse `json:"floors"`
}

// [自证通过] internal/dto/signage.go
