package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"smartsign/backend/internal/dto"
)

// ── Create 测试 ──

func TestScheduleService_Create_Success(t *testing.T) {
	_, _, svc := setupTestEnv()
	roomID := mustCreateRoom(svc, "第一会议室", "20层 2008室", "")

	now := nowMs()
	result, err := svc.Schedule.Create(context.Background(), roomID, &dto.CreateScheduleRequest{
		Title:     "季度预算评审会",
		Owner:     "财务部",
		Status:    "busy",
		StartTime: now - hourMs,
		EndTime:   now + 2*hourMs,
	})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if result.ID == "" {
		t.Error("应分配日程 ID")
	}
	if result.RoomID != roomID {
		t.Errorf("期望RoomID=%s，实际=%s", roomID, result.RoomID)
	}
	if result.Status != "busy" {
		t.Errorf("期望Status=busy，实际=%s", result.Status)
	}
}

func TestScheduleService_Create_RoomNotFound(t *testing.T) {
	_, _, svc := setupTestEnv()

	now := nowMs()
	_, err := svc.Schedule.Create(context.Background(), "nonexistent", &dto.CreateScheduleRequest{
		Title: "会议", Status: "busy", StartTime: now, EndTime: now + hourMs,
	})
	if !errors.Is(err, ErrRoomNotFound) {
		t.Errorf("期望 ErrRoomNotFound，实际: %v", err)
	}
}

func TestScheduleService_Create_InvalidTimeRange(t *testing.T) {
	_, _, svc := setupTestEnv()
	roomID := mustCreateRoom(svc, "会议室", "20层 2001室", "")

	now := nowMs()
	_, err := svc.Schedule.Create(context.Background(), roomID, &dto.CreateScheduleRequest{
		Title: "倒置区间", Status: "busy", StartTime: now + hourMs, EndTime: now,
	})
	if !errors.Is(err, ErrInvalidTimeRange) {
		t.Errorf("期望 ErrInvalidTimeRange，实际: %v", err)
	}
}

func TestScheduleService_Create_ZeroLengthInterval(t *testing.T) {
	_, _, svc := setupTestEnv()
	roomID := mustCreateRoom(svc, "会议室", "20层 2001室", "")

	// start == end 是合法的零长度区间
	now := nowMs()
	if _, err := svc.Schedule.Create(context.Background(), roomID, &dto.CreateScheduleRequest{
		Title: "快照会议", Status: "busy", StartTime: now, EndTime: now,
	}); err != nil {
		t.Errorf("零长度区间应允许创建: %v", err)
	}
}

func TestScheduleService_Create_Overlap(t *testing.T) {
	_, _, svc := setupTestEnv()
	roomID := mustCreateRoom(svc, "会议室", "20层 2001室", "")

	now := nowMs()
	if _, err := svc.Schedule.Create(context.Background(), roomID, &dto.CreateScheduleRequest{
		Title: "先到", Status: "busy", StartTime: now, EndTime: now + 2*hourMs,
	}); err != nil {
		t.Fatalf("第一条应成功: %v", err)
	}

	// 共享边界时刻也算重叠
	_, err := svc.Schedule.Create(context.Background(), roomID, &dto.CreateScheduleRequest{
		Title: "后到", Status: "dnd", StartTime: now + 2*hourMs, EndTime: now + 3*hourMs,
	})
	if !errors.Is(err, ErrScheduleOverlap) {
		t.Errorf("期望 ErrScheduleOverlap，实际: %v", err)
	}
}

func TestScheduleService_Create_OverlapOtherRoomAllowed(t *testing.T) {
	_, _, svc := setupTestEnv()
	roomA := mustCreateRoom(svc, "甲", "20层 2001室", "")
	roomB := mustCreateRoom(svc, "乙", "20层 2002室", "")

	now := nowMs()
	if _, err := svc.Schedule.Create(context.Background(), roomA, &dto.CreateScheduleRequest{
		Title: "甲会议", Status: "busy", StartTime: now, EndTime: now + hourMs,
	}); err != nil {
		t.Fatalf("甲房间创建应成功: %v", err)
	}
	// 跨房间不参与重叠校验
	if _, err := svc.Schedule.Create(context.Background(), roomB, &dto.CreateScheduleRequest{
		Title: "乙会议", Status: "busy", StartTime: now, EndTime: now + hourMs,
	}); err != nil {
		t.Errorf("不同房间的同时段日程应允许: %v", err)
	}
}

// ── ListByRoom 测试 ──

func TestScheduleService_ListByRoom_SortedAndAnnotated(t *testing.T) {
	_, _, svc := setupTestEnv()
	roomID := mustCreateRoom(svc, "会议室", "20层 2001室", "")

	now := nowMs()
	// 乱序创建三条：未来、过去、进行中
	mustCreateSchedule(svc, roomID, "未来", now+3*hourMs, now+4*hourMs)
	mustCreateSchedule(svc, roomID, "过去", now-4*hourMs, now-3*hourMs)
	mustCreateSchedule(svc, roomID, "进行中", now-hourMs, now+hourMs)

	list, err := svc.Schedule.ListByRoom(context.Background(), roomID)
	if err != nil {
		t.Fatalf("ListByRoom 应成功: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("期望 3 条日程，实际=%d", len(list))
	}

	// 按开始时间升序
	if list[0].Title != "过去" || list[1].Title != "进行中" || list[2].Title != "未来" {
		t.Errorf("应按开始时间升序: %s, %s, %s", list[0].Title, list[1].Title, list[2].Title)
	}

	if !list[0].IsPast || list[0].IsCurrent {
		t.Errorf("已结束日程标注错误: %+v", list[0])
	}
	if !list[1].IsCurrent || list[1].IsPast {
		t.Errorf("进行中日程标注错误: %+v", list[1])
	}
	if list[2].IsCurrent || list[2].IsPast {
		t.Errorf("未来日程标注错误: %+v", list[2])
	}
}

func TestScheduleService_ListByRoom_NotFound(t *testing.T) {
	_, _, svc := setupTestEnv()

	_, err := svc.Schedule.ListByRoom(context.Background(), "nonexistent")
	if !errors.Is(err, ErrRoomNotFound) {
		t.Errorf("期望 ErrRoomNotFound，实际: %v", err)
	}
}

// ── ImportICS 测试 ──

const sampleICS = "BEGIN:VCALENDAR\r\n" +
	"VERSION:2.0\r\n" +
	"PRODID:-//test//CN\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:evt-001@test\r\n" +
	"SUMMARY:产品路线图评审\r\n" +
	"ORGANIZER:mailto:pm@example.com\r\n" +
	"DTSTART:20300115T010000Z\r\n" +
	"DTEND:20300115T030000Z\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:evt-002@test\r\n" +
	"SUMMARY:客户答谢晚宴\r\n" +
	"DTSTART:20300116T100000Z\r\n" +
	"END:VEVENT\r\n" +
	"END:VCALENDAR\r\n"

func TestScheduleService_ImportICS_Success(t *testing.T) {
	_, _, svc := setupTestEnv()
	roomID := mustCreateRoom(svc, "会议室", "20层 2001室", "")

	resp, err := svc.Schedule.ImportICS(context.Background(), roomID, strings.NewReader(sampleICS))
	if err != nil {
		t.Fatalf("ImportICS 应成功: %v", err)
	}
	if resp.Imported != 2 || resp.Skipped != 0 {
		t.Errorf("期望导入 2 条跳过 0 条，实际: %+v", resp)
	}

	list, _ := svc.Schedule.ListByRoom(context.Background(), roomID)
	if len(list) != 2 {
		t.Fatalf("导入后应有 2 条日程，实际=%d", len(list))
	}
	if list[0].Title != "产品路线图评审" || list[0].Owner != "pm@example.com" {
		t.Errorf("导入字段映射错误: %+v", list[0])
	}
	if list[0].Status != "busy" {
		t.Errorf("导入日程状态应为 busy，实际=%s", list[0].Status)
	}
}

func TestScheduleService_ImportICS_OverlapSkipped(t *testing.T) {
	_, _, svc := setupTestEnv()
	roomID := mustCreateRoom(svc, "会议室", "20层 2001室", "")

	// 先导入一次，再重复导入 — 同样的事件全部因重叠被跳过
	if _, err := svc.Schedule.ImportICS(context.Background(), roomID, strings.NewReader(sampleICS)); err != nil {
		t.Fatalf("首次导入应成功: %v", err)
	}
	resp, err := svc.Schedule.ImportICS(context.Background(), roomID, strings.NewReader(sampleICS))
	if err != nil {
		t.Fatalf("重复导入不应整体失败: %v", err)
	}
	if resp.Imported != 0 || resp.Skipped != 2 {
		t.Errorf("期望导入 0 条跳过 2 条，实际: %+v", resp)
	}
	if len(resp.Errors) != 2 {
		t.Errorf("每条跳过应附带原因，实际: %+v", resp.Errors)
	}
}

func TestScheduleService_ImportICS_Malformed(t *testing.T) {
	_, _, svc := setupTestEnv()
	roomID := mustCreateRoom(svc, "会议室", "20层 2001室", "")

	_, err := svc.Schedule.ImportICS(context.Background(), roomID, strings.NewReader("not an ics file"))
	if !errors.Is(err, ErrICSParseFailed) {
		t.Errorf("期望 ErrICSParseFailed，实际: %v", err)
	}
}

func TestScheduleService_ImportICS_NoEvents(t *testing.T) {
	_, _, svc := setupTestEnv()
	roomID := mustCreateRoom(svc, "会议室", "20层 2001室", "")

	empty := "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:-//test//CN\r\nEND:VCALENDAR\r\n"
	_, err := svc.Schedule.ImportICS(context.Background(), roomID, strings.NewReader(empty))
	if !errors.Is(err, ErrICSNoEvents) {
		t.Errorf("期望 ErrICSNoEvents，实际: %v", err)
	}
}

// mustCreateSchedule 创建 busy 日程，失败即中断
func mustCreateSchedule(svc *Service, roomID, title string, start, end int64) {
	_, err := svc.Schedule.Create(context.Background(), roomID, &dto.CreateScheduleRequest{
		Title: title, Status: "busy", StartTime: start, EndTime: end,
	})
	if err != nil {
		panic(err)
	}
}
