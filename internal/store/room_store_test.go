package store

import (
	"errors"
	"testing"

	"smartsign/backend/internal/model"
)

func TestRoomStore_CreateAssignsID(t *testing.T) {
	s := NewRoomStore()

	created, err := s.Create(&model.Room{Name: "会议室"})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if created.RoomID == "" {
		t.Error("应自动分配 RoomID")
	}
}

func TestRoomStore_CreateDuplicateID(t *testing.T) {
	s := NewRoomStore()

	if _, err := s.Create(&model.Room{RoomID: "room-1", Name: "A"}); err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if _, err := s.Create(&model.Room{RoomID: "room-1", Name: "B"}); !errors.Is(err, ErrDuplicateID) {
		t.Errorf("期望 ErrDuplicateID，实际: %v", err)
	}
}

func TestRoomStore_GetNotFound(t *testing.T) {
	s := NewRoomStore()

	if _, err := s.Get("nonexistent"); !errors.Is(err, ErrNotFound) {
		t.Errorf("期望 ErrNotFound，实际: %v", err)
	}
}

func TestRoomStore_ListPreservesInsertionOrder(t *testing.T) {
	s := NewRoomStore()
	names := []string{"丙", "甲", "乙"}
	for _, n := range names {
		if _, err := s.Create(&model.Room{Name: n}); err != nil {
			t.Fatalf("Create 应成功: %v", err)
		}
	}

	list := s.List()
	if len(list) != 3 {
		t.Fatalf("期望 3 个房间，实际=%d", len(list))
	}
	for i, n := range names {
		if list[i].Name != n {
			t.Errorf("第 %d 个房间期望=%s，实际=%s", i, n, list[i].Name)
		}
	}
}

func TestRoomStore_UpdateReplacesByID(t *testing.T) {
	s := NewRoomStore()
	created, _ := s.Create(&model.Room{Name: "旧名称", Location: "20层 2001室"})

	created.Name = "新名称"
	updated, err := s.Update(created)
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if updated.Name != "新名称" {
		t.Errorf("期望Name=新名称，实际=%s", updated.Name)
	}

	got, _ := s.Get(created.RoomID)
	if got.Name != "新名称" {
		t.Errorf("存储中的记录应被替换，实际=%s", got.Name)
	}
}

func TestRoomStore_UpdateNotFound(t *testing.T) {
	s := NewRoomStore()

	if _, err := s.Update(&model.Room{RoomID: "nonexistent"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("期望 ErrNotFound，实际: %v", err)
	}
}

func TestRoomStore_ReadsReturnCopies(t *testing.T) {
	s := NewRoomStore()
	created, _ := s.Create(&model.Room{Name: "原始"})

	// 篡改读出的拷贝不应影响存储
	got, _ := s.Get(created.RoomID)
	got.Name = "被篡改"

	list := s.List()
	list[0].Location = "被篡改"

	fresh, _ := s.Get(created.RoomID)
	if fresh.Name != "原始" || fresh.Location != "" {
		t.Errorf("存储内容不应被外部修改波及: %+v", fresh)
	}
}

func TestRoomStore_FindByDeviceSN(t *testing.T) {
	s := NewRoomStore()
	s.Create(&model.Room{Name: "A", DeviceSN: "SN-001"})
	s.Create(&model.Room{Name: "B"})

	if found := s.FindByDeviceSN("SN-001"); found == nil || found.Name != "A" {
		t.Errorf("应按 SN 找到房间 A，实际=%+v", found)
	}
	if found := s.FindByDeviceSN("SN-999"); found != nil {
		t.Errorf("不存在的 SN 应返回 nil，实际=%+v", found)
	}
}
